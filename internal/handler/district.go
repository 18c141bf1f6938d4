// internal/handler/district.go
package handler

import (
	"net/http"

	"github.com/civicdesk/constituent-crm/internal/service"
)

type DistrictHandler struct {
	service *service.DistrictService
}

func NewDistrictHandler(service *service.DistrictService) *DistrictHandler {
	return &DistrictHandler{service: service}
}

// List handles GET /api/districts. The query mode follows the parameters:
// ?all=true returns every district for the city, no township returns the
// distinct township names, a township returns its villages.
func (h *DistrictHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	city := q.Get("city")
	township := q.Get("township")

	if q.Get("all") == "true" {
		districts, err := h.service.ListAll(r.Context(), city)
		if err != nil {
			handleError(w, r, err)
			return
		}
		respondWithJSON(w, http.StatusOK, districts)
		return
	}

	if township == "" {
		townships, err := h.service.ListTownships(r.Context(), city)
		if err != nil {
			handleError(w, r, err)
			return
		}
		respondWithJSON(w, http.StatusOK, townships)
		return
	}

	villages, err := h.service.ListVillages(r.Context(), city, township)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, villages)
}
