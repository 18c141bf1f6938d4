// internal/handler/option.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/civicdesk/constituent-crm/internal/service"
)

type OptionHandler struct {
	service *service.OptionService
}

func NewOptionHandler(service *service.OptionService) *OptionHandler {
	return &OptionHandler{service: service}
}

// List handles GET /api/options. With ?category= the response is a flat
// list; without it every category is returned, grouped by name.
func (h *OptionHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	category := q.Get("category")
	includeInactive := q.Get("includeInactive") == "true"

	if category == "" {
		grouped, err := h.service.ListGrouped(r.Context(), includeInactive)
		if err != nil {
			handleError(w, r, err)
			return
		}
		respondWithJSON(w, http.StatusOK, grouped)
		return
	}

	options, err := h.service.List(r.Context(), category, includeInactive)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, options)
}

// Create handles POST /api/options (admin only).
func (h *OptionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateOptionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "無效的請求內容")
		return
	}

	option, err := h.service.Create(r.Context(), input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, option)
}
