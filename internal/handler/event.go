// internal/handler/event.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/civicdesk/constituent-crm/internal/service"
)

type EventHandler struct {
	service *service.EventService
}

func NewEventHandler(service *service.EventService) *EventHandler {
	return &EventHandler{service: service}
}

// List handles GET /api/events
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	input := service.ListEventsInput{
		EventType:  q.Get("eventType"),
		Attendance: q.Get("attendance"),
		FromDate:   q.Get("fromDate"),
		ToDate:     q.Get("toDate"),
	}

	events, err := h.service.List(r.Context(), principal, input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, events)
}

// Create handles POST /api/events
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(w, r)
	if !ok {
		return
	}

	var input service.CreateEventInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "無效的請求內容")
		return
	}

	event, err := h.service.Create(r.Context(), principal, input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, event)
}
