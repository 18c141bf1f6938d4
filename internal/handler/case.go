// internal/handler/case.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/civicdesk/constituent-crm/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type CaseHandler struct {
	service *service.CaseService
}

func NewCaseHandler(service *service.CaseService) *CaseHandler {
	return &CaseHandler{service: service}
}

// List handles GET /api/cases
func (h *CaseHandler) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	input := service.ListCasesInput{
		Status:     q.Get("status"),
		CaseType:   q.Get("caseType"),
		AssigneeID: q.Get("assigneeId"),
		Page:       intParam(q.Get("page")),
		Limit:      intParam(q.Get("limit")),
	}

	output, err := h.service.List(r.Context(), principal, input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, output)
}

// Get handles GET /api/cases/{id}
func (h *CaseHandler) Get(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "無效的案件編號")
		return
	}

	c, err := h.service.Get(r.Context(), principal, id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, c)
}

// Create handles POST /api/cases
func (h *CaseHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(w, r)
	if !ok {
		return
	}

	var input service.CreateCaseInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "無效的請求內容")
		return
	}

	c, err := h.service.Create(r.Context(), principal, input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, c)
}

// UpdateStatus handles PATCH /api/cases/{id}/status, the explicit
// close/reopen transition.
func (h *CaseHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "無效的案件編號")
		return
	}

	var input service.UpdateCaseStatusInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "無效的請求內容")
		return
	}

	c, err := h.service.UpdateStatus(r.Context(), principal, id, input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, c)
}

// GetProgress handles GET /api/cases/{id}/progress
func (h *CaseHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "無效的案件編號")
		return
	}

	progresses, err := h.service.GetProgress(r.Context(), principal, id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, progresses)
}

// AddProgress handles POST /api/cases/{id}/progress. The insert and the
// parent case's status flip happen in one transaction.
func (h *CaseHandler) AddProgress(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "無效的案件編號")
		return
	}

	var input service.AddProgressInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "無效的請求內容")
		return
	}

	progress, err := h.service.AddProgress(r.Context(), principal, id, input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, progress)
}
