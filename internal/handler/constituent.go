// internal/handler/constituent.go
package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/civicdesk/constituent-crm/internal/auth"
	"github.com/civicdesk/constituent-crm/internal/model"
	"github.com/civicdesk/constituent-crm/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ConstituentHandler struct {
	service *service.ConstituentService
}

func NewConstituentHandler(service *service.ConstituentService) *ConstituentHandler {
	return &ConstituentHandler{service: service}
}

// List handles GET /api/constituents
func (h *ConstituentHandler) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	input := service.ListConstituentsInput{
		Search:        q.Get("search"),
		RelationLevel: q.Get("relationLevel"),
		DistrictID:    q.Get("districtId"),
		Page:          intParam(q.Get("page")),
		Limit:         intParam(q.Get("limit")),
	}

	output, err := h.service.List(r.Context(), principal, input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, output)
}

// Get handles GET /api/constituents/{id}
func (h *ConstituentHandler) Get(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "無效的選民編號")
		return
	}

	constituent, err := h.service.Get(r.Context(), principal, id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, constituent)
}

// Create handles POST /api/constituents
func (h *ConstituentHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(w, r)
	if !ok {
		return
	}

	var input service.ConstituentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "無效的請求內容")
		return
	}

	constituent, err := h.service.Create(r.Context(), principal, input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, constituent)
}

// Update handles PUT /api/constituents/{id}
func (h *ConstituentHandler) Update(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "無效的選民編號")
		return
	}

	var input service.ConstituentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "無效的請求內容")
		return
	}

	constituent, err := h.service.Update(r.Context(), principal, id, input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, constituent)
}

// Delete handles DELETE /api/constituents/{id}. The row is soft-deleted.
func (h *ConstituentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "無效的選民編號")
		return
	}

	if err := h.service.Delete(r.Context(), principal, id); err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]bool{"success": true})
}

type tagIDsRequest struct {
	TagIDs []string `json:"tagIds"`
}

// GetTags handles GET /api/constituents/{id}/tags
func (h *ConstituentHandler) GetTags(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "無效的選民編號")
		return
	}

	tags, err := h.service.GetTags(r.Context(), principal, id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, tags)
}

// ReplaceTags handles PUT /api/constituents/{id}/tags, overwriting the set.
func (h *ConstituentHandler) ReplaceTags(w http.ResponseWriter, r *http.Request) {
	h.mutateTags(w, r, h.service.ReplaceTags)
}

// AppendTags handles POST /api/constituents/{id}/tags, adding to the set.
func (h *ConstituentHandler) AppendTags(w http.ResponseWriter, r *http.Request) {
	h.mutateTags(w, r, h.service.AppendTags)
}

type tagMutator func(ctx context.Context, principal *auth.Principal, id uuid.UUID, tagIDs []uuid.UUID) ([]*model.Tag, error)

func (h *ConstituentHandler) mutateTags(w http.ResponseWriter, r *http.Request, mutate tagMutator) {
	principal, ok := principalFrom(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "無效的選民編號")
		return
	}

	var req tagIDsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "無效的請求內容")
		return
	}

	tagIDs := make([]uuid.UUID, 0, len(req.TagIDs))
	for _, raw := range req.TagIDs {
		tagID, err := uuid.Parse(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "無效的標籤編號")
			return
		}
		tagIDs = append(tagIDs, tagID)
	}

	tags, err := mutate(r.Context(), principal, id, tagIDs)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, tags)
}

func intParam(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
