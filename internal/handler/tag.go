// internal/handler/tag.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/civicdesk/constituent-crm/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type TagHandler struct {
	service *service.TagService
}

func NewTagHandler(service *service.TagService) *TagHandler {
	return &TagHandler{service: service}
}

// List handles GET /api/tags
func (h *TagHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	input := service.ListTagsInput{
		CategoryID:      q.Get("categoryId"),
		IncludeInactive: q.Get("includeInactive") == "true",
	}

	tags, err := h.service.List(r.Context(), input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, tags)
}

// Get handles GET /api/tags/{id}
func (h *TagHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "無效的標籤編號")
		return
	}

	tag, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, tag)
}

// Create handles POST /api/tags (admin only).
func (h *TagHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateTagInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "無效的請求內容")
		return
	}

	tag, err := h.service.Create(r.Context(), input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, tag)
}

// Update handles PUT /api/tags/{id} (admin only).
func (h *TagHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "無效的標籤編號")
		return
	}

	var input service.UpdateTagInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "無效的請求內容")
		return
	}

	tag, err := h.service.Update(r.Context(), id, input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, tag)
}

// Delete handles DELETE /api/tags/{id} (admin only). The tag is disabled,
// not removed: existing constituent assignments stay.
func (h *TagHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "無效的標籤編號")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// ListCategories handles GET /api/tag-categories
func (h *TagHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, categories)
}

// CreateCategory handles POST /api/tag-categories (admin only).
func (h *TagHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var input service.CreateCategoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "無效的請求內容")
		return
	}

	category, err := h.service.CreateCategory(r.Context(), input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, category)
}
