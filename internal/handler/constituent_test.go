package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/civicdesk/constituent-crm/internal/auth"
	"github.com/civicdesk/constituent-crm/internal/domain"
	"github.com/civicdesk/constituent-crm/internal/handler"
	"github.com/civicdesk/constituent-crm/internal/middleware"
	"github.com/civicdesk/constituent-crm/internal/mocks"
	"github.com/civicdesk/constituent-crm/internal/model"
	"github.com/civicdesk/constituent-crm/internal/service"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(h *handler.ConstituentHandler, principal *auth.Principal) http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := context.WithValue(req.Context(), middleware.PrincipalKey, principal)
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
	r.Get("/api/constituents/{id}", h.Get)
	r.Post("/api/constituents", h.Create)
	r.Put("/api/constituents/{id}/tags", h.ReplaceTags)
	return r
}

func TestConstituentGetNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	principal := &auth.Principal{UserID: uuid.New(), OfficeID: uuid.New(), Role: model.RoleStaff}
	id := uuid.New()

	repo := mocks.NewMockConstituentRepositoryIface(ctrl)
	repo.EXPECT().
		FindByID(gomock.Any(), principal.OfficeID, id).
		Return(nil, domain.ErrConstituentNotFound)

	h := handler.NewConstituentHandler(service.NewConstituentService(repo))
	req := httptest.NewRequest(http.MethodGet, "/api/constituents/"+id.String(), nil)
	rec := httptest.NewRecorder()
	newRouter(h, principal).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "找不到此選民")
}

func TestConstituentGetBadID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	principal := &auth.Principal{UserID: uuid.New(), OfficeID: uuid.New(), Role: model.RoleStaff}
	h := handler.NewConstituentHandler(service.NewConstituentService(mocks.NewMockConstituentRepositoryIface(ctrl)))

	req := httptest.NewRequest(http.MethodGet, "/api/constituents/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	newRouter(h, principal).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConstituentCreateValidationDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	principal := &auth.Principal{UserID: uuid.New(), OfficeID: uuid.New(), Role: model.RoleStaff}
	h := handler.NewConstituentHandler(service.NewConstituentService(mocks.NewMockConstituentRepositoryIface(ctrl)))

	req := httptest.NewRequest(http.MethodPost, "/api/constituents", strings.NewReader(`{"gender":"UNKNOWN"}`))
	rec := httptest.NewRecorder()
	newRouter(h, principal).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "輸入資料驗證失敗")
	assert.Contains(t, rec.Body.String(), "Name: required")
}

func TestConstituentReplaceTagsRejectsBadTagID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	principal := &auth.Principal{UserID: uuid.New(), OfficeID: uuid.New(), Role: model.RoleStaff}
	h := handler.NewConstituentHandler(service.NewConstituentService(mocks.NewMockConstituentRepositoryIface(ctrl)))

	req := httptest.NewRequest(http.MethodPut, "/api/constituents/"+uuid.New().String()+"/tags",
		strings.NewReader(`{"tagIds":["nope"]}`))
	rec := httptest.NewRecorder()
	newRouter(h, principal).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "無效的標籤編號")
}

func TestConstituentCreateRejectsNonJSONBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := handler.NewConstituentHandler(service.NewConstituentService(mocks.NewMockConstituentRepositoryIface(ctrl)))

	r := chi.NewRouter()
	r.Use(chimw.AllowContentType("application/json"))
	r.Post("/api/constituents", h.Create)

	req := httptest.NewRequest(http.MethodPost, "/api/constituents", strings.NewReader("name=王小明"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestConstituentMissingPrincipal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := handler.NewConstituentHandler(service.NewConstituentService(mocks.NewMockConstituentRepositoryIface(ctrl)))

	r := chi.NewRouter()
	r.Get("/api/constituents/{id}", h.Get)

	req := httptest.NewRequest(http.MethodGet, "/api/constituents/"+uuid.New().String(), nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "未授權")
}
