package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/civicdesk/constituent-crm/internal/auth"
	"github.com/civicdesk/constituent-crm/internal/middleware"
	"github.com/civicdesk/constituent-crm/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newToken(t *testing.T, tm *auth.TokenManager, role model.Role) string {
	t.Helper()
	token, err := tm.Generate(&model.User{
		ID:       uuid.New(),
		OfficeID: uuid.New(),
		Role:     role,
	})
	require.NoError(t, err)
	return token
}

func okHandler(t *testing.T, sawPrincipal *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := middleware.PrincipalFrom(r.Context())
		*sawPrincipal = ok
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	tm := auth.NewTokenManager("test_secret", time.Hour)
	var saw bool

	req := httptest.NewRequest(http.MethodGet, "/api/constituents", nil)
	rec := httptest.NewRecorder()
	middleware.AuthMiddleware(tm)(okHandler(t, &saw)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "未授權")
	assert.False(t, saw)
}

func TestAuthMiddlewareRejectsBadToken(t *testing.T) {
	tm := auth.NewTokenManager("test_secret", time.Hour)
	var saw bool

	req := httptest.NewRequest(http.MethodGet, "/api/constituents", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	middleware.AuthMiddleware(tm)(okHandler(t, &saw)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, saw)
}

func TestAuthMiddlewareAcceptsBearerToken(t *testing.T) {
	tm := auth.NewTokenManager("test_secret", time.Hour)
	var saw bool

	req := httptest.NewRequest(http.MethodGet, "/api/constituents", nil)
	req.Header.Set("Authorization", "Bearer "+newToken(t, tm, model.RoleStaff))
	rec := httptest.NewRecorder()
	middleware.AuthMiddleware(tm)(okHandler(t, &saw)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, saw)
}

func TestAuthMiddlewareAcceptsSessionCookie(t *testing.T) {
	tm := auth.NewTokenManager("test_secret", time.Hour)
	var saw bool

	req := httptest.NewRequest(http.MethodGet, "/api/constituents", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: newToken(t, tm, model.RoleStaff)})
	rec := httptest.NewRecorder()
	middleware.AuthMiddleware(tm)(okHandler(t, &saw)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, saw)
}

func TestRequireAdmin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("staff is forbidden", func(t *testing.T) {
		principal := &auth.Principal{UserID: uuid.New(), OfficeID: uuid.New(), Role: model.RoleStaff}
		req := httptest.NewRequest(http.MethodPost, "/api/tags", nil)
		req = req.WithContext(context.WithValue(req.Context(), middleware.PrincipalKey, principal))
		rec := httptest.NewRecorder()

		middleware.RequireAdmin(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "無權限")
	})

	t.Run("admin passes", func(t *testing.T) {
		principal := &auth.Principal{UserID: uuid.New(), OfficeID: uuid.New(), Role: model.RoleAdmin}
		req := httptest.NewRequest(http.MethodPost, "/api/tags", nil)
		req = req.WithContext(context.WithValue(req.Context(), middleware.PrincipalKey, principal))
		rec := httptest.NewRecorder()

		middleware.RequireAdmin(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("no principal is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/tags", nil)
		rec := httptest.NewRecorder()

		middleware.RequireAdmin(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
