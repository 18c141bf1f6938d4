// internal/handler/auth.go
package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/civicdesk/constituent-crm/internal/middleware"
	"github.com/civicdesk/constituent-crm/internal/service"
)

type AuthHandler struct {
	userService  *service.UserService
	cookieMaxAge time.Duration
}

func NewAuthHandler(userService *service.UserService, cookieMaxAge time.Duration) *AuthHandler {
	return &AuthHandler{
		userService:  userService,
		cookieMaxAge: cookieMaxAge,
	}
}

// Login handles POST /api/auth/login. On success the token is returned in
// the body and set as the session cookie for browser clients.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "無效的請求內容")
		return
	}
	defer r.Body.Close()

	output, err := h.userService.Login(r.Context(), input)
	if err != nil {
		handleError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    output.Token,
		Path:     "/",
		MaxAge:   int(h.cookieMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	respondWithJSON(w, http.StatusOK, output)
}

// Logout handles POST /api/auth/logout by clearing the session cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	respondWithJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Me handles GET /api/auth/me, returning the authenticated user.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(w, r)
	if !ok {
		return
	}

	user, err := h.userService.Me(r.Context(), principal.UserID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}
