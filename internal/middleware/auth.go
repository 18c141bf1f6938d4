// internal/middleware/auth.go
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/civicdesk/constituent-crm/internal/auth"
)

type contextKey string

// PrincipalKey holds the authenticated auth.Principal in the request context.
const PrincipalKey = contextKey("crm_principal")

// SessionCookie is the cookie carrying the session token for browser clients.
const SessionCookie = "crm_session"

// PrincipalFrom extracts the authenticated principal from a request context.
func PrincipalFrom(ctx context.Context) (*auth.Principal, bool) {
	p, ok := ctx.Value(PrincipalKey).(*auth.Principal)
	return p, ok
}

// AuthMiddleware resolves the session token from the Authorization header or
// the session cookie and stores the resulting principal in the context.
func AuthMiddleware(tokenManager *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := bearerToken(r)
			if tokenString == "" {
				if c, err := r.Cookie(SessionCookie); err == nil {
					tokenString = c.Value
				}
			}

			if tokenString == "" {
				respondWithError(w, http.StatusUnauthorized, "未授權")
				return
			}

			principal, err := tokenManager.Validate(tokenString)
			if err != nil {
				respondWithError(w, http.StatusUnauthorized, "未授權")
				return
			}

			ctx := context.WithValue(r.Context(), PrincipalKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects non-ADMIN principals. It must run after AuthMiddleware.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := PrincipalFrom(r.Context())
		if !ok {
			respondWithError(w, http.StatusUnauthorized, "未授權")
			return
		}
		if !principal.IsAdmin() {
			respondWithError(w, http.StatusForbidden, "無權限")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// respondWithError sends a JSON error response
func respondWithError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
