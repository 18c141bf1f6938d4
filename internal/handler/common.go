// internal/handler/common.go
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/civicdesk/constituent-crm/internal/auth"
	"github.com/civicdesk/constituent-crm/internal/domain"
	"github.com/civicdesk/constituent-crm/internal/middleware"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
)

type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// principalFrom pulls the authenticated principal the auth middleware stored.
func principalFrom(w http.ResponseWriter, r *http.Request) (*auth.Principal, bool) {
	principal, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "未授權")
		return nil, false
	}
	return principal, true
}

// handleError maps service errors onto the uniform error taxonomy:
// validation → 400 with field details, missing/foreign-tenant → 404,
// duplicates → 409, anything unexpected → logged 500 with a generic body.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		details := make([]string, 0, len(validationErrs))
		for _, fe := range validationErrs {
			details = append(details, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
		}
		respondWithJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "輸入資料驗證失敗",
			Details: details,
		})
		return
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidStatusTransition):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUserInactive):
		respondWithError(w, http.StatusUnauthorized, "帳號或密碼錯誤")
	case errors.Is(err, domain.ErrForbidden):
		respondWithError(w, http.StatusForbidden, "無權限")
	case errors.Is(err, domain.ErrConstituentNotFound):
		respondWithError(w, http.StatusNotFound, "找不到此選民")
	case errors.Is(err, domain.ErrCaseNotFound):
		respondWithError(w, http.StatusNotFound, "找不到此案件")
	case errors.Is(err, domain.ErrTagNotFound):
		respondWithError(w, http.StatusNotFound, "找不到此標籤")
	case errors.Is(err, domain.ErrTagCategoryNotFound),
		errors.Is(err, domain.ErrDistrictNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrNotFound):
		respondWithError(w, http.StatusNotFound, "找不到資料")
	case errors.Is(err, domain.ErrDuplicateTag),
		errors.Is(err, domain.ErrDuplicateCategory),
		errors.Is(err, domain.ErrDuplicateOption):
		respondWithError(w, http.StatusConflict, err.Error())
	default:
		slog.ErrorContext(r.Context(), "request failed",
			"error", err,
			"path", r.URL.Path,
			"requestID", chimw.GetReqID(r.Context()),
		)
		respondWithError(w, http.StatusInternalServerError, "伺服器發生錯誤")
	}
}
