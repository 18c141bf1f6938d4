// internal/auth/token.go
package auth

import (
	"fmt"
	"time"

	"github.com/civicdesk/constituent-crm/internal/model"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Principal is the authenticated caller threaded through each request.
// OfficeID is the tenant filter for every office-scoped query; it always
// comes from the session, never from client input.
type Principal struct {
	UserID   uuid.UUID
	OfficeID uuid.UUID
	Role     model.Role
}

func (p Principal) IsAdmin() bool {
	return p.Role == model.RoleAdmin
}

type TokenManager struct {
	secret       []byte
	expiryPeriod time.Duration
}

func NewTokenManager(secret string, expiryPeriod time.Duration) *TokenManager {
	return &TokenManager{
		secret:       []byte(secret),
		expiryPeriod: expiryPeriod,
	}
}

type Claims struct {
	UserID   string `json:"user_id"`
	OfficeID string `json:"office_id"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

func (tm *TokenManager) Generate(user *model.User) (string, error) {
	claims := Claims{
		UserID:   user.ID.String(),
		OfficeID: user.OfficeID.String(),
		Role:     string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tm.expiryPeriod)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}

func (tm *TokenManager) Validate(tokenString string) (*Principal, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return tm.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id claim: %w", err)
	}

	officeID, err := uuid.Parse(claims.OfficeID)
	if err != nil {
		return nil, fmt.Errorf("invalid office id claim: %w", err)
	}

	return &Principal{
		UserID:   userID,
		OfficeID: officeID,
		Role:     model.Role(claims.Role),
	}, nil
}
