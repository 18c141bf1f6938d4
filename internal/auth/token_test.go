package auth_test

import (
	"testing"
	"time"

	"github.com/civicdesk/constituent-crm/internal/auth"
	"github.com/civicdesk/constituent-crm/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *model.User {
	return &model.User{
		ID:       uuid.New(),
		Email:    "staff@example.com",
		Name:     "測試助理",
		Role:     model.RoleStaff,
		OfficeID: uuid.New(),
		IsActive: true,
	}
}

func TestTokenRoundTrip(t *testing.T) {
	tm := auth.NewTokenManager("test_secret", time.Hour)
	user := testUser()

	token, err := tm.Generate(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	principal, err := tm.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, principal.UserID)
	assert.Equal(t, user.OfficeID, principal.OfficeID)
	assert.Equal(t, model.RoleStaff, principal.Role)
	assert.False(t, principal.IsAdmin())
}

func TestTokenWrongSecret(t *testing.T) {
	tm := auth.NewTokenManager("test_secret", time.Hour)
	other := auth.NewTokenManager("other_secret", time.Hour)

	token, err := tm.Generate(testUser())
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.Error(t, err)
}

func TestTokenExpired(t *testing.T) {
	tm := auth.NewTokenManager("test_secret", -time.Minute)

	token, err := tm.Generate(testUser())
	require.NoError(t, err)

	_, err = tm.Validate(token)
	assert.Error(t, err)
}

func TestTokenGarbage(t *testing.T) {
	tm := auth.NewTokenManager("test_secret", time.Hour)

	_, err := tm.Validate("not.a.token")
	assert.Error(t, err)
}

func TestAdminPrincipal(t *testing.T) {
	tm := auth.NewTokenManager("test_secret", time.Hour)
	user := testUser()
	user.Role = model.RoleAdmin

	token, err := tm.Generate(user)
	require.NoError(t, err)

	principal, err := tm.Validate(token)
	require.NoError(t, err)
	assert.True(t, principal.IsAdmin())
}
