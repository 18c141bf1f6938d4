package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/civicdesk/constituent-crm/internal/auth"
	"github.com/civicdesk/constituent-crm/internal/domain"
	"github.com/civicdesk/constituent-crm/internal/mocks"
	"github.com/civicdesk/constituent-crm/internal/model"
	"github.com/civicdesk/constituent-crm/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hasher := auth.NewPasswordHasher()
	hashedPassword, _ := hasher.Hash("correct_password")

	testUser := &model.User{
		ID:           uuid.New(),
		Email:        "admin@example.com",
		Name:         "系統管理員",
		PasswordHash: hashedPassword,
		Role:         model.RoleAdmin,
		IsActive:     true,
		OfficeID:     uuid.New(),
	}

	newService := func(repo *mocks.MockUserRepositoryIface) *service.UserService {
		return service.NewUserService(repo, hasher, auth.NewTokenManager("test_secret", time.Hour))
	}

	t.Run("successful login returns user and token", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		userRepo.EXPECT().
			FindByEmail(gomock.Any(), testUser.Email).
			Return(testUser, nil)

		result, err := newService(userRepo).Login(context.Background(), service.LoginInput{
			Email:    testUser.Email,
			Password: "correct_password",
		})

		require.NoError(t, err)
		assert.Equal(t, testUser.ID, result.User.ID)
		assert.NotEmpty(t, result.Token)

		// Token must carry the office so every later query is tenant-scoped.
		principal, err := auth.NewTokenManager("test_secret", time.Hour).Validate(result.Token)
		require.NoError(t, err)
		assert.Equal(t, testUser.OfficeID, principal.OfficeID)
	})

	t.Run("wrong password", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		userRepo.EXPECT().
			FindByEmail(gomock.Any(), testUser.Email).
			Return(testUser, nil)

		_, err := newService(userRepo).Login(context.Background(), service.LoginInput{
			Email:    testUser.Email,
			Password: "wrong_password",
		})

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email maps to invalid credentials", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		userRepo.EXPECT().
			FindByEmail(gomock.Any(), "nobody@example.com").
			Return(nil, domain.ErrUserNotFound)

		_, err := newService(userRepo).Login(context.Background(), service.LoginInput{
			Email:    "nobody@example.com",
			Password: "whatever",
		})

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("inactive user", func(t *testing.T) {
		inactive := *testUser
		inactive.IsActive = false

		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		userRepo.EXPECT().
			FindByEmail(gomock.Any(), inactive.Email).
			Return(&inactive, nil)

		_, err := newService(userRepo).Login(context.Background(), service.LoginInput{
			Email:    inactive.Email,
			Password: "correct_password",
		})

		assert.ErrorIs(t, err, domain.ErrUserInactive)
	})

	t.Run("invalid payload fails validation", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		_, err := newService(userRepo).Login(context.Background(), service.LoginInput{
			Email: "not-an-email",
		})

		assert.Error(t, err)
	})
}
