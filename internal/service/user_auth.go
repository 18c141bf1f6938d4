// internal/service/user_auth.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/civicdesk/constituent-crm/internal/auth"
	"github.com/civicdesk/constituent-crm/internal/domain"
	"github.com/civicdesk/constituent-crm/internal/model"
	"github.com/civicdesk/constituent-crm/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type UserService struct {
	repo           repository.UserRepositoryIface
	passwordHasher *auth.PasswordHasher
	tokenManager   *auth.TokenManager
	validate       *validator.Validate
}

func NewUserService(repo repository.UserRepositoryIface, passwordHasher *auth.PasswordHasher, tokenManager *auth.TokenManager) *UserService {
	return &UserService{
		repo:           repo,
		passwordHasher: passwordHasher,
		tokenManager:   tokenManager,
		validate:       validator.New(),
	}
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginOutput struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

func (s *UserService) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}

	user, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}

	verified, err := s.passwordHasher.Verify(input.Password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verifying password: %w", err)
	}
	if !verified {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokenManager.Generate(user)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &LoginOutput{
		User:  user,
		Token: token,
	}, nil
}

// Me resolves the authenticated user's full record.
func (s *UserService) Me(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	return s.repo.FindByID(ctx, userID)
}
