// internal/service/option.go
package service

import (
	"context"

	"github.com/civicdesk/constituent-crm/internal/model"
	"github.com/civicdesk/constituent-crm/internal/repository"
	"github.com/go-playground/validator/v10"
)

type OptionService struct {
	repo     repository.OptionRepositoryIface
	validate *validator.Validate
}

func NewOptionService(repo repository.OptionRepositoryIface) *OptionService {
	return &OptionService{
		repo:     repo,
		validate: validator.New(),
	}
}

type CreateOptionInput struct {
	Category  string `json:"category" validate:"required"`
	Value     string `json:"value" validate:"required"`
	Label     string `json:"label" validate:"required"`
	SortOrder int    `json:"sortOrder"`
}

func (s *OptionService) List(ctx context.Context, category string, includeInactive bool) ([]*model.SelectOption, error) {
	return s.repo.FindAll(ctx, repository.OptionFilter{
		Category:        category,
		IncludeInactive: includeInactive,
	})
}

// ListGrouped returns every category's options keyed by category name, the
// shape dropdown-heavy forms load in one call.
func (s *OptionService) ListGrouped(ctx context.Context, includeInactive bool) (map[string][]*model.SelectOption, error) {
	options, err := s.repo.FindAll(ctx, repository.OptionFilter{IncludeInactive: includeInactive})
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]*model.SelectOption)
	for _, opt := range options {
		grouped[opt.Category] = append(grouped[opt.Category], opt)
	}
	return grouped, nil
}

func (s *OptionService) Create(ctx context.Context, input CreateOptionInput) (*model.SelectOption, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}

	o := &model.SelectOption{
		Category:  input.Category,
		Value:     input.Value,
		Label:     input.Label,
		SortOrder: input.SortOrder,
		IsActive:  true,
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}
