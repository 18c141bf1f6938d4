// internal/service/tag.go
package service

import (
	"context"
	"fmt"

	"github.com/civicdesk/constituent-crm/internal/model"
	"github.com/civicdesk/constituent-crm/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// TagService owns the labeling taxonomy: tags and their categories.
// Mutations are admin-gated at the routing layer.
type TagService struct {
	repo     repository.TagRepositoryIface
	validate *validator.Validate
}

func NewTagService(repo repository.TagRepositoryIface) *TagService {
	return &TagService{
		repo:     repo,
		validate: validator.New(),
	}
}

type CreateTagInput struct {
	Name       string `json:"name" validate:"required"`
	CategoryID string `json:"categoryId" validate:"required,uuid"`
	Color      string `json:"color"`
	SortOrder  int    `json:"sortOrder"`
}

type UpdateTagInput struct {
	Name      *string `json:"name" validate:"omitempty,min=1"`
	Color     *string `json:"color"`
	SortOrder *int    `json:"sortOrder"`
	IsActive  *bool   `json:"isActive"`
}

type ListTagsInput struct {
	CategoryID      string
	IncludeInactive bool
}

type CreateCategoryInput struct {
	Name      string `json:"name" validate:"required"`
	SortOrder int    `json:"sortOrder"`
}

func (s *TagService) List(ctx context.Context, input ListTagsInput) ([]*model.Tag, error) {
	categoryID, err := optUUID(input.CategoryID)
	if err != nil {
		return nil, err
	}
	return s.repo.FindAll(ctx, repository.TagFilter{
		CategoryID:      categoryID,
		IncludeInactive: input.IncludeInactive,
	})
}

func (s *TagService) Get(ctx context.Context, id uuid.UUID) (*model.Tag, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TagService) Create(ctx context.Context, input CreateTagInput) (*model.Tag, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}

	categoryID, err := uuid.Parse(input.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("parsing category id: %w", err)
	}

	t := &model.Tag{
		Name:       input.Name,
		CategoryID: categoryID,
		Color:      optString(input.Color),
		SortOrder:  input.SortOrder,
		IsActive:   true,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, t.ID)
}

// Update applies only the fields present in the payload.
func (s *TagService) Update(ctx context.Context, id uuid.UUID, input UpdateTagInput) (*model.Tag, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Color != nil {
		fields["color"] = *input.Color
	}
	if input.SortOrder != nil {
		fields["sort_order"] = *input.SortOrder
	}
	if input.IsActive != nil {
		fields["is_active"] = *input.IsActive
	}
	if len(fields) == 0 {
		return s.repo.FindByID(ctx, id)
	}
	return s.repo.Update(ctx, id, fields)
}

// Delete soft-disables the tag rather than removing it.
func (s *TagService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Disable(ctx, id)
}

func (s *TagService) ListCategories(ctx context.Context) ([]*model.TagCategory, error) {
	return s.repo.FindAllCategories(ctx)
}

func (s *TagService) CreateCategory(ctx context.Context, input CreateCategoryInput) (*model.TagCategory, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}

	c := &model.TagCategory{
		Name:      input.Name,
		SortOrder: input.SortOrder,
	}
	if err := s.repo.CreateCategory(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
