// internal/service/constituent.go
package service

import (
	"context"
	"fmt"

	"github.com/civicdesk/constituent-crm/internal/auth"
	"github.com/civicdesk/constituent-crm/internal/model"
	"github.com/civicdesk/constituent-crm/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type ConstituentService struct {
	repo     repository.ConstituentRepositoryIface
	validate *validator.Validate
}

func NewConstituentService(repo repository.ConstituentRepositoryIface) *ConstituentService {
	return &ConstituentService{
		repo:     repo,
		validate: validator.New(),
	}
}

// ConstituentInput is the create/update payload. Optional fields arrive as
// strings and are normalized: empty string becomes NULL, dates are parsed.
type ConstituentInput struct {
	Name          string `json:"name" validate:"required"`
	Phone         string `json:"phone"`
	Phone2        string `json:"phone2"`
	Email         string `json:"email"`
	Birthday      string `json:"birthday"`
	Gender        string `json:"gender" validate:"omitempty,oneof=MALE FEMALE OTHER"`
	Occupation    string `json:"occupation"`
	Note          string `json:"note"`
	Address       string `json:"address"`
	RelationLevel string `json:"relationLevel" validate:"omitempty,oneof=A B C D"`
	Influence     string `json:"influence"`
	DistrictID    string `json:"districtId"`
}

type ListConstituentsInput struct {
	Search        string
	RelationLevel string
	DistrictID    string
	Page          int
	Limit         int
}

type ConstituentListOutput struct {
	Data       []*model.Constituent `json:"data"`
	Pagination Pagination           `json:"pagination"`
}

func (s *ConstituentService) List(ctx context.Context, principal *auth.Principal, input ListConstituentsInput) (*ConstituentListOutput, error) {
	page, limit := normalizePage(input.Page, input.Limit)

	districtID, err := optUUID(input.DistrictID)
	if err != nil {
		return nil, err
	}

	filter := repository.ConstituentFilter{
		Search:        input.Search,
		RelationLevel: input.RelationLevel,
		DistrictID:    districtID,
		Page:          page,
		Limit:         limit,
	}

	constituents, total, err := s.repo.FindAll(ctx, principal.OfficeID, filter)
	if err != nil {
		return nil, fmt.Errorf("listing constituents: %w", err)
	}

	return &ConstituentListOutput{
		Data:       constituents,
		Pagination: paginate(page, limit, total),
	}, nil
}

func (s *ConstituentService) Get(ctx context.Context, principal *auth.Principal, id uuid.UUID) (*model.Constituent, error) {
	return s.repo.FindByID(ctx, principal.OfficeID, id)
}

func (s *ConstituentService) Create(ctx context.Context, principal *auth.Principal, input ConstituentInput) (*model.Constituent, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}

	c, err := s.buildConstituent(input)
	if err != nil {
		return nil, err
	}
	c.OfficeID = principal.OfficeID

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("creating constituent: %w", err)
	}
	return s.repo.FindByID(ctx, principal.OfficeID, c.ID)
}

func (s *ConstituentService) Update(ctx context.Context, principal *auth.Principal, id uuid.UUID, input ConstituentInput) (*model.Constituent, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, principal.OfficeID, id)
	if err != nil {
		return nil, err
	}

	updated, err := s.buildConstituent(input)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	updated.OfficeID = existing.OfficeID
	updated.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(ctx, updated); err != nil {
		return nil, fmt.Errorf("updating constituent: %w", err)
	}
	return s.repo.FindByID(ctx, principal.OfficeID, id)
}

func (s *ConstituentService) Delete(ctx context.Context, principal *auth.Principal, id uuid.UUID) error {
	return s.repo.SoftDelete(ctx, principal.OfficeID, id)
}

// GetTags returns the constituent's tag set with categories. Ownership is
// checked first so a foreign or deleted constituent surfaces as not-found.
func (s *ConstituentService) GetTags(ctx context.Context, principal *auth.Principal, id uuid.UUID) ([]*model.Tag, error) {
	if _, err := s.repo.FindByID(ctx, principal.OfficeID, id); err != nil {
		return nil, err
	}
	return s.repo.FindTags(ctx, id)
}

// ReplaceTags overwrites the constituent's tag set with exactly tagIDs.
func (s *ConstituentService) ReplaceTags(ctx context.Context, principal *auth.Principal, id uuid.UUID, tagIDs []uuid.UUID) ([]*model.Tag, error) {
	if _, err := s.repo.FindByID(ctx, principal.OfficeID, id); err != nil {
		return nil, err
	}
	if err := s.repo.ReplaceTags(ctx, id, tagIDs); err != nil {
		return nil, fmt.Errorf("replacing constituent tags: %w", err)
	}
	return s.repo.FindTags(ctx, id)
}

// AppendTags adds tagIDs to the existing set, skipping already-assigned tags.
func (s *ConstituentService) AppendTags(ctx context.Context, principal *auth.Principal, id uuid.UUID, tagIDs []uuid.UUID) ([]*model.Tag, error) {
	if _, err := s.repo.FindByID(ctx, principal.OfficeID, id); err != nil {
		return nil, err
	}
	if err := s.repo.AppendTags(ctx, id, tagIDs); err != nil {
		return nil, fmt.Errorf("appending constituent tags: %w", err)
	}
	return s.repo.FindTags(ctx, id)
}

func (s *ConstituentService) buildConstituent(input ConstituentInput) (*model.Constituent, error) {
	birthday, err := optDate(input.Birthday)
	if err != nil {
		return nil, err
	}
	districtID, err := optUUID(input.DistrictID)
	if err != nil {
		return nil, err
	}

	c := &model.Constituent{
		Name:       input.Name,
		Phone:      optString(input.Phone),
		Phone2:     optString(input.Phone2),
		Email:      optString(input.Email),
		Birthday:   birthday,
		Occupation: optString(input.Occupation),
		Note:       optString(input.Note),
		Address:    optString(input.Address),
		Influence:  optString(input.Influence),
		DistrictID: districtID,
	}
	if input.Gender != "" {
		g := model.Gender(input.Gender)
		c.Gender = &g
	}
	if input.RelationLevel != "" {
		rl := model.RelationLevel(input.RelationLevel)
		c.RelationLevel = &rl
	}
	return c, nil
}
