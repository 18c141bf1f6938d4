// internal/service/case.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/civicdesk/constituent-crm/internal/auth"
	"github.com/civicdesk/constituent-crm/internal/domain"
	"github.com/civicdesk/constituent-crm/internal/model"
	"github.com/civicdesk/constituent-crm/internal/notify"
	"github.com/civicdesk/constituent-crm/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type CaseService struct {
	repo     repository.CaseRepositoryIface
	userRepo repository.UserRepositoryIface
	notifier *notify.Service
	validate *validator.Validate
}

func NewCaseService(repo repository.CaseRepositoryIface, userRepo repository.UserRepositoryIface, notifier *notify.Service) *CaseService {
	return &CaseService{
		repo:     repo,
		userRepo: userRepo,
		notifier: notifier,
		validate: validator.New(),
	}
}

type CreateCaseInput struct {
	Title          string   `json:"title" validate:"required"`
	Description    string   `json:"description"`
	CaseType       string   `json:"caseType" validate:"required"`
	CaseCategory   string   `json:"caseCategory"`
	Priority       string   `json:"priority" validate:"omitempty,oneof=LOW NORMAL HIGH URGENT"`
	DistrictID     string   `json:"districtId"`
	Location       string   `json:"location"`
	AssigneeID     string   `json:"assigneeId"`
	ConstituentIDs []string `json:"constituentIds"`
	// Role applies to every listed constituent; defaults to petitioner.
	Role string `json:"role" validate:"omitempty,oneof=petitioner witness contact"`
}

type ListCasesInput struct {
	Status     string
	CaseType   string
	AssigneeID string
	Page       int
	Limit      int
}

type CaseListOutput struct {
	Data       []*model.Case `json:"data"`
	Pagination Pagination    `json:"pagination"`
}

type AddProgressInput struct {
	Content    string `json:"content" validate:"required"`
	ActionType string `json:"actionType" validate:"required"`
	ActionDate string `json:"actionDate" validate:"required"`
	NextAction string `json:"nextAction"`
}

type UpdateCaseStatusInput struct {
	Status string `json:"status" validate:"required,oneof=PENDING IN_PROGRESS CLOSED"`
}

func (s *CaseService) List(ctx context.Context, principal *auth.Principal, input ListCasesInput) (*CaseListOutput, error) {
	page, limit := normalizePage(input.Page, input.Limit)

	assigneeID, err := optUUID(input.AssigneeID)
	if err != nil {
		return nil, err
	}

	filter := repository.CaseFilter{
		Status:     input.Status,
		CaseType:   input.CaseType,
		AssigneeID: assigneeID,
		Page:       page,
		Limit:      limit,
	}

	cases, total, err := s.repo.FindAll(ctx, principal.OfficeID, filter)
	if err != nil {
		return nil, fmt.Errorf("listing cases: %w", err)
	}

	return &CaseListOutput{
		Data:       cases,
		Pagination: paginate(page, limit, total),
	}, nil
}

func (s *CaseService) Get(ctx context.Context, principal *auth.Principal, id uuid.UUID) (*model.Case, error) {
	return s.repo.FindByID(ctx, principal.OfficeID, id)
}

func (s *CaseService) Create(ctx context.Context, principal *auth.Principal, input CreateCaseInput) (*model.Case, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}

	districtID, err := optUUID(input.DistrictID)
	if err != nil {
		return nil, err
	}
	assigneeID, err := optUUID(input.AssigneeID)
	if err != nil {
		return nil, err
	}

	priority := model.CasePriority(input.Priority)
	if priority == "" {
		priority = model.PriorityNormal
	}
	role := model.ParticipantRole(input.Role)
	if role == "" {
		role = model.RolePetitioner
	}

	c := &model.Case{
		Title:        input.Title,
		Description:  optString(input.Description),
		CaseType:     input.CaseType,
		CaseCategory: optString(input.CaseCategory),
		Priority:     priority,
		Status:       model.CasePending,
		DistrictID:   districtID,
		Location:     optString(input.Location),
		CreatedByID:  principal.UserID,
		AssigneeID:   assigneeID,
		OfficeID:     principal.OfficeID,
	}

	participants := make([]model.CaseConstituent, 0, len(input.ConstituentIDs))
	for _, raw := range input.ConstituentIDs {
		cid, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid constituent id %q", domain.ErrInvalidInput, raw)
		}
		participants = append(participants, model.CaseConstituent{
			ConstituentID: cid,
			Role:          role,
		})
	}

	if err := s.repo.Create(ctx, c, participants); err != nil {
		return nil, fmt.Errorf("creating case: %w", err)
	}

	s.notifyAssignee(ctx, c)

	return s.repo.FindByID(ctx, principal.OfficeID, c.ID)
}

// UpdateStatus performs the explicit close/reopen transition. PENDING never
// reappears once left; everything else moves between IN_PROGRESS and CLOSED.
func (s *CaseService) UpdateStatus(ctx context.Context, principal *auth.Principal, id uuid.UUID, input UpdateCaseStatusInput) (*model.Case, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, principal.OfficeID, id)
	if err != nil {
		return nil, err
	}

	next := model.CaseStatus(input.Status)
	if !validTransition(existing.Status, next) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidStatusTransition, existing.Status, next)
	}

	if err := s.repo.UpdateStatus(ctx, principal.OfficeID, id, next); err != nil {
		return nil, fmt.Errorf("updating case status: %w", err)
	}
	return s.repo.FindByID(ctx, principal.OfficeID, id)
}

func (s *CaseService) GetProgress(ctx context.Context, principal *auth.Principal, caseID uuid.UUID) ([]*model.CaseProgress, error) {
	return s.repo.FindProgress(ctx, principal.OfficeID, caseID)
}

func (s *CaseService) AddProgress(ctx context.Context, principal *auth.Principal, caseID uuid.UUID, input AddProgressInput) (*model.CaseProgress, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}

	actionDate, err := parseDate(input.ActionDate)
	if err != nil {
		return nil, err
	}

	progress := &model.CaseProgress{
		CaseID:      caseID,
		Content:     input.Content,
		ActionType:  input.ActionType,
		ActionDate:  actionDate,
		NextAction:  optString(input.NextAction),
		CreatedByID: principal.UserID,
	}

	if err := s.repo.AddProgress(ctx, principal.OfficeID, progress); err != nil {
		return nil, err
	}
	return progress, nil
}

func validTransition(from, to model.CaseStatus) bool {
	if from == to {
		return true
	}
	switch from {
	case model.CasePending:
		return to == model.CaseInProgress || to == model.CaseClosed
	case model.CaseInProgress:
		return to == model.CaseClosed
	case model.CaseClosed:
		return to == model.CaseInProgress
	}
	return false
}

// notifyAssignee emails the assignee about the new case. Best-effort: a
// delivery failure is logged, never surfaced to the caller.
func (s *CaseService) notifyAssignee(ctx context.Context, c *model.Case) {
	if s.notifier == nil || c.AssigneeID == nil {
		return
	}
	assignee, err := s.userRepo.FindByID(ctx, *c.AssigneeID)
	if err != nil {
		slog.WarnContext(ctx, "assignee lookup for notification failed", "error", err, "caseId", c.ID)
		return
	}
	msg := notify.Message{
		To:      assignee.Email,
		Subject: fmt.Sprintf("新案件指派：%s", c.Title),
		Body:    fmt.Sprintf("案件「%s」（%s）已指派給您。", c.Title, c.CaseType),
	}
	if err := s.notifier.Send(ctx, msg); err != nil {
		slog.WarnContext(ctx, "assignee notification failed", "error", err, "caseId", c.ID)
	}
}
