// internal/service/event.go
package service

import (
	"context"
	"fmt"

	"github.com/civicdesk/constituent-crm/internal/auth"
	"github.com/civicdesk/constituent-crm/internal/model"
	"github.com/civicdesk/constituent-crm/internal/repository"
	"github.com/go-playground/validator/v10"
)

type EventService struct {
	repo     repository.EventRepositoryIface
	validate *validator.Validate
}

func NewEventService(repo repository.EventRepositoryIface) *EventService {
	return &EventService{
		repo:     repo,
		validate: validator.New(),
	}
}

type CreateEventInput struct {
	Title       string `json:"title" validate:"required"`
	EventType   string `json:"eventType" validate:"required"`
	Description string `json:"description"`
	EventDate   string `json:"eventDate" validate:"required"`
	Location    string `json:"location"`
	// HostName and DeceasedName are conventionally filled only for
	// wedding / funeral event types.
	HostName     string `json:"hostName"`
	DeceasedName string `json:"deceasedName"`
}

type ListEventsInput struct {
	EventType  string
	Attendance string
	FromDate   string
	ToDate     string
}

func (s *EventService) List(ctx context.Context, principal *auth.Principal, input ListEventsInput) ([]*model.Event, error) {
	fromDate, err := optDate(input.FromDate)
	if err != nil {
		return nil, err
	}
	toDate, err := optDate(input.ToDate)
	if err != nil {
		return nil, err
	}

	filter := repository.EventFilter{
		EventType:  input.EventType,
		Attendance: input.Attendance,
		FromDate:   fromDate,
		ToDate:     toDate,
	}

	events, err := s.repo.FindAll(ctx, principal.OfficeID, filter)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	return events, nil
}

func (s *EventService) Create(ctx context.Context, principal *auth.Principal, input CreateEventInput) (*model.Event, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}

	eventDate, err := parseDate(input.EventDate)
	if err != nil {
		return nil, err
	}

	e := &model.Event{
		Title:        input.Title,
		EventType:    input.EventType,
		Description:  optString(input.Description),
		EventDate:    eventDate,
		Location:     optString(input.Location),
		HostName:     optString(input.HostName),
		DeceasedName: optString(input.DeceasedName),
		Attendance:   model.AttendancePending,
		CreatedByID:  principal.UserID,
		OfficeID:     principal.OfficeID,
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("creating event: %w", err)
	}
	return e, nil
}
