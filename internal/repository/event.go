// internal/repository/event.go
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/civicdesk/constituent-crm/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventFilter struct {
	EventType  string
	Attendance string
	FromDate   *time.Time
	ToDate     *time.Time
}

type EventRepositoryIface interface {
	Create(ctx context.Context, e *model.Event) error
	FindAll(ctx context.Context, officeID uuid.UUID, filter EventFilter) ([]*model.Event, error)
}

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, e *model.Event) error {
	if err := r.db.WithContext(ctx).Create(e).Error; err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

// FindAll returns the office's events ordered by date ascending. The date
// range is inclusive on both ends.
func (r *EventRepository) FindAll(ctx context.Context, officeID uuid.UUID, filter EventFilter) ([]*model.Event, error) {
	query := r.db.WithContext(ctx).
		Where("office_id = ?", officeID)

	if filter.EventType != "" {
		query = query.Where("event_type = ?", filter.EventType)
	}
	if filter.Attendance != "" {
		query = query.Where("attendance = ?", filter.Attendance)
	}
	if filter.FromDate != nil {
		query = query.Where("event_date >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		query = query.Where("event_date <= ?", *filter.ToDate)
	}

	var events []*model.Event
	err := query.
		Preload("Participants.Constituent").
		Order("event_date ASC").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find events: %w", err)
	}
	return events, nil
}
