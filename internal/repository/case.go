// internal/repository/case.go
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/civicdesk/constituent-crm/internal/domain"
	"github.com/civicdesk/constituent-crm/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CaseFilter struct {
	Status     string
	CaseType   string
	AssigneeID *uuid.UUID
	Page       int
	Limit      int
}

type CaseRepositoryIface interface {
	Create(ctx context.Context, c *model.Case, participants []model.CaseConstituent) error
	FindByID(ctx context.Context, officeID, id uuid.UUID) (*model.Case, error)
	FindAll(ctx context.Context, officeID uuid.UUID, filter CaseFilter) ([]*model.Case, int64, error)
	UpdateStatus(ctx context.Context, officeID, id uuid.UUID, status model.CaseStatus) error
	FindProgress(ctx context.Context, officeID, caseID uuid.UUID) ([]*model.CaseProgress, error)
	AddProgress(ctx context.Context, officeID uuid.UUID, progress *model.CaseProgress) error
}

type CaseRepository struct {
	db *gorm.DB
}

func NewCaseRepository(db *gorm.DB) *CaseRepository {
	return &CaseRepository{db: db}
}

// Create inserts the case and its participant join rows atomically.
func (r *CaseRepository) Create(ctx context.Context, c *model.Case, participants []model.CaseConstituent) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(c).Error; err != nil {
			return fmt.Errorf("failed to create case: %w", err)
		}
		if len(participants) == 0 {
			return nil
		}
		for i := range participants {
			participants[i].CaseID = c.ID
		}
		if err := tx.Create(&participants).Error; err != nil {
			return fmt.Errorf("failed to link case constituents: %w", err)
		}
		return nil
	})
}

func (r *CaseRepository) FindByID(ctx context.Context, officeID, id uuid.UUID) (*model.Case, error) {
	var c model.Case
	err := r.db.WithContext(ctx).
		Preload("District").
		Preload("CreatedBy").
		Preload("Assignee").
		Preload("Constituents.Constituent").
		Where("id = ? AND office_id = ?", id, officeID).
		First(&c).Error
	if err != nil {
		if isNotFound(err) {
			return nil, domain.ErrCaseNotFound
		}
		return nil, fmt.Errorf("failed to find case: %w", err)
	}
	projectUserRefs(&c)
	return &c, nil
}

// FindAll returns a page of cases ordered by most recent activity, each
// carrying its latest progress entry and total progress count.
func (r *CaseRepository) FindAll(ctx context.Context, officeID uuid.UUID, filter CaseFilter) ([]*model.Case, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Case{}).
		Where("office_id = ?", officeID)

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.CaseType != "" {
		query = query.Where("case_type = ?", filter.CaseType)
	}
	if filter.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *filter.AssigneeID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count cases: %w", err)
	}

	var cases []*model.Case
	err := query.
		Preload("District").
		Preload("CreatedBy").
		Preload("Assignee").
		Preload("Constituents.Constituent").
		Order("updated_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&cases).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find cases: %w", err)
	}

	if err := r.attachProgressSummaries(ctx, cases); err != nil {
		return nil, 0, err
	}
	for _, c := range cases {
		projectUserRefs(c)
	}

	return cases, total, nil
}

func (r *CaseRepository) UpdateStatus(ctx context.Context, officeID, id uuid.UUID, status model.CaseStatus) error {
	result := r.db.WithContext(ctx).Model(&model.Case{}).
		Where("id = ? AND office_id = ?", id, officeID).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update case status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrCaseNotFound
	}
	return nil
}

func (r *CaseRepository) FindProgress(ctx context.Context, officeID, caseID uuid.UUID) ([]*model.CaseProgress, error) {
	if _, err := r.FindByID(ctx, officeID, caseID); err != nil {
		return nil, err
	}

	var progresses []*model.CaseProgress
	err := r.db.WithContext(ctx).
		Preload("CreatedBy").
		Where("case_id = ?", caseID).
		Order("created_at DESC").
		Find(&progresses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find case progress: %w", err)
	}
	for _, p := range progresses {
		if p.CreatedBy != nil {
			ref := p.CreatedBy.Ref()
			p.CreatedByRef = &ref
		}
	}
	return progresses, nil
}

// AddProgress inserts the progress entry and advances the parent case to
// IN_PROGRESS in a single transaction. A failure in either half leaves
// neither applied.
func (r *CaseRepository) AddProgress(ctx context.Context, officeID uuid.UUID, progress *model.CaseProgress) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c model.Case
		err := tx.Where("id = ? AND office_id = ?", progress.CaseID, officeID).First(&c).Error
		if err != nil {
			if isNotFound(err) {
				return domain.ErrCaseNotFound
			}
			return fmt.Errorf("failed to find case: %w", err)
		}

		if err := tx.Create(progress).Error; err != nil {
			return fmt.Errorf("failed to create case progress: %w", err)
		}

		err = tx.Model(&model.Case{}).
			Where("id = ?", progress.CaseID).
			Updates(map[string]interface{}{
				"status":     model.CaseInProgress,
				"updated_at": time.Now().UTC(),
			}).Error
		if err != nil {
			return fmt.Errorf("failed to advance case status: %w", err)
		}
		return nil
	})
}

// attachProgressSummaries fills ProgressCount and LatestProgress for a page
// of cases with two grouped queries instead of one per row.
func (r *CaseRepository) attachProgressSummaries(ctx context.Context, cases []*model.Case) error {
	if len(cases) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(cases))
	byID := make(map[uuid.UUID]*model.Case, len(cases))
	for _, c := range cases {
		ids = append(ids, c.ID)
		byID[c.ID] = c
	}

	var counts []struct {
		CaseID uuid.UUID
		Count  int64
	}
	err := r.db.WithContext(ctx).Model(&model.CaseProgress{}).
		Select("case_id, COUNT(*) AS count").
		Where("case_id IN ?", ids).
		Group("case_id").
		Scan(&counts).Error
	if err != nil {
		return fmt.Errorf("failed to count case progress: %w", err)
	}
	for _, row := range counts {
		byID[row.CaseID].ProgressCount = row.Count
	}

	var latest []model.CaseProgress
	err = r.db.WithContext(ctx).
		Raw(`SELECT DISTINCT ON (case_id) * FROM case_progresses
		     WHERE case_id IN ? ORDER BY case_id, created_at DESC`, ids).
		Scan(&latest).Error
	if err != nil {
		return fmt.Errorf("failed to load latest case progress: %w", err)
	}
	for i := range latest {
		p := latest[i]
		byID[p.CaseID].LatestProgress = &p
	}

	return nil
}

func projectUserRefs(c *model.Case) {
	if c.CreatedBy != nil {
		ref := c.CreatedBy.Ref()
		c.CreatedByRef = &ref
	}
	if c.Assignee != nil {
		ref := c.Assignee.Ref()
		c.AssigneeRef = &ref
	}
}
