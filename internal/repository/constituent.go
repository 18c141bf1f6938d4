// internal/repository/constituent.go
package repository

import (
	"context"
	"fmt"

	"github.com/civicdesk/constituent-crm/internal/domain"
	"github.com/civicdesk/constituent-crm/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ConstituentFilter narrows constituent list queries. Zero values mean
// "no filter" for the optional fields.
type ConstituentFilter struct {
	Search        string
	RelationLevel string
	DistrictID    *uuid.UUID
	Page          int
	Limit         int
}

type ConstituentRepositoryIface interface {
	Create(ctx context.Context, c *model.Constituent) error
	FindByID(ctx context.Context, officeID, id uuid.UUID) (*model.Constituent, error)
	FindAll(ctx context.Context, officeID uuid.UUID, filter ConstituentFilter) ([]*model.Constituent, int64, error)
	Update(ctx context.Context, c *model.Constituent) error
	SoftDelete(ctx context.Context, officeID, id uuid.UUID) error
	FindTags(ctx context.Context, id uuid.UUID) ([]*model.Tag, error)
	ReplaceTags(ctx context.Context, id uuid.UUID, tagIDs []uuid.UUID) error
	AppendTags(ctx context.Context, id uuid.UUID, tagIDs []uuid.UUID) error
}

type ConstituentRepository struct {
	db *gorm.DB
}

func NewConstituentRepository(db *gorm.DB) *ConstituentRepository {
	return &ConstituentRepository{db: db}
}

func (r *ConstituentRepository) Create(ctx context.Context, c *model.Constituent) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("failed to create constituent: %w", err)
	}
	return nil
}

// FindByID resolves a constituent within the caller's office. Deleted rows
// and rows owned by another office both surface as not-found.
func (r *ConstituentRepository) FindByID(ctx context.Context, officeID, id uuid.UUID) (*model.Constituent, error) {
	var c model.Constituent
	err := r.db.WithContext(ctx).
		Preload("District").
		Preload("Tags").
		Where("id = ? AND office_id = ? AND is_deleted = ?", id, officeID, false).
		First(&c).Error
	if err != nil {
		if isNotFound(err) {
			return nil, domain.ErrConstituentNotFound
		}
		return nil, fmt.Errorf("failed to find constituent: %w", err)
	}
	return &c, nil
}

func (r *ConstituentRepository) FindAll(ctx context.Context, officeID uuid.UUID, filter ConstituentFilter) ([]*model.Constituent, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Constituent{}).
		Where("office_id = ? AND is_deleted = ?", officeID, false)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR phone ILIKE ? OR address ILIKE ?", pattern, pattern, pattern)
	}
	if filter.RelationLevel != "" {
		query = query.Where("relation_level = ?", filter.RelationLevel)
	}
	if filter.DistrictID != nil {
		query = query.Where("district_id = ?", *filter.DistrictID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count constituents: %w", err)
	}

	var constituents []*model.Constituent
	err := query.
		Preload("District").
		Preload("Tags").
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&constituents).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find constituents: %w", err)
	}

	return constituents, total, nil
}

func (r *ConstituentRepository) Update(ctx context.Context, c *model.Constituent) error {
	if err := r.db.WithContext(ctx).Save(c).Error; err != nil {
		return fmt.Errorf("failed to update constituent: %w", err)
	}
	return nil
}

// SoftDelete marks the constituent deleted. The row stays in storage and is
// excluded from every default read from here on.
func (r *ConstituentRepository) SoftDelete(ctx context.Context, officeID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&model.Constituent{}).
		Where("id = ? AND office_id = ? AND is_deleted = ?", id, officeID, false).
		Update("is_deleted", true)
	if result.Error != nil {
		return fmt.Errorf("failed to delete constituent: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrConstituentNotFound
	}
	return nil
}

func (r *ConstituentRepository) FindTags(ctx context.Context, id uuid.UUID) ([]*model.Tag, error) {
	var tags []*model.Tag
	err := r.db.WithContext(ctx).
		Joins("JOIN constituent_tags ON constituent_tags.tag_id = tags.id").
		Where("constituent_tags.constituent_id = ?", id).
		Preload("Category").
		Find(&tags).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find constituent tags: %w", err)
	}
	return tags, nil
}

// ReplaceTags swaps the constituent's whole tag set inside one transaction
// so a concurrent reader never observes the half-cleared state.
func (r *ConstituentRepository) ReplaceTags(ctx context.Context, id uuid.UUID, tagIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("constituent_id = ?", id).Delete(&model.ConstituentTag{}).Error; err != nil {
			return fmt.Errorf("failed to clear constituent tags: %w", err)
		}
		if len(tagIDs) == 0 {
			return nil
		}
		rows := make([]model.ConstituentTag, 0, len(tagIDs))
		for _, tagID := range tagIDs {
			rows = append(rows, model.ConstituentTag{ConstituentID: id, TagID: tagID})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to assign constituent tags: %w", err)
		}
		return nil
	})
}

// AppendTags adds only the tags not already present. The unique pair
// constraint plus ON CONFLICT DO NOTHING makes the call idempotent.
func (r *ConstituentRepository) AppendTags(ctx context.Context, id uuid.UUID, tagIDs []uuid.UUID) error {
	if len(tagIDs) == 0 {
		return nil
	}
	rows := make([]model.ConstituentTag, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		rows = append(rows, model.ConstituentTag{ConstituentID: id, TagID: tagID})
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
	if err != nil {
		return fmt.Errorf("failed to append constituent tags: %w", err)
	}
	return nil
}
