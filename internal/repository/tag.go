// internal/repository/tag.go
package repository

import (
	"context"
	"fmt"

	"github.com/civicdesk/constituent-crm/internal/domain"
	"github.com/civicdesk/constituent-crm/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TagFilter struct {
	CategoryID      *uuid.UUID
	IncludeInactive bool
}

type TagRepositoryIface interface {
	Create(ctx context.Context, t *model.Tag) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Tag, error)
	FindAll(ctx context.Context, filter TagFilter) ([]*model.Tag, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Tag, error)
	Disable(ctx context.Context, id uuid.UUID) error
	CreateCategory(ctx context.Context, c *model.TagCategory) error
	FindAllCategories(ctx context.Context) ([]*model.TagCategory, error)
}

type TagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

func (r *TagRepository) Create(ctx context.Context, t *model.Tag) error {
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateTag
		}
		return fmt.Errorf("failed to create tag: %w", err)
	}
	return nil
}

func (r *TagRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Tag, error) {
	var t model.Tag
	err := r.db.WithContext(ctx).
		Preload("Category").
		First(&t, "id = ?", id).Error
	if err != nil {
		if isNotFound(err) {
			return nil, domain.ErrTagNotFound
		}
		return nil, fmt.Errorf("failed to find tag: %w", err)
	}
	if err := r.fillConstituentCounts(ctx, []*model.Tag{&t}); err != nil {
		return nil, err
	}
	return &t, nil
}

// FindAll returns tags ordered by category sort order then tag sort order,
// each with its assigned-constituent count.
func (r *TagRepository) FindAll(ctx context.Context, filter TagFilter) ([]*model.Tag, error) {
	query := r.db.WithContext(ctx).Model(&model.Tag{}).
		Joins("JOIN tag_categories ON tag_categories.id = tags.category_id")

	if filter.CategoryID != nil {
		query = query.Where("tags.category_id = ?", *filter.CategoryID)
	}
	if !filter.IncludeInactive {
		query = query.Where("tags.is_active = ?", true)
	}

	var tags []*model.Tag
	err := query.
		Preload("Category").
		Order("tag_categories.sort_order ASC, tags.sort_order ASC").
		Find(&tags).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find tags: %w", err)
	}
	if err := r.fillConstituentCounts(ctx, tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *TagRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Tag, error) {
	result := r.db.WithContext(ctx).Model(&model.Tag{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return nil, domain.ErrDuplicateTag
		}
		return nil, fmt.Errorf("failed to update tag: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrTagNotFound
	}
	return r.FindByID(ctx, id)
}

// Disable soft-disables the tag; assignments to constituents stay intact.
func (r *TagRepository) Disable(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&model.Tag{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return fmt.Errorf("failed to disable tag: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrTagNotFound
	}
	return nil
}

func (r *TagRepository) CreateCategory(ctx context.Context, c *model.TagCategory) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateCategory
		}
		return fmt.Errorf("failed to create tag category: %w", err)
	}
	return nil
}

func (r *TagRepository) FindAllCategories(ctx context.Context) ([]*model.TagCategory, error) {
	var categories []*model.TagCategory
	err := r.db.WithContext(ctx).
		Preload("Tags", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order("sort_order ASC")
		}).
		Order("sort_order ASC").
		Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find tag categories: %w", err)
	}

	if len(categories) == 0 {
		return categories, nil
	}
	ids := make([]uuid.UUID, 0, len(categories))
	byID := make(map[uuid.UUID]*model.TagCategory, len(categories))
	for _, c := range categories {
		ids = append(ids, c.ID)
		byID[c.ID] = c
	}
	var counts []struct {
		CategoryID uuid.UUID
		Count      int64
	}
	err = r.db.WithContext(ctx).Model(&model.Tag{}).
		Select("category_id, COUNT(*) AS count").
		Where("category_id IN ?", ids).
		Group("category_id").
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count tags: %w", err)
	}
	for _, row := range counts {
		byID[row.CategoryID].TagCount = row.Count
	}
	return categories, nil
}

func (r *TagRepository) fillConstituentCounts(ctx context.Context, tags []*model.Tag) error {
	if len(tags) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(tags))
	byID := make(map[uuid.UUID]*model.Tag, len(tags))
	for _, t := range tags {
		ids = append(ids, t.ID)
		byID[t.ID] = t
	}
	var counts []struct {
		TagID uuid.UUID
		Count int64
	}
	err := r.db.WithContext(ctx).Model(&model.ConstituentTag{}).
		Select("tag_id, COUNT(*) AS count").
		Where("tag_id IN ?", ids).
		Group("tag_id").
		Scan(&counts).Error
	if err != nil {
		return fmt.Errorf("failed to count tag assignments: %w", err)
	}
	for _, row := range counts {
		byID[row.TagID].ConstituentCount = row.Count
	}
	return nil
}
