// internal/repository/option.go
package repository

import (
	"context"
	"fmt"

	"github.com/civicdesk/constituent-crm/internal/domain"
	"github.com/civicdesk/constituent-crm/internal/model"
	"gorm.io/gorm"
)

type OptionFilter struct {
	Category        string
	IncludeInactive bool
}

type OptionRepositoryIface interface {
	Create(ctx context.Context, o *model.SelectOption) error
	FindAll(ctx context.Context, filter OptionFilter) ([]*model.SelectOption, error)
}

type OptionRepository struct {
	db *gorm.DB
}

func NewOptionRepository(db *gorm.DB) *OptionRepository {
	return &OptionRepository{db: db}
}

func (r *OptionRepository) Create(ctx context.Context, o *model.SelectOption) error {
	if err := r.db.WithContext(ctx).Create(o).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateOption
		}
		return fmt.Errorf("failed to create option: %w", err)
	}
	return nil
}

func (r *OptionRepository) FindAll(ctx context.Context, filter OptionFilter) ([]*model.SelectOption, error) {
	query := r.db.WithContext(ctx)

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if !filter.IncludeInactive {
		query = query.Where("is_active = ?", true)
	}

	var options []*model.SelectOption
	err := query.
		Order("category ASC, sort_order ASC").
		Find(&options).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find options: %w", err)
	}
	return options, nil
}
