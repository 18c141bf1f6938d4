// internal/repository/district.go
package repository

import (
	"context"
	"fmt"

	"github.com/civicdesk/constituent-crm/internal/model"
	"gorm.io/gorm"
)

type DistrictRepositoryIface interface {
	FindAllByCity(ctx context.Context, city string) ([]*model.District, error)
	FindTownships(ctx context.Context, city string) ([]string, error)
	FindVillages(ctx context.Context, city, township string) ([]*model.District, error)
}

type DistrictRepository struct {
	db *gorm.DB
}

func NewDistrictRepository(db *gorm.DB) *DistrictRepository {
	return &DistrictRepository{db: db}
}

func (r *DistrictRepository) FindAllByCity(ctx context.Context, city string) ([]*model.District, error) {
	var districts []*model.District
	err := r.db.WithContext(ctx).
		Where("city = ?", city).
		Order("township ASC, village ASC").
		Find(&districts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find districts: %w", err)
	}
	return districts, nil
}

func (r *DistrictRepository) FindTownships(ctx context.Context, city string) ([]string, error) {
	var townships []string
	err := r.db.WithContext(ctx).Model(&model.District{}).
		Distinct("township").
		Where("city = ?", city).
		Order("township ASC").
		Pluck("township", &townships).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find townships: %w", err)
	}
	return townships, nil
}

func (r *DistrictRepository) FindVillages(ctx context.Context, city, township string) ([]*model.District, error) {
	var districts []*model.District
	err := r.db.WithContext(ctx).
		Where("city = ? AND township = ?", city, township).
		Order("village ASC").
		Find(&districts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find villages: %w", err)
	}
	return districts, nil
}
