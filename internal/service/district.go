// internal/service/district.go
package service

import (
	"context"

	"github.com/civicdesk/constituent-crm/internal/model"
	"github.com/civicdesk/constituent-crm/internal/repository"
)

// DistrictService serves the cascading region selectors. Which query mode
// runs depends on the parameters present: all → every district for the
// city, no township → distinct townships, township → its villages.
type DistrictService struct {
	repo        repository.DistrictRepositoryIface
	defaultCity string
}

func NewDistrictService(repo repository.DistrictRepositoryIface, defaultCity string) *DistrictService {
	return &DistrictService{
		repo:        repo,
		defaultCity: defaultCity,
	}
}

func (s *DistrictService) city(city string) string {
	if city == "" {
		return s.defaultCity
	}
	return city
}

func (s *DistrictService) ListAll(ctx context.Context, city string) ([]*model.District, error) {
	return s.repo.FindAllByCity(ctx, s.city(city))
}

func (s *DistrictService) ListTownships(ctx context.Context, city string) ([]string, error) {
	return s.repo.FindTownships(ctx, s.city(city))
}

func (s *DistrictService) ListVillages(ctx context.Context, city, township string) ([]*model.District, error) {
	return s.repo.FindVillages(ctx, s.city(city), township)
}
