package service_test

import (
	"context"
	"testing"

	"github.com/civicdesk/constituent-crm/internal/mocks"
	"github.com/civicdesk/constituent-crm/internal/model"
	"github.com/civicdesk/constituent-crm/internal/repository"
	"github.com/civicdesk/constituent-crm/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOptionListGrouped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockOptionRepositoryIface(ctrl)
	repo.EXPECT().
		FindAll(gomock.Any(), repository.OptionFilter{}).
		Return([]*model.SelectOption{
			{Category: "caseType", Value: "petition", Label: "陳情協調"},
			{Category: "caseType", Value: "legal", Label: "法律諮詢"},
			{Category: "eventType", Value: "wedding", Label: "紅帖（婚禮）"},
		}, nil)

	grouped, err := service.NewOptionService(repo).ListGrouped(context.Background(), false)
	require.NoError(t, err)

	assert.Len(t, grouped, 2)
	assert.Len(t, grouped["caseType"], 2)
	assert.Len(t, grouped["eventType"], 1)
	assert.Equal(t, "petition", grouped["caseType"][0].Value)
}

func TestOptionCreateValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := service.NewOptionService(mocks.NewMockOptionRepositoryIface(ctrl))
	_, err := svc.Create(context.Background(), service.CreateOptionInput{Category: "caseType"})
	assert.Error(t, err)
}

func TestDistrictDefaultCity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockDistrictRepositoryIface(ctrl)
	svc := service.NewDistrictService(repo, "花蓮縣")

	t.Run("city falls back to the configured default", func(t *testing.T) {
		repo.EXPECT().
			FindTownships(gomock.Any(), "花蓮縣").
			Return([]string{"花蓮市", "吉安鄉"}, nil)

		townships, err := svc.ListTownships(context.Background(), "")
		require.NoError(t, err)
		assert.Equal(t, []string{"花蓮市", "吉安鄉"}, townships)
	})

	t.Run("explicit city wins", func(t *testing.T) {
		repo.EXPECT().
			FindVillages(gomock.Any(), "臺東縣", "臺東市").
			Return([]*model.District{}, nil)

		_, err := svc.ListVillages(context.Background(), "臺東縣", "臺東市")
		require.NoError(t, err)
	})
}
