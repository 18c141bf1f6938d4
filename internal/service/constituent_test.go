package service_test

import (
	"context"
	"testing"

	"github.com/civicdesk/constituent-crm/internal/auth"
	"github.com/civicdesk/constituent-crm/internal/domain"
	"github.com/civicdesk/constituent-crm/internal/mocks"
	"github.com/civicdesk/constituent-crm/internal/model"
	"github.com/civicdesk/constituent-crm/internal/repository"
	"github.com/civicdesk/constituent-crm/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func staffPrincipal() *auth.Principal {
	return &auth.Principal{
		UserID:   uuid.New(),
		OfficeID: uuid.New(),
		Role:     model.RoleStaff,
	}
}

func TestConstituentListPagination(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	principal := staffPrincipal()

	t.Run("defaults applied when page and limit omitted", func(t *testing.T) {
		repo := mocks.NewMockConstituentRepositoryIface(ctrl)
		repo.EXPECT().
			FindAll(gomock.Any(), principal.OfficeID, repository.ConstituentFilter{Page: 1, Limit: 20}).
			Return([]*model.Constituent{}, int64(0), nil)

		out, err := service.NewConstituentService(repo).List(context.Background(), principal, service.ListConstituentsInput{})
		require.NoError(t, err)
		assert.Equal(t, 1, out.Pagination.Page)
		assert.Equal(t, 20, out.Pagination.Limit)
		assert.Equal(t, 0, out.Pagination.TotalPages)
	})

	t.Run("total pages rounds up", func(t *testing.T) {
		repo := mocks.NewMockConstituentRepositoryIface(ctrl)
		repo.EXPECT().
			FindAll(gomock.Any(), principal.OfficeID, gomock.Any()).
			Return(make([]*model.Constituent, 20), int64(41), nil)

		out, err := service.NewConstituentService(repo).List(context.Background(), principal, service.ListConstituentsInput{Page: 1, Limit: 20})
		require.NoError(t, err)
		assert.Equal(t, int64(41), out.Pagination.Total)
		assert.Equal(t, 3, out.Pagination.TotalPages)
	})

	t.Run("exact multiple does not add a page", func(t *testing.T) {
		repo := mocks.NewMockConstituentRepositoryIface(ctrl)
		repo.EXPECT().
			FindAll(gomock.Any(), principal.OfficeID, gomock.Any()).
			Return(make([]*model.Constituent, 20), int64(20), nil)

		out, err := service.NewConstituentService(repo).List(context.Background(), principal, service.ListConstituentsInput{Page: 1, Limit: 20})
		require.NoError(t, err)
		assert.Equal(t, 1, out.Pagination.TotalPages)
	})

	t.Run("invalid district id", func(t *testing.T) {
		repo := mocks.NewMockConstituentRepositoryIface(ctrl)

		_, err := service.NewConstituentService(repo).List(context.Background(), principal, service.ListConstituentsInput{DistrictID: "nope"})
		assert.Error(t, err)
	})
}

func TestConstituentCreateNormalization(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	principal := staffPrincipal()
	repo := mocks.NewMockConstituentRepositoryIface(ctrl)
	svc := service.NewConstituentService(repo)

	var created *model.Constituent
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *model.Constituent) error {
			c.ID = uuid.New()
			created = c
			return nil
		})
	repo.EXPECT().
		FindByID(gomock.Any(), principal.OfficeID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ uuid.UUID) (*model.Constituent, error) {
			return created, nil
		})

	out, err := svc.Create(context.Background(), principal, service.ConstituentInput{
		Name:          "王小明",
		Phone:         "0912345678",
		Birthday:      "1960-05-01",
		Gender:        "MALE",
		RelationLevel: "A",
	})
	require.NoError(t, err)

	assert.Equal(t, principal.OfficeID, out.OfficeID)
	require.NotNil(t, out.Phone)
	assert.Equal(t, "0912345678", *out.Phone)
	// Blank optionals stay NULL instead of empty strings.
	assert.Nil(t, out.Email)
	assert.Nil(t, out.Address)
	require.NotNil(t, out.Birthday)
	assert.Equal(t, 1960, out.Birthday.Year())
	require.NotNil(t, out.Gender)
	assert.Equal(t, model.GenderMale, *out.Gender)
}

func TestConstituentCreateValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockConstituentRepositoryIface(ctrl)
	svc := service.NewConstituentService(repo)

	t.Run("name required", func(t *testing.T) {
		_, err := svc.Create(context.Background(), staffPrincipal(), service.ConstituentInput{})
		assert.Error(t, err)
	})

	t.Run("relation level restricted", func(t *testing.T) {
		_, err := svc.Create(context.Background(), staffPrincipal(), service.ConstituentInput{
			Name:          "王小明",
			RelationLevel: "Z",
		})
		assert.Error(t, err)
	})
}

func TestConstituentTagOpsCheckOwnership(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	principal := staffPrincipal()
	id := uuid.New()

	repo := mocks.NewMockConstituentRepositoryIface(ctrl)
	repo.EXPECT().
		FindByID(gomock.Any(), principal.OfficeID, id).
		Return(nil, domain.ErrConstituentNotFound)

	svc := service.NewConstituentService(repo)
	_, err := svc.ReplaceTags(context.Background(), principal, id, []uuid.UUID{uuid.New()})
	assert.ErrorIs(t, err, domain.ErrConstituentNotFound)
}

func TestConstituentReplaceTagsReturnsFreshSet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	principal := staffPrincipal()
	id := uuid.New()
	tagID := uuid.New()
	tags := []*model.Tag{{ID: tagID, Name: "里長"}}

	repo := mocks.NewMockConstituentRepositoryIface(ctrl)
	gomock.InOrder(
		repo.EXPECT().
			FindByID(gomock.Any(), principal.OfficeID, id).
			Return(&model.Constituent{ID: id}, nil),
		repo.EXPECT().
			ReplaceTags(gomock.Any(), id, []uuid.UUID{tagID}).
			Return(nil),
		repo.EXPECT().
			FindTags(gomock.Any(), id).
			Return(tags, nil),
	)

	svc := service.NewConstituentService(repo)
	out, err := svc.ReplaceTags(context.Background(), principal, id, []uuid.UUID{tagID})
	require.NoError(t, err)
	assert.Equal(t, tags, out)
}
