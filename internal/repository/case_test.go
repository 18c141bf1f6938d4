package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/civicdesk/constituent-crm/internal/domain"
	"github.com/civicdesk/constituent-crm/internal/model"
	"github.com/civicdesk/constituent-crm/internal/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProgress(caseID uuid.UUID) *model.CaseProgress {
	return &model.CaseProgress{
		CaseID:      caseID,
		Content:     "已聯繫公所排定會勘",
		ActionType:  "phone",
		ActionDate:  time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		CreatedByID: uuid.New(),
	}
}

func caseRow(id, officeID uuid.UUID) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "office_id", "title", "case_type", "status", "priority", "created_by_id"}).
		AddRow(id.String(), officeID.String(), "路燈不亮", "petition", "PENDING", "NORMAL", uuid.New().String())
}

func TestCaseAddProgressCommitsBothWrites(t *testing.T) {
	mock, db := setupMockDB(t)
	repo := repository.NewCaseRepository(db)

	officeID := uuid.New()
	caseID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "cases" WHERE id = (.+) AND office_id`).
		WillReturnRows(caseRow(caseID, officeID))
	mock.ExpectQuery(`INSERT INTO "case_progresses"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
	mock.ExpectExec(`UPDATE "cases" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.AddProgress(context.Background(), officeID, newProgress(caseID))
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCaseAddProgressUnknownCase(t *testing.T) {
	mock, db := setupMockDB(t)
	repo := repository.NewCaseRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "cases" WHERE id = (.+) AND office_id`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	err := repo.AddProgress(context.Background(), uuid.New(), newProgress(uuid.New()))
	assert.ErrorIs(t, err, domain.ErrCaseNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCaseAddProgressRollsBackOnStatusFailure(t *testing.T) {
	mock, db := setupMockDB(t)
	repo := repository.NewCaseRepository(db)

	officeID := uuid.New()
	caseID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "cases" WHERE id = (.+) AND office_id`).
		WillReturnRows(caseRow(caseID, officeID))
	mock.ExpectQuery(`INSERT INTO "case_progresses"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
	mock.ExpectExec(`UPDATE "cases" SET`).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := repo.AddProgress(context.Background(), officeID, newProgress(caseID))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrCaseNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCaseUpdateStatus(t *testing.T) {
	officeID := uuid.New()
	caseID := uuid.New()

	t.Run("updates the row", func(t *testing.T) {
		mock, db := setupMockDB(t)
		repo := repository.NewCaseRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "cases" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.UpdateStatus(context.Background(), officeID, caseID, model.CaseClosed)
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero rows means not found", func(t *testing.T) {
		mock, db := setupMockDB(t)
		repo := repository.NewCaseRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "cases" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := repo.UpdateStatus(context.Background(), officeID, caseID, model.CaseClosed)
		assert.ErrorIs(t, err, domain.ErrCaseNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCaseCreateLinksParticipants(t *testing.T) {
	mock, db := setupMockDB(t)
	repo := repository.NewCaseRepository(db)

	officeID := uuid.New()
	c := &model.Case{
		Title:       "路燈不亮",
		CaseType:    "petition",
		Status:      model.CasePending,
		Priority:    model.PriorityNormal,
		CreatedByID: uuid.New(),
		OfficeID:    officeID,
	}
	participants := []model.CaseConstituent{
		{ConstituentID: uuid.New(), Role: model.RolePetitioner},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "cases"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
	mock.ExpectExec(`INSERT INTO "case_constituents"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Create(context.Background(), c, participants)
	require.NoError(t, err)
	assert.Equal(t, c.ID, participants[0].CaseID)
	require.NoError(t, mock.ExpectationsWereMet())
}
