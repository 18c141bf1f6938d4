package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/civicdesk/constituent-crm/internal/domain"
	"github.com/civicdesk/constituent-crm/internal/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (sqlmock.Sqlmock, *gorm.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return mock, gdb
}

func TestConstituentFindByIDNotFound(t *testing.T) {
	mock, db := setupMockDB(t)
	repo := repository.NewConstituentRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM "constituents" WHERE id = (.+) AND office_id = (.+) AND is_deleted`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByID(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrConstituentNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConstituentFindAllComposesFilters(t *testing.T) {
	officeID := uuid.New()
	districtID := uuid.New()

	t.Run("all filters narrow one office-scoped query", func(t *testing.T) {
		mock, db := setupMockDB(t)
		repo := repository.NewConstituentRepository(db)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "constituents" WHERE \(office_id = \$1 AND is_deleted = \$2\) AND \(name ILIKE \$3 OR phone ILIKE \$4 OR address ILIKE \$5\) AND relation_level = \$6 AND district_id = \$7`).
			WithArgs(officeID, false, "%王%", "%王%", "%王%", "FRIENDLY", districtID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
		mock.ExpectQuery(`SELECT (.+) FROM "constituents" WHERE \(office_id = (.+) AND is_deleted = (.+)\) AND \(name ILIKE (.+)\) AND relation_level = (.+) AND district_id = (.+) ORDER BY created_at DESC LIMIT`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "office_id", "name"}))

		_, total, err := repo.FindAll(context.Background(), officeID, repository.ConstituentFilter{
			Search:        "王",
			RelationLevel: "FRIENDLY",
			DistrictID:    &districtID,
			Page:          1,
			Limit:         20,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no filters still scope office and exclude deleted", func(t *testing.T) {
		mock, db := setupMockDB(t)
		repo := repository.NewConstituentRepository(db)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "constituents" WHERE office_id = \$1 AND is_deleted = \$2`).
			WithArgs(officeID, false).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(`SELECT (.+) FROM "constituents" WHERE office_id = (.+) AND is_deleted = (.+) ORDER BY created_at DESC LIMIT`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		rows, total, err := repo.FindAll(context.Background(), officeID, repository.ConstituentFilter{Page: 1, Limit: 20})
		require.NoError(t, err)
		assert.Empty(t, rows)
		assert.Zero(t, total)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestConstituentSoftDelete(t *testing.T) {
	officeID := uuid.New()
	id := uuid.New()

	t.Run("marks the row deleted", func(t *testing.T) {
		mock, db := setupMockDB(t)
		repo := repository.NewConstituentRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "constituents" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.SoftDelete(context.Background(), officeID, id)
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero rows means not found", func(t *testing.T) {
		mock, db := setupMockDB(t)
		repo := repository.NewConstituentRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "constituents" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := repo.SoftDelete(context.Background(), officeID, id)
		assert.ErrorIs(t, err, domain.ErrConstituentNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestConstituentReplaceTags(t *testing.T) {
	id := uuid.New()
	tagID := uuid.New()

	t.Run("clears and reassigns in one transaction", func(t *testing.T) {
		mock, db := setupMockDB(t)
		repo := repository.NewConstituentRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "constituent_tags" WHERE constituent_id`).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(`INSERT INTO "constituent_tags"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.ReplaceTags(context.Background(), id, []uuid.UUID{tagID})
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty set only clears", func(t *testing.T) {
		mock, db := setupMockDB(t)
		repo := repository.NewConstituentRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "constituent_tags" WHERE constituent_id`).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		err := repo.ReplaceTags(context.Background(), id, nil)
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failed assign rolls the delete back", func(t *testing.T) {
		mock, db := setupMockDB(t)
		repo := repository.NewConstituentRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "constituent_tags" WHERE constituent_id`).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(`INSERT INTO "constituent_tags"`).
			WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		err := repo.ReplaceTags(context.Background(), id, []uuid.UUID{tagID})
		assert.Error(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestConstituentAppendTags(t *testing.T) {
	id := uuid.New()

	t.Run("conflicting rows are skipped", func(t *testing.T) {
		mock, db := setupMockDB(t)
		repo := repository.NewConstituentRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO "constituent_tags" (.+) ON CONFLICT DO NOTHING`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.AppendTags(context.Background(), id, []uuid.UUID{uuid.New(), uuid.New()})
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty set issues no SQL", func(t *testing.T) {
		mock, db := setupMockDB(t)
		repo := repository.NewConstituentRepository(db)

		err := repo.AppendTags(context.Background(), id, nil)
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
