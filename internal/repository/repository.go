// internal/repository/repository.go
package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

//go:generate mockgen -source=./constituent.go -destination=../mocks/mock_constituent_repository.go -package=mocks ConstituentRepositoryIface
//go:generate mockgen -source=./case.go -destination=../mocks/mock_case_repository.go -package=mocks CaseRepositoryIface
//go:generate mockgen -source=./event.go -destination=../mocks/mock_event_repository.go -package=mocks EventRepositoryIface
//go:generate mockgen -source=./tag.go -destination=../mocks/mock_tag_repository.go -package=mocks TagRepositoryIface
//go:generate mockgen -source=./option.go -destination=../mocks/mock_option_repository.go -package=mocks OptionRepositoryIface
//go:generate mockgen -source=./district.go -destination=../mocks/mock_district_repository.go -package=mocks DistrictRepositoryIface
//go:generate mockgen -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks UserRepositoryIface

const pgUniqueViolation = "23505"

// isNotFound reports whether err is gorm's missing-record error.
func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// isUniqueViolation reports whether err is a postgres unique-constraint error.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
