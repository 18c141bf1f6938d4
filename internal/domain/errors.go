// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	// Auth-related errors
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user is inactive")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")

	// Constituent-related errors
	ErrConstituentNotFound = errors.New("constituent not found")

	// Case-related errors
	ErrCaseNotFound            = errors.New("case not found")
	ErrInvalidStatusTransition = errors.New("invalid case status transition")

	// Tag-related errors
	ErrTagNotFound         = errors.New("tag not found")
	ErrTagCategoryNotFound = errors.New("tag category not found")
	ErrDuplicateTag        = errors.New("tag already exists in category")
	ErrDuplicateCategory   = errors.New("tag category already exists")

	// Reference-data errors
	ErrDuplicateOption  = errors.New("option already exists for category")
	ErrDistrictNotFound = errors.New("district not found")
)
