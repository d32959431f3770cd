package repository

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNotFound means the id or lookup key has no matching row.
	ErrNotFound = errors.New("record not found")

	// ErrConflict means a write broke a uniqueness or foreign-key constraint.
	ErrConflict = errors.New("conflicts with existing data")

	// ErrInvalidCredentials covers both unknown email and wrong password so
	// callers cannot tell which factor failed.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// translate maps driver-level gorm errors onto the repository taxonomy.
// Anything unrecognized propagates unmodified for the boundary to log.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrConflict
	default:
		return err
	}
}
