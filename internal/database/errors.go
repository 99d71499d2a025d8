package database

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a row does not exist within the caller's
	// tenant scope. Callers cannot distinguish a missing row from another
	// admin's row, which is deliberate.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateUsername signals a registration attempt for a taken username.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrDuplicateLink signals an assignment that already exists for the pair.
	ErrDuplicateLink = errors.New("link already exists")

	// ErrSchemaMissing indicates a query ran against an uninitialized store.
	ErrSchemaMissing = errors.New("database schema is missing")

	// ErrInvalidCredentials covers both unknown usernames and bad passwords.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// StorageError wraps a driver-level failure with the operation that hit it.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Classify maps a raw gorm/sqlite error to the package taxonomy. The op names
// the repository operation for log context.
func Classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrDuplicateUsername) ||
		errors.Is(err, ErrDuplicateLink) || errors.Is(err, ErrSchemaMissing) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if IsMissingTable(err) {
		return fmt.Errorf("%w: %s", ErrSchemaMissing, op)
	}
	return &StorageError{Op: op, Err: err}
}

// IsUniqueViolation reports whether err is a UNIQUE constraint failure.
func IsUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// IsMissingTable reports whether err means the schema was never created.
// SQLite surfaces this as a plain "no such table" message rather than a
// dedicated error code.
func IsMissingTable(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "no such table")
}
