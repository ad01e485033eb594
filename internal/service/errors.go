package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a referenced entity id does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrNotOwner is returned when the acting user is not the resource's author.
	ErrNotOwner = errors.New("only the author may modify this resource")
)

// ValidationError carries a field-keyed message map for 400-class responses.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return strings.Join(parts, "; ")
}

// NewValidationError builds a single-field validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// isDuplicateKey reports whether err is a unique-constraint violation. GORM
// translates driver errors for postgres; the sqlite driver used in tests
// reports the raw constraint message instead.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
