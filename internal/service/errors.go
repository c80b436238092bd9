package service

import (
	"errors"
	"fmt"
)

// ErrNotFound means the referenced identifier does not exist.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateID means a property with the same external property id
// already exists.
var ErrDuplicateID = errors.New("property id already exists")

// ValidationError rejects malformed or out-of-range input before any store
// mutation happens.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalidf(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
