package services

import (
	"errors"
	"fmt"

	"github.com/Kariqs/foodcourt-api/repository"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

var (
	ErrNotFound        = repository.ErrNotFound
	ErrUnauthenticated = errors.New("unauthenticated")
)

// ValidationError is a client mistake that resubmitting unchanged cannot fix.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// NormalizeLimit maps a missing or non-positive limit to the default and
// caps the rest.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
