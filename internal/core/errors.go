package core

import (
	"errors"
	"fmt"
)

var (
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrDuplicateEmployeeID = errors.New("employee ID already exists")
	ErrDuplicateEmail      = errors.New("email already exists")
)

// ValidationError reports an empty or malformed request field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func required(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: "field is required"}
}
