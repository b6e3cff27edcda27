package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound is matched by every NotFoundError.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate indicates a unique constraint (article or category slug) collision.
	ErrDuplicate = errors.New("duplicate field value entered")

	// ErrStoreUnavailable indicates the entity store cannot be reached.
	ErrStoreUnavailable = errors.New("database is temporarily unavailable")
)

// NotFoundError reports that a well-formed lookup key resolved to nothing.
type NotFoundError struct {
	Resource string
}

// NotFound returns a NotFoundError for resource, e.g. "Article".
func NotFound(resource string) error {
	return &NotFoundError{Resource: resource}
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// Is makes errors.Is(err, ErrNotFound) hold for every NotFoundError.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ValidationError lists every violated field constraint of a rejected write.
type ValidationError struct {
	// Fields maps a field path such as "title.ar" to its message.
	Fields map[string]string
}

// NewValidationError creates a ValidationError from a field → message map.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages(), "; ")
}

// Messages returns the field messages ordered by field path.
func (e *ValidationError) Messages() []string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	messages := make([]string, 0, len(keys))
	for _, k := range keys {
		messages = append(messages, e.Fields[k])
	}
	return messages
}

// ReferenceError reports a malformed identifier or a reference to a missing entity.
type ReferenceError struct {
	Field string
	Value string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("Invalid %s: %s", e.Field, e.Value)
}
