package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const (
	ErrStatusInternalServer     = http.StatusInternalServerError
	ErrStatusClient             = http.StatusBadRequest
	ErrStatusNotFound           = http.StatusNotFound
	ErrStatusServiceUnavailable = http.StatusServiceUnavailable
)

var (
	ErrInternalServer = errors.New("Internal server error")
	ErrClient         = errors.New("Bad request")
	ErrNotFound       = errors.New("Resource not found")
	ErrStorage        = errors.New("Storage unavailable")
)

var errorMap = map[error]int{
	ErrInternalServer: ErrStatusInternalServer,
	ErrClient:         ErrStatusClient,
	ErrNotFound:       ErrStatusNotFound,
	ErrStorage:        ErrStatusServiceUnavailable,
}

// FieldError describes a single rejected input field.
type FieldError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
}

// ValidationError is returned when a request payload breaks an input rule.
// It unwraps to ErrClient.
type ValidationError struct {
	Fields []FieldError
}

func NewValidationError(field, tag string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Tag: tag}}}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrClient.Error()
	}

	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s failed on '%s'", f.Field, f.Tag))
	}

	return fmt.Sprintf("%s: %s", ErrClient.Error(), strings.Join(parts, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrClient
}

// NotFound wraps ErrNotFound with the missing entity for the response message.
func NotFound(entity, id string) error {
	return fmt.Errorf("%w: %s %s", ErrNotFound, entity, id)
}

// Storage wraps a driver failure so it maps to ErrStorage while keeping the cause.
func Storage(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}

func GetErrorStatusCode(err error) int {
	if errStatusCode, ok := errorMap[err]; ok {
		return errStatusCode
	}

	for sentinel, errStatusCode := range errorMap {
		if errors.Is(err, sentinel) {
			return errStatusCode
		}
	}

	return errorMap[ErrInternalServer]
}
