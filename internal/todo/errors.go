package todo

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTitle       = errors.New("invalid title")
	ErrInvalidDescription = errors.New("invalid description")
	ErrInvalidTaskID      = errors.New("invalid task id")
	ErrTaskNotFound       = errors.New("task not found")
)

// ValidationError reports rejected input together with a user-facing message.
type ValidationError struct {
	Path    string // field or JSON path the error refers to
	Err     error  // one of the Err* sentinels, or a schema error
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

func notFound(id int) *ValidationError {
	return &ValidationError{
		Path:    "id",
		Err:     ErrTaskNotFound,
		Message: fmt.Sprintf("Task #%d not found. Use 'View All Tasks' to see available IDs.", id),
	}
}
