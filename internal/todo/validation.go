package todo

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Length limits, in runes.
const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 1000
)

// ValidateTitle checks a raw title. Emptiness is judged on the trimmed value
// while the length bound applies to the untrimmed input.
func ValidateTitle(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return &ValidationError{
			Path:    "title",
			Err:     ErrInvalidTitle,
			Message: "Task title cannot be empty.",
		}
	}
	if utf8.RuneCountInString(raw) > MaxTitleLength {
		return &ValidationError{
			Path:    "title",
			Err:     ErrInvalidTitle,
			Message: fmt.Sprintf("Task title must be %d characters or less.", MaxTitleLength),
		}
	}
	return nil
}

// ValidateDescription checks a raw description. The empty string is valid.
func ValidateDescription(raw string) error {
	if utf8.RuneCountInString(raw) > MaxDescriptionLength {
		return &ValidationError{
			Path:    "description",
			Err:     ErrInvalidDescription,
			Message: fmt.Sprintf("Task description must be %d characters or less.", MaxDescriptionLength),
		}
	}
	return nil
}

// ParseID parses a raw task ID without checking that it exists.
func ParseID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &ValidationError{
			Path:    "id",
			Err:     ErrInvalidTaskID,
			Message: fmt.Sprintf("%q is not a valid number. Please enter a valid task ID.", raw),
		}
	}
	return id, nil
}

// ValidateID parses a raw task ID and checks that the store holds it.
func (s *Store) ValidateID(raw string) (int, error) {
	id, err := ParseID(raw)
	if err != nil {
		return 0, err
	}
	if _, ok := s.tasks[id]; !ok {
		return 0, notFound(id)
	}
	return id, nil
}
