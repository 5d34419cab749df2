package todo

import (
	"errors"
	"strings"
)

var (
	// ErrEmptyText rejects blank input at the view boundary.
	ErrEmptyText = errors.New("text is empty")
	// ErrNotFound is returned by lookups of an id that is not in the collection.
	ErrNotFound = errors.New("item not found")
)

// ValidateText checks that text is non-empty after trimming. Views call it
// before dispatching Add or Update; the reducer trusts its input.
func ValidateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyText
	}
	return nil
}
