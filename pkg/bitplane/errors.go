package bitplane

import (
	"fmt"
)

// ValidationError reports input of the wrong shape. Want and Got are
// lengths unless Reason says otherwise.
type ValidationError struct {
	Field  string
	Want   int
	Got    int
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("bitplane: invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("bitplane: invalid %s length: want %d, got %d", e.Field, e.Want, e.Got)
}

func lengthError(field string, want, got int) error {
	return &ValidationError{Field: field, Want: want, Got: got}
}
