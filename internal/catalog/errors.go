package catalog

import (
	"errors"
	"fmt"
)

// ErrMalformedInput is matched by every MalformedInputError.
var ErrMalformedInput = errors.New("malformed discovery document")

// MalformedInputError reports a required field missing from the discovery
// document. Path is the JSON location of the element that lacks it.
type MalformedInputError struct {
	Path  string
	Field string
}

func (e *MalformedInputError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%v: missing required field %q", ErrMalformedInput, e.Field)
	}

	return fmt.Sprintf("%v: %s: missing required field %q", ErrMalformedInput, e.Path, e.Field)
}

// Is lets errors.Is match ErrMalformedInput.
func (e *MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}

func missing(path, field string) error {
	return &MalformedInputError{Path: path, Field: field}
}
