package booking

import (
	"errors"
	"strings"
)

var ErrInvalidStatus = errors.New("invalid booking status")

// ValidationError carries every failed rule's message for the 400
// response. Nothing is written to the store when it is returned.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}
