package contact

import (
	"errors"
	"strings"
)

var ErrInvalidStatus = errors.New("invalid message status")

type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}
