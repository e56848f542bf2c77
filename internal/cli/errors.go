package cli

import (
	"errors"
	"fmt"

	"github.com/jacksmith/album/internal/album"
)

// NotFoundError indicates a deck or picture was not found.
type NotFoundError struct {
	Type string // "deck" or "picture"
	ID   string // the name or url that was not found
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Type, e.ID)
}

// ValidationError indicates invalid command input.
type ValidationError struct {
	Field   string // the field that failed validation
	Message string // what went wrong
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

// FormatError returns a user-friendly error message.
// It prefixes the error with "error: " for consistent CLI output, and adds
// a hint for album errors the user can act on.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	msg := "error: " + err.Error()

	var ioErr *album.IOError
	switch {
	case errors.Is(err, album.ErrNotSourced):
		msg += "\nhint: load the album from a file before saving"
	case errors.As(err, &ioErr) && ioErr.Op == "read":
		msg += "\nhint: run `album init` to create the album file"
	}
	return msg
}
