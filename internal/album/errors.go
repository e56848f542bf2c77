package album

import (
	"errors"
	"fmt"
)

// ErrNotSourced is returned by Save when the album was never loaded from
// or created at a file, so there is nowhere to write it.
var ErrNotSourced = errors.New("album has no source file")

// IOError indicates the album file could not be read or written.
type IOError struct {
	Op   string // "read", "write" or "create"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s album file %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ParseError indicates the album file content is malformed.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse album file %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
