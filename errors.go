package filevalue

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrExists is returned by Insert under WithExclusiveWrite when the
	// backing file already exists.
	ErrExists = errors.New("backing file already exists")

	// ErrMissing is returned by GetOrInsert and GetOrInsertWith when the
	// backing file is absent even though the freshness check implied it
	// should exist. This indicates a broken cache cycle, typically an
	// external deletion with no staleness threshold configured.
	ErrMissing = errors.New("backing file missing")
)

// DecodeError reports that the backing file exists but its content could not
// be parsed. It is distinct from I/O errors: the file was readable, the
// bytes were not a valid document.
type DecodeError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying codec error for use with errors.Is and
// errors.As.
func (e *DecodeError) Unwrap() error {
	return e.Err
}
