package vrf

import (
	"errors"
	"fmt"
)

var (
	// ErrBadHeader reports a header with zero dimensions or one that
	// could not be read in full
	ErrBadHeader = errors.New("vrf: malformed container header")

	// ErrTruncated reports a payload shorter than the header demands
	ErrTruncated = errors.New("vrf: truncated container payload")

	// ErrCountMismatch reports a current-scheme sample count that does
	// not match the header dimensions
	ErrCountMismatch = errors.New("vrf: sample count does not match header dimensions")

	// ErrUnknownScheme reports a scheme outside the supported set
	ErrUnknownScheme = errors.New("vrf: unknown container scheme")
)

// ContainerError reports a failed container read or write. The caller
// receives no partial field alongside it.
type ContainerError struct {
	// Path is the container file involved
	Path string

	// Err is the underlying cause
	Err error
}

func (e *ContainerError) Error() string {
	return fmt.Sprintf("vrf: container %s: %v", e.Path, e.Err)
}

func (e *ContainerError) Unwrap() error {
	return e.Err
}
