package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrShortData reports raw input with fewer bytes than the requested
	// sample count requires
	ErrShortData = errors.New("grid: raw data shorter than expected sample count")

	// ErrUnknownEncoding reports a sample encoding outside the supported set
	ErrUnknownEncoding = errors.New("grid: unknown sample encoding")

	// ErrUnknownOrder reports a byte order outside the supported set
	ErrUnknownOrder = errors.New("grid: unknown byte order")
)

// MetadataError reports a missing or malformed dimension sidecar file.
// Dimensions are required metadata, so this error is fatal for the
// ingestion call that raised it.
type MetadataError struct {
	// Path is the sidecar file that could not be used
	Path string

	// Err is the underlying cause
	Err error
}

func (e *MetadataError) Error() string {
	return fmt.Sprintf("grid: dimension sidecar %s: %v", e.Path, e.Err)
}

func (e *MetadataError) Unwrap() error {
	return e.Err
}

// ParseError reports a malformed sample in an ASCII source
type ParseError struct {
	// Line is the 1-based line number of the bad sample
	Line int

	// Err is the underlying cause
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("grid: ascii sample at line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
