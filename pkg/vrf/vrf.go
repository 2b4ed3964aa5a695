// Package vrf implements the VRF (volumetric raw field) container, the
// persisted form of a normalized scalar field. A container is a fixed
// header carrying the grid dimensions and voxel scale, followed by the
// sample payload under one of two non-interoperable schemes.
//
// The current scheme frames the payload with an explicit sample count,
// so a reader needs no external knowledge beyond the scheme itself. The
// legacy scheme is a bare run of 8-byte doubles whose count is implied
// by the header dimensions; its byte order is a fixed historical
// assumption and the scheme is supported for reading only. The scheme
// is always selected by the caller, never inferred from file content.
package vrf

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"volgrid/internal/models"
	"volgrid/pkg/grid"
)

// Scheme selects the container payload layout
type Scheme int

const (
	// SchemeCurrent is the length-prefixed float64 payload, readable
	// and writable
	SchemeCurrent Scheme = iota

	// SchemeLegacy is the bare big-endian double payload, read-only
	SchemeLegacy
)

// header is the persisted container header: grid dimensions as three
// uint16 values followed by the voxel scale as three float64 values,
// all big-endian
type header struct {
	Dims  [3]uint16
	Scale [3]float64
}

// Encode writes a field to w under the current scheme. The field must
// satisfy its descriptor invariant and each dimension must fit the
// header's uint16 representation.
func Encode(w io.Writer, field models.Field) error {
	if err := field.Validate(); err != nil {
		return err
	}

	var hdr header
	for i, n := range field.Descriptor.Dims {
		if n > math.MaxUint16 {
			return fmt.Errorf("vrf: dimension %d exceeds header range: %d", i, n)
		}
		hdr.Dims[i] = uint16(n)
	}
	hdr.Scale = field.Descriptor.Scale

	if err := binary.Write(w, binary.BigEndian, hdr); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := binary.Write(w, binary.BigEndian, uint64(len(field.Values))); err != nil {
		return fmt.Errorf("failed to write sample count: %w", err)
	}
	if err := binary.Write(w, binary.BigEndian, field.Values); err != nil {
		return fmt.Errorf("failed to write samples: %w", err)
	}
	return nil
}

// DecodeHeader reads and validates a container header from r
func DecodeHeader(r io.Reader) (models.Descriptor, error) {
	var hdr header
	if err := binary.Read(r, binary.BigEndian, &hdr); err != nil {
		return models.Descriptor{}, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}

	var desc models.Descriptor
	for i, n := range hdr.Dims {
		if n == 0 {
			return models.Descriptor{}, fmt.Errorf("%w: dimension %d is zero", ErrBadHeader, i)
		}
		desc.Dims[i] = int(n)
	}
	desc.Scale = hdr.Scale
	return desc, nil
}

// Decode reads a full container from r under the given scheme
func Decode(r io.Reader, scheme Scheme) (models.Field, error) {
	var field models.Field

	desc, err := DecodeHeader(r)
	if err != nil {
		return field, err
	}
	nv := desc.NumVoxels()

	var values []float64
	switch scheme {
	case SchemeCurrent:
		var count uint64
		if err := binary.Read(r, binary.BigEndian, &count); err != nil {
			return field, fmt.Errorf("%w: reading sample count: %v", ErrTruncated, err)
		}
		if count != uint64(nv) {
			return field, fmt.Errorf("%w: header expects %d samples, payload declares %d",
				ErrCountMismatch, nv, count)
		}
		values = make([]float64, nv)
		if err := binary.Read(r, binary.BigEndian, values); err != nil {
			return field, fmt.Errorf("%w: %v", ErrTruncated, err)
		}
	case SchemeLegacy:
		// The legacy payload shares the raw double-64 decoding path,
		// under its fixed historical byte order.
		buf := make([]byte, nv*8)
		if _, err := io.ReadFull(r, buf); err != nil {
			return field, fmt.Errorf("%w: %v", ErrTruncated, err)
		}
		values, err = grid.DecodeRaw(buf, nv, grid.Float64, grid.BigEndian)
		if err != nil {
			return field, err
		}
	default:
		return field, fmt.Errorf("%w: %d", ErrUnknownScheme, int(scheme))
	}

	field = models.Field{Descriptor: desc, Values: values}
	return field, nil
}

// Write persists a field to a container file under the current scheme.
// A failure mid-write may leave a partial file behind; the write is not
// transactional.
func Write(path string, field models.Field) error {
	f, err := os.Create(path)
	if err != nil {
		return &ContainerError{Path: path, Err: err}
	}
	if err := Encode(f, field); err != nil {
		f.Close()
		return &ContainerError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &ContainerError{Path: path, Err: err}
	}
	return nil
}

// Read loads a field from a container file under the given scheme
func Read(path string, scheme Scheme) (models.Field, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.Field{}, &ContainerError{Path: path, Err: err}
	}
	defer f.Close()

	field, err := Decode(f, scheme)
	if err != nil {
		return models.Field{}, &ContainerError{Path: path, Err: err}
	}
	return field, nil
}

// ReadHeader loads only the descriptor from a container file. Both
// schemes share the header layout, so no scheme selection is needed.
func ReadHeader(path string) (models.Descriptor, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.Descriptor{}, &ContainerError{Path: path, Err: err}
	}
	defer f.Close()

	desc, err := DecodeHeader(f)
	if err != nil {
		return models.Descriptor{}, &ContainerError{Path: path, Err: err}
	}
	return desc, nil
}
