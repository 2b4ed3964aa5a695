// Package grid implements ingestion of volumetric scalar fields from raw
// binary and ASCII sources. It decodes fixed-width numeric encodings under
// either byte order, resolves sidecar dimension and scale metadata, and
// min-max normalizes sample values for downstream consumption.
package grid

import (
	"fmt"
	"strings"
)

// Encoding identifies the fixed-width numeric encoding of raw samples.
// The set is closed: every decode path switches exhaustively over it.
type Encoding int

const (
	// Uint8 is an unsigned 8-bit sample
	Uint8 Encoding = iota

	// Uint16 is an unsigned 16-bit sample
	Uint16

	// Int16 is a signed 16-bit sample
	Int16

	// Int32 is a signed 32-bit sample
	Int32

	// Float32 is an IEEE-754 single precision sample
	Float32

	// Float64 is an IEEE-754 double precision sample
	Float64
)

// Width returns the number of bytes occupied by one sample
func (e Encoding) Width() int {
	switch e {
	case Uint8:
		return 1
	case Uint16, Int16:
		return 2
	case Int32, Float32:
		return 4
	case Float64:
		return 8
	}
	return 0
}

func (e Encoding) String() string {
	switch e {
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	}
	return fmt.Sprintf("Encoding(%d)", int(e))
}

// ParseEncoding maps a configuration or command line name to an Encoding
func ParseEncoding(name string) (Encoding, error) {
	switch strings.ToLower(name) {
	case "uint8", "byte":
		return Uint8, nil
	case "uint16", "ushort":
		return Uint16, nil
	case "int16", "short":
		return Int16, nil
	case "int32", "int":
		return Int32, nil
	case "float32", "float":
		return Float32, nil
	case "float64", "double":
		return Float64, nil
	}
	return 0, fmt.Errorf("grid: unknown sample encoding %q", name)
}

// Order identifies the byte order used to assemble multi-byte samples.
// It is irrelevant for single-byte encodings.
type Order int

const (
	// BigEndian assembles samples most significant byte first
	BigEndian Order = iota

	// LittleEndian assembles samples least significant byte first
	LittleEndian
)

func (o Order) String() string {
	switch o {
	case BigEndian:
		return "big"
	case LittleEndian:
		return "little"
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// ParseOrder maps a configuration or command line name to a byte Order
func ParseOrder(name string) (Order, error) {
	switch strings.ToLower(name) {
	case "big", "big-endian", "be":
		return BigEndian, nil
	case "little", "little-endian", "le":
		return LittleEndian, nil
	}
	return 0, fmt.Errorf("grid: unknown byte order %q", name)
}
