package models

import (
	"fmt"
)

// Descriptor holds the grid geometry of a volumetric scalar field
type Descriptor struct {
	// Dims is the number of samples along each axis (nx, ny, nz)
	Dims [3]int

	// Scale is the physical voxel spacing along each axis in mm,
	// used to interpret integer grid coordinates as physical distances
	Scale [3]float64
}

// DefaultScale returns the voxel spacing used when no scale metadata
// is available
func DefaultScale() [3]float64 {
	return [3]float64{1, 1, 1}
}

// NumVoxels returns the total number of samples in the grid
func (d Descriptor) NumVoxels() int {
	return d.Dims[0] * d.Dims[1] * d.Dims[2]
}

// Validate checks that all dimensions are strictly positive
func (d Descriptor) Validate() error {
	for axis, n := range d.Dims {
		if n <= 0 {
			return fmt.Errorf("dimension along axis %d must be positive, got %d", axis, n)
		}
	}
	return nil
}

// Field represents a volumetric scalar field as a flat sample sequence
// ordered consistent with the source file's traversal order
type Field struct {
	// Descriptor is the grid geometry of the field
	Descriptor Descriptor

	// Values is the flat sample data of length nx*ny*nz
	Values []float64
}

// Validate checks the descriptor and that the sample count matches
// the grid geometry
func (f Field) Validate() error {
	if err := f.Descriptor.Validate(); err != nil {
		return err
	}
	if len(f.Values) != f.Descriptor.NumVoxels() {
		return fmt.Errorf("field has %d samples, descriptor expects %d",
			len(f.Values), f.Descriptor.NumVoxels())
	}
	return nil
}

// Extrema holds the minimum and maximum sample values observed during
// a normalization pass, in the original physical units. It is returned
// alongside the normalized field as a diagnostic; no global state is kept.
type Extrema struct {
	Min float64
	Max float64
}
