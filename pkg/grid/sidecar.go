package grid

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"volgrid/internal/models"
)

const (
	// DimSuffix is the extension of the required dimension sidecar
	DimSuffix = ".dim"

	// ScaleSuffix is the extension of the optional voxel scale sidecar
	ScaleSuffix = ".scale"
)

// SidecarPath derives a sidecar file path from a source data file by
// replacing the final extension with the given suffix
func SidecarPath(sourcePath, suffix string) string {
	return strings.TrimSuffix(sourcePath, filepath.Ext(sourcePath)) + suffix
}

// ReadDimensions locates and parses the dimension sidecar for a source
// file. The sidecar holds one line with three whitespace-separated
// positive integers (nx, ny, nz). There is no default for dimensions:
// a missing or malformed sidecar yields a MetadataError.
func ReadDimensions(sourcePath string) ([3]int, error) {
	path := SidecarPath(sourcePath, DimSuffix)

	var dims [3]int
	fields, err := readSidecarFields(path)
	if err != nil {
		return dims, &MetadataError{Path: path, Err: err}
	}
	if len(fields) < 3 {
		return dims, &MetadataError{Path: path, Err: fmt.Errorf("expected 3 dimensions, got %d fields", len(fields))}
	}
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(fields[i])
		if err != nil {
			return dims, &MetadataError{Path: path, Err: err}
		}
		if n <= 0 {
			return dims, &MetadataError{Path: path, Err: fmt.Errorf("dimension %d must be positive, got %d", i, n)}
		}
		dims[i] = n
	}
	return dims, nil
}

// ReadScale locates and parses the voxel scale sidecar for a source file.
// The sidecar holds one line with three whitespace-separated reals.
// Scale metadata is optional: on any failure (missing file, malformed
// content) the default spacing {1,1,1} is returned instead of an error.
// This asymmetry with ReadDimensions is deliberate.
func ReadScale(sourcePath string) [3]float64 {
	path := SidecarPath(sourcePath, ScaleSuffix)

	fields, err := readSidecarFields(path)
	if err != nil || len(fields) < 3 {
		return models.DefaultScale()
	}
	var scale [3]float64
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil || v <= 0 {
			return models.DefaultScale()
		}
		scale[i] = v
	}
	return scale
}

// readSidecarFields reads the first line of a sidecar file and splits it
// on whitespace
func readSidecarFields(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	line, _, _ := strings.Cut(string(data), "\n")
	return strings.Fields(line), nil
}
