package grid

import (
	"fmt"
	"os"
	"strings"

	"volgrid/internal/models"
)

// Format identifies the on-disk layout of a source volume
type Format int

const (
	// FormatRaw is flat binary data of fixed-width samples with no header
	FormatRaw Format = iota

	// FormatASCII is one text line per sample, trailing token holding the value
	FormatASCII
)

func (f Format) String() string {
	switch f {
	case FormatRaw:
		return "raw"
	case FormatASCII:
		return "ascii"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat maps a configuration or command line name to a Format
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "raw":
		return FormatRaw, nil
	case "ascii", "text":
		return FormatASCII, nil
	}
	return 0, fmt.Errorf("grid: unknown source format %q", name)
}

// Params holds the ingestion configuration for one source volume
type Params struct {
	// Path is the source data file. Sidecar metadata is located by
	// substituting its extension with .dim and .scale.
	Path string

	// Format selects the raw binary or ASCII reading path
	Format Format

	// Encoding is the fixed-width sample encoding of raw sources.
	// Ignored for ASCII sources.
	Encoding Encoding

	// Order is the byte order of multi-byte raw samples.
	// Ignored for ASCII sources.
	Order Order
}

// Ingester reads one volumetric scalar field from disk.
//
// The ingestion pipeline consists of several steps:
// 1. Resolving grid dimensions and voxel scale from sidecar files
// 2. Decoding the source samples under the configured encoding
// 3. Min-max normalizing the samples in place
type Ingester struct {
	params *Params
}

// NewIngester creates an ingester for the provided parameters
func NewIngester(params *Params) *Ingester {
	return &Ingester{params: params}
}

// Ingest runs the full pipeline and returns the normalized field along
// with the extrema observed before normalization. The returned field is
// complete or absent: no partial result survives a failure.
func (g *Ingester) Ingest() (models.Field, models.Extrema, error) {
	var field models.Field

	dims, err := ReadDimensions(g.params.Path)
	if err != nil {
		return field, models.Extrema{}, err
	}
	scale := ReadScale(g.params.Path)

	desc := models.Descriptor{Dims: dims, Scale: scale}
	values, err := g.readSamples(desc.NumVoxels())
	if err != nil {
		return field, models.Extrema{}, err
	}

	ext := Normalize(values)
	field = models.Field{Descriptor: desc, Values: values}
	return field, ext, nil
}

// readSamples decodes NumVoxels samples from the source file under the
// configured format
func (g *Ingester) readSamples(count int) ([]float64, error) {
	switch g.params.Format {
	case FormatRaw:
		data, err := os.ReadFile(g.params.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to read raw source: %w", err)
		}
		return DecodeRaw(data, count, g.params.Encoding, g.params.Order)
	case FormatASCII:
		f, err := os.Open(g.params.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open ascii source: %w", err)
		}
		defer f.Close()
		return DecodeASCII(f, count)
	}
	return nil, fmt.Errorf("grid: unknown source format %v", g.params.Format)
}

// LoadSlices assembles a volume from per-slice raw files basePath.1
// through basePath.N, where N is dims[2] and each slice holds
// dims[0]*dims[1] samples of signed 16-bit big-endian data. Slices are
// concatenated in index order and the combined volume is normalized.
// Any missing or unreadable slice aborts the load; partial volumes are
// never returned. The voxel scale defaults to {1,1,1} since slice
// geometry is caller-supplied rather than resolved from sidecars.
func LoadSlices(basePath string, dims [3]int) (models.Field, models.Extrema, error) {
	var field models.Field

	desc := models.Descriptor{Dims: dims, Scale: models.DefaultScale()}
	if err := desc.Validate(); err != nil {
		return field, models.Extrema{}, fmt.Errorf("grid: invalid slice geometry: %w", err)
	}

	voxelsPerSlice := dims[0] * dims[1]
	values := make([]float64, 0, desc.NumVoxels())
	for i := 1; i <= dims[2]; i++ {
		path := fmt.Sprintf("%s.%d", basePath, i)
		data, err := os.ReadFile(path)
		if err != nil {
			return field, models.Extrema{}, fmt.Errorf("failed to read slice %d: %w", i, err)
		}
		samples, err := DecodeRaw(data, voxelsPerSlice, Int16, BigEndian)
		if err != nil {
			return field, models.Extrema{}, fmt.Errorf("failed to decode slice %d: %w", i, err)
		}
		values = append(values, samples...)
	}

	ext := Normalize(values)
	field = models.Field{Descriptor: desc, Values: values}
	return field, ext, nil
}
