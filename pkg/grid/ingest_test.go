package grid

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

// TestIngestRaw runs the full raw pipeline: sidecar resolution, decode
// and normalization
func TestIngestRaw(t *testing.T) {
	dir := t.TempDir()
	writeSidecar(t, dir, "vol.dim", "2 2 1\n")
	writeSidecar(t, dir, "vol.scale", "1 2 3\n")

	// Samples 0, 10, 20, 30 as big-endian uint16
	data := make([]byte, 8)
	for i, v := range []uint16{0, 10, 20, 30} {
		binary.BigEndian.PutUint16(data[i*2:], v)
	}
	sourcePath := filepath.Join(dir, "vol.raw")
	if err := os.WriteFile(sourcePath, data, 0644); err != nil {
		t.Fatalf("failed to write source: %v", err)
	}

	ingester := NewIngester(&Params{
		Path:     sourcePath,
		Format:   FormatRaw,
		Encoding: Uint16,
		Order:    BigEndian,
	})
	field, ext, err := ingester.Ingest()
	if err != nil {
		t.Fatalf("ingest failed: %v", err)
	}

	if field.Descriptor.Dims != [3]int{2, 2, 1} {
		t.Errorf("dims = %v, want [2 2 1]", field.Descriptor.Dims)
	}
	if field.Descriptor.Scale != [3]float64{1, 2, 3} {
		t.Errorf("scale = %v, want [1 2 3]", field.Descriptor.Scale)
	}
	if ext.Min != 0 || ext.Max != 30 {
		t.Errorf("extrema = %+v, want {0 30}", ext)
	}

	want := []float64{0, 10.0 / 30.0, 20.0 / 30.0, 0.9999}
	for i := range want {
		if field.Values[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, field.Values[i], want[i])
		}
	}
}

// TestIngestASCII exercises the text reading path with a missing scale
// sidecar, which should default silently
func TestIngestASCII(t *testing.T) {
	dir := t.TempDir()
	writeSidecar(t, dir, "vol.dim", "2 1 1\n")

	sourcePath := filepath.Join(dir, "vol.txt")
	if err := os.WriteFile(sourcePath, []byte("0 0 0 2.0\n0 0 1 4.0\n"), 0644); err != nil {
		t.Fatalf("failed to write source: %v", err)
	}

	ingester := NewIngester(&Params{Path: sourcePath, Format: FormatASCII})
	field, ext, err := ingester.Ingest()
	if err != nil {
		t.Fatalf("ingest failed: %v", err)
	}

	if field.Descriptor.Scale != [3]float64{1, 1, 1} {
		t.Errorf("scale = %v, want default [1 1 1]", field.Descriptor.Scale)
	}
	if ext.Min != 2 || ext.Max != 4 {
		t.Errorf("extrema = %+v, want {2 4}", ext)
	}
	if field.Values[0] != 0 || field.Values[1] != 0.9999 {
		t.Errorf("values = %v, want [0 0.9999]", field.Values)
	}
}

// TestIngestMissingDimensions ensures a raw source without its required
// dimension sidecar fails before any decoding happens
func TestIngestMissingDimensions(t *testing.T) {
	dir := t.TempDir()
	sourcePath := filepath.Join(dir, "vol.raw")
	if err := os.WriteFile(sourcePath, []byte{1, 2}, 0644); err != nil {
		t.Fatalf("failed to write source: %v", err)
	}

	ingester := NewIngester(&Params{Path: sourcePath, Format: FormatRaw, Encoding: Uint8})
	_, _, err := ingester.Ingest()
	var metaErr *MetadataError
	if !errors.As(err, &metaErr) {
		t.Errorf("expected MetadataError, got %T: %v", err, err)
	}
}

// writeSlice stores voxelsPerSlice int16 big-endian samples as one
// numbered slice file
func writeSlice(t *testing.T, basePath string, index int, samples []int16) {
	t.Helper()
	data := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.BigEndian.PutUint16(data[i*2:], uint16(s))
	}
	path := fmt.Sprintf("%s.%d", basePath, index)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write slice %d: %v", index, err)
	}
}

// TestLoadSlices assembles three slices of four voxels each and checks
// slice-major ordering and full normalization
func TestLoadSlices(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "head")

	writeSlice(t, base, 1, []int16{0, 1, 2, 3})
	writeSlice(t, base, 2, []int16{4, 5, 6, 7})
	writeSlice(t, base, 3, []int16{8, 9, 10, 11})

	field, ext, err := LoadSlices(base, [3]int{2, 2, 3})
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if len(field.Values) != 12 {
		t.Fatalf("got %d samples, want 12", len(field.Values))
	}
	if ext.Min != 0 || ext.Max != 11 {
		t.Errorf("extrema = %+v, want {0 11}", ext)
	}

	// Samples must appear in slice index order, normalized over the
	// combined volume
	for i := 0; i < 12; i++ {
		want := float64(i) / 11.0
		if want > 0.9999 {
			want = 0.9999
		}
		if field.Values[i] != want {
			t.Errorf("sample %d = %v, want %v", i, field.Values[i], want)
		}
	}
}

// TestLoadSlicesMissingFile verifies the all-or-nothing contract when a
// slice in the middle of the sequence is absent
func TestLoadSlicesMissingFile(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "head")

	writeSlice(t, base, 1, []int16{0, 1, 2, 3})
	// Slice 2 deliberately absent
	writeSlice(t, base, 3, []int16{8, 9, 10, 11})

	field, _, err := LoadSlices(base, [3]int{2, 2, 3})
	if err == nil {
		t.Fatal("expected error for missing slice file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected wrapped fs.ErrNotExist, got %v", err)
	}
	if field.Values != nil {
		t.Errorf("expected no partial volume, got %d samples", len(field.Values))
	}
}

// TestLoadSlicesBadGeometry rejects non-positive dimensions up front
func TestLoadSlicesBadGeometry(t *testing.T) {
	_, _, err := LoadSlices("nowhere", [3]int{0, 2, 3})
	if err == nil {
		t.Fatal("expected error for zero dimension")
	}
}
