package dem

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func testModel() *ElevationModel {
	// 3x4 raster, 10m cells, lower-left corner at (1000, 2000).
	// Row 0 is the north row (y in [2020, 2030)).
	return &ElevationModel{
		Rows: 3,
		Cols: 4,
		Data: []float64{
			10, 11, 12, 13,
			20, 21, 22, 23,
			30, 31, 32, 33,
		},
		Transform: Transform{OriginX: 1000, OriginY: 2030, PixelWidth: 10, PixelHeight: 10},
		NoData:    -9999,
		Bounds:    Bounds{MinX: 1000, MinY: 2000, MaxX: 1040, MaxY: 2030},
	}
}

func TestSample(t *testing.T) {
	m := testModel()

	tests := []struct {
		name string
		x, y float64
		want float64
	}{
		{"northwest cell", 1005, 2025, 10},
		{"southeast cell", 1035, 2005, 33},
		{"middle", 1015, 2015, 21},
		{"west of raster clamps", 900, 2015, 20},
		{"east of raster clamps", 2000, 2015, 23},
		{"north of raster clamps", 1015, 3000, 11},
		{"south of raster clamps", 1015, 0, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Sample(tt.x, tt.y); got != tt.want {
				t.Errorf("Sample(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestContains(t *testing.T) {
	m := testModel()

	if !m.Contains(1020, 2015) {
		t.Error("Contains should accept an interior point")
	}
	if !m.Contains(1000, 2000) {
		t.Error("Contains should accept a corner point")
	}
	if m.Contains(999, 2015) {
		t.Error("Contains should reject a point west of the raster")
	}
	if m.Contains(1020, 2031) {
		t.Error("Contains should reject a point north of the raster")
	}
}

func TestReadASC(t *testing.T) {
	content := `ncols 4
nrows 3
xllcorner 1000.0
yllcorner 2000.0
cellsize 10.0
NODATA_value -9999
10 11 12 13
20 21 22 23
30 31 32 33
`
	path := filepath.Join(t.TempDir(), "test.asc")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := ReadASC(path)
	if err != nil {
		t.Fatalf("ReadASC: %v", err)
	}

	if m.Rows != 3 || m.Cols != 4 {
		t.Fatalf("dimensions = %dx%d, want 3x4", m.Rows, m.Cols)
	}
	if m.NoData != -9999 {
		t.Errorf("NoData = %v, want -9999", m.NoData)
	}
	want := Bounds{MinX: 1000, MinY: 2000, MaxX: 1040, MaxY: 2030}
	if m.Bounds != want {
		t.Errorf("Bounds = %+v, want %+v", m.Bounds, want)
	}
	if math.Abs(m.Transform.OriginY-2030) > 1e-9 {
		t.Errorf("Transform.OriginY = %v, want 2030", m.Transform.OriginY)
	}
	if got := m.At(0, 0); got != 10 {
		t.Errorf("At(0,0) = %v, want 10 (north row first)", got)
	}
	if got := m.Sample(1035, 2005); got != 33 {
		t.Errorf("Sample(1035, 2005) = %v, want 33", got)
	}
}

func TestReadASCErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing header", "10 11\n20 21\n"},
		{"short data", "ncols 4\nnrows 3\nxllcorner 0\nyllcorner 0\ncellsize 10\n1 2 3\n"},
		{"no corner", "ncols 2\nnrows 1\ncellsize 10\n1 2\n"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.asc")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := ReadASC(path); err == nil {
				t.Error("ReadASC should fail")
			}
		})
	}
}
