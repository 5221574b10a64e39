package sim

import (
	"math"
	"testing"
)

func TestNewGridDimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		cell          float64
		wantCols      int
		wantRows      int
	}{
		{"exact multiple", 9000, 7000, 10, 900, 700},
		{"rounds up", 9005, 7001, 10, 901, 701},
		{"coarse cells", 9000, 7000, 50, 180, 140},
		{"degenerate area still one cell", 0, 0, 10, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid(0, 0, tt.width, tt.height, tt.cell)
			if g.Cols != tt.wantCols || g.Rows != tt.wantRows {
				t.Errorf("grid = %dx%d, want %dx%d", g.Cols, g.Rows, tt.wantCols, tt.wantRows)
			}
			if len(g.Values) != tt.wantCols*tt.wantRows {
				t.Errorf("len(Values) = %d, want %d", len(g.Values), tt.wantCols*tt.wantRows)
			}
		})
	}
}

func gridSum(g *Grid) float64 {
	var sum float64
	for _, v := range g.Values {
		sum += float64(v)
	}
	return sum
}

func TestDrawShadowAccumulation(t *testing.T) {
	// 100x100 cells at 10 m, turbine in the middle. Sun due south
	// (azimuth 180) casts the shadow due north; rotor 40 m spreads the
	// band 2 columns each side of the centerline.
	g := NewGrid(0, 0, 1000, 1000, 10)
	g.DrawShadow(500, 500, 180, 50, 40)

	// 5 centerline steps, 5 columns per step, all in bounds.
	wantCells := 5 * 5
	if got := gridSum(g); math.Abs(got-float64(wantCells)*Increment) > 1e-6 {
		t.Errorf("grid sum = %v, want %v", got, float64(wantCells)*Increment)
	}

	// Contributions from a second pass add, never overwrite.
	g.DrawShadow(500, 500, 180, 50, 40)
	if got := gridSum(g); math.Abs(got-2*float64(wantCells)*Increment) > 1e-6 {
		t.Errorf("grid sum after second draw = %v, want %v", got, 2*float64(wantCells)*Increment)
	}

	for i, v := range g.Values {
		q := float64(v) / Increment
		if math.Abs(q-math.Round(q)) > 1e-6 {
			t.Fatalf("cell %d = %v is not a multiple of %v", i, v, Increment)
		}
	}
}

func TestDrawShadowLateralClipping(t *testing.T) {
	// Turbine one column from the west edge: the band extends two
	// columns past the edge and only the in-bounds columns accumulate.
	g := NewGrid(0, 0, 1000, 1000, 10)
	g.DrawShadow(5, 500, 180, 10, 40)

	// One step at the turbine cell (col 0), band cols -2..2 clipped to
	// 0..2.
	if got := gridSum(g); math.Abs(got-3*Increment) > 1e-6 {
		t.Errorf("grid sum = %v, want %v", got, 3*Increment)
	}
}

func TestDrawShadowOutsideGridSkipped(t *testing.T) {
	g := NewGrid(0, 0, 1000, 1000, 10)
	// Turbine far east of the grid: every step lands outside and is
	// silently skipped.
	g.DrawShadow(5000, 500, 180, 200, 40)
	if got := gridSum(g); got != 0 {
		t.Errorf("grid sum = %v, want 0", got)
	}
}

func TestStats(t *testing.T) {
	g := NewGrid(0, 0, 20, 20, 10) // 2x2
	g.Values = []float32{0, 1, 2, 5}

	s := g.Stats()
	if s.Min != 0 {
		t.Errorf("Min = %v, want 0", s.Min)
	}
	if s.Max != 5 {
		t.Errorf("Max = %v, want 5", s.Max)
	}
	if math.Abs(s.Mean-2) > 1e-9 {
		t.Errorf("Mean = %v, want 2", s.Mean)
	}
}

func TestStatsEmptyGrid(t *testing.T) {
	g := &Grid{Rows: 0, Cols: 0, Values: nil}
	s := g.Stats()
	if s.Min != 0 || s.Max != 0 || s.Mean != 0 {
		t.Errorf("Stats() = %+v, want zeros", s)
	}
}
