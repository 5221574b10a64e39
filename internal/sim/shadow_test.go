package sim

import (
	"math"
	"testing"

	"github.com/windshadowstudio/engine/internal/dem"
)

// uniformModel returns a single-cell model that samples the same
// elevation everywhere thanks to edge clamping, with bounds large enough
// for the tests.
func uniformModel(elevation float64) *dem.ElevationModel {
	return &dem.ElevationModel{
		Rows:      1,
		Cols:      1,
		Data:      []float64{elevation},
		Transform: dem.Transform{OriginX: 0, OriginY: 100000, PixelWidth: 100000, PixelHeight: 100000},
		NoData:    -9999,
		Bounds:    dem.Bounds{MinX: 0, MinY: 0, MaxX: 100000, MaxY: 100000},
	}
}

func TestFlatShadowLength(t *testing.T) {
	tests := []struct {
		name      string
		hubHeight float64
		elevation float64
		want      float64
	}{
		{"45 degrees", 80, 45, 80},
		{"60 degrees", 100, 60, 100 / math.Tan(60*math.Pi/180)},
		{"steep sun short shadow", 80, 80, 80 / math.Tan(80*math.Pi/180)},
		{"near horizon capped", 80, 0.1, 20000},
		{"tall hub capped", 150, 0.2, 20000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FlatShadowLength(tt.hubHeight, tt.elevation)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("FlatShadowLength(%v, %v) = %v, want %v", tt.hubHeight, tt.elevation, got, tt.want)
			}
		})
	}
}

func TestTerrainShadowLengthOpenGround(t *testing.T) {
	// Terrain uniformly below the ray for the whole flat length: the
	// terrain-aware length equals the flat length.
	model := uniformModel(-10)
	flat := FlatShadowLength(80, 45)
	got := TerrainShadowLength(model, 5000, 5000, 80, 45, 180, 10, flat)
	if got != flat {
		t.Errorf("length = %v, want flat length %v", got, flat)
	}
}

func TestTerrainShadowLengthOccluded(t *testing.T) {
	// Uniform ground at 60 m, hub at 80 m, sun at 45 degrees: the ray
	// meets the ground at the first step where 80-d <= 60, i.e. d=20.
	model := uniformModel(60)
	flat := FlatShadowLength(80, 45)
	got := TerrainShadowLength(model, 5000, 5000, 80, 45, 180, 10, flat)
	if got != 20 {
		t.Errorf("length = %v, want 20", got)
	}
}

func TestTerrainShadowLengthNeverExceedsFlat(t *testing.T) {
	elevations := []float64{0.1, 1, 5, 15, 30, 45, 60, 80}
	grounds := []float64{-50, 0, 40, 75}

	for _, elev := range elevations {
		for _, ground := range grounds {
			model := uniformModel(ground)
			flat := FlatShadowLength(80, elev)
			got := TerrainShadowLength(model, 5000, 5000, 80, elev, 180, 10, flat)
			if got > flat {
				t.Errorf("elev %v ground %v: terrain length %v exceeds flat %v", elev, ground, got, flat)
			}
			if got < 0 {
				t.Errorf("elev %v ground %v: negative length %v", elev, ground, got)
			}
		}
	}
}
