package sim

import (
	"math"

	"github.com/windshadowstudio/engine/internal/dem"
)

// MaxShadowLength caps the projected shadow length in meters, regardless
// of how low the sun sits over the horizon.
const MaxShadowLength = 20000

// FlatShadowLength returns the shadow length a hub of the given height
// casts on flat ground at the given solar elevation. The caller
// guarantees elevation > 0.
func FlatShadowLength(hubHeight, elevationDeg float64) float64 {
	return math.Min(MaxShadowLength, hubHeight/math.Tan(elevationDeg*math.Pi/180))
}

// TerrainShadowLength shortens a flat-ground shadow where terrain
// occludes the sun. It marches from the turbine base along the
// anti-solar direction in step-sized increments up to maxLength,
// dropping the ray from hubZ at the solar elevation angle; the first
// step where the ray meets the ground terminates the shadow there.
func TerrainShadowLength(model *dem.ElevationModel, x, y, hubZ, elevationDeg, azimuthDeg, step, maxLength float64) float64 {
	rad := math.Mod(azimuthDeg+180, 360) * math.Pi / 180
	tanE := math.Tan(elevationDeg * math.Pi / 180)
	for d := step; d <= maxLength; d += step {
		px := x + d*math.Sin(rad)
		py := y + d*math.Cos(rad)
		if hubZ-d*tanE <= model.Sample(px, py) {
			return d
		}
	}
	return maxLength
}
