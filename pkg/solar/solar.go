// Package solar implements the simplified solar position model used by the
// shadow simulation. Elevation and azimuth depend only on the hour of day:
// the sun rises at 06:00, sweeps linearly from azimuth 90 to 270 degrees,
// and peaks at 60 degrees elevation at solar noon. This is a deliberate
// approximation, not ephemeris astronomy; the simulation's output format
// depends on it being reproduced exactly.
package solar

import (
	"math"
	"time"
)

// Position holds a solar elevation/azimuth pair in degrees.
type Position struct {
	Elevation float64
	Azimuth   float64
}

// PositionAt returns the approximate solar position for the given time.
// Outside the 06:00-18:00 daylight window the elevation is -5 degrees
// (night, contributes no shadow) and the azimuth is 0.
func PositionAt(t time.Time) Position {
	h := float64(t.Hour()) + float64(t.Minute())/60
	if h < 6 || h > 18 {
		return Position{Elevation: -5, Azimuth: 0}
	}
	elev := math.Max(0.1, 60*math.Sin((h-6)/12*math.Pi))
	azim := 90 + (h-6)/12*180
	return Position{Elevation: elev, Azimuth: azim}
}
