// Package geo converts projected study-area bounds to WGS84 for map
// overlay display.
package geo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wroge/wgs84"
)

// ParseEPSG extracts the numeric code from an identifier like
// "EPSG:32632". A bare numeric string is accepted too.
func ParseEPSG(epsg string) (int, error) {
	s := strings.TrimSpace(epsg)
	if i := strings.LastIndex(s, ":"); i >= 0 {
		s = s[i+1:]
	}
	code, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid EPSG identifier %q", epsg)
	}
	return code, nil
}

// OverlayBounds transforms the study-area rectangle from the project CRS
// to WGS84 and returns it as [[south, west], [north, east]], the corner
// order map overlay layers expect.
func OverlayBounds(minX, minY, maxX, maxY float64, epsg string) ([][]float64, error) {
	code, err := ParseEPSG(epsg)
	if err != nil {
		return nil, err
	}
	from := wgs84.EPSG().Code(code)
	if from == nil {
		return nil, fmt.Errorf("unsupported EPSG code %d", code)
	}

	transform := wgs84.Transform(from, wgs84.LonLat())
	west, south, _ := transform(minX, minY, 0)
	east, north, _ := transform(maxX, maxY, 0)

	return [][]float64{{south, west}, {north, east}}, nil
}
