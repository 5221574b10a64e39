// Package dem provides the elevation model used by terrain-aware shadow
// simulation: a regular grid of elevation samples with an affine transform
// between grid indices and world coordinates.
package dem

// Transform maps grid row/column indices to world coordinates. OriginX and
// OriginY locate the outer corner of the top-left cell; PixelWidth and
// PixelHeight are positive cell dimensions (rows grow southward).
type Transform struct {
	OriginX     float64
	OriginY     float64
	PixelWidth  float64
	PixelHeight float64
}

// Bounds is a world-coordinate rectangle.
type Bounds struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Contains reports whether the point lies inside the rectangle, edges
// included.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// ElevationModel is a read-only terrain raster. One simulation run owns
// exactly one model; nothing mutates it after loading.
type ElevationModel struct {
	Rows      int
	Cols      int
	Data      []float64 // row-major, north row first
	Transform Transform
	NoData    float64
	Bounds    Bounds
	CRS       string
}

// At returns the sample at the given row and column without bounds
// checking.
func (m *ElevationModel) At(row, col int) float64 {
	return m.Data[row*m.Cols+col]
}

// Sample returns the elevation of the grid cell nearest to the world
// point. Indices are clamped to the raster edges, so points outside the
// raster return the nearest edge value rather than failing.
func (m *ElevationModel) Sample(x, y float64) float64 {
	col := int((x - m.Transform.OriginX) / m.Transform.PixelWidth)
	row := int((m.Transform.OriginY - y) / m.Transform.PixelHeight)
	row = clamp(row, 0, m.Rows-1)
	col = clamp(col, 0, m.Cols-1)
	return m.At(row, col)
}

// Contains reports whether the world point lies inside the raster bounds.
func (m *ElevationModel) Contains(x, y float64) bool {
	return m.Bounds.Contains(x, y)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
