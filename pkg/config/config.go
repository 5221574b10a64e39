// Package config defines the per-run project configuration model and its
// persistence providers.
package config

// Output format selectors for the shadow-hours raster.
const (
	FormatASC     = "asc"
	FormatGeoTIFF = "geotiff"
	FormatBoth    = "both"
)

// Defaults applied to a project when the caller leaves them unset.
const (
	DefaultCellSize = 10
	DefaultBuffer   = 2000
)

// Turbine is a single wind turbine in the project coordinate system.
// Immutable once submitted.
type Turbine struct {
	ID            string  `json:"id"`
	X             float64 `json:"x"`
	Y             float64 `json:"y"`
	HubHeight     float64 `json:"hub_height_m"`
	RotorDiameter float64 `json:"rotor_diameter_m"`
}

// Output selects which raster formats a run produces.
type Output struct {
	Format string `json:"format"`
}

// Includes reports whether the given format should be produced.
func (o Output) Includes(format string) bool {
	return o.Format == format || o.Format == FormatBoth
}

// Valid reports whether the format selector is one of the known values.
func (o Output) Valid() bool {
	switch o.Format {
	case FormatASC, FormatGeoTIFF, FormatBoth:
		return true
	}
	return false
}

// Project is the immutable configuration of one simulation run. The JSON
// field names are the project-file wire format.
type Project struct {
	ProjectPath  string    `json:"project_path"`
	EPSG         string    `json:"epsg"`
	CellSize     float64   `json:"cellsize_m"`
	Buffer       float64   `json:"buffer_m"`
	TerrainAware bool      `json:"terrain_aware"`
	DEMPath      string    `json:"dem_path"`
	Turbines     []Turbine `json:"turbines"`
	Output       Output    `json:"output"`
}

// ApplyDefaults fills unset numeric fields and the output format with
// their default values.
func (p *Project) ApplyDefaults() {
	if p.CellSize == 0 {
		p.CellSize = DefaultCellSize
	}
	if p.Buffer == 0 {
		p.Buffer = DefaultBuffer
	}
	if p.Output.Format == "" {
		p.Output.Format = FormatBoth
	}
}
