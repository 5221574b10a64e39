// Package sim implements the shadow-accumulation simulation engine: solar
// sampling, per-turbine shadow length computation, rasterization into an
// accumulation grid, and the run orchestration around them.
package sim

import (
	"fmt"
	"math"

	"github.com/windshadowstudio/engine/internal/constants"
	"github.com/windshadowstudio/engine/internal/dem"
	"github.com/windshadowstudio/engine/pkg/config"
	"github.com/windshadowstudio/engine/pkg/solar"
)

// Engine limits. Validation rejects projects that exceed them; the study
// area is clamped rather than rejected.
const (
	MaxTurbines   = 20
	MaxAreaMeters = 12000
	progressEvery = 500
)

var allowedCellSizes = map[float64]bool{8: true, 10: true, 20: true, 25: true, 50: true}

// Reporter receives progress and log notices from a running simulation.
type Reporter interface {
	Logf(format string, args ...interface{})
	Progress(pct int)
}

// Result is the outcome of a completed simulation run.
type Result struct {
	Grid   *Grid
	Stats  Stats
	Extent dem.Bounds // clamped study area
}

// ValidateProject checks the engine limits before any grid work is done.
func ValidateProject(p *config.Project) error {
	if len(p.Turbines) == 0 {
		return fmt.Errorf("project has no turbines")
	}
	if len(p.Turbines) > MaxTurbines {
		return fmt.Errorf("too many turbines (%d), max %d", len(p.Turbines), MaxTurbines)
	}
	if !allowedCellSizes[p.CellSize] {
		return fmt.Errorf("cellsize_m must be one of 8,10,20,25,50")
	}
	return nil
}

// StudyArea returns the clamped study-area rectangle: the turbines'
// bounding box expanded by the buffer on each side, with width and
// height capped at MaxAreaMeters keeping the minimum corner fixed. The
// second return value reports whether clamping occurred.
func StudyArea(p *config.Project) (dem.Bounds, bool) {
	minX, maxX := p.Turbines[0].X, p.Turbines[0].X
	minY, maxY := p.Turbines[0].Y, p.Turbines[0].Y
	for _, t := range p.Turbines[1:] {
		minX = math.Min(minX, t.X)
		maxX = math.Max(maxX, t.X)
		minY = math.Min(minY, t.Y)
		maxY = math.Max(maxY, t.Y)
	}
	minX -= p.Buffer
	maxX += p.Buffer
	minY -= p.Buffer
	maxY += p.Buffer

	width := math.Min(maxX-minX, MaxAreaMeters)
	height := math.Min(maxY-minY, MaxAreaMeters)
	clamped := width < maxX-minX || height < maxY-minY

	return dem.Bounds{MinX: minX, MinY: minY, MaxX: minX + width, MaxY: minY + height}, clamped
}

// Run executes one simulation: validate the project, clamp the study
// area, then accumulate shadow contributions for every turbine over the
// full-year solar series. Turbines outside the elevation model are
// logged and skipped. The returned grid and stats belong to the caller.
func Run(p *config.Project, model *dem.ElevationModel, rep Reporter) (*Result, error) {
	if err := ValidateProject(p); err != nil {
		return nil, err
	}

	area, clamped := StudyArea(p)
	if clamped {
		rep.Logf("Area clamped to max 12km x 12km")
	}

	grid := NewGrid(area.MinX, area.MinY, area.MaxX-area.MinX, area.MaxY-area.MinY, p.CellSize)

	sampler := solar.NewYearSampler(constants.TypicalYear)
	totalOps := sampler.Total() * len(p.Turbines)
	if totalOps < 1 {
		totalOps = 1
	}
	ops := 0

	for _, t := range p.Turbines {
		if !model.Contains(t.X, t.Y) {
			rep.Logf("Turbine %s outside DEM, ignored", t.ID)
			continue
		}
		hubZ := model.Sample(t.X, t.Y) + t.HubHeight

		sampler.Reset()
		for {
			sample, ok := sampler.Next()
			if !ok {
				break
			}
			if sample.Elevation <= 0 {
				ops++
				continue
			}

			length := FlatShadowLength(t.HubHeight, sample.Elevation)
			if p.TerrainAware {
				length = TerrainShadowLength(model, t.X, t.Y, hubZ, sample.Elevation, sample.Azimuth, p.CellSize, length)
			}
			grid.DrawShadow(t.X, t.Y, sample.Azimuth, length, t.RotorDiameter)

			ops++
			if ops%progressEvery == 0 {
				rep.Progress(ops * 100 / totalOps)
			}
		}
	}

	return &Result{Grid: grid, Stats: grid.Stats(), Extent: area}, nil
}
