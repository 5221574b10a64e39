package job

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/windshadowstudio/engine/internal/dem"
	"github.com/windshadowstudio/engine/internal/geo"
	"github.com/windshadowstudio/engine/internal/raster"
	"github.com/windshadowstudio/engine/internal/report"
	"github.com/windshadowstudio/engine/internal/sim"
	"github.com/windshadowstudio/engine/pkg/config"
)

// runJob is the worker entry point. Failures, including panics, are
// contained here: they mark this job errored and never propagate to
// other jobs or the process.
func (m *Manager) runJob(j *Job, p *config.Project) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("%v", r)
			j.Logf("Error: %v", err)
			j.fail(err)
			m.logger.Errorw("job panicked", "job", j.id, "error", err)
		}
	}()

	if err := m.execute(j, p); err != nil {
		j.Logf("Error: %v", err)
		j.fail(err)
		m.logger.Errorw("job failed", "job", j.id, "error", err)
	}
}

// execute runs the full pipeline: validate, compute, finalize outputs.
func (m *Manager) execute(j *Job, p *config.Project) error {
	p.ApplyDefaults()
	if p.ProjectPath == "" {
		return fmt.Errorf("project_path is required")
	}
	if !p.Output.Valid() {
		return fmt.Errorf("output format must be asc, geotiff or both")
	}

	outputsDir := filepath.Join(p.ProjectPath, "outputs")
	if err := os.MkdirAll(outputsDir, 0o755); err != nil {
		return fmt.Errorf("creating outputs directory: %w", err)
	}

	j.Logf("Reading DEM %s", p.DEMPath)
	model, err := dem.ReadASC(p.DEMPath)
	if err != nil {
		return err
	}
	if model.CRS != "" && model.CRS != p.EPSG {
		j.Logf("Warning: DEM CRS differs from selected EPSG. Continuing with selected EPSG.")
	}

	res, err := sim.Run(p, model, j)
	if err != nil {
		return err
	}

	j.Progress(85)
	j.setStats(res.Stats)

	if p.Output.Includes(config.FormatASC) {
		path := filepath.Join(outputsDir, "shadow_hours.asc")
		if err := raster.WriteASC(path, res.Grid); err != nil {
			return err
		}
		j.setOutput("asc", path)
	}
	if p.Output.Includes(config.FormatGeoTIFF) {
		code, err := geo.ParseEPSG(p.EPSG)
		if err != nil {
			return err
		}
		path := filepath.Join(outputsDir, "shadow_hours.tif")
		if err := raster.WriteGeoTIFF(path, res.Grid, code); err != nil {
			return err
		}
		j.setOutput("geotiff", path)
	}

	previewPath := filepath.Join(outputsDir, "preview.png")
	if err := raster.WritePreview(previewPath, res.Grid); err != nil {
		return err
	}
	j.setOutput("preview_png", previewPath)

	pdfPath := filepath.Join(outputsDir, "report.pdf")
	if err := report.Write(pdfPath, p, res.Stats, j.View().Outputs); err != nil {
		return err
	}
	j.setOutput("pdf", pdfPath)

	bounds, err := geo.OverlayBounds(res.Extent.MinX, res.Extent.MinY, res.Extent.MaxX, res.Extent.MaxY, p.EPSG)
	if err != nil {
		j.Logf("Warning: no overlay bounds for %s: %v", p.EPSG, err)
	} else {
		j.setOverlayBounds(bounds)
	}

	if err := config.SaveProject(p.ProjectPath, p); err != nil {
		return err
	}
	if m.runs != nil {
		rec := config.RunRecord{
			JobID:        j.id,
			CompletedAt:  time.Now(),
			TurbineCount: len(p.Turbines),
			CellSize:     p.CellSize,
			TerrainAware: p.TerrainAware,
			MinHours:     res.Stats.Min,
			MaxHours:     res.Stats.Max,
			MeanHours:    res.Stats.Mean,
		}
		if err := m.runs.RecordRun(rec); err != nil {
			m.logger.Warnf("could not record run history for job %s: %v", j.id, err)
		}
	}

	j.Logf("Completed")
	j.complete()
	m.logger.Infow("job completed", "job", j.id, "max_hours", res.Stats.Max)
	return nil
}
