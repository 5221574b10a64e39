// Package report renders the PDF run report.
package report

import (
	"fmt"
	"sort"

	"github.com/go-pdf/fpdf"

	"github.com/windshadowstudio/engine/internal/sim"
	"github.com/windshadowstudio/engine/pkg/config"
)

// Write renders a one-page A4 summary of the run: project parameters,
// grid statistics and the list of produced output files.
func Write(path string, p *config.Project, stats sim.Stats, outputs map[string]string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, "Wind Shadow Studio - Report", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 10)
	line := func(s string) {
		pdf.CellFormat(0, 6, s, "", 1, "L", false, 0, "")
	}

	line(fmt.Sprintf("EPSG: %s | Cellsize: %g | Buffer: %g", p.EPSG, p.CellSize, p.Buffer))
	line(fmt.Sprintf("Terrain-aware: %t | DEM: %s", p.TerrainAware, p.DEMPath))
	line(fmt.Sprintf("Output format: %s | Turbines: %d", p.Output.Format, len(p.Turbines)))
	line(fmt.Sprintf("Stats min/max/mean: %.2f/%.2f/%.2f", stats.Min, stats.Max, stats.Mean))
	pdf.Ln(4)

	line("Output files:")
	kinds := make([]string, 0, len(outputs))
	for k := range outputs {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	for _, k := range kinds {
		line(fmt.Sprintf("- %s: %s", k, outputs[k]))
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("writing report PDF: %w", err)
	}
	return nil
}
