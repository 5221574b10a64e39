package raster

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/windshadowstudio/engine/internal/sim"
)

// gridXYZ adapts the accumulation grid to the plotter's heat map input.
type gridXYZ struct {
	g *sim.Grid
}

func (d gridXYZ) Dims() (c, r int) { return d.g.Cols, d.g.Rows }

func (d gridXYZ) Z(c, r int) float64 { return float64(d.g.At(r, c)) }

func (d gridXYZ) X(c int) float64 { return d.g.MinX + (float64(c)+0.5)*d.g.Cell }

func (d gridXYZ) Y(r int) float64 { return d.g.MinY + (float64(r)+0.5)*d.g.Cell }

// WritePreview renders the grid as a color-mapped heat map PNG.
func WritePreview(path string, g *sim.Grid) error {
	p := plot.New()
	p.Title.Text = "Annual shadow hours"
	p.X.Label.Text = "Easting (m)"
	p.Y.Label.Text = "Northing (m)"

	hm := plotter.NewHeatMap(gridXYZ{g}, palette.Heat(12, 1))
	p.Add(hm)

	return p.Save(8*vg.Inch, 6*vg.Inch, path)
}
