// Package raster writes the shadow-hours accumulation grid out as
// georeferenced raster artifacts and a preview image.
package raster

import (
	"bufio"
	"fmt"
	"os"

	"github.com/windshadowstudio/engine/internal/sim"
)

// NoDataValue marks missing cells in written rasters.
const NoDataValue = -9999

// WriteASC writes the grid as an ESRI ASCII grid. The grid stores its
// south row first, so rows are flipped to put the north row at the top
// of the file as the format requires.
func WriteASC(path string, g *sim.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating ASC file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "ncols %d\n", g.Cols)
	fmt.Fprintf(w, "nrows %d\n", g.Rows)
	fmt.Fprintf(w, "xllcorner %g\n", g.MinX)
	fmt.Fprintf(w, "yllcorner %g\n", g.MinY)
	fmt.Fprintf(w, "cellsize %g\n", g.Cell)
	fmt.Fprintf(w, "NODATA_value %d\n", NoDataValue)

	for row := g.Rows - 1; row >= 0; row-- {
		for col := 0; col < g.Cols; col++ {
			if col > 0 {
				w.WriteByte(' ')
			}
			fmt.Fprintf(w, "%.2f", g.At(row, col))
		}
		w.WriteByte('\n')
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing ASC file: %w", err)
	}
	return nil
}
