// demo-project generates a self-contained demo project: a synthetic
// hill DEM, a turbine CSV and a ready-to-run project file.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/windshadowstudio/engine/pkg/config"
)

const (
	demCols = 300
	demRows = 300
	demCell = 10.0
	demXLL  = 499000.0
	demYLL  = 4999000.0
)

func main() {
	outDir := flag.String("out", "demo", "Directory to write the demo project into")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "creating output directory: %v\n", err)
		os.Exit(1)
	}

	demPath := filepath.Join(*outDir, "demo_dem.asc")
	if err := writeDemoDEM(demPath); err != nil {
		fmt.Fprintf(os.Stderr, "writing DEM: %v\n", err)
		os.Exit(1)
	}

	csvPath := filepath.Join(*outDir, "demo_turbines.csv")
	turbines := demoTurbines()
	if err := writeTurbinesCSV(csvPath, turbines); err != nil {
		fmt.Fprintf(os.Stderr, "writing turbine CSV: %v\n", err)
		os.Exit(1)
	}

	project := &config.Project{
		ProjectPath:  *outDir,
		EPSG:         "EPSG:32632",
		CellSize:     10,
		Buffer:       2000,
		TerrainAware: true,
		DEMPath:      demPath,
		Turbines:     turbines,
		Output:       config.Output{Format: config.FormatBoth},
	}
	if err := config.SaveProject(*outDir, project); err != nil {
		fmt.Fprintf(os.Stderr, "writing project file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("demo project written to %s\n", *outDir)
}

func demoTurbines() []config.Turbine {
	return []config.Turbine{
		{ID: "T1", X: 500100, Y: 5000100, HubHeight: 120, RotorDiameter: 140},
		{ID: "T2", X: 500600, Y: 5000350, HubHeight: 100, RotorDiameter: 120},
		{ID: "T3", X: 501100, Y: 5000000, HubHeight: 120, RotorDiameter: 140},
	}
}

// writeDemoDEM writes a gentle gaussian hill centered in the raster.
func writeDemoDEM(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "ncols %d\n", demCols)
	fmt.Fprintf(w, "nrows %d\n", demRows)
	fmt.Fprintf(w, "xllcorner %g\n", demXLL)
	fmt.Fprintf(w, "yllcorner %g\n", demYLL)
	fmt.Fprintf(w, "cellsize %g\n", demCell)
	fmt.Fprintf(w, "NODATA_value -9999\n")

	cx, cy := float64(demCols)/2, float64(demRows)/2
	sigma := float64(demCols) / 5
	for row := 0; row < demRows; row++ {
		for col := 0; col < demCols; col++ {
			if col > 0 {
				w.WriteByte(' ')
			}
			dx, dy := float64(col)-cx, float64(row)-cy
			z := 80 * math.Exp(-(dx*dx+dy*dy)/(2*sigma*sigma))
			fmt.Fprintf(w, "%.1f", z)
		}
		w.WriteByte('\n')
	}
	return w.Flush()
}

func writeTurbinesCSV(path string, turbines []config.Turbine) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "id;x;y;hub_height_m;rotor_diameter_m")
	for _, t := range turbines {
		fmt.Fprintf(w, "%s;%g;%g;%g;%g\n", t.ID, t.X, t.Y, t.HubHeight, t.RotorDiameter)
	}
	return w.Flush()
}
