package dem

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ReadASC reads an ESRI ASCII grid file into an ElevationModel. The header
// keys ncols, nrows, xllcorner, yllcorner and cellsize are required;
// NODATA_value defaults to -9999 when absent. Values are row-major with
// the northernmost row first, as the format specifies.
func ReadASC(path string) (*ElevationModel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening DEM: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)

	header := map[string]float64{"nodata_value": -9999}
	var values []float64
	ncols, nrows := 0, 0

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)

		// Header lines are "key value" pairs; the first line starting
		// with a number begins the data block.
		if len(fields) == 2 && !isNumeric(fields[0]) {
			v, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return nil, fmt.Errorf("parsing DEM header %q: %w", line, err)
			}
			header[strings.ToLower(fields[0])] = v
			continue
		}

		if ncols == 0 {
			nc, ok1 := header["ncols"]
			nr, ok2 := header["nrows"]
			if !ok1 || !ok2 {
				return nil, fmt.Errorf("DEM header missing ncols/nrows")
			}
			ncols, nrows = int(nc), int(nr)
			if ncols <= 0 || nrows <= 0 {
				return nil, fmt.Errorf("DEM has invalid dimensions %dx%d", ncols, nrows)
			}
			values = make([]float64, 0, ncols*nrows)
		}

		for _, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("parsing DEM value %q: %w", field, err)
			}
			values = append(values, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading DEM: %w", err)
	}

	if ncols == 0 {
		return nil, fmt.Errorf("DEM contains no data rows")
	}
	if len(values) != ncols*nrows {
		return nil, fmt.Errorf("DEM has %d values, expected %d", len(values), ncols*nrows)
	}

	for _, key := range []string{"xllcorner", "yllcorner", "cellsize"} {
		if _, ok := header[key]; !ok {
			return nil, fmt.Errorf("DEM header missing %s", key)
		}
	}

	xll := header["xllcorner"]
	yll := header["yllcorner"]
	cell := header["cellsize"]
	maxY := yll + float64(nrows)*cell

	return &ElevationModel{
		Rows: nrows,
		Cols: ncols,
		Data: values,
		Transform: Transform{
			OriginX:     xll,
			OriginY:     maxY,
			PixelWidth:  cell,
			PixelHeight: cell,
		},
		NoData: header["nodata_value"],
		Bounds: Bounds{
			MinX: xll,
			MinY: yll,
			MaxX: xll + float64(ncols)*cell,
			MaxY: maxY,
		},
	}, nil
}

func isNumeric(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
