package config

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// ReadTurbinesCSV imports turbines from a semicolon-delimited CSV file
// with a header row: id;x;y;hub_height_m;rotor_diameter_m.
func ReadTurbinesCSV(path string) ([]Turbine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening turbine CSV: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ';'
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading turbine CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("turbine CSV has no data rows")
	}

	var turbines []Turbine
	for i, rec := range records[1:] {
		if len(rec) < 5 {
			return nil, fmt.Errorf("turbine CSV row %d has %d fields, want 5", i+2, len(rec))
		}
		nums := make([]float64, 4)
		for j, field := range rec[1:5] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("turbine CSV row %d field %q: %w", i+2, field, err)
			}
			nums[j] = v
		}
		turbines = append(turbines, Turbine{
			ID:            rec[0],
			X:             nums[0],
			Y:             nums[1],
			HubHeight:     nums[2],
			RotorDiameter: nums[3],
		})
	}
	return turbines, nil
}
