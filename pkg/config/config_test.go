package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestApplyDefaults(t *testing.T) {
	p := &Project{}
	p.ApplyDefaults()

	if p.CellSize != DefaultCellSize {
		t.Errorf("CellSize = %v, want %v", p.CellSize, DefaultCellSize)
	}
	if p.Buffer != DefaultBuffer {
		t.Errorf("Buffer = %v, want %v", p.Buffer, DefaultBuffer)
	}
	if p.Output.Format != FormatBoth {
		t.Errorf("Output.Format = %q, want %q", p.Output.Format, FormatBoth)
	}

	// Explicit values survive.
	p2 := &Project{CellSize: 25, Buffer: 500, Output: Output{Format: FormatASC}}
	p2.ApplyDefaults()
	if p2.CellSize != 25 || p2.Buffer != 500 || p2.Output.Format != FormatASC {
		t.Errorf("defaults overwrote explicit values: %+v", p2)
	}
}

func TestOutputIncludes(t *testing.T) {
	tests := []struct {
		format string
		asc    bool
		tif    bool
	}{
		{FormatASC, true, false},
		{FormatGeoTIFF, false, true},
		{FormatBoth, true, true},
	}

	for _, tt := range tests {
		o := Output{Format: tt.format}
		if o.Includes(FormatASC) != tt.asc {
			t.Errorf("%q Includes(asc) = %v, want %v", tt.format, o.Includes(FormatASC), tt.asc)
		}
		if o.Includes(FormatGeoTIFF) != tt.tif {
			t.Errorf("%q Includes(geotiff) = %v, want %v", tt.format, o.Includes(FormatGeoTIFF), tt.tif)
		}
		if !o.Valid() {
			t.Errorf("%q should be valid", tt.format)
		}
	}

	if (Output{Format: "png"}).Valid() {
		t.Error("unknown format should be invalid")
	}
}

func TestSaveLoadProject(t *testing.T) {
	dir := t.TempDir()
	p := &Project{
		ProjectPath:  dir,
		EPSG:         "EPSG:32632",
		CellSize:     10,
		Buffer:       2000,
		TerrainAware: true,
		DEMPath:      "dem.asc",
		Turbines: []Turbine{
			{ID: "T1", X: 500100, Y: 5000100, HubHeight: 120, RotorDiameter: 140},
		},
		Output: Output{Format: FormatBoth},
	}

	if err := SaveProject(dir, p); err != nil {
		t.Fatalf("SaveProject: %v", err)
	}

	got, err := LoadProject(dir)
	if err != nil {
		t.Fatalf("LoadProject: %v", err)
	}
	if got.EPSG != p.EPSG || got.CellSize != p.CellSize || !got.TerrainAware {
		t.Errorf("loaded project = %+v", got)
	}
	if len(got.Turbines) != 1 || got.Turbines[0] != p.Turbines[0] {
		t.Errorf("loaded turbines = %+v", got.Turbines)
	}
}

func TestReadTurbinesCSV(t *testing.T) {
	content := "id;x;y;hub_height_m;rotor_diameter_m\nT1;500100;5000100;120;140\nT2;500400.5;5000300;99.5;117\n"
	path := filepath.Join(t.TempDir(), "turbines.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	turbines, err := ReadTurbinesCSV(path)
	if err != nil {
		t.Fatalf("ReadTurbinesCSV: %v", err)
	}
	if len(turbines) != 2 {
		t.Fatalf("got %d turbines, want 2", len(turbines))
	}
	want := Turbine{ID: "T2", X: 500400.5, Y: 5000300, HubHeight: 99.5, RotorDiameter: 117}
	if turbines[1] != want {
		t.Errorf("turbine = %+v, want %+v", turbines[1], want)
	}
}

func TestReadTurbinesCSVErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"header only", "id;x;y;hub_height_m;rotor_diameter_m\n"},
		{"bad number", "id;x;y;hub_height_m;rotor_diameter_m\nT1;abc;0;80;40\n"},
		{"short row", "id;x;y\nT1;1;2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.csv")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := ReadTurbinesCSV(path); err == nil {
				t.Error("ReadTurbinesCSV should fail")
			}
		})
	}
}
