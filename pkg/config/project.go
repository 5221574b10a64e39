package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ProjectFileName is the project file written into the project directory.
const ProjectFileName = "project.wssproj.json"

// SaveProject writes the project file into the project directory so the
// run can be reopened later.
func SaveProject(dir string, p *Project) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding project: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ProjectFileName), data, 0o644); err != nil {
		return fmt.Errorf("saving project file: %w", err)
	}
	return nil
}

// LoadProject reads the project file from the project directory.
func LoadProject(dir string) (*Project, error) {
	data, err := os.ReadFile(filepath.Join(dir, ProjectFileName))
	if err != nil {
		return nil, fmt.Errorf("reading project file: %w", err)
	}
	var p Project
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decoding project file: %w", err)
	}
	p.ProjectPath = dir
	return &p, nil
}
