package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/CabinetFit/internal/model"
)

// ProjectExt is the file extension used for saved projects.
const ProjectExt = ".cabinetfit"

// SaveProject writes a project to disk as indented JSON.
func SaveProject(path string, p model.Project) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal project: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write project: %w", err)
	}
	return nil
}

// LoadProject reads a project file written by SaveProject.
func LoadProject(path string) (model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Project{}, fmt.Errorf("failed to read project: %w", err)
	}
	var p model.Project
	if err := json.Unmarshal(data, &p); err != nil {
		return model.Project{}, fmt.Errorf("failed to parse project: %w", err)
	}
	if p.Plans == nil {
		p.Plans = []model.Plan{}
	}
	if p.Config.Categories == nil {
		p.Config.Categories = model.DefaultCategoryRules()
	}
	return p, nil
}
