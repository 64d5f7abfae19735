package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/piwi3910/CabinetFit/internal/model"
	"gopkg.in/yaml.v3"
)

// LoadLayoutConfig reads layout constants from a .toml, .yaml or .yml file.
// Keys absent from the file keep their DefaultLayoutConfig value, and the
// merged result is validated before it is returned.
func LoadLayoutConfig(path string) (model.LayoutConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.LayoutConfig{}, fmt.Errorf("failed to read layout config: %w", err)
	}

	cfg := model.DefaultLayoutConfig()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return model.LayoutConfig{}, fmt.Errorf("failed to parse TOML layout config: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return model.LayoutConfig{}, fmt.Errorf("failed to parse YAML layout config: %w", err)
		}
	default:
		return model.LayoutConfig{}, fmt.Errorf("unsupported layout config format %q (use .toml, .yaml or .yml)", ext)
	}

	if cfg.Categories == nil {
		cfg.Categories = model.DefaultCategoryRules()
	}
	if err := cfg.Validate(); err != nil {
		return model.LayoutConfig{}, fmt.Errorf("invalid layout config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveLayoutConfig writes layout constants in the format implied by the
// file extension.
func SaveLayoutConfig(path string, cfg model.LayoutConfig) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".toml" && ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("unsupported layout config format %q (use .toml, .yaml or .yml)", ext)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create layout config: %w", err)
	}
	defer f.Close()

	if ext == ".toml" {
		if err := toml.NewEncoder(f).Encode(cfg); err != nil {
			return fmt.Errorf("failed to write TOML layout config: %w", err)
		}
		return nil
	}

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to write YAML layout config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to flush YAML layout config: %w", err)
	}
	return nil
}
