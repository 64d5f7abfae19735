package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/piwi3910/CabinetFit/internal/model"
)

func TestSaveAndLoadAppConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	cfg := model.DefaultAppConfig()
	cfg.DefaultLayout.TargetWidth = 500
	cfg.PreferredBrand = "samsung"
	cfg.DefaultCategory = model.CategoryWardrobe
	cfg.RecentProjects = []string{"/tmp/kitchen.cabinetfit", "/tmp/hall.cabinetfit"}

	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}

	if loaded.DefaultLayout.TargetWidth != 500 {
		t.Errorf("expected TargetWidth=500, got %f", loaded.DefaultLayout.TargetWidth)
	}
	if loaded.PreferredBrand != "samsung" {
		t.Errorf("expected PreferredBrand=samsung, got %s", loaded.PreferredBrand)
	}
	if loaded.DefaultCategory != model.CategoryWardrobe {
		t.Errorf("expected DefaultCategory=wardrobe, got %s", loaded.DefaultCategory)
	}
	if len(loaded.RecentProjects) != 2 {
		t.Errorf("expected 2 recent projects, got %d", len(loaded.RecentProjects))
	}
	if len(loaded.DefaultLayout.Categories) != len(model.DefaultCategoryRules()) {
		t.Errorf("category rules lost in round trip: %d", len(loaded.DefaultLayout.Categories))
	}
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent", "config.json")

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}

	defaults := model.DefaultAppConfig()
	if cfg.DefaultLayout.MinWidth != defaults.DefaultLayout.MinWidth {
		t.Errorf("expected default min width %f, got %f", defaults.DefaultLayout.MinWidth, cfg.DefaultLayout.MinWidth)
	}
	if !cfg.IncludeQRInLabels {
		t.Error("expected QR labels enabled by default")
	}
}

func TestLoadAppConfigInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	if err := os.WriteFile(path, []byte("not valid json{{{"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadAppConfig(path)
	if err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}

func TestSaveAppConfigCreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "dir", "config.json")

	cfg := model.DefaultAppConfig()
	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig should create parent dirs: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("config file was not created")
	}
}

func TestLoadAppConfigPartialFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	// Only some keys present; the rest keep their defaults
	data := []byte(`{"preferred_brand":"lg","recent_projects":null}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if cfg.RecentProjects == nil {
		t.Error("RecentProjects should not be nil after loading")
	}
	if cfg.PreferredBrand != "lg" {
		t.Errorf("expected PreferredBrand=lg, got %s", cfg.PreferredBrand)
	}
	if cfg.DefaultLayout.MaxWidth != 600 {
		t.Errorf("expected default MaxWidth=600, got %f", cfg.DefaultLayout.MaxWidth)
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()
	if filepath.Base(path) != "config.json" {
		t.Errorf("unexpected config file name: %s", path)
	}
	if !strings.Contains(path, ".cabinetfit") {
		t.Errorf("config path should live under .cabinetfit: %s", path)
	}
}
