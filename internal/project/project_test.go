package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/CabinetFit/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadProject(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kitchen"+ProjectExt)

	p := model.NewProject()
	p.Name = "Kitchen"
	p.Width = 3120
	plan := model.NewPlan("Kitchen", model.CategorySink, model.SectionLower, 3000)
	plan.DoorWidth = 480
	plan.Placements = append(plan.Placements,
		model.NewStoragePlacement("Lower 2D", model.NewModule(model.ModuleDouble, 480), 0),
		model.NewFixedPlacement(model.Obstacle{Label: "Oven", X: 960, Width: 600}),
	)
	p.Plans = append(p.Plans, plan)

	require.NoError(t, SaveProject(path, p))

	loaded, err := LoadProject(path)
	require.NoError(t, err)
	assert.Equal(t, "Kitchen", loaded.Name)
	assert.Equal(t, 3120.0, loaded.Width)
	require.Len(t, loaded.Plans, 1)
	assert.Equal(t, plan.ID, loaded.Plans[0].ID)
	require.Len(t, loaded.Plans[0].Placements, 2)
	assert.Equal(t, model.PlacementFixed, loaded.Plans[0].Placements[1].Kind)
	assert.Equal(t, 960.0, loaded.Plans[0].Placements[0].Width)
	assert.Equal(t, p.Config.TargetWidth, loaded.Config.TargetWidth)
}

func TestLoadProjectErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadProject(filepath.Join(dir, "missing"+ProjectExt))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad"+ProjectExt)
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0644))
	_, err = LoadProject(bad)
	assert.Error(t, err)
}

func TestLoadProjectFillsNilCollections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bare"+ProjectExt)
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"Bare","plans":null}`), 0644))

	p, err := LoadProject(path)
	require.NoError(t, err)
	assert.NotNil(t, p.Plans)
	assert.NotEmpty(t, p.Config.Categories)
}
