package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/CabinetFit/internal/model"
)

func TestExportLabels_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "labels.pdf")

	err := ExportLabels(path, buildTestPlans())
	if err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
	if info.Size() < 500 {
		t.Errorf("PDF file seems too small: %d bytes", info.Size())
	}
}

func TestExportLabels_EmptyPlans(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.pdf")

	if err := ExportLabels(path, nil); err == nil {
		t.Fatal("expected error for empty plan list, got nil")
	}
}

func TestExportLabels_NoCabinets(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "no_cabinets.pdf")

	plan := model.NewPlan("Obstacles only", model.CategorySink, model.SectionLower, 1200)
	plan.Placements = []model.Placement{
		model.NewFixedPlacement(model.Obstacle{Label: "Oven", X: 0, Width: 600}),
		model.NewAnchorPlacement(model.Anchor{Kind: model.AnchorHood, X: 600, Width: 600, Height: 660}, 295),
	}

	if err := ExportLabels(path, []model.Plan{plan}); err == nil {
		t.Fatal("expected error for plan with no cabinets, got nil")
	}
}

func TestCollectLabelInfos(t *testing.T) {
	labels := CollectLabelInfos(buildTestPlans())

	// 3 lower modules + reference + 1 upper module; obstacle and hood are skipped
	if len(labels) != 5 {
		t.Fatalf("expected 5 labels, got %d", len(labels))
	}

	if labels[0].Label != "Lower 2D" {
		t.Errorf("expected first label to be 'Lower 2D', got %q", labels[0].Label)
	}
	if labels[0].Width != 960 || labels[0].Doors != 2 {
		t.Errorf("wrong first module: got width %.0f doors %d, want 960 and 2", labels[0].Width, labels[0].Doors)
	}
	if labels[0].Section != model.SectionLower || labels[0].Position != 1 {
		t.Errorf("unexpected section/position: %s #%d", labels[0].Section, labels[0].Position)
	}

	// Positions skip the obstacle
	if labels[1].Position != 2 || labels[1].X != 1600 {
		t.Errorf("expected second label at position 2, X 1600, got #%d at %.0f", labels[1].Position, labels[1].X)
	}

	// Positions restart per plan
	if labels[3].Section != model.SectionUpper || labels[3].Position != 1 {
		t.Errorf("expected upper reference at position 1, got %s #%d", labels[3].Section, labels[3].Position)
	}
	if labels[3].Kind != model.PlacementReference {
		t.Errorf("expected reference cabinet, got %s", labels[3].Kind)
	}

	for _, l := range labels {
		if l.ID == "" {
			t.Errorf("label %q has no ID", l.Label)
		}
		if l.Plan != "Kitchen" {
			t.Errorf("label %q has plan %q, want Kitchen", l.Label, l.Plan)
		}
	}
}

func TestCollectLabelInfos_TallCabinet(t *testing.T) {
	plan := model.NewPlan("Fridge wall", model.CategoryFridge, model.SectionLower, 1500)
	plan.Placements = []model.Placement{
		model.NewTallPlacement(0, 600, 2300, 550),
		model.NewAppliancePlacement(model.CatalogEntry{Name: "Fridge", Width: 800, SideGap: 8}, 600),
	}

	labels := CollectLabelInfos([]model.Plan{plan})
	if len(labels) != 1 {
		t.Fatalf("expected 1 label, got %d", len(labels))
	}
	if labels[0].Kind != model.PlacementTall || labels[0].Height != 2300 {
		t.Errorf("unexpected tall label: %+v", labels[0])
	}
}

func TestLabelInfo_JSONEncoding(t *testing.T) {
	info := LabelInfo{
		ID:       "abc12345",
		Plan:     "Kitchen",
		Section:  model.SectionUpper,
		Label:    "Upper 1D",
		Kind:     model.PlacementStorage,
		Position: 3,
		X:        1966,
		Width:    516,
	}

	data, err := json.Marshal(info)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if fields["width_mm"] != 516.0 || fields["x_mm"] != 1966.0 {
		t.Errorf("unexpected dimensions in %s", data)
	}
	if _, ok := fields["height_mm"]; ok {
		t.Errorf("zero height should be omitted: %s", data)
	}
	if fields["section"] != "upper" {
		t.Errorf("section mismatch: got %v", fields["section"])
	}
}

func TestExportLabels_ManyCabinets(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "many_labels.pdf")

	// 35 modules spill onto a second page
	plan := model.NewPlan("Warehouse", model.CategoryWarehouse, model.SectionLower, 35*450)
	for i := 0; i < 35; i++ {
		m := model.NewModule(model.ModuleSingle, 450)
		plan.Placements = append(plan.Placements, model.NewStoragePlacement("Lower 1D", m, float64(i)*450))
	}

	if err := ExportLabels(path, []model.Plan{plan}); err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}
	if got := len(CollectLabelInfos([]model.Plan{plan})); got != 35 {
		t.Errorf("expected 35 labels, got %d", got)
	}
}
