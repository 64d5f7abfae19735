package export

import "github.com/piwi3910/CabinetFit/internal/model"

// buildTestPlans creates a lower run with an obstacle and an upper run with
// both anchors.
func buildTestPlans() []model.Plan {
	lower := model.NewPlan("Kitchen", model.CategorySink, model.SectionLower, 3000)
	lower.DoorWidth = 480
	lower.Leftover = 40
	lower.Placements = []model.Placement{
		model.NewStoragePlacement("Lower 2D", model.NewModule(model.ModuleDouble, 480), 0),
		model.NewFixedPlacement(model.Obstacle{Label: "Dishwasher", X: 1000, Width: 600}),
		model.NewStoragePlacement("Lower 2D", model.NewModule(model.ModuleDouble, 466.67), 1600),
		model.NewStoragePlacement("Lower 1D", model.NewModule(model.ModuleSingle, 466.67), 2533.33),
	}
	lower.Suggestions = []string{"40mm of space is unused."}

	upper := model.NewPlan("Kitchen", model.CategorySink, model.SectionUpper, 3000)
	upper.DoorWidth = 366
	upper.Leftover = 436
	upper.Placements = []model.Placement{
		model.NewAnchorPlacement(model.Anchor{Kind: model.AnchorHood, X: 100, Width: 800, Height: 660}, 295),
		model.NewAnchorPlacement(model.Anchor{Kind: model.AnchorReference, X: 1234, Width: 732, Height: 700}, 295),
		model.NewStoragePlacement("Upper 2D", model.NewModule(model.ModuleDouble, 516), 1966),
	}

	return []model.Plan{lower, upper}
}
