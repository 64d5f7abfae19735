package engine

import (
	"fmt"

	"github.com/piwi3910/CabinetFit/internal/model"
)

// ComparisonScenario defines a named set of layout constants to compare.
type ComparisonScenario struct {
	Name   string
	Config model.LayoutConfig
}

// ComparisonResult holds the distribution result and summary figures
// for a single scenario.
type ComparisonResult struct {
	Scenario     ComparisonScenario
	Result       model.LayoutResult
	ModuleCount  int
	DoorCount    int
	Leftover     float64
	WastePercent float64
	Err          error
}

// CompareScenarios distributes span under each scenario and returns the
// results in scenario order.
func CompareScenarios(scenarios []ComparisonScenario, span float64) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		calc := New(scenario.Config)
		result, err := calc.Distribute(span)

		var waste float64
		if span > 0 {
			waste = result.Leftover / span * 100
		}

		results = append(results, ComparisonResult{
			Scenario:     scenario,
			Result:       result,
			ModuleCount:  len(result.Modules),
			DoorCount:    result.DoorCount,
			Leftover:     result.Leftover,
			WastePercent: waste,
			Err:          err,
		})
	}

	return results
}

// BuildDefaultScenarios generates what-if alternatives around base: a wider
// and a narrower target door, and a relaxed installation allowance.
func BuildDefaultScenarios(base model.LayoutConfig) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{
			Name:   "Current Settings",
			Config: base,
		},
	}

	if wider := base.TargetWidth + 50; wider <= base.MaxWidth {
		cfg := base
		cfg.TargetWidth = wider
		scenarios = append(scenarios, ComparisonScenario{
			Name:   fmt.Sprintf("Target %.0fmm (wider)", wider),
			Config: cfg,
		})
	}

	if narrower := base.TargetWidth - 50; narrower >= base.MinWidth {
		cfg := base
		cfg.TargetWidth = narrower
		scenarios = append(scenarios, ComparisonScenario{
			Name:   fmt.Sprintf("Target %.0fmm (narrower)", narrower),
			Config: cfg,
		})
	}

	relaxed := base
	relaxed.MinRemainder = 0
	relaxed.MaxRemainder = base.MaxRemainder * 2
	scenarios = append(scenarios, ComparisonScenario{
		Name:   fmt.Sprintf("Allowance 0-%.0fmm", relaxed.MaxRemainder),
		Config: relaxed,
	})

	return scenarios
}
