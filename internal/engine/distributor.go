package engine

import (
	"math"
	"sort"

	"github.com/piwi3910/CabinetFit/internal/model"
)

// countOption is one feasible (count, width) pair found by the search.
type countOption struct {
	count      int
	width      float64
	leftover   float64
	targetDiff float64
	primary    bool
}

// countRange returns the door counts worth trying for span.
func (c *Calculator) countRange(span float64) (minCount, maxPossible, maxCount int) {
	minCount = int(math.Ceil(span / c.Config.MaxWidth))
	if minCount < 1 {
		minCount = 1
	}
	maxPossible = int(math.Floor(span / c.Config.MinWidth))
	base := int(math.Round(span / c.Config.TargetWidth))
	maxCount = min(maxPossible, max(base+3, minCount+5))
	return minCount, maxPossible, maxCount
}

// search finds the best door count and width for span. The second return
// value is false when the fallback path was taken.
func (c *Calculator) search(span float64) (countOption, bool) {
	minCount, maxPossible, maxCount := c.countRange(span)

	var options []countOption
	for count := minCount; count <= maxCount; count++ {
		cand, err := c.resolve(span, count)
		if err != nil {
			continue
		}
		options = append(options, countOption{
			count:      count,
			width:      cand.Width,
			leftover:   cand.Leftover,
			targetDiff: math.Abs(cand.Width - c.Config.TargetWidth),
			primary:    c.Config.InTolerance(cand.Leftover),
		})
	}

	if len(options) > 0 {
		sort.SliceStable(options, func(i, j int) bool {
			a, b := options[i], options[j]
			if a.primary != b.primary {
				return a.primary
			}
			if a.targetDiff != b.targetDiff {
				return a.targetDiff < b.targetDiff
			}
			return a.leftover < b.leftover
		})
		return options[0], true
	}

	// Forced layout. The upper count bound wins over the lower one so that
	// doors are not squeezed under MinWidth when a smaller count fits.
	count := int(math.Round(span / c.Config.TargetWidth))
	count = max(1, min(maxPossible, max(minCount, count)))
	width := math.Floor(span/float64(count)/2) * 2
	width = math.Max(c.Config.MinWidth, math.Min(c.Config.MaxWidth, width))
	return countOption{
		count:    count,
		width:    width,
		leftover: span - width*float64(count),
	}, false
}

// layout runs the search and packages the door count and width; emit turns
// them into modules.
func (c *Calculator) layout(span float64, emit func(count int, width float64) []model.Module) (model.LayoutResult, error) {
	if err := checkSpan(span); err != nil {
		return model.LayoutResult{}, err
	}
	if span < c.Config.MinFillSpan {
		return model.LayoutResult{Span: span, Modules: []model.Module{}, Status: model.StatusDegenerate}, nil
	}

	best, solved := c.search(span)
	status := model.StatusSolved
	if !solved {
		status = model.StatusFallback
	}
	return model.LayoutResult{
		Span:      span,
		Modules:   emit(best.count, best.width),
		DoorWidth: best.width,
		DoorCount: best.count,
		Leftover:  span - best.width*float64(best.count),
		IsOptimal: best.primary,
		Status:    status,
	}, nil
}

// pairModules emits count/2 double modules followed by one single module
// when count is odd.
func pairModules(count int, width float64) []model.Module {
	modules := make([]model.Module, 0, count/2+count%2)
	for i := 0; i < count/2; i++ {
		modules = append(modules, model.NewModule(model.ModuleDouble, width))
	}
	if count%2 == 1 {
		modules = append(modules, model.NewModule(model.ModuleSingle, width))
	}
	return modules
}

func singleModules(count int, width float64) []model.Module {
	modules := make([]model.Module, 0, count)
	for i := 0; i < count; i++ {
		modules = append(modules, model.NewModule(model.ModuleSingle, width))
	}
	return modules
}

// Distribute splits span into evenly sized modules, pairing doors into
// double modules. Spans below MinFillSpan return an empty degenerate result.
func (c *Calculator) Distribute(span float64) (model.LayoutResult, error) {
	return c.layout(span, pairModules)
}

// DistributeSingleDoor is Distribute with one door per module.
func (c *Calculator) DistributeSingleDoor(span float64) (model.LayoutResult, error) {
	return c.layout(span, singleModules)
}

// DistributeForCategory applies the category rule table: upper sections of
// categories marked UpperSinglePerModule get one door per module.
func (c *Calculator) DistributeForCategory(span float64, cat model.Category, upper bool) (model.LayoutResult, error) {
	if upper && c.Config.Rule(cat).UpperSinglePerModule {
		return c.DistributeSingleDoor(span)
	}
	return c.Distribute(span)
}
