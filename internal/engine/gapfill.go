package engine

import (
	"fmt"
	"math"
	"sort"

	"github.com/piwi3910/CabinetFit/internal/model"
)

// GapFillResult is a span filled around fixed obstacles.
type GapFillResult struct {
	Placements []model.Placement `json:"placements"`
	Gaps       []model.Gap       `json:"gaps"`
	DoorWidth  float64           `json:"door_width"` // Unified width shared by every gap
	Leftover   float64           `json:"leftover"`
	IsOptimal  bool              `json:"is_optimal"`
}

// SortObstacles returns a copy of obstacles ordered by start offset.
// Obstacles with equal offsets keep their input order.
func SortObstacles(obstacles []model.Obstacle) []model.Obstacle {
	sorted := make([]model.Obstacle, len(obstacles))
	copy(sorted, obstacles)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].X < sorted[j].X
	})
	return sorted
}

// FindGaps returns the free intervals of [0, span] not covered by the
// sorted obstacles. Zero-width intervals are skipped.
func FindGaps(span float64, sorted []model.Obstacle) []model.Gap {
	var gaps []model.Gap
	cursor := 0.0
	for _, o := range sorted {
		if o.X > cursor {
			end := math.Min(o.X, span)
			if end > cursor {
				gaps = append(gaps, model.Gap{Start: cursor, End: end, Width: end - cursor})
			}
		}
		cursor = math.Max(cursor, o.End())
	}
	if cursor < span {
		gaps = append(gaps, model.Gap{Start: cursor, End: span, Width: span - cursor})
	}
	return gaps
}

// OptimizeLayout fills the space around fixed obstacles with modules of one
// shared door width. Without obstacles the whole span is distributed.
func (c *Calculator) OptimizeLayout(effectiveWidth float64, obstacles []model.Obstacle, section model.Section) (GapFillResult, error) {
	if err := checkSpan(effectiveWidth); err != nil {
		return GapFillResult{}, err
	}
	for _, o := range obstacles {
		if o.Width < 0 || o.X < 0 || math.IsNaN(o.X) || math.IsNaN(o.Width) {
			return GapFillResult{}, fmt.Errorf("obstacle %q at %v width %v: %w", o.Label, o.X, o.Width, ErrOutOfRange)
		}
	}

	if len(obstacles) == 0 {
		r, err := c.Distribute(effectiveWidth)
		if err != nil {
			return GapFillResult{}, err
		}
		gaps := FindGaps(effectiveWidth, nil)
		return GapFillResult{
			Placements: PlaceLayout(section, r),
			Gaps:       gaps,
			DoorWidth:  r.DoorWidth,
			Leftover:   r.Leftover,
			IsOptimal:  r.IsOptimal,
		}, nil
	}

	sorted := SortObstacles(obstacles)
	gaps := FindGaps(effectiveWidth, sorted)

	var fillable float64
	for _, g := range gaps {
		if g.Width >= c.Config.MinFillSpan {
			fillable += g.Width
		}
	}
	unified := c.Config.TargetWidth
	if fillable > 0 {
		r, err := c.Distribute(fillable)
		if err != nil {
			return GapFillResult{}, err
		}
		unified = r.DoorWidth
	}

	var placements []model.Placement
	var leftover float64
	for _, g := range gaps {
		if g.Width < c.Config.MinFillSpan {
			leftover += g.Width
			continue
		}
		count, width := c.fitGap(g.Width, unified)
		placements = append(placements, placeModules(section, pairModules(count, width), g.Start)...)
		leftover += g.Width - width*float64(count)
	}

	for _, o := range sorted {
		placements = append(placements, model.NewFixedPlacement(o))
	}
	sort.SliceStable(placements, func(i, j int) bool {
		return placements[i].X < placements[j].X
	})

	return GapFillResult{
		Placements: placements,
		Gaps:       gaps,
		DoorWidth:  unified,
		Leftover:   leftover,
		IsOptimal:  c.Config.InTolerance(leftover),
	}, nil
}

// fitGap chooses the door count and width for one gap given the unified
// width. The unified width is kept, even when it overflows the gap, unless it
// lies outside [MinWidth, MaxWidth]; then the count comes from the violated
// bound and the width becomes exactly gapWidth/count.
func (c *Calculator) fitGap(gapWidth, unified float64) (int, float64) {
	count := max(1, int(math.Round(gapWidth/unified)))
	width := unified

	switch {
	case unified < c.Config.MinWidth:
		count = max(1, int(math.Floor(gapWidth/c.Config.MinWidth)))
		width = gapWidth / float64(count)
	case unified > c.Config.MaxWidth:
		count = int(math.Ceil(gapWidth / c.Config.MaxWidth))
		width = gapWidth / float64(count)
	}
	return count, width
}
