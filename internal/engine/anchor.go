package engine

import (
	"fmt"
	"math"

	"github.com/piwi3910/CabinetFit/internal/model"
)

// UpperLayout is an upper section with a hood and a reference cabinet.
type UpperLayout struct {
	Placements []model.Placement `json:"placements"`
	Hood       model.Anchor      `json:"hood"`
	Reference  model.Anchor      `json:"reference"`
	DoorWidth  float64           `json:"door_width"`
	TotalUsed  float64           `json:"total_used"`
	Leftover   float64           `json:"leftover"`
	// Unfilled lists sub-spans wider than MinFillSpan that were left empty
	// because no module fits them without running into an anchor.
	Unfilled []model.Gap `json:"unfilled,omitempty"`
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// PlanUpperSection places the hood over the vent and the reference cabinet
// over the sink, then fills the space left of, between and right of them.
//
// distributorStart is the left edge of the sink area; the reference cabinet
// is centered on the sink unit that starts ReferenceOffset before it.
func (c *Calculator) PlanUpperSection(effectiveWidth, distributorStart, ventPosition, upperHeight float64) (UpperLayout, error) {
	if err := checkSpan(effectiveWidth); err != nil {
		return UpperLayout{}, err
	}
	if upperHeight < 0 || math.IsNaN(upperHeight) {
		return UpperLayout{}, fmt.Errorf("upper height %v: %w", upperHeight, ErrOutOfRange)
	}

	up := c.Config.Upper
	if effectiveWidth < up.HoodWidth {
		return UpperLayout{}, fmt.Errorf("hood %.0fmm in %.0fmm: %w", up.HoodWidth, effectiveWidth, ErrInfeasible)
	}

	base, err := c.Distribute(effectiveWidth - up.HoodWidth)
	if err != nil {
		return UpperLayout{}, err
	}
	refWidth := base.DoorWidth * 2
	if refWidth == 0 || up.HoodWidth+refWidth > effectiveWidth {
		return UpperLayout{}, fmt.Errorf("hood and %.0fmm reference cabinet in %.0fmm: %w", refWidth, effectiveWidth, ErrInfeasible)
	}

	hood := model.Anchor{
		Kind:   model.AnchorHood,
		X:      clamp(ventPosition-up.HoodWidth/2, 0, effectiveWidth-up.HoodWidth),
		Width:  up.HoodWidth,
		Height: upperHeight - up.HoodHeightInset,
	}
	sinkCenter := distributorStart - up.ReferenceOffset + up.ReferenceUnitWidth/2
	ref := model.Anchor{
		Kind:   model.AnchorReference,
		X:      clamp(sinkCenter-refWidth/2, 0, effectiveWidth-refWidth),
		Width:  refWidth,
		Height: upperHeight - up.StorageHeightInset,
	}

	first, second := &ref, &hood
	if hood.X < ref.X {
		first, second = &hood, &ref
	}
	separate(first, second, effectiveWidth)

	storageH := upperHeight - up.StorageHeightInset
	var placements []model.Placement
	var unfilled []model.Gap

	fill := func(start, end float64) error {
		width := end - start
		if width <= c.Config.MinFillSpan {
			return nil
		}
		r, err := c.Distribute(width)
		if err != nil {
			return err
		}
		if r.Leftover < 0 {
			unfilled = append(unfilled, model.Gap{Start: start, End: end, Width: width})
			return nil
		}
		for _, p := range placeModules(model.SectionUpper, r.Modules, start) {
			p.Height = storageH
			p.Depth = up.Depth
			placements = append(placements, p)
		}
		return nil
	}

	if err := fill(0, first.X); err != nil {
		return UpperLayout{}, err
	}
	placements = append(placements, model.NewAnchorPlacement(*first, up.Depth))
	if err := fill(first.End(), second.X); err != nil {
		return UpperLayout{}, err
	}
	placements = append(placements, model.NewAnchorPlacement(*second, up.Depth))
	if err := fill(second.End(), effectiveWidth); err != nil {
		return UpperLayout{}, err
	}

	var used float64
	for _, p := range placements {
		used += p.Width
	}
	return UpperLayout{
		Placements: placements,
		Hood:       hood,
		Reference:  ref,
		DoorWidth:  base.DoorWidth,
		TotalUsed:  used,
		Leftover:   effectiveWidth - used,
		Unfilled:   unfilled,
	}, nil
}

// separate pushes second right until it no longer overlaps first, then
// shifts both left if second runs past the span end. Callers guarantee the
// combined width fits.
func separate(first, second *model.Anchor, span float64) {
	if second.X < first.End() {
		second.X = first.End()
	}
	if second.End() > span {
		second.X = span - second.Width
		first.X = math.Max(0, second.X-first.Width)
	}
}
