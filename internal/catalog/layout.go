package catalog

import (
	"fmt"
	"math"

	"github.com/piwi3910/CabinetFit/internal/model"
)

// LayoutRequest places one catalog model in a refrigerator cabinet run.
type LayoutRequest struct {
	ModelID     string
	TotalWidth  float64
	TotalHeight float64
	Finishes    model.Finishes
	IncludeTall bool
	TallWidth   float64 // Zero uses Rules.TallWidth
}

// Heights splits the cabinet run vertically (mm).
type Heights struct {
	Molding  float64 `json:"molding"`
	Upper    float64 `json:"upper"`
	Body     float64 `json:"body"`
	Middle   float64 `json:"middle"`
	Lower    float64 `json:"lower"`
	Pedestal float64 `json:"pedestal"`
}

// FridgeLayout is a refrigerator cabinet with its optional tall cabinet.
type FridgeLayout struct {
	Entry          model.CatalogEntry `json:"entry"`
	EffectiveWidth float64            `json:"effective_width"`
	Heights        Heights            `json:"heights"`
	Placements     []model.Placement  `json:"placements"`
	UsedWidth      float64            `json:"used_width"`
	Leftover       float64            `json:"leftover"`
	Valid          bool               `json:"valid"` // Leftover within [0, Rules.MaxLeftover]
}

// FridgeLayout computes the heights and widths of a refrigerator cabinet.
func (c *Catalog) FridgeLayout(req LayoutRequest) (FridgeLayout, error) {
	entry, err := c.ByID(req.ModelID)
	if err != nil {
		return FridgeLayout{}, err
	}

	upper := c.upperHeight(req.TotalHeight, entry.Height)
	if upper < 0 {
		return FridgeLayout{}, fmt.Errorf("%s is %.0fmm tall in %.0fmm: %w", entry.ID, entry.Height, req.TotalHeight, ErrTooTall)
	}
	body := req.TotalHeight - c.Rules.MoldingHeight - upper - c.Rules.PedestalHeight
	middle := math.Round(body * c.Rules.MiddleRatio)

	tallWidth := req.TallWidth
	if tallWidth <= 0 {
		tallWidth = c.Rules.TallWidth
	}

	var placements []model.Placement
	x := 0.0
	if req.IncludeTall {
		placements = append(placements, model.NewTallPlacement(x, tallWidth, body, c.Rules.ModuleDepth))
		x += tallWidth
	}
	appliance := model.NewAppliancePlacement(entry, x)
	placements = append(placements, appliance)

	effective := model.EffectiveSpace(req.TotalWidth, req.Finishes)
	used := appliance.Width
	if req.IncludeTall {
		used += tallWidth
	}
	leftover := effective - used

	return FridgeLayout{
		Entry:          entry,
		EffectiveWidth: effective,
		Heights: Heights{
			Molding:  c.Rules.MoldingHeight,
			Upper:    upper,
			Body:     body,
			Middle:   middle,
			Lower:    body - middle,
			Pedestal: c.Rules.PedestalHeight,
		},
		Placements: placements,
		UsedWidth:  used,
		Leftover:   leftover,
		Valid:      leftover >= 0 && leftover <= c.Rules.MaxLeftover,
	}, nil
}
