package engine

import (
	"fmt"

	"github.com/piwi3910/CabinetFit/internal/model"
)

func sectionName(s model.Section) string {
	if s == model.SectionUpper {
		return "Upper"
	}
	return "Lower"
}

// placeModules lays modules out left to right starting at x.
func placeModules(section model.Section, modules []model.Module, x float64) []model.Placement {
	placements := make([]model.Placement, 0, len(modules))
	for _, m := range modules {
		label := fmt.Sprintf("%s %s", sectionName(section), m.Kind)
		placements = append(placements, model.NewStoragePlacement(label, m, x))
		x += m.Width
	}
	return placements
}

// PlaceLayout positions a distribution result from the left edge.
func PlaceLayout(section model.Section, r model.LayoutResult) []model.Placement {
	return placeModules(section, r.Modules, 0)
}
