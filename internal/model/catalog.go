package model

// ApplianceType is the installation style of a catalog entry.
type ApplianceType string

const (
	ApplianceBuiltIn      ApplianceType = "builtin"
	ApplianceFreestanding ApplianceType = "freestanding"
)

// Unit is one body of a (possibly composite) appliance.
type Unit struct {
	Name  string  `json:"name"`
	Width float64 `json:"width"`
}

// CatalogEntry is a read-only appliance record from the catalog.
type CatalogEntry struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Brand      string        `json:"brand"`
	Category   string        `json:"category"`
	Type       ApplianceType `json:"type"`
	Line       string        `json:"line"`
	Width      float64       `json:"width"`
	Height     float64       `json:"height"`
	Depth      float64       `json:"depth"`
	SideGap    float64       `json:"side_gap"`    // Clearance on each side
	BetweenGap float64       `json:"between_gap"` // Clearance between units
	Units      []Unit        `json:"units"`
}

// Footprint returns the width the entry needs including symmetric side clearance.
func (e CatalogEntry) Footprint() float64 {
	return e.Width + 2*e.SideGap
}

// IsComposite reports whether the entry is built from two or more units.
func (e CatalogEntry) IsComposite() bool {
	return len(e.Units) >= 2
}

// UnitFootprint returns side gaps plus the width of every unit and the gaps between them.
// Entries without units count as a single unit of the entry width.
func (e CatalogEntry) UnitFootprint() float64 {
	if len(e.Units) == 0 {
		return e.Footprint()
	}
	total := 2 * e.SideGap
	for _, u := range e.Units {
		total += u.Width
	}
	total += e.BetweenGap * float64(len(e.Units)-1)
	return total
}
