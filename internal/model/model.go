package model

import (
	"time"

	"github.com/google/uuid"
)

// ModuleKind distinguishes the two cabinet module size classes.
type ModuleKind int

const (
	ModuleSingle ModuleKind = iota + 1 // One door, width = door width
	ModuleDouble                       // Two doors, width = 2 x door width
)

func (k ModuleKind) String() string {
	switch k {
	case ModuleSingle:
		return "1D"
	case ModuleDouble:
		return "2D"
	default:
		return "?"
	}
}

// Doors returns the number of doors a module of this kind carries.
func (k ModuleKind) Doors() int {
	if k == ModuleDouble {
		return 2
	}
	return 1
}

// Module is a single cabinet unit emitted by the distributor.
type Module struct {
	Kind  ModuleKind `json:"kind"`
	Width float64    `json:"width"` // mm
}

// NewModule builds a module of the given kind from a door width.
func NewModule(kind ModuleKind, doorWidth float64) Module {
	return Module{Kind: kind, Width: doorWidth * float64(kind.Doors())}
}

// DoorCount returns the number of doors on the module.
func (m Module) DoorCount() int {
	return m.Kind.Doors()
}

// LayoutStatus tells how a distribution result was obtained.
type LayoutStatus int

const (
	StatusSolved     LayoutStatus = iota // A feasible width was found by the search
	StatusFallback                       // No feasible width; count and width were forced
	StatusDegenerate                     // Span below the minimum usable threshold
)

func (s LayoutStatus) String() string {
	switch s {
	case StatusFallback:
		return "fallback"
	case StatusDegenerate:
		return "degenerate"
	default:
		return "solved"
	}
}

// LayoutResult is the outcome of distributing one span.
// Double modules always precede the trailing single module.
type LayoutResult struct {
	Span      float64      `json:"span"`
	Modules   []Module     `json:"modules"`
	DoorWidth float64      `json:"door_width"`
	DoorCount int          `json:"door_count"`
	Leftover  float64      `json:"leftover"`
	IsOptimal bool         `json:"is_optimal"`
	Status    LayoutStatus `json:"status"`
}

// UsedWidth returns the total width of all emitted modules.
func (r LayoutResult) UsedWidth() float64 {
	var total float64
	for _, m := range r.Modules {
		total += m.Width
	}
	return total
}

// CountKinds returns the number of double and single modules.
func (r LayoutResult) CountKinds() (doubles, singles int) {
	for _, m := range r.Modules {
		if m.Kind == ModuleDouble {
			doubles++
		} else {
			singles++
		}
	}
	return doubles, singles
}

// Obstacle is a caller-supplied fixed element occupying part of a span.
type Obstacle struct {
	Label string  `json:"label"`
	X     float64 `json:"x"`     // Start offset from the left edge (mm)
	Width float64 `json:"width"` // mm
}

// End returns the right edge of the obstacle.
func (o Obstacle) End() float64 {
	return o.X + o.Width
}

// Gap is free space between obstacles.
type Gap struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Width float64 `json:"width"`
}

// PlacementKind identifies what occupies a positioned slot.
type PlacementKind string

const (
	PlacementStorage   PlacementKind = "storage"   // Distributed cabinet module
	PlacementHood      PlacementKind = "hood"      // Range hood anchor
	PlacementReference PlacementKind = "reference" // Reference cabinet anchor (sink aligned)
	PlacementFixed     PlacementKind = "fixed"     // Caller supplied obstacle
	PlacementAppliance PlacementKind = "appliance" // Catalog appliance (refrigerator)
	PlacementTall      PlacementKind = "tall"      // Full-height cabinet beside an appliance
)

// Placement is a positioned element of a laid out section.
type Placement struct {
	ID     string        `json:"id"`
	Kind   PlacementKind `json:"kind"`
	Label  string        `json:"label"`
	X      float64       `json:"x"`     // Offset from the left edge (mm)
	Width  float64       `json:"width"` // mm
	Height float64       `json:"height,omitempty"`
	Depth  float64       `json:"depth,omitempty"`
	Doors  int           `json:"doors,omitempty"`
	Fixed  bool          `json:"fixed"`
}

// End returns the right edge of the placement.
func (p Placement) End() float64 {
	return p.X + p.Width
}

func newID() string {
	return uuid.New().String()[:8]
}

// NewStoragePlacement positions a distributed module.
func NewStoragePlacement(label string, m Module, x float64) Placement {
	return Placement{
		ID:    newID(),
		Kind:  PlacementStorage,
		Label: label,
		X:     x,
		Width: m.Width,
		Doors: m.DoorCount(),
	}
}

// NewFixedPlacement converts an obstacle into a fixed placement.
func NewFixedPlacement(o Obstacle) Placement {
	label := o.Label
	if label == "" {
		label = "Fixed"
	}
	return Placement{
		ID:    newID(),
		Kind:  PlacementFixed,
		Label: label,
		X:     o.X,
		Width: o.Width,
		Fixed: true,
	}
}

// NewAppliancePlacement positions a catalog appliance with its clearances
// included in the width.
func NewAppliancePlacement(e CatalogEntry, x float64) Placement {
	return Placement{
		ID:     newID(),
		Kind:   PlacementAppliance,
		Label:  e.Name,
		X:      x,
		Width:  e.UnitFootprint(),
		Height: e.Height,
		Depth:  e.Depth,
		Fixed:  true,
	}
}

// NewTallPlacement positions a single-door full-height cabinet.
func NewTallPlacement(x, width, height, depth float64) Placement {
	return Placement{
		ID:     newID(),
		Kind:   PlacementTall,
		Label:  "Tall cabinet",
		X:      x,
		Width:  width,
		Height: height,
		Depth:  depth,
		Doors:  1,
	}
}

// AnchorKind identifies one of the two fixed upper-section anchors.
type AnchorKind string

const (
	AnchorHood      AnchorKind = "hood"
	AnchorReference AnchorKind = "reference"
)

// Anchor is a fixed-size, fixed-position element placed before filling.
type Anchor struct {
	Kind   AnchorKind `json:"kind"`
	X      float64    `json:"x"`
	Width  float64    `json:"width"`
	Height float64    `json:"height"`
}

// End returns the right edge of the anchor.
func (a Anchor) End() float64 {
	return a.X + a.Width
}

// NewAnchorPlacement converts an anchor into a fixed placement.
func NewAnchorPlacement(a Anchor, depth float64) Placement {
	p := Placement{
		ID:     newID(),
		Kind:   PlacementHood,
		Label:  "Hood",
		X:      a.X,
		Width:  a.Width,
		Height: a.Height,
		Depth:  depth,
		Fixed:  true,
	}
	if a.Kind == AnchorReference {
		p.Kind = PlacementReference
		p.Label = "Reference upper 2D"
		p.Doors = 2
	}
	return p
}

// Section selects upper (wall) or lower (base) cabinets.
type Section string

const (
	SectionUpper Section = "upper"
	SectionLower Section = "lower"
)

// Plan is a laid out section ready for export or saving.
type Plan struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	CreatedAt      string      `json:"created_at"`
	Category       Category    `json:"category"`
	Section        Section     `json:"section"`
	EffectiveWidth float64     `json:"effective_width"`
	Placements     []Placement `json:"placements"`
	DoorWidth      float64     `json:"door_width"`
	Leftover       float64     `json:"leftover"`
	IsOptimal      bool        `json:"is_optimal"`
	Suggestions    []string    `json:"suggestions,omitempty"`
}

// NewPlan creates an empty plan with a fresh ID.
func NewPlan(name string, category Category, section Section, effectiveWidth float64) Plan {
	return Plan{
		ID:             newID(),
		Name:           name,
		CreatedAt:      time.Now().UTC().Format(time.RFC3339),
		Category:       category,
		Section:        section,
		EffectiveWidth: effectiveWidth,
		Placements:     []Placement{},
	}
}

// StoragePlacements returns only the distributed modules of the plan.
func (p Plan) StoragePlacements() []Placement {
	var out []Placement
	for _, pl := range p.Placements {
		if pl.Kind == PlacementStorage {
			out = append(out, pl)
		}
	}
	return out
}

// DoorTotal returns the number of doors across all placements.
func (p Plan) DoorTotal() int {
	total := 0
	for _, pl := range p.Placements {
		total += pl.Doors
	}
	return total
}

// Project ties plans together for save/load.
type Project struct {
	Name     string       `json:"name"`
	Config   LayoutConfig `json:"config"`
	Finishes Finishes     `json:"finishes"`
	Width    float64      `json:"total_width"`
	Plans    []Plan       `json:"plans"`
}

func NewProject() Project {
	return Project{
		Name:     "Untitled",
		Config:   DefaultLayoutConfig(),
		Finishes: DefaultFinishes(),
		Plans:    []Plan{},
	}
}
