// Package catalog is the read-only refrigerator catalog and the
// refrigerator-cabinet rules built on top of it.
package catalog

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/piwi3910/CabinetFit/internal/engine"
	"github.com/piwi3910/CabinetFit/internal/model"
)

var (
	// ErrNotFound is returned when a model ID is not in the catalog.
	ErrNotFound = errors.New("catalog: model not found")
	// ErrTooTall is returned when a model leaves no room above it.
	ErrTooTall = errors.New("catalog: model too tall for the space")
)

// Rules holds the refrigerator-cabinet construction constants (mm).
type Rules struct {
	MaxUpperHeight  float64 `json:"max_upper_height"` // Upper cabinet above the appliance
	PedestalHeight  float64 `json:"pedestal_height"`
	ModuleDepth     float64 `json:"module_depth"`
	InstallDepth    float64 `json:"install_depth"` // Depth the appliance needs
	TopGap          float64 `json:"top_gap"`       // Clearance above the appliance
	MoldingHeight   float64 `json:"molding_height"`
	TallWidth       float64 `json:"tall_width"` // Default tall cabinet width
	FinishAllowance float64 `json:"finish_allowance"`
	HeightClearance float64 `json:"height_clearance"` // Minimum room above an appliance
	TallMinLeftover float64 `json:"tall_min_leftover"`
	MiddleRatio     float64 `json:"middle_ratio"` // Share of the body height given to the middle section
	MaxLeftover     float64 `json:"max_leftover"` // Largest leftover a valid layout may have
}

// DefaultRules returns the standard refrigerator-cabinet constants.
func DefaultRules() Rules {
	return Rules{
		MaxUpperHeight:  400,
		PedestalHeight:  60,
		ModuleDepth:     550,
		InstallDepth:    700,
		TopGap:          15,
		MoldingHeight:   50,
		TallWidth:       600,
		FinishAllowance: 120,
		HeightClearance: 100,
		TallMinLeftover: 500,
		MiddleRatio:     0.55,
		MaxLeftover:     50,
	}
}

// Catalog is a read-only appliance lookup table. It is safe for concurrent use.
type Catalog struct {
	Rules  Rules
	brands []brand
}

// New returns the built-in catalog with default rules.
func New() *Catalog {
	return &Catalog{Rules: DefaultRules(), brands: builtinBrands}
}

func (c *Catalog) brand(key string) (brand, bool) {
	for _, b := range c.brands {
		if strings.EqualFold(b.Key, key) {
			return b, true
		}
	}
	return brand{}, false
}

// selected returns the named brand, or every brand when key is empty.
func (c *Catalog) selected(key string) []brand {
	if key == "" {
		return c.brands
	}
	if b, ok := c.brand(key); ok {
		return []brand{b}
	}
	return nil
}

func withOrigin(e model.CatalogEntry, b brand, g group) model.CatalogEntry {
	e.Brand = b.Key
	e.Category = g.Name
	e.Units = append([]model.Unit(nil), e.Units...)
	return e
}

// Brands returns the brand keys in catalog order.
func (c *Catalog) Brands() []string {
	keys := make([]string, 0, len(c.brands))
	for _, b := range c.brands {
		keys = append(keys, b.Key)
	}
	return keys
}

// Categories returns the product families of a brand.
func (c *Catalog) Categories(brandKey string) []string {
	b, ok := c.brand(brandKey)
	if !ok {
		return nil
	}
	names := make([]string, 0, len(b.Groups))
	for _, g := range b.Groups {
		names = append(names, g.Name)
	}
	return names
}

// Models returns the entries of a brand, limited to one family when category is set.
func (c *Catalog) Models(brandKey, category string) []model.CatalogEntry {
	b, ok := c.brand(brandKey)
	if !ok {
		return nil
	}
	var out []model.CatalogEntry
	for _, g := range b.Groups {
		if category != "" && g.Name != category {
			continue
		}
		for _, e := range g.Entries {
			out = append(out, withOrigin(e, b, g))
		}
	}
	return out
}

// ByID looks a model up across all brands.
func (c *Catalog) ByID(id string) (model.CatalogEntry, error) {
	for _, b := range c.brands {
		for _, g := range b.Groups {
			for _, e := range g.Entries {
				if e.ID == id {
					return withOrigin(e, b, g), nil
				}
			}
		}
	}
	return model.CatalogEntry{}, fmt.Errorf("%q: %w", id, ErrNotFound)
}

// Filter narrows a catalog search. Zero fields do not filter.
type Filter struct {
	Query    string              // Case-insensitive match on name, ID or family
	Brand    string
	MinWidth float64
	MaxWidth float64
	Type     model.ApplianceType
}

func (f Filter) match(e model.CatalogEntry) bool {
	if f.MinWidth > 0 && e.Width < f.MinWidth {
		return false
	}
	if f.MaxWidth > 0 && e.Width > f.MaxWidth {
		return false
	}
	if f.Type != "" && e.Type != f.Type {
		return false
	}
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		return strings.Contains(strings.ToLower(e.Name), q) ||
			strings.Contains(strings.ToLower(e.ID), q) ||
			strings.Contains(strings.ToLower(e.Category), q)
	}
	return true
}

// Search returns every entry matching f in catalog order.
func (c *Catalog) Search(f Filter) []model.CatalogEntry {
	var out []model.CatalogEntry
	for _, b := range c.selected(f.Brand) {
		for _, g := range b.Groups {
			for _, e := range g.Entries {
				e = withOrigin(e, b, g)
				if f.match(e) {
					out = append(out, e)
				}
			}
		}
	}
	return out
}

// RecommendRequest describes the space a refrigerator has to go into.
type RecommendRequest struct {
	TotalWidth  float64
	TotalHeight float64
	Brand       string // Empty for all brands
	IncludeTall bool   // Reserve room for a tall cabinet
}

// Recommendation is a ranked entry with the cabinet figures derived from it.
type Recommendation struct {
	engine.Recommendation
	UpperHeight float64 `json:"upper_height"`
	CanAddTall  bool    `json:"can_add_tall"`
}

// upperHeight is the height left for the upper cabinet above an appliance.
func (c *Catalog) upperHeight(totalHeight, applianceHeight float64) float64 {
	return math.Min(c.Rules.MaxUpperHeight, totalHeight-applianceHeight-c.Rules.TopGap-c.Rules.MoldingHeight)
}

// Recommend ranks the entries that fit the space, best first.
func (c *Catalog) Recommend(calc *engine.Calculator, req RecommendRequest) []Recommendation {
	available := req.TotalWidth - c.Rules.FinishAllowance
	if req.IncludeTall {
		available -= c.Rules.TallWidth
	}

	var candidates []model.CatalogEntry
	for _, e := range c.Search(Filter{Brand: req.Brand}) {
		if e.Height > req.TotalHeight-c.Rules.HeightClearance {
			continue
		}
		candidates = append(candidates, e)
	}

	ranked := calc.ScoreAndRank(available, candidates)
	recs := make([]Recommendation, 0, len(ranked))
	for _, r := range ranked {
		recs = append(recs, Recommendation{
			Recommendation: r,
			UpperHeight:    c.upperHeight(req.TotalHeight, r.Entry.Height),
			CanAddTall:     !req.IncludeTall && r.Leftover >= c.Rules.TallMinLeftover,
		})
	}
	return recs
}
