package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Defaults applied to new projects
	DefaultLayout     LayoutConfig `json:"default_layout"`
	DefaultFinishes   Finishes     `json:"default_finishes"`
	DefaultCategory   Category     `json:"default_category"`
	DefaultUpperH     float64      `json:"default_upper_height"`
	DefaultLowerH     float64      `json:"default_lower_height"`
	DefaultMoldingH   float64      `json:"default_molding_height"`
	DefaultLegH       float64      `json:"default_leg_height"`
	PreferredBrand    string       `json:"preferred_brand"`
	RecentProjects    []string     `json:"recent_projects"`
	ExportDirectory   string       `json:"export_directory"`
	IncludeQRInLabels bool         `json:"include_qr_in_labels"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching DefaultLayoutConfig and DefaultFinishes.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		DefaultLayout:     DefaultLayoutConfig(),
		DefaultFinishes:   DefaultFinishes(),
		DefaultCategory:   CategorySink,
		DefaultUpperH:     720,
		DefaultLowerH:     870,
		DefaultMoldingH:   60,
		DefaultLegH:       150,
		RecentProjects:    []string{},
		IncludeQRInLabels: true,
	}
}

// ApplyToProject copies the default values from AppConfig into a Project.
// This is used when creating a new project so it inherits the user's saved defaults.
func (c AppConfig) ApplyToProject(p *Project) {
	p.Config = c.DefaultLayout
	if p.Config.Categories == nil {
		p.Config.Categories = DefaultCategoryRules()
	}
	p.Finishes = c.DefaultFinishes
}

// AddRecentProject moves path to the front of the recent list, keeping at most max entries.
func (c *AppConfig) AddRecentProject(path string, max int) {
	recent := []string{path}
	for _, p := range c.RecentProjects {
		if p != path {
			recent = append(recent, p)
		}
	}
	if max > 0 && len(recent) > max {
		recent = recent[:max]
	}
	c.RecentProjects = recent
}
