package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Defaults applied to new plans
	DefaultPricePerPanel   float64 `json:"default_price_per_panel"`
	DefaultPricePerPost    float64 `json:"default_price_per_post"`
	DefaultWastePercent    float64 `json:"default_waste_percent"`
	DefaultReturnThickness float64 `json:"default_return_thickness"`
	DefaultEvenSpacing     bool    `json:"default_even_spacing"`

	// Application preferences
	RecentProjects []string `json:"recent_projects"`
	Units          string   `json:"units"` // "mm" or "m" for display
}

// DefaultAppConfig returns an AppConfig matching DefaultSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	return AppConfig{
		DefaultPricePerPanel:   defaults.PricePerPanel,
		DefaultPricePerPost:    defaults.PricePerPost,
		DefaultWastePercent:    defaults.WastePercent,
		DefaultReturnThickness: defaults.ReturnThicknessMM,
		DefaultEvenSpacing:     false,
		RecentProjects:         []string{},
		Units:                  "mm",
	}
}

// ApplyToSettings copies the configured defaults into a PlanSettings.
// Used when creating a new plan so it inherits the user's saved defaults.
func (c AppConfig) ApplyToSettings(s *PlanSettings) {
	s.PricePerPanel = c.DefaultPricePerPanel
	s.PricePerPost = c.DefaultPricePerPost
	s.WastePercent = c.DefaultWastePercent
	s.ReturnThicknessMM = c.DefaultReturnThickness
}

// AddRecentProject prepends a path to the recent projects list, dropping
// duplicates and capping the list at ten entries.
func (c *AppConfig) AddRecentProject(path string) {
	recent := []string{path}
	for _, p := range c.RecentProjects {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > 10 {
		recent = recent[:10]
	}
	c.RecentProjects = recent
}
