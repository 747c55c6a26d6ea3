package model

// AppConfig holds application-wide preferences.
type AppConfig struct {
	// Grid layout applied to new sessions
	Rows       int     `json:"rows"`
	Cols       int     `json:"cols"`
	CellSize   float64 `json:"cell_size"`
	GutterSize float64 `json:"gutter_size"`
	Padding    float64 `json:"padding"`

	// Application preferences
	Theme string `json:"theme"` // "light", "dark", "system"
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching the values from DefaultGridConfig().
func DefaultAppConfig() AppConfig {
	defaults := DefaultGridConfig()
	return AppConfig{
		Rows:       defaults.Rows,
		Cols:       defaults.Cols,
		CellSize:   defaults.CellSize,
		GutterSize: defaults.GutterSize,
		Padding:    defaults.Padding,
		Theme:      "system",
	}
}

// GridConfig extracts the grid layout portion of the preferences.
func (c AppConfig) GridConfig() GridConfig {
	return GridConfig{
		Rows:       c.Rows,
		Cols:       c.Cols,
		CellSize:   c.CellSize,
		GutterSize: c.GutterSize,
		Padding:    c.Padding,
	}
}
