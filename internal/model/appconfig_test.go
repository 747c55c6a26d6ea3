package model

import "testing"

func TestDefaultAppConfigMatchesDefaultGrid(t *testing.T) {
	cfg := DefaultAppConfig()
	defaults := DefaultGridConfig()

	if cfg.Rows != defaults.Rows || cfg.Cols != defaults.Cols {
		t.Errorf("size mismatch: config=%dx%d grid=%dx%d", cfg.Rows, cfg.Cols, defaults.Rows, defaults.Cols)
	}
	if cfg.CellSize != defaults.CellSize {
		t.Errorf("CellSize mismatch: config=%f grid=%f", cfg.CellSize, defaults.CellSize)
	}
	if cfg.GutterSize != defaults.GutterSize {
		t.Errorf("GutterSize mismatch: config=%f grid=%f", cfg.GutterSize, defaults.GutterSize)
	}
	if cfg.Theme != "system" {
		t.Errorf("expected default theme=system, got %s", cfg.Theme)
	}
}

func TestAppConfigGridConfigRoundTrip(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.Rows = 8
	cfg.Cols = 12
	cfg.CellSize = 30
	cfg.Padding = 4

	g := cfg.GridConfig()
	if g.Rows != 8 || g.Cols != 12 {
		t.Errorf("expected 8x12, got %dx%d", g.Rows, g.Cols)
	}
	if g.CellSize != 30 {
		t.Errorf("expected CellSize=30, got %f", g.CellSize)
	}
	if g.Padding != 4 {
		t.Errorf("expected Padding=4, got %f", g.Padding)
	}
	if err := g.Validate(); err != nil {
		t.Errorf("expected valid grid, got %v", err)
	}
}
