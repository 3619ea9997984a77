package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Addr != ":8080" {
		t.Errorf("Addr: got %q, want \":8080\"", cfg.Addr)
	}
	if cfg.MaxUploadMB != 16 {
		t.Errorf("MaxUploadMB: got %d, want 16", cfg.MaxUploadMB)
	}
	if cfg.GridRows != 4 || cfg.GridCols != 4 {
		t.Errorf("grid defaults: got %dx%d, want 4x4", cfg.GridRows, cfg.GridCols)
	}
	if cfg.MinArea != 500 {
		t.Errorf("MinArea: got %d, want 500", cfg.MinArea)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel: got %q, want \"info\"", cfg.LogLevel)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("IMAGELAB_ADDR", ":9999")
	t.Setenv("IMAGELAB_MIN_AREA", "750")
	t.Setenv("IMAGELAB_GRID_ROWS", "8")
	t.Setenv("IMAGELAB_LOG_LEVEL", "debug")

	cfg := Load()

	if cfg.Addr != ":9999" {
		t.Errorf("Addr: got %q, want \":9999\"", cfg.Addr)
	}
	if cfg.MinArea != 750 {
		t.Errorf("MinArea: got %d, want 750", cfg.MinArea)
	}
	if cfg.GridRows != 8 {
		t.Errorf("GridRows: got %d, want 8", cfg.GridRows)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel: got %q, want \"debug\"", cfg.LogLevel)
	}
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("IMAGELAB_MIN_AREA", "lots")

	cfg := Load()
	if cfg.MinArea != 500 {
		t.Errorf("MinArea with unparsable env: got %d, want default 500", cfg.MinArea)
	}
}
