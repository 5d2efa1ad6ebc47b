package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_FillsDefaults(t *testing.T) {
	path := writeTemp(t, `
site:
  name: Palomar
  latitude: 33.356
  longitude: -116.865
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Site.Name != "Palomar" {
		t.Errorf("site name = %q", cfg.Site.Name)
	}
	if cfg.View.FOVDeg != 60 {
		t.Errorf("default fov = %v, want 60", cfg.View.FOVDeg)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("default log level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoad_FullFile(t *testing.T) {
	path := writeTemp(t, `
site:
  name: Siding Spring
  latitude: -31.2754
  longitude: 149.0672
catalog:
  path: /data/bsc5.csv
  max_stars: 500
  limit_mag: 5.0
view:
  fov_deg: 45
logging:
  level: debug
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Catalog.Path != "/data/bsc5.csv" || cfg.Catalog.MaxStars != 500 {
		t.Errorf("catalog = %+v", cfg.Catalog)
	}
	if cfg.View.FOVDeg != 45 {
		t.Errorf("fov = %v, want 45", cfg.View.FOVDeg)
	}
	if cfg.Site.Latitude >= 0 {
		t.Errorf("latitude = %v, want southern", cfg.Site.Latitude)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"latitude", "site:\n  latitude: 95\n"},
		{"longitude", "site:\n  longitude: 300\n"},
		{"fov", "view:\n  fov_deg: 200\n"},
		{"max stars", "catalog:\n  max_stars: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeTemp(t, tt.yaml)); err == nil {
				t.Errorf("expected validation error for %s", tt.name)
			}
		})
	}
}

func TestDefault_Valid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}
