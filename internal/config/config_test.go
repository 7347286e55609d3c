package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	def := Default()
	if c.DatabasePath != def.DatabasePath {
		t.Fatalf("database_path = %q, want %q", c.DatabasePath, def.DatabasePath)
	}
	if c.StepTimeoutSec != 300 || c.FigureDPI != 300 {
		t.Fatalf("unexpected defaults: %+v", c)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wvdb.yaml")
	c := Default()
	c.DatabasePath = "other/db.sqlite"
	c.FigureDPI = 150
	if err := Save(c, path); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.DatabasePath != "other/db.sqlite" {
		t.Fatalf("database_path = %q", got.DatabasePath)
	}
	if got.FigureDPI != 150 {
		t.Fatalf("figure_dpi = %d, want 150", got.FigureDPI)
	}
	// Keys absent from the file fall back to defaults.
	if got.TablesDir != "tables" {
		t.Fatalf("tables_dir = %q, want tables", got.TablesDir)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("WVDB_FIGURE_DPI", "72")
	c, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.FigureDPI != 72 {
		t.Fatalf("figure_dpi = %d, want env override 72", c.FigureDPI)
	}
}

func TestYAMLRendering(t *testing.T) {
	out, err := YAML(Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, key := range []string{"database_path", "tables_dir", "figures_dir", "step_timeout_sec", "figure_dpi"} {
		if !strings.Contains(out, key) {
			t.Fatalf("yaml output missing %q:\n%s", key, out)
		}
	}
}

func TestSaveUnwritablePath(t *testing.T) {
	err := Save(Default(), filepath.Join(t.TempDir(), "no", "such", "dir", "wvdb.yaml"))
	if err == nil {
		t.Fatal("expected error for unwritable path")
	}
	if !strings.Contains(err.Error(), "write config") {
		t.Fatalf("unexpected error: %v", err)
	}
}
