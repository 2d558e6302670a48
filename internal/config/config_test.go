package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	want := Defaults()
	if cfg.Stroke.MinWidth != want.Stroke.MinWidth || cfg.Stroke.MaxWidth != want.Stroke.MaxWidth {
		t.Fatalf("width range = [%d,%d], want [%d,%d]", cfg.Stroke.MinWidth, cfg.Stroke.MaxWidth, want.Stroke.MinWidth, want.Stroke.MaxWidth)
	}
	if cfg.Stroke.InitialColor != "#000000" {
		t.Fatalf("InitialColor = %q", cfg.Stroke.InitialColor)
	}
	if cfg.Stroke.AnchorAtDown {
		t.Fatalf("AnchorAtDown should default to false")
	}
}

func TestLoadFileKeepsUnsetDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("stroke:\n  initial_width: 2\n  initial_color: \"#ff0000\"\n  anchor_at_down: true\ndebug:\n  log_segments: true\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Stroke.InitialWidth != 2 || cfg.Stroke.InitialColor != "#ff0000" || !cfg.Stroke.AnchorAtDown {
		t.Fatalf("stroke not loaded: %#v", cfg.Stroke)
	}
	if !cfg.Debug.LogSegments {
		t.Fatalf("debug.log_segments not loaded")
	}
	if cfg.Stroke.MaxWidth != 4 || len(cfg.Stroke.Palette) == 0 {
		t.Fatalf("defaults lost on merge: %#v", cfg.Stroke)
	}
	if cfg.Canvas.Width != 1024 {
		t.Fatalf("canvas default lost: %#v", cfg.Canvas)
	}
}

func TestLoadBadYAMLFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("stroke: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if cfg.Stroke.InitialWidth != Defaults().Stroke.InitialWidth {
		t.Fatalf("expected defaults after parse error, got %#v", cfg.Stroke)
	}
}

func TestLoadInvalidRangeRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("stroke:\n  initial_width: 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	if cfg.Stroke.InitialWidth != 3 {
		t.Fatalf("expected default initial width, got %d", cfg.Stroke.InitialWidth)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvInitialWidth, "1")
	t.Setenv(EnvInitialColor, "red")
	t.Setenv(EnvAnchorAtDown, "yes")
	t.Setenv(EnvLogLevel, "DEBUG")
	t.Setenv(EnvLogFile, "/tmp/fboard.log")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Stroke.InitialWidth != 1 || cfg.Stroke.InitialColor != "red" || !cfg.Stroke.AnchorAtDown {
		t.Fatalf("stroke env overrides not applied: %#v", cfg.Stroke)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.File != "/tmp/fboard.log" {
		t.Fatalf("logging env overrides not applied: %#v", cfg.Logging)
	}
}

func TestDefaultPathHonoursEnv(t *testing.T) {
	t.Setenv(EnvConfigFile, "/etc/fboard.yaml")
	p, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if p != "/etc/fboard.yaml" {
		t.Fatalf("DefaultPath() = %q", p)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	cfg := Defaults()
	cfg.Stroke.InitialWidth = 4
	cfg.Stroke.Palette = []string{"#123456"}
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got.Stroke.InitialWidth != 4 || len(got.Stroke.Palette) != 1 || got.Stroke.Palette[0] != "#123456" {
		t.Fatalf("round trip mismatch: %#v", got.Stroke)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AppConfig)
		ok     bool
	}{
		{"defaults", func(*AppConfig) {}, true},
		{"zero min", func(c *AppConfig) { c.Stroke.MinWidth = 0 }, false},
		{"max below min", func(c *AppConfig) { c.Stroke.MaxWidth = 0 }, false},
		{"initial above max", func(c *AppConfig) { c.Stroke.InitialWidth = 5 }, false},
		{"max at limit", func(c *AppConfig) { c.Stroke.MaxWidth = 256 }, true},
		{"huge max", func(c *AppConfig) { c.Stroke.MaxWidth = 1 << 30 }, false},
		{"empty color", func(c *AppConfig) { c.Stroke.InitialColor = " " }, false},
		{"zero canvas", func(c *AppConfig) { c.Canvas.Height = 0 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
		})
	}
}
