package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"FreehandBoard/internal/surface"
)

// AppConfig is the user-editable configuration, stored as YAML in the user
// config directory. Environment variables override file values at runtime
// and are never written back.
type AppConfig struct {
	ConfigVersion int           `yaml:"config_version"`
	Canvas        CanvasConfig  `yaml:"canvas"`
	Stroke        StrokeConfig  `yaml:"stroke"`
	Logging       LoggingConfig `yaml:"logging"`
	Debug         DebugConfig   `yaml:"debug"`
}

type CanvasConfig struct {
	Width      float32 `yaml:"width"`
	Height     float32 `yaml:"height"`
	Background string  `yaml:"background"`
}

type StrokeConfig struct {
	MinWidth     int      `yaml:"min_width"`
	MaxWidth     int      `yaml:"max_width"`
	InitialWidth int      `yaml:"initial_width"`
	InitialColor string   `yaml:"initial_color"`
	Palette      []string `yaml:"palette"`
	// AnchorAtDown starts each stroke at the pointer-down position instead of
	// the first move sample.
	AnchorAtDown bool `yaml:"anchor_at_down"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

type DebugConfig struct {
	LogSegments bool `yaml:"log_segments"`
}

// Env var names used as overrides.
const (
	EnvConfigFile   = "FBOARD_CONFIG"
	EnvInitialWidth = "FBOARD_STROKE_WIDTH"
	EnvInitialColor = "FBOARD_STROKE_COLOR"
	EnvAnchorAtDown = "FBOARD_ANCHOR_AT_DOWN"
	EnvLogSegments  = "FBOARD_LOG_SEGMENTS"
	EnvLogLevel     = "FBOARD_LOG_LEVEL"
	EnvLogFormat    = "FBOARD_LOG_FORMAT"
	EnvLogSource    = "FBOARD_LOG_SOURCE"
	EnvLogFile      = "FBOARD_LOG_FILE"
)

var ErrInvalid = errors.New("invalid config")

// Defaults returns the built-in configuration. The width range and the
// initial values mirror an HTML range input 1..4 and a color input.
func Defaults() AppConfig {
	return AppConfig{
		ConfigVersion: 1,
		Canvas:        CanvasConfig{Width: 1024, Height: 768, Background: "#ffffff"},
		Stroke: StrokeConfig{
			MinWidth:     1,
			MaxWidth:     4,
			InitialWidth: 3,
			InitialColor: "#000000",
			Palette:      []string{"#000000", "#ff0000", "#00ff00", "#0000ff", "#ffff00"},
		},
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

// DefaultPath returns the per-user config file path.
func DefaultPath() (string, error) {
	if p := strings.TrimSpace(os.Getenv(EnvConfigFile)); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "freehandboard", "config.yaml"), nil
}

// Load reads path (DefaultPath when empty) over the defaults and applies env
// overrides. A missing file is not an error. On a read or parse error the
// returned config is still usable: defaults plus env overrides.
func Load(path string) (AppConfig, error) {
	cfg := Defaults()
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			applyEnvOverrides(&cfg)
			return cfg, err
		}
		path = p
	}

	var loadErr error
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		loadErr = fmt.Errorf("read config %s: %w", path, err)
	default:
		fileCfg := Defaults()
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			loadErr = fmt.Errorf("parse config %s: %w", path, err)
		} else {
			cfg = fileCfg
		}
	}

	applyEnvOverrides(&cfg)
	if err := cfg.Validate(); err != nil {
		fixed := Defaults()
		fixed.Logging = cfg.Logging
		fixed.Debug = cfg.Debug
		return fixed, errors.Join(loadErr, err)
	}
	return cfg, loadErr
}

// Save writes cfg as YAML to path, creating its directory.
func Save(path string, cfg AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks the stroke and canvas settings for consistency.
func (c AppConfig) Validate() error {
	s := c.Stroke
	if s.MinWidth < 1 {
		return fmt.Errorf("%w: stroke.min_width must be >= 1, got %d", ErrInvalid, s.MinWidth)
	}
	if s.MaxWidth < s.MinWidth {
		return fmt.Errorf("%w: stroke.max_width %d below min_width %d", ErrInvalid, s.MaxWidth, s.MinWidth)
	}
	if s.MaxWidth > surface.MaxLineWidth {
		return fmt.Errorf("%w: stroke.max_width %d above %d", ErrInvalid, s.MaxWidth, surface.MaxLineWidth)
	}
	if s.InitialWidth < s.MinWidth || s.InitialWidth > s.MaxWidth {
		return fmt.Errorf("%w: stroke.initial_width %d outside [%d, %d]", ErrInvalid, s.InitialWidth, s.MinWidth, s.MaxWidth)
	}
	if strings.TrimSpace(s.InitialColor) == "" {
		return fmt.Errorf("%w: stroke.initial_color is empty", ErrInvalid)
	}
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("%w: canvas size %vx%v", ErrInvalid, c.Canvas.Width, c.Canvas.Height)
	}
	return nil
}

// InitialWidthString is the width cell's starting value.
func (s StrokeConfig) InitialWidthString() string { return strconv.Itoa(s.InitialWidth) }

func applyEnvOverrides(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv(EnvInitialWidth)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Stroke.InitialWidth = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvInitialColor)); v != "" {
		cfg.Stroke.InitialColor = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvAnchorAtDown)); v != "" {
		cfg.Stroke.AnchorAtDown = truthy(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogSegments)); v != "" {
		cfg.Debug.LogSegments = truthy(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogSource)); v != "" {
		cfg.Logging.Source = truthy(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
}

func truthy(v string) bool {
	switch strings.ToLower(v) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}
