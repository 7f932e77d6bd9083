// Package config loads the sheet demo configuration from TOML files.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/sheet/internal/easing"
	"github.com/llehouerou/sheet/internal/sheet"
	"github.com/llehouerou/sheet/internal/snap"
)

const (
	appName        = "sheet"
	configFileName = "config.toml"
)

type Config struct {
	Sheet SheetConfig `koanf:"sheet"`
	Demo  DemoConfig  `koanf:"demo"`
}

// SheetConfig mirrors sheet.Options in configuration file form.
type SheetConfig struct {
	SnapPoints          []SnapPointConfig `koanf:"snap_points"`
	InitialSnapIndex    int               `koanf:"initial_snap_index"`
	TopInset            float64           `koanf:"top_inset"`
	AnimationDurationMs int               `koanf:"animation_duration_ms"`
	AnimationEasing     string            `koanf:"animation_easing"` // see easing.Names()
	OnlyDistinctSnaps   bool              `koanf:"only_distinct_snaps"`
	HandleHeight        float64           `koanf:"handle_height"`
	FrameRate           int               `koanf:"frame_rate"`
	Projection          float64           `koanf:"projection"` // seconds of release velocity look-ahead
}

// SnapPointConfig is one [[sheet.snap_points]] entry.
type SnapPointConfig struct {
	RelativeTo string  `koanf:"relative_to"` // "window" or "content"
	Percentage float64 `koanf:"percentage"`
}

// DemoConfig holds settings of the demo application around the sheet.
type DemoConfig struct {
	Rows     int    `koanf:"rows"`      // number of list rows in the sheet
	LogLevel string `koanf:"log_level"` // "debug", "info", "warn" or "error"
	LogFile  string `koanf:"log_file"`  // empty means the XDG state directory
}

// Default returns the configuration used when no file sets a value.
func Default() *Config {
	return &Config{
		Sheet: SheetConfig{
			InitialSnapIndex:    1,
			TopInset:            1,
			AnimationDurationMs: int(sheet.DefaultDuration / time.Millisecond),
			AnimationEasing:     "ease-out-back",
			OnlyDistinctSnaps:   true,
			HandleHeight:        1,
			FrameRate:           sheet.DefaultFrameRate,
			Projection:          0.2,
		},
		Demo: DemoConfig{
			Rows:     50,
			LogLevel: "info",
		},
	}
}

// DefaultSnapPoints is used when the configuration has no snap_points key.
// An explicitly empty list is kept and rejected by Options.
func DefaultSnapPoints() []SnapPointConfig {
	return []SnapPointConfig{
		{RelativeTo: "window", Percentage: 25},
		{RelativeTo: "window", Percentage: 50},
		{RelativeTo: "content", Percentage: 100},
	}
}

// defaultReference is the relative_to of a snap point that omits it.
const defaultReference = "window"

func Load() (*Config, error) {
	return load(getConfigPaths())
}

func load(paths []string) (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	// Slices are not merged with defaults, so apply them afterwards.
	if !k.Exists("sheet.snap_points") {
		cfg.Sheet.SnapPoints = DefaultSnapPoints()
	}
	// An omitted relative_to means the window; an empty one is an error.
	for i, sub := range k.Slices("sheet.snap_points") {
		if i < len(cfg.Sheet.SnapPoints) && !sub.Exists("relative_to") {
			cfg.Sheet.SnapPoints[i].RelativeTo = defaultReference
		}
	}

	if cfg.Demo.LogFile != "" {
		cfg.Demo.LogFile = expandPath(cfg.Demo.LogFile)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/sheet/config.toml
		filepath.Join(xdg.ConfigHome, appName, configFileName),
		// 2. ./config.toml (pwd, highest priority)
		configFileName,
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// Options converts the sheet section into validated sheet options.
func (c SheetConfig) Options(logger *slog.Logger) (sheet.Options, error) {
	points := make([]snap.Point, len(c.SnapPoints))
	for i, p := range c.SnapPoints {
		ref, err := snap.ParseReference(p.RelativeTo)
		if err != nil {
			return sheet.Options{}, fmt.Errorf("snap point %d: %w", i, err)
		}
		points[i] = snap.Point{RelativeTo: ref, Percentage: p.Percentage}
	}

	ease, err := easing.ByName(c.AnimationEasing)
	if err != nil {
		return sheet.Options{}, err
	}

	opts := sheet.Options{
		SnapPoints:       points,
		InitialSnapIndex: c.InitialSnapIndex,
		TopInset:         c.TopInset,
		HandleHeight:     c.HandleHeight,
		Duration:         time.Duration(c.AnimationDurationMs) * time.Millisecond,
		Easing:           ease,
		OnlyDistinct:     c.OnlyDistinctSnaps,
		Projection:       c.Projection,
		Logger:           logger,
	}
	if c.FrameRate > 0 {
		opts.FrameInterval = time.Second / time.Duration(c.FrameRate)
	}
	if err := opts.Validate(); err != nil {
		return sheet.Options{}, err
	}
	return opts, nil
}
