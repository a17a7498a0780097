// Package config resolves the optional ember.yaml demo configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// Config represents the optional ember.yaml configuration.
type Config struct {
	App    AppConfig    `yaml:"app"`
	Window WindowConfig `yaml:"window"`
	Demo   DemoConfig   `yaml:"demo"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
}

// WindowConfig contains the demo window geometry.
type WindowConfig struct {
	Width  int `yaml:"width,omitempty"`
	Height int `yaml:"height,omitempty"`
}

// DemoConfig contains progress bar demo settings.
type DemoConfig struct {
	// DelayMillis is the auto-increment period.
	DelayMillis int `yaml:"delay_ms,omitempty"`
	// Theme is a theme file path, relative to the project root.
	Theme string `yaml:"theme,omitempty"`
	// FillImage is an optional image tiled into the active region.
	FillImage string `yaml:"fill_image,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root      string
	AppName   string
	Width     int
	Height    int
	Delay     time.Duration
	Theme     string
	FillImage string
}

// LoadOptional reads ember.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "ember.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read ember.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse ember.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve loads ember.yaml (if present) and resolves defaults. The app name
// falls back to the final element of the module path.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(dir)
	}

	width := cfg.Window.Width
	if width <= 0 {
		width = 320
	}
	height := cfg.Window.Height
	if height <= 0 {
		height = 80
	}

	delay := time.Duration(cfg.Demo.DelayMillis) * time.Millisecond
	if delay <= 0 {
		delay = 100 * time.Millisecond
	}

	resolved := &Resolved{
		Root:    dir,
		AppName: appName,
		Width:   width,
		Height:  height,
		Delay:   delay,
	}
	if cfg.Demo.Theme != "" {
		resolved.Theme = filepath.Join(dir, cfg.Demo.Theme)
	}
	if cfg.Demo.FillImage != "" {
		resolved.FillImage = filepath.Join(dir, cfg.Demo.FillImage)
	}
	return resolved, nil
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

// defaultAppName derives a window title from the module path in go.mod,
// falling back to the directory name.
func defaultAppName(dir string) string {
	base := filepath.Base(dir)
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return base
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return base
	}
	modName, _, ok := module.SplitPathVersion(path)
	if ok {
		parts := strings.Split(modName, "/")
		if len(parts) > 0 && parts[len(parts)-1] != "" {
			return parts[len(parts)-1]
		}
	}
	return base
}
