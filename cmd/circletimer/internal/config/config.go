package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"golang.org/x/mod/semver"

	"github.com/go-drift/circletimer/pkg/circletimer"
	"github.com/go-drift/circletimer/pkg/circletimer/styles"
)

// File names searched for by Resolve, in order.
var FileNames = []string{"circletimer.yaml", "circletimer.yml", "circletimer.toml"}

// SchemaVersion is the newest config schema this build understands.
const SchemaVersion = "v1"

const (
	defaultTitle     = "circletimer"
	defaultSize      = 200
	maxSize          = 4096
	defaultFrameRate = 30
	maxFrameRate     = 240
)

// Config represents the optional circletimer.yaml or circletimer.toml file.
type Config struct {
	Version   string            `yaml:"version,omitempty" toml:"version,omitempty"`
	Title     string            `yaml:"title,omitempty" toml:"title,omitempty"`
	Size      float64           `yaml:"size,omitempty" toml:"size,omitempty"`
	FrameRate int               `yaml:"frame_rate,omitempty" toml:"frame_rate,omitempty"`
	Verbose   bool              `yaml:"verbose,omitempty" toml:"verbose,omitempty"`
	Style     circletimer.Style `yaml:"style" toml:"style"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	// Path is the file the values came from, or "" for defaults.
	Path      string
	Version   string
	Title     string
	Size      float64
	FrameRate int
	Verbose   bool
	Style     circletimer.Style
}

// LoadOptional reads the first config file found in dir. A directory
// without one yields an empty Config with the default style.
func LoadOptional(dir string) (*Config, string, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, "", fmt.Errorf("failed to stat %s: %w", name, err)
		}
		cfg, err := LoadFile(path)
		if err != nil {
			return nil, "", err
		}
		return cfg, path, nil
	}
	return &Config{Style: circletimer.DefaultStyle()}, "", nil
}

// LoadFile reads a config file, choosing YAML or TOML by extension.
// Unknown keys are rejected.
func LoadFile(path string) (*Config, error) {
	format, err := styles.FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}

	cfg := Config{Style: circletimer.DefaultStyle()}
	if err := styles.Decode(data, format, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return &cfg, nil
}

// Resolve loads the config found in dir (if any) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, path, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	return resolve(cfg, path, dir)
}

// ResolveFile is Resolve for an explicit config file.
func ResolveFile(path string) (*Resolved, error) {
	cfg, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return resolve(cfg, path, filepath.Dir(path))
}

func resolve(cfg *Config, path, dir string) (*Resolved, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		version = SchemaVersion
	}
	if err := validateVersion(version); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(cfg.Title)
	if title == "" {
		title = defaultTitleFor(dir)
	}

	size := cfg.Size
	if size == 0 {
		size = defaultSize
	}
	// Written so that NaN fails too.
	if !(size > 0) || size > maxSize {
		return nil, fmt.Errorf("size must be positive and at most %d, got %v", maxSize, size)
	}

	frameRate := cfg.FrameRate
	if frameRate == 0 {
		frameRate = defaultFrameRate
	}
	if frameRate < 0 || frameRate > maxFrameRate {
		return nil, fmt.Errorf("frame_rate must be between 1 and %d, got %d", maxFrameRate, frameRate)
	}

	return &Resolved{
		Path:      path,
		Version:   version,
		Title:     title,
		Size:      size,
		FrameRate: frameRate,
		Verbose:   cfg.Verbose,
		Style:     cfg.Style,
	}, nil
}

// validateVersion accepts any semantic version whose major version is not
// newer than SchemaVersion.
func validateVersion(version string) error {
	if !semver.IsValid(version) {
		return fmt.Errorf("invalid config version %q (expected a semantic version such as %s)", version, SchemaVersion)
	}
	if semver.Compare(semver.Major(version), SchemaVersion) > 0 {
		return fmt.Errorf("config version %s is newer than supported %s", version, SchemaVersion)
	}
	return nil
}

// defaultTitleFor names the timer after the Go module in dir, falling
// back to the directory name.
func defaultTitleFor(dir string) string {
	if data, err := os.ReadFile(filepath.Join(dir, "go.mod")); err == nil {
		if path := modfile.ModulePath(data); path != "" {
			prefix, _, ok := module.SplitPathVersion(path)
			if ok {
				path = prefix
			}
			parts := strings.Split(path, "/")
			if base := parts[len(parts)-1]; base != "" {
				return base
			}
		}
	}
	if base := filepath.Base(dir); base != "." && base != string(filepath.Separator) && base != "" {
		return base
	}
	return defaultTitle
}
