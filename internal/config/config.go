// Package config loads resume2pdf settings from YAML or TOML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-resume2pdf/internal/codec"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// DefaultName is the config name looked up when --config is not given.
const DefaultName = "resume2pdf"

// appDir is the per-user config subdirectory.
const appDir = "resume2pdf"

// Field length limits.
const (
	MaxPathLength        = 4096 // PATH_MAX on Linux
	MaxSuffixLength      = 64
	MaxNameLength        = 32 // strategy, engine, tool, style names
	MaxPageSizeLength    = 10 // "letter", "a4", "legal"
	MaxOrientationLength = 10 // "portrait", "landscape"
	MaxDurationLength    = 20 // "30s", "1m30s"
)

// Config holds every setting the CLI can take from a file.
type Config struct {
	Source   string        `yaml:"source" toml:"source"`
	Output   string        `yaml:"output" toml:"output"`
	Suffix   *string       `yaml:"suffix" toml:"suffix"` // nil = default; "" keeps the base name
	Strategy string        `yaml:"strategy" toml:"strategy"`
	Engine   string        `yaml:"engine" toml:"engine"`
	Tool     ToolConfig    `yaml:"tool" toml:"tool"`
	Page     PageConfig    `yaml:"page" toml:"page"`
	Style    StyleConfig   `yaml:"style" toml:"style"`
	Open     OpenConfig    `yaml:"open" toml:"open"`
	Browser  BrowserConfig `yaml:"browser" toml:"browser"`
	Timeout  string        `yaml:"timeout" toml:"timeout"` // Go duration, e.g. "30s"
	JSDelay  string        `yaml:"jsDelay" toml:"jsDelay"` // Go duration, e.g. "1s"
}

// ToolConfig selects the external converter.
type ToolConfig struct {
	Name string `yaml:"name" toml:"name"` // "wkhtmltopdf" or "weasyprint"
	Path string `yaml:"path" toml:"path"` // empty = look up on PATH
}

// PageConfig defines PDF page settings.
type PageConfig struct {
	Size        string  `yaml:"size" toml:"size"`               // "a4", "letter", "legal" (default: "a4")
	Orientation string  `yaml:"orientation" toml:"orientation"` // "portrait", "landscape"
	Margin      float64 `yaml:"margin" toml:"margin"`           // centimeters (default: 0.5)
}

// StyleConfig selects the injected print stylesheet.
type StyleConfig struct {
	Name     string `yaml:"name" toml:"name"`         // embedded style or .css path (default: "resume")
	Disabled bool   `yaml:"disabled" toml:"disabled"` // inject nothing
}

// OpenConfig controls the post-conversion open step.
type OpenConfig struct {
	Disabled bool `yaml:"disabled" toml:"disabled"`
}

// BrowserConfig configures headless Chrome.
type BrowserConfig struct {
	Bin       string `yaml:"bin" toml:"bin"`
	NoSandbox bool   `yaml:"noSandbox" toml:"noSandbox"`
}

// Validate checks field lengths and value ranges.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"source", c.Source, MaxPathLength},
		{"output", c.Output, MaxPathLength},
		{"strategy", c.Strategy, MaxNameLength},
		{"engine", c.Engine, MaxNameLength},
		{"tool.name", c.Tool.Name, MaxNameLength},
		{"tool.path", c.Tool.Path, MaxPathLength},
		{"page.size", c.Page.Size, MaxPageSizeLength},
		{"page.orientation", c.Page.Orientation, MaxOrientationLength},
		{"style.name", c.Style.Name, MaxPathLength},
		{"browser.bin", c.Browser.Bin, MaxPathLength},
		{"timeout", c.Timeout, MaxDurationLength},
		{"jsDelay", c.JSDelay, MaxDurationLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if c.Suffix != nil {
		if err := validateFieldLength("suffix", *c.Suffix, MaxSuffixLength); err != nil {
			return err
		}
		if strings.ContainsAny(*c.Suffix, `/\`) {
			return fmt.Errorf("%w: suffix: must not contain path separators", ErrInvalidValue)
		}
	}

	if c.Page.Margin < 0 {
		return fmt.Errorf("%w: page.margin: must not be negative, got %.2f", ErrInvalidValue, c.Page.Margin)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns an empty configuration; zero values mean "use the
// built-in default".
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath looks like a path (separator or known extension), it is read
// directly. Otherwise it is searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !isFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	return loadFile(configPath)
}

// LoadDefault loads the DefaultName config when one exists. A missing file
// yields DefaultConfig and an empty path.
func LoadDefault() (*Config, string, error) {
	path, err := resolveConfigPath(DefaultName)
	if err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			return DefaultConfig(), "", nil
		}
		return nil, "", err
	}
	cfg, err := loadFile(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

func loadFile(path string) (*Config, error) {
	format, err := codec.FormatFor(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := codec.UnmarshalStrict(format, data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	if strings.ContainsAny(s, `/\`) {
		return true
	}
	_, err := codec.FormatFor(s)
	return err == nil
}

var extensions = []string{".yaml", ".yml", ".toml"}

// SearchPaths lists the candidate files for a config name, in lookup order:
// current directory, then the user config directory.
func SearchPaths(name string) []string {
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(dir, appDir, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing candidate from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
