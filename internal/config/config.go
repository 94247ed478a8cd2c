package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alecthomas/chroma/v2/styles"

	"github.com/alnah/go-mdsite/internal/fileutil"
	"github.com/alnah/go-mdsite/internal/layout"
	"github.com/alnah/go-mdsite/internal/pipeline"
	"github.com/alnah/go-mdsite/internal/scan"
	"github.com/alnah/go-mdsite/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// appName is the directory below the user config dir searched for configs.
const appName = "go-mdsite"

// Field length limits.
const (
	MaxPathLength       = 4096 // PATH_MAX on Linux
	MaxLayoutNameLength = 255  // Single path component on most filesystems
	MaxTitleLength      = 200  // Fallback page title
	MaxExtensionLength  = 16   // ".markdown" with headroom
	MaxStyleLength      = 50   // chroma style name
	MaxWorkers          = 64   // Upper bound for the worker pool
)

// Built-in defaults, matching the conventional site layout.
const (
	DefaultSource     = "src"
	DefaultOutput     = "public"
	DefaultLayouts    = layout.DefaultDir
	DefaultLayoutName = pipeline.DefaultLayout
	DefaultTitle      = pipeline.DefaultTitle
)

// Config holds all configuration for a site build.
type Config struct {
	Source         string   `yaml:"source"`         // Source root scanned for documents
	Output         string   `yaml:"output"`         // Output root receiving <addr>/index.html
	Layouts        string   `yaml:"layouts"`        // Layouts directory (missing = embedded only)
	DefaultLayout  string   `yaml:"defaultLayout"`  // Layout used when a page names none
	DefaultTitle   string   `yaml:"defaultTitle"`   // Title used when a page names none
	Extensions     []string `yaml:"extensions"`     // Source file extensions, with leading dot
	Workers        int      `yaml:"workers"`        // 0 = auto
	KeepGoing      bool     `yaml:"keepGoing"`      // Attempt every page after a failure
	EscapeSlots    bool     `yaml:"escapeSlots"`    // Escape the title slot with html/template
	HighlightStyle string   `yaml:"highlightStyle"` // chroma style (empty = CSS classes)
	RewriteLinks   bool     `yaml:"rewriteLinks"`   // Point links to .md sources at page addresses
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Source:        DefaultSource,
		Output:        DefaultOutput,
		Layouts:       DefaultLayouts,
		DefaultLayout: DefaultLayoutName,
		DefaultTitle:  DefaultTitle,
		Extensions:    slices.Clone(scan.DefaultExtensions),
	}
}

// Validate checks field lengths and values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("source", c.Source, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output", c.Output, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("layouts", c.Layouts, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("defaultLayout", c.DefaultLayout, MaxLayoutNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("defaultTitle", c.DefaultTitle, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("highlightStyle", c.HighlightStyle, MaxStyleLength); err != nil {
		return err
	}

	if c.Source == "" {
		return fmt.Errorf("%w: source: must not be empty", ErrInvalidValue)
	}
	if c.Output == "" {
		return fmt.Errorf("%w: output: must not be empty", ErrInvalidValue)
	}
	if err := layout.ValidateName(c.DefaultLayout); err != nil {
		return fmt.Errorf("%w: defaultLayout: %v", ErrInvalidValue, err)
	}

	if len(c.Extensions) == 0 {
		return fmt.Errorf("%w: extensions: at least one is required", ErrInvalidValue)
	}
	for i, ext := range c.Extensions {
		field := fmt.Sprintf("extensions[%d]", i)
		if err := validateFieldLength(field, ext, MaxExtensionLength); err != nil {
			return err
		}
		if err := fileutil.ValidateExtension(ext); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidValue, field, err)
		}
	}

	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers: must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Workers)
	}

	if c.HighlightStyle != "" {
		if _, ok := styles.Registry[c.HighlightStyle]; !ok {
			return fmt.Errorf("%w: highlightStyle: unknown style %q", ErrInvalidValue, c.HighlightStyle)
		}
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

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Keys absent from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the locations resolveConfigPath tries for name, in order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, appName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-mdsite/
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
