package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/alnah/go-mdsite/internal/config"
)

// envPrefix marks the environment variables the CLI reads.
const envPrefix = "MDSITE_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath     string // MDSITE_CONFIG: config file name or path
	Source         string // MDSITE_SOURCE: source root
	Output         string // MDSITE_OUTPUT: output root
	Layouts        string // MDSITE_LAYOUTS: layouts directory
	DefaultLayout  string // MDSITE_DEFAULT_LAYOUT: layout for pages that name none
	HighlightStyle string // MDSITE_HIGHLIGHT_STYLE: chroma style name
	Workers        int    // MDSITE_WORKERS: parallel workers
}

// knownEnvVars lists valid MDSITE_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MDSITE_CONFIG":          true,
	"MDSITE_SOURCE":          true,
	"MDSITE_OUTPUT":          true,
	"MDSITE_LAYOUTS":         true,
	"MDSITE_DEFAULT_LAYOUT":  true,
	"MDSITE_HIGHLIGHT_STYLE": true,
	"MDSITE_WORKERS":         true,
}

// loadEnvConfig reads configuration from environment variables.
// Invalid or non-positive MDSITE_WORKERS is ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath:     os.Getenv("MDSITE_CONFIG"),
		Source:         os.Getenv("MDSITE_SOURCE"),
		Output:         os.Getenv("MDSITE_OUTPUT"),
		Layouts:        os.Getenv("MDSITE_LAYOUTS"),
		DefaultLayout:  os.Getenv("MDSITE_DEFAULT_LAYOUT"),
		HighlightStyle: os.Getenv("MDSITE_HIGHLIGHT_STYLE"),
	}

	if workers := os.Getenv("MDSITE_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs a warning for every unrecognized MDSITE_* variable.
// Helps catch typos like MDSITE_OUPUT.
func warnUnknownEnvVars(logger *log.Logger) {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			logger.Warn("unknown environment variable (typo?)", "name", name)
		}
	}
}

// applyEnvConfig applies set environment variables over the loaded config.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Source != "" {
		cfg.Source = env.Source
	}
	if env.Output != "" {
		cfg.Output = env.Output
	}
	if env.Layouts != "" {
		cfg.Layouts = env.Layouts
	}
	if env.DefaultLayout != "" {
		cfg.DefaultLayout = env.DefaultLayout
	}
	if env.HighlightStyle != "" {
		cfg.HighlightStyle = env.HighlightStyle
	}
	if env.Workers > 0 {
		cfg.Workers = env.Workers
	}
}
