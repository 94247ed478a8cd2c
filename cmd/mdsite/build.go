package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	mdsite "github.com/alnah/go-mdsite"
	"github.com/alnah/go-mdsite/internal/config"
	"github.com/alnah/go-mdsite/internal/hints"
)

// ErrTooManyArgs is returned when more than one source root is given.
var ErrTooManyArgs = errors.New("too many arguments")

// buildFailedError reports pages that were not written. The page errors
// were already printed one per line, so Error only counts them.
type buildFailedError struct {
	failed int
	err    error
}

func (e *buildFailedError) Error() string {
	return fmt.Sprintf("%d page(s) failed", e.failed)
}

func (e *buildFailedError) Unwrap() error {
	return e.err
}

// runBuild resolves the configuration and builds the site.
// Precedence: positional source and flags > MDSITE_* env > config file > defaults.
func runBuild(ctx context.Context, positional []string, flags *buildFlags, logger *log.Logger, env *Environment) error {
	if len(positional) > 1 {
		return fmt.Errorf("%w: expected at most one source, got %d", ErrTooManyArgs, len(positional))
	}

	envCfg := loadEnvConfig()
	cfg, err := loadConfig(flags.common.config, envCfg.ConfigPath)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if len(positional) == 1 {
		cfg.Source = positional[0]
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger.Debug("config resolved",
		"source", cfg.Source,
		"output", cfg.Output,
		"layouts", cfg.Layouts,
		"workers", mdsite.ResolvePoolSize(cfg.Workers))

	builder, err := env.NewBuilder(cfg.Source, cfg.Output, builderOptions(cfg, logger)...)
	if err != nil {
		return withHint(err, nil)
	}

	start := env.Now()
	result, err := builder.Build(ctx)
	if err != nil {
		return withHint(err, builder)
	}

	if len(result.Pages) == 0 {
		logger.Warn("no source documents found", "source", cfg.Source)
	}

	failed := printResults(result, flags.common.quiet, flags.common.verbose, env)
	if flags.common.verbose {
		fmt.Fprintf(env.Stdout, "Built in %v\n", env.Now().Sub(start).Round(time.Millisecond))
	}
	if failed > 0 {
		return withHint(&buildFailedError{failed: failed, err: result.Err()}, builder)
	}
	return nil
}

// loadConfig loads the named config, the flag taking precedence over
// MDSITE_CONFIG. Without either it returns the defaults.
func loadConfig(flagName, envName string) (*config.Config, error) {
	name := flagName
	if name == "" {
		name = envName
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// builderOptions translates a resolved config into builder options.
func builderOptions(cfg *config.Config, logger *log.Logger) []mdsite.Option {
	return []mdsite.Option{
		mdsite.WithLogger(logger),
		mdsite.WithLayouts(cfg.Layouts),
		mdsite.WithDefaultLayout(cfg.DefaultLayout),
		mdsite.WithDefaultTitle(cfg.DefaultTitle),
		mdsite.WithExtensions(cfg.Extensions...),
		mdsite.WithWorkers(cfg.Workers),
		mdsite.WithKeepGoing(cfg.KeepGoing),
		mdsite.WithEscapedSlots(cfg.EscapeSlots),
		mdsite.WithHighlightStyle(cfg.HighlightStyle),
		mdsite.WithRewriteLinks(cfg.RewriteLinks),
	}
}

// withHint appends an actionable hint to err when one applies.
// builder may be nil if construction failed.
func withHint(err error, builder SiteBuilder) error {
	var hint string
	switch {
	case errors.Is(err, mdsite.ErrNoSourceRoot), errors.Is(err, mdsite.ErrScanDirectory):
		hint = hints.ForSourceDirectory()
	case errors.Is(err, mdsite.ErrAddressCollision):
		hint = hints.ForAddressCollision()
	case errors.Is(err, mdsite.ErrLayoutNotFound):
		if builder != nil {
			hint = hints.ForLayoutNotFound(builder.Layouts())
		}
	case errors.Is(err, mdsite.ErrInvalidLayouts), errors.Is(err, mdsite.ErrLayoutRender):
		hint = hints.ForLayoutSyntax()
	case errors.Is(err, mdsite.ErrCreateDirectory), errors.Is(err, mdsite.ErrWriteOutput):
		hint = hints.ForOutputDirectory()
	}
	if hint == "" {
		return err
	}
	return fmt.Errorf("%w%s", err, hint)
}

// printResults outputs page results and returns the failure count.
func printResults(result *mdsite.BuildResult, quiet, verbose bool, env *Environment) int {
	for _, r := range result.Pages {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %v\n", r.Err)
			continue
		}
		if quiet {
			continue
		}
		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.Page.Source, r.Page.Output, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.Page.Output)
		}
	}

	if !quiet && len(result.Pages) > 0 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", result.Succeeded(), result.Failed())
	}

	return result.Failed()
}
