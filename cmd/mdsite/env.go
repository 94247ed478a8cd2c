package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"go.uber.org/automaxprocs/maxprocs"

	mdsite "github.com/alnah/go-mdsite"
)

// SiteBuilder is the part of *mdsite.Builder the CLI drives.
type SiteBuilder interface {
	Build(ctx context.Context) (*mdsite.BuildResult, error)
	Layouts() []string
}

// Environment holds injectable dependencies for testability.
// Includes I/O, time, builder construction, and runtime tuning.
type Environment struct {
	Now          func() time.Time
	Stdout       io.Writer
	Stderr       io.Writer
	NewBuilder   func(source, output string, opts ...mdsite.Option) (SiteBuilder, error)
	TuneMaxProcs func(logger *log.Logger) // nil skips GOMAXPROCS tuning
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:          time.Now,
		Stdout:       os.Stdout,
		Stderr:       os.Stderr,
		NewBuilder:   newSiteBuilder,
		TuneMaxProcs: tuneMaxProcs,
	}
}

// newSiteBuilder adapts mdsite.NewBuilder to the SiteBuilder interface.
func newSiteBuilder(source, output string, opts ...mdsite.Option) (SiteBuilder, error) {
	b, err := mdsite.NewBuilder(source, output, opts...)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// tuneMaxProcs sets GOMAXPROCS from the container CPU quota before the
// renderer pool is sized.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply and the build continues safely.
func tuneMaxProcs(logger *log.Logger) {
	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
		logger.Debug(fmt.Sprintf(format, args...))
	}))
}
