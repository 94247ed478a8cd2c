package main

import (
	"errors"
	"os"

	mdsite "github.com/alnah/go-mdsite"
	"github.com/alnah/go-mdsite/internal/config"
)

// Exit codes for the mdsite CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Every page built
	ExitGeneral = 1 // General/unexpected error, including canceled builds
	ExitUsage   = 2 // Invalid flags, config, layouts, or source tree shape
	ExitIO      = 3 // Source unreadable, output unwritable
)

// exitCodeFor returns the exit code for an error returned by runBuild.
// It matches wrapped errors with errors.Is; a joined page error maps to the
// first category any of its pages falls into, checked in the order below.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage/config/layout errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, mdsite.ErrInvalidLayouts) ||
		errors.Is(err, mdsite.ErrLayoutNotFound) ||
		errors.Is(err, mdsite.ErrLayoutRender) ||
		errors.Is(err, mdsite.ErrAddressCollision) ||
		errors.Is(err, mdsite.ErrOutsideRoot) ||
		errors.Is(err, ErrTooManyArgs) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, mdsite.ErrNoSourceRoot) ||
		errors.Is(err, mdsite.ErrScanDirectory) ||
		errors.Is(err, mdsite.ErrReadSource) ||
		errors.Is(err, mdsite.ErrCreateDirectory) ||
		errors.Is(err, mdsite.ErrWriteOutput) {
		return ExitIO
	}

	return ExitGeneral
}
