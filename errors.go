package mdsite

import (
	"errors"

	"github.com/alnah/go-mdsite/internal/address"
	"github.com/alnah/go-mdsite/internal/fileutil"
	"github.com/alnah/go-mdsite/internal/layout"
	"github.com/alnah/go-mdsite/internal/pipeline"
	"github.com/alnah/go-mdsite/internal/scan"
)

// Sentinel errors for site builds.
var (
	// Run-level errors: the build does not start.
	ErrNoSourceRoot     = errors.New("source root is not a directory")
	ErrScanDirectory    = errors.New("cannot list source directory")
	ErrOutsideRoot      = errors.New("source path is outside the source root")
	ErrAddressCollision = errors.New("two sources resolve to the same address")
	ErrInvalidLayouts   = errors.New("invalid layouts")

	// Page-level errors, reported through PageError.
	ErrReadSource      = errors.New("failed to read source document")
	ErrHTMLConversion  = errors.New("HTML conversion failed")
	ErrLayoutNotFound  = errors.New("layout not found")
	ErrLayoutRender    = errors.New("layout rendering failed")
	ErrCreateDirectory = errors.New("failed to create output directory")
	ErrWriteOutput     = errors.New("failed to write output file")
	ErrBuildAborted    = errors.New("skipped after an earlier page failed")
)

// convertError maps internal errors to public errors.
func convertError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, scan.ErrListDirectory):
		return wrapError(ErrScanDirectory, err)
	case errors.Is(err, address.ErrOutsideRoot):
		return wrapError(ErrOutsideRoot, err)
	case errors.Is(err, address.ErrCollision):
		return wrapError(ErrAddressCollision, err)
	case errors.Is(err, layout.ErrLayoutNotFound):
		return wrapError(ErrLayoutNotFound, err)
	case errors.Is(err, layout.ErrLayoutRender):
		return wrapError(ErrLayoutRender, err)
	case errors.Is(err, layout.ErrInvalidLayoutDir),
		errors.Is(err, layout.ErrInvalidLayoutName),
		errors.Is(err, layout.ErrLayoutRead),
		errors.Is(err, layout.ErrLayoutParse),
		errors.Is(err, layout.ErrPathTraversal):
		return wrapError(ErrInvalidLayouts, err)
	case errors.Is(err, pipeline.ErrHTMLConversion):
		return wrapError(ErrHTMLConversion, err)
	case errors.Is(err, fileutil.ErrCreateDirectory):
		return wrapError(ErrCreateDirectory, err)
	case errors.Is(err, fileutil.ErrWriteFile):
		return wrapError(ErrWriteOutput, err)
	default:
		return err
	}
}

// wrapError creates a new error that wraps the original with a public sentinel.
// The resulting error preserves the original message via Error() and supports
// errors.Is() matching against the public sentinel via Unwrap().
func wrapError(sentinel, original error) error {
	return &wrappedError{sentinel: sentinel, original: original}
}

type wrappedError struct {
	sentinel error
	original error
}

func (e *wrappedError) Error() string {
	return e.original.Error()
}

// Unwrap returns the public sentinel for errors.Is() matching.
// Internal errors are not exposed since they're in internal/ packages.
func (e *wrappedError) Unwrap() error {
	return e.sentinel
}
