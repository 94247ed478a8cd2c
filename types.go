package mdsite

import (
	"errors"
	"time"
)

// Page describes one generated page.
type Page struct {
	Source  string // path of the source document
	Output  string // path of the written index.html
	Address string // public address, always rooted at "/"
	Title   string // resolved title (header or default)
	Layout  string // resolved layout name (header or default)
}

// PageResult holds the outcome of building a single page.
type PageResult struct {
	Page     Page
	Err      error // *PageError on failure
	Duration time.Duration
}

// PageError reports a failure while building one source document.
type PageError struct {
	Source string
	Err    error
}

func (e *PageError) Error() string {
	return e.Source + ": " + e.Err.Error()
}

func (e *PageError) Unwrap() error {
	return e.Err
}

// BuildResult collects the per-page outcomes of a build, in source order.
type BuildResult struct {
	Pages []PageResult
}

// Succeeded returns the number of pages written.
func (r *BuildResult) Succeeded() int {
	n := 0
	for _, p := range r.Pages {
		if p.Err == nil {
			n++
		}
	}
	return n
}

// Failed returns the number of pages not written, skipped ones included.
func (r *BuildResult) Failed() int {
	return len(r.Pages) - r.Succeeded()
}

// Err joins every page error, or returns nil if all pages were written.
func (r *BuildResult) Err() error {
	var errs []error
	for _, p := range r.Pages {
		if p.Err != nil {
			errs = append(errs, p.Err)
		}
	}
	return errors.Join(errs...)
}
