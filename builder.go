package mdsite

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/alnah/go-mdsite/internal/address"
	"github.com/alnah/go-mdsite/internal/fileutil"
	"github.com/alnah/go-mdsite/internal/layout"
	"github.com/alnah/go-mdsite/internal/pipeline"
	"github.com/alnah/go-mdsite/internal/scan"
)

// Builder turns a source tree into a site. Create with NewBuilder and call
// Build once per run; a Builder holds no per-run state and may be reused.
type Builder struct {
	source  string
	output  string
	cfg     builderConfig
	logger  *log.Logger
	layouts *layout.Set
	scanner *scan.Scanner
}

// NewBuilder creates a Builder reading documents below source and writing
// pages below output. Layouts are loaded here, once; a layouts path that
// exists but is unusable returns ErrInvalidLayouts.
func NewBuilder(source, output string, opts ...Option) (*Builder, error) {
	defaults := pipeline.DefaultMetadata()
	b := &Builder{
		source: source,
		output: output,
		cfg: builderConfig{
			layoutsDir:    layout.DefaultDir,
			layoutMode:    layout.Trusted,
			extensions:    scan.DefaultExtensions,
			defaultTitle:  defaults.Title,
			defaultLayout: defaults.Layout,
		},
		logger: log.New(io.Discard),
	}

	for _, opt := range opts {
		opt(b)
	}

	set, err := layout.Load(b.cfg.layoutsDir, b.cfg.layoutMode)
	if err != nil {
		return nil, convertError(err)
	}
	b.layouts = set
	b.scanner = scan.New(b.cfg.extensions...)

	b.logger.Debug("layouts loaded", "dir", b.cfg.layoutsDir, "mode", set.Mode(), "names", set.Names())
	if !set.Has(b.cfg.defaultLayout) {
		b.logger.Warn("default layout not loaded", "layout", b.cfg.defaultLayout)
	}

	return b, nil
}

// Layouts returns the names of the loaded layouts, sorted.
func (b *Builder) Layouts() []string {
	return b.layouts.Names()
}

// Build scans the source tree, resolves every document to its address, and
// renders the pages in parallel.
//
// The returned error is non-nil only when the build could not start: the
// source root is missing or unreadable, or two documents share an address.
// Nothing is written in that case. Per-page failures are reported in the
// BuildResult; see BuildResult.Err.
func (b *Builder) Build(ctx context.Context) (*BuildResult, error) {
	if !fileutil.DirExists(b.source) {
		return nil, fmt.Errorf("%w: %s", ErrNoSourceRoot, b.source)
	}

	sources, err := b.scanner.Scan(ctx, b.source)
	if err != nil {
		return nil, convertError(err)
	}
	b.logger.Debug("scanned", "source", b.source, "documents", len(sources))

	triples, err := address.ResolveAll(sources, b.source, b.output)
	if err != nil {
		return nil, convertError(err)
	}

	return &BuildResult{Pages: b.renderAll(ctx, triples)}, nil
}

// renderAll processes triples concurrently using a renderer pool. Results
// keep the order of triples.
func (b *Builder) renderAll(ctx context.Context, triples []address.Triple) []PageResult {
	if len(triples) == 0 {
		return nil
	}

	// abort stops unstarted pages after a failure; started pages run on ctx
	// and finish.
	abort, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	pool := newRendererPool(min(ResolvePoolSize(b.cfg.workers), len(triples)), b.newRenderer)
	defer pool.Close()
	b.logger.Debug("rendering", "pages", len(triples), "workers", pool.Size())

	results := make([]PageResult, len(triples))
	var wg sync.WaitGroup
	jobs := make(chan int, len(triples))

	for w := 0; w < pool.Size(); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			r := pool.Acquire()
			defer pool.Release(r)

			for idx := range jobs {
				t := triples[idx]
				if abort.Err() != nil {
					results[idx] = PageResult{
						Page: Page{Source: t.Source, Output: t.Output, Address: t.Address},
						Err:  &PageError{Source: t.Source, Err: context.Cause(abort)},
					}
					continue
				}

				results[idx] = b.renderPage(ctx, r, t)
				if results[idx].Err != nil && !b.cfg.keepGoing {
					cancel(ErrBuildAborted)
				}
			}
		}()
	}

	for i := range triples {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	b.logger.Debug("pages rendered", "pages", len(triples), "renderers", pool.Created())
	return results
}

// renderPage builds one page and times it.
func (b *Builder) renderPage(ctx context.Context, r *Renderer, t address.Triple) PageResult {
	start := time.Now()
	page, err := r.Render(ctx, t)
	result := PageResult{Page: page, Duration: time.Since(start)}
	if err != nil {
		result.Err = &PageError{Source: t.Source, Err: err}
		b.logger.Debug("page failed", "source", t.Source, "error", err)
	}
	return result
}

// newRenderer builds a Renderer with its own markdown engine.
func (b *Builder) newRenderer() *Renderer {
	var convOpts []pipeline.ConverterOption
	if b.cfg.highlightStyle != "" {
		convOpts = append(convOpts, pipeline.WithHighlightStyle(b.cfg.highlightStyle))
	}

	r := &Renderer{
		preprocessor: &pipeline.CommonMarkPreprocessor{},
		engine:       pipeline.NewGoldmarkConverter(convOpts...),
		layouts:      b.layouts,
		defaults:     pipeline.Metadata{Title: b.cfg.defaultTitle, Layout: b.cfg.defaultLayout},
		logger:       b.logger,
	}
	if b.cfg.rewriteLinks {
		r.links = b.linkResolver
	}
	return r
}

// linkResolver returns the resolver for links written in the page at from.
func (b *Builder) linkResolver(from address.Triple) pipeline.LinkResolver {
	return func(href string) (string, bool) {
		return address.ResolveLink(href, from, b.source, b.cfg.extensions)
	}
}
