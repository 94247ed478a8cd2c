package mdsite

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/alnah/go-mdsite/internal/address"
	"github.com/alnah/go-mdsite/internal/fileutil"
	"github.com/alnah/go-mdsite/internal/layout"
	"github.com/alnah/go-mdsite/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.CommonMarkPreprocessor)(nil)
	_ markdownEngine                = (*pipeline.GoldmarkConverter)(nil)
)

// markdownEngine parses documents for their header and renders their body.
type markdownEngine interface {
	pipeline.HTMLConverter
	pipeline.StructureParser
}

// Renderer builds one page at a time: read, extract metadata, convert,
// apply the layout, write. A Renderer is not safe for concurrent use; the
// Builder gives each worker its own.
type Renderer struct {
	preprocessor pipeline.MarkdownPreprocessor
	engine       markdownEngine
	layouts      *layout.Set
	defaults     pipeline.Metadata
	logger       *log.Logger

	// links resolves hrefs relative to a page; nil disables rewriting.
	links func(from address.Triple) pipeline.LinkResolver
}

// Render builds the page for t and writes it to t.Output.
func (r *Renderer) Render(ctx context.Context, t address.Triple) (Page, error) {
	page := Page{Source: t.Source, Output: t.Output, Address: t.Address}

	raw, err := os.ReadFile(t.Source) // #nosec G304 -- path comes from the source scan
	if err != nil {
		return page, fmt.Errorf("%w: %v", ErrReadSource, err)
	}

	content := r.preprocessor.PreprocessMarkdown(ctx, raw)
	if ctx.Err() != nil {
		return page, ctx.Err()
	}

	result := pipeline.ExtractMetadata(r.engine, content)
	if result.Err != nil {
		r.logger.Debug("header ignored", "source", t.Source, "reason", result.Err)
	}
	meta := result.Resolve(r.defaults)
	page.Title, page.Layout = meta.Title, meta.Layout
	r.logger.Info("page", "title", meta.Title, "layout", meta.Layout, "address", t.Address)

	body, err := r.engine.ToHTML(ctx, content)
	if err != nil {
		return page, convertError(err)
	}

	if r.links != nil {
		body, err = pipeline.RewriteLinks(body, r.links(t))
		if err != nil {
			return page, fmt.Errorf("rewriting links: %w", err)
		}
	}

	start := time.Now()
	out, err := r.layouts.Render(meta.Layout, layout.Slots{
		Title:   meta.Title,
		Content: string(body),
		Address: t.Address,
	})
	if err != nil {
		return page, convertError(err)
	}
	r.logger.Debug("rendered", "layout", meta.Layout, "bytes", len(out), "took", time.Since(start))

	r.logger.Debug("writing", "path", t.Output)
	if err := fileutil.WriteOutput(t.Output, out); err != nil {
		return page, convertError(err)
	}

	return page, nil
}
