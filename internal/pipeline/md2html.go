package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// HTMLConverter abstracts Markdown to HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content []byte) ([]byte, error)
}

// StructureParser parses Markdown into a Goldmark node tree without rendering.
type StructureParser interface {
	Parse(content []byte) ast.Node
}

// ConverterOption configures a GoldmarkConverter.
type ConverterOption func(*converterConfig)

type converterConfig struct {
	highlightStyle string
}

// WithHighlightStyle renders code blocks with inline colors from the named
// chroma style. Without it, code blocks carry CSS classes for an external
// stylesheet.
func WithHighlightStyle(name string) ConverterOption {
	return func(c *converterConfig) {
		c.highlightStyle = name
	}
}

// GoldmarkConverter converts Markdown to HTML using goldmark (pure Go).
// The source tree is trusted: raw HTML blocks, inline HTML, and links with
// any protocol (javascript:, data:, ...) pass through unchanged.
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter with front matter
// recognition, GFM extensions, and syntax highlighting.
func NewGoldmarkConverter(opts ...ConverterOption) *GoldmarkConverter {
	var cfg converterConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	hlOpts := []highlighting.Option{
		highlighting.WithFormatOptions(
			chromahtml.WithClasses(cfg.highlightStyle == ""),
		),
	}
	if cfg.highlightStyle != "" {
		hlOpts = append(hlOpts, highlighting.WithStyle(cfg.highlightStyle))
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			FrontMatterExtension,
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(hlOpts...),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(), // raw HTML and unsafe link protocols
		),
	)
	return &GoldmarkConverter{md: md}
}

// Parse returns the document node tree of content. A leading front matter
// block, when present, is the first child of the document.
func (c *GoldmarkConverter) Parse(content []byte) ast.Node {
	return c.md.Parser().Parse(text.NewReader(content))
}

// ToHTML converts Markdown content to an HTML fragment. The front matter
// block produces no output.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	type result struct {
		html []byte
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert(content, &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: buf.Bytes()}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
