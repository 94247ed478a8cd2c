package mdsite

import (
	"slices"

	"github.com/charmbracelet/log"

	"github.com/alnah/go-mdsite/internal/layout"
)

// Option configures a Builder.
type Option func(*Builder)

// builderConfig holds internal configuration for Builder.
type builderConfig struct {
	workers        int
	keepGoing      bool
	layoutsDir     string
	layoutMode     layout.Mode
	extensions     []string
	defaultTitle   string
	defaultLayout  string
	highlightStyle string
	rewriteLinks   bool
}

// WithLogger sets the logger receiving per-page diagnostics.
// The default logger discards everything.
func WithLogger(l *log.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithWorkers sets how many pages are rendered in parallel.
// 0 picks a size from GOMAXPROCS (see ResolvePoolSize).
// Panics if n < 0 (programmer error, similar to time.NewTicker).
func WithWorkers(n int) Option {
	if n < 0 {
		panic("mdsite: WithWorkers count must not be negative")
	}
	return func(b *Builder) {
		b.cfg.workers = n
	}
}

// WithKeepGoing attempts every page even after one fails.
// By default the first failure stops pages that have not started.
func WithKeepGoing(keepGoing bool) Option {
	return func(b *Builder) {
		b.cfg.keepGoing = keepGoing
	}
}

// WithLayouts sets the directory layouts are loaded from. Layouts found
// there override the embedded ones of the same name. A directory that does
// not exist is treated as empty.
func WithLayouts(dir string) Option {
	return func(b *Builder) {
		b.cfg.layoutsDir = dir
	}
}

// WithEscapedSlots loads layouts with html/template so the title slot is
// HTML-escaped. The rendered body is inserted unescaped either way.
func WithEscapedSlots(escaped bool) Option {
	return func(b *Builder) {
		if escaped {
			b.cfg.layoutMode = layout.Escaped
		} else {
			b.cfg.layoutMode = layout.Trusted
		}
	}
}

// WithExtensions sets the file extensions treated as source documents.
func WithExtensions(extensions ...string) Option {
	return func(b *Builder) {
		if len(extensions) > 0 {
			b.cfg.extensions = slices.Clone(extensions)
		}
	}
}

// WithDefaultTitle sets the title used for pages whose header is absent or
// unusable.
func WithDefaultTitle(title string) Option {
	return func(b *Builder) {
		b.cfg.defaultTitle = title
	}
}

// WithDefaultLayout sets the layout used for pages whose header is absent
// or unusable.
func WithDefaultLayout(name string) Option {
	return func(b *Builder) {
		if name != "" {
			b.cfg.defaultLayout = name
		}
	}
}

// WithHighlightStyle renders code blocks with inline colors from the named
// chroma style instead of CSS classes.
func WithHighlightStyle(name string) Option {
	return func(b *Builder) {
		b.cfg.highlightStyle = name
	}
}

// WithRewriteLinks rewrites relative links to other source documents
// ("guide.md#setup") into their public addresses ("/guide#setup").
func WithRewriteLinks(rewrite bool) Option {
	return func(b *Builder) {
		b.cfg.rewriteLinks = rewrite
	}
}
