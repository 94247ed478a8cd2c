// Package mdsite builds a static site from a tree of Markdown documents.
//
// # Quick Start
//
// Create a builder for a source and output directory, then build:
//
//	b, err := mdsite.NewBuilder("src", "public")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := b.Build(ctx)
//	if err != nil {
//	    log.Fatal(err) // nothing was written
//	}
//	if err := result.Err(); err != nil {
//	    log.Fatal(err) // some pages failed
//	}
//
// # Addresses
//
// Every document gets a public address derived from its path below the
// source root, and is written as <output>/<address>/index.html:
//
//	src/index.md          ->  /            public/index.html
//	src/about.md          ->  /about       public/about/index.html
//	src/blog/index.md     ->  /blog        public/blog/index.html
//	src/blog/first.md     ->  /blog/first  public/blog/first/index.html
//
// Two documents resolving to the same address (blog.md and blog/index.md)
// stop the build before anything is written.
//
// # Front Matter
//
// A document may start with a YAML header between two "---" lines:
//
//	---
//	title: Hello
//	template: post.html
//	---
//	# Hello
//
// A missing, malformed, or incomplete header is not an error: the page uses
// the default title ("NO TITLE") and the default layout ("base-1.html").
//
// # Layouts
//
// Layouts are Go templates loaded from a directory (default "templates").
// Each receives the slots {{.title}}, {{.content}}, and {{.address}}; the
// shorthand {{ title }} is accepted too. A "base-1.html" layout is
// embedded and may be overridden.
//
// By default slots are inserted without escaping, since the source tree is
// trusted. Use WithEscapedSlots to HTML-escape the title.
//
// # Parallel Processing
//
// Pages are rendered by a pool of workers (WithWorkers, default from
// GOMAXPROCS). The first failing page stops pages that have not started;
// use WithKeepGoing to attempt every page.
package mdsite
