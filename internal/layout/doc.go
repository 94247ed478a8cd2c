// Package layout loads the named page layouts a site is rendered with.
//
// # Loading
//
// A Set is built once per run from two sources:
//
//	Set
//	 ├── embedded layouts   - compiled in (base-1.html)
//	 └── layouts directory  - every *.html file below it, at any depth
//
// A file in the layouts directory overrides an embedded layout of the same
// name. Layout names are slash-separated paths relative to the directory,
// e.g. "base.html" or "blog/post.html". All layouts share one template
// namespace, so one layout can include another:
//
//	{{template "partials/nav.html" .}}
//
// # Slots
//
// Layouts use Go template syntax. Each render receives three slots:
// .title, .content (the page body as HTML) and .address (the page's public
// address). The shorthand {{ title }} / {{ content }} / {{ address }} is
// rewritten to the dotted form when the layout is loaded.
//
// # Escaping
//
// The Mode passed to Load decides how slots are substituted:
//
//   - Trusted: no escaping at all. The title is inserted verbatim. Use only
//     when every page source is trusted, which is the generator's default.
//   - Escaped: contextual HTML escaping (html/template). The title is
//     escaped; the body is still inserted as HTML because it is the output
//     of the Markdown converter.
//
// # Security
//
// Layout files reached through symlinks must resolve inside the layouts
// directory.
package layout
