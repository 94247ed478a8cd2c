// Package pipeline implements the per-page Markdown stages.
//
// This package handles preprocessing, front matter extraction, and HTML
// conversion:
//   - Markdown preprocessing (BOM removal, line ending normalization)
//   - Front matter recognition as a Goldmark block node (FrontMatter)
//   - Metadata decoding from the front matter into title and layout name
//   - Markdown to HTML conversion via Goldmark, with raw HTML passthrough
//
// Wrapping the HTML fragment in a layout is handled by internal/layout, and
// writing pages by the root mdsite package. The front matter block is parsed
// as part of the document so metadata extraction and HTML conversion see the
// same structure; the HTML renderer emits nothing for it.
package pipeline
