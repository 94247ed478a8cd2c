package pipeline

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/alnah/go-mdsite/internal/yamlutil"
)

// Default metadata used when a page header is absent or unusable.
const (
	DefaultTitle  = "NO TITLE"
	DefaultLayout = "base-1.html"
)

// Reasons a header could not be decoded. None of them stops a build.
var (
	ErrNoFrontMatter     = errors.New("document has no front matter")
	ErrFrontMatterSyntax = errors.New("malformed front matter")
	ErrMissingField      = errors.New("front matter missing required field")
)

// Metadata is what a page header says about the page.
type Metadata struct {
	Title  string
	Layout string
}

// DefaultMetadata returns the fixed fallback metadata.
func DefaultMetadata() Metadata {
	return Metadata{Title: DefaultTitle, Layout: DefaultLayout}
}

// MetadataResult is the outcome of decoding a header: either Metadata with
// both fields set, or Err saying why decoding failed.
type MetadataResult struct {
	Metadata Metadata
	Err      error
}

// Resolve returns the decoded metadata, or defaults if decoding failed.
// This is the only place a bad header turns into default metadata.
func (r MetadataResult) Resolve(defaults Metadata) Metadata {
	if r.Err != nil {
		return defaults
	}
	return r.Metadata
}

// header mirrors the recognized front matter keys. "layout" is accepted as
// an alias of "template".
type header struct {
	Title    string `yaml:"title"`
	Template string `yaml:"template"`
	Layout   string `yaml:"layout"`
}

// ExtractMetadata decodes the front matter of content. content must already
// be preprocessed.
func ExtractMetadata(p StructureParser, content []byte) MetadataResult {
	doc := p.Parse(content)

	first := doc.FirstChild()
	if first == nil || first.Kind() != KindFrontMatter {
		return MetadataResult{Err: ErrNoFrontMatter}
	}
	fm, ok := first.(*FrontMatter)
	if !ok {
		return MetadataResult{Err: ErrNoFrontMatter}
	}

	raw := fm.Value(content)
	if len(bytes.TrimSpace(raw)) == 0 {
		return MetadataResult{Err: fmt.Errorf("%w: title", ErrMissingField)}
	}

	var h header
	if err := yamlutil.Unmarshal(raw, &h); err != nil {
		return MetadataResult{Err: fmt.Errorf("%w: %v", ErrFrontMatterSyntax, err)}
	}

	layout := h.Template
	if layout == "" {
		layout = h.Layout
	}

	// An empty value counts as absent, so "title: \"\"" falls back to defaults.
	switch {
	case h.Title == "":
		return MetadataResult{Err: fmt.Errorf("%w: title", ErrMissingField)}
	case layout == "":
		return MetadataResult{Err: fmt.Errorf("%w: template", ErrMissingField)}
	}

	return MetadataResult{Metadata: Metadata{Title: h.Title, Layout: layout}}
}
