package pipeline

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// fence delimits a front matter block.
var fence = []byte("---")

// KindFrontMatter is the NodeKind of a FrontMatter block.
var KindFrontMatter = ast.NewNodeKind("FrontMatter")

// FrontMatter is the YAML header block at the very top of a document.
// Its lines hold the raw YAML between the opening and closing fences.
type FrontMatter struct {
	ast.BaseBlock
}

// NewFrontMatter returns an empty FrontMatter node.
func NewFrontMatter() *FrontMatter {
	return &FrontMatter{}
}

// Kind implements ast.Node.
func (n *FrontMatter) Kind() ast.NodeKind {
	return KindFrontMatter
}

// IsRaw implements ast.Node. Front matter lines are never parsed as inlines.
func (n *FrontMatter) IsRaw() bool {
	return true
}

// Dump implements ast.Node.
func (n *FrontMatter) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

// Value returns the raw YAML text of the block.
func (n *FrontMatter) Value(source []byte) []byte {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(source))
	}
	return buf.Bytes()
}

// frontMatterParser opens a FrontMatter block when the first line of the
// document is a fence and a closing fence follows somewhere below it.
// Without a closing fence the line is left to the thematic break parser.
type frontMatterParser struct{}

func (p *frontMatterParser) Trigger() []byte {
	return []byte{'-'}
}

func (p *frontMatterParser) Open(parent ast.Node, reader text.Reader, pc parser.Context) (ast.Node, parser.State) {
	if lineNum, _ := reader.Position(); lineNum != 0 {
		return nil, parser.NoChildren
	}
	if parent.Kind() != ast.KindDocument {
		return nil, parser.NoChildren
	}
	line, seg := reader.PeekLine()
	if !isFence(line) || !hasClosingFence(reader.Source()[seg.Stop:]) {
		return nil, parser.NoChildren
	}
	return NewFrontMatter(), parser.NoChildren
}

func (p *frontMatterParser) Continue(node ast.Node, reader text.Reader, pc parser.Context) parser.State {
	line, seg := reader.PeekLine()
	if isFence(line) {
		reader.Advance(seg.Len())
		return parser.Close
	}
	node.Lines().Append(seg)
	return parser.Continue | parser.NoChildren
}

func (p *frontMatterParser) Close(node ast.Node, reader text.Reader, pc parser.Context) {}

func (p *frontMatterParser) CanInterruptParagraph() bool {
	return false
}

func (p *frontMatterParser) CanAcceptIndentedLine() bool {
	return false
}

// isFence reports whether line is exactly "---", ignoring trailing whitespace.
func isFence(line []byte) bool {
	return bytes.Equal(util.TrimRightSpace(line), fence)
}

// hasClosingFence reports whether any line of rest is a fence.
func hasClosingFence(rest []byte) bool {
	for len(rest) > 0 {
		line := rest
		if i := bytes.IndexByte(rest, '\n'); i >= 0 {
			line, rest = rest[:i], rest[i+1:]
		} else {
			rest = nil
		}
		if isFence(line) {
			return true
		}
	}
	return false
}

// frontMatterRenderer renders FrontMatter blocks as nothing.
type frontMatterRenderer struct{}

func (r *frontMatterRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindFrontMatter, func(util.BufWriter, []byte, ast.Node, bool) (ast.WalkStatus, error) {
		return ast.WalkSkipChildren, nil
	})
}

type frontMatterExtension struct{}

// FrontMatterExtension makes Goldmark recognize a leading YAML block as a
// FrontMatter node and leave it out of the rendered HTML.
var FrontMatterExtension goldmark.Extender = &frontMatterExtension{}

// Extend implements goldmark.Extender.
func (e *frontMatterExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(
		// Priority 0 runs ahead of the setext heading and thematic break parsers.
		parser.WithBlockParsers(util.Prioritized(&frontMatterParser{}, 0)),
	)
	m.Renderer().AddOptions(
		renderer.WithNodeRenderers(util.Prioritized(&frontMatterRenderer{}, 500)),
	)
}
