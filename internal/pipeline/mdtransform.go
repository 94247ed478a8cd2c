package pipeline

import (
	"bytes"
	"context"
	"regexp"
)

// utf8BOM is stripped so a front matter fence on the first line is recognized.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Line ending normalization
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content []byte) []byte
}

// CommonMarkPreprocessor prepares source bytes before parsing.
type CommonMarkPreprocessor struct{}

// PreprocessMarkdown strips a UTF-8 byte order mark and converts \r\n and \r
// line endings to \n. Body text is otherwise left untouched.
func (p *CommonMarkPreprocessor) PreprocessMarkdown(ctx context.Context, content []byte) []byte {
	// Check for cancellation before processing
	if ctx.Err() != nil {
		return content
	}

	content = bytes.TrimPrefix(content, utf8BOM)
	return normalizeLineEndings(content)
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content []byte) []byte {
	if bytes.IndexByte(content, '\r') < 0 {
		return content
	}
	return crlfOrCR.ReplaceAll(content, []byte("\n"))
}
