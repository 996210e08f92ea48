package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Whitespace-only lines would hide a block boundary from the splitter.
	blankLineSpaces = regexp.MustCompile(`(?m)^[ \t]+$`)
)

// byteOrderMark is stripped from the start of input files.
const byteOrderMark = "\uFEFF"

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// SourcePreprocessor normalizes raw file content before parsing.
type SourcePreprocessor struct{}

// PreprocessMarkdown strips a byte order mark, converts line endings to \n
// and empties whitespace-only lines.
func (p *SourcePreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	content = strings.TrimPrefix(content, byteOrderMark)
	content = normalizeLineEndings(content)
	content = clearBlankLines(content)
	return content
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

func clearBlankLines(content string) string {
	return blankLineSpaces.ReplaceAllString(content, "")
}
