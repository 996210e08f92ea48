// Package inline splits a run of markdown text into typed spans:
// plain text, bold, italic, inline code, links and images.
package inline

import "fmt"

// SpanKind identifies the inline markup of a Span.
type SpanKind int

// Span kinds.
const (
	Plain SpanKind = iota
	Bold
	Italic
	Code
	Link
	Image
)

func (k SpanKind) String() string {
	switch k {
	case Plain:
		return "plain"
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Code:
		return "code"
	case Link:
		return "link"
	case Image:
		return "image"
	default:
		return fmt.Sprintf("SpanKind(%d)", int(k))
	}
}

// Span is a fragment of inline text.
// URL is set for links and images only; for images Text is the alt text.
type Span struct {
	Kind SpanKind
	Text string
	URL  string
}

// Source returns the markdown that produces s.
func (s Span) Source() string {
	switch s.Kind {
	case Bold:
		return "**" + s.Text + "**"
	case Italic:
		return "_" + s.Text + "_"
	case Code:
		return "`" + s.Text + "`"
	case Link:
		return "[" + s.Text + "](" + s.URL + ")"
	case Image:
		return "![" + s.Text + "](" + s.URL + ")"
	default:
		return s.Text
	}
}

func (s Span) String() string {
	if s.URL != "" {
		return fmt.Sprintf("%s(%q, %q)", s.Kind, s.Text, s.URL)
	}
	return fmt.Sprintf("%s(%q)", s.Kind, s.Text)
}
