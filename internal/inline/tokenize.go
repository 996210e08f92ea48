package inline

import (
	"regexp"
	"strings"
)

// Precompiled patterns for bracketed inline syntax.
// Link text and image alt text cannot contain brackets; destinations cannot
// contain parentheses.
var (
	imagePattern = regexp.MustCompile(`!\[([^\[\]]*)\]\(([^\(\)]*)\)`)
	linkPattern  = regexp.MustCompile(`\[([^\[\]]*)\]\(([^\(\)]*)\)`)
)

// delimiterPasses run in order. Each pass only rescans spans still Plain.
var delimiterPasses = []struct {
	delimiter string
	kind      SpanKind
}{
	{"**", Bold},
	{"_", Italic},
	{"`", Code},
}

// Ref is a link or image extracted from text.
type Ref struct {
	Text string
	URL  string
}

// Tokenize converts text into spans in source order.
// Empty text yields no spans. An odd number of `**`, `_` or "`" in a plain
// run returns an *UnbalancedDelimiterError. Malformed links and images are
// left as plain text. Empty Bold, Italic and Code spans survive, but the link
// and image passes drop empty plain segments.
func Tokenize(text string) ([]Span, error) {
	if text == "" {
		return []Span{}, nil
	}

	spans := []Span{{Kind: Plain, Text: text}}
	for _, pass := range delimiterPasses {
		var err error
		spans, err = SplitDelimiter(spans, pass.delimiter, pass.kind)
		if err != nil {
			return nil, err
		}
	}
	spans = SplitImages(spans)
	spans = SplitLinks(spans)
	return spans, nil
}

// SplitDelimiter splits every plain span on a paired delimiter.
//
// Segments alternate between plain and kind. The first segment has kind when
// the span starts with the delimiter. Delimiters repeated at either edge of the
// span are trimmed before splitting, so "**bold**" yields one Bold span.
// Empty segments are kept.
func SplitDelimiter(spans []Span, delimiter string, kind SpanKind) ([]Span, error) {
	out := make([]Span, 0, len(spans))
	for _, span := range spans {
		first := strings.Index(span.Text, delimiter)
		if span.Kind != Plain || first == -1 {
			out = append(out, span)
			continue
		}
		if strings.Count(span.Text, delimiter)%2 != 0 {
			return nil, &UnbalancedDelimiterError{Delimiter: delimiter, Text: span.Text}
		}

		delimited := first == 0
		for _, chunk := range strings.Split(trimDelimiter(span.Text, delimiter), delimiter) {
			k := Plain
			if delimited {
				k = kind
			}
			out = append(out, Span{Kind: k, Text: chunk})
			delimited = !delimited
		}
	}
	return out, nil
}

func trimDelimiter(s, delimiter string) string {
	for strings.HasPrefix(s, delimiter) {
		s = s[len(delimiter):]
	}
	for strings.HasSuffix(s, delimiter) {
		s = s[:len(s)-len(delimiter)]
	}
	return s
}

// SplitImages extracts ![alt](url) from plain spans.
func SplitImages(spans []Span) []Span {
	return splitPattern(spans, imagePattern, Image, nil)
}

// SplitLinks extracts [text](url) from plain spans, skipping image syntax.
func SplitLinks(spans []Span) []Span {
	return splitPattern(spans, linkPattern, Link, precededByBang)
}

// ExtractImages returns every image reference in text.
func ExtractImages(text string) []Ref {
	return extractRefs(text, imagePattern, nil)
}

// ExtractLinks returns every link reference in text that is not an image.
func ExtractLinks(text string) []Ref {
	return extractRefs(text, linkPattern, precededByBang)
}

// rejectFunc reports whether a match starting at start must be skipped.
type rejectFunc func(text string, start int) bool

// precededByBang rejects matches that are the tail of image syntax.
func precededByBang(text string, start int) bool {
	return start > 0 && text[start-1] == '!'
}

func splitPattern(spans []Span, re *regexp.Regexp, kind SpanKind, reject rejectFunc) []Span {
	out := make([]Span, 0, len(spans))
	for _, span := range spans {
		if span.Kind != Plain {
			out = append(out, span)
			continue
		}

		last := 0
		for _, m := range findMatches(span.Text, re, reject) {
			if m[0] > last {
				out = append(out, Span{Kind: Plain, Text: span.Text[last:m[0]]})
			}
			out = append(out, Span{
				Kind: kind,
				Text: span.Text[m[2]:m[3]],
				URL:  span.Text[m[4]:m[5]],
			})
			last = m[1]
		}
		if last < len(span.Text) {
			out = append(out, Span{Kind: Plain, Text: span.Text[last:]})
		}
	}
	return out
}

func extractRefs(text string, re *regexp.Regexp, reject rejectFunc) []Ref {
	matches := findMatches(text, re, reject)
	refs := make([]Ref, 0, len(matches))
	for _, m := range matches {
		refs = append(refs, Ref{Text: text[m[2]:m[3]], URL: text[m[4]:m[5]]})
	}
	return refs
}

// findMatches returns non-overlapping submatch indexes, left to right.
// After a rejected match the scan resumes one byte past its start, so a
// later match overlapping the rejected one can still be found.
func findMatches(text string, re *regexp.Regexp, reject rejectFunc) [][]int {
	var matches [][]int
	for pos := 0; pos <= len(text); {
		loc := re.FindStringSubmatchIndex(text[pos:])
		if loc == nil {
			break
		}
		for i := range loc {
			if loc[i] >= 0 {
				loc[i] += pos
			}
		}
		if reject != nil && reject(text, loc[0]) {
			pos = loc[0] + 1
			continue
		}
		matches = append(matches, loc)
		pos = loc[1]
		if loc[1] == loc[0] {
			pos++
		}
	}
	return matches
}
