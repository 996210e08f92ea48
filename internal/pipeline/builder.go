package pipeline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alnah/go-md2html/internal/block"
	"github.com/alnah/go-md2html/internal/htmlnode"
	"github.com/alnah/go-md2html/internal/inline"
)

// MarkdownToNode builds the node tree for a whole document.
// Every block becomes one child of a root div, in document order.
// An empty document yields a div without children, which does not render.
func MarkdownToNode(markdown string) (*htmlnode.Node, error) {
	blocks := block.Parse(markdown)
	children := make([]*htmlnode.Node, 0, len(blocks))
	for i, b := range blocks {
		child, err := blockToNode(b)
		if err != nil {
			return nil, fmt.Errorf("block %d (%s): %w", i+1, b.Kind, err)
		}
		children = append(children, child)
	}
	return htmlnode.NewParent("div", children), nil
}

func blockToNode(b block.Block) (*htmlnode.Node, error) {
	switch b.Kind {
	case block.Paragraph:
		return wrapInline("p", joinLines(b.Text))
	case block.Heading:
		text := strings.TrimLeft(b.Text[b.Level:], " ")
		return wrapInline("h"+strconv.Itoa(b.Level), joinLines(text))
	case block.Code:
		return codeToNode(b.Text), nil
	case block.Quote:
		return wrapInline("blockquote", quoteText(b.Text))
	case block.UnorderedList:
		return listToNode("ul", b.Text, func(int) string { return "- " })
	case block.OrderedList:
		return listToNode("ol", b.Text, func(i int) string { return block.OrderedPrefix(i + 1) })
	default:
		return nil, fmt.Errorf("%w: unknown block kind %v", htmlnode.ErrStructuralInvariant, b.Kind)
	}
}

// TextToChildren tokenizes text and maps each span to a leaf.
// Text without any spans yields a single empty text leaf.
func TextToChildren(text string) ([]*htmlnode.Node, error) {
	spans, err := inline.Tokenize(text)
	if err != nil {
		return nil, err
	}
	if len(spans) == 0 {
		return []*htmlnode.Node{htmlnode.NewText("")}, nil
	}

	children := make([]*htmlnode.Node, 0, len(spans))
	for _, s := range spans {
		n, err := SpanToNode(s)
		if err != nil {
			return nil, err
		}
		children = append(children, n)
	}
	return children, nil
}

// SpanToNode maps one inline span to its leaf.
func SpanToNode(s inline.Span) (*htmlnode.Node, error) {
	switch s.Kind {
	case inline.Plain:
		return htmlnode.NewText(s.Text), nil
	case inline.Bold:
		return htmlnode.NewLeaf("b", s.Text), nil
	case inline.Italic:
		return htmlnode.NewLeaf("i", s.Text), nil
	case inline.Code:
		return htmlnode.NewLeaf("code", s.Text), nil
	case inline.Link:
		return htmlnode.NewLeaf("a", s.Text, htmlnode.Attr{Name: "href", Value: s.URL}), nil
	case inline.Image:
		return htmlnode.NewEmptyLeaf("img",
			htmlnode.Attr{Name: "src", Value: s.URL},
			htmlnode.Attr{Name: "alt", Value: s.Text},
		), nil
	default:
		return nil, fmt.Errorf("%w: unknown span kind %v", htmlnode.ErrStructuralInvariant, s.Kind)
	}
}

func wrapInline(tag, text string) (*htmlnode.Node, error) {
	children, err := TextToChildren(text)
	if err != nil {
		return nil, err
	}
	return htmlnode.NewParent(tag, children), nil
}

// codeToNode keeps the fenced body verbatim, minus one leading newline.
func codeToNode(text string) *htmlnode.Node {
	body := strings.TrimPrefix(text, block.Fence)
	body = strings.TrimSuffix(body, block.Fence)
	body = strings.TrimPrefix(body, "\n")
	return htmlnode.NewParent("pre", []*htmlnode.Node{htmlnode.NewLeaf("code", body)})
}

// quoteText joins quote lines with single spaces. Bare ">" lines carry no
// text and are skipped.
func quoteText(text string) string {
	var parts []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(strings.TrimPrefix(line, ">")); line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}

// listToNode strips the marker of each line and wraps every item in li.
func listToNode(tag, text string, marker func(int) string) (*htmlnode.Node, error) {
	lines := strings.Split(text, "\n")
	items := make([]*htmlnode.Node, 0, len(lines))
	for i, line := range lines {
		item, err := wrapInline("li", strings.TrimPrefix(line, marker(i)))
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
		items = append(items, item)
	}
	return htmlnode.NewParent(tag, items), nil
}

func joinLines(text string) string {
	return strings.ReplaceAll(text, "\n", " ")
}
