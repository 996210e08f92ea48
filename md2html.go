package md2html

import (
	"github.com/alnah/go-md2html/internal/htmlnode"
	"github.com/alnah/go-md2html/internal/pipeline"
)

// Node is an element of the HTML tree built from a document.
type Node = htmlnode.Node

// Parse builds the node tree for a whole Markdown document: a div holding
// one child per block, in source order. CRLF and CR line endings are
// accepted; other normalisation (BOM, whitespace-only lines) happens in
// Converter only.
func Parse(markdown string) (*Node, error) {
	return pipeline.MarkdownToNode(markdown)
}

// Render serializes a node tree to HTML text.
func Render(n *Node) (string, error) {
	return htmlnode.Render(n)
}

// ToHTML parses and renders a document with the native engine.
func ToHTML(markdown string) (string, error) {
	root, err := Parse(markdown)
	if err != nil {
		return "", err
	}
	return Render(root)
}

// ExtractTitle returns the text of the document's leading "# " heading.
// Returns ErrMissingTitle if the first line is not a level-1 heading.
func ExtractTitle(markdown string) (string, error) {
	return pipeline.ExtractTitle(markdown)
}

// Engines lists the names accepted by WithEngine.
func Engines() []string {
	engines := pipeline.Engines()
	names := make([]string, len(engines))
	for i, e := range engines {
		names[i] = string(e)
	}
	return names
}
