// Package block splits a markdown document into blank-line separated blocks
// and classifies each one by its line prefixes.
package block

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Kind is the structural kind of a block.
type Kind int

// Block kinds.
const (
	Paragraph Kind = iota + 1
	Heading
	Code
	Quote
	UnorderedList
	OrderedList
)

func (k Kind) String() string {
	switch k {
	case Paragraph:
		return "paragraph"
	case Heading:
		return "heading"
	case Code:
		return "code"
	case Quote:
		return "quote"
	case UnorderedList:
		return "unordered_list"
	case OrderedList:
		return "ordered_list"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Fence opens and closes a code block.
const Fence = "```"

var (
	separatorPattern = regexp.MustCompile(`\n{2,}`)
	headingPattern   = regexp.MustCompile(`^(#{1,6}) `)
)

// Block is one classified unit of a document.
// Level is set for headings only.
type Block struct {
	Kind  Kind
	Text  string
	Level int
}

// lineEndings folds CRLF and lone CR into LF.
var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Split breaks doc on runs of two or more newlines. CRLF and CR line endings
// count as newlines. Pieces are trimmed and empty pieces are dropped; order
// is preserved.
func Split(doc string) []string {
	pieces := separatorPattern.Split(lineEndings.Replace(doc), -1)
	blocks := make([]string, 0, len(pieces))
	for _, p := range pieces {
		if p = strings.TrimSpace(p); p != "" {
			blocks = append(blocks, p)
		}
	}
	return blocks
}

// Classify determines the kind of a single block. The first matching rule
// wins: heading, fenced code, then a line scan for quote and list markers.
// Anything else is a paragraph.
func Classify(text string) Block {
	if m := headingPattern.FindStringSubmatch(text); m != nil {
		return Block{Kind: Heading, Text: text, Level: len(m[1])}
	}
	// Code text is stored trimmed so it starts and ends on a fence.
	if trimmed := strings.TrimSpace(text); isFenced(trimmed) {
		return Block{Kind: Code, Text: trimmed}
	}
	return Block{Kind: scanLines(text), Text: text}
}

// Parse splits doc and classifies every block.
func Parse(doc string) []Block {
	pieces := Split(doc)
	blocks := make([]Block, 0, len(pieces))
	for _, p := range pieces {
		blocks = append(blocks, Classify(p))
	}
	return blocks
}

// OrderedPrefix returns the marker expected on the n-th line of an ordered
// list, counting from 1.
func OrderedPrefix(n int) string {
	return strconv.Itoa(n) + ". "
}

// isFenced needs two distinct fences, so a lone "```" is not code.
func isFenced(s string) bool {
	return len(s) >= 2*len(Fence) && strings.HasPrefix(s, Fence) && strings.HasSuffix(s, Fence)
}

func scanLines(text string) Kind {
	quote, unordered, ordered := true, true, true
	for i, line := range strings.Split(text, "\n") {
		if line == "" {
			quote, unordered, ordered = false, false, false
			break
		}
		if !strings.HasPrefix(line, ">") {
			quote = false
		}
		if !strings.HasPrefix(line, "- ") {
			unordered = false
		}
		if !strings.HasPrefix(line, OrderedPrefix(i+1)) {
			ordered = false
		}
	}

	switch {
	case quote:
		return Quote
	case unordered:
		return UnorderedList
	case ordered:
		return OrderedList
	default:
		return Paragraph
	}
}
