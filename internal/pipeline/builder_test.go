package pipeline

import (
	"errors"
	"testing"

	"github.com/alnah/go-md2html/internal/htmlnode"
	"github.com/alnah/go-md2html/internal/inline"
)

// renderMarkdown builds and renders doc, failing the test on any error.
func renderMarkdown(t *testing.T, doc string) string {
	t.Helper()

	root, err := MarkdownToNode(doc)
	if err != nil {
		t.Fatalf("MarkdownToNode(%q) unexpected error: %v", doc, err)
	}
	got, err := htmlnode.Render(root)
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	return got
}

// ---------------------------------------------------------------------------
// TestMarkdownToNode - Block Kinds
// ---------------------------------------------------------------------------

func TestMarkdownToNode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "title heading",
			doc:  "# Title",
			want: "<div><h1>Title</h1></div>",
		},
		{
			name: "heading levels",
			doc:  "## Two\n\n###### Six",
			want: "<div><h2>Two</h2><h6>Six</h6></div>",
		},
		{
			name: "heading keeps inline markup",
			doc:  "# A **bold** title",
			want: "<div><h1>A <b>bold</b> title</h1></div>",
		},
		{
			name: "heading keeps hashes inside its text",
			doc:  "# C# notes",
			want: "<div><h1>C# notes</h1></div>",
		},
		{
			name: "seven hashes render as a paragraph",
			doc:  "####### too deep",
			want: "<div><p>####### too deep</p></div>",
		},
		{
			name: "plain paragraph is unchanged",
			doc:  "Just some plain words",
			want: "<div><p>Just some plain words</p></div>",
		},
		{
			name: "paragraph lines are joined with spaces",
			doc:  "first line\nsecond line",
			want: "<div><p>first line second line</p></div>",
		},
		{
			name: "paragraph inline markup",
			doc:  "This is **bolded** paragraph text in a p tag here\n\nThis is another paragraph with _italic_ text and `code` here",
			want: "<div><p>This is <b>bolded</b> paragraph text in a p tag here</p><p>This is another paragraph with <i>italic</i> text and <code>code</code> here</p></div>",
		},
		{
			name: "unordered list",
			doc:  "- a\n- b",
			want: "<div><ul><li>a</li><li>b</li></ul></div>",
		},
		{
			name: "ordered list",
			doc:  "1. first\n2. **second**",
			want: "<div><ol><li>first</li><li><b>second</b></li></ol></div>",
		},
		{
			name: "ordered list with two-digit numbers",
			doc:  "1. a\n2. b\n3. c\n4. d\n5. e\n6. f\n7. g\n8. h\n9. i\n10. j",
			want: "<div><ol><li>a</li><li>b</li><li>c</li><li>d</li><li>e</li><li>f</li><li>g</li><li>h</li><li>i</li><li>j</li></ol></div>",
		},
		{
			name: "broken numbering is a paragraph",
			doc:  "1. a\n3. b",
			want: "<div><p>1. a 3. b</p></div>",
		},
		{
			name: "code block",
			doc:  "```\ncode here\n```",
			want: "<div><pre><code>code here\n</code></pre></div>",
		},
		{
			name: "code block content is literal",
			doc:  "```\n_x_ and **y**\n```",
			want: "<div><pre><code>_x_ and **y**\n</code></pre></div>",
		},
		{
			name: "code block with unbalanced delimiters does not fail",
			doc:  "```\nsnake_case\n```",
			want: "<div><pre><code>snake_case\n</code></pre></div>",
		},
		{
			name: "quote",
			doc:  "> quoted\n> text",
			want: "<div><blockquote>quoted text</blockquote></div>",
		},
		{
			name: "quote with a bare marker line",
			doc:  "> a\n>\n> b",
			want: "<div><blockquote>a b</blockquote></div>",
		},
		{
			name: "heading keeps a hash that starts its text",
			doc:  "## #tag",
			want: "<div><h2>#tag</h2></div>",
		},
		{
			name: "quote without spaces",
			doc:  ">a\n>_b_",
			want: "<div><blockquote>a <i>b</i></blockquote></div>",
		},
		{
			name: "link and image",
			doc:  "See [docs](https://example.com) and ![logo](/img/logo.png)",
			want: `<div><p>See <a href="https://example.com">docs</a> and <img src="/img/logo.png" alt="logo"></img></p></div>`,
		},
		{
			name: "raw HTML is not escaped",
			doc:  "a < b & c",
			want: "<div><p>a < b & c</p></div>",
		},
		{
			name: "mixed document",
			doc:  "# Doc\n\nIntro\n\n- x\n- y\n\n> note",
			want: "<div><h1>Doc</h1><p>Intro</p><ul><li>x</li><li>y</li></ul><blockquote>note</blockquote></div>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := renderMarkdown(t, tt.doc); got != tt.want {
				t.Errorf("render(%q)\n got %q\nwant %q", tt.doc, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestMarkdownToNode - Empty Content
// ---------------------------------------------------------------------------

func TestMarkdownToNode_EmptyInlineContent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "empty list item",
			doc:  "- \n- b",
			want: "<div><ul><li></li><li>b</li></ul></div>",
		},
		{
			name: "empty quote",
			doc:  ">",
			want: "<div><blockquote></blockquote></div>",
		},
		{
			name: "empty delimited spans are kept",
			doc:  "x **** y",
			want: "<div><p>x <b></b> y</p></div>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := renderMarkdown(t, tt.doc); got != tt.want {
				t.Errorf("render(%q)\n got %q\nwant %q", tt.doc, got, tt.want)
			}
		})
	}
}

func TestMarkdownToNode_EmptyDocument(t *testing.T) {
	t.Parallel()

	root, err := MarkdownToNode("\n\n  \n")
	if err != nil {
		t.Fatalf("MarkdownToNode() unexpected error: %v", err)
	}
	if len(root.Children) != 0 {
		t.Fatalf("root has %d children, want 0", len(root.Children))
	}
	if _, err := htmlnode.Render(root); !errors.Is(err, htmlnode.ErrStructuralInvariant) {
		t.Errorf("Render(empty root) error = %v, want ErrStructuralInvariant", err)
	}
}

// ---------------------------------------------------------------------------
// TestMarkdownToNode - Errors
// ---------------------------------------------------------------------------

func TestMarkdownToNode_Unbalanced(t *testing.T) {
	t.Parallel()

	docs := []string{
		"this is **not closed",
		"# a _b",
		"- ok\n- `broken",
		"> fine\n> not **fine",
	}

	for _, doc := range docs {
		root, err := MarkdownToNode(doc)
		if err == nil {
			t.Errorf("MarkdownToNode(%q) = %v, want error", doc, root)
			continue
		}
		if !errors.Is(err, inline.ErrUnbalancedDelimiter) {
			t.Errorf("MarkdownToNode(%q) error = %v, want ErrUnbalancedDelimiter", doc, err)
		}
	}
}

func TestMarkdownToNode_ErrorNamesBlock(t *testing.T) {
	t.Parallel()

	_, err := MarkdownToNode("ok\n\n# bad **")
	if err == nil {
		t.Fatal("MarkdownToNode() expected error, got nil")
	}
	want := "block 2 (heading): unbalanced delimiter: closing \"**\" not found in \"bad **\""
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

// ---------------------------------------------------------------------------
// TestSpanToNode
// ---------------------------------------------------------------------------

func TestSpanToNode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		span inline.Span
		want string
	}{
		{"plain", inline.Span{Kind: inline.Plain, Text: "text"}, "text"},
		{"bold", inline.Span{Kind: inline.Bold, Text: "b"}, "<b>b</b>"},
		{"italic", inline.Span{Kind: inline.Italic, Text: "i"}, "<i>i</i>"},
		{"code", inline.Span{Kind: inline.Code, Text: "c"}, "<code>c</code>"},
		{"link", inline.Span{Kind: inline.Link, Text: "go", URL: "https://go.dev"}, `<a href="https://go.dev">go</a>`},
		{"image", inline.Span{Kind: inline.Image, Text: "alt", URL: "u.png"}, `<img src="u.png" alt="alt"></img>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			n, err := SpanToNode(tt.span)
			if err != nil {
				t.Fatalf("SpanToNode() unexpected error: %v", err)
			}
			if !n.IsLeaf() {
				t.Errorf("SpanToNode() kind = %v, want leaf", n.Kind)
			}
			got, err := n.Render()
			if err != nil {
				t.Fatalf("Render() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSpanToNode_UnknownKind(t *testing.T) {
	t.Parallel()

	_, err := SpanToNode(inline.Span{Kind: inline.SpanKind(99)})
	if !errors.Is(err, htmlnode.ErrStructuralInvariant) {
		t.Errorf("SpanToNode() error = %v, want ErrStructuralInvariant", err)
	}
}

func TestTextToChildren(t *testing.T) {
	t.Parallel()

	t.Run("empty text yields one empty text leaf", func(t *testing.T) {
		t.Parallel()

		children, err := TextToChildren("")
		if err != nil {
			t.Fatalf("TextToChildren() unexpected error: %v", err)
		}
		if len(children) != 1 {
			t.Fatalf("len(children) = %d, want 1", len(children))
		}
		if children[0].Tag != "" || children[0].Value != "" {
			t.Errorf("child = %+v, want empty text leaf", children[0])
		}
	})

	t.Run("one leaf per span", func(t *testing.T) {
		t.Parallel()

		children, err := TextToChildren("a **b** _c_")
		if err != nil {
			t.Fatalf("TextToChildren() unexpected error: %v", err)
		}
		wantTags := []string{"", "b", "", "i"}
		if len(children) != len(wantTags) {
			t.Fatalf("len(children) = %d, want %d", len(children), len(wantTags))
		}
		for i, c := range children {
			if c.Tag != wantTags[i] {
				t.Errorf("children[%d].Tag = %q, want %q", i, c.Tag, wantTags[i])
			}
		}
	})
}
