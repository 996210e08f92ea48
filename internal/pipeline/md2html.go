package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/alnah/go-md2html/internal/htmlnode"
)

// Sentinel errors for HTML conversion.
var (
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrInvalidEngine  = errors.New("invalid engine")
)

// Engine names a Markdown to HTML backend.
type Engine string

// Supported engines.
const (
	EngineNative   Engine = "native"
	EngineGoldmark Engine = "goldmark"
)

// DefaultEngine is used when no engine is configured.
const DefaultEngine = EngineNative

// Engines lists every supported engine name.
func Engines() []Engine {
	return []Engine{EngineNative, EngineGoldmark}
}

// ParseEngine validates an engine name. The empty string selects DefaultEngine.
func ParseEngine(name string) (Engine, error) {
	switch Engine(name) {
	case "":
		return DefaultEngine, nil
	case EngineNative, EngineGoldmark:
		return Engine(name), nil
	default:
		return "", fmt.Errorf("%w: %q (valid: %s, %s)", ErrInvalidEngine, name, EngineNative, EngineGoldmark)
	}
}

// HTMLConverter abstracts Markdown to HTML fragment conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// NewHTMLConverter returns the converter for engine.
func NewHTMLConverter(engine Engine) (HTMLConverter, error) {
	switch engine {
	case EngineNative, "":
		return &NativeConverter{}, nil
	case EngineGoldmark:
		return NewGoldmarkConverter(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidEngine, engine)
	}
}

// NativeConverter renders with the built-in block and inline parser.
// Output is the root div of the node tree.
type NativeConverter struct{}

// ToHTML parses content and renders its node tree.
func (c *NativeConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	root, err := MarkdownToNode(content)
	if err != nil {
		return "", err
	}
	out, err := htmlnode.Render(root)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHTMLConversion, err)
	}
	return out, nil
}

// GoldmarkConverter converts Markdown with goldmark (CommonMark + GFM).
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM extensions and syntax highlighting.
func NewGoldmarkConverter() *GoldmarkConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
		),
	)
	return &GoldmarkConverter{md: md}
}

// ToHTML converts content to an HTML fragment wrapped in a div, matching the
// shape of NativeConverter output.
// Goldmark has no context support, so conversion runs in a goroutine and the
// caller stops waiting once ctx is done.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: "<div>" + buf.String() + "</div>"}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
