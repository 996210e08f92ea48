package pipeline

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
)

// Page template placeholders.
const (
	TitlePlaceholder   = "{{ Title }}"
	ContentPlaceholder = "{{ Content }}"
)

// ErrInvalidTemplate indicates a page template without a content placeholder.
var ErrInvalidTemplate = errors.New("invalid page template")

// PageData holds the values substituted into a page template.
type PageData struct {
	Title   string
	Content string
}

// PageAssembler defines the contract for filling a page template.
type PageAssembler interface {
	AssemblePage(ctx context.Context, data PageData) (string, error)
}

// PageTemplate fills {{ Title }} and {{ Content }} in a full HTML page.
// Content is inserted verbatim. The title is HTML-escaped.
type PageTemplate struct {
	source string
}

// NewPageTemplate validates tmpl and returns a PageTemplate.
// The template must contain the content placeholder; the title placeholder is optional.
func NewPageTemplate(tmpl string) (*PageTemplate, error) {
	if !strings.Contains(tmpl, ContentPlaceholder) {
		return nil, fmt.Errorf("%w: missing %s placeholder", ErrInvalidTemplate, ContentPlaceholder)
	}
	return &PageTemplate{source: tmpl}, nil
}

// AssemblePage substitutes every placeholder occurrence.
func (p *PageTemplate) AssemblePage(ctx context.Context, data PageData) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	r := strings.NewReplacer(
		TitlePlaceholder, html.EscapeString(data.Title),
		ContentPlaceholder, data.Content,
	)
	return r.Replace(p.source), nil
}

// CSSInjector defines the contract for CSS injection into HTML.
type CSSInjector interface {
	InjectCSS(ctx context.Context, htmlContent, cssContent string) string
}

// CSSInjection injects CSS as a <style> block into HTML content.
type CSSInjection struct{}

// InjectCSS inserts a <style> block into HTML content.
// Tries </head> first, then <body>, then prepends to the HTML.
// CSS content is sanitized so it cannot close the style element.
func (s *CSSInjection) InjectCSS(ctx context.Context, htmlContent, cssContent string) string {
	if cssContent == "" {
		return htmlContent
	}

	if ctx.Err() != nil {
		return htmlContent
	}

	styleBlock := "<style>" + sanitizeCSS(cssContent) + "</style>"
	lowerHTML := strings.ToLower(htmlContent)

	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}

	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		closeIdx := strings.Index(htmlContent[idx:], ">")
		if closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + styleBlock + htmlContent[insertPos:]
		}
	}

	return styleBlock + htmlContent
}

// sanitizeCSS escapes </ so the stylesheet cannot terminate its style element.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
