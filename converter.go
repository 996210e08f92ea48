package md2html

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.SourcePreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.NativeConverter)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.PageAssembler        = (*pipeline.PageTemplate)(nil)
	_ pipeline.CSSInjector          = (*pipeline.CSSInjection)(nil)
	_ pdfConverter                  = (*chromePrinter)(nil)
)

// Converter turns Markdown documents into complete HTML pages, and
// optionally PDFs. Create with NewConverter, call Convert per document, and
// Close when done. A Converter is not safe for concurrent Convert calls when
// PDF export is used; use ConverterPool for parallel work.
type Converter struct {
	cfg               converterConfig
	assetLoader       assets.Loader
	publicAssetLoader AssetLoader
	preprocessor      pipeline.MarkdownPreprocessor
	htmlConverter     pipeline.HTMLConverter
	pageAssembler     pipeline.PageAssembler
	cssInjector       pipeline.CSSInjector
	pdfConverter      pdfConverter
}

// NewConverter creates a Converter. With no options it uses the native
// engine, the built-in "default" style and the built-in "page" template.
// Returns an error if the engine, base path, style, or template is invalid.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			timeout:       defaultTimeout,
			engine:        pipeline.DefaultEngine,
			styleInput:    DefaultStyle,
			templateInput: DefaultTemplate,
		},
		assetLoader:  assets.NewEmbeddedLoader(),
		preprocessor: &pipeline.SourcePreprocessor{},
		cssInjector:  &pipeline.CSSInjection{},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		c.assetLoader = resolver
	}
	if c.publicAssetLoader != nil {
		c.assetLoader = c.publicAssetLoader
	}

	basePath, err := pipeline.NormalizeBasePath(c.cfg.basePath)
	if err != nil {
		return nil, err
	}
	c.cfg.basePath = basePath

	if c.htmlConverter == nil {
		engine, err := pipeline.ParseEngine(string(c.cfg.engine))
		if err != nil {
			return nil, err
		}
		if c.htmlConverter, err = pipeline.NewHTMLConverter(engine); err != nil {
			return nil, err
		}
		c.cfg.engine = engine
	}

	if err := c.resolveStyle(); err != nil {
		return nil, err
	}

	if c.pageAssembler == nil {
		tmpl, err := c.resolveTemplate()
		if err != nil {
			return nil, err
		}
		if c.pageAssembler, err = pipeline.NewPageTemplate(tmpl); err != nil {
			return nil, err
		}
	}

	// The browser itself starts lazily on the first PDF request.
	if c.pdfConverter == nil {
		c.pdfConverter = newChromePrinter(c.cfg.timeout)
	}

	return c, nil
}

// Convert runs the full pipeline and returns the page.
// The title comes from the document's leading "# " heading, falling back to
// input.Title. Recovers from internal panics to prevent crashes from
// propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := c.validateInput(input); err != nil {
		return nil, err
	}

	mdContent := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	title, err := pipeline.ExtractTitle(mdContent)
	if err != nil {
		if input.Title == "" {
			return nil, err
		}
		title = input.Title
	}

	content, err := c.htmlConverter.ToHTML(ctx, mdContent)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	page, err := c.pageAssembler.AssemblePage(ctx, pipeline.PageData{Title: title, Content: content})
	if err != nil {
		return nil, fmt.Errorf("assembling page: %w", err)
	}

	cssContent := c.cfg.resolvedStyle
	if input.CSS != "" {
		cssContent = strings.TrimSpace(cssContent + "\n" + input.CSS)
	}
	page = c.cssInjector.InjectCSS(ctx, page, cssContent)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	res := &ConvertResult{
		Title: title,
		HTML:  []byte(pipeline.RewriteBasePath(page, c.cfg.basePath)),
	}

	if !input.PDF {
		return res, nil
	}

	// The PDF is rendered from local files, so links resolve against disk
	// rather than the site base path.
	local, err := pipeline.RewriteRelativePaths(page, input.SourceDir, c.cfg.staticDir)
	if err != nil {
		return nil, fmt.Errorf("rewriting relative paths: %w", err)
	}

	pdfBytes, err := c.pdfConverter.ToPDF(ctx, local, input.Page)
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}
	res.PDF = pdfBytes

	return res, nil
}

// Tree parses a preprocessed document into its node tree without rendering
// a page. Used for debugging output such as the CLI's --dump-tree.
func (c *Converter) Tree(ctx context.Context, markdown string) (*Node, error) {
	mdContent := c.preprocessor.PreprocessMarkdown(ctx, markdown)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Parse(mdContent)
}

// Engine reports the configured engine name.
func (c *Converter) Engine() string {
	return string(c.cfg.engine)
}

// Close releases resources (headless Chrome browser).
func (c *Converter) Close() error {
	if c.pdfConverter != nil {
		return c.pdfConverter.Close()
	}
	return nil
}

// resolveStyle resolves the style input (name, path, or CSS content) to CSS content.
func (c *Converter) resolveStyle() error {
	input := c.cfg.styleInput
	if input == "" {
		return nil
	}

	if fileutil.IsFilePath(input) && !fileutil.IsCSS(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		c.cfg.resolvedStyle = string(content)
		return nil
	}

	if fileutil.IsCSS(input) {
		c.cfg.resolvedStyle = input
		return nil
	}

	css, err := c.assetLoader.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, convertAssetError(err, ErrStyleNotFound))
	}
	c.cfg.resolvedStyle = css
	return nil
}

// resolveTemplate resolves the template input (name, path, or markup).
func (c *Converter) resolveTemplate() (string, error) {
	input := c.cfg.templateInput
	if input == "" {
		input = DefaultTemplate
	}

	if strings.Contains(input, pipeline.ContentPlaceholder) {
		return input, nil
	}

	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return "", fmt.Errorf("loading template file %q: %w", input, err)
		}
		return string(content), nil
	}

	tmpl, err := c.assetLoader.LoadTemplate(input)
	if err != nil {
		return "", fmt.Errorf("loading template %q: %w", input, convertAssetError(err, ErrTemplateNotFound))
	}
	return tmpl, nil
}

// validateInput checks that required fields are present and valid.
func (c *Converter) validateInput(input Input) error {
	if strings.TrimSpace(input.Markdown) == "" {
		return ErrEmptyMarkdown
	}
	return input.Page.Validate()
}
