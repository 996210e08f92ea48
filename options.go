package md2html

import (
	"time"

	"github.com/alnah/go-md2html/internal/pipeline"
)

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	timeout       time.Duration
	engine        pipeline.Engine
	styleInput    string // name, path, or CSS content
	resolvedStyle string
	templateInput string // name, path, or template content
	basePath      string
	assetPath     string
	staticDir     string
}

// defaultTimeout bounds PDF rendering when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the PDF rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("md2html: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithEngine selects the Markdown backend by name ("native" or "goldmark").
// An unknown name makes NewConverter fail with ErrInvalidEngine.
func WithEngine(name string) Option {
	return func(c *Converter) {
		c.cfg.engine = pipeline.Engine(name)
	}
}

// WithStyle sets the CSS style: a built-in name, a file path, or raw CSS.
// An empty string disables styling.
func WithStyle(style string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = style
	}
}

// WithTemplate sets the page template: a built-in name, a file path, or
// template markup containing {{ Content }}.
func WithTemplate(tmpl string) Option {
	return func(c *Converter) {
		c.cfg.templateInput = tmpl
	}
}

// WithBasePath prefixes root-relative href and src values with basePath,
// for sites served below the domain root (e.g. "/blog/").
func WithBasePath(basePath string) Option {
	return func(c *Converter) {
		c.cfg.basePath = basePath
	}
}

// WithAssetPath loads styles and templates from dir before the built-ins.
func WithAssetPath(dir string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = dir
	}
}

// WithAssetLoader replaces the asset source entirely.
func WithAssetLoader(loader AssetLoader) Option {
	return func(c *Converter) {
		c.publicAssetLoader = loader
	}
}

// WithStaticDir tells PDF export where root-relative paths ("/images/a.png")
// live on disk.
func WithStaticDir(dir string) Option {
	return func(c *Converter) {
		c.cfg.staticDir = dir
	}
}
