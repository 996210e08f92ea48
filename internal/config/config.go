// Package config loads and validates YAML configuration for site builds
// and single-file conversions.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidField    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength     = 4096 // PATH_MAX on Linux
	MaxBasePathLength = 512
	MaxAssetNameLen   = 100 // style and template names
	MaxDurationLength = 20  // "1m30s"
	MaxPageSizeLength = 10  // "letter", "a4", "legal"
	MaxOrientationLen = 10  // "portrait", "landscape"
)

// MaxWorkers caps the configurable worker count.
const MaxWorkers = 32

// Known engine names, mirrored from the pipeline package.
var validEngines = []string{"native", "goldmark"}

// Config holds all configuration for page generation.
type Config struct {
	Site    SiteConfig   `yaml:"site"`
	CSS     CSSConfig    `yaml:"css"`
	Assets  AssetsConfig `yaml:"assets"`
	Engine  string       `yaml:"engine"`  // "native" (default) or "goldmark"
	PDF     PDFConfig    `yaml:"pdf"`
	Workers int          `yaml:"workers"` // 0 = auto
}

// SiteConfig defines where a site build reads and writes.
type SiteConfig struct {
	ContentDir string `yaml:"contentDir"` // Markdown sources
	StaticDir  string `yaml:"staticDir"`  // Copied verbatim into OutputDir
	OutputDir  string `yaml:"outputDir"`
	BasePath   string `yaml:"basePath"` // URL prefix for root-relative links, e.g. "/blog/"
	Template   string `yaml:"template"` // Template name or path (empty = built-in page)
}

// CSSConfig defines CSS styling options.
type CSSConfig struct {
	Style string `yaml:"style"` // Style name, file path, or empty for none
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	Dir string `yaml:"dir"` // Custom asset directory (empty = embedded only)
}

// PDFConfig defines optional PDF export.
type PDFConfig struct {
	Enabled bool       `yaml:"enabled"`
	Timeout string     `yaml:"timeout"` // Go duration, e.g. "30s"
	Page    PageConfig `yaml:"page"`
}

// PageConfig defines PDF page settings.
type PageConfig struct {
	Size        string  `yaml:"size"`        // "letter", "a4", "legal"
	Orientation string  `yaml:"orientation"` // "portrait", "landscape"
	Margin      float64 `yaml:"margin"`      // inches (0 = default)
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			ContentDir: "content",
			StaticDir:  "static",
			OutputDir:  "docs",
			BasePath:   "/",
		},
		CSS:    CSSConfig{Style: "default"},
		Engine: "native",
	}
}

// Validate checks field lengths and values.
// Called automatically by LoadConfig, but available for callers who build
// a Config by hand.
func (c *Config) Validate() error {
	lengths := []struct {
		field string
		value string
		max   int
	}{
		{"site.contentDir", c.Site.ContentDir, MaxPathLength},
		{"site.staticDir", c.Site.StaticDir, MaxPathLength},
		{"site.outputDir", c.Site.OutputDir, MaxPathLength},
		{"site.basePath", c.Site.BasePath, MaxBasePathLength},
		{"site.template", c.Site.Template, MaxPathLength},
		{"css.style", c.CSS.Style, MaxPathLength},
		{"assets.dir", c.Assets.Dir, MaxPathLength},
		{"pdf.timeout", c.PDF.Timeout, MaxDurationLength},
		{"pdf.page.size", c.PDF.Page.Size, MaxPageSizeLength},
		{"pdf.page.orientation", c.PDF.Page.Orientation, MaxOrientationLen},
	}
	for _, l := range lengths {
		if err := validateFieldLength(l.field, l.value, l.max); err != nil {
			return err
		}
	}

	if c.Engine != "" && !contains(validEngines, c.Engine) {
		return fmt.Errorf("%w: engine %q (must be %s)", ErrInvalidField, c.Engine, strings.Join(validEngines, " or "))
	}
	if c.Site.BasePath != "" && !strings.HasPrefix(c.Site.BasePath, "/") {
		return fmt.Errorf("%w: site.basePath %q must start with \"/\"", ErrInvalidField, c.Site.BasePath)
	}
	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers must be between 0 and %d, got %d", ErrInvalidField, MaxWorkers, c.Workers)
	}
	if _, err := c.PDFTimeout(); err != nil {
		return err
	}
	return c.PDF.Page.validate()
}

// PDFTimeout parses pdf.timeout. An empty value returns 0 (use the default).
func (c *Config) PDFTimeout() (time.Duration, error) {
	if c.PDF.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.PDF.Timeout)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: pdf.timeout %q must be a positive duration", ErrInvalidField, c.PDF.Timeout)
	}
	return d, nil
}

func (p PageConfig) validate() error {
	if p.Size != "" && !contains([]string{"letter", "a4", "legal"}, strings.ToLower(p.Size)) {
		return fmt.Errorf("%w: pdf.page.size %q (must be letter, a4, or legal)", ErrInvalidField, p.Size)
	}
	if p.Orientation != "" && !contains([]string{"portrait", "landscape"}, strings.ToLower(p.Orientation)) {
		return fmt.Errorf("%w: pdf.page.orientation %q (must be portrait or landscape)", ErrInvalidField, p.Orientation)
	}
	if p.Margin != 0 && (p.Margin < 0.25 || p.Margin > 3) {
		return fmt.Errorf("%w: pdf.page.margin must be between 0.25 and 3, got %.2f", ErrInvalidField, p.Margin)
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields absent from the file keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !isFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := decodeStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, {UserConfigDir}/go-md2html/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-md2html", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
