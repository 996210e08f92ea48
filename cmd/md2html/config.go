package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/hints"
)

// loadConfig loads the named config, or the defaults when name is empty.
func loadConfig(name string) (*config.Config, error) {
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(configSearchPaths(name)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// configSearchPaths lists where a config name would be created for the
// user-level lookup. Paths are returned as-is.
func configSearchPaths(name string) []string {
	if strings.ContainsAny(name, `/\`) {
		return []string{name}
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil
	}
	return []string{filepath.Join(dir, "go-md2html", name+".yaml")}
}

// mergeRenderFlags merges flags shared by convert and build. CLI values
// override config values.
func mergeRenderFlags(render *renderFlags, assets *assetFlags, cfg *config.Config) {
	if render.engine != "" {
		cfg.Engine = render.engine
	}
	if render.basePath != "" {
		cfg.Site.BasePath = render.basePath
	}
	if assets.style != "" {
		cfg.CSS.Style = assets.style
	}
	if assets.noStyle {
		cfg.CSS.Style = ""
	}
	if assets.template != "" {
		cfg.Site.Template = assets.template
	}
	if assets.assetPath != "" {
		cfg.Assets.Dir = assets.assetPath
	}
}

// mergeFlags merges convert flags into config and validates the result.
// CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}
	mergeRenderFlags(&flags.render, &flags.assets, cfg)

	if flags.workers > 0 {
		cfg.Workers = flags.workers
	}
	if flags.pdf {
		cfg.PDF.Enabled = true
	}
	if flags.timeout != "" {
		cfg.PDF.Timeout = flags.timeout
	}
	if flags.page.size != "" {
		cfg.PDF.Page.Size = flags.page.size
	}
	if flags.page.orientation != "" {
		cfg.PDF.Page.Orientation = flags.page.orientation
	}
	if flags.page.margin != 0 {
		cfg.PDF.Page.Margin = flags.page.margin
	}

	return validateMerged(cfg)
}

// mergeBuildFlags merges build flags into config and validates the result.
func mergeBuildFlags(flags *buildFlags, cfg *config.Config) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}
	mergeRenderFlags(&flags.render, &flags.assets, cfg)

	if flags.workers > 0 {
		cfg.Workers = flags.workers
	}
	if flags.content != "" {
		cfg.Site.ContentDir = flags.content
	}
	if flags.static != "" {
		cfg.Site.StaticDir = flags.static
	}
	if flags.output != "" {
		cfg.Site.OutputDir = flags.output
	}

	return validateMerged(cfg)
}

func validateMerged(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}

// converterOptions translates config into converter options.
func converterOptions(cfg *config.Config) []md2html.Option {
	opts := []md2html.Option{
		md2html.WithEngine(cfg.Engine),
		md2html.WithStyle(cfg.CSS.Style),
		md2html.WithBasePath(cfg.Site.BasePath),
	}
	if cfg.Site.Template != "" {
		opts = append(opts, md2html.WithTemplate(cfg.Site.Template))
	}
	if cfg.Assets.Dir != "" {
		opts = append(opts, md2html.WithAssetPath(cfg.Assets.Dir))
	}
	if fileutil.DirExists(cfg.Site.StaticDir) {
		if abs, err := filepath.Abs(cfg.Site.StaticDir); err == nil {
			opts = append(opts, md2html.WithStaticDir(abs))
		}
	}
	// Validate has already rejected malformed timeouts.
	if d, err := cfg.PDFTimeout(); err == nil && d > 0 {
		opts = append(opts, md2html.WithTimeout(d))
	}
	return opts
}

// pageSettings builds PDF page settings from config. Returns nil when no
// page field is set, which means defaults.
func pageSettings(cfg *config.Config) *md2html.PageSettings {
	p := cfg.PDF.Page
	if p.Size == "" && p.Orientation == "" && p.Margin == 0 {
		return nil
	}

	settings := md2html.DefaultPageSettings()
	if p.Size != "" {
		settings.Size = strings.ToLower(p.Size)
	}
	if p.Orientation != "" {
		settings.Orientation = strings.ToLower(p.Orientation)
	}
	if p.Margin != 0 {
		settings.Margin = p.Margin
	}
	return settings
}
