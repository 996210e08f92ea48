package main

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("empty name returns defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := loadConfig("")
		if err != nil {
			t.Fatalf("loadConfig() unexpected error: %v", err)
		}
		if cfg.Site.OutputDir != "docs" {
			t.Errorf("OutputDir = %q, want docs", cfg.Site.OutputDir)
		}
	})

	t.Run("file path", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "site.yaml")
		writeFile(t, path, "engine: goldmark\nsite:\n  basePath: /blog/\n")

		cfg, err := loadConfig(path)
		if err != nil {
			t.Fatalf("loadConfig() unexpected error: %v", err)
		}
		if cfg.Engine != "goldmark" || cfg.Site.BasePath != "/blog/" {
			t.Errorf("cfg = %+v, want goldmark engine and /blog/", cfg)
		}
	})

	t.Run("missing file carries a hint", func(t *testing.T) {
		t.Parallel()

		_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		if !errors.Is(err, config.ErrConfigNotFound) {
			t.Fatalf("loadConfig() error = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), "hint:") {
			t.Errorf("error = %q, want a hint", err)
		}
	})
}

func TestMergeFlags(t *testing.T) {
	t.Parallel()

	t.Run("CLI wins over config", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Engine = "goldmark"
		cfg.CSS.Style = "plain"

		flags := &convertFlags{
			workers: 3,
			timeout: "45s",
			pdf:     true,
			render:  renderFlags{engine: "native", basePath: "/site/"},
			assets:  assetFlags{template: "page", assetPath: "assets"},
			page:    pageFlags{size: "a4", orientation: "landscape", margin: 1},
		}
		if err := mergeFlags(flags, cfg); err != nil {
			t.Fatalf("mergeFlags() unexpected error: %v", err)
		}

		if cfg.Engine != "native" {
			t.Errorf("Engine = %q, want native", cfg.Engine)
		}
		if cfg.CSS.Style != "plain" {
			t.Errorf("Style = %q, want config value kept", cfg.CSS.Style)
		}
		if cfg.Site.BasePath != "/site/" || cfg.Site.Template != "page" || cfg.Assets.Dir != "assets" {
			t.Errorf("site = %+v, assets = %+v", cfg.Site, cfg.Assets)
		}
		if cfg.Workers != 3 || !cfg.PDF.Enabled || cfg.PDF.Timeout != "45s" {
			t.Errorf("workers/pdf = %d %+v", cfg.Workers, cfg.PDF)
		}
		if cfg.PDF.Page.Size != "a4" || cfg.PDF.Page.Orientation != "landscape" || cfg.PDF.Page.Margin != 1 {
			t.Errorf("page = %+v", cfg.PDF.Page)
		}
	})

	t.Run("no-style clears the style", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		flags := &convertFlags{assets: assetFlags{style: "plain", noStyle: true}}
		if err := mergeFlags(flags, cfg); err != nil {
			t.Fatalf("mergeFlags() unexpected error: %v", err)
		}
		if cfg.CSS.Style != "" {
			t.Errorf("Style = %q, want empty", cfg.CSS.Style)
		}
	})

	t.Run("invalid values rejected", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name  string
			flags *convertFlags
			want  error
		}{
			{"engine", &convertFlags{render: renderFlags{engine: "pandoc"}}, config.ErrInvalidField},
			{"base path", &convertFlags{render: renderFlags{basePath: "blog"}}, config.ErrInvalidField},
			{"timeout", &convertFlags{timeout: "soon"}, config.ErrInvalidField},
			{"page size", &convertFlags{page: pageFlags{size: "a3"}}, config.ErrInvalidField},
			{"workers", &convertFlags{workers: config.MaxWorkers + 1}, ErrInvalidWorkerCount},
		}
		for _, tt := range tests {
			err := mergeFlags(tt.flags, config.DefaultConfig())
			if !errors.Is(err, tt.want) {
				t.Errorf("%s: mergeFlags() error = %v, want %v", tt.name, err, tt.want)
			}
		}
	})
}

func TestMergeBuildFlags(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	flags := &buildFlags{
		content: "pages",
		static:  "public",
		output:  "site",
		workers: 2,
		render:  renderFlags{basePath: "/docs/"},
	}
	if err := mergeBuildFlags(flags, cfg); err != nil {
		t.Fatalf("mergeBuildFlags() unexpected error: %v", err)
	}

	want := config.SiteConfig{ContentDir: "pages", StaticDir: "public", OutputDir: "site", BasePath: "/docs/"}
	if cfg.Site != want {
		t.Errorf("Site = %+v, want %+v", cfg.Site, want)
	}
	if cfg.Workers != 2 {
		t.Errorf("Workers = %d, want 2", cfg.Workers)
	}
}

func TestPageSettings(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	if got := pageSettings(cfg); got != nil {
		t.Errorf("pageSettings(defaults) = %+v, want nil", got)
	}

	cfg.PDF.Page = config.PageConfig{Size: "A4"}
	got := pageSettings(cfg)
	if got == nil {
		t.Fatal("pageSettings() = nil, want settings")
	}
	want := md2html.PageSettings{Size: "a4", Orientation: md2html.OrientationPortrait, Margin: md2html.DefaultMargin}
	if *got != want {
		t.Errorf("pageSettings() = %+v, want %+v", *got, want)
	}
	if err := got.Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
}

func TestConverterOptions(t *testing.T) {
	t.Parallel()

	static := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Site.StaticDir = static
	cfg.Site.BasePath = "/blog/"
	cfg.CSS.Style = "body{color:red}"
	cfg.PDF.Timeout = "10s"

	conv, err := md2html.NewConverter(converterOptions(cfg)...)
	if err != nil {
		t.Fatalf("NewConverter() unexpected error: %v", err)
	}
	defer conv.Close()

	if conv.Engine() != "native" {
		t.Errorf("Engine() = %q, want native", conv.Engine())
	}

	res, err := conv.Convert(t.Context(), md2html.Input{Markdown: "# T\n\n[home](/index.html)"})
	if err != nil {
		t.Fatalf("Convert() unexpected error: %v", err)
	}
	page := string(res.HTML)
	if !strings.Contains(page, `href="/blog/index.html"`) {
		t.Errorf("page = %q, want base path applied", page)
	}
	if !strings.Contains(page, "color:red") {
		t.Errorf("page = %q, want inline style", page)
	}
}
