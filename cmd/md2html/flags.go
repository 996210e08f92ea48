package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// renderFlags holds flags that shape every generated page.
type renderFlags struct {
	engine   string
	basePath string
	strict   bool // no file-name title fallback
}

// assetFlags holds style and template flags.
type assetFlags struct {
	style     string // name, file path, or inline CSS
	template  string // name, file path, or inline markup
	assetPath string // directory searched before the built-ins
	noStyle   bool
}

// pageFlags holds PDF page layout flags.
type pageFlags struct {
	size        string
	orientation string
	margin      float64
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common   commonFlags
	output   string
	workers  int
	timeout  string
	pdf      bool
	dumpTree bool
	render   renderFlags
	assets   assetFlags
	page     pageFlags
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common  commonFlags
	content string
	static  string
	output  string
	workers int
	noPrune bool
	render  renderFlags
	assets  assetFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show timings and sizes")
}

// addRenderFlags adds page rendering flags to a FlagSet.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.StringVarP(&f.engine, "engine", "e", "", "markdown engine: native, goldmark")
	fs.StringVar(&f.basePath, "base-path", "", "URL prefix for root-relative links, e.g. /blog/")
	fs.BoolVar(&f.strict, "strict", false, "fail on pages without a leading \"# \" heading")
}

// addAssetFlags adds asset-related flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.style, "style", "", "CSS style name or file path")
	fs.StringVar(&f.template, "template", "", "page template name or file path")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.BoolVar(&f.noStyle, "no-style", false, "disable CSS styling")
}

// addPageFlags adds PDF page layout flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.size, "page-size", "p", "", "PDF page size: letter, a4, legal")
	fs.StringVar(&f.orientation, "orientation", "", "PDF orientation: portrait, landscape")
	fs.Float64Var(&f.margin, "margin", 0, "PDF margin in inches (0.25-3.0)")
}

// parseConvertFlags parses convert command flags and returns positional args.
// Errors and usage are written to w.
func parseConvertFlags(args []string, w io.Writer) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(w)
	f := &convertFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF generation timeout (e.g., 30s, 2m)")
	fs.BoolVar(&f.pdf, "pdf", false, "also write a PDF next to each page")
	fs.BoolVar(&f.dumpTree, "dump-tree", false, "print the parsed node tree instead of writing pages")

	addCommonFlags(fs, &f.common)
	addRenderFlags(fs, &f.render)
	addAssetFlags(fs, &f.assets)
	addPageFlags(fs, &f.page)

	fs.Usage = func() { printConvertUsage(w) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string, w io.Writer) (*buildFlags, []string, error) {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	fs.SetOutput(w)
	f := &buildFlags{}

	fs.StringVar(&f.content, "content", "", "markdown source directory (default \"content\")")
	fs.StringVar(&f.static, "static", "", "static asset directory (default \"static\")")
	fs.StringVarP(&f.output, "output", "o", "", "site output directory (default \"docs\")")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.noPrune, "no-prune", false, "keep output files no source produced")

	addCommonFlags(fs, &f.common)
	addRenderFlags(fs, &f.render)
	addAssetFlags(fs, &f.assets)

	fs.Usage = func() { printBuildUsage(w) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
