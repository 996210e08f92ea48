package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/fileutil"
)

// ErrOutputOverlap is returned when the site output directory contains, or
// is contained in, a source directory. Pruning it would delete sources.
var ErrOutputOverlap = errors.New("output directory overlaps a source directory")

// buildSummary describes one site build.
type buildSummary struct {
	pages    ResultSummary
	static   fileutil.CopyStats
	removed  int
	duration time.Duration
}

// runBuild mirrors the static directory into the output directory, renders
// every markdown file under the content directory, then removes output
// files that neither step produced.
func runBuild(ctx context.Context, flags *buildFlags, cfg *config.Config, pool Pool, env *Environment) error {
	start := env.Now()
	site := cfg.Site

	if site.OutputDir == "" {
		return fmt.Errorf("%w: site.outputDir is empty", config.ErrInvalidField)
	}
	if !fileutil.DirExists(site.ContentDir) {
		return fmt.Errorf("content directory %q: %w", site.ContentDir, os.ErrNotExist)
	}
	for _, src := range []string{site.ContentDir, site.StaticDir} {
		if src != "" && overlaps(src, site.OutputDir) {
			return fmt.Errorf("%w: %s and %s", ErrOutputOverlap, src, site.OutputDir)
		}
	}

	keep := make(map[string]bool)
	var summary buildSummary

	if fileutil.DirExists(site.StaticDir) {
		stats, err := fileutil.CopyDir(site.StaticDir, site.OutputDir)
		if err != nil {
			return fmt.Errorf("copying static files: %w", err)
		}
		for _, rel := range stats.Copied {
			keep[rel] = true
		}
		summary.static = stats
	} else if flags.common.verbose && site.StaticDir != "" {
		fmt.Fprintf(env.Stderr, "No static directory at %s, skipping copy\n", site.StaticDir)
	}

	files, err := discoverFiles(site.ContentDir, site.OutputDir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %s", ErrNoMarkdownFiles, site.ContentDir)
	}
	// A page that fails to render keeps its previous output.
	for _, f := range files {
		if rel, err := filepath.Rel(site.OutputDir, f.OutputPath); err == nil {
			keep[rel] = true
		}
	}

	if err := warmUp(pool); err != nil {
		return err
	}

	results := convertBatch(ctx, pool, files, &conversionParams{strict: flags.render.strict})
	printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, env)
	if err := batchErr(results); err != nil {
		return err
	}
	summary.pages = countResults(results)

	if !flags.noPrune {
		summary.removed, err = fileutil.Prune(site.OutputDir, keep)
		if err != nil {
			return err
		}
	}

	summary.duration = env.Now().Sub(start)
	if !flags.common.quiet {
		printBuildSummary(summary, site.OutputDir, env)
	}
	return nil
}

// printBuildSummary writes a one-line report of the build.
func printBuildSummary(s buildSummary, outputDir string, env *Environment) {
	fmt.Fprintf(env.Stdout, "Built %s: %s pages (%s unchanged), %s static files (%s, %s unchanged), %s removed in %v\n",
		outputDir,
		humanize.Comma(int64(s.pages.Written+s.pages.Unchanged)),
		humanize.Comma(int64(s.pages.Unchanged)),
		humanize.Comma(int64(s.static.Files)),
		humanize.Bytes(uint64(s.static.Bytes)),
		humanize.Comma(int64(s.static.Unchanged)),
		humanize.Comma(int64(s.removed)),
		s.duration.Round(time.Millisecond))
}

// overlaps reports whether one of a and b is inside the other.
func overlaps(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return false
	}
	return within(absA, absB) || within(absB, absA)
}

// within reports whether path is dir or below it.
func within(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
