package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/k0kubun/pp"
	"github.com/mattn/go-isatty"

	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/htmlnode"
)

// ErrDumpTreeOutput is returned when --dump-tree is combined with --output.
var ErrDumpTreeOutput = errors.New("--dump-tree prints to stdout and cannot be combined with --output")

// runConvert converts one file or a directory of files to HTML pages.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, cfg *config.Config, pool Pool, env *Environment) error {
	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}

	files, err := discoverFiles(inputPath, flags.output)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %s", ErrNoMarkdownFiles, inputPath)
	}

	if flags.dumpTree {
		if flags.output != "" {
			return ErrDumpTreeOutput
		}
		return dumpTrees(ctx, pool, files, env)
	}

	// Surface option errors (bad style, template, engine) once, before
	// every worker reports the same failure.
	if err := warmUp(pool); err != nil {
		return err
	}

	params := &conversionParams{
		pdf:    cfg.PDF.Enabled,
		strict: flags.render.strict,
		page:   pageSettings(cfg),
	}
	results := convertBatch(ctx, pool, files, params)

	printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, env)
	return batchErr(results)
}

// resolveInputPath determines the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Site.ContentDir != "" {
		return cfg.Site.ContentDir, nil
	}
	return "", ErrNoInput
}

// warmUp creates one converter so invalid options fail fast.
func warmUp(pool Pool) error {
	conv, err := pool.Acquire()
	if err != nil {
		return err
	}
	pool.Release(conv)
	return nil
}

// dumpTrees pretty-prints the node tree of each file to stdout.
func dumpTrees(ctx context.Context, pool Pool, files []FileToConvert, env *Environment) error {
	conv, err := pool.Acquire()
	if err != nil {
		return err
	}
	defer pool.Release(conv)

	for _, f := range files {
		content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
		if err != nil {
			return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		}

		tree, err := conv.Tree(ctx, string(content))
		if err != nil {
			return fmt.Errorf("%s: %w", f.InputPath, err)
		}

		if len(files) > 1 {
			fmt.Fprintf(env.Stdout, "==> %s <==\n", f.InputPath)
		}
		configureDumpColor(env.Stdout)
		if _, err := pp.Fprintln(env.Stdout, newDumpNode(tree)); err != nil {
			return err
		}
	}
	return nil
}

// dumpColorOnce guards pp.ColoringEnabled, a package global read on every
// print. It is decided once, from the first dump's writer.
var dumpColorOnce sync.Once

// configureDumpColor keeps ANSI escapes out of redirected output.
func configureDumpColor(w io.Writer) {
	dumpColorOnce.Do(func() {
		pp.ColoringEnabled = isTerminal(w)
	})
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// dumpNode mirrors htmlnode.Node with the kind spelled out, since pp prints
// integer kinds as numbers.
type dumpNode struct {
	Kind     string
	Tag      string
	Value    string
	Attrs    htmlnode.Attrs
	Children []*dumpNode
}

func newDumpNode(n *htmlnode.Node) *dumpNode {
	if n == nil {
		return nil
	}
	d := &dumpNode{Kind: n.Kind.String(), Tag: n.Tag, Value: n.Value, Attrs: n.Attrs}
	for _, c := range n.Children {
		d.Children = append(d.Children, newDumpNode(c))
	}
	return d
}
