package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/fileutil"
)

// Sentinel errors for batch operations.
var (
	ErrNoInput       = errors.New("no input specified")
	ErrReadMarkdown  = errors.New("failed to read markdown file")
	ErrWriteHTML     = errors.New("failed to write HTML file")
	ErrWritePDF      = errors.New("failed to write PDF file")
	ErrConverterInit = errors.New("failed to initialize converter")
)

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	PDFPath    string // empty unless a PDF was written
	Title      string
	Write      fileutil.WriteResult
	Bytes      int
	Err        error
	Duration   time.Duration
}

// conversionParams groups parameters shared across batch/file conversion.
type conversionParams struct {
	pdf    bool
	strict bool // no file-name title fallback
	page   *md2html.PageSettings
}

// batchError reports how many files failed. It unwraps to the first
// failure so the exit code follows it.
type batchError struct {
	failed int
	first  error
}

func (e *batchError) Error() string {
	return fmt.Sprintf("%d conversion(s) failed", e.failed)
}

func (e *batchError) Unwrap() error {
	return e.first
}

// convertBatch processes files concurrently using the converter pool.
// Results keep the order of files.
func convertBatch(ctx context.Context, pool Pool, files []FileToConvert, params *conversionParams) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := pool.Size()
	if concurrency > len(files) {
		concurrency = len(files)
	}

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			conv, err := pool.Acquire()
			if err != nil {
				for idx := range jobs {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       fmt.Errorf("%w: %w", ErrConverterInit, err),
					}
				}
				return
			}
			defer pool.Release(conv)

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, conv, files[idx], params)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile renders a single file and writes the page, and the PDF when
// requested. Outputs whose bytes did not change are left untouched.
func convertFile(ctx context.Context, conv CLIConverter, f FileToConvert, params *conversionParams) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	fail := func(err error) ConversionResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return fail(fmt.Errorf("%w: %v", ErrReadMarkdown, err))
	}

	input := md2html.Input{
		Markdown:  string(content),
		SourceDir: sourceDir(f.InputPath),
		PDF:       params.pdf,
		Page:      params.page,
	}
	if !params.strict {
		input.Title = titleFromPath(f.InputPath)
	}

	res, err := conv.Convert(ctx, input)
	if err != nil {
		return fail(err)
	}
	result.Title = res.Title
	result.Bytes = len(res.HTML)

	result.Write, err = fileutil.WriteIfChanged(f.OutputPath, res.HTML)
	if err != nil {
		return fail(fmt.Errorf("%w: %v", ErrWriteHTML, err))
	}

	if params.pdf && res.PDF != nil {
		pdfPath := pdfOutputPath(f.OutputPath)
		if _, err := fileutil.WriteIfChanged(pdfPath, res.PDF); err != nil {
			return fail(fmt.Errorf("%w: %v", ErrWritePDF, err))
		}
		result.PDFPath = pdfPath
	}

	result.Duration = time.Since(start)
	return result
}

// titleFromPath derives a fallback page title from a file name:
// "docs/getting-started.md" becomes "getting-started".
func titleFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// sourceDir returns the absolute directory of path, for resolving relative
// images during PDF export.
func sourceDir(path string) string {
	dir := filepath.Dir(path)
	if abs, err := filepath.Abs(dir); err == nil {
		return abs
	}
	return dir
}

// ResultSummary counts conversion outcomes.
type ResultSummary struct {
	Written   int
	Unchanged int
	Failed    int
	Bytes     uint64
}

// countResults tallies conversion outcomes.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		switch {
		case r.Err != nil:
			summary.Failed++
		case r.Write == fileutil.Unchanged:
			summary.Unchanged++
		default:
			summary.Written++
		}
		summary.Bytes += uint64(r.Bytes)
	}
	return summary
}

// printResultsWithWriter outputs conversion results and returns the number
// of failures. Failures are always printed, with a hint when one applies.
func printResultsWithWriter(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v%s\n", r.InputPath, r.Err, hintFor(r.Err))
			continue
		}

		if quiet {
			continue
		}

		verb := "Created"
		if r.Write == fileutil.Unchanged {
			verb = "Unchanged"
		}
		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s [%s] (%s, %v)\n",
				r.InputPath, r.OutputPath, r.Write, humanize.Bytes(uint64(r.Bytes)), r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "%s %s\n", verb, r.OutputPath)
		}
		if r.PDFPath != "" {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.PDFPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%s written, %s unchanged, %s failed (%s)\n",
			humanize.Comma(int64(summary.Written)),
			humanize.Comma(int64(summary.Unchanged)),
			humanize.Comma(int64(summary.Failed)),
			humanize.Bytes(summary.Bytes))
	}

	return summary.Failed
}

// batchErr returns a batchError for the failed results, or nil.
func batchErr(results []ConversionResult) error {
	var err *batchError
	for _, r := range results {
		if r.Err == nil {
			continue
		}
		if err == nil {
			err = &batchError{first: r.Err}
		}
		err.failed++
	}
	if err == nil {
		return nil
	}
	return err
}
