package main

import (
	"errors"
	"os"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/fileutil"
)

// Exit codes for the md2html CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Every page written
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or markdown the engine rejects
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors during --pdf
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, md2html.ErrBrowserConnect) ||
		errors.Is(err, md2html.ErrPageCreate) ||
		errors.Is(err, md2html.ErrPageLoad) ||
		errors.Is(err, md2html.ErrPDFGeneration) {
		return ExitBrowser
	}

	// Usage/config/validation errors (exit 2). Checked before I/O so a
	// missing config file reports as a usage problem.
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidField) ||
		errors.Is(err, md2html.ErrEmptyMarkdown) ||
		errors.Is(err, md2html.ErrUnbalancedDelimiter) ||
		errors.Is(err, md2html.ErrMissingTitle) ||
		errors.Is(err, md2html.ErrInvalidEngine) ||
		errors.Is(err, md2html.ErrInvalidBasePath) ||
		errors.Is(err, md2html.ErrInvalidTemplate) ||
		errors.Is(err, md2html.ErrInvalidPageSize) ||
		errors.Is(err, md2html.ErrInvalidOrientation) ||
		errors.Is(err, md2html.ErrInvalidMargin) ||
		errors.Is(err, md2html.ErrStyleNotFound) ||
		errors.Is(err, md2html.ErrTemplateNotFound) ||
		errors.Is(err, md2html.ErrInvalidAssetPath) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrDumpTreeOutput) ||
		errors.Is(err, ErrOutputOverlap) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, fileutil.ErrNotDirectory) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWriteHTML) ||
		errors.Is(err, ErrWritePDF) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrNoMarkdownFiles) {
		return ExitIO
	}

	return ExitGeneral
}
