package main

// Notes:
// - exitCodeFor: we test the sentinel errors from md2html, config and this
//   package, plus wrapped errors to verify the errors.Is chain.

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		// Success
		{"nil error", nil, ExitSuccess},

		// Browser errors (exit 4)
		{"browser connect", md2html.ErrBrowserConnect, ExitBrowser},
		{"page create", md2html.ErrPageCreate, ExitBrowser},
		{"page load", md2html.ErrPageLoad, ExitBrowser},
		{"pdf generation", md2html.ErrPDFGeneration, ExitBrowser},
		{"wrapped browser connect", fmt.Errorf("converting to PDF: %w", md2html.ErrBrowserConnect), ExitBrowser},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"not a directory", fileutil.ErrNotDirectory, ExitIO},
		{"read markdown", ErrReadMarkdown, ExitIO},
		{"write html", ErrWriteHTML, ExitIO},
		{"write pdf", ErrWritePDF, ExitIO},
		{"no input", ErrNoInput, ExitIO},
		{"no markdown files", ErrNoMarkdownFiles, ExitIO},

		// Usage/config/markdown errors (exit 2)
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"invalid field", config.ErrInvalidField, ExitUsage},
		{"empty markdown", md2html.ErrEmptyMarkdown, ExitUsage},
		{"unbalanced delimiter", &md2html.UnbalancedDelimiterError{Delimiter: "**", Text: "**a"}, ExitUsage},
		{"missing title", md2html.ErrMissingTitle, ExitUsage},
		{"invalid engine", md2html.ErrInvalidEngine, ExitUsage},
		{"invalid base path", md2html.ErrInvalidBasePath, ExitUsage},
		{"invalid template", md2html.ErrInvalidTemplate, ExitUsage},
		{"invalid page size", md2html.ErrInvalidPageSize, ExitUsage},
		{"style not found", md2html.ErrStyleNotFound, ExitUsage},
		{"template not found", md2html.ErrTemplateNotFound, ExitUsage},
		{"invalid extension", ErrInvalidExtension, ExitUsage},
		{"invalid workers", ErrInvalidWorkerCount, ExitUsage},
		{"output overlap", ErrOutputOverlap, ExitUsage},
		{"config not found beats not exist", fmt.Errorf("%w: %w", config.ErrConfigNotFound, os.ErrNotExist), ExitUsage},

		// Batch failures follow the first error
		{"batch of missing titles", &batchError{failed: 2, first: md2html.ErrMissingTitle}, ExitUsage},
		{"batch of write errors", &batchError{failed: 1, first: ErrWriteHTML}, ExitIO},

		// General (exit 1)
		{"unknown error", errors.New("boom"), ExitGeneral},
		{"canceled", context.Canceled, ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodes_BelowReserved(t *testing.T) {
	t.Parallel()

	for _, code := range []int{ExitSuccess, ExitGeneral, ExitUsage, ExitIO, ExitBrowser} {
		if code >= 126 {
			t.Errorf("exit code %d collides with shell-reserved codes", code)
		}
	}
}
