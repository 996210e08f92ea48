package md2html

import (
	"errors"

	"github.com/alnah/go-md2html/internal/htmlnode"
	"github.com/alnah/go-md2html/internal/inline"
	"github.com/alnah/go-md2html/internal/pipeline"
)

// Engine errors. These are the same values the internal packages return,
// so errors.Is matches them through any amount of wrapping.
var (
	ErrUnbalancedDelimiter = inline.ErrUnbalancedDelimiter
	ErrStructuralInvariant = htmlnode.ErrStructuralInvariant
	ErrMissingTitle        = pipeline.ErrMissingTitle
	ErrInvalidEngine       = pipeline.ErrInvalidEngine
	ErrInvalidBasePath     = pipeline.ErrInvalidBasePath
	ErrInvalidTemplate     = pipeline.ErrInvalidTemplate
)

// UnbalancedDelimiterError carries the delimiter and text of an unbalanced span.
type UnbalancedDelimiterError = inline.UnbalancedDelimiterError

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown  = errors.New("markdown content cannot be empty")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Page settings validation errors.
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")

	// Asset loading errors.
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
