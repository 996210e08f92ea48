package main

import (
	"context"
	"errors"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/hints"
)

// hintFor returns the actionable hint for err, or "" when none applies.
func hintFor(err error) string {
	var unbalanced *md2html.UnbalancedDelimiterError
	switch {
	case errors.As(err, &unbalanced):
		return hints.ForUnbalancedDelimiter(unbalanced.Delimiter)
	case errors.Is(err, md2html.ErrMissingTitle):
		return hints.ForMissingTitle()
	case errors.Is(err, md2html.ErrInvalidEngine):
		return hints.ForInvalidEngine(md2html.Engines())
	case errors.Is(err, md2html.ErrStyleNotFound):
		return hints.ForStyleNotFound(md2html.BuiltinStyles())
	case errors.Is(err, md2html.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, ErrWriteHTML), errors.Is(err, ErrWritePDF):
		return hints.ForOutputDirectory()
	}
	return ""
}
