package inline

import (
	"errors"
	"fmt"
)

// ErrUnbalancedDelimiter indicates a delimiter without its closing pair.
var ErrUnbalancedDelimiter = errors.New("unbalanced delimiter")

// UnbalancedDelimiterError reports the delimiter and the text it was found in.
type UnbalancedDelimiterError struct {
	Delimiter string
	Text      string
}

func (e *UnbalancedDelimiterError) Error() string {
	return fmt.Sprintf("%v: closing %q not found in %q", ErrUnbalancedDelimiter, e.Delimiter, e.Text)
}

func (e *UnbalancedDelimiterError) Unwrap() error {
	return ErrUnbalancedDelimiter
}
