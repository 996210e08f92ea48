package pipeline

import (
	"errors"
	"strings"
)

// ErrMissingTitle indicates the document does not open with a level-1 heading.
var ErrMissingTitle = errors.New("no title found: first line must start with \"# \"")

const titleMarker = "# "

// ExtractTitle returns the text of the document's first line when that line
// is a level-1 heading. Leading blank lines and surrounding whitespace are
// ignored.
func ExtractTitle(markdown string) (string, error) {
	first, _, _ := strings.Cut(strings.TrimSpace(markdown), "\n")
	first = strings.TrimSpace(first)
	if !strings.HasPrefix(first, titleMarker) {
		return "", ErrMissingTitle
	}
	return strings.TrimSpace(first[len(titleMarker):]), nil
}
