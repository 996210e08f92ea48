package assets

import (
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed styles/*.css templates/*.html
var builtin embed.FS

// EmbeddedLoader serves the styles and templates compiled into the binary.
type EmbeddedLoader struct{}

func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	return e.load(Style, name)
}

func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	return e.load(Template, name)
}

func (e *EmbeddedLoader) load(k Kind, name string) (string, error) {
	if err := CheckName(name); err != nil {
		return "", err
	}
	data, err := builtin.ReadFile(k.Path(name))
	if err != nil {
		return "", k.missing(name)
	}
	return string(data), nil
}

// StyleNames lists the built-in style names, sorted.
func StyleNames() []string {
	matches, _ := fs.Glob(builtin, Style.Path("*"))
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(path.Base(m), ".css"))
	}
	sort.Strings(names)
	return names
}

var _ Loader = (*EmbeddedLoader)(nil)
