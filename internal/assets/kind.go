package assets

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

var (
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidAssetName = errors.New("invalid asset name")
	ErrInvalidAssetDir  = errors.New("invalid asset directory")
	ErrUnreadableAsset  = errors.New("cannot read asset")
	ErrOutsideAssetDir  = errors.New("asset resolves outside its directory")
)

// Loader reads site styles and page templates by bare name.
type Loader interface {
	LoadStyle(name string) (string, error)
	LoadTemplate(name string) (string, error)
}

// Kind is the category of a site asset. It decides where the file lives
// inside an asset directory and which error reports it missing.
type Kind int

const (
	Style Kind = iota
	Template
)

func (k Kind) String() string {
	if k == Template {
		return "template"
	}
	return "style"
}

// Path returns the slash-separated location of name below an asset root,
// e.g. "styles/default.css" or "templates/page.html".
func (k Kind) Path(name string) string {
	if k == Template {
		return path.Join("templates", name+".html")
	}
	return path.Join("styles", name+".css")
}

func (k Kind) missing(name string) error {
	if k == Template {
		return fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}
	return fmt.Errorf("%w: %q", ErrStyleNotFound, name)
}

// CheckName rejects names that could leave the asset directory or pick a
// different extension. Only a single path element without dots passes.
func CheckName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	case strings.ContainsAny(name, `/\.`):
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}

func isMissing(err error) bool {
	return errors.Is(err, ErrStyleNotFound) || errors.Is(err, ErrTemplateNotFound)
}
