package md2html

import (
	"errors"

	"github.com/alnah/go-md2html/internal/assets"
)

// Asset name constants for built-in styles and templates.
const (
	// DefaultStyle is the name of the built-in CSS style.
	DefaultStyle = assets.DefaultStyleName

	// DefaultTemplate is the name of the built-in page template.
	DefaultTemplate = assets.DefaultTemplateName
)

// AssetLoader defines the contract for loading CSS styles and page templates.
// Implement it to serve assets from somewhere other than the filesystem.
type AssetLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	LoadStyle(name string) (string, error)

	// LoadTemplate loads a page template by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	LoadTemplate(name string) (string, error)
}

// NewAssetLoader creates an AssetLoader for the given directory.
// If dir is empty, returns a loader using only embedded assets.
// If dir is set, its styles/{name}.css and templates/{name}.html take
// precedence, with fallback to the embedded defaults.
//
// Returns ErrInvalidAssetPath if dir is set but not a readable directory.
func NewAssetLoader(dir string) (AssetLoader, error) {
	resolver, err := assets.NewAssetResolver(dir)
	if err != nil {
		return nil, convertAssetError(err, ErrInvalidAssetPath)
	}
	return &assetLoaderAdapter{resolver: resolver}, nil
}

// BuiltinStyles lists the names of the embedded styles.
func BuiltinStyles() []string {
	return assets.StyleNames()
}

// assetLoaderAdapter maps internal asset errors to public ones.
type assetLoaderAdapter struct {
	resolver *assets.AssetResolver
}

func (a *assetLoaderAdapter) LoadStyle(name string) (string, error) {
	content, err := a.resolver.LoadStyle(name)
	if err != nil {
		return "", convertAssetError(err, ErrStyleNotFound)
	}
	return content, nil
}

func (a *assetLoaderAdapter) LoadTemplate(name string) (string, error) {
	content, err := a.resolver.LoadTemplate(name)
	if err != nil {
		return "", convertAssetError(err, ErrTemplateNotFound)
	}
	return content, nil
}

// convertAssetError maps internal asset errors to public sentinels while
// keeping the original message. An invalid name maps to notFound.
func convertAssetError(err, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, assets.ErrStyleNotFound):
		return &assetError{sentinel: ErrStyleNotFound, original: err}
	case errors.Is(err, assets.ErrTemplateNotFound):
		return &assetError{sentinel: ErrTemplateNotFound, original: err}
	case errors.Is(err, assets.ErrInvalidAssetDir),
		errors.Is(err, assets.ErrOutsideAssetDir):
		return &assetError{sentinel: ErrInvalidAssetPath, original: err}
	case errors.Is(err, assets.ErrInvalidAssetName):
		return &assetError{sentinel: notFound, original: err}
	default:
		return err
	}
}

type assetError struct {
	sentinel error
	original error
}

func (e *assetError) Error() string {
	return e.original.Error()
}

// Unwrap returns the public sentinel for errors.Is matching.
// Internal errors are not exposed since they live in internal/ packages.
func (e *assetError) Unwrap() error {
	return e.sentinel
}
