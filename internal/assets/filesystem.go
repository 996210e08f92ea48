package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FilesystemLoader serves assets from a site's own asset directory, laid
// out as styles/{name}.css and templates/{name}.html.
type FilesystemLoader struct {
	root string // absolute, symlinks resolved
}

// NewFilesystemLoader opens dir as an asset root.
// Returns ErrInvalidAssetDir unless dir is an existing, listable directory.
func NewFilesystemLoader(dir string) (*FilesystemLoader, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidAssetDir)
	}
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetDir, err)
	}
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}

	info, err := os.Stat(root)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: %s does not exist", ErrInvalidAssetDir, root)
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetDir, err)
	case !info.IsDir():
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInvalidAssetDir, root)
	}
	if _, err := os.ReadDir(root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetDir, err)
	}
	return &FilesystemLoader{root: root}, nil
}

func (f *FilesystemLoader) LoadStyle(name string) (string, error) {
	return f.load(Style, name)
}

func (f *FilesystemLoader) LoadTemplate(name string) (string, error) {
	return f.load(Template, name)
}

func (f *FilesystemLoader) load(k Kind, name string) (string, error) {
	if err := CheckName(name); err != nil {
		return "", err
	}
	file, err := f.contain(filepath.Join(f.root, filepath.FromSlash(k.Path(name))))
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(file) // #nosec G304 -- contained in root
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", k.missing(name)
	case err != nil:
		return "", fmt.Errorf("%w: %s %q: %v", ErrUnreadableAsset, k, name, err)
	}
	return string(data), nil
}

// contain resolves symlinks in file and returns the result when it is still
// below the root. A file that does not exist yet keeps its lexical path.
func (f *FilesystemLoader) contain(file string) (string, error) {
	if resolved, err := filepath.EvalSymlinks(file); err == nil {
		file = resolved
	}
	if !strings.HasPrefix(file, f.root+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrOutsideAssetDir, file)
	}
	return file, nil
}

var _ Loader = (*FilesystemLoader)(nil)
