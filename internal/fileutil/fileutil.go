// Package fileutil provides file and path helpers shared by the converter
// and the site builder.
package fileutil

import (
	"fmt"
	"os"
	"strings"
)

// WriteTempHTML stages an assembled page in the temp directory so a browser
// can load it by path. The caller removes it with cleanup.
func WriteTempHTML(page string) (path string, cleanup func(), err error) {
	f, err := os.CreateTemp("", "md2html-*.html")
	if err != nil {
		return "", nil, fmt.Errorf("staging page: %w", err)
	}
	path = f.Name()
	cleanup = func() { _ = os.Remove(path) }

	_, err = f.WriteString(page)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		cleanup()
		return "", nil, fmt.Errorf("staging page: %w", err)
	}
	return path, cleanup, nil
}

// FileExists reports whether path names something other than a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// DirExists reports whether path names a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// IsFilePath reports whether a style or template option names a file
// ("./site.css", `C:\x\page.html`) rather than a built-in ("default").
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, `/\`)
}

// IsCSS reports whether a style option carries inline rules.
func IsCSS(s string) bool {
	return strings.Contains(s, "{")
}
