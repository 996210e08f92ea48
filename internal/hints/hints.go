// Package hints builds the "hint:" lines the CLI appends to error messages.
// Every hint starts with "\n  hint: " so it can follow any error text, and an
// empty string means there is nothing useful to suggest.
package hints

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2html/internal/fileutil"
)

const prefix = "\n  hint: "

// IsInContainer reports whether the process runs in Docker. Tests replace it.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ciVars are set by the CI systems whose runners need Chrome's sandbox off.
var ciVars = []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL"}

func inCI() bool {
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			return true
		}
	}
	return false
}

// ForBrowserConnect suggests the rod environment variables that usually fix
// a Chrome launch failure during --pdf export.
func ForBrowserConnect() string {
	var tips []string
	if (inCI() || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		tips = append(tips, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		tips = append(tips, "set ROD_BROWSER_BIN to use custom Chrome")
	}
	return line(strings.Join(tips, "; "))
}

func ForTimeout() string {
	return line("for large documents, use --timeout flag")
}

// ForConfigNotFound points at --config, and at the per-user config file
// when it is among the searched paths.
func ForConfigNotFound(searched []string) string {
	tip := "use --config /path/to/file.yaml"
	for _, p := range searched {
		if strings.Contains(filepath.ToSlash(p), "go-md2html/") {
			return line(tip + " or create " + p)
		}
	}
	return line(tip)
}

func ForOutputDirectory() string {
	return line("check parent directory exists and is writable")
}

func ForStyleNotFound(available []string) string {
	return choices("available", available)
}

func ForInvalidEngine(engines []string) string {
	return choices("valid engines", engines)
}

// ForUnbalancedDelimiter names the span left open by the native engine.
func ForUnbalancedDelimiter(delimiter string) string {
	if delimiter == "" {
		return ""
	}
	return line("close the " + delimiter + " span, or use --engine goldmark for lenient parsing")
}

func ForMissingTitle() string {
	return line(`start the file with a level-1 heading such as "# Title"`)
}

func choices(label string, options []string) string {
	if len(options) == 0 {
		return ""
	}
	return line(label + ": " + strings.Join(options, ", "))
}

func line(tip string) string {
	if tip == "" {
		return ""
	}
	return prefix + tip
}
