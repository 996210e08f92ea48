package pipeline

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrInvalidBasePath indicates a site base path that is not root-relative.
var ErrInvalidBasePath = errors.New("invalid base path")

// NormalizeBasePath checks that basePath starts with "/" and makes it end with "/".
// The empty string means "/".
func NormalizeBasePath(basePath string) (string, error) {
	if basePath == "" {
		return "/", nil
	}
	if !strings.HasPrefix(basePath, "/") {
		return "", fmt.Errorf("%w: %q must start with \"/\"", ErrInvalidBasePath, basePath)
	}
	if strings.ContainsAny(basePath, "\"<> \t\n") {
		return "", fmt.Errorf("%w: %q contains characters not allowed in an attribute", ErrInvalidBasePath, basePath)
	}
	if !strings.HasSuffix(basePath, "/") {
		basePath += "/"
	}
	return basePath, nil
}

// RewriteBasePath prefixes root-relative href and src attributes with basePath,
// so a site built for "/" can be served under a sub path.
// basePath must already be normalized; "/" leaves the page unchanged.
func RewriteBasePath(page, basePath string) string {
	if basePath == "" || basePath == "/" {
		return page
	}
	r := strings.NewReplacer(
		`href="/`, `href="`+basePath,
		`src="/`, `src="`+basePath,
	)
	return r.Replace(page)
}

// RewriteRelativePaths converts image and link paths to absolute file:// URLs
// so a page loaded from a temp file still finds its resources.
// Relative paths resolve against sourceDir. Root-relative paths ("/img/a.png")
// resolve against staticDir when it is set.
// If both directories are empty, returns the HTML unchanged.
//
// Not rewritten: URLs, anchors, srcset, CSS url() references and media elements.
func RewriteRelativePaths(htmlContent, sourceDir, staticDir string) (string, error) {
	if sourceDir == "" && staticDir == "" {
		return htmlContent, nil
	}

	roots, err := newPathRoots(sourceDir, staticDir)
	if err != nil {
		return "", err
	}

	doc, isFragment, err := parseHTML(htmlContent)
	if err != nil {
		return "", err
	}

	rewriteNode(doc, roots)

	return renderHTML(doc, isFragment)
}

// pathRoots holds the absolute directories paths are resolved against.
type pathRoots struct {
	source string
	static string
}

func newPathRoots(sourceDir, staticDir string) (pathRoots, error) {
	var roots pathRoots
	var err error
	if sourceDir != "" {
		if roots.source, err = filepath.Abs(sourceDir); err != nil {
			return pathRoots{}, err
		}
	}
	if staticDir != "" {
		if roots.static, err = filepath.Abs(staticDir); err != nil {
			return pathRoots{}, err
		}
	}
	return roots, nil
}

// parseHTML parses HTML content, handling both full documents and fragments.
// Returns the parsed node, whether it was a fragment, and any error.
func parseHTML(content string) (*html.Node, bool, error) {
	trimmed := strings.ToLower(strings.TrimSpace(content))

	if strings.HasPrefix(trimmed, "<!doctype") || strings.HasPrefix(trimmed, "<html") {
		doc, err := html.Parse(strings.NewReader(content))
		return doc, false, err
	}

	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return nil, true, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}

	return container, true, nil
}

// renderHTML renders the document back to string.
// Fragments render their children only, without an <html><body> wrapper.
func renderHTML(doc *html.Node, isFragment bool) (string, error) {
	var buf strings.Builder

	if isFragment {
		for c := doc.FirstChild; c != nil; c = c.NextSibling {
			if err := html.Render(&buf, c); err != nil {
				return "", err
			}
		}
		return buf.String(), nil
	}

	if err := html.Render(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func rewriteNode(n *html.Node, roots pathRoots) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Img:
			rewriteAttr(n, "src", roots)
		case atom.A:
			rewriteAttr(n, "href", roots)
		case atom.Link:
			rewriteAttr(n, "href", roots)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteNode(c, roots)
	}
}

func rewriteAttr(n *html.Node, attrName string, roots pathRoots) {
	for i, attr := range n.Attr {
		if attr.Key != attrName {
			continue
		}

		dir, rel, ok := roots.resolve(attr.Val)
		if !ok {
			continue
		}

		absPath := filepath.Join(dir, filepath.FromSlash(rel))
		if !isPathUnderDir(absPath, dir) {
			continue
		}

		n.Attr[i].Val = pathToFileURL(absPath)
	}
}

// resolve picks the directory a path is relative to.
// ok is false for paths that must stay as written.
func (r pathRoots) resolve(path string) (dir, rel string, ok bool) {
	if path == "" || isURLOrAnchor(path) {
		return "", "", false
	}
	if strings.HasPrefix(path, "/") {
		if r.static == "" {
			return "", "", false
		}
		return r.static, strings.TrimPrefix(path, "/"), true
	}
	if filepath.IsAbs(path) || r.source == "" {
		return "", "", false
	}
	return r.source, path, true
}

func isURLOrAnchor(path string) bool {
	for _, prefix := range []string{"http://", "https://", "file://", "data:", "mailto:", "//", "#"} {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// isPathUnderDir checks if absPath is under dir (prevents path traversal).
func isPathUnderDir(absPath, dir string) bool {
	cleanPath := filepath.Clean(absPath)
	cleanDir := filepath.Clean(dir)

	if !strings.HasSuffix(cleanDir, string(filepath.Separator)) {
		cleanDir += string(filepath.Separator)
	}

	return strings.HasPrefix(cleanPath+string(filepath.Separator), cleanDir)
}

// pathToFileURL converts an absolute path to a file:// URL.
func pathToFileURL(absPath string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(absPath),
	}
	return u.String()
}
