// Package pipeline implements the Markdown-to-HTML conversion pipeline.
//
// Stages, in the order a page goes through them:
//   - Source preprocessing (byte order mark, line endings, blank lines)
//   - Tree building: blocks and inline spans become an htmlnode tree
//     (MarkdownToNode), or goldmark renders the document directly
//   - Page assembly: the rendered fragment and title fill a page template
//   - CSS injection and base-path rewriting
//
// PDF generation is handled separately by the root md2html package using
// headless Chrome (go-rod); RewriteRelativePaths prepares pages for it.
package pipeline
