// Package md2html converts Markdown documents to HTML pages.
//
// # Engine
//
// The native engine handles a deliberately small dialect: headings,
// paragraphs, fenced code, quotes, flat ordered and unordered lists, and the
// inline spans **bold**, _italic_, `code`, [links](url) and ![images](url).
// Parse and Render expose it directly:
//
//	root, err := md2html.Parse("# Hello\n\nSome **bold** text.")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out, err := md2html.Render(root)
//	// <div><h1>Hello</h1><p>Some <b>bold</b> text.</p></div>
//
// An odd number of a span delimiter on a line fails with
// ErrUnbalancedDelimiter; the error is an *UnbalancedDelimiterError naming
// the delimiter.
//
// # Pages
//
// A Converter wraps the engine output in a page template, injects a style,
// and rewrites root-relative links for sites served below the domain root:
//
//	conv, err := md2html.NewConverter(
//	    md2html.WithStyle("plain"),
//	    md2html.WithBasePath("/blog/"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	result, err := conv.Convert(ctx, md2html.Input{Markdown: content})
//	os.WriteFile("index.html", result.HTML, 0644)
//
// The title comes from the document's first line, which must be a "# "
// heading unless Input.Title supplies a fallback.
//
// Use WithEngine("goldmark") for CommonMark and GFM with syntax
// highlighting instead of the native dialect.
//
// # Custom Assets
//
// Styles and templates resolve by name from an asset directory, falling back
// to the embedded defaults:
//
//	assets/
//	├── styles/
//	│   └── custom.css
//	└── templates/
//	    └── custom.html
//
// A template must contain {{ Content }} and may contain {{ Title }}.
//
// # PDF Export
//
// Setting Input.PDF also prints the page with headless Chrome (go-rod).
// Rod downloads a managed Chromium on first run. For containers and CI,
// set ROD_NO_SANDBOX=1; use ROD_BROWSER_BIN to pick a Chrome binary.
// ConverterPool gives each worker its own browser.
package md2html
