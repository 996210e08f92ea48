package md2html

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-md2html/internal/fileutil"
)

// pdfConverter prints an assembled page to PDF.
type pdfConverter interface {
	ToPDF(ctx context.Context, page string, settings *PageSettings) ([]byte, error)
	Close() error
}

// printFunc prints the page stored at path with the given request.
type printFunc func(ctx context.Context, path string, req *proto.PagePrintToPDF) ([]byte, error)

// chromePrinter prints pages through a headless Chrome that is started on
// first use and kept for the converter's lifetime. Rod downloads Chromium
// when no browser binary is found.
type chromePrinter struct {
	timeout time.Duration
	browser *rod.Browser
	print   printFunc // printFile unless replaced in tests
}

func newChromePrinter(timeout time.Duration) *chromePrinter {
	p := &chromePrinter{timeout: timeout}
	p.print = p.printFile
	return p
}

// ToPDF stages page in a temp file so Chrome loads it from disk, where the
// file:// links produced by the relative path rewrite resolve.
func (p *chromePrinter) ToPDF(ctx context.Context, page string, settings *PageSettings) ([]byte, error) {
	path, cleanup, err := fileutil.WriteTempHTML(page)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return p.print(ctx, path, printRequest(settings))
}

func (p *chromePrinter) Close() error {
	if p.browser == nil {
		return nil
	}
	err := p.browser.Close()
	p.browser = nil
	return err
}

func (p *chromePrinter) printFile(ctx context.Context, path string, req *proto.PagePrintToPDF) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := p.connect(); err != nil {
		return nil, err
	}

	tab, err := p.browser.Page(proto.TargetCreateTarget{URL: "file://" + path})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer tab.Close()

	wait := p.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if wait = time.Until(deadline); wait <= 0 {
			return nil, context.DeadlineExceeded
		}
	}
	if err := tab.Timeout(wait).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stream, err := tab.PDF(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("%w: reading stream: %v", ErrPDFGeneration, err)
	}
	return data, nil
}

// connect launches Chrome once. ROD_BROWSER_BIN selects the binary and
// ROD_NO_SANDBOX=1 (or CI=true) disables the sandbox, which containers need.
func (p *chromePrinter) connect() error {
	if p.browser != nil {
		return nil
	}

	l := launcher.New()
	bin := os.Getenv("ROD_BROWSER_BIN")
	if bin != "" {
		l = l.Bin(bin)
	}
	if bin != "" || os.Getenv("ROD_NO_SANDBOX") == "1" || os.Getenv("CI") == "true" {
		l = l.NoSandbox(true)
	}

	controlURL, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	p.browser = browser
	return nil
}

// printRequest maps page settings onto Chrome's print parameters. Nil
// settings print on the default page.
func printRequest(settings *PageSettings) *proto.PagePrintToPDF {
	if settings == nil {
		settings = DefaultPageSettings()
	}
	width, height := settings.dimensions()
	m := settings.Margin

	return &proto.PagePrintToPDF{
		PaperWidth:      &width,
		PaperHeight:     &height,
		MarginTop:       &m,
		MarginBottom:    &m,
		MarginLeft:      &m,
		MarginRight:     &m,
		PrintBackground: true,
	}
}
