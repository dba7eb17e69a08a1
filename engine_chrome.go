package resumepdf

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-resumepdf/internal/fileutil"
)

// chromeEngine is the HTML+print layout engine: blocks become an HTML
// document which headless Chrome prints to PDF via go-rod. Rod downloads a
// Chromium on first run when none is found.
type chromeEngine struct {
	timeout time.Duration
	browser *rod.Browser

	// per-document state, reset by Begin
	builder *htmlBuilder
	setup   PageSetup
	html    string // final HTML, kept for Result.HTML
}

// newChromeEngine creates a chromeEngine. The browser launches lazily on
// the first Finalize so that pure-HTML use never needs Chrome.
func newChromeEngine(timeout time.Duration) *chromeEngine {
	return &chromeEngine{timeout: timeout}
}

// Begin starts a new document.
func (e *chromeEngine) Begin(setup PageSetup) error {
	e.setup = setup
	e.builder = newHTMLBuilder()
	e.html = ""
	return nil
}

// Add renders one block into the pending HTML body.
func (e *chromeEngine) Add(block Block) error {
	if e.builder == nil {
		return fmt.Errorf("%w: Add before Begin", ErrPDFGeneration)
	}
	e.builder.addBlock(block)
	return nil
}

// HTML returns the assembled document, building it on first call after the
// last Add.
func (e *chromeEngine) HTML() string {
	if e.html == "" && e.builder != nil {
		e.html = e.builder.document(buildResumeCSS(e.setup))
	}
	return e.html
}

// Finalize prints the assembled HTML to PDF bytes.
func (e *chromeEngine) Finalize() ([]byte, error) {
	htmlContent := e.HTML()
	if htmlContent == "" {
		return nil, fmt.Errorf("%w: Finalize before Begin", ErrPDFGeneration)
	}

	tmpPath, cleanup, err := fileutil.WriteTemp(htmlContent, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return e.renderFile(tmpPath)
}

// ensureBrowser lazily launches and connects to the browser.
func (e *chromeEngine) ensureBrowser() error {
	if e.browser != nil {
		return nil
	}

	l := launcher.New()

	// Use a pre-installed browser if specified (Docker/containerized
	// environments).
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments.
	if os.Getenv("CI") == "true" || os.Getenv("ROD_NO_SANDBOX") == "1" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %w: %v", ErrBackendUnavailable, ErrBrowserConnect, err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		return fmt.Errorf("%w: %w: %v", ErrBackendUnavailable, ErrBrowserConnect, err)
	}
	e.browser = browser
	return nil
}

// renderFile opens a local HTML file in headless Chrome and prints it.
func (e *chromeEngine) renderFile(path string) ([]byte, error) {
	if err := e.ensureBrowser(); err != nil {
		return nil, err
	}

	page, err := e.browser.Page(proto.TargetCreateTarget{URL: "file://" + path})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer func() { _ = page.Close() }()

	if err := page.Timeout(e.timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	reader, err := page.PDF(&proto.PagePrintToPDF{
		PaperWidth:      floatPtr(e.setup.WidthIn),
		PaperHeight:     floatPtr(e.setup.HeightIn),
		MarginTop:       floatPtr(e.setup.MarginIn),
		MarginBottom:    floatPtr(e.setup.MarginIn),
		MarginLeft:      floatPtr(e.setup.MarginIn),
		MarginRight:     floatPtr(e.setup.MarginIn),
		PrintBackground: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}
	return pdfBuf, nil
}

// Close releases browser resources.
func (e *chromeEngine) Close() error {
	if e.browser != nil {
		err := e.browser.Close()
		e.browser = nil
		return err
	}
	return nil
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}
