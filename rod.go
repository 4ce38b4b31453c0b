package resume2pdf

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-resume2pdf/internal/fileutil"
	"github.com/alnah/go-resume2pdf/internal/process"
)

// Engine names for the library strategy.
const (
	EngineRod      = "rod"
	EngineChromedp = "chromedp"
)

// Compile-time interface checks
var (
	_ Renderer = (*rodRenderer)(nil)
	_ Renderer = (*chromedpRenderer)(nil)
)

// rodRenderer renders through headless Chrome driven by go-rod.
// The browser is launched lazily on the first Render and reused until Close.
type rodRenderer struct {
	cfg browserConfig

	mu       sync.Mutex
	launcher *launcher.Launcher
	browser  *rod.Browser
}

func newRodRenderer(cfg browserConfig) *rodRenderer {
	return &rodRenderer{cfg: cfg}
}

func (r *rodRenderer) Strategy() Strategy { return StrategyLibrary }
func (r *rodRenderer) Name() string       { return EngineRod }

// Available reports whether a Chrome binary can be used without a download.
func (r *rodRenderer) Available(_ context.Context) error {
	if _, err := locateChrome(r.cfg.bin); err != nil {
		return err
	}
	return nil
}

// ensureBrowser launches and connects to Chrome if not already running.
func (r *rodRenderer) ensureBrowser() (*rod.Browser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.browser != nil {
		return r.browser, nil
	}

	l := launcher.New()
	if bin, err := locateChrome(r.cfg.bin); err == nil {
		l = l.Bin(bin)
	}
	if r.cfg.noSandbox {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		l.Kill()
		return nil, fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		process.KillProcessGroup(l.PID())
		l.Kill()
		return nil, fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	r.launcher = l
	r.browser = browser
	return browser, nil
}

// Render loads the source page, injects the print stylesheet and prints it.
func (r *rodRenderer) Render(ctx context.Context, job Job) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if r.cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.timeout)
		defer cancel()
	}

	browser, err := r.ensureBrowser()
	if err != nil {
		return nil, err
	}

	page, err := browser.Context(ctx).Page(proto.TargetCreateTarget{URL: FileURL(job.Source)})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer func() { _ = page.Close() }()

	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	pg := job.Page.orDefault()
	if err := page.AddStyleTag("", sanitizeCSS(stylesheetFor(job.CSS, pg))); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStyleInject, err)
	}

	if err := sleepContext(ctx, r.cfg.jsDelay); err != nil {
		return nil, err
	}

	reader, err := page.PDF(buildRodPDFOptions(pg))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}

	return writePDF(job.Output, pdfBuf, StrategyLibrary, EngineRod)
}

// buildRodPDFOptions maps page settings onto Chrome's PrintToPDF parameters.
func buildRodPDFOptions(pg *PageSettings) *proto.PagePrintToPDF {
	width, height := pg.paperInches()
	margin := pg.marginInches()

	return &proto.PagePrintToPDF{
		Landscape:         pg.landscape(),
		PaperWidth:        floatPtr(width),
		PaperHeight:       floatPtr(height),
		MarginTop:         floatPtr(margin),
		MarginBottom:      floatPtr(margin),
		MarginLeft:        floatPtr(margin),
		MarginRight:       floatPtr(margin),
		PrintBackground:   true,
		PreferCSSPageSize: false,
	}
}

// Close disconnects from the browser and kills its whole process group.
func (r *rodRenderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var err error
	if r.browser != nil {
		err = r.browser.Close()
		r.browser = nil
	}
	if r.launcher != nil {
		process.KillProcessGroup(r.launcher.PID())
		r.launcher.Kill()
		r.launcher.Cleanup()
		r.launcher = nil
	}
	return err
}

// locateChrome resolves the Chrome binary: explicit path, then PATH lookup,
// then a Chromium previously downloaded into rod's cache.
func locateChrome(bin string) (string, error) {
	if bin != "" {
		if fileutil.FileExists(bin) {
			return bin, nil
		}
		return "", fmt.Errorf("%w: chrome binary not found at %s", ErrRendererUnavailable, bin)
	}
	if path, found := launcher.LookPath(); found {
		return path, nil
	}
	if cached := launcher.NewBrowser().BinPath(); fileutil.FileExists(cached) {
		return cached, nil
	}
	return "", fmt.Errorf("%w: chrome/chromium not found", ErrRendererUnavailable)
}

// sleepContext waits for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}
