package resume2pdf

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// injectStyleScript appends a <style> element with the given CSS to <head>.
const injectStyleScript = `(function(css) {
  var style = document.createElement('style');
  style.textContent = css;
  (document.head || document.documentElement).appendChild(style);
  return true;
})(%s)`

// chromedpRenderer renders through headless Chrome driven by chromedp.
// A fresh browser is allocated per Render; the résumé is a single page.
type chromedpRenderer struct {
	cfg browserConfig
}

func newChromedpRenderer(cfg browserConfig) *chromedpRenderer {
	return &chromedpRenderer{cfg: cfg}
}

func (r *chromedpRenderer) Strategy() Strategy { return StrategyLibrary }
func (r *chromedpRenderer) Name() string       { return EngineChromedp }

// Available reports whether a Chrome binary is installed.
func (r *chromedpRenderer) Available(_ context.Context) error {
	_, err := locateChrome(r.cfg.bin)
	return err
}

// allocatorOptions builds the exec allocator flags for headless printing.
func (r *chromedpRenderer) allocatorOptions() []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("allow-file-access-from-files", true),
	)
	if bin, err := locateChrome(r.cfg.bin); err == nil {
		opts = append(opts, chromedp.ExecPath(bin))
	}
	if r.cfg.noSandbox {
		opts = append(opts, chromedp.NoSandbox)
	}
	return opts
}

// Render navigates to the source, injects the print stylesheet and prints it.
func (r *chromedpRenderer) Render(ctx context.Context, job Job) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if r.cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.timeout)
		defer cancel()
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, r.allocatorOptions()...)
	defer allocCancel()

	tabCtx, tabCancel := chromedp.NewContext(allocCtx)
	defer tabCancel()

	// Start the browser eagerly so launch failures are told apart from page errors.
	if err := chromedp.Run(tabCtx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	pg := job.Page.orDefault()
	script, err := styleScript(stylesheetFor(job.CSS, pg))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStyleInject, err)
	}

	if err := chromedp.Run(tabCtx,
		chromedp.Navigate(FileURL(job.Source)),
		chromedp.WaitReady("body", chromedp.ByQuery),
	); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	var injected bool
	if err := chromedp.Run(tabCtx, chromedp.Evaluate(script, &injected)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStyleInject, err)
	}

	if err := sleepContext(tabCtx, r.cfg.jsDelay); err != nil {
		return nil, err
	}

	width, height := pg.paperInches()
	margin := pg.marginInches()

	var buf []byte
	if err := chromedp.Run(tabCtx, chromedp.ActionFunc(func(ctx context.Context) error {
		var err error
		buf, _, err = page.PrintToPDF().
			WithPaperWidth(width).
			WithPaperHeight(height).
			WithMarginTop(margin).
			WithMarginRight(margin).
			WithMarginBottom(margin).
			WithMarginLeft(margin).
			WithLandscape(pg.landscape()).
			WithPrintBackground(true).
			Do(ctx)
		return err
	})); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	return writePDF(job.Output, buf, StrategyLibrary, EngineChromedp)
}

// Close is a no-op: each Render owns and releases its browser.
func (r *chromedpRenderer) Close() error {
	return nil
}

// styleScript returns the JavaScript that injects css into the loaded page.
func styleScript(css string) (string, error) {
	literal, err := json.Marshal(css)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(injectStyleScript, literal), nil
}
