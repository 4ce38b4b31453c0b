package resume2pdf

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Request describes one conversion.
type Request struct {
	Source string        // path or file:// URI of the HTML résumé (required)
	Output string        // PDF path; empty = derived from Source
	CSS    string        // print stylesheet injected before rendering (optional)
	Page   *PageSettings // nil = A4 portrait, 0.5cm margins
}

// Converter resolves the source, picks a renderer along the fallback chain
// and produces the PDF. Create with NewConverter and call Close when done.
type Converter struct {
	cfg       converterConfig
	renderers map[Strategy]Renderer
	logger    *log.Logger

	mu     sync.Mutex
	closed bool
}

// NewConverter creates a Converter. Browsers are not started until a render
// needs one.
func NewConverter(opts ...Option) (*Converter, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	if _, err := ParseStrategy(string(cfg.strategy)); err != nil {
		return nil, err
	}

	logger := cfg.logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	c := &Converter{
		cfg:       cfg,
		renderers: make(map[Strategy]Renderer, len(fallbackOrder)),
		logger:    logger,
	}

	if len(cfg.renderers) > 0 {
		for _, r := range cfg.renderers {
			if _, taken := c.renderers[r.Strategy()]; !taken {
				c.renderers[r.Strategy()] = r
			}
		}
		return c, nil
	}

	library, err := newLibraryRenderer(cfg)
	if err != nil {
		return nil, err
	}
	tool, err := ParseTool(cfg.tool)
	if err != nil {
		return nil, err
	}

	opener := cfg.opener
	if opener == nil {
		opener = &SystemOpener{Runner: cfg.runner}
	}

	c.renderers[StrategyLibrary] = library
	c.renderers[StrategyTool] = newToolRenderer(tool, cfg.toolBin, cfg.browser.jsDelay, cfg.browser.timeout, cfg.runner)
	c.renderers[StrategyBrowser] = newBrowserRenderer(opener)
	return c, nil
}

// newLibraryRenderer builds the headless Chrome renderer for the configured engine.
func newLibraryRenderer(cfg converterConfig) (Renderer, error) {
	switch strings.ToLower(cfg.engine) {
	case "", EngineRod:
		return newRodRenderer(cfg.browser), nil
	case EngineChromedp:
		return newChromedpRenderer(cfg.browser), nil
	}
	return nil, fmt.Errorf("%w: %q (must be rod or chromedp)", ErrInvalidEngine, cfg.engine)
}

// Convert runs the pipeline: resolve, guard, derive output, dispatch.
//
// Renderers that report themselves unavailable are skipped in favor of the
// next strategy in the chain. A renderer that starts and fails ends the
// conversion with its error.
func (c *Converter) Convert(ctx context.Context, req Request) (*Result, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	source, err := ResolveSource(req.Source)
	if err != nil {
		return nil, err
	}
	if err := CheckSource(source); err != nil {
		return nil, err
	}

	if err := req.Page.Validate(); err != nil {
		return nil, err
	}

	output := req.Output
	if output == "" {
		output = DeriveOutputPath(source, c.cfg.suffix)
	}
	if abs, err := filepath.Abs(output); err == nil && abs == source {
		return nil, fmt.Errorf("%w: output %s would overwrite the source", ErrInvalidSource, output)
	}

	job := Job{
		Source: source,
		Output: output,
		CSS:    req.CSS,
		Page:   req.Page,
	}

	var attempts []Attempt
	for _, strategy := range FallbackChain(c.cfg.strategy) {
		r, ok := c.renderers[strategy]
		if !ok {
			continue
		}

		if err := r.Available(ctx); err != nil {
			c.logger.Debug("renderer unavailable", "strategy", strategy, "renderer", r.Name(), "err", err)
			attempts = append(attempts, Attempt{Renderer: r.Name(), Strategy: strategy, Err: err})
			continue
		}

		if strategy != StrategyBrowser {
			if err := os.MkdirAll(filepath.Dir(output), dirPermissions); err != nil {
				return nil, fmt.Errorf("%w: creating output directory: %v", ErrWritePDF, err)
			}
		}

		c.logger.Debug("rendering", "strategy", strategy, "renderer", r.Name(), "source", source)
		start := time.Now()

		res, err := r.Render(ctx, job)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", r.Name(), err)
		}

		c.logger.Debug("rendered", "renderer", r.Name(), "elapsed", time.Since(start).Round(time.Millisecond))
		res.Attempts = append(attempts, res.Attempts...)
		return res, nil
	}

	return nil, noRendererError(attempts)
}

// Check reports the availability of every renderer, in fallback order.
// A nil Err means the renderer can run.
func (c *Converter) Check(ctx context.Context) []Attempt {
	var out []Attempt
	for _, strategy := range fallbackOrder {
		r, ok := c.renderers[strategy]
		if !ok {
			continue
		}
		out = append(out, Attempt{Renderer: r.Name(), Strategy: strategy, Err: r.Available(ctx)})
	}
	return out
}

// Close releases every renderer. Close is idempotent.
func (c *Converter) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	var errs []error
	for _, strategy := range fallbackOrder {
		if r, ok := c.renderers[strategy]; ok {
			if err := r.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func (c *Converter) checkClosed() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	return nil
}

// noRendererError summarizes why every renderer was skipped.
func noRendererError(attempts []Attempt) error {
	if len(attempts) == 0 {
		return ErrNoRenderer
	}
	errs := make([]error, 0, len(attempts))
	for _, a := range attempts {
		errs = append(errs, fmt.Errorf("%s: %w", a.Renderer, a.Err))
	}
	return fmt.Errorf("%w: %w", ErrNoRenderer, errors.Join(errs...))
}

// writePDF stores rendered bytes at path.
func writePDF(path string, data []byte, strategy Strategy, renderer string) (*Result, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty output", ErrPDFGeneration)
	}
	// #nosec G306 -- PDFs are meant to be readable
	if err := os.WriteFile(path, data, filePermissions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWritePDF, err)
	}
	return &Result{
		Path:     path,
		Size:     int64(len(data)),
		Renderer: renderer,
		Strategy: strategy,
	}, nil
}

// Convert converts a résumé using a temporary Converter.
func Convert(ctx context.Context, req Request, opts ...Option) (*Result, error) {
	conv, err := NewConverter(opts...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = conv.Close() }()
	return conv.Convert(ctx, req)
}
