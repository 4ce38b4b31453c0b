package resume2pdf

import (
	"context"
	"fmt"
	"strings"
)

// Strategy selects how the résumé becomes a PDF.
type Strategy string

// Rendering strategies, in fallback order.
const (
	// StrategyLibrary renders in-process through a headless Chrome library.
	StrategyLibrary Strategy = "library"
	// StrategyTool shells out to an HTML-to-PDF command-line tool.
	StrategyTool Strategy = "tool"
	// StrategyBrowser opens the page for a manual print-to-PDF.
	StrategyBrowser Strategy = "browser"
)

// fallbackOrder lists strategies from most to least automated.
var fallbackOrder = []Strategy{StrategyLibrary, StrategyTool, StrategyBrowser}

// ParseStrategy validates a strategy name (case-insensitive).
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case StrategyLibrary:
		return StrategyLibrary, nil
	case StrategyTool:
		return StrategyTool, nil
	case StrategyBrowser:
		return StrategyBrowser, nil
	}
	return "", fmt.Errorf("%w: %q (must be library, tool, or browser)", ErrInvalidStrategy, s)
}

// FallbackChain returns preferred followed by every less automated strategy.
// An unknown strategy yields the full chain.
func FallbackChain(preferred Strategy) []Strategy {
	for i, s := range fallbackOrder {
		if s == preferred {
			return append([]Strategy(nil), fallbackOrder[i:]...)
		}
	}
	return append([]Strategy(nil), fallbackOrder...)
}

// Job is one rendering request handed to a Renderer.
type Job struct {
	Source string        // absolute path to the HTML file
	Output string        // PDF destination
	CSS    string        // print stylesheet injected into the page (optional)
	Page   *PageSettings // nil = defaults
}

// Renderer produces a PDF (or a manual hand-off) for a Job.
type Renderer interface {
	// Strategy reports which fallback slot the renderer fills.
	Strategy() Strategy
	// Name identifies the backend, e.g. "rod" or "wkhtmltopdf".
	Name() string
	// Available returns ErrRendererUnavailable when the backend cannot run here.
	Available(ctx context.Context) error
	// Render performs the conversion.
	Render(ctx context.Context, job Job) (*Result, error)
	// Close releases backend resources.
	Close() error
}

// Attempt records a renderer that was considered for a conversion.
type Attempt struct {
	Renderer string
	Strategy Strategy
	Err      error
}

// Result describes the outcome of a conversion.
type Result struct {
	Path     string   // written PDF; empty for manual hand-off
	Size     int64    // bytes written
	Renderer string   // backend that handled the job
	Strategy Strategy // strategy that handled the job
	Manual   bool     // true when the user must print from the browser
	Attempts []Attempt
}

// SizeKB returns the PDF size in kilobytes.
func (r *Result) SizeKB() float64 {
	return float64(r.Size) / 1024
}
