package resume2pdf

import (
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/alnah/go-resume2pdf/internal/hints"
)

// Defaults applied by NewConverter.
const (
	DefaultTimeout         = 30 * time.Second
	DefaultJavaScriptDelay = time.Second
)

// browserConfig holds settings shared by the headless Chrome engines.
type browserConfig struct {
	bin       string
	noSandbox bool
	timeout   time.Duration
	jsDelay   time.Duration
}

// converterConfig holds internal configuration for a Converter.
type converterConfig struct {
	strategy  Strategy
	engine    string
	tool      string
	toolBin   string
	suffix    string
	browser   browserConfig
	runner    CommandRunner
	opener    Opener
	logger    *log.Logger
	renderers []Renderer
}

func defaultConfig() converterConfig {
	return converterConfig{
		strategy: StrategyLibrary,
		engine:   EngineRod,
		tool:     ToolWkhtmltopdf,
		suffix:   DefaultOutputSuffix,
		browser: browserConfig{
			bin:       os.Getenv("ROD_BROWSER_BIN"),
			noSandbox: DefaultNoSandbox(),
			timeout:   DefaultTimeout,
			jsDelay:   DefaultJavaScriptDelay,
		},
	}
}

// DefaultNoSandbox reports whether Chrome starts without its sandbox when
// WithNoSandbox is not given: in CI, in containers, or with a pre-installed
// ROD_BROWSER_BIN.
func DefaultNoSandbox() bool {
	return hints.InCI() || hints.IsInContainer() || os.Getenv("ROD_BROWSER_BIN") != ""
}

// Option configures a Converter.
type Option func(*converterConfig)

// WithStrategy sets the preferred strategy; less automated ones remain as fallbacks.
func WithStrategy(s Strategy) Option {
	return func(c *converterConfig) {
		c.strategy = s
	}
}

// WithEngine selects the headless Chrome driver for the library strategy:
// EngineRod (default) or EngineChromedp.
func WithEngine(engine string) Option {
	return func(c *converterConfig) {
		c.engine = engine
	}
}

// WithTool selects the external tool and, optionally, its executable path.
func WithTool(tool, bin string) Option {
	return func(c *converterConfig) {
		c.tool = tool
		c.toolBin = bin
	}
}

// WithOutputSuffix sets the suffix used when deriving the PDF path.
// An empty suffix keeps the source base name.
func WithOutputSuffix(suffix string) Option {
	return func(c *converterConfig) {
		c.suffix = suffix
	}
}

// WithTimeout bounds a single render. Zero or negative disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *converterConfig) {
		c.browser.timeout = d
	}
}

// WithJavaScriptDelay sets how long to let page scripts run before printing.
func WithJavaScriptDelay(d time.Duration) Option {
	return func(c *converterConfig) {
		c.browser.jsDelay = d
	}
}

// WithBrowserBin sets the Chrome or Chromium executable. It overrides
// ROD_BROWSER_BIN.
func WithBrowserBin(path string) Option {
	return func(c *converterConfig) {
		c.browser.bin = path
	}
}

// WithNoSandbox disables the Chrome sandbox, required when running as root
// inside containers. Without it, DefaultNoSandbox decides.
func WithNoSandbox(noSandbox bool) Option {
	return func(c *converterConfig) {
		c.browser.noSandbox = noSandbox
	}
}

// WithCommandRunner replaces the subprocess runner used by external tools
// and the default opener.
func WithCommandRunner(r CommandRunner) Option {
	return func(c *converterConfig) {
		c.runner = r
	}
}

// WithOpener sets the launcher used by the browser strategy.
func WithOpener(o Opener) Option {
	return func(c *converterConfig) {
		c.opener = o
	}
}

// WithLogger sets the logger for renderer selection and timings.
func WithLogger(l *log.Logger) Option {
	return func(c *converterConfig) {
		c.logger = l
	}
}

// WithRenderers replaces the built-in renderers. The first renderer for each
// strategy fills that strategy's slot.
func WithRenderers(rs ...Renderer) Option {
	return func(c *converterConfig) {
		c.renderers = rs
	}
}
