package main

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/alnah/go-resume2pdf/internal/config"
)

// envPrefix marks the variables read by loadEnvConfig.
const envPrefix = "RESUME2PDF_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring config files.
type envConfig struct {
	// Files
	ConfigPath string // RESUME2PDF_CONFIG: config file name or path
	Source     string // RESUME2PDF_SOURCE: résumé HTML path or file:// URI
	Output     string // RESUME2PDF_OUTPUT: PDF path

	// Rendering
	Strategy   string        // RESUME2PDF_STRATEGY: library, tool, browser
	Engine     string        // RESUME2PDF_ENGINE: rod, chromedp
	Tool       string        // RESUME2PDF_TOOL: wkhtmltopdf, weasyprint
	ToolPath   string        // RESUME2PDF_TOOL_PATH: converter executable
	Style      string        // RESUME2PDF_STYLE: CSS style name or path
	PageSize   string        // RESUME2PDF_PAGE_SIZE: a4, letter, legal
	Timeout    time.Duration // RESUME2PDF_TIMEOUT: render timeout
	BrowserBin string        // RESUME2PDF_BROWSER_BIN: Chrome executable
	NoSandbox  *bool         // RESUME2PDF_NO_SANDBOX: disable Chrome sandbox
	NoOpen     *bool         // RESUME2PDF_NO_OPEN: skip opening the PDF
}

// knownEnvVars lists valid RESUME2PDF_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"RESUME2PDF_CONFIG":      true,
	"RESUME2PDF_SOURCE":      true,
	"RESUME2PDF_OUTPUT":      true,
	"RESUME2PDF_STRATEGY":    true,
	"RESUME2PDF_ENGINE":      true,
	"RESUME2PDF_TOOL":        true,
	"RESUME2PDF_TOOL_PATH":   true,
	"RESUME2PDF_STYLE":       true,
	"RESUME2PDF_PAGE_SIZE":   true,
	"RESUME2PDF_TIMEOUT":     true,
	"RESUME2PDF_BROWSER_BIN": true,
	"RESUME2PDF_NO_SANDBOX":  true,
	"RESUME2PDF_NO_OPEN":     true,
	"RESUME2PDF_CONTAINER":   true, // read by doctor
}

// loadEnvConfig reads configuration from environment variables.
// Malformed durations and booleans are ignored, not errors.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("RESUME2PDF_CONFIG"),
		Source:     os.Getenv("RESUME2PDF_SOURCE"),
		Output:     os.Getenv("RESUME2PDF_OUTPUT"),
		Strategy:   os.Getenv("RESUME2PDF_STRATEGY"),
		Engine:     os.Getenv("RESUME2PDF_ENGINE"),
		Tool:       os.Getenv("RESUME2PDF_TOOL"),
		ToolPath:   os.Getenv("RESUME2PDF_TOOL_PATH"),
		Style:      os.Getenv("RESUME2PDF_STYLE"),
		PageSize:   os.Getenv("RESUME2PDF_PAGE_SIZE"),
		BrowserBin: os.Getenv("RESUME2PDF_BROWSER_BIN"),
		NoSandbox:  envBool("RESUME2PDF_NO_SANDBOX"),
		NoOpen:     envBool("RESUME2PDF_NO_OPEN"),
	}

	if timeout := os.Getenv("RESUME2PDF_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	return cfg
}

// envBool returns nil when the variable is unset or not a boolean.
func envBool(name string) *bool {
	v, ok := os.LookupEnv(name)
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return nil
	}
	return &b
}

// warnUnknownEnvVars logs warnings for unrecognized RESUME2PDF_* variables.
// Helps catch typos like RESUME2PDF_STRATEGIE.
func warnUnknownEnvVars(logger *log.Logger) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name, _, _ := strings.Cut(env, "=")
			if !knownEnvVars[name] {
				logger.Warn("unknown environment variable (typo?)", "name", name)
			}
		}
	}
}

// applyEnvConfig overrides config file values with the environment.
// Gives: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	setIf := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	setIf(&cfg.Source, env.Source)
	setIf(&cfg.Output, env.Output)
	setIf(&cfg.Strategy, env.Strategy)
	setIf(&cfg.Engine, env.Engine)
	setIf(&cfg.Tool.Name, env.Tool)
	setIf(&cfg.Tool.Path, env.ToolPath)
	setIf(&cfg.Style.Name, env.Style)
	setIf(&cfg.Page.Size, env.PageSize)
	setIf(&cfg.Browser.Bin, env.BrowserBin)

	if env.Timeout > 0 {
		cfg.Timeout = env.Timeout.String()
	}
	if env.NoSandbox != nil {
		cfg.Browser.NoSandbox = *env.NoSandbox
	}
	if env.NoOpen != nil {
		cfg.Open.Disabled = *env.NoOpen
	}
}
