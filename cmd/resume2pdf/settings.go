package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	resume2pdf "github.com/alnah/go-resume2pdf"
	"github.com/alnah/go-resume2pdf/internal/assets"
	"github.com/alnah/go-resume2pdf/internal/config"
	"github.com/alnah/go-resume2pdf/internal/hints"
)

// loadConfig loads the config named by --config, then RESUME2PDF_CONFIG.
// Without either, the default config is used when one exists.
func loadConfig(flagConfig string, env *envConfig, logger *log.Logger) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = env.ConfigPath
	}

	if name != "" {
		cfg, err := config.LoadConfig(name)
		if err != nil {
			return nil, err
		}
		logger.Debug("config loaded", "path", name)
		return cfg, nil
	}

	cfg, path, err := config.LoadDefault()
	if err != nil {
		return nil, err
	}
	if path != "" {
		logger.Debug("config loaded", "path", path)
	}
	return cfg, nil
}

// loadSettings resolves config, environment and flags into one Config.
// mergeFlags applies the command's flags last.
func loadSettings(common commonFlags, logger *log.Logger, mergeFlags func(*config.Config)) (*config.Config, error) {
	env := loadEnvConfig()
	warnUnknownEnvVars(logger)

	cfg, err := loadConfig(common.config, env, logger)
	if err != nil {
		return nil, err
	}
	applyEnvConfig(env, cfg)
	if mergeFlags != nil {
		mergeFlags(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeConvertFlags applies convert flags over config values.
func mergeConvertFlags(f *convertFlags, cfg *config.Config) {
	if f.output != "" {
		cfg.Output = f.output
	}
	if f.suffixSet {
		suffix := f.suffix
		cfg.Suffix = &suffix
	}
	if f.noOpen {
		cfg.Open.Disabled = true
	}
	if f.page.size != "" {
		cfg.Page.Size = f.page.size
	}
	if f.page.orientation != "" {
		cfg.Page.Orientation = f.page.orientation
	}
	if f.style.style != "" {
		cfg.Style.Name = f.style.style
		cfg.Style.Disabled = false
	}
	if f.style.noStyle {
		cfg.Style.Disabled = true
	}
	mergeRendererFlags(&f.renderer, cfg)
}

// mergeRendererFlags applies renderer flags over config values.
func mergeRendererFlags(f *rendererFlags, cfg *config.Config) {
	if f.strategy != "" {
		cfg.Strategy = f.strategy
	}
	if f.engine != "" {
		cfg.Engine = f.engine
	}
	if f.tool != "" {
		cfg.Tool.Name = f.tool
	}
	if f.toolPath != "" {
		cfg.Tool.Path = f.toolPath
	}
	if f.jsDelay != "" {
		cfg.JSDelay = f.jsDelay
	}
	if f.timeout != "" {
		cfg.Timeout = f.timeout
	}
	if f.browserBin != "" {
		cfg.Browser.Bin = f.browserBin
	}
	if f.noSandbox {
		cfg.Browser.NoSandbox = true
	}
}

// buildPageSettings builds page settings from config. A nil margin keeps
// the config margin, where 0 means the default.
func buildPageSettings(cfg *config.Config, margin *float64) (*resume2pdf.PageSettings, error) {
	ps := resume2pdf.DefaultPageSettings()

	if cfg.Page.Size != "" {
		ps.Size = cfg.Page.Size
	}
	if cfg.Page.Orientation != "" {
		ps.Orientation = cfg.Page.Orientation
	}
	switch {
	case margin != nil:
		ps.Margin = *margin
	case cfg.Page.Margin > 0:
		ps.Margin = cfg.Page.Margin
	}

	if err := ps.Validate(); err != nil {
		return nil, err
	}
	return ps, nil
}

// resolveCSS loads the configured stylesheet. A disabled style yields "".
func resolveCSS(cfg *config.Config) (string, error) {
	if cfg.Style.Disabled {
		return "", nil
	}
	return assets.ResolveStyle(cfg.Style.Name)
}

// parseDuration parses a duration setting. Empty returns def.
func parseDuration(field, value string, def time.Duration) (time.Duration, error) {
	if value == "" {
		return def, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q: %v", ErrInvalidDuration, field, value, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: %s %q: must not be negative", ErrInvalidDuration, field, value)
	}
	return d, nil
}

// buildOptions turns the resolved config into converter options.
// env.ConverterOptions come last so tests can replace renderers.
func buildOptions(cfg *config.Config, env *Environment, logger *log.Logger) ([]resume2pdf.Option, error) {
	var opts []resume2pdf.Option

	if cfg.Strategy != "" {
		s, err := resume2pdf.ParseStrategy(cfg.Strategy)
		if err != nil {
			return nil, err
		}
		opts = append(opts, resume2pdf.WithStrategy(s))
	}
	if cfg.Engine != "" {
		opts = append(opts, resume2pdf.WithEngine(cfg.Engine))
	}
	if cfg.Tool.Name != "" || cfg.Tool.Path != "" {
		tool := cfg.Tool.Name
		if tool == "" {
			tool = resume2pdf.ToolWkhtmltopdf
		}
		opts = append(opts, resume2pdf.WithTool(tool, cfg.Tool.Path))
	}
	if cfg.Suffix != nil {
		opts = append(opts, resume2pdf.WithOutputSuffix(*cfg.Suffix))
	}

	timeout, err := parseDuration("timeout", cfg.Timeout, resume2pdf.DefaultTimeout)
	if err != nil {
		return nil, err
	}
	jsDelay, err := parseDuration("jsDelay", cfg.JSDelay, resume2pdf.DefaultJavaScriptDelay)
	if err != nil {
		return nil, err
	}
	opts = append(opts,
		resume2pdf.WithTimeout(timeout),
		resume2pdf.WithJavaScriptDelay(jsDelay),
		resume2pdf.WithLogger(logger),
	)
	// Left unset, CI and container detection applies.
	if cfg.Browser.NoSandbox {
		opts = append(opts, resume2pdf.WithNoSandbox(true))
	}
	if cfg.Browser.Bin != "" {
		opts = append(opts, resume2pdf.WithBrowserBin(cfg.Browser.Bin))
	}
	if env.Runner != nil {
		opts = append(opts, resume2pdf.WithCommandRunner(env.Runner))
	}
	if env.Opener != nil {
		opts = append(opts, resume2pdf.WithOpener(env.Opener))
	}

	return append(opts, env.ConverterOptions...), nil
}

// hintFor returns the actionable hint block for err, or "".
func hintFor(err error, cfg *config.Config) string {
	switch {
	case errors.Is(err, resume2pdf.ErrSourceNotFound), errors.Is(err, resume2pdf.ErrSourceIsDir):
		return hints.ForSourceNotFound()
	case errors.Is(err, resume2pdf.ErrNoRenderer):
		tool := resume2pdf.ToolWkhtmltopdf
		if cfg != nil && cfg.Tool.Name != "" {
			tool = cfg.Tool.Name
		}
		return hints.ForNoRenderer() + hints.ForToolMissing(tool)
	case errors.Is(err, resume2pdf.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(config.SearchPaths(config.DefaultName))
	case errors.Is(err, assets.ErrStyleNotFound):
		return hints.ForStyleNotFound(assets.Names())
	case errors.Is(err, resume2pdf.ErrWritePDF):
		return hints.ForOutputDirectory()
	}
	return ""
}
