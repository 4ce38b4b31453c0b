package main

import (
	"context"
	"strings"

	resume2pdf "github.com/alnah/go-resume2pdf"
	"github.com/alnah/go-resume2pdf/internal/config"
	"github.com/alnah/go-resume2pdf/internal/hints"
)

// runInstallCmd provides a renderer: it downloads Chromium unless one is
// installed, then reports the external converters with install guidance.
// Exits ExitBrowser only when the download fails and no converter exists.
func runInstallCmd(ctx context.Context, args []string, env *Environment) int {
	flags, err := parseInstallFlags(args, env.Stderr)
	if err != nil {
		return flagErrorCode(err, env)
	}

	logger := newLogger(env.Stderr, levelFor(flags.common))
	out := newUI(env, flags.common.quiet)

	cfg, err := loadSettings(flags.common, logger, nil)
	if err != nil {
		out.failure("%v%s", err, hintFor(err, nil))
		return exitCodeFor(err)
	}

	out.title("resume2pdf install")

	browserFailed := false
	if !flags.skipBrowser {
		browserFailed = !installBrowser(ctx, out, cfg, env)
	}

	toolFound := false
	for _, tool := range []string{resume2pdf.ToolWkhtmltopdf, resume2pdf.ToolWeasyPrint} {
		version, err := toolVersion(ctx, env, toolBinFor(tool, cfg))
		if err != nil {
			logger.Debug("tool check failed", "tool", tool, "err", err)
			out.warning("%s not found", tool)
			for _, line := range hintLines(hints.ForToolMissing(tool)) {
				out.detail("%s", line)
			}
			continue
		}
		toolFound = true
		out.success("%s: %s", tool, version)
	}

	if browserFailed && !toolFound {
		out.failure("no renderer could be installed")
		return ExitBrowser
	}
	out.success("done")
	return ExitSuccess
}

// installBrowser reports whether a Chrome is present after the call.
func installBrowser(ctx context.Context, out *ui, cfg *config.Config, env *Environment) bool {
	if cfg.Browser.Bin != "" {
		out.success("Chrome configured: %s", cfg.Browser.Bin)
		return true
	}
	if env.LookChrome != nil {
		if path, ok := env.LookChrome(); ok {
			out.success("Chrome found: %s", path)
			return true
		}
	}
	if env.DownloadBrowser == nil {
		out.failure("Chromium download is not available")
		return false
	}

	out.info("downloading Chromium...")
	path, err := env.DownloadBrowser(ctx)
	if err != nil {
		out.failure("Chromium download failed: %v%s", err, hints.ForBrowserConnect())
		return false
	}
	out.success("Chromium installed: %s", path)
	return true
}

// hintLines splits a hint block into its text lines.
func hintLines(block string) []string {
	var lines []string
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "hint:"))
		if line == "" {
			continue
		}
		for _, part := range strings.Split(line, "; ") {
			lines = append(lines, strings.TrimSpace(part))
		}
	}
	return lines
}
