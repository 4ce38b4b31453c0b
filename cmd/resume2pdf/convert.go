package main

import (
	"context"
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	resume2pdf "github.com/alnah/go-resume2pdf"
	"github.com/alnah/go-resume2pdf/internal/config"
	"github.com/alnah/go-resume2pdf/internal/hints"
)

// runConvertCmd converts the résumé and opens the PDF.
//
// Conversion failures (missing source, no renderer, renderer errors) are
// reported and exit 0. Only invalid flags or settings, and interrupts,
// produce a non-zero exit.
func runConvertCmd(ctx context.Context, args []string, env *Environment) int {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		return flagErrorCode(err, env)
	}

	logger := newLogger(env.Stderr, levelFor(flags.common))
	out := newUI(env, flags.common.quiet)

	cfg, err := loadSettings(flags.common, logger, func(c *config.Config) { mergeConvertFlags(flags, c) })
	if err != nil {
		out.failure("%v%s", err, hintFor(err, nil))
		return exitCodeFor(err)
	}

	var margin *float64
	if flags.page.marginSet {
		margin = &flags.page.margin
	}
	page, err := buildPageSettings(cfg, margin)
	if err != nil {
		out.failure("%v", err)
		return exitCodeFor(err)
	}
	css, err := resolveCSS(cfg)
	if err != nil {
		out.failure("%v%s", err, hintFor(err, cfg))
		return exitCodeFor(err)
	}
	opts, err := buildOptions(cfg, env, logger)
	if err != nil {
		out.failure("%v", err)
		return exitCodeFor(err)
	}

	conv, err := resume2pdf.NewConverter(opts...)
	if err != nil {
		out.failure("%v", err)
		return exitCodeFor(err)
	}
	defer func() { _ = conv.Close() }()

	source := pickSource(positional, cfg.Source)
	out.title("resume2pdf")
	out.info("converting %s", source)

	res, err := conv.Convert(ctx, resume2pdf.Request{
		Source: source,
		Output: cfg.Output,
		CSS:    css,
		Page:   page,
	})
	if err != nil {
		return reportConvertFailure(ctx, out, err, cfg)
	}

	for _, a := range res.Attempts {
		out.warning("%s skipped: %v", a.Renderer, a.Err)
	}

	if res.Manual {
		out.success("opened %s in the browser", source)
		out.steps("To save it as PDF:", hints.ForManualPrint())
		return ExitSuccess
	}

	out.success("PDF created")
	out.path("file", res.Path)
	out.keyValue("size", fmt.Sprintf("%.1f KB", res.SizeKB()))
	out.keyValue("renderer", res.Renderer)

	if cfg.Open.Disabled {
		return ExitSuccess
	}
	if resume2pdf.OpenBestEffort(ctx, env.Opener, res.Path) {
		out.info("PDF opened")
	} else {
		out.info("open the PDF manually to view it")
	}
	return ExitSuccess
}

// reportConvertFailure prints a conversion error. Interrupts exit 1,
// everything else exits 0.
func reportConvertFailure(ctx context.Context, out *ui, err error, cfg *config.Config) int {
	if errors.Is(err, context.Canceled) && ctx.Err() != nil {
		out.failure("interrupted")
		return ExitGeneral
	}

	out.failure("conversion failed: %v%s", err, hintFor(err, cfg))
	if !errors.Is(err, resume2pdf.ErrSourceNotFound) && !errors.Is(err, resume2pdf.ErrInvalidSource) {
		out.info("or open the HTML in a browser and print it as PDF: resume2pdf open")
	}
	return ExitSuccess
}

// flagErrorCode reports a flag parsing error. --help is not an error.
func flagErrorCode(err error, env *Environment) int {
	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	fmt.Fprintln(env.Stderr, err)
	return ExitUsage
}
