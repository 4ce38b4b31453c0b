package main

import (
	"context"

	resume2pdf "github.com/alnah/go-resume2pdf"
	"github.com/alnah/go-resume2pdf/internal/hints"
)

// runOpenCmd opens the résumé HTML in the default browser and prints the
// print-to-PDF steps. Failures are reported and exit 0.
func runOpenCmd(ctx context.Context, args []string, env *Environment) int {
	flags, positional, err := parseOpenFlags(args, env.Stderr)
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

	out.title("resume2pdf open")

	source, err := resume2pdf.ResolveSource(pickSource(positional, cfg.Source))
	if err == nil {
		err = resume2pdf.CheckSource(source)
	}
	if err != nil {
		out.failure("%v%s", err, hintFor(err, cfg))
		return ExitSuccess
	}

	out.info("opening %s", source)
	if env.Opener == nil {
		out.failure("no launcher configured")
		out.info("open %s manually", source)
		return ExitSuccess
	}
	if err := env.Opener.Open(ctx, resume2pdf.FileURL(source)); err != nil {
		logger.Debug("open failed", "err", err)
		out.failure("could not open the browser: %v", err)
		out.info("open %s manually", source)
		return ExitSuccess
	}

	out.success("résumé opened in the browser")
	out.steps("To save it as PDF:", hints.ForManualPrint())
	return ExitSuccess
}
