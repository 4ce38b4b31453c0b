package main

import (
	"context"
	"io"
	"os"

	"github.com/go-rod/rod/lib/launcher"

	resume2pdf "github.com/alnah/go-resume2pdf"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, subprocesses, and browser discovery.
type Environment struct {
	Stdout io.Writer
	Stderr io.Writer

	Opener resume2pdf.Opener
	Runner resume2pdf.CommandRunner

	// LookChrome finds an installed Chrome or Chromium.
	LookChrome func() (string, bool)
	// DownloadBrowser fetches a Chromium build into rod's cache and returns
	// the executable path.
	DownloadBrowser func(ctx context.Context) (string, error)

	// ConverterOptions are appended after the options built from config
	// and flags.
	ConverterOptions []resume2pdf.Option
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout:          os.Stdout,
		Stderr:          os.Stderr,
		Opener:          resume2pdf.NewSystemOpener(),
		Runner:          resume2pdf.ExecRunner{},
		LookChrome:      launcher.LookPath,
		DownloadBrowser: downloadBrowser,
	}
}

// downloadBrowser fetches rod's pinned Chromium revision, reusing the cache.
func downloadBrowser(ctx context.Context) (string, error) {
	b := launcher.NewBrowser()
	b.Context = ctx
	return b.Get()
}
