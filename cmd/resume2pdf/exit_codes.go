package main

import (
	"errors"
	"os"

	resume2pdf "github.com/alnah/go-resume2pdf"
	"github.com/alnah/go-resume2pdf/internal/assets"
	"github.com/alnah/go-resume2pdf/internal/config"
)

// Exit codes for resume2pdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful run, including reported conversion failures
	ExitGeneral = 1 // General/unexpected error, doctor found no usable renderer
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors, install could not provide a renderer
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, resume2pdf.ErrBrowserConnect) ||
		errors.Is(err, resume2pdf.ErrPageCreate) ||
		errors.Is(err, resume2pdf.ErrPageLoad) ||
		errors.Is(err, resume2pdf.ErrStyleInject) ||
		errors.Is(err, resume2pdf.ErrPDFGeneration) {
		return ExitBrowser
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrInvalidDuration) ||
		errors.Is(err, ErrTooManyArgs) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, resume2pdf.ErrInvalidStrategy) ||
		errors.Is(err, resume2pdf.ErrInvalidEngine) ||
		errors.Is(err, resume2pdf.ErrInvalidTool) ||
		errors.Is(err, resume2pdf.ErrInvalidPageSize) ||
		errors.Is(err, resume2pdf.ErrInvalidOrientation) ||
		errors.Is(err, resume2pdf.ErrInvalidMargin) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrStyleTooLarge) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, resume2pdf.ErrInvalidSource) ||
		errors.Is(err, resume2pdf.ErrSourceNotFound) ||
		errors.Is(err, resume2pdf.ErrSourceIsDir) ||
		errors.Is(err, resume2pdf.ErrWritePDF) ||
		errors.Is(err, assets.ErrAssetRead) {
		return ExitIO
	}

	return ExitGeneral
}
