package resume2pdf

import "errors"

// Sentinel errors for library operations.
var (
	// Source resolution errors.
	ErrInvalidSource  = errors.New("invalid source path")
	ErrSourceNotFound = errors.New("source HTML file not found")
	ErrSourceIsDir    = errors.New("source path is a directory")

	// Renderer selection errors.
	ErrInvalidStrategy     = errors.New("invalid strategy")
	ErrInvalidEngine       = errors.New("invalid engine")
	ErrInvalidTool         = errors.New("invalid tool")
	ErrRendererUnavailable = errors.New("renderer unavailable")
	ErrNoRenderer          = errors.New("no renderer available")

	// Headless browser errors.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrStyleInject    = errors.New("failed to inject print stylesheet")
	ErrPDFGeneration  = errors.New("PDF generation failed")

	// External tool and output errors.
	ErrToolFailed = errors.New("external tool failed")
	ErrWritePDF   = errors.New("failed to write PDF file")

	// Page settings validation errors.
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")

	// ErrClosed is returned when attempting to use a closed Converter.
	ErrClosed = errors.New("converter is closed")

	// Default-application launcher errors.
	ErrNoLauncher = errors.New("no default-application launcher for this platform")
	ErrOpenFailed = errors.New("failed to open with default application")
)
