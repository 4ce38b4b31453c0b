package main

// Notes:
// - exitCodeFor: we test sentinel errors from the library, config and assets
//   packages, plus wrapped errors to verify errors.Is() chain works correctly.
// - Exit code constants: we verify Unix conventions (0=success, 1=general, 2=usage)
//   and custom codes are below 126.

import (
	"errors"
	"fmt"
	"os"
	"testing"

	resume2pdf "github.com/alnah/go-resume2pdf"
	"github.com/alnah/go-resume2pdf/internal/assets"
	"github.com/alnah/go-resume2pdf/internal/config"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},

		// Browser errors (exit 4)
		{"browser connect", resume2pdf.ErrBrowserConnect, ExitBrowser},
		{"page load", resume2pdf.ErrPageLoad, ExitBrowser},
		{"style inject", resume2pdf.ErrStyleInject, ExitBrowser},
		{"pdf generation", resume2pdf.ErrPDFGeneration, ExitBrowser},
		{"wrapped browser connect", fmt.Errorf("rod: %w", resume2pdf.ErrBrowserConnect), ExitBrowser},

		// Usage errors (exit 2)
		{"invalid strategy", resume2pdf.ErrInvalidStrategy, ExitUsage},
		{"invalid engine", resume2pdf.ErrInvalidEngine, ExitUsage},
		{"invalid tool", resume2pdf.ErrInvalidTool, ExitUsage},
		{"invalid margin", resume2pdf.ErrInvalidMargin, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", fmt.Errorf("%w: bad yaml", config.ErrConfigParse), ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"style not found", assets.ErrStyleNotFound, ExitUsage},
		{"invalid duration", ErrInvalidDuration, ExitUsage},
		{"too many args", ErrTooManyArgs, ExitUsage},

		// I/O errors (exit 3)
		{"source not found", resume2pdf.ErrSourceNotFound, ExitIO},
		{"not exist", os.ErrNotExist, ExitIO},
		{"permission", os.ErrPermission, ExitIO},
		{"write pdf", resume2pdf.ErrWritePDF, ExitIO},
		{"asset read", assets.ErrAssetRead, ExitIO},

		// General (exit 1)
		{"unknown", errors.New("boom"), ExitGeneral},
		{"no renderer", resume2pdf.ErrNoRenderer, ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestExitCodeConstants - Unix conventions
// ---------------------------------------------------------------------------

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 || ExitGeneral != 1 || ExitUsage != 2 {
		t.Errorf("conventional codes changed: %d %d %d", ExitSuccess, ExitGeneral, ExitUsage)
	}
	for _, code := range []int{ExitIO, ExitBrowser} {
		if code >= 126 {
			t.Errorf("custom exit code %d must be below 126", code)
		}
	}
}
