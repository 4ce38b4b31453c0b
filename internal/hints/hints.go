// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/alnah/go-resume2pdf/internal/fileutil"
)

// Download pages for the external converters.
const (
	WkhtmltopdfURL = "https://wkhtmltopdf.org/downloads.html"
	WeasyPrintURL  = "https://doc.courtbouillon.org/weasyprint/stable/first_steps.html"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// goos is overridden in tests.
var goos = runtime.GOOS

// InCI reports whether a common CI environment variable is set.
func InCI() bool {
	return os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""
}

// ForSourceNotFound suggests where the résumé is expected.
func ForSourceNotFound() string {
	return format("run from the folder containing index.html, or pass the path: resume2pdf path/to/index.html")
}

// ForBrowserConnect returns hints for browser connection errors.
// Detects CI/Docker environment and suggests relevant environment variables.
func ForBrowserConnect() string {
	var hints []string

	if (InCI() || IsInContainer()) && !envTrue("RESUME2PDF_NO_SANDBOX") {
		hints = append(hints, "set RESUME2PDF_NO_SANDBOX=1 for Docker/CI")
	}

	if os.Getenv("RESUME2PDF_BROWSER_BIN") == "" {
		hints = append(hints, "set RESUME2PDF_BROWSER_BIN to use a custom Chrome")
	}

	return formatHints(hints)
}

// envTrue reports whether key holds a value strconv.ParseBool accepts as true.
func envTrue(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}

// ForNoRenderer suggests how to make at least one renderer usable.
func ForNoRenderer() string {
	return formatHints([]string{
		"run 'resume2pdf install' to download Chromium",
		"or install wkhtmltopdf and retry with --strategy tool",
	})
}

// ForToolMissing returns platform-specific install guidance for an external tool.
func ForToolMissing(tool string) string {
	switch tool {
	case "weasyprint":
		return format("pip install weasyprint (see " + WeasyPrintURL + ")")
	case "wkhtmltopdf":
		switch goos {
		case "windows":
			return formatHints([]string{
				"winget install wkhtmltopdf.wkhtmltox",
				"or download from " + WkhtmltopdfURL,
				"then add C:\\Program Files\\wkhtmltopdf\\bin to PATH",
			})
		case "darwin":
			return format("brew install --cask wkhtmltopdf (or download from " + WkhtmltopdfURL + ")")
		default:
			return format("install the wkhtmltopdf package (or download from " + WkhtmltopdfURL + ")")
		}
	}
	return ""
}

// ForTimeout returns a hint about increasing timeout for slow operations.
func ForTimeout() string {
	return format("for pages that load slowly, use the --timeout flag")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(slashed(p), "/resume2pdf/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", ") + ", or a path to a .css file")
}

// ForManualPrint lists the browser print-to-PDF steps.
func ForManualPrint() []string {
	return []string{
		"press Ctrl+P (Cmd+P on macOS)",
		"choose \"Save as PDF\" as the destination",
		"paper size A4, margins minimal",
		"scale: fit to page width",
		"untick headers and footers",
		"choose where to save, then click Save",
	}
}

// slashed normalizes separators for substring checks.
func slashed(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
