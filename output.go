package resume2pdf

import (
	"path/filepath"
	"strings"
)

// DefaultOutputSuffix is appended to the source name before the .pdf extension.
const DefaultOutputSuffix = "_curriculo"

// pdfExtension is the extension of every derived output path.
const pdfExtension = ".pdf"

// DeriveOutputPath replaces the extension of input with suffix + ".pdf".
// The result is stable under repeated application: a name that already
// carries the suffix keeps it once.
//
//	index.html          -> index_curriculo.pdf
//	index_curriculo.pdf -> index_curriculo.pdf
func DeriveOutputPath(input, suffix string) string {
	ext := filepath.Ext(input)
	base := strings.TrimSuffix(input, ext)

	if suffix != "" && !strings.HasSuffix(base, suffix) {
		base += suffix
	}
	return base + pdfExtension
}
