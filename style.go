package resume2pdf

import (
	"fmt"
	"strings"
)

// colorAdjustCSS keeps backgrounds and colored columns when printing.
const colorAdjustCSS = `
* {
  -webkit-print-color-adjust: exact !important;
  print-color-adjust: exact !important;
}
`

// PageCSS builds the @page rule for p plus the color-adjust rule.
// Engines that read page geometry from CSS (WeasyPrint) rely on it;
// Chrome receives the same values through PrintToPDF parameters.
func PageCSS(p *PageSettings) string {
	p = p.orDefault()

	orientation := OrientationPortrait
	if p.landscape() {
		orientation = OrientationLandscape
	}

	return fmt.Sprintf(`
@page {
  size: %s %s;
  margin: %s;
}
`, p.toolPageSize(), orientation, p.toolMargin()) + colorAdjustCSS
}

// stylesheetFor combines the page rule with the user stylesheet.
// An empty css yields only the page rule.
func stylesheetFor(css string, p *PageSettings) string {
	var buf strings.Builder
	buf.WriteString(PageCSS(p))
	if css != "" {
		buf.WriteString("\n")
		buf.WriteString(css)
	}
	return buf.String()
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
