package resume2pdf

import (
	"fmt"
	"strings"
)

// Page size constants.
const (
	PageSizeA4     = "a4"
	PageSizeLetter = "letter"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Margin bounds in centimeters.
const (
	MinMargin     = 0.0
	MaxMargin     = 5.0
	DefaultMargin = 0.5
)

// cmPerInch converts centimeters to the inches Chrome expects.
const cmPerInch = 2.54

// paperSize holds portrait dimensions in inches.
type paperSize struct {
	width, height float64
	toolName      string // name understood by wkhtmltopdf and CSS @page
}

var paperSizes = map[string]paperSize{
	PageSizeA4:     {width: 8.27, height: 11.69, toolName: "A4"},
	PageSizeLetter: {width: 8.5, height: 11, toolName: "Letter"},
	PageSizeLegal:  {width: 8.5, height: 14, toolName: "Legal"},
}

// PageSettings configures PDF page dimensions.
type PageSettings struct {
	Size        string  // "a4", "letter", "legal"
	Orientation string  // "portrait", "landscape"
	Margin      float64 // centimeters, applied to all sides
}

// DefaultPageSettings returns A4 portrait with 0.5cm margins.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:        PageSizeA4,
		Orientation: OrientationPortrait,
		Margin:      DefaultMargin,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}

	if _, ok := paperSizes[strings.ToLower(p.Size)]; !ok {
		return fmt.Errorf("%w: %q (must be a4, letter, or legal)", ErrInvalidPageSize, p.Size)
	}

	switch strings.ToLower(p.Orientation) {
	case OrientationPortrait, OrientationLandscape:
	default:
		return fmt.Errorf("%w: %q (must be portrait or landscape)", ErrInvalidOrientation, p.Orientation)
	}

	if p.Margin < MinMargin || p.Margin > MaxMargin {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f cm)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}

	return nil
}

// orDefault returns p, or the defaults when p is nil.
func (p *PageSettings) orDefault() *PageSettings {
	if p == nil {
		return DefaultPageSettings()
	}
	return p
}

// landscape reports whether the orientation is landscape.
func (p *PageSettings) landscape() bool {
	return strings.EqualFold(p.Orientation, OrientationLandscape)
}

// paperInches returns the page width and height in inches, before orientation.
// Chrome swaps the axes itself when Landscape is set.
func (p *PageSettings) paperInches() (width, height float64) {
	size, ok := paperSizes[strings.ToLower(p.Size)]
	if !ok {
		size = paperSizes[PageSizeA4]
	}
	return size.width, size.height
}

// marginInches returns the margin converted to inches.
func (p *PageSettings) marginInches() float64 {
	return p.Margin / cmPerInch
}

// toolPageSize returns the page size name used by wkhtmltopdf and CSS.
func (p *PageSettings) toolPageSize() string {
	if size, ok := paperSizes[strings.ToLower(p.Size)]; ok {
		return size.toolName
	}
	return paperSizes[PageSizeA4].toolName
}

// toolMargin formats the margin as a CSS/wkhtmltopdf length.
func (p *PageSettings) toolMargin() string {
	return fmt.Sprintf("%gcm", p.Margin)
}
