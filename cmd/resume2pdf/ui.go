package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - titles
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - paths
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	stylePath    = lipgloss.NewStyle().Foreground(colorBlue)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleKey     = lipgloss.NewStyle().Foreground(colorGray).Width(10)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
)

// ui prints status lines. Errors go to err and survive --quiet; everything
// else goes to out. Styling is dropped when out is not a terminal.
type ui struct {
	out   io.Writer
	err   io.Writer
	quiet bool
	plain bool
}

func newUI(env *Environment, quiet bool) *ui {
	return &ui{
		out:   env.Stdout,
		err:   env.Stderr,
		quiet: quiet,
		plain: !isTerminal(env.Stdout),
	}
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (u *ui) render(s lipgloss.Style, text string) string {
	if u.plain {
		return text
	}
	return s.Render(text)
}

func (u *ui) println(line string) {
	if !u.quiet {
		fmt.Fprintln(u.out, line)
	}
}

// title prints a heading followed by a rule.
func (u *ui) title(text string) {
	u.println(u.render(styleTitle, text))
	u.println(u.render(styleDim, strings.Repeat("=", 50)))
}

func (u *ui) success(format string, args ...any) {
	u.println(u.render(styleIconSuccess, iconSuccess) + " " + fmt.Sprintf(format, args...))
}

func (u *ui) info(format string, args ...any) {
	u.println(u.render(styleIconInfo, iconInfo) + " " + fmt.Sprintf(format, args...))
}

func (u *ui) warning(format string, args ...any) {
	u.println(u.render(styleIconWarning, iconWarning) + " " + u.render(styleWarning, fmt.Sprintf(format, args...)))
}

// failure prints to err regardless of --quiet. A trailing hint block from
// internal/hints is printed as is.
func (u *ui) failure(format string, args ...any) {
	fmt.Fprintln(u.err, u.render(styleIconError, iconError)+" "+fmt.Sprintf(format, args...))
}

// detail prints an indented, muted line.
func (u *ui) detail(format string, args ...any) {
	u.println("  " + u.render(styleDim, fmt.Sprintf(format, args...)))
}

// keyValue prints a labeled value.
func (u *ui) keyValue(key, value string) {
	u.println("  " + u.key(key) + " " + u.render(styleValue, value))
}

// path prints a labeled file path.
func (u *ui) path(key, p string) {
	u.println("  " + u.key(key) + " " + u.render(stylePath, p))
}

func (u *ui) key(k string) string {
	if u.plain {
		return fmt.Sprintf("%-10s", k)
	}
	return styleKey.Render(k)
}

// steps prints a numbered list.
func (u *ui) steps(heading string, items []string) {
	u.println("")
	u.println(heading)
	for i, item := range items {
		u.println(fmt.Sprintf("  %d. %s", i+1, item))
	}
}
