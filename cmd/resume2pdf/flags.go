package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// pageFlags holds page layout flags.
type pageFlags struct {
	size        string
	orientation string
	margin      float64
	marginSet   bool // --margin given; 0 is a valid margin
}

// rendererFlags selects and tunes the renderers.
type rendererFlags struct {
	strategy   string
	engine     string
	tool       string
	toolPath   string
	jsDelay    string
	timeout    string
	browserBin string
	noSandbox  bool
}

// styleFlags holds stylesheet flags.
type styleFlags struct {
	style   string // embedded style name or .css path
	noStyle bool
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common    commonFlags
	output    string
	suffix    string
	suffixSet bool // --suffix given; "" keeps the base name
	noOpen    bool
	page      pageFlags
	renderer  rendererFlags
	style     styleFlags
}

// openFlags holds flags for the open command.
type openFlags struct {
	common commonFlags
}

// doctorFlags holds flags for the doctor command.
type doctorFlags struct {
	common   commonFlags
	renderer rendererFlags
	json     bool
}

// installFlags holds flags for the install command.
type installFlags struct {
	common      commonFlags
	skipBrowser bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show renderer selection and timing")
}

// addPageFlags adds page layout flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.size, "page-size", "p", "", "page size: a4, letter, legal")
	fs.StringVar(&f.orientation, "orientation", "", "orientation: portrait, landscape")
	fs.Float64Var(&f.margin, "margin", 0, "margin in centimeters (0-5)")
}

// addRendererFlags adds renderer selection flags to a FlagSet.
func addRendererFlags(fs *flag.FlagSet, f *rendererFlags) {
	fs.StringVarP(&f.strategy, "strategy", "s", "", "preferred strategy: library, tool, browser")
	fs.StringVar(&f.engine, "engine", "", "headless Chrome driver: rod, chromedp")
	fs.StringVar(&f.tool, "tool", "", "external converter: wkhtmltopdf, weasyprint")
	fs.StringVar(&f.toolPath, "tool-path", "", "external converter executable")
	fs.StringVar(&f.jsDelay, "js-delay", "", "time for page scripts before printing (e.g., 1s)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "render timeout (e.g., 30s, 2m)")
	fs.StringVar(&f.browserBin, "browser-bin", "", "Chrome or Chromium executable")
	fs.BoolVar(&f.noSandbox, "no-sandbox", false, "disable the Chrome sandbox (containers)")
}

// addStyleFlags adds stylesheet flags to a FlagSet.
func addStyleFlags(fs *flag.FlagSet, f *styleFlags) {
	fs.StringVar(&f.style, "style", "", "print stylesheet: embedded name or .css path")
	fs.BoolVar(&f.noStyle, "no-style", false, "inject no stylesheet")
}

// newFlagSet creates a FlagSet that reports errors instead of exiting.
func newFlagSet(name string, usage func(io.Writer), w io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() { usage(w) }
	return fs
}

// parseConvertFlags parses convert flags and returns positional arguments.
func parseConvertFlags(args []string, w io.Writer) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := newFlagSet("convert", printConvertUsage, w)

	fs.StringVarP(&f.output, "output", "o", "", "output PDF path")
	fs.StringVar(&f.suffix, "suffix", "", "suffix for the derived PDF name")
	fs.BoolVar(&f.noOpen, "no-open", false, "do not open the PDF afterwards")

	addCommonFlags(fs, &f.common)
	addPageFlags(fs, &f.page)
	addRendererFlags(fs, &f.renderer)
	addStyleFlags(fs, &f.style)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	f.page.marginSet = fs.Changed("margin")
	f.suffixSet = fs.Changed("suffix")

	if fs.NArg() > 1 {
		return nil, nil, fmt.Errorf("%w: expected at most one source, got %d", ErrTooManyArgs, fs.NArg())
	}
	return f, fs.Args(), nil
}

// parseOpenFlags parses open flags and returns positional arguments.
func parseOpenFlags(args []string, w io.Writer) (*openFlags, []string, error) {
	f := &openFlags{}
	fs := newFlagSet("open", printOpenUsage, w)
	addCommonFlags(fs, &f.common)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	if fs.NArg() > 1 {
		return nil, nil, fmt.Errorf("%w: expected at most one source, got %d", ErrTooManyArgs, fs.NArg())
	}
	return f, fs.Args(), nil
}

// parseDoctorFlags parses doctor flags.
func parseDoctorFlags(args []string, w io.Writer) (*doctorFlags, error) {
	f := &doctorFlags{}
	fs := newFlagSet("doctor", printDoctorUsage, w)
	fs.BoolVar(&f.json, "json", false, "print the report as JSON")
	addCommonFlags(fs, &f.common)
	addRendererFlags(fs, &f.renderer)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: doctor takes no arguments", ErrTooManyArgs)
	}
	return f, nil
}

// parseInstallFlags parses install flags.
func parseInstallFlags(args []string, w io.Writer) (*installFlags, error) {
	f := &installFlags{}
	fs := newFlagSet("install", printInstallUsage, w)
	fs.BoolVar(&f.skipBrowser, "skip-browser", false, "do not download Chromium")
	addCommonFlags(fs, &f.common)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: install takes no arguments", ErrTooManyArgs)
	}
	return f, nil
}
