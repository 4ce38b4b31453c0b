package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: resume2pdf [command] [flags] [source]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Converts an HTML résumé (default: index.html) to PDF.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert the résumé to PDF (default)")
	fmt.Fprintln(w, "  open       Open the résumé in the browser to print it by hand")
	fmt.Fprintln(w, "  doctor     Check browsers, converters and the environment")
	fmt.Fprintln(w, "  install    Download Chromium and check external converters")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'resume2pdf help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: resume2pdf convert [source] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert an HTML résumé to PDF and open it.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  source    HTML path or file:// URI (default: config source, then index.html)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <path>       PDF path (default: <name>_curriculo.pdf)")
	fmt.Fprintln(w, "      --suffix <s>          Suffix for the derived PDF name")
	fmt.Fprintln(w, "      --no-open             Do not open the PDF afterwards")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "  -s, --strategy <s>        Preferred strategy: library, tool, browser")
	fmt.Fprintln(w, "      --engine <s>          Headless Chrome driver: rod, chromedp")
	fmt.Fprintln(w, "      --tool <s>            External converter: wkhtmltopdf, weasyprint")
	fmt.Fprintln(w, "      --tool-path <path>    External converter executable")
	fmt.Fprintln(w, "      --js-delay <d>        Time for page scripts before printing (default 1s)")
	fmt.Fprintln(w, "  -t, --timeout <d>         Render timeout (default 30s)")
	fmt.Fprintln(w, "      --browser-bin <path>  Chrome or Chromium executable")
	fmt.Fprintln(w, "      --no-sandbox          Disable the Chrome sandbox (containers)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "  -p, --page-size <s>       Page size: a4, letter, legal")
	fmt.Fprintln(w, "      --orientation <s>     Orientation: portrait, landscape")
	fmt.Fprintln(w, "      --margin <f>          Margin in centimeters (0-5, default 0.5)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --style <name|path>   Print stylesheet (default: resume)")
	fmt.Fprintln(w, "      --no-style            Inject no stylesheet")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "General:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show renderer selection and timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Strategies fall back in order: library, tool, browser.")
}

// printOpenUsage prints usage for the open command.
func printOpenUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: resume2pdf open [source] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Open the résumé in the default browser and show how to save it as PDF.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug output")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: resume2pdf doctor [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check Chrome, wkhtmltopdf, weasyprint, the browser launcher and the")
	fmt.Fprintln(w, "temp directory. Exits 1 when no renderer is usable.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --json                Print the report as JSON")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -s, --strategy <s>        Preferred strategy to check from")
	fmt.Fprintln(w, "      --tool <s>            External converter to check")
	fmt.Fprintln(w, "      --tool-path <path>    External converter executable")
	fmt.Fprintln(w, "      --browser-bin <path>  Chrome or Chromium executable")
}

// printInstallUsage prints usage for the install command.
func printInstallUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: resume2pdf install [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Download Chromium (unless one is installed) and check wkhtmltopdf and")
	fmt.Fprintln(w, "weasyprint, with install guidance for missing ones.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --skip-browser        Do not download Chromium")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "open":
		printOpenUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "install":
		printInstallUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: resume2pdf version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: resume2pdf help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
