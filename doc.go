// Package resume2pdf turns a static HTML résumé into a PDF.
//
// # Quick Start
//
// Create a converter, convert the page, and close when done:
//
//	conv, err := resume2pdf.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	result, err := conv.Convert(ctx, resume2pdf.Request{
//	    Source: "index.html",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%s (%.1f KB)\n", result.Path, result.SizeKB())
//
// Without Request.Output the PDF lands next to the source with the
// "_curriculo" suffix: index.html becomes index_curriculo.pdf.
//
// # Pipeline
//
//  1. Resolve the source: plain paths and file:// URIs, including
//     Windows drive letters (file:///C:/Users/...)
//  2. Check that the file exists; nothing is rendered otherwise
//  3. Derive the output path
//  4. Dispatch to the first available renderer of the fallback chain
//
// # Strategies
//
// Three strategies exist, from most to least automated:
//
//   - StrategyLibrary: headless Chrome in-process, through go-rod (default)
//     or chromedp (WithEngine)
//   - StrategyTool: wkhtmltopdf or weasyprint as a subprocess (WithTool)
//   - StrategyBrowser: opens the page in the default browser; the user
//     prints it with Ctrl+P. Result.Manual is set and no PDF is written.
//
// WithStrategy picks the preferred one. Renderers that cannot run on this
// machine (no Chrome, tool not on PATH) are skipped in favor of the next
// strategy. A renderer that starts and fails ends the conversion with its
// error; it is not retried elsewhere.
//
// # Print Stylesheet
//
// Request.CSS is injected into the loaded page before printing, so relative
// images and fonts still resolve against the source directory. Page size,
// orientation and margins come from Request.Page (A4 portrait, 0.5cm by
// default).
//
// # Opening the Result
//
// OpenBestEffort hands the PDF to the platform viewer (open, rundll32 or
// xdg-open) and only reports whether it worked.
//
// # Browser Requirements
//
// The library strategy needs Chrome or Chromium on PATH, at WithBrowserBin,
// or previously downloaded into rod's cache (see the install command). In
// containers and CI, use WithNoSandbox(true).
package resume2pdf
