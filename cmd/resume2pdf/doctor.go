package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"

	resume2pdf "github.com/alnah/go-resume2pdf"
	"github.com/alnah/go-resume2pdf/internal/config"
	"github.com/alnah/go-resume2pdf/internal/hints"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status    string         `json:"status"` // "ready", "warnings", "errors"
	Chrome    chromeInfo     `json:"chrome"`
	Tools     []toolInfo     `json:"tools"`
	Renderers []rendererInfo `json:"renderers"`
	Env       envInfo        `json:"environment"`
	System    systemInfo     `json:"system"`
	Warnings  []string       `json:"warnings,omitempty"`
	Errors    []string       `json:"errors,omitempty"`
}

// chromeInfo holds Chrome/Chromium detection results.
type chromeInfo struct {
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
	Sandbox bool   `json:"sandbox"`
}

// toolInfo holds external converter detection results.
type toolInfo struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	Found   bool   `json:"found"`
	Version string `json:"version,omitempty"`
}

// rendererInfo reports one step of the fallback chain.
type rendererInfo struct {
	Name      string `json:"name"`
	Strategy  string `json:"strategy"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS            string `json:"os"`
	Arch          string `json:"arch"`
	Container     bool   `json:"container"`
	ContainerHint string `json:"container_hint,omitempty"`
	CI            bool   `json:"ci"`
	Config        string `json:"config,omitempty"`
}

// systemInfo holds system check results.
type systemInfo struct {
	TempWritable bool `json:"temp_writable"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(ctx context.Context, args []string, env *Environment) int {
	flags, err := parseDoctorFlags(args, env.Stderr)
	if err != nil {
		return flagErrorCode(err, env)
	}

	logger := newLogger(env.Stderr, levelFor(flags.common))
	cfg, err := loadSettings(flags.common, logger, func(c *config.Config) { mergeRendererFlags(&flags.renderer, c) })
	if err != nil {
		newUI(env, false).failure("%v%s", err, hintFor(err, nil))
		return exitCodeFor(err)
	}

	result := runDoctor(ctx, cfg, env, logger)
	result.Env.Config = flags.common.config

	if flags.json {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(ctx context.Context, cfg *config.Config, env *Environment, logger *log.Logger) *doctorResult {
	result := &doctorResult{
		Status: "ready",
		Env: envInfo{
			OS:   runtime.GOOS,
			Arch: runtime.GOARCH,
		},
	}

	checkChrome(ctx, result, cfg, env)
	checkTools(ctx, result, cfg, env)
	checkRenderers(ctx, result, cfg, env, logger)
	checkEnvironment(result, cfg)
	checkSystem(result)

	// Determine final status
	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}

	return result
}

// checkChrome detects Chrome/Chromium installation.
// A missing browser is a warning: the tool and browser strategies remain.
func checkChrome(ctx context.Context, result *doctorResult, cfg *config.Config, env *Environment) {
	chromePath := cfg.Browser.Bin

	if chromePath == "" {
		var found bool
		if env.LookChrome != nil {
			chromePath, found = env.LookChrome()
		}
		if !found {
			result.Warnings = append(result.Warnings,
				"Chrome/Chromium not found. Run 'resume2pdf install' or set RESUME2PDF_BROWSER_BIN")
			return
		}
	}

	if _, err := os.Stat(chromePath); err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Chrome not found at %s", chromePath))
		return
	}

	result.Chrome.Found = true
	result.Chrome.Path = chromePath
	result.Chrome.Sandbox = !cfg.Browser.NoSandbox && !resume2pdf.DefaultNoSandbox()

	if version, err := toolVersion(ctx, env, chromePath); err == nil {
		result.Chrome.Version = version
	} else {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Could not get Chrome version: %v", err))
	}
}

// checkTools checks both external converters. The configured tool uses
// its configured path.
func checkTools(ctx context.Context, result *doctorResult, cfg *config.Config, env *Environment) {
	for _, name := range []string{resume2pdf.ToolWkhtmltopdf, resume2pdf.ToolWeasyPrint} {
		info := toolInfo{Name: name, Path: toolBinFor(name, cfg)}
		if version, err := toolVersion(ctx, env, info.Path); err == nil {
			info.Found = true
			info.Version = version
		}
		result.Tools = append(result.Tools, info)
	}
}

// toolBinFor returns the executable to check for tool.
func toolBinFor(tool string, cfg *config.Config) string {
	configured := cfg.Tool.Name
	if configured == "" {
		configured = resume2pdf.ToolWkhtmltopdf
	}
	if cfg.Tool.Path != "" && strings.EqualFold(configured, tool) {
		return cfg.Tool.Path
	}
	return tool
}

// toolVersion runs "bin --version" and returns the first output line.
func toolVersion(ctx context.Context, env *Environment, bin string) (string, error) {
	runner := env.Runner
	if runner == nil {
		runner = resume2pdf.ExecRunner{}
	}
	stdout, stderr, err := runner.Run(ctx, bin, "--version")
	if err != nil {
		return "", err
	}
	out := strings.TrimSpace(stdout)
	if out == "" {
		out = strings.TrimSpace(stderr)
	}
	first, _, _ := strings.Cut(out, "\n")
	return strings.TrimSpace(first), nil
}

// checkRenderers walks the configured fallback chain.
func checkRenderers(ctx context.Context, result *doctorResult, cfg *config.Config, env *Environment, logger *log.Logger) {
	opts, err := buildOptions(cfg, env, logger)
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		return
	}
	conv, err := resume2pdf.NewConverter(opts...)
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		return
	}
	defer func() { _ = conv.Close() }()

	usable := 0
	automated := 0
	for _, a := range conv.Check(ctx) {
		info := rendererInfo{Name: a.Renderer, Strategy: string(a.Strategy), Available: a.Err == nil}
		if a.Err != nil {
			info.Reason = a.Err.Error()
		} else {
			usable++
			if a.Strategy != resume2pdf.StrategyBrowser {
				automated++
			}
		}
		result.Renderers = append(result.Renderers, info)
	}

	switch {
	case usable == 0:
		result.Errors = append(result.Errors,
			"No renderer available. Run 'resume2pdf install' or install wkhtmltopdf")
	case automated == 0:
		result.Warnings = append(result.Warnings,
			"Only the manual browser hand-off is available; PDFs must be printed by hand")
	}
}

// checkEnvironment detects container and CI environments.
func checkEnvironment(result *doctorResult, cfg *config.Config) {
	result.Env.Container, result.Env.ContainerHint = isContainer()
	result.Env.CI = hints.InCI()

	// Warn if container/CI without sandbox disabled
	if (result.Env.Container || result.Env.CI) && result.Chrome.Found && result.Chrome.Sandbox {
		result.Warnings = append(result.Warnings,
			"Container/CI detected but the Chrome sandbox is enabled. Set RESUME2PDF_NO_SANDBOX=1")
	}
}

// isContainer detects if running in a container environment.
// Returns (isContainer, hint) where hint indicates which signal was detected.
func isContainer() (bool, string) {
	// Explicit override (highest priority)
	if os.Getenv("RESUME2PDF_CONTAINER") == "1" {
		return true, "RESUME2PDF_CONTAINER=1"
	}
	// Docker
	if hints.IsInContainer() {
		return true, "/.dockerenv"
	}
	// Podman / systemd-nspawn / general container indicator
	if v := os.Getenv("container"); v != "" {
		return true, "container=" + v
	}
	// Kubernetes
	if os.Getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true, "KUBERNETES_SERVICE_HOST"
	}
	return false, ""
}

// checkSystem verifies system requirements.
func checkSystem(result *doctorResult) {
	// External tools read their stylesheet from the temp directory.
	tmpDir := os.TempDir()
	testFile := filepath.Join(tmpDir, fmt.Sprintf("resume2pdf-doctor-%d", os.Getpid()))
	if err := os.WriteFile(testFile, []byte("test"), 0o600); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Temp directory not writable: %s", tmpDir))
	} else {
		_ = os.Remove(testFile)
		result.System.TempWritable = true
	}
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "resume2pdf doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Chrome/Chromium")
	if r.Chrome.Found {
		fmt.Fprintf(w, "  [OK] Found at %s\n", r.Chrome.Path)
		if r.Chrome.Version != "" {
			fmt.Fprintf(w, "  [OK] Version: %s\n", r.Chrome.Version)
		}
		if r.Chrome.Sandbox {
			fmt.Fprintln(w, "  [OK] Sandbox: enabled")
		} else {
			fmt.Fprintln(w, "  [OK] Sandbox: disabled")
		}
	} else {
		fmt.Fprintln(w, "  [WARN] Not found")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "External tools")
	for _, t := range r.Tools {
		if t.Found {
			fmt.Fprintf(w, "  [OK] %s: %s\n", t.Name, t.Version)
		} else {
			fmt.Fprintf(w, "  [WARN] %s: not found (%s)\n", t.Name, t.Path)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Renderers (fallback order)")
	for _, rr := range r.Renderers {
		if rr.Available {
			fmt.Fprintf(w, "  [OK] %s (%s)\n", rr.Name, rr.Strategy)
		} else {
			fmt.Fprintf(w, "  [WARN] %s (%s): %s\n", rr.Name, rr.Strategy, rr.Reason)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	if r.Env.Container {
		fmt.Fprintf(w, "  [OK] Container: detected (%s)\n", r.Env.ContainerHint)
	}
	if r.Env.CI {
		fmt.Fprintln(w, "  [OK] CI: detected")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "System")
	if r.System.TempWritable {
		fmt.Fprintln(w, "  [OK] Temp directory: writable")
	} else {
		fmt.Fprintln(w, "  [ERROR] Temp directory: not writable")
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready to convert")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
