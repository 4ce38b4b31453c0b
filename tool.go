package resume2pdf

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/alnah/go-resume2pdf/internal/fileutil"
)

// External tool names.
const (
	ToolWkhtmltopdf = "wkhtmltopdf"
	ToolWeasyPrint  = "weasyprint"
)

// ParseTool validates an external tool name (case-insensitive).
func ParseTool(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case ToolWkhtmltopdf:
		return ToolWkhtmltopdf, nil
	case ToolWeasyPrint:
		return ToolWeasyPrint, nil
	}
	return "", fmt.Errorf("%w: %q (must be wkhtmltopdf or weasyprint)", ErrInvalidTool, s)
}

// CommandRunner abstracts command execution to enable testing without real subprocesses.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (stdout string, stderr string, err error)
}

// ExecRunner implements CommandRunner using os/exec.
type ExecRunner struct{}

// Run executes name with args and captures both output streams.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...) // #nosec G204 -- tool name comes from a fixed allowlist or explicit config
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// Compile-time interface check.
var _ Renderer = (*toolRenderer)(nil)

// toolRenderer shells out to wkhtmltopdf or weasyprint.
type toolRenderer struct {
	tool    string // ToolWkhtmltopdf or ToolWeasyPrint
	bin     string // executable; defaults to tool
	jsDelay time.Duration
	timeout time.Duration
	runner  CommandRunner

	mu      sync.Mutex
	version string
}

func newToolRenderer(tool, bin string, jsDelay, timeout time.Duration, runner CommandRunner) *toolRenderer {
	if bin == "" {
		bin = tool
	}
	if runner == nil {
		runner = ExecRunner{}
	}
	return &toolRenderer{tool: tool, bin: bin, jsDelay: jsDelay, timeout: timeout, runner: runner}
}

func (r *toolRenderer) Strategy() Strategy { return StrategyTool }
func (r *toolRenderer) Name() string       { return r.tool }

// Available runs "<tool> --version"; any failure means the tool is not callable.
func (r *toolRenderer) Available(ctx context.Context) error {
	stdout, _, err := r.runner.Run(ctx, r.bin, "--version")
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrRendererUnavailable, r.bin, err)
	}
	r.mu.Lock()
	r.version = strings.TrimSpace(stdout)
	r.mu.Unlock()
	return nil
}

// Version returns the output of the last successful availability check.
func (r *toolRenderer) Version() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.version
}

// Render writes the stylesheet to a temp file and invokes the tool on the source.
func (r *toolRenderer) Render(ctx context.Context, job Job) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	pg := job.Page.orDefault()

	css := job.CSS
	if r.tool == ToolWeasyPrint {
		// WeasyPrint takes page geometry from CSS only.
		css = stylesheetFor(job.CSS, pg)
	}

	var cssPath string
	if css != "" {
		path, cleanup, err := fileutil.WriteTempFile(css, "css")
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrToolFailed, err)
		}
		defer cleanup()
		cssPath = path
	}

	var args []string
	switch r.tool {
	case ToolWeasyPrint:
		args = weasyPrintArgs(job.Source, job.Output, cssPath)
	default:
		args = wkhtmltopdfArgs(job.Source, job.Output, cssPath, pg, r.jsDelay)
	}

	_, stderr, err := r.runner.Run(ctx, r.bin, args...)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %s: %v: %s", ErrToolFailed, r.tool, err, strings.TrimSpace(stderr))
	}

	if !fileutil.FileExists(job.Output) {
		return nil, fmt.Errorf("%w: %s produced no file at %s", ErrToolFailed, r.tool, job.Output)
	}

	return &Result{
		Path:     job.Output,
		Size:     fileutil.FileSize(job.Output),
		Renderer: r.tool,
		Strategy: StrategyTool,
	}, nil
}

// Close is a no-op: each invocation is a separate process.
func (r *toolRenderer) Close() error {
	return nil
}

// wkhtmltopdfArgs builds the wkhtmltopdf command line.
func wkhtmltopdfArgs(source, output, cssPath string, pg *PageSettings, jsDelay time.Duration) []string {
	margin := pg.toolMargin()
	orientation := "Portrait"
	if pg.landscape() {
		orientation = "Landscape"
	}

	args := []string{
		"--page-size", pg.toolPageSize(),
		"--orientation", orientation,
		"--margin-top", margin,
		"--margin-right", margin,
		"--margin-bottom", margin,
		"--margin-left", margin,
		"--encoding", "UTF-8",
		"--no-outline",
		"--enable-local-file-access",
		"--print-media-type",
	}
	if jsDelay > 0 {
		args = append(args, "--javascript-delay", strconv.FormatInt(jsDelay.Milliseconds(), 10))
	}
	if cssPath != "" {
		args = append(args, "--user-style-sheet", cssPath)
	}
	return append(args, source, output)
}

// weasyPrintArgs builds the weasyprint command line.
func weasyPrintArgs(source, output, cssPath string) []string {
	args := []string{"--encoding", "utf-8", "--media-type", "print"}
	if cssPath != "" {
		args = append(args, "--stylesheet", cssPath)
	}
	return append(args, source, output)
}
