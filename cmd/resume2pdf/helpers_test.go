package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	resume2pdf "github.com/alnah/go-resume2pdf"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Fakes for renderers, opener and subprocesses
// ---------------------------------------------------------------------------

// fakeRenderer writes a tiny PDF, or fails as configured.
type fakeRenderer struct {
	strategy     resume2pdf.Strategy
	name         string
	availableErr error
	renderErr    error
	manual       bool

	mu      sync.Mutex
	renders int
	lastJob resume2pdf.Job
}

func (r *fakeRenderer) Strategy() resume2pdf.Strategy { return r.strategy }
func (r *fakeRenderer) Name() string                  { return r.name }
func (r *fakeRenderer) Close() error                  { return nil }

func (r *fakeRenderer) Available(context.Context) error { return r.availableErr }

func (r *fakeRenderer) Render(ctx context.Context, job resume2pdf.Job) (*resume2pdf.Result, error) {
	r.mu.Lock()
	r.renders++
	r.lastJob = job
	r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.renderErr != nil {
		return nil, r.renderErr
	}
	if r.manual {
		return &resume2pdf.Result{Renderer: r.name, Strategy: r.strategy, Manual: true}, nil
	}

	data := []byte("%PDF-1.4 fake")
	if err := os.WriteFile(job.Output, data, 0o644); err != nil {
		return nil, fmt.Errorf("%w: %v", resume2pdf.ErrWritePDF, err)
	}
	return &resume2pdf.Result{
		Path:     job.Output,
		Size:     int64(len(data)),
		Renderer: r.name,
		Strategy: r.strategy,
	}, nil
}

func (r *fakeRenderer) renderCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.renders
}

func (r *fakeRenderer) job() resume2pdf.Job {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastJob
}

func libraryRenderer() *fakeRenderer {
	return &fakeRenderer{strategy: resume2pdf.StrategyLibrary, name: "rod"}
}

func toolRenderer() *fakeRenderer {
	return &fakeRenderer{strategy: resume2pdf.StrategyTool, name: "wkhtmltopdf"}
}

func browserRenderer() *fakeRenderer {
	return &fakeRenderer{strategy: resume2pdf.StrategyBrowser, name: "browser", manual: true}
}

func unavailable(reason string) error {
	return fmt.Errorf("%w: %s", resume2pdf.ErrRendererUnavailable, reason)
}

// fakeOpener records targets and returns err.
type fakeOpener struct {
	err error

	mu      sync.Mutex
	targets []string
}

func (o *fakeOpener) Open(_ context.Context, target string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.targets = append(o.targets, target)
	return o.err
}

func (o *fakeOpener) opened() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.targets...)
}

// fakeRunner answers "--version" for known executables.
type fakeRunner struct {
	versions map[string]string
}

func (r *fakeRunner) Run(_ context.Context, name string, _ ...string) (string, string, error) {
	if v, ok := r.versions[name]; ok {
		return v + "\n", "", nil
	}
	return "", "", fmt.Errorf("exec: %q: %w", name, errors.New("executable file not found in $PATH"))
}

// testEnv bundles an Environment with its captured output.
type testEnv struct {
	*Environment
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	opener *fakeOpener
	runner *fakeRunner
}

// newTestEnv builds an Environment that never touches a real browser.
func newTestEnv(renderers ...resume2pdf.Renderer) *testEnv {
	te := &testEnv{
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
		opener: &fakeOpener{},
		runner: &fakeRunner{versions: map[string]string{}},
	}
	te.Environment = &Environment{
		Stdout:     te.stdout,
		Stderr:     te.stderr,
		Opener:     te.opener,
		Runner:     te.runner,
		LookChrome: func() (string, bool) { return "", false },
		DownloadBrowser: func(context.Context) (string, error) {
			return "", errors.New("download disabled in tests")
		},
	}
	if len(renderers) > 0 {
		te.ConverterOptions = []resume2pdf.Option{resume2pdf.WithRenderers(renderers...)}
	}
	return te
}

// writeFile creates dir/name with content and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// writeResume creates an index.html in a fresh temp dir.
func writeResume(t *testing.T) (dir, path string) {
	t.Helper()
	dir = t.TempDir()
	path = writeFile(t, dir, "index.html", "<html><body><h1>Jane Doe</h1></body></html>")
	return dir, path
}

// writeConfig creates a config file so tests never read the user's config.
func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	if content == "" {
		content = "strategy: library\n"
	}
	return writeFile(t, dir, "test-config.yaml", content)
}
