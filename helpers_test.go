package resume2pdf

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// ---------------------------------------------------------------------------
// Mocks
// ---------------------------------------------------------------------------

// mockRunner records calls and replies per command name.
type mockRunner struct {
	mu    sync.Mutex
	calls [][]string

	// replies maps a command name to its canned output; missing names fail.
	replies map[string]runReply
	// onRun runs before the reply is returned, e.g. to create the output file.
	onRun func(name string, args []string)
}

type runReply struct {
	stdout, stderr string
	err            error
}

func (m *mockRunner) Run(_ context.Context, name string, args ...string) (string, string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, append([]string{name}, args...))
	onRun := m.onRun
	m.mu.Unlock()

	reply, ok := m.replies[name]
	if !ok {
		return "", "", errors.New("exec: \"" + name + "\": executable file not found in $PATH")
	}
	if onRun != nil && reply.err == nil {
		onRun(name, args)
	}
	return reply.stdout, reply.stderr, reply.err
}

func (m *mockRunner) Calls() [][]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([][]string(nil), m.calls...)
}

// mockOpener records opened targets.
type mockOpener struct {
	mu      sync.Mutex
	err     error
	targets []string
}

func (o *mockOpener) Open(_ context.Context, target string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.targets = append(o.targets, target)
	return o.err
}

func (o *mockOpener) Targets() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.targets...)
}

// mockRenderer is a scripted Renderer. When writeOutput is set, Render
// writes a small PDF at job.Output.
type mockRenderer struct {
	strategy     Strategy
	name         string
	availableErr error
	renderErr    error
	writeOutput  bool
	manual       bool

	mu          sync.Mutex
	renderCalls int
	jobs        []Job
	closeCalls  int
}

func (m *mockRenderer) Strategy() Strategy { return m.strategy }
func (m *mockRenderer) Name() string       { return m.name }

func (m *mockRenderer) Available(context.Context) error {
	return m.availableErr
}

func (m *mockRenderer) Render(_ context.Context, job Job) (*Result, error) {
	m.mu.Lock()
	m.renderCalls++
	m.jobs = append(m.jobs, job)
	m.mu.Unlock()

	if m.renderErr != nil {
		return nil, m.renderErr
	}
	if m.manual {
		return &Result{Renderer: m.name, Strategy: m.strategy, Manual: true}, nil
	}
	if m.writeOutput {
		return writePDF(job.Output, []byte("%PDF-1.4 mock"), m.strategy, m.name)
	}
	return &Result{Renderer: m.name, Strategy: m.strategy}, nil
}

func (m *mockRenderer) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closeCalls++
	return nil
}

func (m *mockRenderer) RenderCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.renderCalls
}

func unavailable(reason string) error {
	return errors.Join(ErrRendererUnavailable, errors.New(reason))
}

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

const sampleHTML = `<!DOCTYPE html>
<html><head><title>CV</title></head>
<body><div class="container"><h1 class="name">Ana</h1></div></body></html>`

// writeSource creates name inside a fresh temp dir and returns its path.
func writeSource(t *testing.T, name string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(sampleHTML), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

// pdfFiles lists the .pdf files in dir.
func pdfFiles(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading %s: %v", dir, err)
	}
	var out []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".pdf") {
			out = append(out, e.Name())
		}
	}
	return out
}
