package main

// Notes:
// - runOpenCmd: the opener is faked; we check the target URL, the printed
//   checklist, and that every failure still exits 0.

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	resume2pdf "github.com/alnah/go-resume2pdf"
)

// ---------------------------------------------------------------------------
// TestRunOpenCmd - Manual print route
// ---------------------------------------------------------------------------

func TestRunOpenCmd(t *testing.T) {
	t.Parallel()

	t.Run("opens the file URL and prints the checklist", func(t *testing.T) {
		t.Parallel()

		dir, src := writeResume(t)
		te := newTestEnv()

		code := runOpenCmd(context.Background(), []string{src, "-c", writeConfig(t, dir, "")}, te.Environment)

		if code != ExitSuccess {
			t.Fatalf("exit = %d, want %d\nstderr: %s", code, ExitSuccess, te.stderr.String())
		}
		opened := te.opener.opened()
		if len(opened) != 1 || opened[0] != resume2pdf.FileURL(src) {
			t.Errorf("opened = %v, want [%s]", opened, resume2pdf.FileURL(src))
		}
		out := te.stdout.String()
		for _, s := range []string{"1. press Ctrl+P", "Save as PDF", "headers and footers"} {
			if !strings.Contains(out, s) {
				t.Errorf("stdout should contain %q, got:\n%s", s, out)
			}
		}
	})

	t.Run("missing source exits 0 with a hint", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		te := newTestEnv()

		code := runOpenCmd(context.Background(), []string{filepath.Join(dir, "nope.html"), "-c", writeConfig(t, dir, "")}, te.Environment)

		if code != ExitSuccess {
			t.Errorf("exit = %d, want %d", code, ExitSuccess)
		}
		if len(te.opener.opened()) != 0 {
			t.Error("opener should not run for a missing source")
		}
		if !strings.Contains(te.stderr.String(), "hint:") {
			t.Errorf("stderr should carry a hint, got %q", te.stderr.String())
		}
	})

	t.Run("opener failure exits 0", func(t *testing.T) {
		t.Parallel()

		dir, src := writeResume(t)
		te := newTestEnv()
		te.opener.err = errors.New("xdg-open: not found")

		code := runOpenCmd(context.Background(), []string{src, "-c", writeConfig(t, dir, "")}, te.Environment)

		if code != ExitSuccess {
			t.Errorf("exit = %d, want %d", code, ExitSuccess)
		}
		if !strings.Contains(te.stderr.String(), "could not open the browser") {
			t.Errorf("stderr = %q, want open failure", te.stderr.String())
		}
		if !strings.Contains(te.stdout.String(), "manually") {
			t.Errorf("stdout should suggest opening manually, got %q", te.stdout.String())
		}
	})

	t.Run("too many arguments is a usage error", func(t *testing.T) {
		t.Parallel()

		te := newTestEnv()
		if code := runOpenCmd(context.Background(), []string{"a.html", "b.html"}, te.Environment); code != ExitUsage {
			t.Errorf("exit = %d, want %d", code, ExitUsage)
		}
	})
}
