package resume2pdf

import (
	"context"
	"errors"
	"slices"
	"testing"
)

func TestLauncherCommand(t *testing.T) {
	t.Parallel()

	const target = "/home/ana/index_curriculo.pdf"

	tests := []struct {
		goos     string
		wantName string
		wantArgs []string
		wantErr  error
	}{
		{goos: "darwin", wantName: "open", wantArgs: []string{target}},
		{goos: "windows", wantName: "rundll32", wantArgs: []string{"url.dll,FileProtocolHandler", target}},
		{goos: "linux", wantName: "xdg-open", wantArgs: []string{target}},
		{goos: "freebsd", wantName: "xdg-open", wantArgs: []string{target}},
		{goos: "plan9", wantErr: ErrNoLauncher},
		{goos: "js", wantErr: ErrNoLauncher},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			t.Parallel()

			name, args, err := launcherCommand(tt.goos, target)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("launcherCommand(%q) error = %v, want %v", tt.goos, err, tt.wantErr)
			}
			if name != tt.wantName || !slices.Equal(args, tt.wantArgs) {
				t.Errorf("launcherCommand(%q) = %q %v, want %q %v", tt.goos, name, args, tt.wantName, tt.wantArgs)
			}
		})
	}
}

func TestLauncherCommand_EmptyTarget(t *testing.T) {
	t.Parallel()

	if _, _, err := launcherCommand("linux", ""); !errors.Is(err, ErrOpenFailed) {
		t.Errorf("error = %v, want ErrOpenFailed", err)
	}
}

// ---------------------------------------------------------------------------
// TestSystemOpener_Open
// ---------------------------------------------------------------------------

func TestSystemOpener_Open(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		goos    string
		replies map[string]runReply
		wantErr error
		wantCmd []string
	}{
		{
			name:    "linux success",
			goos:    "linux",
			replies: map[string]runReply{"xdg-open": {}},
			wantCmd: []string{"xdg-open", "cv.pdf"},
		},
		{
			name:    "windows success",
			goos:    "windows",
			replies: map[string]runReply{"rundll32": {}},
			wantCmd: []string{"rundll32", "url.dll,FileProtocolHandler", "cv.pdf"},
		},
		{
			name:    "launcher missing",
			goos:    "linux",
			replies: nil,
			wantErr: ErrOpenFailed,
			wantCmd: []string{"xdg-open", "cv.pdf"},
		},
		{
			name: "no viewer registered",
			goos: "linux",
			replies: map[string]runReply{
				"xdg-open": {stderr: "xdg-open: no method available for opening 'cv.pdf'", err: errors.New("exit status 3")},
			},
			wantErr: ErrOpenFailed,
			wantCmd: []string{"xdg-open", "cv.pdf"},
		},
		{
			name:    "unsupported platform",
			goos:    "plan9",
			wantErr: ErrNoLauncher,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			runner := &mockRunner{replies: tt.replies}
			o := &SystemOpener{GOOS: tt.goos, Runner: runner}

			err := o.Open(context.Background(), "cv.pdf")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Open() error = %v, want %v", err, tt.wantErr)
			}

			calls := runner.Calls()
			if tt.wantCmd == nil {
				if len(calls) != 0 {
					t.Errorf("calls = %v, want none", calls)
				}
				return
			}
			if len(calls) != 1 || !slices.Equal(calls[0], tt.wantCmd) {
				t.Errorf("calls = %v, want [%v]", calls, tt.wantCmd)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestOpenBestEffort - Never fails
// ---------------------------------------------------------------------------

func TestOpenBestEffort(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		opener Opener
		target string
		want   bool
	}{
		{name: "success", opener: &mockOpener{}, target: "cv.pdf", want: true},
		{name: "opener fails", opener: &mockOpener{err: ErrOpenFailed}, target: "cv.pdf", want: false},
		{name: "no launcher", opener: &SystemOpener{GOOS: "plan9", Runner: &mockRunner{}}, target: "cv.pdf", want: false},
		{name: "nil opener", opener: nil, target: "cv.pdf", want: false},
		{name: "empty target", opener: &mockOpener{}, target: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := OpenBestEffort(context.Background(), tt.opener, tt.target); got != tt.want {
				t.Errorf("OpenBestEffort() = %v, want %v", got, tt.want)
			}
		})
	}
}
