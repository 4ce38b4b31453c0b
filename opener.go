package resume2pdf

import (
	"context"
	"fmt"
	"runtime"
	"strings"
)

// Opener hands a file or URL to the platform's default application.
type Opener interface {
	Open(ctx context.Context, target string) error
}

// Compile-time interface check.
var _ Opener = (*SystemOpener)(nil)

// SystemOpener uses open (macOS), rundll32 (Windows) or xdg-open (elsewhere).
type SystemOpener struct {
	GOOS   string        // empty = runtime.GOOS
	Runner CommandRunner // nil = ExecRunner
}

// NewSystemOpener returns an opener for the running platform.
func NewSystemOpener() *SystemOpener {
	return &SystemOpener{GOOS: runtime.GOOS, Runner: ExecRunner{}}
}

// Command returns the launcher invocation for target on the opener's platform.
func (o *SystemOpener) Command(target string) (name string, args []string, err error) {
	goos := o.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	return launcherCommand(goos, target)
}

// Open runs the launcher and waits for it, so a missing viewer surfaces as an error.
func (o *SystemOpener) Open(ctx context.Context, target string) error {
	name, args, err := o.Command(target)
	if err != nil {
		return err
	}

	runner := o.Runner
	if runner == nil {
		runner = ExecRunner{}
	}

	if _, stderr, err := runner.Run(ctx, name, args...); err != nil {
		if msg := strings.TrimSpace(stderr); msg != "" {
			return fmt.Errorf("%w: %s: %v: %s", ErrOpenFailed, name, err, msg)
		}
		return fmt.Errorf("%w: %s: %v", ErrOpenFailed, name, err)
	}
	return nil
}

// launcherCommand maps a platform to its default-application launcher.
func launcherCommand(goos, target string) (string, []string, error) {
	if target == "" {
		return "", nil, fmt.Errorf("%w: empty target", ErrOpenFailed)
	}
	switch goos {
	case "darwin":
		return "open", []string{target}, nil
	case "windows":
		// rundll32 avoids cmd.exe re-parsing & and ^ in paths.
		return "rundll32", []string{"url.dll,FileProtocolHandler", target}, nil
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly", "solaris", "illumos":
		return "xdg-open", []string{target}, nil
	default:
		return "", nil, fmt.Errorf("%w: %s", ErrNoLauncher, goos)
	}
}

// OpenBestEffort opens target and reports whether it worked.
// Failures are never returned: a machine without a registered viewer is
// an ordinary outcome, not an error.
func OpenBestEffort(ctx context.Context, o Opener, target string) bool {
	if o == nil || target == "" {
		return false
	}
	return o.Open(ctx, target) == nil
}
