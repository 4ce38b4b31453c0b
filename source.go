package resume2pdf

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/alnah/go-resume2pdf/internal/fileutil"
)

// ResolveSource turns a plain path or a file:// URI into an absolute local path.
// Windows URIs such as file:///C:/Users/me/index.html become C:\Users\me\index.html.
func ResolveSource(raw string) (string, error) {
	return resolveSourceFor(raw, runtime.GOOS)
}

// resolveSourceFor is ResolveSource with an explicit target OS, for testing.
func resolveSourceFor(raw, goos string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty path", ErrInvalidSource)
	}

	if strings.Contains(raw, "://") {
		if !fileutil.IsFileURI(raw) {
			return "", fmt.Errorf("%w: only file:// URIs are supported, got %q", ErrInvalidSource, raw)
		}
		p, err := fileURIToPath(raw, goos)
		if err != nil {
			return "", err
		}
		raw = p
	}

	// Windows paths are already absolute once the drive letter is present;
	// filepath.Abs would mangle them on a Unix host.
	if goos == "windows" && isWindowsAbs(raw) {
		return raw, nil
	}

	abs, err := filepath.Abs(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidSource, err)
	}
	return abs, nil
}

// fileURIToPath converts a file:// URI into a local filesystem path.
func fileURIToPath(uri, goos string) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidSource, err)
	}

	p := u.Path
	if p == "" {
		p = u.Opaque
	}
	if p == "" {
		return "", fmt.Errorf("%w: no path in %q", ErrInvalidSource, uri)
	}

	remote := u.Host != "" && !strings.EqualFold(u.Host, "localhost")
	if goos != "windows" {
		if remote {
			return "", fmt.Errorf("%w: remote host %q in %q", ErrInvalidSource, u.Host, uri)
		}
		return p, nil
	}

	// file:///C:/dir -> /C:/dir -> C:/dir
	if len(p) >= 3 && p[0] == '/' && p[2] == ':' {
		p = p[1:]
	}
	// file://server/share -> \\server\share
	if remote {
		p = "//" + u.Host + p
	}
	return strings.ReplaceAll(p, "/", `\`), nil
}

// isWindowsAbs reports whether p starts with a drive letter or a UNC prefix.
func isWindowsAbs(p string) bool {
	if strings.HasPrefix(p, `\\`) {
		return true
	}
	return len(p) >= 3 && p[1] == ':' && (p[2] == '\\' || p[2] == '/')
}

// CheckSource verifies that path exists and is a regular file.
// This is the only gate before a renderer is contacted.
func CheckSource(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s: %w", ErrSourceNotFound, path, os.ErrNotExist)
		}
		return fmt.Errorf("%w: %s: %v", ErrSourceNotFound, path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s", ErrSourceIsDir, path)
	}
	return nil
}

// FileURL returns the file:// URL a browser needs to load path.
func FileURL(path string) string {
	slashed := filepath.ToSlash(path)
	if !strings.HasPrefix(slashed, "/") {
		slashed = "/" + slashed
	}
	u := url.URL{Scheme: "file", Path: slashed}
	return u.String()
}
