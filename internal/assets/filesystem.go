package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-resume2pdf/internal/fileutil"
)

// MaxStyleSize bounds user-supplied stylesheets.
const MaxStyleSize = 1 << 20

// LoadStyleFile reads a CSS file from disk.
func LoadStyleFile(path string) (string, error) {
	if !strings.EqualFold(filepath.Ext(path), ".css") {
		return "", fmt.Errorf("%w: %q is not a .css file", ErrInvalidAssetName, path)
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrStyleNotFound, path)
		}
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrAssetRead, path)
	}
	if info.Size() > MaxStyleSize {
		return "", fmt.Errorf("%w: %d bytes (max %d)", ErrStyleTooLarge, info.Size(), MaxStyleSize)
	}

	content, err := os.ReadFile(path) // #nosec G304 -- path is user-provided
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return string(content), nil
}

// ResolveStyle returns the CSS for a style reference. A reference that looks
// like a file path is read from disk; anything else names an embedded style.
// An empty reference selects DefaultStyle.
func ResolveStyle(ref string) (string, error) {
	if ref == "" {
		ref = DefaultStyle
	}
	if fileutil.IsFilePath(ref) {
		return LoadStyleFile(ref)
	}
	return LoadStyle(ref)
}
