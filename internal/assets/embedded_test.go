package assets

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestLoadStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		styleName   string
		wantErr     error
		wantContain string
	}{
		{
			name:        "loads resume style",
			styleName:   "resume",
			wantContain: ".left-column",
		},
		{
			name:        "loads minimal style",
			styleName:   "minimal",
			wantContain: "opacity: 1 !important",
		},
		{
			name:      "returns ErrStyleNotFound for nonexistent",
			styleName: "nonexistent-style-xyz",
			wantErr:   ErrStyleNotFound,
		},
		{
			name:      "returns ErrInvalidAssetName for empty name",
			styleName: "",
			wantErr:   ErrInvalidAssetName,
		},
		{
			name:      "returns ErrInvalidAssetName for path traversal",
			styleName: "../secret",
			wantErr:   ErrInvalidAssetName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := LoadStyle(tt.styleName)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("LoadStyle(%q) error = %v, want %v", tt.styleName, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadStyle(%q) unexpected error: %v", tt.styleName, err)
			}
			if !strings.Contains(got, tt.wantContain) {
				t.Errorf("LoadStyle(%q) missing %q", tt.styleName, tt.wantContain)
			}
		})
	}
}

func TestLoadStyle_ResumeForcesAnimatedSectionsVisible(t *testing.T) {
	t.Parallel()

	css, err := LoadStyle(DefaultStyle)
	if err != nil {
		t.Fatalf("LoadStyle(DefaultStyle) error: %v", err)
	}
	for _, sel := range []string{".experience-item", ".project-item", ".skill-category"} {
		if !strings.Contains(css, sel) {
			t.Errorf("resume style missing selector %s", sel)
		}
	}
	if !strings.Contains(css, "transform: none !important") {
		t.Error("resume style should reset scroll-in transforms")
	}
}

func TestNames(t *testing.T) {
	t.Parallel()

	names := Names()
	if !slices.IsSorted(names) {
		t.Errorf("Names() = %v, want sorted", names)
	}
	for _, want := range []string{"minimal", "resume"} {
		if !slices.Contains(names, want) {
			t.Errorf("Names() = %v, missing %q", names, want)
		}
	}
}

func TestResolveStyle(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	custom := filepath.Join(dir, "custom.css")
	if err := os.WriteFile(custom, []byte("h1 { color: red; }"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name        string
		ref         string
		wantErr     error
		wantContain string
	}{
		{
			name:        "empty selects default style",
			ref:         "",
			wantContain: ".left-column",
		},
		{
			name:        "embedded name",
			ref:         "minimal",
			wantContain: "background: white",
		},
		{
			name:        "file path",
			ref:         custom,
			wantContain: "color: red",
		},
		{
			name:    "missing file",
			ref:     filepath.Join(dir, "missing.css"),
			wantErr: ErrStyleNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ResolveStyle(tt.ref)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ResolveStyle(%q) error = %v, want %v", tt.ref, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveStyle(%q) unexpected error: %v", tt.ref, err)
			}
			if !strings.Contains(got, tt.wantContain) {
				t.Errorf("ResolveStyle(%q) = %q, want substring %q", tt.ref, got, tt.wantContain)
			}
		})
	}
}
