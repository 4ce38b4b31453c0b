package codec_test

// Notes:
// - MaxInputSize is not mutated here; oversized input is built instead so the
//   tests stay parallel-safe.

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-resume2pdf/internal/codec"
)

type testConfig struct {
	Name    string `yaml:"name" toml:"name"`
	Count   int    `yaml:"count" toml:"count"`
	Enabled bool   `yaml:"enabled" toml:"enabled"`
	Page    struct {
		Size string `yaml:"size" toml:"size"`
	} `yaml:"page" toml:"page"`
}

// ---------------------------------------------------------------------------
// TestFormatFor - Maps file extensions to formats
// ---------------------------------------------------------------------------

func TestFormatFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path    string
		want    codec.Format
		wantErr error
	}{
		{path: "resume2pdf.yaml", want: codec.FormatYAML},
		{path: "resume2pdf.yml", want: codec.FormatYAML},
		{path: "dir/Resume2PDF.YAML", want: codec.FormatYAML},
		{path: "resume2pdf.toml", want: codec.FormatTOML},
		{path: "resume2pdf.json", wantErr: codec.ErrUnsupportedFormat},
		{path: "resume2pdf", wantErr: codec.ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			got, err := codec.FormatFor(tt.path)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("FormatFor(%q) error = %v, want %v", tt.path, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("FormatFor(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict - Strict decoding for both formats
// ---------------------------------------------------------------------------

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		format     codec.Format
		data       string
		dest       any
		wantErr    error
		wantErrMsg string
		check      func(t *testing.T, cfg *testConfig)
	}{
		{
			name:   "valid YAML",
			format: codec.FormatYAML,
			data:   "name: test\ncount: 42\nenabled: true\npage:\n  size: a4\n",
			dest:   &testConfig{},
			check: func(t *testing.T, cfg *testConfig) {
				if cfg.Name != "test" || cfg.Count != 42 || !cfg.Enabled || cfg.Page.Size != "a4" {
					t.Errorf("decoded = %+v", cfg)
				}
			},
		},
		{
			name:   "valid TOML",
			format: codec.FormatTOML,
			data:   "name = \"test\"\ncount = 42\nenabled = true\n\n[page]\nsize = \"a4\"\n",
			dest:   &testConfig{},
			check: func(t *testing.T, cfg *testConfig) {
				if cfg.Name != "test" || cfg.Count != 42 || !cfg.Enabled || cfg.Page.Size != "a4" {
					t.Errorf("decoded = %+v", cfg)
				}
			},
		},
		{
			name:       "unknown YAML field",
			format:     codec.FormatYAML,
			data:       "name: test\nunknown: value\n",
			dest:       &testConfig{},
			wantErrMsg: "codec:",
		},
		{
			name:       "unknown TOML field",
			format:     codec.FormatTOML,
			data:       "name = \"test\"\n\n[page]\nsize = \"a4\"\ncolour = \"red\"\n",
			dest:       &testConfig{},
			wantErr:    codec.ErrUnknownFields,
			wantErrMsg: "page.colour",
		},
		{
			name:       "invalid YAML syntax",
			format:     codec.FormatYAML,
			data:       "name: [unclosed",
			dest:       &testConfig{},
			wantErrMsg: "codec:",
		},
		{
			name:       "invalid TOML syntax",
			format:     codec.FormatTOML,
			data:       "name = ",
			dest:       &testConfig{},
			wantErrMsg: "codec:",
		},
		{
			name:    "empty data",
			format:  codec.FormatYAML,
			data:    "",
			dest:    &testConfig{},
			wantErr: codec.ErrNilData,
		},
		{
			name:    "nil destination",
			format:  codec.FormatTOML,
			data:    "name = \"x\"",
			dest:    nil,
			wantErr: codec.ErrNilDestination,
		},
		{
			name:    "oversized input",
			format:  codec.FormatYAML,
			data:    "name: " + strings.Repeat("a", codec.MaxInputSize),
			dest:    &testConfig{},
			wantErr: codec.ErrInputTooLarge,
		},
		{
			name:    "unsupported format",
			format:  codec.Format("json"),
			data:    "{}",
			dest:    &testConfig{},
			wantErr: codec.ErrUnsupportedFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := codec.UnmarshalStrict(tt.format, []byte(tt.data), tt.dest)

			if tt.wantErr == nil && tt.wantErrMsg == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if tt.check != nil {
					tt.check(t, tt.dest.(*testConfig))
				}
				return
			}

			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErrMsg != "" && !strings.Contains(err.Error(), tt.wantErrMsg) {
				t.Errorf("error = %q, want substring %q", err.Error(), tt.wantErrMsg)
			}
		})
	}
}
