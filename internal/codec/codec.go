// Package codec wraps YAML and TOML parsing to isolate the external
// dependencies. Both decoders are strict: unknown keys are rejected.
package codec

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// MaxInputSize limits input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

// Format identifies a configuration file syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var (
	ErrNilData           = errors.New("codec: nil or empty data")
	ErrNilDestination    = errors.New("codec: nil destination pointer")
	ErrInputTooLarge     = errors.New("codec: input exceeds maximum size")
	ErrUnknownFields     = errors.New("codec: unknown fields")
	ErrUnsupportedFormat = errors.New("codec: unsupported format")
)

// FormatFor returns the format implied by a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// UnmarshalStrict decodes data in the given format, rejecting unknown fields.
func UnmarshalStrict(format Format, data []byte, v any) error {
	switch format {
	case FormatYAML:
		return UnmarshalYAMLStrict(data, v)
	case FormatTOML:
		return UnmarshalTOMLStrict(data, v)
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

func validateInput(data []byte, v any) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}
