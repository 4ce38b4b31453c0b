package codec

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// UnmarshalYAMLStrict rejects unknown fields in the input.
func UnmarshalYAMLStrict(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("codec: %w", err)
	}
	return nil
}
