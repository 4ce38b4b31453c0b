package codec

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// UnmarshalTOMLStrict decodes TOML and fails on keys that map to no field.
func UnmarshalTOMLStrict(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}

	md, err := toml.Decode(string(data), v)
	if err != nil {
		return fmt.Errorf("codec: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%w: %s", ErrUnknownFields, strings.Join(keys, ", "))
	}
	return nil
}
