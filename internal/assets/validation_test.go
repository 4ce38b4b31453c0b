package assets

import (
	"errors"
	"testing"
)

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		// Valid names
		{name: "simple name", input: "resume"},
		{name: "name with hyphen", input: "my-style"},
		{name: "name with underscore", input: "my_style"},

		// Invalid names
		{name: "empty", input: "", wantErr: ErrInvalidAssetName},
		{name: "forward slash", input: "styles/resume", wantErr: ErrInvalidAssetName},
		{name: "backslash", input: "styles\\resume", wantErr: ErrInvalidAssetName},
		{name: "dot extension", input: "resume.css", wantErr: ErrInvalidAssetName},
		{name: "traversal", input: "..", wantErr: ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateAssetName(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateAssetName(%q) = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
