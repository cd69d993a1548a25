package errors

import (
	"strings"
	"testing"
)

func TestValidateTemplateID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "cats", false},
		{"valid with dash", "quarterly-review", false},
		{"valid with underscore", "q4_review", false},
		{"valid with dot", "deck.v2", false},
		{"valid uuid", "1b4e28ba-2fa1-11d2-883f-0016d3cca427", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 200), true},
		{"path traversal ..", "foo..bar", true},
		{"slash", "foo/bar", true},
		{"null byte", "foo\x00bar", true},
		{"backslash", "foo\\bar", true},
		{"control char", "foo\x01bar", true},
		{"leading dash", "-deck", true},
		{"space", "my deck", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTemplateID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTemplateID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateTemplateID(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "decks/cats.json", false},
		{"absolute", "/tmp/cats.json", false},
		{"empty", "", true},
		{"traversal", "../secrets.json", true},
		{"control char", "deck\x07.json", true},
		{"too long", strings.Repeat("a", 600), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateImageSource(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"https", "https://example.com/cat.png", false},
		{"http", "http://example.com/cat.png", false},
		{"data url", "data:image/png;base64,AAAA", false},
		{"javascript", "javascript:alert(1)", true},
		{"data non-image", "data:text/html,<b>x</b>", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateImageSource(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateImageSource(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
