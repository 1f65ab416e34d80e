package errors

import (
	"strings"
	"testing"
)

func TestValidateProfileName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "default", false},
		{"with dash", "work-laptop", false},
		{"with underscore", "home_pc", false},
		{"with dot", "v1.home", false},
		{"digits", "2024", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 65), true},
		{"path traversal", "../etc", true},
		{"double dot middle", "a..b", true},
		{"slash", "a/b", true},
		{"backslash", "a\\b", true},
		{"starts with dot", ".hidden", true},
		{"control char", "a\x01b", true},
		{"space", "my profile", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProfileName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateProfileName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateProfileName(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"https", "https://example.com/path", false},
		{"http", "http://example.com/path", false},

		{"empty", "", true},
		{"ftp", "ftp://example.com", true},
		{"file", "file:///etc/passwd", true},
		{"javascript", "javascript:alert(1)", true},
		{"no scheme", "example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateSize(t *testing.T) {
	tests := []struct {
		w, h    int
		wantErr bool
	}{
		{1, 1, false},
		{4, 2, false},
		{0, 1, true},
		{1, 0, true},
		{-2, 3, true},
	}

	for _, tt := range tests {
		err := ValidateSize(tt.w, tt.h)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateSize(%d, %d) error = %v, wantErr %v", tt.w, tt.h, err, tt.wantErr)
		}
		if err != nil && !Is(err, ErrCodeInvalidSize) {
			t.Errorf("ValidateSize(%d, %d) returned wrong code: %v", tt.w, tt.h, err)
		}
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput,
		ErrCodeInvalidConfig,
		ErrCodeInvalidLayout,
		ErrCodeInvalidSize,
		ErrCodeNotFound,
		ErrCodeWidgetNotFound,
		ErrCodeItemNotFound,
		ErrCodeInteractionNotFound,
		ErrCodeInteractionActive,
		ErrCodeStorage,
		ErrCodeInternal,
		ErrCodeUnsupported,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
