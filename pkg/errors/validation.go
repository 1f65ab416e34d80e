package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// maxProfileLength bounds profile names; they become file names and keys.
const maxProfileLength = 64

// profileNameRegex matches profile names: letters, digits, dash, underscore, dot.
var profileNameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidateProfileName validates a dashboard profile name.
// Profiles are used as file names by the file store and as keys by the
// Redis and Mongo stores, so anything resembling a path is rejected:
//   - No empty names
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 64 characters
func ValidateProfileName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "profile name cannot be empty")
	}

	if len(name) > maxProfileLength {
		return New(ErrCodeInvalidInput, "profile name too long (max %d characters)", maxProfileLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "profile name contains invalid control characters")
		}
	}

	if strings.Contains(name, "..") {
		return New(ErrCodeInvalidInput, "profile name cannot contain path traversal sequences (..)")
	}

	if !profileNameRegex.MatchString(name) {
		return New(ErrCodeInvalidInput, "invalid profile name: %q", name)
	}

	return nil
}

// ValidateURL validates a shortcut URL.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}

// ValidateSize checks that a requested item size is at least 1×1.
func ValidateSize(w, h int) error {
	if w < 1 || h < 1 {
		return New(ErrCodeInvalidSize, "size must be at least 1x1, got %dx%d", w, h)
	}
	return nil
}
