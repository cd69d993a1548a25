package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// templateIDRegex matches identifiers safe to use as file names and store keys.
var templateIDRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidateTemplateID validates a template identifier for safety and correctness.
// It rejects identifiers that could be used for path traversal or key injection.
//
// The validation rules are intentionally conservative:
//   - No empty identifiers
//   - No control characters
//   - No path traversal sequences (.., /, \)
//   - Maximum length of 128 characters
func ValidateTemplateID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "template id cannot be empty")
	}

	if len(id) > 128 {
		return New(ErrCodeInvalidInput, "template id too long (max 128 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "template id contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"/",    // Path separator
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(id, pattern) {
			return New(ErrCodeInvalidInput, "template id contains invalid characters: %q", pattern)
		}
	}

	if !templateIDRegex.MatchString(id) {
		return New(ErrCodeInvalidInput, "invalid template id: %q", id)
	}

	return nil
}

// ValidatePath validates a file path for safety.
// It prevents path traversal attacks and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	return nil
}

// ValidateURL validates a URL string for safety.
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

// ValidateImageSource validates the src attribute of an image block.
// Besides http(s) URLs, inline data URLs with an image media type are accepted.
func ValidateImageSource(src string) error {
	if strings.HasPrefix(src, "data:image/") {
		return nil
	}
	if err := ValidateURL(src); err != nil {
		return New(ErrCodeInvalidInput, "image source must be an http(s) or data:image URL")
	}
	return nil
}
