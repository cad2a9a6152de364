package errors

import (
	"strings"
	"unicode"
)

// ValidateQuery validates a search query for safety and correctness.
// It rejects queries that could break URL building or file naming.
//
// The validation rules are intentionally conservative:
//   - No empty queries
//   - No control characters
//   - No null bytes
//   - Maximum length of 256 characters
//
// Registry-specific restrictions (e.g. scoped name syntax) are left to the
// registry clients.
func ValidateQuery(query string) error {
	if query == "" {
		return New(ErrCodeInvalidQuery, "query cannot be empty")
	}

	if len(query) > 256 {
		return New(ErrCodeInvalidQuery, "query too long (max 256 characters)")
	}

	for _, r := range query {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidQuery, "query contains invalid control characters")
		}
	}

	return nil
}

// ValidateOutputPath validates an output file path for safety.
// It prevents path traversal and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidateOutputPath(path string) error {
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
		return New(ErrCodeInvalidPath, "path cannot contain traversal sequences")
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}
