package harvest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dferrans/pkgreach/pkg/errors"
)

// SafeFilename maps a query to a filesystem-safe base name: characters
// outside [A-Za-z0-9._-] become underscores, so scoped queries like
// "@babel/core" produce valid paths.
func SafeFilename(query string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '_' || r == '-':
			return r
		default:
			return '_'
		}
	}, query)
}

// OutputPath returns the per-query output file path inside dir.
func OutputPath(dir, query string) string {
	return filepath.Join(dir, SafeFilename(query)+"_new_emails.txt")
}

// WriteEmails writes the retained addresses for query to its output file,
// newline-joined, creating dir if needed. Returns the written path.
func WriteEmails(dir, query string, emails []string) (string, error) {
	path := OutputPath(dir, query)
	if err := errors.ValidateOutputPath(path); err != nil {
		return "", err
	}
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(strings.Join(emails, "\n")), 0o644); err != nil {
		return "", fmt.Errorf("write output file: %w", err)
	}
	return path, nil
}
