package harvest

import (
	"fmt"
	"os"
	"strings"

	"github.com/dferrans/pkgreach/pkg/errors"
)

// SplitLines splits file content on \r?\n, trims whitespace, and drops
// blank lines.
func SplitLines(data string) []string {
	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(data, "\r\n", "\n"), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// ReadQueries loads the query list from a newline-delimited file.
// Every line must pass query validation; a bad line is a startup failure.
func ReadQueries(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read queries file: %w", err)
	}

	queries := SplitLines(string(data))
	if len(queries) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "queries file %s is empty", path)
	}
	for i, q := range queries {
		if err := errors.ValidateQuery(q); err != nil {
			return nil, fmt.Errorf("queries file %s line %d: %w", path, i+1, err)
		}
	}
	return queries, nil
}
