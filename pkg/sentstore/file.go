package sentstore

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
)

// FileStore keeps sent emails in a newline-delimited text file.
// A missing file is treated as an empty set.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a store backed by the file at path.
// The file is not created until the first Add.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads all addresses from the file, splitting on \r?\n and skipping
// blank lines.
func (s *FileStore) Load(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read sent file: %w", err)
	}

	var emails []string
	for _, line := range strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			emails = append(emails, line)
		}
	}
	return emails, nil
}

// Add appends addresses to the file, one per line.
func (s *FileStore) Add(_ context.Context, emails ...string) error {
	if len(emails) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open sent file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(strings.Join(emails, "\n") + "\n"); err != nil {
		return fmt.Errorf("append sent file: %w", err)
	}
	return nil
}

// Close does nothing for file stores.
func (s *FileStore) Close() error { return nil }

var _ Store = (*FileStore)(nil)
