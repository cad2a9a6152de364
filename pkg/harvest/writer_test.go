package harvest

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSafeFilename(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"react", "react"},
		{"@babel/core", "_babel_core"},
		{"http client", "http_client"},
		{"vue.js", "vue.js"},
		{"left-pad", "left-pad"},
		{"a/b\\c:d", "a_b_c_d"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			if got := SafeFilename(tt.query); got != tt.want {
				t.Errorf("SafeFilename(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestWriteEmails(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteEmails(dir, "react", []string{"a@x.com", "b@x.com"})
	if err != nil {
		t.Fatalf("WriteEmails() error: %v", err)
	}
	if want := filepath.Join(dir, "react_new_emails.txt"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(data); got != "a@x.com\nb@x.com" {
		t.Errorf("content = %q, want %q", got, "a@x.com\nb@x.com")
	}
}

func TestWriteEmailsEmptyList(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteEmails(dir, "react", nil)
	if err != nil {
		t.Fatalf("WriteEmails() error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 0 {
		t.Errorf("content = %q, want empty", data)
	}
}

func TestWriteEmailsCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	if _, err := WriteEmails(dir, "react", []string{"a@x.com"}); err != nil {
		t.Fatalf("WriteEmails() error: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("output dir not created: %v", err)
	}
}
