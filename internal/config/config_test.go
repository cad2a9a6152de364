package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dferrans/pkgreach/pkg/httputil"
)

// chdir changes into dir for the duration of the test, restoring the
// previous working directory on cleanup. (testing.T.Chdir needs Go 1.24.)
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.Registry.Pages != 40 {
		t.Errorf("Pages = %d, want 40", cfg.Registry.Pages)
	}
	if cfg.Registry.PageSize != 250 {
		t.Errorf("PageSize = %d, want 250", cfg.Registry.PageSize)
	}
	if cfg.Retry.Retries != 2 {
		t.Errorf("Retries = %d, want 2", cfg.Retry.Retries)
	}
	if cfg.Retry.Backoff.Std() != 5*time.Second {
		t.Errorf("Backoff = %v, want 5s", cfg.Retry.Backoff.Std())
	}
	if cfg.Retry.Throttle.Std() != 800*time.Millisecond {
		t.Errorf("Throttle = %v, want 800ms", cfg.Retry.Throttle.Std())
	}
	if cfg.Sent.Backend != "file" {
		t.Errorf("Sent.Backend = %q, want file", cfg.Sent.Backend)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[registry]
pages = 10
page_size = 50
cache_ttl = "2h"

[retry]
retries = 5
backoff = "1s"
throttle = "100ms"

[output]
dir = "out"
report = "report.md"

[sent]
backend = "redis"
redis_addr = "localhost:6379"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Registry.Pages != 10 || cfg.Registry.PageSize != 50 {
		t.Errorf("registry = %+v", cfg.Registry)
	}
	if cfg.Registry.CacheTTL.Std() != 2*time.Hour {
		t.Errorf("CacheTTL = %v, want 2h", cfg.Registry.CacheTTL.Std())
	}
	if want := (httputil.Policy{Retries: 5, Backoff: time.Second, Throttle: 100 * time.Millisecond}); cfg.Policy() != want {
		t.Errorf("Policy() = %+v, want %+v", cfg.Policy(), want)
	}
	if cfg.Output.Dir != "out" || cfg.Output.Report != "report.md" {
		t.Errorf("output = %+v", cfg.Output)
	}
	if cfg.Sent.Backend != "redis" || cfg.Sent.RedisAddr != "localhost:6379" {
		t.Errorf("sent = %+v", cfg.Sent)
	}
	// Unset sections keep their defaults.
	if cfg.Sent.RedisKey == "" {
		t.Error("RedisKey default should survive partial config")
	}
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[registry]\npages = 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Registry.Pages != 3 {
		t.Errorf("Pages = %d, want 3", cfg.Registry.Pages)
	}
	if cfg.Retry.Retries != 2 {
		t.Errorf("Retries = %d, want default 2", cfg.Retry.Retries)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != ErrConfigNotFound {
		t.Errorf("Load() error = %v, want ErrConfigNotFound", err)
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not [valid"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() should fail on invalid TOML")
	}
}

func TestLoadBadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[retry]\nbackoff = \"fast\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() should reject an unparsable duration")
	}
}

func TestFindConfigFile(t *testing.T) {
	t.Run("explicit path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.toml")
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			t.Fatal(err)
		}
		if got := FindConfigFile(path); got != path {
			t.Errorf("FindConfigFile(%q) = %q", path, got)
		}
	})

	t.Run("explicit path missing", func(t *testing.T) {
		if got := FindConfigFile(filepath.Join(t.TempDir(), "nope.toml")); got != "" {
			t.Errorf("FindConfigFile() = %q, want empty", got)
		}
	})

	t.Run("current directory", func(t *testing.T) {
		dir := t.TempDir()
		chdir(t, dir)
		path := filepath.Join(dir, DefaultConfigFile)
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			t.Fatal(err)
		}
		got := FindConfigFile("")
		// Resolve symlinks: t.TempDir may sit behind /private on macOS.
		if filepath.Base(got) != DefaultConfigFile {
			t.Errorf("FindConfigFile() = %q, want %s in cwd", got, DefaultConfigFile)
		}
	})
}
