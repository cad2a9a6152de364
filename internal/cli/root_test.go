package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	charmlog "github.com/charmbracelet/log"

	"github.com/dferrans/pkgreach/internal/config"
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

func TestLoadConfigDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := loadConfig("", charmlog.Default())
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.Retry.Retries != 2 {
		t.Errorf("Retries = %d, want default 2", cfg.Retry.Retries)
	}
}

func TestLoadConfigExplicitMissing(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"), charmlog.Default()); err == nil {
		t.Error("loadConfig() should fail for an explicit missing path")
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pkgreach.toml")
	if err := os.WriteFile(path, []byte("[registry]\npages = 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path, charmlog.Default())
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.Registry.Pages != 7 {
		t.Errorf("Pages = %d, want 7", cfg.Registry.Pages)
	}
}

func TestConfigFromContext(t *testing.T) {
	ctx := context.Background()

	// Fallback to defaults when nothing is attached.
	if cfg := configFromContext(ctx); cfg.Registry.Pages != 40 {
		t.Errorf("fallback Pages = %d, want 40", cfg.Registry.Pages)
	}

	custom := config.Defaults()
	custom.Registry.Pages = 3
	ctx = withConfig(ctx, custom)
	if cfg := configFromContext(ctx); cfg.Registry.Pages != 3 {
		t.Errorf("attached Pages = %d, want 3", cfg.Registry.Pages)
	}
}

func TestLoggerFromContext(t *testing.T) {
	// Without a logger attached the default is returned, never nil.
	if loggerFromContext(context.Background()) == nil {
		t.Fatal("loggerFromContext() returned nil")
	}

	logger := newLogger(os.Stderr, charmlog.DebugLevel)
	ctx := withLogger(context.Background(), logger)
	if got := loggerFromContext(ctx); got != logger {
		t.Error("loggerFromContext() did not return the attached logger")
	}
}
