package config

import (
	"time"

	"github.com/dferrans/pkgreach/pkg/harvest"
	"github.com/dferrans/pkgreach/pkg/httputil"
	"github.com/dferrans/pkgreach/pkg/registry/npm"
	"github.com/dferrans/pkgreach/pkg/sentstore"
)

// Default values not owned by a lower-level package.
const (
	// DefaultCacheTTL keeps search responses for a day. Registry search
	// results drift slowly, so a day-old page is still representative and
	// repeated runs stay cheap.
	DefaultCacheTTL = 24 * time.Hour

	// DefaultSentFile is the sent-set file used when no backend is
	// configured.
	DefaultSentFile = "sent_emails.txt"

	// DefaultOutputDir is where per-query output files land.
	DefaultOutputDir = "."
)

// Config holds the whole tool configuration, assembled from defaults, an
// optional TOML file, and CLI flags (in increasing precedence).
type Config struct {
	Registry Registry `toml:"registry"`
	Retry    Retry    `toml:"retry"`
	Output   Output   `toml:"output"`
	Sent     Sent     `toml:"sent"`
}

// Registry configures the search client.
type Registry struct {
	BaseURL  string   `toml:"base_url"`
	Pages    int      `toml:"pages"`
	PageSize int      `toml:"page_size"`
	CacheTTL Duration `toml:"cache_ttl"`
}

// Retry configures request pacing and the per-request retry budget.
type Retry struct {
	Retries  int      `toml:"retries"`
	Backoff  Duration `toml:"backoff"`
	Throttle Duration `toml:"throttle"`
}

// Output configures where results are written.
type Output struct {
	Dir    string `toml:"dir"`
	Report string `toml:"report"` // markdown report path, empty disables it
}

// Sent configures the sent-set store. Backend is "file" or "redis".
type Sent struct {
	Backend       string `toml:"backend"`
	Path          string `toml:"path"`
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
	RedisKey      string `toml:"redis_key"`
}

// Duration is a time.Duration that unmarshals from TOML strings like "5s".
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Defaults returns a Config with every field at its default.
func Defaults() *Config {
	return &Config{
		Registry: Registry{
			BaseURL:  npm.DefaultBaseURL,
			Pages:    harvest.DefaultPages,
			PageSize: npm.MaxPageSize,
			CacheTTL: Duration(DefaultCacheTTL),
		},
		Retry: Retry{
			Retries:  httputil.DefaultRetries,
			Backoff:  Duration(httputil.DefaultBackoff),
			Throttle: Duration(httputil.DefaultThrottle),
		},
		Output: Output{
			Dir: DefaultOutputDir,
		},
		Sent: Sent{
			Backend:  "file",
			Path:     DefaultSentFile,
			RedisKey: sentstore.DefaultRedisKey,
		},
	}
}

// Policy returns the retry policy described by the config.
func (c *Config) Policy() httputil.Policy {
	return httputil.Policy{
		Retries:  c.Retry.Retries,
		Backoff:  c.Retry.Backoff.Std(),
		Throttle: c.Retry.Throttle.Std(),
	}
}
