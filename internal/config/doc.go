// Package config assembles tool configuration from defaults, an optional
// TOML file, and CLI flags. Flags always win; the file fills the middle
// layer so teams can pin pacing and output conventions per project.
package config
