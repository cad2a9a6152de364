package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/dferrans/pkgreach/internal/config"
	"github.com/dferrans/pkgreach/pkg/buildinfo"
)

// appName is the application name used for directories and display.
const appName = "pkgreach"

// Execute runs the pkgreach CLI and returns an error if any command fails.
//
// The root command wires the persistent flags (--verbose, --config),
// resolves the layered configuration, and attaches a logger to the context
// so subcommands share one logging setup.
func Execute(ctx context.Context) error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          appName,
		Short:        "pkgreach harvests package maintainer emails from registry search results",
		Long:         `pkgreach walks npm registry search results for a list of queries, extracts publisher and maintainer email addresses, and writes the addresses not seen before to per-query output files.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(os.Stderr, level)

			cfg, err := loadConfig(configPath, logger)
			if err != nil {
				return err
			}

			ctx := withLogger(cmd.Context(), logger)
			ctx = withConfig(ctx, cfg)
			cmd.SetContext(ctx)
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default: .pkgreach.toml in cwd or home)")

	root.AddCommand(newHarvestCmd())
	root.AddCommand(newCacheCmd())

	return root.ExecuteContext(ctx)
}

// loadConfig resolves the layered configuration. An explicit --config path
// that does not exist is an error; a missing discovered file just means
// defaults.
func loadConfig(configPath string, logger *charmlog.Logger) (*config.Config, error) {
	path := config.FindConfigFile(configPath)
	if path == "" {
		if configPath != "" {
			return nil, fmt.Errorf("config file %s not found", configPath)
		}
		return config.Defaults(), nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Debugf("Loaded config from %s", path)
	return cfg, nil
}

// configKey is the context key for the resolved configuration.
const configKey ctxKey = 1

// withConfig returns a new context with the resolved config attached.
func withConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// configFromContext retrieves the config from ctx, falling back to defaults.
func configFromContext(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey).(*config.Config); ok {
		return cfg
	}
	return config.Defaults()
}
