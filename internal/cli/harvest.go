package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dferrans/pkgreach/internal/config"
	"github.com/dferrans/pkgreach/pkg/harvest"
	"github.com/dferrans/pkgreach/pkg/httputil"
	"github.com/dferrans/pkgreach/pkg/registry/npm"
	"github.com/dferrans/pkgreach/pkg/report"
	"github.com/dferrans/pkgreach/pkg/sentstore"
)

// harvestOpts holds the command-line flags for the harvest command.
// Unset flags fall back to the config file, which falls back to defaults.
type harvestOpts struct {
	sentPath   string // sent-set file (file backend)
	outDir     string // output directory for per-query files
	pages      int    // result pages walked per query
	pageSize   int    // results per page
	retries    int    // retry budget per page request
	refresh    bool   // bypass HTTP cache
	failFast   bool   // abort the run on the first query failure
	updateSent bool   // append this run's new emails to the sent store
	reportPath string // markdown report path, empty disables it
	noProgress bool   // disable the interactive progress display
}

// newHarvestCmd creates the harvest command.
func newHarvestCmd() *cobra.Command {
	var opts harvestOpts

	cmd := &cobra.Command{
		Use:   "harvest <queries-file>",
		Short: "Harvest new maintainer emails for a list of search queries",
		Long: `Harvest walks npm registry search results for each query in the queries
file (one query per line), extracts publisher and maintainer emails, and
writes the addresses not present in the sent set and not already found
earlier in the run to <query>_new_emails.txt.

Examples:
  pkgreach harvest queries.txt
  pkgreach harvest queries.txt --sent sent_emails.txt --out results/
  pkgreach harvest queries.txt --pages 5 --update-sent --report run.md`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHarvest(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.sentPath, "sent", "", "sent-set file path")
	cmd.Flags().StringVarP(&opts.outDir, "out", "o", "", "output directory for per-query files")
	cmd.Flags().IntVar(&opts.pages, "pages", 0, "result pages to walk per query")
	cmd.Flags().IntVar(&opts.pageSize, "page-size", 0, "results per page (max 250)")
	cmd.Flags().IntVar(&opts.retries, "retries", -1, "retry budget per page request")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the HTTP response cache")
	cmd.Flags().BoolVar(&opts.failFast, "fail-fast", false, "abort the whole run on the first query failure")
	cmd.Flags().BoolVar(&opts.updateSent, "update-sent", false, "append this run's new emails to the sent store")
	cmd.Flags().StringVar(&opts.reportPath, "report", "", "write a markdown run report to this path")
	cmd.Flags().BoolVar(&opts.noProgress, "no-progress", false, "disable the interactive progress display")

	return cmd
}

func runHarvest(cmd *cobra.Command, queriesPath string, opts harvestOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)
	applyFlags(cmd, cfg, opts)

	queries, err := harvest.ReadQueries(queriesPath)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded %d queries from %s", len(queries), queriesPath)

	client, err := newSearchClient(cfg)
	if err != nil {
		return err
	}

	store, err := newSentStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			printWarning("Closing sent store: %v", err)
		}
	}()

	runner := &harvest.Runner{
		Walker: &harvest.Walker{
			Client:   client,
			Pages:    cfg.Registry.Pages,
			PageSize: cfg.Registry.PageSize,
			Refresh:  opts.refresh,
		},
		Store:      store,
		OutDir:     cfg.Output.Dir,
		FailFast:   opts.failFast,
		UpdateSent: opts.updateSent,
		Logger:     logger,
	}

	stop := installProgress(logger, len(queries), opts.noProgress)
	track := newProgress(logger)
	summary, err := runner.Run(ctx, queries)
	stop()
	if err != nil {
		return err
	}
	track.done(fmt.Sprintf("Processed %d queries", summary.Queries))

	printSummary(summary)

	if cfg.Output.Report != "" {
		if err := writeReport(cfg.Output.Report, summary); err != nil {
			return err
		}
		printFile(cfg.Output.Report)
	}
	return nil
}

// applyFlags folds explicitly set flags over the config. Cobra flag
// defaults never override the file: only flags the user changed win.
func applyFlags(cmd *cobra.Command, cfg *config.Config, opts harvestOpts) {
	flags := cmd.Flags()
	if flags.Changed("sent") {
		cfg.Sent.Backend = "file"
		cfg.Sent.Path = opts.sentPath
	}
	if flags.Changed("out") {
		cfg.Output.Dir = opts.outDir
	}
	if flags.Changed("pages") {
		cfg.Registry.Pages = opts.pages
	}
	if flags.Changed("page-size") {
		cfg.Registry.PageSize = opts.pageSize
	}
	if flags.Changed("retries") {
		cfg.Retry.Retries = opts.retries
	}
	if flags.Changed("report") {
		cfg.Output.Report = opts.reportPath
	}
}

// newSearchClient builds a cached, retrying registry client from config.
func newSearchClient(cfg *config.Config) (*npm.Client, error) {
	dir, err := cacheDir()
	if err != nil {
		return nil, fmt.Errorf("resolve cache dir: %w", err)
	}
	cache, err := httputil.NewCache(dir, cfg.Registry.CacheTTL.Std())
	if err != nil {
		return nil, fmt.Errorf("open response cache: %w", err)
	}

	client := npm.NewClientWithBase(cfg.Registry.BaseURL, cache)
	client.SetPolicy(cfg.Policy())
	return client, nil
}

// newSentStore builds the sent-set store named by the config.
func newSentStore(ctx context.Context, cfg *config.Config) (sentstore.Store, error) {
	switch cfg.Sent.Backend {
	case "", "file":
		return sentstore.NewFileStore(cfg.Sent.Path), nil
	case "redis":
		return sentstore.NewRedisStore(ctx, sentstore.RedisConfig{
			Addr:     cfg.Sent.RedisAddr,
			Password: cfg.Sent.RedisPassword,
			DB:       cfg.Sent.RedisDB,
			Key:      cfg.Sent.RedisKey,
		})
	default:
		return nil, fmt.Errorf("unknown sent backend %q (want file or redis)", cfg.Sent.Backend)
	}
}

// printSummary prints the run totals and per-query output paths.
func printSummary(summary *harvest.Summary) {
	duration := summary.FinishedAt.Sub(summary.StartedAt).Round(time.Millisecond)
	printSuccess("Found %s new emails across %s queries (%s unique packages) in %s",
		StyleNumber.Render(fmt.Sprintf("%d", summary.NewEmails)),
		StyleNumber.Render(fmt.Sprintf("%d", summary.Queries)),
		StyleNumber.Render(fmt.Sprintf("%d", summary.UniquePackages)),
		duration)

	for _, r := range summary.Results {
		if r.Err != nil {
			printError("%s: %v", r.Query, r.Err)
			continue
		}
		printDetail("%s: %d packages, %d new emails", r.Query, r.Packages, len(r.NewEmails))
		if r.OutputPath != "" {
			printFile(r.OutputPath)
		}
	}
}

// writeReport renders the markdown run report to path.
func writeReport(path string, summary *harvest.Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()

	if _, err := report.NewMarkdownWriter(f).Write(summary); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
