package harvest

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/dferrans/pkgreach/pkg/observability"
	"github.com/dferrans/pkgreach/pkg/sentstore"
)

// QueryResult records the outcome of one query.
type QueryResult struct {
	Query      string   `json:"query"`
	Packages   int      `json:"packages"`    // packages returned across all pages
	NewEmails  []string `json:"new_emails"`  // retained addresses, in output order
	OutputPath string   `json:"output_path"` // empty when the write failed
	Err        error    `json:"-"`
}

// Summary aggregates a whole run.
type Summary struct {
	RunID          string        `json:"run_id"`
	StartedAt      time.Time     `json:"started_at"`
	FinishedAt     time.Time     `json:"finished_at"`
	Queries        int           `json:"queries"`
	NewEmails      int           `json:"new_emails"`
	UniquePackages int           `json:"unique_packages"` // by package name, across all queries
	Results        []QueryResult `json:"results"`
}

// Runner drives the per-query harvest loop. The cross-query state (sent set,
// running new-email set, unique package names) is owned by Run and threaded
// through each step explicitly.
type Runner struct {
	Walker     *Walker
	Store      sentstore.Store
	OutDir     string
	FailFast   bool // abort the whole run on the first fatal query failure
	UpdateSent bool // append this run's new emails to the store afterwards
	Logger     *log.Logger
}

// Run processes queries in order and returns the run summary. With FailFast
// unset (the default), a query whose page walk fails is recorded and
// skipped; the returned error is nil unless the run as a whole was aborted.
func (r *Runner) Run(ctx context.Context, queries []string) (*Summary, error) {
	logger := r.Logger
	if logger == nil {
		logger = log.Default()
	}

	sentList, err := r.Store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load sent set: %w", err)
	}
	sent := NewEmailSet(sentList...)
	logger.Debugf("Loaded %d sent addresses", sent.Len())

	summary := &Summary{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
		Queries:   len(queries),
	}
	seen := EmailSet{}
	packages := map[string]struct{}{}
	var allNew []string

	for _, query := range queries {
		if err := ctx.Err(); err != nil {
			summary.FinishedAt = time.Now()
			return summary, err
		}

		result, err := r.runQuery(ctx, query, sent, seen, packages)
		summary.Results = append(summary.Results, result)
		summary.NewEmails += len(result.NewEmails)
		// Addresses only count as sent once their output file exists; a
		// failed write must not exclude them from future runs.
		if result.Err == nil {
			allNew = append(allNew, result.NewEmails...)
		}

		if err != nil {
			if r.FailFast {
				summary.FinishedAt = time.Now()
				return summary, err
			}
			logger.Errorf("Query %q failed, skipping: %v", query, err)
		}
	}

	summary.UniquePackages = len(packages)
	summary.FinishedAt = time.Now()

	if r.UpdateSent && len(allNew) > 0 {
		if err := r.Store.Add(ctx, allNew...); err != nil {
			logger.Errorf("Updating sent store failed: %v", err)
		} else {
			logger.Debugf("Appended %d addresses to sent store", len(allNew))
		}
	}
	return summary, nil
}

// runQuery walks one query's pages, dedupes its emails, and writes its
// output file. It mutates seen and packages only after deduplication, so
// later queries observe the retained addresses of earlier ones.
func (r *Runner) runQuery(ctx context.Context, query string, sent, seen EmailSet, packages map[string]struct{}) (QueryResult, error) {
	logger := r.Logger
	if logger == nil {
		logger = log.Default()
	}
	start := time.Now()
	result := QueryResult{Query: query}

	observability.Harvest().OnQueryStart(ctx, query, r.Walker.Pages)

	pkgs, err := r.Walker.FetchAll(ctx, query)
	if err != nil {
		result.Err = err
		observability.Harvest().OnQueryComplete(ctx, query, 0, time.Since(start), err)
		return result, err
	}
	result.Packages = len(pkgs)

	var extracted []string
	for _, p := range pkgs {
		packages[p.Name] = struct{}{}
		extracted = append(extracted, ExtractEmails(p)...)
	}

	retained := Dedupe(extracted, sent, seen)
	for _, e := range retained {
		seen.Add(e)
	}
	result.NewEmails = retained

	path, err := WriteEmails(r.OutDir, query, retained)
	if err != nil {
		// Output independence: report it, keep the run going.
		logger.Errorf("Writing output for %q failed: %v", query, err)
		result.Err = err
	} else {
		result.OutputPath = path
		observability.Harvest().OnOutputWritten(ctx, query, path, len(retained))
	}

	logger.Infof("Query %q: %d packages, %d new emails (%s)",
		query, len(pkgs), len(retained), time.Since(start).Round(time.Millisecond))
	observability.Harvest().OnQueryComplete(ctx, query, len(retained), time.Since(start), nil)
	return result, nil
}
