package report

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/nao1215/markdown"

	"github.com/dferrans/pkgreach/pkg/harvest"
)

// MarkdownWriter renders a run summary as GitHub-flavored Markdown.
type MarkdownWriter struct {
	output io.Writer
}

// NewMarkdownWriter creates a MarkdownWriter that writes to output.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{output: output}
}

// Write renders the full report. Returns the rendered length in bytes and
// any write error.
func (w *MarkdownWriter) Write(summary *harvest.Summary) (int, error) {
	md := markdown.NewMarkdown(w.output)

	writeHeader(md, summary)
	writeQueries(md, summary)
	writeFailures(md, summary)

	return len(md.String()), md.Build()
}

func writeHeader(md *markdown.Markdown, summary *harvest.Summary) {
	md.H1("Email Harvest Report")
	md.PlainText("")

	duration := summary.FinishedAt.Sub(summary.StartedAt).Round(time.Millisecond)
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Run ID", "`" + summary.RunID + "`"},
			{"Started", summary.StartedAt.Format("2006-01-02 15:04:05 MST")},
			{"Duration", duration.String()},
			{"Queries", strconv.Itoa(summary.Queries)},
			{"Unique Packages", strconv.Itoa(summary.UniquePackages)},
			{"New Emails", strconv.Itoa(summary.NewEmails)},
		},
	})
	md.PlainText("")
}

func writeQueries(md *markdown.Markdown, summary *harvest.Summary) {
	md.H2("Queries")
	md.PlainText("")

	if len(summary.Results) == 0 {
		md.PlainText("No queries were processed.")
		md.PlainText("")
		return
	}

	rows := make([][]string, 0, len(summary.Results))
	for _, r := range summary.Results {
		rows = append(rows, []string{
			"`" + r.Query + "`",
			strconv.Itoa(r.Packages),
			strconv.Itoa(len(r.NewEmails)),
			statusText(r),
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Query", "Packages", "New Emails", "Status"},
		Rows:   rows,
	})
	md.PlainText("")
}

func statusText(r harvest.QueryResult) string {
	if r.Err != nil {
		return "❌ Failed"
	}
	return "✅ Complete"
}

func writeFailures(md *markdown.Markdown, summary *harvest.Summary) {
	var failed []harvest.QueryResult
	for _, r := range summary.Results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	if len(failed) == 0 {
		return
	}

	md.H2("Failures")
	md.PlainText("")
	items := make([]string, 0, len(failed))
	for _, r := range failed {
		items = append(items, "`"+r.Query+"`: "+strings.TrimSpace(r.Err.Error()))
	}
	md.BulletList(items...)
	md.PlainText("")
}
