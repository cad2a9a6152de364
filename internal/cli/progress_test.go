package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	charmlog "github.com/charmbracelet/log"

	"github.com/dferrans/pkgreach/pkg/observability"
)

func TestProgressModelLifecycle(t *testing.T) {
	var m tea.Model = newProgressModel(2)

	m, _ = m.Update(queryStartMsg{query: "react", pages: 3})
	m, _ = m.Update(pageFetchedMsg{page: 1, pages: 3, packages: 250})
	m, _ = m.Update(pageFetchedMsg{page: 2, pages: 3, packages: 100})

	view := m.View()
	if !strings.Contains(view, "react") {
		t.Errorf("view should show the active query:\n%s", view)
	}
	if !strings.Contains(view, "page 2/3") {
		t.Errorf("view should show page progress:\n%s", view)
	}
	if !strings.Contains(view, "350 packages") {
		t.Errorf("view should accumulate package counts:\n%s", view)
	}

	m, cmd := m.Update(queryCompleteMsg{query: "react", newEmails: 4})
	if cmd != nil {
		t.Error("run should continue while queries remain")
	}
	view = m.View()
	if !strings.Contains(view, "1/2 queries") {
		t.Errorf("view should count completed queries:\n%s", view)
	}
	if !strings.Contains(view, "4 new emails") {
		t.Errorf("view should total new emails:\n%s", view)
	}

	m, _ = m.Update(queryStartMsg{query: "vue", pages: 3})
	_, cmd = m.Update(queryCompleteMsg{query: "vue", newEmails: 0})
	if cmd == nil {
		t.Error("completing the last query should quit the program")
	}
}

func TestProgressModelFailedQuery(t *testing.T) {
	var m tea.Model = newProgressModel(1)

	m, _ = m.Update(queryStartMsg{query: "broken", pages: 3})
	m, _ = m.Update(queryCompleteMsg{query: "broken", err: errors.New("fake failure")})

	if view := m.View(); !strings.Contains(view, "broken") {
		t.Errorf("view should list the failed query:\n%s", view)
	}
}

func TestInstallProgressLogsPages(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, charmlog.InfoLevel)

	// The no-progress path registers the logging hooks, so piped runs get a
	// plain line per page.
	stop := installProgress(logger, 1, true)

	observability.Harvest().OnPageFetched(context.Background(), "react", 2, 40, 250)

	out := buf.String()
	if !strings.Contains(out, "page 2/40") {
		t.Errorf("expected a page current/total line, got %q", out)
	}
	if !strings.Contains(out, "react") {
		t.Errorf("page line should name the query, got %q", out)
	}
	if !strings.Contains(out, "250 packages") {
		t.Errorf("page line should report the package count, got %q", out)
	}

	stop()
	buf.Reset()
	observability.Harvest().OnPageFetched(context.Background(), "react", 3, 40, 250)
	if buf.Len() != 0 {
		t.Errorf("stop should restore no-op hooks, got %q", buf.String())
	}
}
