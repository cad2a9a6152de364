package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"

	"github.com/dferrans/pkgreach/pkg/observability"
)

// Messages sent from harvest hooks into the bubbletea program.
type (
	queryStartMsg struct {
		query string
		pages int
	}
	pageFetchedMsg struct {
		page, pages, packages int
	}
	queryCompleteMsg struct {
		query     string
		newEmails int
		err       error
	}
	tickMsg time.Time
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// progressModel is the bubbletea model for the harvest progress display.
// It renders one status line per completed query and a live line for the
// query in flight.
type progressModel struct {
	queries   int
	completed int
	emails    int

	query    string
	page     int
	pages    int
	packages int

	frame int
	lines []string
}

func newProgressModel(queries int) progressModel {
	return progressModel{queries: queries}
}

func tick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m progressModel) Init() tea.Cmd {
	return tick()
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case tickMsg:
		m.frame++
		return m, tick()
	case queryStartMsg:
		m.query = msg.query
		m.pages = msg.pages
		m.page = 0
		m.packages = 0
	case pageFetchedMsg:
		m.page = msg.page
		m.pages = msg.pages
		m.packages += msg.packages
	case queryCompleteMsg:
		m.completed++
		m.emails += msg.newEmails
		if msg.err != nil {
			m.lines = append(m.lines, styleIconError.Render(iconError)+" "+msg.query)
		} else {
			m.lines = append(m.lines, fmt.Sprintf("%s %s %s",
				styleIconSuccess.Render(iconSuccess),
				msg.query,
				StyleDim.Render(fmt.Sprintf("%d new emails", msg.newEmails))))
		}
		m.query = ""
		if m.completed >= m.queries {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m progressModel) View() string {
	var b strings.Builder

	for _, line := range m.lines {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.query != "" {
		frame := spinnerFrames[m.frame%len(spinnerFrames)]
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			styleSpinner.Render(frame),
			m.query,
			StyleDim.Render(fmt.Sprintf("page %d/%d · %d packages", m.page, m.pages, m.packages))))
	}

	b.WriteString(StyleDim.Render(fmt.Sprintf("%d/%d queries · %d new emails", m.completed, m.queries, m.emails)))
	b.WriteString("\n")
	return b.String()
}

// progressHooks forwards harvest events into the bubbletea program.
type progressHooks struct {
	observability.NoopHarvestHooks
	program *tea.Program
}

func (h *progressHooks) OnQueryStart(_ context.Context, query string, pages int) {
	h.program.Send(queryStartMsg{query: query, pages: pages})
}

func (h *progressHooks) OnQueryComplete(_ context.Context, query string, newEmails int, _ time.Duration, err error) {
	h.program.Send(queryCompleteMsg{query: query, newEmails: newEmails, err: err})
}

func (h *progressHooks) OnPageFetched(_ context.Context, _ string, page, pages, packages int) {
	h.program.Send(pageFetchedMsg{page: page, pages: pages, packages: packages})
}

// installProgress wires per-page progress into the harvest hooks: the
// interactive display when stderr is a terminal, plain log lines otherwise
// so piped and CI runs still show each page as it lands. Returns a stop
// function that restores the no-op hooks.
func installProgress(logger *log.Logger, queries int, disabled bool) func() {
	if disabled || !isatty.IsTerminal(os.Stderr.Fd()) {
		observability.SetHarvestHooks(&logHooks{logger: logger})
		return func() {
			observability.SetHarvestHooks(observability.NoopHarvestHooks{})
		}
	}
	return startProgressDisplay(queries)
}

// logHooks reports harvest progress as plain log lines.
type logHooks struct {
	observability.NoopHarvestHooks
	logger *log.Logger
}

func (h *logHooks) OnPageFetched(_ context.Context, query string, page, pages, packages int) {
	h.logger.Infof("Query %q: page %d/%d, %d packages", query, page, pages, packages)
}

// startProgressDisplay runs the progress UI on stderr, registers the
// forwarding hooks, and returns a stop function that tears both down.
// Stdout stays clean for the final summary.
func startProgressDisplay(queries int) func() {
	program := tea.NewProgram(
		newProgressModel(queries),
		tea.WithOutput(os.Stderr),
		tea.WithoutSignalHandler(),
	)
	observability.SetHarvestHooks(&progressHooks{program: program})

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = program.Run()
	}()

	return func() {
		observability.SetHarvestHooks(observability.NoopHarvestHooks{})
		program.Quit()
		<-done
	}
}
