// Command aspectpath-tui is the full-screen variant of the solver: a
// staged query form over the same engine the plain CLI uses.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/thaumic/aspectpath/pkg/aspect"
	"github.com/thaumic/aspectpath/pkg/fetch"
	"github.com/thaumic/aspectpath/pkg/graph"
	"github.com/thaumic/aspectpath/pkg/inventory"
	"github.com/thaumic/aspectpath/pkg/solver"
	"github.com/thaumic/aspectpath/pkg/store"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true)

	promptStyle  = lipgloss.NewStyle().Bold(true)
	confirmStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	scoreStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// maxLengthRetries bounds how far the search grows past an empty window
// before giving up.
const maxLengthRetries = 16

type stage int

const (
	stageStart stage = iota
	stageConfirmStart
	stageEnd
	stageConfirmEnd
	stageLength
	stageSearching
	stageResults
)

type resultsMsg struct {
	report string
	err    error
}

type model struct {
	solver *solver.Solver
	slack  int

	stage     stage
	input     textinput.Model
	start     aspect.Aspect
	end       aspect.Aspect
	candidate aspect.Aspect
	report    string
	errText   string
}

func initialModel(s *solver.Solver, slack int) model {
	ti := textinput.New()
	ti.Placeholder = "aspect name"
	ti.Focus()
	ti.CharLimit = 32
	ti.Width = 32

	return model{
		solver: s,
		slack:  slack,
		stage:  stageStart,
		input:  ti,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.handleKey(msg)

	case resultsMsg:
		if msg.err != nil {
			m.errText = msg.err.Error()
			m.report = ""
		} else {
			m.errText = ""
			m.report = msg.report
		}
		m.stage = stageResults
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.stage {
	case stageConfirmStart, stageConfirmEnd:
		switch msg.String() {
		case "y", "Y", "enter":
			if m.stage == stageConfirmStart {
				m.start = m.candidate
				m.stage = stageEnd
			} else {
				m.end = m.candidate
				m.stage = stageLength
				m.input.Placeholder = "distance"
			}
			m.input.SetValue("")
			m.errText = ""
		case "n", "N":
			if m.stage == stageConfirmStart {
				m.stage = stageStart
			} else {
				m.stage = stageEnd
			}
			m.input.SetValue("")
			m.errText = "Aspect does not exist!"
		}
		return m, nil

	case stageResults:
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case "enter":
			reset := initialModel(m.solver, m.slack)
			return reset, textinput.Blink
		}
		return m, nil

	case stageSearching:
		return m, nil
	}

	if msg.Type == tea.KeyEnter {
		return m.submit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) submit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m, nil
	}

	switch m.stage {
	case stageStart, stageEnd:
		if a, exact := aspect.ByKey(text); exact {
			if m.stage == stageStart {
				m.start = a
				m.stage = stageEnd
			} else {
				m.end = a
				m.stage = stageLength
				m.input.Placeholder = "distance"
			}
			m.input.SetValue("")
			m.errText = ""
			return m, nil
		}
		best, _ := aspect.Match(text)
		m.candidate = best
		if m.stage == stageStart {
			m.stage = stageConfirmStart
		} else {
			m.stage = stageConfirmEnd
		}
		return m, nil

	case stageLength:
		steps, err := strconv.Atoi(text)
		if err != nil || steps < 0 {
			m.errText = "Please enter a valid number."
			m.input.SetValue("")
			return m, nil
		}
		m.stage = stageSearching
		m.errText = ""
		return m, runSearch(m.solver, m.start, m.end, steps+2, m.slack)
	}

	return m, nil
}

// runSearch answers one query off the UI loop: probe the window, and on
// a fully empty window grow the target length, as the note may simply
// not admit the requested distance.
func runSearch(s *solver.Solver, start, end aspect.Aspect, target, slack int) tea.Cmd {
	return func() tea.Msg {
		var b strings.Builder
		for retry := 0; retry <= maxLengthRetries; retry++ {
			window, err := s.FindWindow(context.Background(), start, end, target, slack)
			if err != nil {
				return resultsMsg{err: err}
			}

			alts := solver.SelectReportable(window)
			if len(alts) == 0 {
				fmt.Fprintln(&b, subtleStyle.Render(fmt.Sprintf(
					"No path of length %d; trying %d.", target, target+1)))
				target++
				continue
			}

			baseline := alts[0]
			fmt.Fprintln(&b, promptStyle.Render(fmt.Sprintf(
				"Paths from %s to %s with length %d:", start, end, target+baseline.Offset)))
			writePaths(&b, baseline.Result)

			for _, alt := range alts[1:] {
				fmt.Fprintln(&b, promptStyle.Render(fmt.Sprintf(
					"Paths of length %d are no more expensive than the cheapest of length %d:",
					target+alt.Offset, target+baseline.Offset)))
				writePaths(&b, alt.Result)
			}
			return resultsMsg{report: b.String()}
		}
		return resultsMsg{report: b.String() + errorStyle.Render("Gave up growing the length.")}
	}
}

func writePaths(b *strings.Builder, res solver.Result) {
	for _, path := range res.Paths {
		names := make([]string, len(path))
		for i, a := range path {
			names[i] = a.String()
		}
		fmt.Fprintf(b, "  %s %s\n",
			scoreStyle.Render(fmt.Sprintf("Score [%d]", res.Cost)),
			pathStyle.Render(strings.Join(names, " -> ")))
	}
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("aspectpath"))
	b.WriteString("\n\n")

	switch m.stage {
	case stageStart:
		b.WriteString(promptStyle.Render("Enter the first aspect:"))
		b.WriteString("\n" + m.input.View() + "\n")
	case stageEnd:
		fmt.Fprintf(&b, "%s %s\n\n", subtleStyle.Render("first:"), m.start)
		b.WriteString(promptStyle.Render("Enter the second aspect:"))
		b.WriteString("\n" + m.input.View() + "\n")
	case stageConfirmStart, stageConfirmEnd:
		b.WriteString(confirmStyle.Render(fmt.Sprintf("Did you mean '%s'? y/n", m.candidate)))
		b.WriteString("\n")
	case stageLength:
		fmt.Fprintf(&b, "%s %s  %s %s\n\n",
			subtleStyle.Render("first:"), m.start,
			subtleStyle.Render("second:"), m.end)
		b.WriteString(promptStyle.Render("Enter the desired distance:"))
		b.WriteString("\n" + m.input.View() + "\n")
	case stageSearching:
		b.WriteString(subtleStyle.Render("Searching..."))
		b.WriteString("\n")
	case stageResults:
		if m.errText != "" {
			b.WriteString(errorStyle.Render(m.errText))
			b.WriteString("\n")
		}
		b.WriteString(m.report)
		b.WriteString("\n" + subtleStyle.Render("enter: new query - q: quit") + "\n")
	}

	if m.errText != "" && m.stage != stageResults {
		b.WriteString("\n" + errorStyle.Render(m.errText) + "\n")
	}
	b.WriteString("\n" + subtleStyle.Render("ctrl+c: quit") + "\n")
	return b.String()
}

func main() {
	config, err := LoadConfig(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	blob, err := loadSnapshot(config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load player snapshot: %v\n", err)
		os.Exit(1)
	}

	inv, err := inventory.DecodeBytes(blob)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to decode player snapshot: %v\n", err)
		os.Exit(1)
	}

	s := solver.New(graph.NewComposition(), inv, solver.WithMaxExpansions(config.MaxExpansions))

	if _, err := tea.NewProgram(initialModel(s, config.Slack)).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "TUI error: %v\n", err)
		os.Exit(1)
	}
}

func loadSnapshot(config Config) ([]byte, error) {
	cache, err := store.NewStore(config.CachePath)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot cache: %w", err)
	}
	defer cache.Close()

	if config.Offline {
		blob, _, err := cache.Snapshot(config.Username)
		return blob, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := fetch.NewClient(config.FTPAddr, config.FTPUser, config.FTPPassword)
	blob, err := client.PlayerData(ctx, config.Username)
	if err != nil {
		return nil, err
	}
	if err := cache.PutSnapshot(config.Username, blob); err != nil {
		slog.Warn("Failed to cache snapshot", "error", err, "username", config.Username)
	}
	return blob, nil
}
