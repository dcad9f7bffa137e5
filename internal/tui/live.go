// Package tui provides a live terminal replay of a generated sample path.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/stochlab/internal/stoch"
)

const (
	graphWidth  = 80
	graphHeight = 16
	// window of most recent points kept on screen
	windowSize = 400
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	statStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

type Model struct {
	name    string
	path    stoch.Series
	shown   int
	perTick int
	fps     int
	paused  bool
	done    bool
}

// NewModel replays an already generated path point by point. The whole
// path is computed up front so the replay never blocks on generation.
func NewModel(name string, path stoch.Series, fps int) Model {
	if fps <= 0 {
		fps = 30
	}
	perTick := len(path) / (fps * 10)
	if perTick < 1 {
		perTick = 1
	}
	shown := 2
	if shown > len(path) {
		shown = len(path)
	}
	return Model{
		name:    name,
		path:    path,
		shown:   shown,
		perTick: perTick,
		fps:     fps,
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "r":
			m.shown = 2
			m.done = false
		}
		return m, nil
	case TickMsg:
		if !m.paused && !m.done {
			m.shown += m.perTick
			if m.shown >= len(m.path) {
				m.shown = len(m.path)
				m.done = true
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	visible := m.path[:m.shown]
	if len(visible) > windowSize {
		visible = visible[len(visible)-windowSize:]
	}

	graph := asciigraph.Plot(visible,
		asciigraph.Height(graphHeight),
		asciigraph.Width(graphWidth),
	)

	status := "running"
	if m.paused {
		status = "paused"
	} else if m.done {
		status = "done"
	}

	stats := statStyle.Render(fmt.Sprintf(
		"t=%d/%d  value=%+.4f  mean=%.4f  %s",
		m.shown, len(m.path), m.path[m.shown-1], m.path[:m.shown].Mean(), status,
	))

	return titleStyle.Render(fmt.Sprintf("%s path", m.name)) + "\n" +
		graph + "\n\n" + stats +
		helpStyle.Render("\nspace pause  r restart  q quit")
}

// Run blocks until the viewer exits.
func Run(name string, path stoch.Series, fps int) error {
	_, err := tea.NewProgram(NewModel(name, path, fps)).Run()
	return err
}
