package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/akshaywadatkar/temple-run/internal/core"
	"github.com/akshaywadatkar/temple-run/internal/storage"
)

// maxScores is how many entries the scoreboard loads.
const maxScores = 100

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var scoreboardTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("11")).
	Padding(0, 1)

// ScoreboardModel is the Bubble Tea model for browsing high scores.
type ScoreboardModel struct {
	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	gameID string
	err    error
}

// NewScoreboardModel creates a scoreboard for the given game's scores.
func NewScoreboardModel(store *storage.Store, gameID string) ScoreboardModel {
	m := ScoreboardModel{
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		gameID: gameID,
	}

	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Player", Width: 16},
		{Title: "Score", Width: 8},
		{Title: "Distance", Width: 10},
		{Title: "Coins", Width: 6},
		{Title: "When", Width: 17},
	}

	var rows []table.Row
	if store != nil {
		entries, err := store.TopScores(gameID, maxScores)
		if err != nil {
			m.err = err
		}
		for i, e := range entries {
			rows = append(rows, table.Row{
				fmt.Sprintf("%d", i+1),
				e.Player,
				fmt.Sprintf("%d", e.Score),
				fmt.Sprintf("%.0f", e.Distance),
				fmt.Sprintf("%d", e.Coins),
				e.CreatedAt.Format("2006-01-02 15:04"),
			})
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(15),
	)
	m.table = t
	return m
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.table.SetHeight(core.Max(msg.Height-6, 3))
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	s := scoreboardTitleStyle.Render("Temple Run — High Scores") + "\n\n"
	if m.err != nil {
		s += fmt.Sprintf("could not load scores: %v\n", m.err)
		return s
	}
	if len(m.table.Rows()) == 0 {
		s += "No scores yet. Go run!\n\n"
	} else {
		s += m.table.View() + "\n\n"
	}
	s += m.help.View(m.keys)
	return s
}

// RunScoreboard starts the scoreboard program.
func RunScoreboard(store *storage.Store, gameID string) error {
	p := tea.NewProgram(NewScoreboardModel(store, gameID), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
