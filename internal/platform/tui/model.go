// Package tui provides the Bubble Tea front end for tilt48. The rule
// engine stays pure; this package maps key presses to tilts, drives
// the spawn policy after each successful move, and redraws from a
// snapshot refreshed by the engine's change notification.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tilt48/tilt48/internal/game"
	"github.com/tilt48/tilt48/internal/spawn"
	"github.com/tilt48/tilt48/internal/storage"
)

// boardView is the renderer's snapshot of engine state. The engine's
// OnChange callback refreshes it after every mutation, so View never
// touches a half-updated board. Cells are indexed [row from top][col].
type boardView struct {
	cells    [][]int
	score    int
	maxScore int
	over     bool
}

func (v *boardView) refresh(eng *game.Engine) {
	size := eng.Size()
	if v.cells == nil {
		v.cells = make([][]int, size)
		for i := range v.cells {
			v.cells[i] = make([]int, size)
		}
	}
	for i := range v.cells {
		for col := 0; col < size; col++ {
			v.cells[i][col] = 0
			if t := eng.Tile(col, size-1-i); t != nil {
				v.cells[i][col] = t.Value()
			}
		}
	}
	v.score = eng.Score()
	v.maxScore = eng.MaxScore()
	v.over = eng.GameOver()
}

// maxTile returns the highest tile currently on the board.
func (v *boardView) maxTile() int {
	best := 0
	for _, row := range v.cells {
		for _, val := range row {
			if val > best {
				best = val
			}
		}
	}
	return best
}

// Model is the Bubble Tea model for a single game session.
type Model struct {
	eng     *game.Engine
	spawner *spawn.Spawner
	store   *storage.Store

	view *boardView
	keys KeyMap
	help help.Model

	width, height int
	highScore     int // Persisted best from storage, for the header
	scoreSaved    bool
	quitting      bool
}

// NewModel creates a model around an engine and spawner. store may be
// nil; the game then runs without persistence. The two starting tiles
// are placed here so callers only wire components together.
func NewModel(eng *game.Engine, spawner *spawn.Spawner, store *storage.Store, width, height int) Model {
	view := &boardView{}
	eng.OnChange(func() { view.refresh(eng) })

	spawner.Seed(eng)

	highScore := 0
	if store != nil {
		if best, err := store.HighScore(eng.Size()); err == nil {
			highScore = best
		}
	}

	return Model{
		eng:       eng,
		spawner:   spawner,
		store:     store,
		view:      view,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		width:     width,
		height:    height,
		highScore: highScore,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		if m.view.over {
			m.eng.Clear()
			m.spawner.Seed(m.eng)
			m.scoreSaved = false
		}
		return m, nil
	}

	if m.view.over {
		return m, nil
	}

	var side game.Side
	switch {
	case key.Matches(msg, m.keys.Up):
		side = game.North
	case key.Matches(msg, m.keys.Down):
		side = game.South
	case key.Matches(msg, m.keys.Left):
		side = game.West
	case key.Matches(msg, m.keys.Right):
		side = game.East
	default:
		return m, nil
	}

	if m.eng.Tilt(side) && !m.eng.GameOver() {
		m.spawner.Place(m.eng)
	}

	if m.view.over && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	return m, nil
}

// saveScore persists the finished game. Best effort: the game keeps
// working without storage.
func (m *Model) saveScore() {
	if m.store == nil || m.view.score == 0 {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveScore(m.eng.Size(), m.view.score, m.view.maxTile())
	if m.view.score > m.highScore {
		m.highScore = m.view.score
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.render()
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
