package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tilt48/tilt48/internal/game"
)

const cellWidth = 7

var (
	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	emptyCellStyle = lipgloss.NewStyle().
			Width(cellWidth).
			Align(lipgloss.Center).
			Foreground(lipgloss.Color("238"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	scoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	overStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	winStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("46"))
)

// tileColors maps tile values to 256-color foregrounds, brightening
// toward the high tiles the way the original game's palette does.
var tileColors = map[int]lipgloss.Color{
	2:    lipgloss.Color("252"),
	4:    lipgloss.Color("230"),
	8:    lipgloss.Color("216"),
	16:   lipgloss.Color("209"),
	32:   lipgloss.Color("203"),
	64:   lipgloss.Color("196"),
	128:  lipgloss.Color("227"),
	256:  lipgloss.Color("226"),
	512:  lipgloss.Color("220"),
	1024: lipgloss.Color("214"),
	2048: lipgloss.Color("208"),
}

func tileStyle(value int) lipgloss.Style {
	color, ok := tileColors[value]
	if !ok {
		color = lipgloss.Color("201") // Beyond 2048
	}
	return lipgloss.NewStyle().
		Width(cellWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(color)
}

// render produces the complete frame: header, board, status line, and
// help bar, centered in the terminal.
func (m Model) render() string {
	var rows []string
	for _, row := range m.view.cells {
		cells := make([]string, len(row))
		for col, value := range row {
			if value == 0 {
				cells[col] = emptyCellStyle.Render("·")
			} else {
				cells[col] = tileStyle(value).Render(fmt.Sprintf("%d", value))
			}
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Center, cells...))
	}
	board := boardStyle.Render(strings.Join(rows, "\n\n"))

	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("tilt48"),
		scoreStyle.Render(fmt.Sprintf("  score %d", m.view.score)),
		scoreStyle.Render(fmt.Sprintf("  session best %d", m.sessionBest())),
		scoreStyle.Render(fmt.Sprintf("  all-time %d", m.allTimeBest())),
	)

	status := ""
	if m.view.over {
		if m.view.maxTile() >= game.MaxTileValue {
			status = winStyle.Render("YOU WIN! Press r to play again")
		} else {
			status = overStyle.Render("GAME OVER. Press r to play again")
		}
	}

	frame := lipgloss.JoinVertical(lipgloss.Center,
		header,
		board,
		status,
		m.help.View(m.keys),
	)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, frame)
	}
	return frame
}

// sessionBest is the better of the live score and the engine's
// session high-water mark, so the header never lags mid-game.
func (m Model) sessionBest() int {
	if m.view.score > m.view.maxScore {
		return m.view.score
	}
	return m.view.maxScore
}

func (m Model) allTimeBest() int {
	if m.view.score > m.highScore {
		return m.view.score
	}
	return m.highScore
}
