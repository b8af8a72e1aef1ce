package game

import (
	"fmt"
	"strings"
)

// MaxTileValue is the tile value that ends the game in a win.
const MaxTileValue = 2048

// Engine owns one game of 2048: the grid, the score, the session-best
// score, and the cached game-over flag. It is single-threaded; callers
// must not tilt concurrently.
type Engine struct {
	grid     *Grid
	score    int
	maxScore int
	gameOver bool
	onChange func()
}

// New creates an engine with an empty grid of the given size, score 0,
// and the game not over.
func New(size int) *Engine {
	return &Engine{grid: NewGrid(size)}
}

// OnChange registers fn to be invoked synchronously after any mutating
// operation that altered the board or the score. There is no payload:
// subscribers re-read state through the query methods. A nil fn
// disables notification.
func (e *Engine) OnChange(fn func()) {
	e.onChange = fn
}

func (e *Engine) notify() {
	if e.onChange != nil {
		e.onChange()
	}
}

// Size returns the number of squares on one side of the board.
func (e *Engine) Size() int {
	return e.grid.Size()
}

// Tile returns the tile at (col, row), or nil if the cell is empty.
func (e *Engine) Tile(col, row int) *Tile {
	return e.grid.Tile(col, row)
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// MaxScore returns the best score observed across games this session.
// It is updated at the moment a game transitions into game-over.
func (e *Engine) MaxScore() int {
	return e.maxScore
}

// GameOver reports whether the game has ended. The flag is recomputed
// after every mutation, so repeated calls are idempotent and never
// change score or max-score.
func (e *Engine) GameOver() bool {
	return e.gameOver
}

// AddTile places a new tile on the board. It is intended for the
// external spawn policy; panics if the target cell is occupied.
func (e *Engine) AddTile(t *Tile) {
	e.grid.AddTile(t)
	e.checkGameOver()
	e.notify()
}

// Clear empties the board and resets score and game-over for a new
// game. MaxScore persists: it captures the best score of the session.
func (e *Engine) Clear() {
	e.score = 0
	e.gameOver = false
	e.grid.Clear()
	e.notify()
}

// Tilt slides every tile toward side, merging equal neighbors, and
// reports whether any tile moved. Merge rules:
//
//  1. Two tiles adjacent in the direction of motion with equal values
//     merge into one tile of twice the value, which is added to the
//     score.
//  2. A tile produced by a merge does not merge again on the same
//     tilt; every tile is part of at most one merge per move.
//  3. Of three equal tiles in a line, the two nearer the destination
//     edge merge and the trailing tile stays.
func (e *Engine) Tilt(side Side) bool {
	changed := false

	e.grid.clearMergeMarks()
	e.grid.SetViewingPerspective(side)

	// In the rotated frame "up" is the requested direction, so every
	// side reduces to compacting each column toward the top row.
	size := e.grid.Size()
	for col := 0; col < size; col++ {
		// Next free or merge-eligible slot in this column.
		target := size - 1
		for row := size - 1; row >= 0; row-- {
			cur := e.grid.Tile(col, row)
			if cur == nil {
				continue
			}
			if row == target {
				continue
			}
			anchor := e.grid.Tile(col, target)
			switch {
			case anchor == nil:
				// First tile reaching this slot: plain move.
				e.grid.Move(col, target, cur)
				changed = true
			case anchor.value == cur.value && !anchor.merged:
				// The merged tile closes the slot to further merges.
				e.grid.Move(col, target, cur.doubled())
				e.score += 2 * cur.value
				target--
				changed = true
			default:
				target--
				if target != row {
					e.grid.Move(col, target, cur)
					changed = true
				}
			}
		}
	}

	e.grid.SetViewingPerspective(North)
	e.checkGameOver()
	if changed {
		e.notify()
	}
	return changed
}

// checkGameOver recomputes the game-over flag and, when a game has
// ended, folds the final score into the session high-water mark.
func (e *Engine) checkGameOver() {
	e.gameOver = MaxTileExists(e.grid) || !AtLeastOneMoveExists(e.grid)
	if e.gameOver && e.score > e.maxScore {
		e.maxScore = e.score
	}
}

// EmptySpaceExists reports whether any cell of g holds no tile.
func EmptySpaceExists(g *Grid) bool {
	size := g.Size()
	for col := 0; col < size; col++ {
		for row := 0; row < size; row++ {
			if g.Tile(col, row) == nil {
				return true
			}
		}
	}
	return false
}

// MaxTileExists reports whether any tile has reached MaxTileValue.
func MaxTileExists(g *Grid) bool {
	size := g.Size()
	for col := 0; col < size; col++ {
		for row := 0; row < size; row++ {
			if t := g.Tile(col, row); t != nil && t.value >= MaxTileValue {
				return true
			}
		}
	}
	return false
}

// AtLeastOneMoveExists reports whether a tilt in some direction could
// change the board: either an empty cell exists, or two row- or
// column-adjacent tiles share a value.
func AtLeastOneMoveExists(g *Grid) bool {
	if EmptySpaceExists(g) {
		return true
	}
	size := g.Size()
	for col := 0; col < size; col++ {
		for row := 0; row < size; row++ {
			v := g.Tile(col, row).Value()
			if col+1 < size && g.Tile(col+1, row).Value() == v {
				return true
			}
			if row+1 < size && g.Tile(col, row+1).Value() == v {
				return true
			}
		}
	}
	return false
}

// String renders the board for debugging: rows top to bottom, values
// right-aligned in four-character fields, with a score trailer. Not a
// stable wire format.
func (e *Engine) String() string {
	var sb strings.Builder
	sb.WriteString("\n[\n")
	size := e.Size()
	for row := size - 1; row >= 0; row-- {
		for col := 0; col < size; col++ {
			if t := e.Tile(col, row); t == nil {
				sb.WriteString("|    ")
			} else {
				fmt.Fprintf(&sb, "|%4d", t.Value())
			}
		}
		sb.WriteString("|\n")
	}
	over := "not over"
	if e.gameOver {
		over = "over"
	}
	fmt.Fprintf(&sb, "] %d (max: %d) (game is %s) \n", e.score, e.maxScore, over)
	return sb.String()
}
