// Package spawn implements the random tile-spawning policy. It sits
// outside the rule engine and places tiles through the engine's
// AddTile boundary, so the engine stays a pure state-transition
// function.
package spawn

import (
	"math/rand"

	"github.com/tilt48/tilt48/internal/game"
)

// DefaultFourProb is the classic probability of spawning a 4
// instead of a 2.
const DefaultFourProb = 0.10

// Spawner places new tiles in random empty cells.
type Spawner struct {
	rng      *rand.Rand
	fourProb float64
}

// New creates a spawner seeded for deterministic play. fourProb is the
// probability in [0, 1] that a spawned tile is a 4 rather than a 2.
func New(seed int64, fourProb float64) *Spawner {
	if fourProb < 0 || fourProb > 1 {
		fourProb = DefaultFourProb
	}
	return &Spawner{
		rng:      rand.New(rand.NewSource(seed)),
		fourProb: fourProb,
	}
}

// Place adds one tile to a random empty cell of e and reports whether
// a cell was available.
func (s *Spawner) Place(e *game.Engine) bool {
	cells := emptyCells(e)
	if len(cells) == 0 {
		return false
	}

	cell := cells[s.rng.Intn(len(cells))]
	value := 2
	if s.rng.Float64() < s.fourProb {
		value = 4
	}

	e.AddTile(game.NewTile(value, cell.col, cell.row))
	return true
}

// Seed places the two starting tiles of a fresh game.
func (s *Spawner) Seed(e *game.Engine) {
	s.Place(e)
	s.Place(e)
}

type cell struct {
	col, row int
}

func emptyCells(e *game.Engine) []cell {
	var cells []cell
	size := e.Size()
	for col := 0; col < size; col++ {
		for row := 0; row < size; row++ {
			if e.Tile(col, row) == nil {
				cells = append(cells, cell{col, row})
			}
		}
	}
	return cells
}
