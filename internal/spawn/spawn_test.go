package spawn

import (
	"testing"

	"github.com/tilt48/tilt48/internal/game"
)

func countTiles(e *game.Engine) int {
	n := 0
	size := e.Size()
	for col := 0; col < size; col++ {
		for row := 0; row < size; row++ {
			if e.Tile(col, row) != nil {
				n++
			}
		}
	}
	return n
}

func TestPlaceFillsEmptyCell(t *testing.T) {
	e := game.New(4)
	s := New(42, DefaultFourProb)

	if !s.Place(e) {
		t.Fatal("Place on empty board = false, want true")
	}
	if countTiles(e) != 1 {
		t.Fatalf("tile count = %d, want 1", countTiles(e))
	}

	// Spawned values are always 2 or 4.
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			if tile := e.Tile(col, row); tile != nil {
				if tile.Value() != 2 && tile.Value() != 4 {
					t.Errorf("spawned value = %d, want 2 or 4", tile.Value())
				}
			}
		}
	}
}

func TestPlaceOnFullBoard(t *testing.T) {
	e := game.New(4)
	v := 2
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			e.AddTile(game.NewTile(v, col, row))
			v *= 2
			if v > 1024 {
				v = 2
			}
		}
	}

	if New(1, DefaultFourProb).Place(e) {
		t.Error("Place on full board = true, want false")
	}
}

func TestSeedPlacesTwoTiles(t *testing.T) {
	e := game.New(4)
	New(7, DefaultFourProb).Seed(e)

	if countTiles(e) != 2 {
		t.Errorf("tile count after Seed = %d, want 2", countTiles(e))
	}
}

func TestDeterministicForSeed(t *testing.T) {
	snapshot := func(seed int64) [][]int {
		e := game.New(4)
		s := New(seed, DefaultFourProb)
		for range 8 {
			s.Place(e)
		}
		out := make([][]int, 4)
		for col := range out {
			out[col] = make([]int, 4)
			for row := 0; row < 4; row++ {
				if tile := e.Tile(col, row); tile != nil {
					out[col][row] = tile.Value()
				}
			}
		}
		return out
	}

	a, b := snapshot(12345), snapshot(12345)
	for col := range a {
		for row := range a[col] {
			if a[col][row] != b[col][row] {
				t.Fatalf("same seed produced different boards at (%d, %d)", col, row)
			}
		}
	}
}
