package game

import "fmt"

// Tile is a single numbered piece on the grid. Tiles are immutable
// value records: sliding or merging a tile produces a new Tile rather
// than mutating the old one, which sidesteps aliasing bugs between the
// grid and external observers holding references.
//
// A tile created by a merge carries a mark that makes it ineligible as
// a merge target for the remainder of the tilt that created it; the
// mark is discarded when the next tilt begins.
type Tile struct {
	value    int
	col, row int
	merged   bool
}

// NewTile creates a tile with the given value at physical position
// (col, row). The value must be a power of two ≥ 2; positions are
// validated when the tile is placed on a grid.
func NewTile(value, col, row int) *Tile {
	return &Tile{value: value, col: col, row: row}
}

// Value returns the number on the tile.
func (t *Tile) Value() int {
	return t.value
}

// Col returns the tile's physical column.
func (t *Tile) Col() int {
	return t.col
}

// Row returns the tile's physical row.
func (t *Tile) Row() int {
	return t.row
}

// String returns a compact debug representation.
func (t *Tile) String() string {
	return fmt.Sprintf("Tile(%d @ %d,%d)", t.value, t.col, t.row)
}

// doubled returns the tile produced when t is consumed by a merge: a
// new identity with twice the value, still recording t's position so
// the grid can clear the source cell, and marked non-mergeable for the
// rest of the current tilt.
func (t *Tile) doubled() *Tile {
	return &Tile{value: t.value * 2, col: t.col, row: t.row, merged: true}
}

// unmarked returns a copy of t without the merge mark, or t itself if
// it never carried one.
func (t *Tile) unmarked() *Tile {
	if !t.merged {
		return t
	}
	return &Tile{value: t.value, col: t.col, row: t.row}
}
