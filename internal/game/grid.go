package game

import "fmt"

// Grid is an N×N board of optional tiles plus a viewing perspective.
// Cells hold nil when empty. The perspective is a transient coordinate
// transform applied to logical reads and writes; it never moves stored
// tiles, and tiles always record physical coordinates. Content and
// perspective are orthogonal: Clear removes tiles but leaves the
// perspective alone.
//
// Coordinate violations are programmer errors, not runtime conditions,
// so out-of-range access and double occupancy panic rather than return
// errors (the same convention slice indexing uses).
type Grid struct {
	size  int
	cells [][]*Tile // cells[col][row], physical
	view  Side
}

// NewGrid creates an empty grid with the given side length.
func NewGrid(size int) *Grid {
	if size < 1 {
		panic(fmt.Sprintf("game: invalid grid size %d", size))
	}
	cells := make([][]*Tile, size)
	for c := range cells {
		cells[c] = make([]*Tile, size)
	}
	return &Grid{size: size, cells: cells, view: North}
}

// Size returns the number of squares on one side of the grid.
func (g *Grid) Size() int {
	return g.size
}

// Tile returns the tile at logical (col, row) under the current
// perspective, or nil if the cell is empty. Panics if col or row is
// outside [0, size).
func (g *Grid) Tile(col, row int) *Tile {
	g.checkBounds(col, row)
	pc, pr := g.view.transform(col, row, g.size)
	return g.cells[pc][pr]
}

// AddTile places t on the grid at its own recorded physical position.
// Panics if a tile already occupies that cell: double occupancy means
// the spawn policy is broken, not that the game hit a bad state.
func (g *Grid) AddTile(t *Tile) {
	g.checkBounds(t.col, t.row)
	if g.cells[t.col][t.row] != nil {
		panic(fmt.Sprintf("game: cell (%d, %d) already occupied", t.col, t.row))
	}
	g.cells[t.col][t.row] = t
}

// Move relocates t to logical (col, row) under the current
// perspective, overwriting any occupant. This is a low-level
// primitive: the caller must already have accounted for the occupant
// (scored the merge, doubled the value). The tile's previous cell is
// cleared; moving a tile onto its own cell is a valid no-op.
func (g *Grid) Move(col, row int, t *Tile) {
	g.checkBounds(col, row)
	pc, pr := g.view.transform(col, row, g.size)
	g.cells[t.col][t.row] = nil
	g.cells[pc][pr] = &Tile{value: t.value, col: pc, row: pr, merged: t.merged}
}

// SetViewingPerspective sets the rotation applied to subsequent
// logical coordinate accesses. No stored tile moves; only the mapping
// from logical to physical coordinates changes.
func (g *Grid) SetViewingPerspective(s Side) {
	g.view = s
}

// Clear removes every tile. The perspective is untouched.
func (g *Grid) Clear() {
	for c := range g.cells {
		for r := range g.cells[c] {
			g.cells[c][r] = nil
		}
	}
}

// clearMergeMarks replaces merge-marked tiles with fresh unmarked
// identities. Called at the start of each tilt so tiles produced by
// the previous tilt are merge-eligible again.
func (g *Grid) clearMergeMarks() {
	for c := range g.cells {
		for r, t := range g.cells[c] {
			if t != nil && t.merged {
				g.cells[c][r] = t.unmarked()
			}
		}
	}
}

func (g *Grid) checkBounds(col, row int) {
	if col < 0 || col >= g.size || row < 0 || row >= g.size {
		panic(fmt.Sprintf("game: coordinates (%d, %d) out of range for size %d", col, row, g.size))
	}
}
