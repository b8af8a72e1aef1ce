package game

import "testing"

func TestGridAddAndQuery(t *testing.T) {
	g := NewGrid(4)

	if g.Size() != 4 {
		t.Fatalf("Size() = %d, want 4", g.Size())
	}

	g.AddTile(NewTile(2, 1, 2))

	tile := g.Tile(1, 2)
	if tile == nil {
		t.Fatal("Tile(1, 2) = nil, want a tile")
	}
	if tile.Value() != 2 {
		t.Errorf("Tile(1, 2).Value() = %d, want 2", tile.Value())
	}
	if g.Tile(2, 1) != nil {
		t.Error("Tile(2, 1) should be empty")
	}
}

func TestGridOutOfRangePanics(t *testing.T) {
	tests := []struct {
		name     string
		col, row int
	}{
		{"negative col", -1, 0},
		{"negative row", 0, -1},
		{"col too large", 4, 0},
		{"row too large", 0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Tile(%d, %d) did not panic", tt.col, tt.row)
				}
			}()
			NewGrid(4).Tile(tt.col, tt.row)
		})
	}
}

func TestGridAddTileOccupiedPanics(t *testing.T) {
	g := NewGrid(4)
	g.AddTile(NewTile(2, 0, 0))

	defer func() {
		if recover() == nil {
			t.Error("AddTile on occupied cell did not panic")
		}
	}()
	g.AddTile(NewTile(4, 0, 0))
}

func TestGridPerspectiveMapping(t *testing.T) {
	// One tile at physical (3, 1) on a 4x4 grid; each perspective
	// must expose it at the rotated logical position.
	tests := []struct {
		side     Side
		col, row int
	}{
		{North, 3, 1},
		{East, 2, 3},
		{South, 0, 2},
		{West, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.side.String(), func(t *testing.T) {
			g := NewGrid(4)
			g.AddTile(NewTile(8, 3, 1))
			g.SetViewingPerspective(tt.side)

			tile := g.Tile(tt.col, tt.row)
			if tile == nil || tile.Value() != 8 {
				t.Fatalf("Tile(%d, %d) under %v = %v, want value 8", tt.col, tt.row, tt.side, tile)
			}

			// Perspective only remaps coordinates; the stored tile
			// keeps its physical position.
			if tile.Col() != 3 || tile.Row() != 1 {
				t.Errorf("tile records (%d, %d), want physical (3, 1)", tile.Col(), tile.Row())
			}

			// The rotation is a bijection: exactly one occupied cell.
			occupied := 0
			for col := 0; col < 4; col++ {
				for row := 0; row < 4; row++ {
					if g.Tile(col, row) != nil {
						occupied++
					}
				}
			}
			if occupied != 1 {
				t.Errorf("occupied cells under %v = %d, want 1", tt.side, occupied)
			}
		})
	}
}

func TestGridMoveUnderPerspective(t *testing.T) {
	g := NewGrid(4)
	g.AddTile(NewTile(4, 0, 0))
	g.SetViewingPerspective(East)

	// Physical (0, 0) appears at logical (3, 0) under East.
	tile := g.Tile(3, 0)
	if tile == nil {
		t.Fatal("expected tile at logical (3, 0) under East")
	}

	g.Move(3, 3, tile)
	g.SetViewingPerspective(North)

	// Logical (3, 3) under East is physical (3, 0).
	moved := g.Tile(3, 0)
	if moved == nil || moved.Value() != 4 {
		t.Fatalf("after Move, Tile(3, 0) = %v, want value 4", moved)
	}
	if g.Tile(0, 0) != nil {
		t.Error("source cell (0, 0) should be cleared")
	}
}

func TestGridMoveOverwrites(t *testing.T) {
	g := NewGrid(4)
	g.AddTile(NewTile(2, 0, 0))
	g.AddTile(NewTile(2, 0, 3))

	g.Move(0, 3, g.Tile(0, 0).doubled())

	top := g.Tile(0, 3)
	if top == nil || top.Value() != 4 {
		t.Fatalf("Tile(0, 3) = %v, want value 4", top)
	}
	if g.Tile(0, 0) != nil {
		t.Error("source cell should be cleared after move")
	}
}

func TestGridMoveToOwnCell(t *testing.T) {
	g := NewGrid(4)
	g.AddTile(NewTile(2, 2, 2))

	g.Move(2, 2, g.Tile(2, 2))

	tile := g.Tile(2, 2)
	if tile == nil || tile.Value() != 2 {
		t.Fatalf("Tile(2, 2) = %v, want value 2", tile)
	}
}

func TestGridClearKeepsPerspective(t *testing.T) {
	g := NewGrid(4)
	g.AddTile(NewTile(2, 0, 0))
	g.SetViewingPerspective(South)
	g.Clear()

	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			if g.Tile(col, row) != nil {
				t.Fatalf("Tile(%d, %d) not empty after Clear", col, row)
			}
		}
	}

	// Perspective survives Clear: a tile placed at physical (0, 0)
	// still reads through the South mapping.
	g.AddTile(NewTile(2, 0, 0))
	if g.Tile(3, 3) == nil {
		t.Error("perspective should be unchanged by Clear")
	}
}
