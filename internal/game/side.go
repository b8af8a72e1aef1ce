// Package game implements the 2048 rule engine: a square grid of
// power-of-two tiles, the tilt/merge state transition, score tracking,
// and win/loss detection. It contains pure logic with no external
// dependencies; rendering, input, spawning, and persistence live in
// other packages and talk to the engine through its query surface.
package game

// Side identifies one of the four directions the board can be tilted
// toward. North is the neutral orientation: grid coordinates put
// (0, 0) in the lower-left corner, with columns growing to the right
// and rows growing upward.
type Side int

const (
	North Side = iota
	East
	South
	West
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	}
	return "Unknown"
}

// transform maps logical (col, row) coordinates viewed under
// perspective s to physical storage coordinates. Each mapping is a 90°
// rotation of the board chosen so that logical rows increase in the
// true direction of motion: traversal code written as "slide toward
// the top row" works for every side. North is the identity.
func (s Side) transform(col, row, size int) (int, int) {
	switch s {
	case North:
		return col, row
	case East:
		return row, size - 1 - col
	case South:
		return size - 1 - col, size - 1 - row
	case West:
		return size - 1 - row, col
	}
	panic("game: invalid side")
}
