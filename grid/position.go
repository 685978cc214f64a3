/*
Package grid implements the 3x3 token grid: position arithmetic, move
validation, step counting, and the messages shown to the player.

The token's position is a single row-major index in [0, 8]. Coordinates are
derived from it and are 1-based, so the centre cell (index 4) is (2, 2).
*/
package grid

import "fmt"

const (
	// Size is the width and height of the grid.
	Size = 3
	// CellCount is the number of cells in the grid.
	CellCount = Size * Size
	// TokenMarker is drawn in the cell the token occupies.
	TokenMarker = "B"
)

// Direction is one of the four keypad moves.
type Direction string

const (
	Left  Direction = "left"
	Right Direction = "right"
	Up    Direction = "up"
	Down  Direction = "down"
)

// Directions maps each move to its coordinate delta.
var Directions = map[Direction]struct{ DX, DY int }{
	Left:  {DX: -1, DY: 0},
	Right: {DX: 1, DY: 0},
	Up:    {DX: 0, DY: -1},
	Down:  {DX: 0, DY: 1},
}

// ParseDirection accepts the lowercase direction names.
func ParseDirection(s string) (Direction, error) {
	d := Direction(s)
	if _, ok := Directions[d]; !ok {
		return "", fmt.Errorf("unknown direction %q", s)
	}
	return d, nil
}

// XY returns the 1-based coordinates of index.
func XY(index int) (x, y int) {
	return index%Size + 1, index/Size + 1
}

// ConvertToIndex is the inverse of XY.
func ConvertToIndex(x, y int) int {
	return (x - 1) + (y-1)*Size
}

// InBound reports whether (x, y) lies on the grid.
func InBound(x, y int) bool {
	return x >= 1 && x <= Size && y >= 1 && y <= Size
}

// NextIndex returns the index reached by moving from index in direction d.
// ok is false, and index is returned unchanged, when the move would leave the grid.
func NextIndex(index int, d Direction) (next int, ok bool) {
	delta, known := Directions[d]
	if !known {
		return index, false
	}

	x, y := XY(index)
	nx, ny := x+delta.DX, y+delta.DY
	if !InBound(nx, ny) {
		return index, false
	}
	return ConvertToIndex(nx, ny), true
}
