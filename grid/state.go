package grid

import "fmt"

// State is everything one grid widget remembers.
type State struct {
	Index   int    // Row-major token position
	Steps   int    // Accepted moves since the last reset
	Message string // Rejection text or the last server response
	Email   string // Email typed by the player
}

// InitialState is used both when a controller is created and on reset.
var InitialState = State{
	Index:   4,
	Steps:   0,
	Message: "",
	Email:   "",
}

// XY returns the token coordinates.
func (s State) XY() (x, y int) {
	return XY(s.Index)
}

// rejectMessage is shown when a move would leave the grid.
func rejectMessage(d Direction) string {
	return fmt.Sprintf("You can't go %s", d)
}
