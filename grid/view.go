package grid

import (
	"fmt"
	"strings"
)

// Cell is one square of the rendered grid.
type Cell struct {
	Index  int
	Active bool
	Marker string
}

// View is what the player sees for a given State.
type View struct {
	Coordinates string
	Steps       string
	Message     string
	Email       string
	Cells       [CellCount]Cell
}

// Render builds the view of s. It has no side effects.
func Render(s State) View {
	x, y := s.XY()
	v := View{
		Coordinates: fmt.Sprintf("Coordinates (%d, %d)", x, y),
		Steps:       stepsMessage(s.Steps),
		Message:     s.Message,
		Email:       s.Email,
	}
	for idx := range v.Cells {
		v.Cells[idx] = Cell{Index: idx}
		if idx == s.Index {
			v.Cells[idx].Active = true
			v.Cells[idx].Marker = TokenMarker
		}
	}
	return v
}

func stepsMessage(steps int) string {
	unit := "times"
	if steps == 1 {
		unit = "time"
	}
	return fmt.Sprintf("You moved %d %s", steps, unit)
}

// String draws the readouts around an ASCII grid.
func (v View) String() string {
	var b strings.Builder

	b.WriteString(v.Coordinates + "\n")
	b.WriteString(v.Steps + "\n")

	border := "+" + strings.Repeat("---+", Size) + "\n"
	b.WriteString(border)
	for row := 0; row < Size; row++ {
		b.WriteString("|")
		for col := 0; col < Size; col++ {
			cell := v.Cells[row*Size+col]
			if cell.Active {
				b.WriteString(" " + cell.Marker + " |")
			} else {
				b.WriteString("   |")
			}
		}
		b.WriteString("\n" + border)
	}

	b.WriteString(v.Message + "\n")
	return b.String()
}
