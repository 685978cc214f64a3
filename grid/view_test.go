package grid

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	t.Run("initial state", func(t *testing.T) {
		got := Render(InitialState)

		var cells [CellCount]Cell
		for idx := range cells {
			cells[idx] = Cell{Index: idx}
		}
		cells[4] = Cell{Index: 4, Active: true, Marker: TokenMarker}

		want := View{
			Coordinates: "Coordinates (2, 2)",
			Steps:       "You moved 0 times",
			Cells:       cells,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Render(InitialState) mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("singular and plural step readout", func(t *testing.T) {
		assert.Equal(t, "You moved 0 times", Render(State{Index: 4, Steps: 0}).Steps)
		assert.Equal(t, "You moved 1 time", Render(State{Index: 4, Steps: 1}).Steps)
		assert.Equal(t, "You moved 2 times", Render(State{Index: 4, Steps: 2}).Steps)
	})

	t.Run("exactly one active cell matching the index", func(t *testing.T) {
		for idx := 0; idx < CellCount; idx++ {
			v := Render(State{Index: idx})
			active := 0
			for _, c := range v.Cells {
				if c.Active {
					active++
					assert.Equal(t, idx, c.Index)
					assert.Equal(t, TokenMarker, c.Marker)
				} else {
					assert.Empty(t, c.Marker)
				}
			}
			assert.Equal(t, 1, active)
		}
	})

	t.Run("message and email pass through", func(t *testing.T) {
		v := Render(State{Index: 0, Message: "You can't go up", Email: "a@b.com"})
		assert.Equal(t, "Coordinates (1, 1)", v.Coordinates)
		assert.Equal(t, "You can't go up", v.Message)
		assert.Equal(t, "a@b.com", v.Email)
	})
}

func TestViewString(t *testing.T) {
	want := "Coordinates (3, 1)\n" +
		"You moved 3 times\n" +
		"+---+---+---+\n" +
		"|   |   | B |\n" +
		"+---+---+---+\n" +
		"|   |   |   |\n" +
		"+---+---+---+\n" +
		"|   |   |   |\n" +
		"+---+---+---+\n" +
		"You can't go right\n"

	got := Render(State{Index: 2, Steps: 3, Message: "You can't go right"}).String()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("View.String() mismatch (-want +got):\n%s", diff)
	}
}
