// Package tui is a terminal front end for a grid.Controller.
package tui

import (
	"context"
	"strings"

	"github.com/beka-birhanu/vinom-grid/grid"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
)

type focus int

const (
	focusKeypad focus = iota
	focusEmail
)

const help = "arrows/hjkl move · r reset · tab email · enter submit · esc quit"

// submittedMsg is delivered once a submit has been applied to the controller.
type submittedMsg grid.Outcome

// Model adapts a grid.Controller to bubbletea. The controller holds all grid
// state; the model only tracks input focus and in-flight submits.
type Model struct {
	ctrl    *grid.Controller
	out     *termenv.Output
	focus   focus
	pending int
}

// New creates a Model drawing with out's colour profile.
func New(ctrl *grid.Controller, out *termenv.Output) Model {
	return Model{ctrl: ctrl, out: out}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case submittedMsg:
		m.pending--
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyLeft:
		m.ctrl.Move(grid.Left)
	case tea.KeyRight:
		m.ctrl.Move(grid.Right)
	case tea.KeyUp:
		m.ctrl.Move(grid.Up)
	case tea.KeyDown:
		m.ctrl.Move(grid.Down)
	case tea.KeyTab:
		if m.focus == focusKeypad {
			m.focus = focusEmail
		} else {
			m.focus = focusKeypad
		}
	case tea.KeyEnter:
		return m.submit()
	case tea.KeyBackspace:
		if m.focus == focusEmail {
			email := []rune(m.ctrl.State().Email)
			if len(email) > 0 {
				m.ctrl.UpdateEmail(string(email[:len(email)-1]))
			}
		}
	case tea.KeyRunes, tea.KeySpace:
		if m.focus == focusEmail {
			m.ctrl.UpdateEmail(m.ctrl.State().Email + string(msg.Runes))
			return m, nil
		}
		m.keypadRune(string(msg.Runes))
	}
	return m, nil
}

func (m Model) keypadRune(key string) {
	switch key {
	case "h":
		m.ctrl.Move(grid.Left)
	case "l":
		m.ctrl.Move(grid.Right)
	case "k":
		m.ctrl.Move(grid.Up)
	case "j":
		m.ctrl.Move(grid.Down)
	case "r":
		m.ctrl.Reset()
	}
}

// submit fires the request now and waits for its outcome off the update loop.
func (m Model) submit() (tea.Model, tea.Cmd) {
	done := m.ctrl.Submit(context.Background())
	m.pending++
	return m, func() tea.Msg {
		return submittedMsg(<-done)
	}
}

// View implements tea.Model.
func (m Model) View() string {
	v := m.ctrl.View()
	var b strings.Builder

	b.WriteString(m.out.String(v.Coordinates).Bold().String() + "\n")
	b.WriteString(v.Steps + "\n")

	border := "+" + strings.Repeat("---+", grid.Size) + "\n"
	b.WriteString(border)
	for row := 0; row < grid.Size; row++ {
		b.WriteString("|")
		for col := 0; col < grid.Size; col++ {
			cell := v.Cells[row*grid.Size+col]
			if cell.Active {
				b.WriteString(m.out.String(" " + cell.Marker + " ").Reverse().String())
			} else {
				b.WriteString("   ")
			}
			b.WriteString("|")
		}
		b.WriteString("\n" + border)
	}

	b.WriteString(m.out.String(v.Message).Foreground(m.out.Color("3")).String() + "\n\n")

	cursor := " "
	if m.focus == focusEmail {
		cursor = "_"
	}
	email := v.Email
	if email == "" && m.focus != focusEmail {
		email = m.out.String("type email").Faint().String()
	}
	b.WriteString("email: " + email + cursor + "\n")
	if m.pending > 0 {
		b.WriteString("submitting...\n")
	}
	b.WriteString(m.out.String(help).Faint().String() + "\n")
	return b.String()
}
