package pong

import (
	"strconv"

	"github.com/flavioheleno/pong/render"
)

// maxMenuItems is the number of text lines with a valid origin: rows 0, 8
// and 16.
const maxMenuItems = 3

// Menu picks the match length before play starts. The highlighted line
// follows a potentiometer and a button press confirms it.
type Menu struct {
	scores   []int
	selected int
	held     bool
	done     bool
}

// NewMatchMenu returns a menu offering the given match lengths. Non-positive
// lengths are dropped and at most three are kept; with none left the menu
// offers the default match length.
func NewMatchMenu(scores ...int) *Menu {
	m := &Menu{}
	for _, s := range scores {
		if s > 0 && len(m.scores) < maxMenuItems {
			m.scores = append(m.scores, s)
		}
	}
	if len(m.scores) == 0 {
		m.scores = []int{DefaultConfig().MatchScore}
	}
	return m
}

// Update moves the selection to match the reading and confirms it on a
// rising edge of the button. It returns true on the tick the choice is
// confirmed.
func (m *Menu) Update(reading uint16, button bool) bool {
	if m.done {
		return false
	}
	m.selected = min(int(reading), MaxAxis) * len(m.scores) / (MaxAxis + 1)

	edge := button && !m.held
	m.held = button
	if edge {
		m.done = true
	}
	return edge
}

// Selected returns the index of the highlighted line.
func (m *Menu) Selected() int { return m.selected }

// Choice returns the highlighted match length.
func (m *Menu) Choice() int { return m.scores[m.selected] }

// Done reports whether a choice has been confirmed.
func (m *Menu) Done() bool { return m.done }

// Draw lists the options, one per text line, with a cursor on the selection.
func (m *Menu) Draw(r *render.Renderer) {
	for i, s := range m.scores {
		r.DrawText("first to "+strconv.Itoa(s), 32, i*render.CellSize)
	}
	r.DrawText(">", 24, m.selected*render.CellSize)
}
