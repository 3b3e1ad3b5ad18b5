package form

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// Form is an ordered column of pieces with a focus ring over the focusable ones.
type Form struct {
	pieces  []Piece
	focused int // index into pieces, -1 when nothing is focusable

	focusStyle lipgloss.Style
	blurStyle  lipgloss.Style
}

func New(focusStyle, blurStyle lipgloss.Style, pieces ...Piece) Form {
	frm := Form{
		pieces:     pieces,
		focused:    -1,
		focusStyle: focusStyle,
		blurStyle:  blurStyle,
	}
	return frm.First()
}

// Len returns the number of pieces
func (frm Form) Len() int {
	return len(frm.pieces)
}

// Piece returns the piece at idx
func (frm Form) Piece(idx int) Piece {
	if idx < 0 || idx >= len(frm.pieces) {
		return nil
	}
	return frm.pieces[idx]
}

// Focused returns the index of the focused piece, -1 if none
func (frm Form) Focused() int {
	return frm.focused
}

// Value returns the value of the piece at idx
func (frm Form) Value(idx int) string {
	pc := frm.Piece(idx)
	if pc == nil {
		return ""
	}
	return pc.Value()
}

// Focus moves focus to idx if that piece is focusable
func (frm Form) Focus(idx int) Form {
	if focusable(frm.Piece(idx)) {
		frm.focused = idx
	}
	return frm
}

// First focuses the first focusable piece
func (frm Form) First() Form {
	for idx := range frm.pieces {
		if focusable(frm.pieces[idx]) {
			frm.focused = idx
			return frm
		}
	}
	return frm
}

// Next cycles focus to the next focusable piece, wrapping at the end
func (frm Form) Next() Form {
	return frm.step(1)
}

// Prev cycles focus to the previous focusable piece, wrapping at the start
func (frm Form) Prev() Form {
	return frm.step(-1)
}

// Set replaces the piece at idx
func (frm Form) Set(idx int, pc Piece) Form {
	if idx < 0 || idx >= len(frm.pieces) {
		return frm
	}
	frm.pieces = clone(frm.pieces)
	frm.pieces[idx] = pc
	return frm
}

func (frm Form) Update(msg tea.Msg) (Form, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "tab", "down":
			return frm.Next(), nil
		case "shift+tab", "up":
			return frm.Prev(), nil
		}

		for _, pc := range frm.pieces {
			btn, ok := pc.(Button)
			if ok && btn.Hotkey() != "" && msg.String() == btn.Hotkey() {
				return frm, btn.pressedCmd()
			}
		}

		pc := frm.Piece(frm.focused)
		if pc == nil {
			return frm, nil
		}
		updated, cmd := pc.Update(msg)
		return frm.Set(frm.focused, updated), cmd
	}
	return frm, nil
}

// Render returns the pieces one per line, with the focused one highlighted
func (frm Form) Render() string {
	lines := make([]string, 0, len(frm.pieces))
	for idx, pc := range frm.pieces {
		switch {
		case idx == frm.focused:
			lines = append(lines, frm.focusStyle.Render(pc.Render()))
		case focusable(pc):
			lines = append(lines, frm.blurStyle.Render(pc.Render()))
		default:
			lines = append(lines, pc.Render())
		}
	}
	return strings.Join(lines, "\n")
}

// unexported

func (frm Form) step(dir int) Form {
	count := len(frm.pieces)
	if frm.focused < 0 || count == 0 {
		return frm
	}

	idx := frm.focused
	for range count {
		idx = (idx + dir + count) % count
		if focusable(frm.pieces[idx]) {
			frm.focused = idx
			return frm
		}
	}
	return frm
}

func focusable(pc Piece) bool {
	fc, ok := pc.(Focusable)
	return ok && fc.Focusable()
}

func clone(pieces []Piece) []Piece {
	out := make([]Piece, len(pieces))
	copy(out, pieces)
	return out
}
