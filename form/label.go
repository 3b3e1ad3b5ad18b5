package form

import tea "charm.land/bubbletea/v2"

// Label is a read-only text piece
type Label struct {
	text string
}

func NewLabel(text string) Label {
	return Label{text: text}
}

func (l Label) Update(msg tea.Msg) (Piece, tea.Cmd) {
	return l, nil
}

func (l Label) Render() string {
	return l.text
}

func (l Label) Value() string {
	return l.text
}

func (l Label) Focusable() bool {
	return false
}
