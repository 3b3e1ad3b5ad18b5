package form

import tea "charm.land/bubbletea/v2"

// Operator cycles through a list of options.
// It starts unselected, showing its placeholder, until the first left or right.
type Operator struct {
	name        string
	placeholder string
	options     []string
	selected    int
}

func NewOperator(name, placeholder string, options []string) Operator {
	return Operator{
		name:        name,
		placeholder: placeholder,
		options:     options,
		selected:    -1,
	}
}

func (o Operator) Update(msg tea.Msg) (Piece, tea.Cmd) {
	if len(o.options) == 0 {
		return o, nil
	}
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "left", "h":
			o.selected--
			if o.selected < 0 {
				o.selected = len(o.options) - 1
			}
			return o, o.changedCmd()
		case "right", "l", "space":
			o.selected++
			if o.selected >= len(o.options) {
				o.selected = 0
			}
			return o, o.changedCmd()
		}
	}
	return o, nil
}

func (o Operator) changedCmd() tea.Cmd {
	selected := o.Selected()
	index := o.selected
	return func() tea.Msg {
		return SelectedMsg{
			Name:     o.name,
			Selected: selected,
			Index:    index,
		}
	}
}

func (o Operator) Selected() string {
	if o.selected < 0 || o.selected >= len(o.options) {
		return ""
	}
	return o.options[o.selected]
}

func (o Operator) SelectedIndex() int {
	return o.selected
}

func (o Operator) Render() string {
	if o.selected < 0 || o.selected >= len(o.options) {
		return "< " + o.placeholder + " >"
	}
	return "< " + o.options[o.selected] + " >"
}

func (o Operator) Value() string {
	return o.Selected()
}

func (o Operator) Focusable() bool {
	return true
}
