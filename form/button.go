package form

import tea "charm.land/bubbletea/v2"

// Button is a pressable piece.
// It fires on enter when focused, and on its hotkey from anywhere in the form.
type Button struct {
	name   string
	label  string
	hotkey string
}

func NewButton(name, label, hotkey string) Button {
	return Button{
		name:   name,
		label:  label,
		hotkey: hotkey,
	}
}

func (b Button) Update(msg tea.Msg) (Piece, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if msg.String() == "enter" || msg.String() == b.hotkey {
			return b, b.pressedCmd()
		}
	}
	return b, nil
}

func (b Button) pressedCmd() tea.Cmd {
	return func() tea.Msg {
		return PressedMsg{Name: b.name}
	}
}

// Hotkey returns the key that presses the button regardless of focus.
func (b Button) Hotkey() string {
	return b.hotkey
}

func (b Button) Label() string {
	return b.label
}

func (b Button) Render() string {
	if b.hotkey == "" {
		return "[ " + b.label + " ]"
	}
	return "[ " + b.label + " ] (" + b.hotkey + ")"
}

func (b Button) Value() string {
	return b.label
}

func (b Button) Focusable() bool {
	return true
}
