package form

import (
	"unicode"

	tea "charm.land/bubbletea/v2"
)

// Accept filters runes typed into a TextInput.
type Accept func(r rune) bool

// Digits accepts decimal digits only.
func Digits(r rune) bool {
	return unicode.IsDigit(r)
}

// Letters accepts letters and whitespace.
func Letters(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsSpace(r)
}

// TextInput is an editable text field.
// Cursor and length count runes.
type TextInput struct {
	name        string
	placeholder string
	value       []rune
	cursor      int
	maxLength   int
	accept      Accept
}

func NewTextInput(name, placeholder string, maxLength int, accept Accept) TextInput {
	if maxLength <= 0 {
		maxLength = 100 // Default max length
	}
	return TextInput{
		name:        name,
		placeholder: placeholder,
		maxLength:   maxLength,
		accept:      accept,
	}
}

// SetValue replaces the text, dropping runes the filter refuses and anything past max length.
func (t TextInput) SetValue(value string) TextInput {
	t.value = t.value[:0:0]
	for _, r := range value {
		if len(t.value) == t.maxLength {
			break
		}
		if t.accepts(r) {
			t.value = append(t.value, r)
		}
	}
	t.cursor = len(t.value)
	return t
}

func (t TextInput) Update(msg tea.Msg) (Piece, tea.Cmd) {
	oldValue := string(t.value)
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "backspace":
			if t.cursor > 0 {
				t.value = t.cut(t.cursor-1, t.cursor)
				t.cursor--
			}
		case "delete":
			if t.cursor < len(t.value) {
				t.value = t.cut(t.cursor, t.cursor+1)
			}
		case "left":
			if t.cursor > 0 {
				t.cursor--
			}
		case "right":
			if t.cursor < len(t.value) {
				t.cursor++
			}
		case "home", "ctrl+a":
			t.cursor = 0
		case "end", "ctrl+e":
			t.cursor = len(t.value)
		default:
			// Insert if it's a single accepted rune and under max length
			runes := []rune(msg.Text)
			if len(runes) == 1 && t.accepts(runes[0]) && len(t.value) < t.maxLength {
				t.value = t.insert(runes[0])
				t.cursor++
			}
		}
	}
	// Only send message if value changed
	if string(t.value) != oldValue {
		return t, t.changedCmd()
	}
	return t, nil
}

func (t TextInput) changedCmd() tea.Cmd {
	value := string(t.value)
	return func() tea.Msg {
		return ValueChangedMsg{Name: t.name, Value: value}
	}
}

func (t TextInput) Value() string {
	return string(t.value)
}

func (t TextInput) Cursor() int {
	return t.cursor
}

func (t TextInput) Render() string {
	if len(t.value) == 0 {
		return t.placeholder
	}
	return string(t.value)
}

func (t TextInput) Focusable() bool {
	return true
}

// unexported

func (t TextInput) accepts(r rune) bool {
	if t.accept == nil {
		return unicode.IsPrint(r)
	}
	return t.accept(r)
}

func (t TextInput) cut(from, to int) []rune {
	out := make([]rune, 0, len(t.value))
	out = append(out, t.value[:from]...)
	return append(out, t.value[to:]...)
}

func (t TextInput) insert(r rune) []rune {
	out := make([]rune, 0, len(t.value)+1)
	out = append(out, t.value[:t.cursor]...)
	out = append(out, r)
	return append(out, t.value[t.cursor:]...)
}
