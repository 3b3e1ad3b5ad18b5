package screen

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"guidora/form"
	"guidora/style"
)

// CodeLength is the number of digit cells on the code screen.
const CodeLength = 6

// Otp collects a six digit code one cell at a time.
//
// Typing a digit fills the focused cell, if empty, and moves focus right. Backspace clears the
// focused cell and moves focus left. Completion is only checked when the last cell is filled,
// so a code completed by backfilling earlier cells does not advance.
type Otp struct {
	opts    Options
	hooks   Hooks
	cells   []form.TextInput
	focused int
}

func NewOtp(opts Options, hooks Hooks) Otp {
	cells := make([]form.TextInput, CodeLength)
	for i := range cells {
		cells[i] = form.NewTextInput("digit", "", 1, form.Digits)
	}

	return Otp{
		opts:  opts,
		hooks: hooks,
		cells: cells,
	}
}

func (otp Otp) Init() tea.Cmd {
	return nil
}

// Code returns the digits entered so far, empty cells as spaces.
func (otp Otp) Code() string {
	var bld strings.Builder
	for _, cell := range otp.cells {
		if cell.Value() == "" {
			bld.WriteString(" ")
			continue
		}
		bld.WriteString(cell.Value())
	}
	return bld.String()
}

// Focused returns the index of the focused cell.
func (otp Otp) Focused() int {
	return otp.focused
}

// Complete reports whether every cell holds a digit.
func (otp Otp) Complete() bool {
	for _, cell := range otp.cells {
		if cell.Value() == "" {
			return false
		}
	}
	return true
}

func (otp Otp) Update(msg tea.Msg) (Leaf, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return otp, nil
	}

	switch keyMsg.String() {
	case "ctrl+b":
		return otp, otp.hooks.Back
	case "left", "shift+tab":
		otp = otp.focus(otp.focused - 1)
		return otp, nil
	case "right", "tab":
		otp = otp.focus(otp.focused + 1)
		return otp, nil
	}

	return otp.edit(keyMsg)
}

func (otp Otp) Render() string {
	boxes := make([]string, len(otp.cells))
	for i, cell := range otp.cells {
		digit := cell.Value()
		if digit == "" {
			digit = "_"
		}
		if i == otp.focused {
			boxes[i] = style.FocusStyle.Render("[" + digit + "]")
			continue
		}
		boxes[i] = style.BlurStyle.Render("[" + digit + "]")
	}

	return column(
		banner(otp.opts),
		"",
		divider(otp.opts, "Enter the code you received"),
		"",
		strings.Join(boxes, " "),
		"",
		style.MutedStyle.Render("← Back (ctrl+b)"),
	)
}

// unexported

func (otp Otp) focus(idx int) Otp {
	if idx >= 0 && idx < len(otp.cells) {
		otp.focused = idx
	}
	return otp
}

func (otp Otp) edit(msg tea.KeyPressMsg) (Leaf, tea.Cmd) {

	idx := otp.focused
	cell := otp.cells[idx]

	switch msg.String() {
	case "backspace", "delete":
		if cell.Value() == "" {
			return otp, nil
		}
		cell = cell.SetValue("")
	default:
		// a filled cell takes no more input until cleared
		if cell.Value() != "" {
			return otp, nil
		}
		cell = cell.SetValue(msg.Text)
		if cell.Value() == "" {
			return otp, nil
		}
	}

	otp.cells = cloneCells(otp.cells)
	otp.cells[idx] = cell

	if cell.Value() == "" {
		otp = otp.focus(idx - 1)
		return otp, nil
	}

	if idx < len(otp.cells)-1 {
		otp = otp.focus(idx + 1)
		return otp, nil
	}

	if otp.Complete() {
		return otp, otp.hooks.Forward
	}
	return otp, nil
}

func cloneCells(cells []form.TextInput) []form.TextInput {
	out := make([]form.TextInput, len(cells))
	copy(out, cells)
	return out
}
