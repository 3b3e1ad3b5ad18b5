package screen

import (
	tea "charm.land/bubbletea/v2"

	"guidora/form"
	"guidora/style"
)

const (
	receive = "receive"
	resend  = "resend"
)

const phoneField = 0

// Login collects a phone number and asks for a code.
// The number is not checked; receive advances regardless of what was typed.
type Login struct {
	opts  Options
	hooks Hooks
	form  form.Form
}

func NewLogin(opts Options, hooks Hooks) Login {
	return Login{
		opts:  opts,
		hooks: hooks,
		form: form.New(style.FocusStyle, style.BlurStyle,
			form.NewTextInput("phone", "Enter your mobile number", opts.PhoneLength, form.Digits),
			form.NewButton(receive, "Receive code", "enter"),
			form.NewButton(resend, "Resend code", "ctrl+r"),
		),
	}
}

func (lg Login) Init() tea.Cmd {
	return nil
}

// Phone returns the number typed so far.
func (lg Login) Phone() string {
	return lg.form.Value(phoneField)
}

func (lg Login) Update(msg tea.Msg) (Leaf, tea.Cmd) {
	switch msg := msg.(type) {
	case form.PressedMsg:
		switch msg.Name {
		case receive:
			return lg, lg.hooks.Forward
		}
		// resend is shown but has nothing to send through
		return lg, nil
	}

	var cmd tea.Cmd
	lg.form, cmd = lg.form.Update(msg)
	return lg, cmd
}

func (lg Login) Render() string {
	return column(
		banner(lg.opts),
		"",
		divider(lg.opts, "Login"),
		"",
		lg.form.Render(),
	)
}
