package screen

import (
	tea "charm.land/bubbletea/v2"

	"guidora/form"
	"guidora/style"
)

const submit = "submit"

const (
	firstField = iota
	lastField
	roleField
)

// Role collects a name and a user type before entering the app.
// Nothing is required; submit advances with whatever was entered.
type Role struct {
	opts  Options
	hooks Hooks
	form  form.Form
}

func NewRole(opts Options, hooks Hooks) Role {
	return Role{
		opts:  opts,
		hooks: hooks,
		form: form.New(style.FocusStyle, style.BlurStyle,
			form.NewTextInput("first", "First name", 0, form.Letters),
			form.NewTextInput("last", "Last name", 0, form.Letters),
			form.NewOperator("role", "User type", opts.Roles),
			form.NewButton(submit, "Login", "enter"),
		),
	}
}

func (rl Role) Init() tea.Cmd {
	return nil
}

// Profile returns the entered first name, last name and selected role.
func (rl Role) Profile() (first, last, role string) {
	return rl.form.Value(firstField), rl.form.Value(lastField), rl.form.Value(roleField)
}

func (rl Role) Update(msg tea.Msg) (Leaf, tea.Cmd) {
	switch msg := msg.(type) {
	case form.PressedMsg:
		if msg.Name == submit {
			return rl, rl.hooks.Forward
		}
		return rl, nil
	}

	var cmd tea.Cmd
	rl.form, cmd = rl.form.Update(msg)
	return rl, cmd
}

func (rl Role) Render() string {
	return column(
		banner(rl.opts),
		"",
		divider(rl.opts, "Who are you?"),
		"",
		rl.form.Render(),
	)
}
