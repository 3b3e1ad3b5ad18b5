package screen

import (
	tea "charm.land/bubbletea/v2"

	"guidora/form"
	"guidora/style"
)

const consult = "consult"

// Home is the splash screen with the start button.
type Home struct {
	opts  Options
	hooks Hooks
	form  form.Form
}

func NewHome(opts Options, hooks Hooks) Home {
	return Home{
		opts:  opts,
		hooks: hooks,
		form: form.New(style.FocusStyle, style.BlurStyle,
			form.NewButton(consult, "Start consultation", "enter"),
		),
	}
}

func (hm Home) Init() tea.Cmd {
	return nil
}

func (hm Home) Update(msg tea.Msg) (Leaf, tea.Cmd) {
	switch msg := msg.(type) {
	case form.PressedMsg:
		if msg.Name == consult {
			return hm, hm.hooks.Forward
		}
		return hm, nil
	}

	var cmd tea.Cmd
	hm.form, cmd = hm.form.Update(msg)
	return hm, cmd
}

func (hm Home) Render() string {
	return column(
		banner(hm.opts),
		"",
		divider(hm.opts, hm.opts.Tagline),
		"",
		hm.form.Render(),
	)
}
