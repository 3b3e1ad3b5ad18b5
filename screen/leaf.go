// Package screen renders the onboarding leaves the navigator moves between.
//
// A leaf owns its input state only while it is visible. The host renders a fresh leaf after
// every transition, so phone number, code digits and profile fields never outlive their screen.
package screen

import (
	tea "charm.land/bubbletea/v2"
	"github.com/pkg/errors"

	"guidora/message"
	"guidora/nav"
)

// Leaf is a rendered screen.
type Leaf interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Leaf, tea.Cmd)
	Render() string
}

// Hooks are the transitions offered to a leaf, bound to their flow entries.
// A nil hook means the screen has no such transition.
type Hooks struct {
	Forward tea.Cmd
	Back    tea.Cmd
}

// Bind builds the hooks for scr from flow.
func Bind(flow nav.Flow, scr nav.Screen) (hooks Hooks) {

	for _, tr := range flow.From(scr) {
		if tr.Forwards() {
			hooks.Forward = nav.FireCmd(tr.Event)
			continue
		}
		hooks.Back = nav.FireCmd(tr.Event)
	}
	return
}

// Renderer builds the leaf for a screen.
type Renderer func(scr nav.Screen, hooks Hooks) Leaf

// Options are the texts and limits the leaves are drawn with.
type Options struct {
	Brand       string
	Tagline     string
	PhoneLength int
	Roles       []string
	Width       int
}

// NewRenderer returns a renderer drawing leaves with opts.
func NewRenderer(opts Options) Renderer {

	return func(scr nav.Screen, hooks Hooks) Leaf {
		switch scr {
		case nav.Home:
			return NewHome(opts, hooks)
		case nav.Login:
			return NewLogin(opts, hooks)
		case nav.Otp:
			return NewOtp(opts, hooks)
		case nav.Role:
			return NewRole(opts, hooks)
		case nav.Main:
			return NewMain(opts)
		}
		return blank{err: errors.Errorf("no leaf for screen %s", scr)}
	}
}

// blank stands in for a screen that cannot be rendered and reports why on init.
type blank struct {
	err error
}

func (bl blank) Init() tea.Cmd {
	return message.ErrorCmd(bl.err)
}

func (bl blank) Update(msg tea.Msg) (Leaf, tea.Cmd) {
	return bl, nil
}

func (bl blank) Render() string {
	return ""
}
