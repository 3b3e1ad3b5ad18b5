package nav

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNoTransition is returned when an event has no entry for the current screen.
var ErrNoTransition = errors.New("no transition")

// Event is a user action that leaves may report to the navigator.
type Event int

const (
	Consult Event = iota
	CodeRequested
	BackPressed
	CodeCompleted
	ProfileSubmitted
)

func (ev Event) String() string {
	switch ev {
	case Consult:
		return "consult"
	case CodeRequested:
		return "code-requested"
	case BackPressed:
		return "back-pressed"
	case CodeCompleted:
		return "code-completed"
	case ProfileSubmitted:
		return "profile-submitted"
	}
	return fmt.Sprintf("event(%d)", int(ev))
}

// Kind says how a transition changes the history.
type Kind int

const (
	Push Kind = iota
	Truncate
	Pop
)

// Transition is one row of a flow table.
// To is ignored for Pop and Through is only read for Truncate.
type Transition struct {
	From    Screen
	Event   Event
	Kind    Kind
	To      Screen
	Through Screen
}

func (tr Transition) String() string {
	switch tr.Kind {
	case Pop:
		return fmt.Sprintf("%s --%s--> back", tr.From, tr.Event)
	case Truncate:
		return fmt.Sprintf("%s --%s--> %s (through %s)", tr.From, tr.Event, tr.To, tr.Through)
	}
	return fmt.Sprintf("%s --%s--> %s", tr.From, tr.Event, tr.To)
}

// Forwards reports whether the transition moves to a new screen.
func (tr Transition) Forwards() bool {
	return tr.Kind != Pop
}

// Flow is a fixed table of transitions.
type Flow []Transition

// Onboarding is the login funnel. Each forward step past Login truncates so passed
// screens cannot be revisited, and Main ends up with no history at all.
var Onboarding = Flow{
	{From: Home, Event: Consult, Kind: Push, To: Login},
	{From: Login, Event: CodeRequested, Kind: Truncate, To: Otp, Through: Login},
	{From: Otp, Event: BackPressed, Kind: Pop},
	{From: Otp, Event: CodeCompleted, Kind: Truncate, To: Role, Through: Otp},
	{From: Role, Event: ProfileSubmitted, Kind: Truncate, To: Main, Through: Home},
}

// Lookup finds the transition for event from screen.
func (flow Flow) Lookup(from Screen, ev Event) (tr Transition, ok bool) {

	for _, tr = range flow {
		if tr.From == from && tr.Event == ev {
			ok = true
			return
		}
	}

	tr = Transition{}
	return
}

// From returns the transitions leaving screen, in table order.
func (flow Flow) From(from Screen) (trs []Transition) {

	for _, tr := range flow {
		if tr.From == from {
			trs = append(trs, tr)
		}
	}
	return
}

// Forward returns the single forward transition leaving screen.
func (flow Flow) Forward(from Screen) (tr Transition, ok bool) {

	for _, tr = range flow.From(from) {
		if tr.Forwards() {
			ok = true
			return
		}
	}

	tr = Transition{}
	return
}

// Terminal reports whether no transition leaves screen.
func (flow Flow) Terminal(scr Screen) bool {
	return len(flow.From(scr)) == 0
}

// Apply performs a transition on the navigator.
// The transition must leave the current screen.
func (nvg *Navigator) Apply(tr Transition) (err error) {

	if tr.From != nvg.current {
		err = errors.Errorf("transition %s does not leave current screen %s", tr, nvg.current)
		return
	}

	switch tr.Kind {
	case Push:
		err = nvg.Forward(tr.To)
	case Truncate:
		err = nvg.ForwardThrough(tr.To, tr.Through)
	case Pop:
		nvg.Back()
	default:
		err = errors.Errorf("unknown transition kind %d", tr.Kind)
	}
	return
}

// Fire looks up event for the current screen and applies it.
func (nvg *Navigator) Fire(flow Flow, ev Event) (tr Transition, err error) {

	tr, ok := flow.Lookup(nvg.current, ev)
	if !ok {
		err = errors.Wrapf(ErrNoTransition, "%s on %s", ev, nvg.current)
		return
	}

	err = nvg.Apply(tr)
	return
}
