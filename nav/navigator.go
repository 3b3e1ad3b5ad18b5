// Package nav holds the onboarding navigation state machine.
package nav

import (
	"slices"

	"github.com/pkg/errors"
)

// Navigator owns the visible screen and the back history.
// It is not safe for concurrent use; the host mutates it from a single event loop.
type Navigator struct {
	current Screen
	history []Screen
}

// New creates a started navigator.
func New() *Navigator {

	nvg := &Navigator{}
	nvg.Start()

	return nvg
}

// Start resets to Home with an empty history.
func (nvg *Navigator) Start() {
	nvg.current = Home
	nvg.history = nvg.history[:0]
}

// Current returns the visible screen.
func (nvg *Navigator) Current() Screen {
	return nvg.current
}

// History returns a copy of the back history, oldest first.
func (nvg *Navigator) History() []Screen {
	return slices.Clone(nvg.history)
}

// CanGoBack reports whether Back would change the current screen.
func (nvg *Navigator) CanGoBack() bool {
	return len(nvg.history) > 0
}

// Forward pushes the current screen and moves to target.
func (nvg *Navigator) Forward(target Screen) (err error) {

	err = checkTarget(target)
	if err != nil {
		return
	}

	nvg.history = append(nvg.history, nvg.current)
	nvg.current = target
	return
}

// ForwardThrough moves to target after removing through, and everything pushed after it,
// from the history. The current screen lies past the truncation point so it is not pushed.
// When through is not in the history the whole history is dropped.
func (nvg *Navigator) ForwardThrough(target, through Screen) (err error) {

	err = checkTarget(target)
	if err != nil {
		return
	}
	if !through.Valid() {
		err = errors.Errorf("cannot truncate through invalid screen %d", through)
		return
	}

	idx := slices.Index(nvg.history, through)
	if idx < 0 {
		idx = 0
	}

	nvg.history = nvg.history[:idx]
	nvg.current = target
	return
}

// Back pops the last history entry and makes it current.
// With an empty history it does nothing and returns false.
func (nvg *Navigator) Back() (scr Screen, ok bool) {

	last := len(nvg.history) - 1
	if last < 0 {
		return nvg.current, false
	}

	nvg.current = nvg.history[last]
	nvg.history = nvg.history[:last]

	return nvg.current, true
}

// unexported

func checkTarget(target Screen) (err error) {

	if !target.Valid() || target == Home {
		err = errors.Errorf("cannot navigate forward to %s (%d)", target, target)
	}
	return
}
