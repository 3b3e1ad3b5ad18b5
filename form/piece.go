// Package form provides the small input pieces onboarding screens are built from.
package form

import tea "charm.land/bubbletea/v2"

// Piece is a focusable element of a form.
type Piece interface {
	Update(msg tea.Msg) (Piece, tea.Cmd)
	Render() string
	Value() string
}

// Focusable pieces receive key presses when focused.
// Labels are skipped by the focus ring.
type Focusable interface {
	Piece
	Focusable() bool
}
