// Package guidora is the onboarding flow of the guidora client as a terminal ui.
//
// The Model hosts a nav.Navigator and a screen.Renderer. Leaves report user actions as
// nav.FireMsg; the Model fires them on the navigator and renders a fresh leaf for the new screen.
package guidora

import (
	"context"

	"guidora/config"
	"guidora/screen"
)

// Logger specifies a contextual, structured logger.
type Logger interface {
	Info(ctx context.Context, msg string, kv ...any)
	Error(ctx context.Context, msg string, err error, kv ...any)
}

// LeafOptions picks the leaf texts and limits out of cfg.
func LeafOptions(cfg *config.Config) screen.Options {
	return screen.Options{
		Brand:       cfg.Brand,
		Tagline:     cfg.Tagline,
		PhoneLength: cfg.PhoneLength,
		Roles:       cfg.Roles,
	}
}
