package nav

import "github.com/pkg/errors"

// Screen identifies one step of the onboarding flow.
type Screen int

const (
	Home Screen = iota
	Login
	Otp
	Role
	Main
)

var names = [...]string{
	Home:  "home",
	Login: "login",
	Otp:   "otp",
	Role:  "role",
	Main:  "main",
}

// Screens lists every screen in flow order.
func Screens() []Screen {
	return []Screen{Home, Login, Otp, Role, Main}
}

// Valid reports whether scr is one of the enumerated screens.
func (scr Screen) Valid() bool {
	return scr >= Home && scr <= Main
}

func (scr Screen) String() string {
	if !scr.Valid() {
		return "unknown"
	}
	return names[scr]
}

// ParseScreen returns the screen for a route name.
func ParseScreen(name string) (scr Screen, err error) {

	for i, nm := range names {
		if nm == name {
			scr = Screen(i)
			return
		}
	}

	err = errors.Errorf("no screen named %q", name)
	return
}
