package screen

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"guidora/nav"
)

func TestOtpInOrder(t *testing.T) {
	leaf := render(nav.Otp)

	for i, digit := range []string{"1", "2", "3", "4", "5"} {
		var out tea.Msg
		leaf, out = send(leaf, typed(digit))
		if out != nil {
			t.Fatalf("digit %d: unexpected fire %#v", i, out)
		}
		if leaf.(Otp).Focused() != i+1 {
			t.Errorf("digit %d: expected focus %d, got %d", i, i+1, leaf.(Otp).Focused())
		}
	}

	leaf, out := send(leaf, typed("6"))
	expectFire(t, out, nav.CodeCompleted)

	if leaf.(Otp).Code() != "123456" {
		t.Errorf("expected 123456, got %q", leaf.(Otp).Code())
	}
}

func TestOtpIgnoresNonDigits(t *testing.T) {
	leaf := sendAll(t, render(nav.Otp), typed("a"), typed("-"), typed(" "))

	otp := leaf.(Otp)
	if otp.Focused() != 0 || otp.Code() != "      " {
		t.Errorf("expected untouched cells, got %q focus %d", otp.Code(), otp.Focused())
	}
}

func TestOtpOutOfOrderNeverAdvances(t *testing.T) {
	leaf := render(nav.Otp)
	for range CodeLength - 1 {
		leaf = sendAll(t, leaf, key(tea.KeyRight))
	}
	leaf = sendAll(t, leaf, typed("9"))

	for range CodeLength - 1 {
		leaf = sendAll(t, leaf, key(tea.KeyLeft))
	}
	leaf = sendAll(t, leaf, typed("1"), typed("2"), typed("3"), typed("4"), typed("5"))

	otp := leaf.(Otp)
	if !otp.Complete() || otp.Code() != "123459" {
		t.Errorf("expected all cells filled, got %q", otp.Code())
	}
}

func TestOtpRefillLastAdvances(t *testing.T) {
	leaf := sendAll(t, render(nav.Otp), key(tea.KeyTab), key(tea.KeyTab), key(tea.KeyTab),
		key(tea.KeyTab), key(tea.KeyTab), typed("9"),
	)
	for range CodeLength - 1 {
		leaf = sendAll(t, leaf, key(tea.KeyLeft))
	}
	leaf = sendAll(t, leaf, typed("1"), typed("2"), typed("3"), typed("4"), typed("5"))

	// clearing and retyping the last cell is a last cell edit with every cell filled
	leaf = sendAll(t, leaf, key(tea.KeyBackspace))
	if leaf.(Otp).Focused() != CodeLength-2 {
		t.Fatalf("expected focus to step back, got %d", leaf.(Otp).Focused())
	}
	leaf = sendAll(t, leaf, key(tea.KeyRight))

	_, out := send(leaf, typed("8"))
	expectFire(t, out, nav.CodeCompleted)
}

func TestOtpFilledCellTakesNoInput(t *testing.T) {
	leaf := sendAll(t, render(nav.Otp), typed("4"), key(tea.KeyLeft), typed("7"))

	otp := leaf.(Otp)
	if otp.Code()[0] != '4' || otp.Focused() != 0 {
		t.Errorf("expected first cell to keep 4, got %q focus %d", otp.Code(), otp.Focused())
	}
}

func TestOtpBackspace(t *testing.T) {
	leaf := sendAll(t, render(nav.Otp), typed("1"), typed("2"))

	leaf = sendAll(t, leaf, key(tea.KeyBackspace))
	if leaf.(Otp).Focused() != 2 {
		t.Errorf("expected backspace on empty cell to keep focus, got %d", leaf.(Otp).Focused())
	}

	leaf = sendAll(t, leaf, key(tea.KeyLeft), key(tea.KeyBackspace))
	otp := leaf.(Otp)
	if otp.Focused() != 0 || otp.Code() != "1     " {
		t.Errorf("expected cell cleared and focus at 0, got %q focus %d", otp.Code(), otp.Focused())
	}

	leaf = sendAll(t, leaf, key(tea.KeyBackspace), key(tea.KeyBackspace))
	otp = leaf.(Otp)
	if otp.Focused() != 0 || otp.Code() != "      " {
		t.Errorf("expected empty code at 0, got %q focus %d", otp.Code(), otp.Focused())
	}
}

func TestOtpBack(t *testing.T) {
	_, out := send(render(nav.Otp), ctrl('b'))
	expectFire(t, out, nav.BackPressed)
}

func TestOtpFocusBounds(t *testing.T) {
	leaf := sendAll(t, render(nav.Otp), key(tea.KeyLeft))
	if leaf.(Otp).Focused() != 0 {
		t.Errorf("expected focus to stay at 0, got %d", leaf.(Otp).Focused())
	}

	for range CodeLength + 3 {
		leaf = sendAll(t, leaf, key(tea.KeyRight))
	}
	if leaf.(Otp).Focused() != CodeLength-1 {
		t.Errorf("expected focus to stop at last cell, got %d", leaf.(Otp).Focused())
	}
}
