package core

import "testing"

func TestResolvePrecedence(t *testing.T) {
	tests := []struct {
		name     string
		in       Buttons
		expected Intent
	}{
		{"nothing", Buttons{}, IntentNone},
		{"activate beats all", Buttons{Activate: true, Right: true, Left: true, Up: true, Down: true}, IntentActivate},
		{"right beats left", Buttons{Right: true, Left: true}, IntentMoveRight},
		{"left beats down", Buttons{Left: true, Down: true}, IntentMoveLeft},
		{"down beats up", Buttons{Down: true, Up: true}, IntentMoveDown},
		{"up alone", Buttons{Up: true}, IntentMoveUp},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Resolve(tc.in); got != tc.expected {
				t.Errorf("Resolve(%+v) = %v, expected %v", tc.in, got, tc.expected)
			}
		})
	}
}

func TestDebouncerHeldFiresOnce(t *testing.T) {
	var d Debouncer
	held := Buttons{Right: true}

	triggers := 0
	for i := 0; i < 30; i++ {
		if d.Apply(held).Any() {
			triggers++
			if i != 0 {
				t.Errorf("trigger on tick %d, expected only the first tick", i)
			}
		}
	}
	if triggers != 1 {
		t.Errorf("held button triggered %d times, expected 1", triggers)
	}
}

func TestDebouncerNeedsRelease(t *testing.T) {
	var d Debouncer

	if !d.Apply(Buttons{Down: true}).Down {
		t.Fatal("first press should trigger")
	}
	// Switching to another button without releasing is still one held run.
	if d.Apply(Buttons{Up: true}).Any() {
		t.Error("changing buttons without a release should not trigger")
	}
	if d.Apply(Buttons{}).Any() {
		t.Error("release should not trigger")
	}
	if !d.Apply(Buttons{Up: true}).Up {
		t.Error("press after release should trigger")
	}
}

func TestDebouncerPassesAllButtonsOnTrigger(t *testing.T) {
	var d Debouncer
	raw := Buttons{Left: true, Activate: true}

	if got := d.Apply(raw); got != raw {
		t.Errorf("Apply(%+v) = %+v, expected raw passthrough", raw, got)
	}
}

func TestArbiterKeyboardNotDebounced(t *testing.T) {
	var a Arbiter
	keys := KeySnapshot{Buttons: Buttons{Right: true}}

	for i := 0; i < 3; i++ {
		if got := a.Arbitrate(keys, Buttons{}, true); got != IntentMoveRight {
			t.Errorf("tick %d: Arbitrate = %v, expected MoveRight", i, got)
		}
	}
}

func TestArbiterMergesSources(t *testing.T) {
	var a Arbiter

	got := a.Arbitrate(KeySnapshot{Buttons: Buttons{Up: true}}, Buttons{Activate: true}, true)
	if got != IntentActivate {
		t.Errorf("Arbitrate = %v, expected gamepad Activate to win", got)
	}
}

func TestArbiterUnfocused(t *testing.T) {
	var a Arbiter
	all := Buttons{Left: true, Right: true, Up: true, Down: true, Activate: true}

	if got := a.Arbitrate(KeySnapshot{Buttons: all, Close: true}, all, false); got != IntentNone {
		t.Errorf("unfocused Arbitrate = %v, expected None", got)
	}

	// The pad button is still held after focus returns: no trigger.
	if got := a.Arbitrate(KeySnapshot{}, Buttons{Activate: true}, true); got != IntentNone {
		t.Errorf("held across focus change: Arbitrate = %v, expected None", got)
	}
	a.Arbitrate(KeySnapshot{}, Buttons{}, true)
	if got := a.Arbitrate(KeySnapshot{}, Buttons{Activate: true}, true); got != IntentActivate {
		t.Errorf("fresh press after refocus: Arbitrate = %v, expected Activate", got)
	}
}

func TestIntentString(t *testing.T) {
	if IntentActivate.String() != "Activate" {
		t.Errorf("String() = %q", IntentActivate.String())
	}
	if Intent(99).String() != "Unknown" {
		t.Errorf("String() for unknown = %q", Intent(99).String())
	}
}
