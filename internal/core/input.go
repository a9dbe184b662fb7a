package core

// Intent is the single navigation or activation action derived from all
// raw input of one tick.
type Intent int

const (
	IntentNone Intent = iota
	IntentMoveLeft
	IntentMoveRight
	IntentMoveUp
	IntentMoveDown
	IntentActivate
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "None"
	case IntentMoveLeft:
		return "MoveLeft"
	case IntentMoveRight:
		return "MoveRight"
	case IntentMoveUp:
		return "MoveUp"
	case IntentMoveDown:
		return "MoveDown"
	case IntentActivate:
		return "Activate"
	default:
		return "Unknown"
	}
}

// Buttons holds the five logical actions for one input source and tick.
type Buttons struct {
	Left     bool
	Right    bool
	Up       bool
	Down     bool
	Activate bool
}

// Any reports whether at least one action is set.
func (b Buttons) Any() bool {
	return b.Left || b.Right || b.Up || b.Down || b.Activate
}

// Or merges two sources action by action.
func (b Buttons) Or(other Buttons) Buttons {
	return Buttons{
		Left:     b.Left || other.Left,
		Right:    b.Right || other.Right,
		Up:       b.Up || other.Up,
		Down:     b.Down || other.Down,
		Activate: b.Activate || other.Activate,
	}
}

// KeySnapshot is the keyboard state for one tick. The host sets a field
// only on the tick its key went down, so no debouncing is needed.
type KeySnapshot struct {
	Buttons

	// Close is the designated close key.
	Close bool
}

// Debouncer turns level-triggered gamepad state into a single trigger per
// press-release cycle.
type Debouncer struct {
	lastAnyPressed bool
}

// Apply passes raw through on the first tick any action is pressed and
// suppresses everything until all actions have been released again.
func (d *Debouncer) Apply(raw Buttons) Buttons {
	anyPressed := raw.Any()
	trigger := anyPressed && !d.lastAnyPressed
	d.lastAnyPressed = anyPressed

	if !trigger {
		return Buttons{}
	}
	return raw
}

// Merge combines the keyboard and the debounced gamepad actions.
func Merge(keys, pad Buttons) Buttons {
	return keys.Or(pad)
}

// Resolve picks one intent from the effective actions.
// Precedence: Activate > Right > Left > Down > Up.
func Resolve(b Buttons) Intent {
	switch {
	case b.Activate:
		return IntentActivate
	case b.Right:
		return IntentMoveRight
	case b.Left:
		return IntentMoveLeft
	case b.Down:
		return IntentMoveDown
	case b.Up:
		return IntentMoveUp
	default:
		return IntentNone
	}
}

// Arbiter unifies keyboard and gamepad snapshots into one Intent per tick.
type Arbiter struct {
	pad Debouncer
}

// Arbitrate derives the intent for one tick. The gamepad snapshot always
// passes through the debouncer, so a button still held when focus returns
// does not fire; while unfocused the result is IntentNone.
func (a *Arbiter) Arbitrate(keys KeySnapshot, pad Buttons, focused bool) Intent {
	debounced := a.pad.Apply(pad)
	if !focused {
		return IntentNone
	}
	return Resolve(Merge(keys.Buttons, debounced))
}
