package gamepad

import "github.com/vovakirdan/tui-kiosk/internal/core"

// Unmapped marks a button slot with no physical button.
const Unmapped = -1

// Mapping translates physical buttons and axes to logical buttons.
// Pads that report the d-pad as a hat use AxisX/AxisY; pads that report it
// as buttons use the Dpad* fields.
type Mapping struct {
	South     int
	DpadUp    int
	DpadDown  int
	DpadLeft  int
	DpadRight int
	AxisX     int
	AxisY     int
	Threshold int
}

// DefaultMapping matches common XInput-style pads on the Linux joystick API.
func DefaultMapping() Mapping {
	return Mapping{
		South:     0,
		DpadUp:    Unmapped,
		DpadDown:  Unmapped,
		DpadLeft:  Unmapped,
		DpadRight: Unmapped,
		AxisX:     6,
		AxisY:     7,
		Threshold: 16384,
	}
}

// padState is the raw state of one device.
type padState struct {
	buttons map[uint8]bool
	axes    map[uint8]int16
}

func newPadState() *padState {
	return &padState{
		buttons: make(map[uint8]bool),
		axes:    make(map[uint8]int16),
	}
}

func (s *padState) apply(ev Event) {
	switch ev.Kind() {
	case TypeButton:
		s.buttons[ev.Number] = ev.Value != 0
	case TypeAxis:
		s.axes[ev.Number] = ev.Value
	}
}

func (s *padState) button(n int) bool {
	if n < 0 || n > 255 {
		return false
	}
	return s.buttons[uint8(n)]
}

func (s *padState) axis(n int) int {
	if n < 0 || n > 255 {
		return 0
	}
	return int(s.axes[uint8(n)])
}

// levels returns the logical buttons currently held on a device.
func (m Mapping) levels(s *padState) core.Buttons {
	x, y := s.axis(m.AxisX), s.axis(m.AxisY)
	threshold := max(m.Threshold, 1)

	return core.Buttons{
		Left:     s.button(m.DpadLeft) || x <= -threshold,
		Right:    s.button(m.DpadRight) || x >= threshold,
		Up:       s.button(m.DpadUp) || y <= -threshold,
		Down:     s.button(m.DpadDown) || y >= threshold,
		Activate: s.button(m.South),
	}
}

// rising returns the buttons set in next but not in prev.
func rising(prev, next core.Buttons) core.Buttons {
	return core.Buttons{
		Left:     next.Left && !prev.Left,
		Right:    next.Right && !prev.Right,
		Up:       next.Up && !prev.Up,
		Down:     next.Down && !prev.Down,
		Activate: next.Activate && !prev.Activate,
	}
}
