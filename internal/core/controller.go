package core

import (
	"time"

	"github.com/vovakirdan/tui-kiosk/internal/homedir"
)

// AnimationDuration is how long the launch highlight fades on a tile.
const AnimationDuration = 250 * time.Millisecond

// ProcessLauncher starts a launch command as a detached process.
// Implementations must not wait for the child.
type ProcessLauncher interface {
	SpawnDetached(command string) error
}

// Animation is the launch highlight state. Inactive means Idle.
type Animation struct {
	Target    int
	StartedAt time.Time
	Active    bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithExpander replaces the function used to expand a leading "~" in
// launch commands.
func WithExpander(expand func(string) (string, error)) Option {
	return func(c *Controller) {
		c.expand = expand
	}
}

// Controller owns the selection and launch animation. It applies exactly one
// Intent per tick and fires the launch side effect once per activation.
// It is driven from a single goroutine.
type Controller struct {
	entries  []AppEntry
	grid     Grid
	launcher ProcessLauncher
	expand   func(string) (string, error)

	arbiter  Arbiter
	selected int
	anim     Animation

	closeRequested bool
}

// NewController creates a controller in the Idle state with the first entry
// selected.
func NewController(entries []AppEntry, rows, cols int, launcher ProcessLauncher, opts ...Option) (*Controller, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}

	grid, err := NewGrid(rows, cols, len(entries))
	if err != nil {
		return nil, err
	}

	c := &Controller{
		entries:  append([]AppEntry(nil), entries...),
		grid:     grid,
		launcher: launcher,
		expand:   homedir.Expand,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Tick advances the state machine by one frame: derive the intent, apply
// it, then expire a finished animation. The returned error is non-nil only
// when an activation failed to spawn; the state is then left as if the
// activation had not happened.
func (c *Controller) Tick(keys KeySnapshot, pad Buttons, focused bool, now time.Time) error {
	c.closeRequested = focused && keys.Close

	var err error
	switch intent := c.arbiter.Arbitrate(keys, pad, focused); intent {
	case IntentNone:
	case IntentActivate:
		err = c.activate(now)
	default:
		if next, ok := c.grid.Move(c.selected, intent); ok {
			c.selected = next
		}
	}

	if c.anim.Active && now.Sub(c.anim.StartedAt) >= AnimationDuration {
		c.anim = Animation{}
	}
	return err
}

// activate launches the selected entry and restarts the animation clock.
// Repeated activations relaunch every time.
func (c *Controller) activate(now time.Time) error {
	idx := c.selected
	entry := c.entries[idx]

	command, err := c.expand(entry.Command)
	if err != nil {
		return &SpawnError{Index: idx, Entry: entry, Err: err}
	}
	if err := c.launcher.SpawnDetached(command); err != nil {
		return &SpawnError{Index: idx, Entry: entry, Err: err}
	}

	c.anim = Animation{Target: idx, StartedAt: now, Active: true}
	return nil
}

// Selected returns the selected index, always below Grid().Count.
func (c *Controller) Selected() int {
	return c.selected
}

// Entries returns the configured entries. Callers must not modify them.
func (c *Controller) Entries() []AppEntry {
	return c.entries
}

// Grid returns the grid geometry.
func (c *Controller) Grid() Grid {
	return c.grid
}

// Animation returns the raw animation state.
func (c *Controller) Animation() Animation {
	return c.anim
}

// Animating reports whether a launch highlight is in progress. Hosts use it
// to decide whether every frame must be repainted.
func (c *Controller) Animating() bool {
	return c.anim.Active
}

// AnimationProgress returns the animated tile and its highlight alpha,
// fading linearly from 1 to 0 over AnimationDuration. ok is false when Idle
// or when the animation has run out but not yet been expired by Tick.
func (c *Controller) AnimationProgress(now time.Time) (target int, alpha float64, ok bool) {
	if !c.anim.Active {
		return 0, 0, false
	}
	elapsed := now.Sub(c.anim.StartedAt)
	if elapsed >= AnimationDuration {
		return 0, 0, false
	}
	alpha = ClampF(1.0-float64(elapsed)/float64(AnimationDuration), 0, 1)
	return c.anim.Target, alpha, true
}

// CloseRequested is true only for the tick in which the close key was
// pressed while focused.
func (c *Controller) CloseRequested() bool {
	return c.closeRequested
}
