package core

import (
	"errors"
	"fmt"
)

// Construction errors. The controller cannot be used after either.
var (
	ErrNoEntries = errors.New("core: no application entries")
	ErrEmptyGrid = errors.New("core: grid has zero area")
)

// SpawnError reports that the launch command of an entry failed to start.
type SpawnError struct {
	Index int
	Entry AppEntry
	Err   error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("core: launch %q (entry %d): %v", e.Entry.Command, e.Index, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}
