package config

import "fmt"

// Error reports a settings or apps file that could not be used.
// Every error returned by this package is an *Error.
type Error struct {
	Path string // empty for validation of merged settings
	Op   string // "read", "parse", "validate"
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("config: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("config: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
