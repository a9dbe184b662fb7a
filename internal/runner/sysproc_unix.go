//go:build unix

package runner

import "syscall"

// detachedAttr puts the child in its own session so it outlives the
// kiosk's terminal.
func detachedAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		Setsid: true, // Create new session
	}
}
