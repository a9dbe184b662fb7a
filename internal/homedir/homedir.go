// Package homedir expands a leading tilde in user-supplied paths and
// commands.
package homedir

import (
	"fmt"
	"os"
	"strings"
)

// Expand replaces a leading "~" or "~/" with the current user's home
// directory. Any other input, including "~user/...", is returned unchanged.
func Expand(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("homedir: cannot expand %q: %w", path, err)
	}

	if path == "~" {
		return home, nil
	}
	// Only the prefix is replaced; the rest may be a command line.
	return strings.TrimSuffix(home, "/") + path[1:], nil
}

// MustExpand is like Expand but returns the input unchanged on failure.
// Used for display paths where a best-effort value is good enough.
func MustExpand(path string) string {
	expanded, err := Expand(path)
	if err != nil {
		return path
	}
	return expanded
}
