//go:build !linux

package gamepad

import (
	"errors"
	"io"
)

// Supported reports whether this build can read joystick devices.
const Supported = false

func openDevice(path string) (io.ReadCloser, string, error) {
	return nil, "", errors.New("gamepad: joystick devices are only supported on linux")
}
