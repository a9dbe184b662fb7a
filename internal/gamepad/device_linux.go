//go:build linux

package gamepad

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Supported reports whether this build can read joystick devices.
const Supported = true

const nameLen = 128

// jsiocgname is JSIOCGNAME(nameLen): _IOC(_IOC_READ, 'j', 0x13, len).
const jsiocgname = 2<<30 | nameLen<<16 | 'j'<<8 | 0x13

// openDevice opens a joystick node for reading and queries its name.
func openDevice(path string) (io.ReadCloser, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("open %s: %w", path, err)
	}
	return f, deviceName(f), nil
}

// deviceName returns the driver-reported name, or "" if the ioctl fails.
func deviceName(f *os.File) string {
	var buf [nameLen]byte

	conn, err := f.SyscallConn()
	if err != nil {
		return ""
	}
	var errno unix.Errno
	ctlErr := conn.Control(func(fd uintptr) {
		_, _, errno = unix.Syscall(unix.SYS_IOCTL, fd, jsiocgname, uintptr(unsafe.Pointer(&buf[0])))
	})
	if ctlErr != nil || errno != 0 {
		return ""
	}

	if i := bytes.IndexByte(buf[:], 0); i >= 0 {
		return string(buf[:i])
	}
	return string(buf[:])
}
