package gamepad

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-kiosk/internal/core"
)

// DefaultGlob matches the Linux joystick device nodes.
const DefaultGlob = "/dev/input/js*"

// OpenFunc opens a device node and returns its event stream and name.
type OpenFunc func(path string) (io.ReadCloser, string, error)

// Options configures a Hub.
type Options struct {
	Glob    string        // device glob, DefaultGlob if empty
	Mapping Mapping       // button and axis mapping
	Rescan  time.Duration // hotplug scan interval, 0 disables rescans
	Logger  *log.Logger

	// Open overrides how device nodes are opened.
	Open OpenFunc
}

// DeviceInfo describes a connected device.
type DeviceInfo struct {
	Path string
	Name string
}

type device struct {
	info  DeviceInfo
	rc    io.ReadCloser
	state *padState
	level core.Buttons
}

// Hub aggregates every connected pad into one logical button set.
// It is created once by the host and must be closed.
type Hub struct {
	opts   Options
	logger *log.Logger

	mu      sync.Mutex
	devices map[string]*device
	pressed core.Buttons // rising edges since the last Snapshot
	closed  bool

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Open scans for devices and starts their readers. A Hub with no devices is
// valid; new devices are attached on rescans.
func Open(ctx context.Context, opts Options) (*Hub, error) {
	if opts.Glob == "" {
		opts.Glob = DefaultGlob
	}
	if _, err := filepath.Match(opts.Glob, ""); err != nil {
		return nil, fmt.Errorf("gamepad: invalid device glob %q: %w", opts.Glob, err)
	}
	if opts.Open == nil {
		opts.Open = openDevice
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithCancel(ctx)
	h := &Hub{
		opts:    opts,
		logger:  logger,
		devices: make(map[string]*device),
		cancel:  cancel,
	}

	h.scan()

	if opts.Rescan > 0 {
		h.wg.Add(1)
		go h.rescanLoop(ctx)
	}
	return h, nil
}

// Close stops rescans and closes every device.
func (h *Hub) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	devs := make([]*device, 0, len(h.devices))
	for _, d := range h.devices {
		devs = append(devs, d)
	}
	h.mu.Unlock()

	h.cancel()
	var errs []error
	for _, d := range devs {
		if err := d.rc.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	h.wg.Wait()
	return errors.Join(errs...)
}

// Snapshot returns the buttons pressed since the previous call combined
// with the buttons currently held on any pad. It drains the press queue
// every time it is called, so the host calls it once per tick whether or
// not the window is focused.
func (h *Hub) Snapshot() core.Buttons {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := h.pressed
	h.pressed = core.Buttons{}
	for _, d := range h.devices {
		out = out.Or(d.level)
	}
	return out
}

// Devices lists the connected devices sorted by path.
func (h *Hub) Devices() []DeviceInfo {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]DeviceInfo, 0, len(h.devices))
	for _, d := range h.devices {
		out = append(out, d.info)
	}
	slices.SortFunc(out, func(a, b DeviceInfo) int {
		switch {
		case a.Path < b.Path:
			return -1
		case a.Path > b.Path:
			return 1
		}
		return 0
	})
	return out
}

func (h *Hub) rescanLoop(ctx context.Context) {
	defer h.wg.Done()

	ticker := time.NewTicker(h.opts.Rescan)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.scan()
		}
	}
}

// scan attaches devices matching the glob that are not yet attached.
func (h *Hub) scan() {
	paths, err := filepath.Glob(h.opts.Glob)
	if err != nil {
		return
	}

	for _, path := range paths {
		h.mu.Lock()
		_, known := h.devices[path]
		closed := h.closed
		h.mu.Unlock()
		if known || closed {
			continue
		}

		rc, name, err := h.opts.Open(path)
		if err != nil {
			h.logger.Debug("Cannot open gamepad", "path", path, "error", err)
			continue
		}

		d := &device{
			info:  DeviceInfo{Path: path, Name: name},
			rc:    rc,
			state: newPadState(),
		}

		h.mu.Lock()
		if h.closed {
			h.mu.Unlock()
			rc.Close()
			return
		}
		h.devices[path] = d
		h.wg.Add(1)
		h.mu.Unlock()

		h.logger.Info("Gamepad attached", "path", path, "name", name)
		go h.read(d)
	}
}

// read decodes events until the device fails, then detaches it.
func (h *Hub) read(d *device) {
	defer h.wg.Done()

	for {
		ev, err := ReadEvent(d.rc)
		if err != nil {
			h.detach(d, err)
			return
		}
		h.apply(d, ev)
	}
}

func (h *Hub) apply(d *device, ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	d.state.apply(ev)
	next := h.opts.Mapping.levels(d.state)
	if !ev.IsInit() {
		h.pressed = h.pressed.Or(rising(d.level, next))
	}
	d.level = next
}

func (h *Hub) detach(d *device, err error) {
	h.mu.Lock()
	closed := h.closed
	if h.devices[d.info.Path] == d {
		delete(h.devices, d.info.Path)
	}
	h.mu.Unlock()

	if closed {
		return
	}
	d.rc.Close()
	h.logger.Warn("Gamepad detached", "path", d.info.Path, "name", d.info.Name, "error", err)
}
