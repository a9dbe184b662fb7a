// Package gamepad reads Linux joystick devices and reduces them to the
// kiosk's five logical buttons.
package gamepad

import (
	"encoding/binary"
	"fmt"
	"io"
)

// EventSize is the size of one js_event record.
const EventSize = 8

// Event types. TypeInit is or'ed into the type of the synthetic events the
// driver sends when a device is opened.
const (
	TypeButton uint8 = 0x01
	TypeAxis   uint8 = 0x02
	TypeInit   uint8 = 0x80
)

// Event is one joystick event.
type Event struct {
	Time   uint32 // milliseconds, driver clock
	Value  int16
	Type   uint8
	Number uint8
}

// IsInit reports whether the event describes initial device state.
func (e Event) IsInit() bool {
	return e.Type&TypeInit != 0
}

// Kind returns the event type without the init flag.
func (e Event) Kind() uint8 {
	return e.Type &^ TypeInit
}

// DecodeEvent decodes a js_event record in host byte order.
func DecodeEvent(b []byte) (Event, error) {
	if len(b) < EventSize {
		return Event{}, fmt.Errorf("gamepad: short event: %d bytes", len(b))
	}
	return Event{
		Time:   binary.NativeEndian.Uint32(b[0:4]),
		Value:  int16(binary.NativeEndian.Uint16(b[4:6])),
		Type:   b[6],
		Number: b[7],
	}, nil
}

// EncodeEvent is the inverse of DecodeEvent.
func EncodeEvent(e Event) []byte {
	b := make([]byte, EventSize)
	binary.NativeEndian.PutUint32(b[0:4], e.Time)
	binary.NativeEndian.PutUint16(b[4:6], uint16(e.Value))
	b[6] = e.Type
	b[7] = e.Number
	return b
}

// ReadEvent reads exactly one event from r.
func ReadEvent(r io.Reader) (Event, error) {
	var buf [EventSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return Event{}, err
	}
	return DecodeEvent(buf[:])
}
