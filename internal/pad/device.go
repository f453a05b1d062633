package pad

import (
	"encoding/binary"
	"io"
	"log"
	"os"
)

// Event types and codes used on the wire (linux/input-event-codes.h).
const (
	evSyn uint16 = 0x00
	evKey uint16 = 0x01
	evAbs uint16 = 0x03

	synReport uint16 = 0x00
)

// inputEvent mirrors struct input_event on 64-bit kernels.
type inputEvent struct {
	Sec   int64
	Usec  int64
	Type  uint16
	Code  uint16
	Value int32
}

// Device is the virtual controller sink. Writes go to w (the uinput file in
// normal operation); f holds the device handle for destruction on Close.
type Device struct {
	f *os.File
	w io.Writer
}

// SetButton sets a digital element to pressed or released and synchronizes.
// Write failures are logged and dropped: a single missed input is an
// acceptable degradation for an interactive tool.
func (d *Device) SetButton(code uint16, pressed bool) {
	var value int32
	if pressed {
		value = 1
	}
	d.emit(evKey, code, value)
	d.sync()
}

// SetAxis sets an absolute axis to the given value and synchronizes.
func (d *Device) SetAxis(code uint16, value int32) {
	d.emit(evAbs, code, value)
	d.sync()
}

func (d *Device) emit(typ, code uint16, value int32) {
	ev := inputEvent{Type: typ, Code: code, Value: value}
	if err := binary.Write(d.w, binary.LittleEndian, &ev); err != nil {
		log.Printf("Pad: failed to write event (type=%d code=0x%x value=%d): %v", typ, code, value, err)
	}
}

func (d *Device) sync() {
	ev := inputEvent{Type: evSyn, Code: synReport}
	if err := binary.Write(d.w, binary.LittleEndian, &ev); err != nil {
		log.Printf("Pad: failed to synchronize: %v", err)
	}
}
