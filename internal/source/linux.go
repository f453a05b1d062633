//go:build linux

package source

import (
	"encoding/binary"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"unsafe"

	"golang.org/x/sys/unix"
)

const inputPath = "/dev/input"

// Event types and codes we care about (linux/input-event-codes.h).
const (
	evSyn uint16 = 0x00
	evKey uint16 = 0x01
	evRel uint16 = 0x02

	synReport uint16 = 0x00

	relX uint16 = 0x00
	relY uint16 = 0x01

	// Keyboard keys occupy codes below this; mouse buttons sit in
	// [btnMouseFirst, btnMouseLast].
	keyMax        uint16 = 0x100
	btnMouseFirst uint16 = 0x110
	btnMouseLast  uint16 = 0x117

	// Capability probes: a keyboard reports KEY_A, a pointer reports REL_X.
	keyA uint16 = 30
)

// ioctl request encoding (the _IOC macro from asm-generic/ioctl.h).
const (
	iocNRShift   = 0
	iocTypeShift = 8
	iocSizeShift = 16
	iocDirShift  = 30

	iocRead = 2
)

func ioc(dir, typ, nr, size uint32) uintptr {
	return uintptr(dir<<iocDirShift | typ<<iocTypeShift | nr<<iocNRShift | size<<iocSizeShift)
}

// eviocgName = EVIOCGNAME(len): read the device name.
func eviocgName(size uint32) uintptr {
	return ioc(iocRead, uint32('E'), 0x06, size)
}

// eviocgBit = EVIOCGBIT(ev, len): read the capability bitmap for one event type.
func eviocgBit(ev uint16, size uint32) uintptr {
	return ioc(iocRead, uint32('E'), uint32(0x20+ev), size)
}

// inputEvent mirrors struct input_event on 64-bit kernels.
type inputEvent struct {
	Sec   int64
	Usec  int64
	Type  uint16
	Code  uint16
	Value int32
}

// Source owns the opened device files and the serial event channel.
type Source struct {
	files  []*os.File
	events chan Event
}

// Devices enumerates the input devices under /dev/input and classifies them.
func Devices() ([]DeviceInfo, error) {
	entries, err := os.ReadDir(inputPath)
	if err != nil {
		return nil, err
	}

	var infos []DeviceInfo
	for _, entry := range entries {
		if !isEventNode(entry.Name()) {
			continue
		}
		path := filepath.Join(inputPath, entry.Name())
		f, err := os.OpenFile(path, os.O_RDONLY, 0)
		if err != nil {
			continue
		}
		info := probe(f, path)
		_ = f.Close()
		if info.Keyboard || info.Pointer {
			infos = append(infos, info)
		}
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].Path < infos[j].Path })
	return infos, nil
}

// Open opens every keyboard and pointer device and starts delivering their
// events on one shared channel.
func Open() (*Source, error) {
	infos, err := Devices()
	if err != nil {
		return nil, err
	}
	if len(infos) == 0 {
		return nil, fmt.Errorf("no keyboard or pointer devices found under %s", inputPath)
	}

	s := &Source{events: make(chan Event)}
	for _, info := range infos {
		f, err := os.OpenFile(info.Path, os.O_RDONLY, 0)
		if err != nil {
			log.Printf("Source: skipping %s: %v", info.Path, err)
			continue
		}
		log.Printf("Source: reading %s (%s)", info.Path, info.Name)
		s.files = append(s.files, f)
		go s.read(f)
	}
	if len(s.files) == 0 {
		return nil, fmt.Errorf("could not open any input device under %s", inputPath)
	}
	return s, nil
}

// Events returns the serial event stream.
func (s *Source) Events() <-chan Event {
	return s.events
}

// Push injects an event into the stream, ordered with the device events.
func (s *Source) Push(ev Event) {
	s.events <- ev
}

// Stop closes the device files, which unblocks and ends the readers.
func (s *Source) Stop() {
	for _, f := range s.files {
		_ = f.Close()
	}
	s.files = nil
}

// read translates one device's event stream and forwards it. Relative motion
// is accumulated until the device's SYN_REPORT so a single MouseMoved carries
// the whole frame, the way the session expects deltas.
func (s *Source) read(f *os.File) {
	var tr translator
	for {
		var raw inputEvent
		if err := binary.Read(f, binary.LittleEndian, &raw); err != nil {
			return
		}
		if ev, ok := tr.translate(raw); ok {
			s.events <- ev
		}
	}
}

// translator is the per-device state for frame accumulation.
type translator struct {
	dx, dy float64
}

func (t *translator) translate(raw inputEvent) (Event, bool) {
	switch raw.Type {
	case evKey:
		if raw.Value == 2 {
			// Kernel autorepeat; the controller has no equivalent.
			return Event{}, false
		}
		pressed := raw.Value != 0
		switch {
		case raw.Code >= btnMouseFirst && raw.Code <= btnMouseLast:
			return Event{Type: MouseButtonChanged, Button: raw.Code, Pressed: pressed}, true
		case raw.Code < keyMax:
			return Event{Type: KeyChanged, Key: raw.Code, Pressed: pressed}, true
		}
	case evRel:
		switch raw.Code {
		case relX:
			t.dx += float64(raw.Value)
		case relY:
			t.dy += float64(raw.Value)
		}
	case evSyn:
		if raw.Code == synReport && (t.dx != 0 || t.dy != 0) {
			ev := Event{Type: MouseMoved, DX: t.dx, DY: t.dy}
			t.dx, t.dy = 0, 0
			return ev, true
		}
	}
	return Event{}, false
}

// probe classifies a device by its capability bitmaps.
func probe(f *os.File, path string) DeviceInfo {
	info := DeviceInfo{Path: path, Name: deviceName(f)}

	var keys [keyMax / 8]byte
	if err := ioctlBytes(f, eviocgBit(evKey, uint32(len(keys))), keys[:]); err == nil {
		info.Keyboard = hasBit(keys[:], keyA)
	}

	var rels [2]byte
	if err := ioctlBytes(f, eviocgBit(evRel, uint32(len(rels))), rels[:]); err == nil {
		info.Pointer = hasBit(rels[:], relX)
	}

	return info
}

func deviceName(f *os.File) string {
	buf := make([]byte, 128)
	if err := ioctlBytes(f, eviocgName(uint32(len(buf))), buf); err != nil {
		return "(unknown)"
	}
	for i, b := range buf {
		if b == 0 {
			return string(buf[:i])
		}
	}
	return string(buf)
}

func ioctlBytes(f *os.File, req uintptr, dest []byte) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, f.Fd(), req, uintptr(unsafe.Pointer(&dest[0])))
	if errno != 0 {
		return errno
	}
	return nil
}

func hasBit(bits []byte, n uint16) bool {
	if int(n/8) >= len(bits) {
		return false
	}
	return bits[n/8]&(1<<(n%8)) != 0
}

func isEventNode(name string) bool {
	if len(name) < 6 || name[:5] != "event" {
		return false
	}
	for _, r := range name[5:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
