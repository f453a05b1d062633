// Package source delivers raw keyboard and mouse events as one serial stream.
// On Linux the stream is fed by reading evdev device files directly; the tray
// and signal handlers inject their requests into the same stream, so the
// session sees a single ordered sequence of events.
package source

// EventType enumerates the raw events a session can receive.
type EventType uint8

const (
	// KeyChanged reports a keyboard key press or release.
	KeyChanged EventType = iota
	// MouseButtonChanged reports a mouse button press or release.
	MouseButtonChanged
	// MouseMoved reports relative motion since the previous report.
	MouseMoved
	// CursorToggleRequested asks the session to flip cursor hiding. Injected
	// by the tray; equivalent to pressing the toggle key.
	CursorToggleRequested
	// ExitRequested asks the session to terminate.
	ExitRequested
)

// Event is a single raw input event. Only the fields relevant to its Type
// are populated.
type Event struct {
	Type    EventType
	Key     uint16
	Button  uint16
	Pressed bool
	DX, DY  float64
}

// DeviceInfo describes a discovered input device.
type DeviceInfo struct {
	Path     string
	Name     string
	Keyboard bool
	Pointer  bool
}
