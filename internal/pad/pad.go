// Package pad owns the emulated gamepad device. It creates a uinput device
// that identifies itself as a well-known controller and exposes pressed/released
// writes for digital elements and absolute writes for the stick axes. Every
// write is followed by a SYN_REPORT so consumers always observe a complete frame.
package pad

// Kind distinguishes the classes of virtual controller elements.
type Kind uint8

const (
	// Button is a regular gamepad button (A/B/X/Y, bumpers, thumbs, ...).
	Button Kind = iota
	// DPad is a direction-pad direction. On the wire it behaves like a
	// button; the distinction only matters for the mapping tables.
	DPad
)

// Element identifies a digital element on the virtual controller.
type Element struct {
	Kind Kind
	Code uint16
}

// AxisNudge is an absolute-axis adjustment driven by a key press: pressing
// drives the axis to Value, releasing returns it to 0.
type AxisNudge struct {
	Axis  uint16
	Value int32
}

// Gamepad button codes (linux/input-event-codes.h).
const (
	BtnSouth  uint16 = 0x130 // A
	BtnEast   uint16 = 0x131 // B
	BtnNorth  uint16 = 0x133 // X
	BtnWest   uint16 = 0x134 // Y
	BtnTL     uint16 = 0x136
	BtnTR     uint16 = 0x137
	BtnTL2    uint16 = 0x138
	BtnTR2    uint16 = 0x139
	BtnSelect uint16 = 0x13a
	BtnStart  uint16 = 0x13b
	BtnThumbL uint16 = 0x13d
	BtnThumbR uint16 = 0x13e

	BtnDpadUp    uint16 = 0x220
	BtnDpadDown  uint16 = 0x221
	BtnDpadLeft  uint16 = 0x222
	BtnDpadRight uint16 = 0x223
)

// Absolute axis codes for the two sticks.
const (
	AbsX  uint16 = 0x00
	AbsY  uint16 = 0x01
	AbsRX uint16 = 0x03
	AbsRY uint16 = 0x04
)

// Axis value range declared on the device. The shaper clamps to this range;
// the device itself applies no deadzone or noise filtering (flat=0, fuzz=0).
const (
	AxisMin = -127
	AxisMax = 128
)

// Buttons lists every digital element the device declares.
var Buttons = []uint16{
	BtnSouth, BtnEast, BtnNorth, BtnWest,
	BtnTL, BtnTR, BtnTL2, BtnTR2,
	BtnSelect, BtnStart, BtnThumbL, BtnThumbR,
	BtnDpadUp, BtnDpadDown, BtnDpadLeft, BtnDpadRight,
}

// Axes lists the four absolute axes the device declares.
var Axes = []uint16{AbsX, AbsY, AbsRX, AbsRY}
