// Package mapping holds the fixed tables from physical keyboard and mouse
// input to virtual controller elements. The tables are pure lookups: an
// unmapped input means "no effect", never an error.
package mapping

import "kmpad/internal/pad"

// Session hotkeys. Delete ends the session; Backslash toggles cursor hiding.
const (
	ExitKey   = KeyDelete
	ToggleKey = KeyBackslash
)

// keyElements maps keyboard keys to digital controller elements. V/R/T/F
// duplicate the I/J/K/L D-pad bindings on purpose, as easy-access alternates
// near the left hand.
var keyElements = map[uint16]pad.Element{
	KeyC:         {Kind: pad.Button, Code: pad.BtnEast},   // B
	KeySpace:     {Kind: pad.Button, Code: pad.BtnWest},   // Y
	KeyLeftShift: {Kind: pad.Button, Code: pad.BtnSouth},  // A
	KeyM:         {Kind: pad.Button, Code: pad.BtnStart},
	KeyN:         {Kind: pad.Button, Code: pad.BtnSelect},
	KeyQ:         {Kind: pad.Button, Code: pad.BtnTL},
	KeyE:         {Kind: pad.Button, Code: pad.BtnTR},
	KeyX:         {Kind: pad.Button, Code: pad.BtnThumbL},
	KeyG:         {Kind: pad.Button, Code: pad.BtnThumbR},
	KeyLeftCtrl:  {Kind: pad.Button, Code: pad.BtnTL2},
	KeyI:         {Kind: pad.DPad, Code: pad.BtnDpadUp},
	KeyJ:         {Kind: pad.DPad, Code: pad.BtnDpadLeft},
	KeyK:         {Kind: pad.DPad, Code: pad.BtnDpadDown},
	KeyL:         {Kind: pad.DPad, Code: pad.BtnDpadRight},
	KeyV:         {Kind: pad.DPad, Code: pad.BtnDpadUp},
	KeyR:         {Kind: pad.DPad, Code: pad.BtnDpadLeft},
	KeyT:         {Kind: pad.DPad, Code: pad.BtnDpadDown},
	KeyF:         {Kind: pad.DPad, Code: pad.BtnDpadRight},
}

// buttonElements maps physical mouse buttons to controller elements.
var buttonElements = map[uint16]pad.Element{
	BtnLeft:  {Kind: pad.Button, Code: pad.BtnNorth}, // X
	BtnRight: {Kind: pad.Button, Code: pad.BtnTR2},
}

// axisNudges maps WASD to full deflections of the left stick. Releasing a
// nudge key always writes 0 to its axis, even while the opposing key is still
// held. That matches the original bindings; callers should not "fix" it.
var axisNudges = map[uint16]pad.AxisNudge{
	KeyW: {Axis: pad.AbsY, Value: pad.AxisMin},
	KeyA: {Axis: pad.AbsX, Value: pad.AxisMin},
	KeyS: {Axis: pad.AbsY, Value: pad.AxisMax},
	KeyD: {Axis: pad.AbsX, Value: pad.AxisMax},
}

// KeyToElement returns the digital element bound to a keyboard key.
func KeyToElement(key uint16) (pad.Element, bool) {
	e, ok := keyElements[key]
	return e, ok
}

// MouseButtonToElement returns the digital element bound to a mouse button.
func MouseButtonToElement(button uint16) (pad.Element, bool) {
	e, ok := buttonElements[button]
	return e, ok
}

// KeyToAxisNudge returns the axis deflection bound to a keyboard key.
func KeyToAxisNudge(key uint16) (pad.AxisNudge, bool) {
	n, ok := axisNudges[key]
	return n, ok
}
