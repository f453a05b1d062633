package mapping

import (
	"testing"

	"kmpad/internal/pad"
)

// TestKeyToElementBindings tests the fixed key bindings.
func TestKeyToElementBindings(t *testing.T) {
	cases := []struct {
		key  uint16
		want pad.Element
	}{
		{KeyC, pad.Element{Kind: pad.Button, Code: pad.BtnEast}},
		{KeySpace, pad.Element{Kind: pad.Button, Code: pad.BtnWest}},
		{KeyLeftShift, pad.Element{Kind: pad.Button, Code: pad.BtnSouth}},
		{KeyM, pad.Element{Kind: pad.Button, Code: pad.BtnStart}},
		{KeyN, pad.Element{Kind: pad.Button, Code: pad.BtnSelect}},
		{KeyLeftCtrl, pad.Element{Kind: pad.Button, Code: pad.BtnTL2}},
		{KeyI, pad.Element{Kind: pad.DPad, Code: pad.BtnDpadUp}},
		{KeyL, pad.Element{Kind: pad.DPad, Code: pad.BtnDpadRight}},
	}
	for _, c := range cases {
		got, ok := KeyToElement(c.key)
		if !ok {
			t.Errorf("KeyToElement(%d): no mapping, want %+v", c.key, c.want)
			continue
		}
		if got != c.want {
			t.Errorf("KeyToElement(%d) = %+v, want %+v", c.key, got, c.want)
		}
	}
}

// TestKeyToElementAliases tests that the easy-access duplicates drive the
// same D-pad directions as the primary bindings.
func TestKeyToElementAliases(t *testing.T) {
	pairs := [][2]uint16{
		{KeyI, KeyV},
		{KeyJ, KeyR},
		{KeyK, KeyT},
		{KeyL, KeyF},
	}
	for _, p := range pairs {
		primary, ok1 := KeyToElement(p[0])
		alias, ok2 := KeyToElement(p[1])
		if !ok1 || !ok2 {
			t.Errorf("Expected both %d and %d to be mapped", p[0], p[1])
			continue
		}
		if primary != alias {
			t.Errorf("Keys %d and %d map to %+v and %+v, want identical", p[0], p[1], primary, alias)
		}
	}
}

// TestUnmappedInputs tests that absent mappings report no effect.
func TestUnmappedInputs(t *testing.T) {
	unmapped := []uint16{0, 1, 21 /* Y */, 44 /* Z */, 58 /* CapsLock */, 999}
	for _, key := range unmapped {
		if _, ok := KeyToElement(key); ok {
			t.Errorf("KeyToElement(%d): unexpected mapping", key)
		}
		if _, ok := KeyToAxisNudge(key); ok {
			t.Errorf("KeyToAxisNudge(%d): unexpected mapping", key)
		}
	}

	if _, ok := MouseButtonToElement(0x112 /* middle */); ok {
		t.Error("MouseButtonToElement(middle): unexpected mapping")
	}
}

// TestMouseButtonBindings tests the two mouse bindings.
func TestMouseButtonBindings(t *testing.T) {
	left, ok := MouseButtonToElement(BtnLeft)
	if !ok || left.Code != pad.BtnNorth {
		t.Errorf("MouseButtonToElement(left) = (%+v, %v), want X button", left, ok)
	}
	right, ok := MouseButtonToElement(BtnRight)
	if !ok || right.Code != pad.BtnTR2 {
		t.Errorf("MouseButtonToElement(right) = (%+v, %v), want TR2", right, ok)
	}
}

// TestKeyToAxisNudge tests the WASD deflections of the left stick.
func TestKeyToAxisNudge(t *testing.T) {
	cases := []struct {
		key  uint16
		want pad.AxisNudge
	}{
		{KeyW, pad.AxisNudge{Axis: pad.AbsY, Value: pad.AxisMin}},
		{KeyA, pad.AxisNudge{Axis: pad.AbsX, Value: pad.AxisMin}},
		{KeyS, pad.AxisNudge{Axis: pad.AbsY, Value: pad.AxisMax}},
		{KeyD, pad.AxisNudge{Axis: pad.AbsX, Value: pad.AxisMax}},
	}
	for _, c := range cases {
		got, ok := KeyToAxisNudge(c.key)
		if !ok || got != c.want {
			t.Errorf("KeyToAxisNudge(%d) = (%+v, %v), want %+v", c.key, got, ok, c.want)
		}
	}
}

// TestHotkeysNotBound tests that the session hotkeys stay out of the tables,
// so they never double as controller inputs.
func TestHotkeysNotBound(t *testing.T) {
	for _, key := range []uint16{ExitKey, ToggleKey} {
		if _, ok := KeyToElement(key); ok {
			t.Errorf("Hotkey %d is bound to a controller element", key)
		}
		if _, ok := KeyToAxisNudge(key); ok {
			t.Errorf("Hotkey %d is bound to an axis nudge", key)
		}
	}
}
