package shaper

import (
	"math"
	"testing"

	"kmpad/internal/pad"
)

// TestShapeZeroDelta tests that no motion maps to a centered stick for any profile.
func TestShapeZeroDelta(t *testing.T) {
	for _, p := range []Profile{Nimble, Steady, {Name: "custom", Sensitivity: 10, VerticalBias: 1.0}} {
		x, y := Shape(0, 0, p)
		if x != 0 || y != 0 {
			t.Errorf("Shape(0, 0, %s) = (%d, %d), want (0, 0)", p.Name, x, y)
		}
	}
}

// TestShapeScenario tests the calibrated value for a 5-unit horizontal delta
// at sensitivity 250: mapped to 15938, compressed to sqrt, truncated to 126.
func TestShapeScenario(t *testing.T) {
	x, y := Shape(5, 0, Nimble)
	if x != 126 {
		t.Errorf("Expected shaped X 126, got %d", x)
	}
	if y != 0 {
		t.Errorf("Expected shaped Y 0, got %d", y)
	}
}

// TestShapeWithinRange tests that shaped values never leave the axis range.
func TestShapeWithinRange(t *testing.T) {
	deltas := []float64{-100000, -500, -5, -0.04, -0.001, 0.001, 0.04, 5, 500, 100000}
	for _, dx := range deltas {
		for _, dy := range deltas {
			x, y := Shape(dx, dy, Nimble)
			if x < pad.AxisMin || x > pad.AxisMax {
				t.Errorf("Shape(%v, %v) X = %d outside [%d, %d]", dx, dy, x, pad.AxisMin, pad.AxisMax)
			}
			if y < pad.AxisMin || y > pad.AxisMax {
				t.Errorf("Shape(%v, %v) Y = %d outside [%d, %d]", dx, dy, y, pad.AxisMin, pad.AxisMax)
			}
		}
	}
}

// TestShapeMonotonic tests that a larger delta never produces a smaller
// deflection, up to clamping.
func TestShapeMonotonic(t *testing.T) {
	var prev int32
	for dx := 0.0; dx < 50; dx += 0.5 {
		x, _ := Shape(dx, 0, Steady)
		if x < prev {
			t.Errorf("Shape(%v, 0) X = %d < previous %d; want non-decreasing", dx, x, prev)
		}
		prev = x
	}
	prev = 0
	for dx := 0.0; dx > -50; dx -= 0.5 {
		x, _ := Shape(dx, 0, Steady)
		if x > prev {
			t.Errorf("Shape(%v, 0) X = %d > previous %d; want non-increasing", dx, x, prev)
		}
		prev = x
	}
}

// TestShapeVerticalBias tests that vertical motion is amplified relative to
// horizontal by the profile's bias factor.
func TestShapeVerticalBias(t *testing.T) {
	const delta = 0.02
	x, y := Shape(delta, delta, Nimble)
	if int32(math.Abs(float64(y))) < int32(math.Abs(float64(x))) {
		t.Errorf("Expected |Y| >= |X| under vertical bias, got X=%d Y=%d", x, y)
	}

	_, nimbleY := Shape(0, delta, Nimble)
	_, steadyY := Shape(0, delta, Steady)
	if nimbleY < steadyY {
		t.Errorf("Expected nimble Y >= steady Y for the same delta, got %d < %d", nimbleY, steadyY)
	}
}

// TestProfileByName tests profile lookup by flag name.
func TestProfileByName(t *testing.T) {
	p, ok := ProfileByName("nimble")
	if !ok || p.VerticalBias != 1.5 {
		t.Errorf("ProfileByName(nimble) = (%+v, %v), want bias 1.5", p, ok)
	}
	p, ok = ProfileByName("steady")
	if !ok || p.VerticalBias != 1.2 {
		t.Errorf("ProfileByName(steady) = (%+v, %v), want bias 1.2", p, ok)
	}
	if _, ok := ProfileByName("warp"); ok {
		t.Error("Expected lookup of unknown profile to fail")
	}
}
