// Package shaper turns relative mouse motion into absolute stick coordinates.
//
// A plain linear mapping makes small movements imperceptible and saturates
// too early on large ones, so the curve compresses with a sign-preserving
// square root: fine control near center, full deflection still reachable.
package shaper

import (
	"math"

	"kmpad/internal/pad"
)

// Profile fixes the tuning constants for the motion curve. Sensitivity is not
// runtime-adjustable beyond profile selection.
type Profile struct {
	Name         string
	Sensitivity  float64
	VerticalBias float64
}

// The two tuning profiles. They differ only in how much vertical motion is
// amplified relative to horizontal.
var (
	Nimble = Profile{Name: "nimble", Sensitivity: 250, VerticalBias: 1.5}
	Steady = Profile{Name: "steady", Sensitivity: 250, VerticalBias: 1.2}
)

// ProfileByName looks up a profile by its flag name.
func ProfileByName(name string) (Profile, bool) {
	switch name {
	case Nimble.Name:
		return Nimble, true
	case Steady.Name:
		return Steady, true
	}
	return Profile{}, false
}

// Shape maps a relative motion delta to a pair of stick coordinates within
// [pad.AxisMin, pad.AxisMax].
func Shape(dx, dy float64, p Profile) (int32, int32) {
	span := 10 / p.Sensitivity
	x := mapRange(dx, -span, span, pad.AxisMin, pad.AxisMax)
	y := mapRange(dy, -span, span, pad.AxisMin, pad.AxisMax) * p.VerticalBias

	x = compress(x)
	y = compress(y)

	return clamp(int32(x)), clamp(int32(y))
}

// compress applies the sign-preserving square-root curve.
func compress(v float64) float64 {
	return math.Copysign(math.Sqrt(math.Abs(v)), v)
}

func mapRange(x, inMin, inMax, outMin, outMax float64) float64 {
	return (x-inMin)*(outMax-outMin)/(inMax-inMin) + outMin
}

func clamp(v int32) int32 {
	if v < pad.AxisMin {
		return pad.AxisMin
	}
	if v > pad.AxisMax {
		return pad.AxisMax
	}
	return v
}
