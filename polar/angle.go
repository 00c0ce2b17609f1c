package polar

import "math"

// StraightAngle is half a turn, in degrees.
const StraightAngle = 180.0

// An Angle is stored only as radians. Degrees are derived on read, so the two
// representations can never drift apart.
type Angle struct {
	radians float64
}

func Radians(r float64) Angle {
	return Angle{radians: r}
}

func Degrees(d float64) Angle {
	return Angle{radians: ToRadians(d)}
}

func (a Angle) Radians() float64 {
	return a.radians
}

func (a Angle) Degrees() float64 {
	return ToDegrees(a.radians)
}

// Reduce the angle to [0, 360) degrees. Unlike math.Mod on its own, negative
// angles come out positive.
func (a Angle) Normalize() Angle {
	return Degrees(NormalizeDegrees(a.Degrees()))
}

func NormalizeDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	// A tiny negative value can round up to a full turn after the lift
	if d >= 360 {
		d = 0
	}
	return d
}

func ToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

func ToDegrees(radians float64) float64 {
	return radians * 180 / math.Pi
}
