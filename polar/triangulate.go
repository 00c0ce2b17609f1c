// Package polar computes relative positions between points that are known
// only by their distance and bearing from a shared origin.
//
// The usual picture is a spotter (the origin) measuring a friend and a target,
// and wanting to know where the target is from the friend's point of view.
package polar

import "math"

// Find the vector from the end of `from` to the end of `to`, where both are
// measured from the same origin.
//
// Neither argument is modified. Identical inputs give the zero vector. NaN and
// infinite inputs are not validated, and come back out as NaN.
func Triangulate(from, to Vector) Vector {
	if from.Equal(to) {
		return Vector{}
	}

	originToFrom := Side(from.Distance)
	originToTo := Side(to.Distance)
	fromBearing := from.BearingAngle()
	toBearing := to.BearingAngle()

	// Angle at the origin between the two known sides
	delta := Radians(math.Abs(fromBearing.Radians() - toBearing.Radians()))

	fromToTo := LawOfCosinesSide(originToFrom, originToTo, delta)

	// Angle at `from`. Order matters: the origin-to-`to` side must be the one
	// opposite, or the result is mirrored.
	atFrom := LawOfCosinesAngle(originToFrom, fromToTo, originToTo)

	delta = delta.Normalize()

	// The law of cosines can't tell clockwise from counterclockwise. Whether
	// `to` is clockwise of `from` depends on which bearing is larger, flipped
	// if the gap between them is more than half a turn.
	sign := 1.0
	if (delta.Degrees() > StraightAngle) != (toBearing.Radians() > fromBearing.Radians()) {
		sign = -1
	}

	// Looking back at the origin from `from`, then swinging by the angle there
	bearing := Radians(fromBearing.Radians() + math.Pi + sign*atFrom.Radians())

	return Vector{Distance: float64(fromToTo), Bearing: NormalizeDegrees(bearing.Degrees())}
}

// Re-express v relative to a new origin. The offset locates the previous
// origin as seen from the new one.
func Rebase(offset, v Vector) Vector {
	return Triangulate(offset.Reversed(), v)
}
