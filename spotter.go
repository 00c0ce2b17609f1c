// Relative positioning from polar measurements.
//
// A spotter records the distance and bearing to two points, typically a friend
// and a target. This package tells you where the target is from the friend's
// point of view, or re-expresses recorded points after the spotter moves.
package spotter

import "github.com/osuushi/spotter/polar"

type Vector = polar.Vector
type Angle = polar.Angle

// Find the vector from `from` to `to`, where both are measured from the same
// origin. See polar.Triangulate for the details.
func Triangulate(from, to Vector) Vector {
	return polar.Triangulate(from, to)
}

// Re-express v relative to a new origin, where offset locates the old origin
// as seen from the new one.
func Rebase(offset, v Vector) Vector {
	return polar.Rebase(offset, v)
}
