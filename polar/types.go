package polar

// A Vector is the position of a point relative to some origin, given as a
// distance and a compass bearing in degrees (clockwise from north).
//
// Default marks a vector that was never explicitly set. Its distance and
// bearing are placeholders, not data.
type Vector struct {
	Distance float64
	Bearing  float64
	Default  bool
}

// A Side is the length of one side of a triangle.
type Side float64

// The default sentinel for a point that has been introduced but not yet
// measured.
func NewVector() Vector {
	return Vector{Distance: 1, Bearing: 0, Default: true}
}

func (v Vector) WithDistance(d float64) Vector {
	v.Distance = d
	v.Default = false
	return v
}

func (v Vector) WithBearing(b float64) Vector {
	v.Bearing = b
	v.Default = false
	return v
}

// Equality is exact, with no tolerance. It is only used to catch the case of
// two identical points.
func (v Vector) Equal(other Vector) bool {
	return v.Distance == other.Distance && v.Bearing == other.Bearing
}

// The same distance, pointing the other way.
func (v Vector) Reversed() Vector {
	v.Bearing = NormalizeDegrees(v.Bearing + StraightAngle)
	return v
}

func (v Vector) BearingAngle() Angle {
	return Degrees(v.Bearing)
}
