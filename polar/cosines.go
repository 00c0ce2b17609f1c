package polar

import "math"

// Law of cosines with two known sides and the angle between them. Returns the
// third side.
func LawOfCosinesSide(a, b Side, theta Angle) Side {
	a2 := float64(a * a)
	b2 := float64(b * b)
	cosine := 2 * float64(a) * float64(b) * math.Cos(theta.Radians())
	return Side(math.Sqrt(a2 + b2 - cosine))
}

// Law of cosines with three known sides. Returns the angle between a and b,
// which is the angle opposite c.
//
// The cosine is clamped into [-1, 1] so that rounding on nearly collinear
// triangles can't push acos out of its domain. NaN goes through untouched.
func LawOfCosinesAngle(a, b, c Side) Angle {
	a2 := float64(a * a)
	b2 := float64(b * b)
	c2 := float64(c * c)
	divisor := 2 * float64(a) * float64(b)

	cosC := (a2 + b2 - c2) / divisor
	cosC = math.Max(-1, math.Min(1, cosC))
	return Radians(math.Acos(cosC))
}
