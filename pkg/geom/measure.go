package geom

import "math"

// Distance returns the Euclidean distance between p and q.
func Distance(p, q Point) float64 {
	d := p.Sub(q).Float64()
	return math.Sqrt(d[0]*d[0] + d[1]*d[1] + d[2]*d[2])
}

// Angle returns the interior angle in degrees at vertex between the rays
// towards a and b, using the law of cosines. A degenerate side (zero length)
// yields NaN.
func Angle(vertex, a, b Point) float64 {
	la := Distance(vertex, a)
	lb := Distance(vertex, b)
	lc := Distance(a, b)

	cos := (la*la + lb*lb - lc*lc) / (2 * la * lb)
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos) * 180 / math.Pi
}

// IsRightAngle reports whether the angle at vertex rounds to 90 degrees.
func IsRightAngle(vertex, a, b Point) bool {
	return math.Round(Angle(vertex, a, b)) == 90
}
