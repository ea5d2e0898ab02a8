package geometry

import "math"

// Orthocenter returns the common point of the three altitudes of triangle
// abc. Any vertex may be ideal; the altitude through an ideal vertex is then
// the line at infinity when the opposite side is not perpendicular to it. A
// collinear triangle gives an ideal or NaN result.
func Orthocenter(a, b, c HomogeneousPoint) HomogeneousPoint {
	// Altitude through a is perpendicular to side bc. Its normal is the
	// direction of bc, which is the direction of the line joining b and c.
	altA := PerpendicularThrough(b.Join(c).Direction(), a)
	altB := PerpendicularThrough(c.Join(a).Direction(), b)
	return IntersectLines(altA, altB)
}

// OrthocenterResidual returns the Euclidean distance between the orthocenter
// of abc and p, or NaN when the orthocenter is not a finite point.
func OrthocenterResidual(a, b, c HomogeneousPoint, p Point2D) float64 {
	h, ok := Orthocenter(a, b, c).Euclidean()
	if !ok {
		return math.NaN()
	}
	return h.Distance(p)
}
