package vanishing

import (
	"math"

	"vpdetect/pkg/geometry"
)

// CompleteOrthocentric derives the third vanishing point of an orthogonal
// triple from vpA, vpB and the principal point, which is the orthocenter of
// the vanishing point triangle. It also returns FocalLength(vpA, vpB,
// principal).
//
// The third point lies on the altitude through vpB perpendicular to
// vpA - principal and on the altitude through vpA perpendicular to
// vpB - principal. Both altitudes are built in homogeneous form, so ideal
// inputs and axis-aligned directions need no special case.
func CompleteOrthocentric(vpA, vpB geometry.HomogeneousPoint, principal geometry.Point2D) (geometry.HomogeneousPoint, float64) {
	if vpA.IsNaN() || vpB.IsNaN() {
		return geometry.NaNPoint(), math.NaN()
	}
	altB := geometry.PerpendicularThrough(vpA.DirectionFrom(principal), vpB)
	altA := geometry.PerpendicularThrough(vpB.DirectionFrom(principal), vpA)
	return geometry.IntersectLines(altA, altB), FocalLength(vpA, vpB, principal)
}

// FocalLength returns sqrt(-(vpA - c)·(vpB - c)), the focal length at which
// the two vanishing directions are orthogonal. It is NaN when either point
// is ideal or undefined, or when the dot product is not negative.
func FocalLength(vpA, vpB geometry.HomogeneousPoint, principal geometry.Point2D) float64 {
	a, okA := vpA.Euclidean()
	b, okB := vpB.Euclidean()
	if !okA || !okB {
		return math.NaN()
	}
	f2 := -a.Sub(principal).Dot(b.Sub(principal))
	if !(f2 > 0) || math.IsInf(f2, 0) {
		return math.NaN()
	}
	return math.Sqrt(f2)
}
