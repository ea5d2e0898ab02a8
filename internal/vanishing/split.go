package vanishing

import (
	"math"
	"sort"

	"vpdetect/pkg/geometry"
)

// SolveSplit solves the grouping where lines order[0] and order[1] meet at
// the first vanishing point, line order[2] passes through the second and
// line order[3] through the third.
//
// Working in the frame centered on the principal point with the image of the
// absolute conic diag(1, 1, f²), the second and third points lie on the
// polar of the first, (a.x, a.y, f²·a.w), and must be conjugate to each
// other. That is a quadratic in f², so there are up to two solutions. They
// are returned in increasing order of focal length; an empty result means no
// positive real f² exists.
func SolveSplit(lines Lines, principal geometry.Point2D, order [4]int) []Estimate {
	g := Grouping{Kind: GroupingSplit, Order: order}

	vpA := geometry.IntersectLines(lines[order[0]], lines[order[1]])
	if vpA.IsNaN() {
		return nil
	}
	a := vpA.Translate(principal)
	l2 := lines[order[2]].Translate(principal)
	l3 := lines[order[3]].Translate(principal)

	// b(s) = b0 + s·b1 and c(s) = c0 + s·c1 with s = f².
	fixed := geometry.HomogeneousLine{A: a.X, B: a.Y}
	scaled := geometry.HomogeneousLine{C: a.W}
	b0, b1 := l2.Meet(fixed), l2.Meet(scaled)
	c0, c1 := l3.Meet(fixed), l3.Meet(scaled)

	qa := b1.X*c1.X + b1.Y*c1.Y
	qb := b0.X*c1.X + b0.Y*c1.Y + b1.X*c0.X + b1.Y*c0.Y + b0.W*c0.W
	qc := b0.X*c0.X + b0.Y*c0.Y

	var estimates []Estimate
	for _, s := range positiveRoots(qa, qb, qc) {
		b := geometry.HomogeneousPoint{X: b0.X + s*b1.X, Y: b0.Y + s*b1.Y, W: b0.W}
		c := geometry.HomogeneousPoint{X: c0.X + s*c1.X, Y: c0.Y + s*c1.Y, W: c0.W}
		estimates = append(estimates, Estimate{
			Grouping: g,
			VPs: [3]geometry.HomogeneousPoint{
				vpA,
				b.Untranslate(principal).Normalize(),
				c.Untranslate(principal).Normalize(),
			},
			Focal: math.Sqrt(s),
		})
	}
	return estimates
}

// positiveRoots returns the positive real roots of qa·s² + qb·s + qc in
// increasing order.
func positiveRoots(qa, qb, qc float64) []float64 {
	var roots []float64
	switch {
	case qa == 0 && qb == 0:
		return nil
	case qa == 0:
		roots = append(roots, -qc/qb)
	default:
		disc := qb*qb - 4*qa*qc
		if disc < 0 {
			return nil
		}
		if disc == 0 {
			roots = append(roots, -qb/(2*qa))
			break
		}
		// Avoids cancellation between qb and the square root.
		q := -(qb + math.Copysign(math.Sqrt(disc), qb)) / 2
		if q == 0 {
			roots = append(roots, 0)
		} else {
			roots = append(roots, q/qa, qc/q)
		}
	}

	var positive []float64
	for _, r := range roots {
		if r > 0 && !math.IsInf(r, 0) && !math.IsNaN(r) {
			positive = append(positive, r)
		}
	}
	sort.Float64s(positive)
	return positive
}
