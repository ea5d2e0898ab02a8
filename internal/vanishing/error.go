package vanishing

import (
	"math"

	"vpdetect/pkg/geometry"
)

// SegmentError measures how far segment s is from pointing at vp, in the
// units of the segment coordinates.
//
// The ideal line runs from the segment midpoint toward vp (or along vp's
// direction when vp is ideal); the error is the perpendicular distance of the
// endpoint P1 from that line. The direction toward vp is formed from the
// homogeneous coordinates directly, so the value is continuous as w goes to
// zero. A segment orthogonal to the vp direction scores half its length; a
// segment already aligned with it scores zero.
func SegmentError(s geometry.LineSegment, vp geometry.HomogeneousPoint) float64 {
	if vp.IsNaN() {
		return math.NaN()
	}
	m := s.Midpoint()
	d := vp.DirectionFrom(m)
	n := d.Norm()
	if n == 0 {
		// vp coincides with the midpoint; every line through it fits.
		return 0
	}
	return math.Abs(s.P1.Sub(m).Cross(d)) / n
}

// GroupingError sums SegmentError of every segment against the vanishing
// point its grouping assigns it to. NaN when any of those points is NaN.
func GroupingError(segments [4]geometry.LineSegment, e Estimate) float64 {
	assignment := e.Grouping.Assignment()
	var sum float64
	for i, s := range segments {
		sum += SegmentError(s, e.VPs[assignment[i]])
	}
	return sum
}
