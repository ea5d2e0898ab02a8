package geometry

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Eps is the near-zero threshold shared by every homogeneous test: a point
// whose w component is at or below Eps times its norm is ideal, and a line
// pair whose second singular value is at or below Eps times the first has no
// unique intersection.
const Eps = 1e-8

// HomogeneousLine is the line a·x + b·y + c = 0. Any non-zero multiple
// represents the same line; the zero vector is degenerate.
type HomogeneousLine struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
}

// NewHomogeneousLine creates a line from its coefficients.
func NewHomogeneousLine(a, b, c float64) HomogeneousLine {
	return HomogeneousLine{A: a, B: b, C: c}
}

// LineFromTwoPoints joins p0 and p1. Coincident points give the zero line.
func LineFromTwoPoints(p0, p1 Point2D) HomogeneousLine {
	return p0.Homogeneous().Join(p1.Homogeneous())
}

// Direction returns (b, -a), the direction the line runs in.
func (l HomogeneousLine) Direction() Point2D {
	return Point2D{X: l.B, Y: -l.A}
}

// IsDegenerate reports whether the line has no well-defined normal. This
// covers the zero line and the line at infinity (0, 0, c).
func (l HomogeneousLine) IsDegenerate() bool {
	n := math.Sqrt(l.A*l.A + l.B*l.B + l.C*l.C)
	if n == 0 || math.IsNaN(n) {
		return true
	}
	return math.Hypot(l.A, l.B) <= Eps*n
}

// Eval returns a·x + b·y + c.
func (l HomogeneousLine) Eval(p Point2D) float64 {
	return l.A*p.X + l.B*p.Y + l.C
}

// EvalHomogeneous returns a·x + b·y + c·w.
func (l HomogeneousLine) EvalHomogeneous(p HomogeneousPoint) float64 {
	return l.A*p.X + l.B*p.Y + l.C*p.W
}

// Translate returns the line expressed in a frame whose origin sits at
// origin, i.e. the line satisfied by q where q + origin lies on l.
func (l HomogeneousLine) Translate(origin Point2D) HomogeneousLine {
	return HomogeneousLine{A: l.A, B: l.B, C: l.C + l.A*origin.X + l.B*origin.Y}
}

// Normalize scales the line so that a² + b² = 1.
func (l HomogeneousLine) Normalize() HomogeneousLine {
	n := math.Hypot(l.A, l.B)
	if n == 0 {
		return l
	}
	return HomogeneousLine{A: l.A / n, B: l.B / n, C: l.C / n}
}

// DistancePointToLine returns the signed perpendicular distance
// (a·x + b·y + c) / sqrt(a² + b²). A degenerate line gives NaN.
func DistancePointToLine(l HomogeneousLine, p Point2D) float64 {
	n := math.Hypot(l.A, l.B)
	if n == 0 {
		return math.NaN()
	}
	return l.Eval(p) / n
}

// HomogeneousPoint is the point (x/w, y/w), or the point at infinity in
// direction (x, y) when w is numerically zero.
type HomogeneousPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
}

// NewHomogeneousPoint creates a point from its homogeneous coordinates.
func NewHomogeneousPoint(x, y, w float64) HomogeneousPoint {
	return HomogeneousPoint{X: x, Y: y, W: w}
}

// IdealPoint returns the point at infinity in direction d.
func IdealPoint(d Point2D) HomogeneousPoint {
	return HomogeneousPoint{X: d.X, Y: d.Y}
}

// NaNPoint returns the sentinel used for undefined constructions.
func NaNPoint() HomogeneousPoint {
	nan := math.NaN()
	return HomogeneousPoint{X: nan, Y: nan, W: nan}
}

func (p HomogeneousPoint) norm() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.W*p.W)
}

// IsNaN reports whether p is the undefined sentinel, or the zero vector which
// represents no point at all.
func (p HomogeneousPoint) IsNaN() bool {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsNaN(p.W) {
		return true
	}
	return p.X == 0 && p.Y == 0 && p.W == 0
}

// IsIdeal reports whether p lies at infinity. The test is scale invariant.
func (p HomogeneousPoint) IsIdeal() bool {
	if p.IsNaN() {
		return false
	}
	return math.Abs(p.W) <= Eps*p.norm()
}

// Euclidean returns (x/w, y/w). ok is false for ideal or undefined points, in
// which case the returned coordinates are NaN.
func (p HomogeneousPoint) Euclidean() (Point2D, bool) {
	if p.IsNaN() || p.IsIdeal() {
		return Point2D{X: math.NaN(), Y: math.NaN()}, false
	}
	return Point2D{X: p.X / p.W, Y: p.Y / p.W}, true
}

// Normalize scales p to unit length with a non-negative w, or a
// non-negative leading non-zero component when w is zero.
func (p HomogeneousPoint) Normalize() HomogeneousPoint {
	if p.IsNaN() {
		return NaNPoint()
	}
	n := p.norm()
	if p.W < 0 || (p.W == 0 && (p.X < 0 || (p.X == 0 && p.Y < 0))) {
		n = -n
	}
	return HomogeneousPoint{X: p.X / n, Y: p.Y / n, W: p.W / n}
}

// DirectionFrom returns (x - w·o.x, y - w·o.y): the vector from o toward p
// scaled by w. It varies continuously as w goes to zero, where it becomes the
// ideal direction (x, y).
func (p HomogeneousPoint) DirectionFrom(o Point2D) Point2D {
	return Point2D{X: p.X - p.W*o.X, Y: p.Y - p.W*o.Y}
}

// Translate returns p expressed in a frame whose origin sits at origin.
func (p HomogeneousPoint) Translate(origin Point2D) HomogeneousPoint {
	return HomogeneousPoint{X: p.X - p.W*origin.X, Y: p.Y - p.W*origin.Y, W: p.W}
}

// Untranslate is the inverse of Translate.
func (p HomogeneousPoint) Untranslate(origin Point2D) HomogeneousPoint {
	return HomogeneousPoint{X: p.X + p.W*origin.X, Y: p.Y + p.W*origin.Y, W: p.W}
}

// Join returns the line through p and q.
func (p HomogeneousPoint) Join(q HomogeneousPoint) HomogeneousLine {
	return HomogeneousLine{
		A: p.Y*q.W - p.W*q.Y,
		B: p.W*q.X - p.X*q.W,
		C: p.X*q.Y - p.Y*q.X,
	}
}

// Meet returns the cross product of two lines. Unlike IntersectLines it does
// no conditioning and no degeneracy check.
func (l HomogeneousLine) Meet(m HomogeneousLine) HomogeneousPoint {
	return HomogeneousPoint{
		X: l.B*m.C - l.C*m.B,
		Y: l.C*m.A - l.A*m.C,
		W: l.A*m.B - l.B*m.A,
	}
}

// PerpendicularThrough returns the line through p whose normal is n, i.e.
// the line through p perpendicular to direction n. p may be ideal.
//
// When every coefficient is within Eps of zero relative to |n|·‖p‖ the
// line is undetermined and the zero line is returned, which IntersectLines
// maps to NaNPoint.
func PerpendicularThrough(n Point2D, p HomogeneousPoint) HomogeneousLine {
	l := HomogeneousLine{
		A: n.X * p.W,
		B: n.Y * p.W,
		C: -(n.X*p.X + n.Y*p.Y),
	}
	tol := Eps * n.Norm() * p.norm()
	if math.Abs(l.A) <= tol && math.Abs(l.B) <= tol && math.Abs(l.C) <= tol {
		return HomogeneousLine{}
	}
	return l
}

// IntersectLines returns the common point of l and m as the unit null vector
// of the 2×3 system formed by their coefficients. Near-parallel lines give an
// ideal point. Coincident or degenerate lines give NaNPoint.
func IntersectLines(l, m HomogeneousLine) HomogeneousPoint {
	// Rows are scaled to unit length so the rank test does not depend on
	// the arbitrary scale of either line.
	ln := math.Sqrt(l.A*l.A + l.B*l.B + l.C*l.C)
	mn := math.Sqrt(m.A*m.A + m.B*m.B + m.C*m.C)
	if ln == 0 || mn == 0 || math.IsNaN(ln) || math.IsNaN(mn) ||
		math.IsInf(ln, 0) || math.IsInf(mn, 0) {
		return NaNPoint()
	}
	a := mat.NewDense(2, 3, []float64{
		l.A / ln, l.B / ln, l.C / ln,
		m.A / mn, m.B / mn, m.C / mn,
	})

	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDFull) {
		return NaNPoint()
	}
	values := svd.Values(nil)
	if values[0] == 0 || values[1] <= Eps*values[0] {
		return NaNPoint()
	}

	var v mat.Dense
	svd.VTo(&v)
	p := HomogeneousPoint{X: v.At(0, 2), Y: v.At(1, 2), W: v.At(2, 2)}
	if math.Abs(p.W) <= Eps {
		p.W = 0
	}
	return p.Normalize()
}
