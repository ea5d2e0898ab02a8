// Package geometry provides the planar primitives used by the vanishing point
// estimators: Euclidean points and segments plus their homogeneous forms.
package geometry

import (
	"math"
)

// Point2D represents a 2D point with floating-point coordinates.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewPoint2D creates a new Point2D.
func NewPoint2D(x, y float64) Point2D {
	return Point2D{X: x, Y: y}
}

// Distance returns the Euclidean distance to another point.
func (p Point2D) Distance(other Point2D) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Add returns the sum of two points.
func (p Point2D) Add(other Point2D) Point2D {
	return Point2D{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the difference of two points.
func (p Point2D) Sub(other Point2D) Point2D {
	return Point2D{X: p.X - other.X, Y: p.Y - other.Y}
}

// Scale returns the point scaled by a factor.
func (p Point2D) Scale(factor float64) Point2D {
	return Point2D{X: p.X * factor, Y: p.Y * factor}
}

// Dot returns the dot product of p and other taken as vectors.
func (p Point2D) Dot(other Point2D) float64 {
	return p.X*other.X + p.Y*other.Y
}

// Cross returns the z component of p × other.
func (p Point2D) Cross(other Point2D) float64 {
	return p.X*other.Y - p.Y*other.X
}

// Norm returns the length of p taken as a vector.
func (p Point2D) Norm() float64 {
	return math.Hypot(p.X, p.Y)
}

// IsFinite reports whether both coordinates are neither NaN nor infinite.
func (p Point2D) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) &&
		!math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Homogeneous lifts p to (x, y, 1).
func (p Point2D) Homogeneous() HomogeneousPoint {
	return HomogeneousPoint{X: p.X, Y: p.Y, W: 1}
}

// LineSegment is an observed image segment between two endpoints.
type LineSegment struct {
	P0 Point2D `json:"p0"`
	P1 Point2D `json:"p1"`
}

// NewLineSegment creates a segment from endpoint coordinates, in the
// x0, y0, x1, y1 order detectors usually report them.
func NewLineSegment(x0, y0, x1, y1 float64) LineSegment {
	return LineSegment{P0: Point2D{X: x0, Y: y0}, P1: Point2D{X: x1, Y: y1}}
}

// Midpoint returns the arithmetic mean of the two endpoints.
func (s LineSegment) Midpoint() Point2D {
	return Point2D{X: (s.P0.X + s.P1.X) / 2, Y: (s.P0.Y + s.P1.Y) / 2}
}

// SegmentMidpoint returns the midpoint of s.
func SegmentMidpoint(s LineSegment) Point2D {
	return s.Midpoint()
}

// Length returns the Euclidean length of the segment.
func (s LineSegment) Length() float64 {
	return s.P0.Distance(s.P1)
}

// Line returns the supporting infinite line of the segment.
func (s LineSegment) Line() HomogeneousLine {
	return LineFromTwoPoints(s.P0, s.P1)
}

// IsDegenerate reports whether both endpoints coincide.
func (s LineSegment) IsDegenerate() bool {
	return s.P0 == s.P1
}

// Size represents a 2D size.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewSize creates a new Size.
func NewSize(width, height float64) Size {
	return Size{Width: width, Height: height}
}

// Center returns the centre of a width × height image whose origin is the
// top-left corner.
func (s Size) Center() Point2D {
	return Point2D{X: s.Width / 2, Y: s.Height / 2}
}
