// Package synth projects the three axes of a Manhattan world through a
// pinhole camera, giving vanishing points and segments with known ground
// truth for the estimators.
package synth

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"vpdetect/pkg/geometry"
)

// Camera is a pinhole camera with square pixels and zero skew looking at an
// axis-aligned scene.
type Camera struct {
	Focal     float64
	Principal geometry.Point2D
	R         *mat.Dense
}

// NewCamera builds a camera whose rotation is Rz(roll)·Ry(yaw)·Rx(pitch),
// angles in radians.
func NewCamera(focal float64, principal geometry.Point2D, yaw, pitch, roll float64) (*Camera, error) {
	if !(focal > 0) {
		return nil, fmt.Errorf("focal length must be positive, got %g", focal)
	}

	cy, sy := math.Cos(yaw), math.Sin(yaw)
	cp, sp := math.Cos(pitch), math.Sin(pitch)
	cr, sr := math.Cos(roll), math.Sin(roll)

	rz := mat.NewDense(3, 3, []float64{
		cr, -sr, 0,
		sr, cr, 0,
		0, 0, 1,
	})
	ry := mat.NewDense(3, 3, []float64{
		cy, 0, sy,
		0, 1, 0,
		-sy, 0, cy,
	})
	rx := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, cp, -sp,
		0, sp, cp,
	})

	var ryx, r mat.Dense
	ryx.Mul(ry, rx)
	r.Mul(rz, &ryx)

	return &Camera{Focal: focal, Principal: principal, R: &r}, nil
}

// VanishingPoint returns the image of the point at infinity along scene
// axis i (0, 1 or 2): K·R·e_i.
func (c *Camera) VanishingPoint(i int) geometry.HomogeneousPoint {
	dx, dy, dz := c.R.At(0, i), c.R.At(1, i), c.R.At(2, i)
	return geometry.NewHomogeneousPoint(
		c.Focal*dx+c.Principal.X*dz,
		c.Focal*dy+c.Principal.Y*dz,
		dz,
	).Normalize()
}

// VanishingPoints returns the vanishing points of all three axes.
func (c *Camera) VanishingPoints() [3]geometry.HomogeneousPoint {
	return [3]geometry.HomogeneousPoint{c.VanishingPoint(0), c.VanishingPoint(1), c.VanishingPoint(2)}
}

// Segment returns a segment of the given length starting at from and
// running toward the vanishing point of axis i.
func (c *Camera) Segment(i int, from geometry.Point2D, length float64) geometry.LineSegment {
	d := c.VanishingPoint(i).DirectionFrom(from)
	n := d.Norm()
	if n == 0 {
		return geometry.LineSegment{P0: from, P1: from}
	}
	return geometry.LineSegment{P0: from, P1: from.Add(d.Scale(length / n))}
}
