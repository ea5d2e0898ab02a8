package vanishing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vpdetect/internal/synth"
	"vpdetect/pkg/geometry"
)

func TestCompleteOrthocentricMatchesSlopes(t *testing.T) {
	principal := geometry.Point2D{X: 250, Y: 250}
	table := []struct {
		a, b geometry.Point2D
	}{
		{geometry.Point2D{X: 275, Y: 50}, geometry.Point2D{X: 450, Y: 300}},
		{geometry.Point2D{X: -900, Y: 310}, geometry.Point2D{X: 700, Y: 1400}},
		{geometry.Point2D{X: 1250, Y: -3000}, geometry.Point2D{X: -800, Y: 120}},
	}

	for i, tc := range table {
		third, focal := CompleteOrthocentric(tc.a.Homogeneous(), tc.b.Homogeneous(), principal)
		got, ok := third.Euclidean()
		require.True(t, ok, "%d) third vanishing point is ideal", i+1)

		want := slopeThirdVP(tc.a, tc.b, principal)
		assert.InEpsilon(t, want.X, got.X, 1e-8, "%d) x", i+1)
		assert.InEpsilon(t, want.Y, got.Y, 1e-8, "%d) y", i+1)

		h := geometry.Orthocenter(tc.a.Homogeneous(), tc.b.Homogeneous(), third)
		assertSamePoint(t, principal.Homogeneous(), h, 1e-8, "%d) orthocenter", i+1)

		f2 := -tc.a.Sub(principal).Dot(tc.b.Sub(principal))
		if f2 > 0 {
			assert.InEpsilon(t, math.Sqrt(f2), focal, 1e-12, "%d) focal", i+1)
		} else {
			assert.True(t, math.IsNaN(focal), "%d) focal", i+1)
		}
	}
}

func TestCompleteOrthocentricAxisAligned(t *testing.T) {
	principal := geometry.Point2D{X: 320, Y: 240}

	// Both points on the horizontal through the principal point: the
	// altitudes are vertical and meet at infinity.
	a := geometry.NewHomogeneousPoint(1000, 240, 1)
	b := geometry.NewHomogeneousPoint(-400, 240, 1)
	third, focal := CompleteOrthocentric(a, b, principal)
	require.True(t, third.IsIdeal())
	assert.InDelta(t, 0, third.X, 1e-12)
	assert.InDelta(t, 1, math.Abs(third.Y), 1e-12)
	assert.InEpsilon(t, math.Sqrt(680*720), focal, 1e-12)

	// One horizontal, one vertical: the construction stays finite but the
	// directions are already orthogonal, so no focal length fits.
	b = geometry.NewHomogeneousPoint(320, -500, 1)
	third, focal = CompleteOrthocentric(a, b, principal)
	p, ok := third.Euclidean()
	require.True(t, ok)
	assert.InDelta(t, principal.X, p.X, 1e-9)
	assert.InDelta(t, principal.Y, p.Y, 1e-9)
	assert.True(t, math.IsNaN(focal))
}

func TestCompleteOrthocentricIdealInput(t *testing.T) {
	principal := geometry.Point2D{X: 320, Y: 240}
	a := geometry.IdealPoint(geometry.Point2D{X: 1, Y: 0})

	// The altitude through the ideal point is the line at infinity and the
	// altitude through b is vertical, so the third point is the vertical
	// direction.
	b := geometry.NewHomogeneousPoint(420, 1040, 1)
	third, focal := CompleteOrthocentric(a, b, principal)
	require.True(t, third.IsIdeal())
	assert.InDelta(t, 0, third.X, 1e-12)
	assert.True(t, math.IsNaN(focal))

	// With b exactly perpendicular to a as seen from the principal point
	// the third point can sit anywhere on one line; it is undefined.
	b = geometry.NewHomogeneousPoint(320, 1040, 1)
	third, focal = CompleteOrthocentric(a, b, principal)
	assert.True(t, third.IsNaN())
	assert.True(t, math.IsNaN(focal))
}

func TestCompleteOrthocentricUndefinedInput(t *testing.T) {
	third, focal := CompleteOrthocentric(geometry.NaNPoint(), geometry.NewHomogeneousPoint(1, 2, 1), geometry.Point2D{})
	assert.True(t, third.IsNaN())
	assert.True(t, math.IsNaN(focal))
}

func TestFocalLength(t *testing.T) {
	c := geometry.Point2D{X: 10, Y: 10}
	table := []struct {
		a, b  geometry.HomogeneousPoint
		focal float64
	}{
		{geometry.NewHomogeneousPoint(13, 14, 1), geometry.NewHomogeneousPoint(7, 6, 1), 5},
		{geometry.NewHomogeneousPoint(26, 28, 2), geometry.NewHomogeneousPoint(-14, -12, -2), 5},
		{geometry.NewHomogeneousPoint(13, 14, 1), geometry.NewHomogeneousPoint(14, 7, 1), math.NaN()},
		{geometry.NewHomogeneousPoint(13, 14, 1), geometry.NewHomogeneousPoint(14, 15, 1), math.NaN()},
		{geometry.IdealPoint(geometry.Point2D{X: 1}), geometry.NewHomogeneousPoint(6, 7, 1), math.NaN()},
	}

	for i, tc := range table {
		got := FocalLength(tc.a, tc.b, c)
		if math.IsNaN(tc.focal) {
			assert.True(t, math.IsNaN(got), "%d) focal %g", i+1, got)
		} else {
			assert.InDelta(t, tc.focal, got, 1e-12, "%d) focal", i+1)
		}
	}
}

func TestEstimateCase1PitchOnlyCamera(t *testing.T) {
	// Pitch alone puts the x axis vanishing point at infinity along the
	// image x axis and the y axis one on the vertical through the principal
	// point, so the altitude through the ideal point is the zero line up to
	// rounding.
	cam := testCamera(t, [3]float64{0, 0.3, 0})
	lines := LinesFromSegments(cam.Pairs(0, 1, synth.DefaultAnchors, 40))

	e := EstimateCase1(lines, testPrincipal)
	require.True(t, e.VPs[0].IsIdeal())
	require.False(t, e.VPs[1].IsNaN())
	assert.True(t, e.VPs[2].IsNaN(), "third vanishing point %v", e.VPs[2])
	assert.False(t, e.Valid())
	assert.False(t, e.HasFocal())
}
