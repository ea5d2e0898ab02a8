package vanishing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vpdetect/internal/synth"
	"vpdetect/pkg/geometry"
)

var (
	testPrincipal = geometry.Point2D{X: 320, Y: 240}
	testFocal     = 800.0

	// Camera poses for which the split grouping has a single positive
	// solution with synth.DefaultAnchors.
	testPoses = [][3]float64{
		{0.5, 0.3, 0.1},
		{0.9, -0.2, 0.05},
		{0.3, 0.6, -0.2},
	}
)

func testCamera(t *testing.T, pose [3]float64) *synth.Camera {
	t.Helper()
	cam, err := synth.NewCamera(testFocal, testPrincipal, pose[0], pose[1], pose[2])
	require.NoError(t, err)
	return cam
}

func assertSamePoint(t *testing.T, want, got geometry.HomogeneousPoint, rel float64, msgAndArgs ...interface{}) {
	t.Helper()
	w, okW := want.Euclidean()
	g, okG := got.Euclidean()
	require.True(t, okW, msgAndArgs...)
	require.True(t, okG, msgAndArgs...)
	assert.InEpsilon(t, w.X, g.X, rel, msgAndArgs...)
	assert.InEpsilon(t, w.Y, g.Y, rel, msgAndArgs...)
}

// slopeThirdVP intersects the two altitudes using Euclidean slopes, the way
// the construction is usually written by hand. It divides by zero for
// axis-aligned inputs, which IEEE arithmetic turns into usable infinities.
func slopeThirdVP(vp1, vp2, center geometry.Point2D) geometry.Point2D {
	alpha1 := -1 / ((vp1.Y - center.Y) / (vp1.X - center.X))
	alpha2 := -1 / ((vp2.Y - center.Y) / (vp2.X - center.X))

	const1 := vp2.Y - vp2.X*alpha1
	const2 := vp1.Y - vp1.X*alpha2

	x := (const2 - const1) / (alpha1 - alpha2)
	return geometry.Point2D{X: x, Y: alpha1*x + const1}
}
