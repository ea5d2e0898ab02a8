package vanishing

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vpdetect/internal/synth"
	"vpdetect/pkg/geometry"
)

func TestPositiveRoots(t *testing.T) {
	table := []struct {
		qa, qb, qc float64
		want       []float64
	}{
		{1, -5, 4, []float64{1, 4}},
		{1, 0, 1, nil},
		{0, 2, -6, []float64{3}},
		{1, 3, 2, nil},
		{1, -4, 4, []float64{2}},
		{1, 1, -6, []float64{2}},
		{0, 0, 5, nil},
		{0, 0, 0, nil},
	}

	for _, tc := range table {
		got := positiveRoots(tc.qa, tc.qb, tc.qc)
		require.Len(t, got, len(tc.want), "%g s² + %g s + %g", tc.qa, tc.qb, tc.qc)
		for i := range tc.want {
			assert.InDelta(t, tc.want[i], got[i], 1e-12, "%g s² + %g s + %g", tc.qa, tc.qb, tc.qc)
		}
	}
}

func TestSolveSplitRecoversManhattanTriple(t *testing.T) {
	for i, pose := range testPoses {
		cam := testCamera(t, pose)
		truth := cam.VanishingPoints()
		segments := cam.Split(synth.DefaultAnchors, 40)

		solutions := SolveSplit(LinesFromSegments(segments), testPrincipal, [4]int{0, 1, 2, 3})
		require.Len(t, solutions, 1, "%d) solutions", i+1)

		e := solutions[0]
		assert.Equal(t, "01|2|3", e.Grouping.String())
		for k := range truth {
			assertSamePoint(t, truth[k], e.VPs[k], 1e-6, "%d) vp %d", i+1, k)
		}
		assert.InEpsilon(t, testFocal, e.Focal, 1e-6, "%d) focal", i+1)
		assert.InDelta(t, 0, GroupingError(segments, e), 1e-6, "%d) grouping error", i+1)
		assert.InDelta(t, 0, geometry.OrthocenterResidual(e.VPs[0], e.VPs[1], e.VPs[2], testPrincipal), 1e-4, "%d) residual", i+1)
	}
}

func TestSolveSplitPermutedOrder(t *testing.T) {
	cam := testCamera(t, testPoses[1])
	truth := cam.VanishingPoints()
	s := cam.Split(synth.DefaultAnchors, 40)

	// Lines 1 and 3 share the first axis, line 0 runs toward the second
	// and line 2 toward the third.
	segments := [4]geometry.LineSegment{s[2], s[0], s[3], s[1]}
	solutions := SolveSplit(LinesFromSegments(segments), testPrincipal, [4]int{1, 3, 0, 2})
	require.NotEmpty(t, solutions)

	e := solutions[0]
	assert.Equal(t, [4]int{1, 0, 2, 0}, e.Grouping.Assignment())
	for k := range truth {
		assertSamePoint(t, truth[k], e.VPs[k], 1e-6, fmt.Sprintf("vp %d", k))
	}
	assert.InEpsilon(t, testFocal, e.Focal, 1e-6)
}

func TestSolveSplitTwoSolutions(t *testing.T) {
	// Lines drawn by hand with no camera behind them. Both focal lengths
	// satisfy the constraints; they come back in increasing order and the
	// search keeps the first.
	lines := Lines{
		geometry.LineFromTwoPoints(geometry.Point2D{X: 0, Y: 0}, geometry.Point2D{X: 100, Y: 10}),
		geometry.LineFromTwoPoints(geometry.Point2D{X: 0, Y: 200}, geometry.Point2D{X: 100, Y: 180}),
		geometry.LineFromTwoPoints(geometry.Point2D{X: 200, Y: 300}, geometry.Point2D{X: 260, Y: 320}),
		geometry.LineFromTwoPoints(geometry.Point2D{X: 100, Y: 0}, geometry.Point2D{X: 90, Y: 100}),
	}
	principal := geometry.Point2D{X: 160, Y: 120}
	order := [4]int{0, 1, 2, 3}

	solutions := SolveSplit(lines, principal, order)
	require.Len(t, solutions, 2)
	assert.InEpsilon(t, 146.35952257017897, solutions[0].Focal, 1e-8)
	assert.InEpsilon(t, 789.3987070704244, solutions[1].Focal, 1e-8)

	for i, e := range solutions {
		assertSamePoint(t, geometry.NewHomogeneousPoint(2000, 200, 3), e.VPs[0], 1e-9, "%d) first vp", i+1)
		assert.InDelta(t, 0, lines[2].Normalize().EvalHomogeneous(e.VPs[1]), 1e-9, "%d) second vp off its line", i+1)
		assert.InDelta(t, 0, lines[3].Normalize().EvalHomogeneous(e.VPs[2]), 1e-9, "%d) third vp off its line", i+1)

		f2 := e.Focal * e.Focal
		for _, pair := range [][2]int{{0, 1}, {0, 2}, {1, 2}} {
			p := e.VPs[pair[0]].Translate(principal)
			q := e.VPs[pair[1]].Translate(principal)
			conj := (p.X*q.X + p.Y*q.Y + f2*p.W*q.W) /
				math.Sqrt((p.X*p.X+p.Y*p.Y+f2*p.W*p.W)*(q.X*q.X+q.Y*q.Y+f2*q.W*q.W))
			assert.InDelta(t, 0, conj, 1e-9, "%d) vps %v not orthogonal", i+1, pair)
		}
	}

	e := Grouping{Kind: GroupingSplit, Order: order}.Estimate(lines, principal)
	assert.Equal(t, solutions[0], e)
}

func TestSolveSplitDegenerate(t *testing.T) {
	l := geometry.NewHomogeneousLine(1, 2, 3)
	lines := Lines{l, l, geometry.NewHomogeneousLine(1, 0, 0), geometry.NewHomogeneousLine(0, 1, 0)}
	assert.Empty(t, SolveSplit(lines, geometry.Point2D{}, [4]int{0, 1, 2, 3}))

	e := Grouping{Kind: GroupingSplit, Order: [4]int{0, 1, 2, 3}}.Estimate(lines, geometry.Point2D{})
	assert.False(t, e.Valid())
	assert.True(t, math.IsNaN(e.Focal))
}
