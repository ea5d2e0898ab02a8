// Package vanishing estimates vanishing points and focal length from four
// image lines assumed to follow mutually orthogonal scene directions.
//
// All functions are pure. Coordinates may be in pixels or in any frame the
// caller chooses, but the principal point must be given in that same frame.
// Undefined results are reported as NaN values, never as errors, so a search
// over several groupings can continue past a degenerate one.
package vanishing

import (
	"fmt"
	"math"

	"vpdetect/pkg/geometry"
)

// Lines is the fixed-size input of every estimator.
type Lines [4]geometry.HomogeneousLine

// LinesFromSegments returns the supporting lines of four segments. A
// degenerate segment yields the zero line, which in turn yields NaN
// vanishing points wherever it is used.
func LinesFromSegments(segments [4]geometry.LineSegment) Lines {
	var lines Lines
	for i, s := range segments {
		lines[i] = s.Line()
	}
	return lines
}

// GroupingKind distinguishes how the four lines are assigned to directions.
type GroupingKind int

const (
	// GroupingPairs assigns two lines to each of two directions; the
	// third vanishing point is derived.
	GroupingPairs GroupingKind = iota
	// GroupingSplit assigns two lines to one direction and one line to
	// each of the other two.
	GroupingSplit
)

func (k GroupingKind) String() string {
	switch k {
	case GroupingPairs:
		return "pairs"
	case GroupingSplit:
		return "split"
	default:
		return fmt.Sprintf("GroupingKind(%d)", int(k))
	}
}

// Grouping is one assignment of the four lines to vanishing directions.
//
// For GroupingPairs, lines Order[0], Order[1] meet at the first vanishing
// point and Order[2], Order[3] at the second. For GroupingSplit, Order[0],
// Order[1] meet at the first vanishing point while Order[2] passes through
// the second and Order[3] through the third.
type Grouping struct {
	Kind  GroupingKind `json:"kind"`
	Order [4]int       `json:"order"`
}

func (g Grouping) String() string {
	o := g.Order
	if g.Kind == GroupingSplit {
		return fmt.Sprintf("%d%d|%d|%d", o[0], o[1], o[2], o[3])
	}
	return fmt.Sprintf("%d%d|%d%d", o[0], o[1], o[2], o[3])
}

// Assignment returns, for each input line, the index of the vanishing point
// it is assumed to pass through.
func (g Grouping) Assignment() [4]int {
	var vp [4]int
	if g.Kind == GroupingSplit {
		vp[g.Order[0]], vp[g.Order[1]], vp[g.Order[2]], vp[g.Order[3]] = 0, 0, 1, 2
	} else {
		vp[g.Order[0]], vp[g.Order[1]], vp[g.Order[2]], vp[g.Order[3]] = 0, 0, 1, 1
	}
	return vp
}

// Estimate is the result for one grouping: three vanishing points and the
// focal length they imply. Focal is NaN when no real focal length satisfies
// the orthogonality constraint. Points that could not be constructed are
// NaN points.
type Estimate struct {
	Grouping Grouping                     `json:"grouping"`
	VPs      [3]geometry.HomogeneousPoint `json:"vps"`
	Focal    float64                      `json:"focal"`
}

// HasFocal reports whether the focal length is defined.
func (e Estimate) HasFocal() bool {
	return !math.IsNaN(e.Focal)
}

// Valid reports whether all three vanishing points are defined.
func (e Estimate) Valid() bool {
	for _, vp := range e.VPs {
		if vp.IsNaN() {
			return false
		}
	}
	return true
}

func undefinedEstimate(g Grouping) Estimate {
	nan := geometry.NaNPoint()
	return Estimate{Grouping: g, VPs: [3]geometry.HomogeneousPoint{nan, nan, nan}, Focal: math.NaN()}
}
