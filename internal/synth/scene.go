package synth

import (
	"vpdetect/pkg/geometry"
)

// DefaultAnchors are the segment start points used by Pairs and Split when
// the caller has no preference, spread over a 640×480 image.
var DefaultAnchors = [4]geometry.Point2D{
	{X: 100, Y: 100},
	{X: 400, Y: 300},
	{X: 200, Y: 50},
	{X: 500, Y: 400},
}

// Pairs returns four segments where segments 0 and 1 run toward the
// vanishing point of axis a and segments 2 and 3 toward that of axis b.
func (c *Camera) Pairs(a, b int, anchors [4]geometry.Point2D, length float64) [4]geometry.LineSegment {
	return [4]geometry.LineSegment{
		c.Segment(a, anchors[0], length),
		c.Segment(a, anchors[1], length),
		c.Segment(b, anchors[2], length),
		c.Segment(b, anchors[3], length),
	}
}

// Split returns four segments where segments 0 and 1 run toward the
// vanishing point of axis 0, segment 2 toward axis 1 and segment 3 toward
// axis 2.
func (c *Camera) Split(anchors [4]geometry.Point2D, length float64) [4]geometry.LineSegment {
	return [4]geometry.LineSegment{
		c.Segment(0, anchors[0], length),
		c.Segment(0, anchors[1], length),
		c.Segment(1, anchors[2], length),
		c.Segment(2, anchors[3], length),
	}
}
