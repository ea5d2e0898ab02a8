package scene

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"

	"vpdetect/pkg/geometry"
)

// FromSVG builds a pixel-frame scene from the first four <line> elements of
// an SVG drawing, in document order. The root width and height, when set,
// become the image size.
func FromSVG(r io.Reader, name string) (*File, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}

	width, _ := svgLength(root.Attributes["width"])
	height, _ := svgLength(root.Attributes["height"])
	s := New(name, int(width), int(height))

	lines := root.FindAll("line")
	if len(lines) < 4 {
		return nil, fmt.Errorf("%w, svg has %d lines", ErrSegmentCount, len(lines))
	}
	for i, el := range lines[:4] {
		var coords [4]float64
		for j, attr := range []string{"x1", "y1", "x2", "y2"} {
			v, err := svgLength(el.Attributes[attr])
			if err != nil {
				return nil, fmt.Errorf("line %d %s: %w", i, attr, err)
			}
			coords[j] = v
		}
		s.Segments = append(s.Segments, geometry.NewLineSegment(coords[0], coords[1], coords[2], coords[3]))
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// svgLength parses a plain or px-suffixed SVG length. A missing attribute
// is zero, as in SVG.
func svgLength(v string) (float64, error) {
	v = strings.TrimSuffix(strings.TrimSpace(v), "px")
	if v == "" {
		return 0, nil
	}
	return strconv.ParseFloat(v, 64)
}
