// Package config reads the INI configuration shared by vpdetect and vpsynth.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/gcfg.v1"

	"vpdetect/pkg/geometry"
)

const ExampleFile = `[Detect]

#######################
# Optional Parameters #
#######################

# Principal point in the working frame of the scene, as "x y". Overrides the
# scene file. When neither sets one, the image centre is used.
# Principal = 320 240

# Image whose header gives the principal point when the scene has none.
# Image = path/to/photo.jpg

# One of [ Text | JSON ].
# Output = Text

# Colour the text table.
# Color = true

# Decimal places in the text table.
# Precision = 3

[Synth]

# Camera used to project the three scene axes.
Focal = 800
Width = 640
Height = 480

# Length of each generated segment, in pixels.
# SegmentLength = 40

# Start points of the four segments, as "x y". Give exactly four or none.
# Anchor = 100 100
# Anchor = 400 300
# Anchor = 200 50
# Anchor = 500 400`

// DetectConfig controls vpdetect.
type DetectConfig struct {
	// Optional
	Principal string
	Image     string
	Output    string
	Color     bool
	Precision int
}

// SynthConfig controls vpsynth.
type SynthConfig struct {
	// Required
	Focal         float64
	Width, Height int

	// Optional
	SegmentLength float64
	Anchor        []string
}

// Wrapper is the whole file; each section is optional.
type Wrapper struct {
	Detect DetectConfig
	Synth  SynthConfig
}

// Default returns the values used for anything a file leaves unset.
func Default() *Wrapper {
	return &Wrapper{
		Detect: DetectConfig{
			Output:    "Text",
			Color:     true,
			Precision: 3,
		},
		Synth: SynthConfig{
			Focal:         800,
			Width:         640,
			Height:        480,
			SegmentLength: 40,
		},
	}
}

// ReadFile reads fname over the defaults and checks the result.
func ReadFile(fname string) (*Wrapper, error) {
	wrap := Default()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	if err := wrap.CheckInit(); err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return wrap, nil
}

// ReadString is ReadFile for configuration held in memory.
func ReadString(str string) (*Wrapper, error) {
	wrap := Default()
	if err := gcfg.ReadStringInto(wrap, str); err != nil {
		return nil, err
	}
	if err := wrap.CheckInit(); err != nil {
		return nil, err
	}
	return wrap, nil
}

// CheckInit validates both sections.
func (wrap *Wrapper) CheckInit() error {
	if err := wrap.Detect.CheckInit(); err != nil {
		return err
	}
	return wrap.Synth.CheckInit()
}

func (con *DetectConfig) ValidImage() bool {
	return con.Image != ""
}
func (con *DetectConfig) ValidOutput() bool {
	switch strings.ToLower(con.Output) {
	case "text", "json":
		return true
	}
	return false
}

// JSON reports whether records should be written as JSON.
func (con *DetectConfig) JSON() bool {
	return strings.EqualFold(con.Output, "json")
}

// PrincipalPoint parses Principal. ok is false when it is unset.
func (con *DetectConfig) PrincipalPoint() (p geometry.Point2D, ok bool, err error) {
	if strings.TrimSpace(con.Principal) == "" {
		return geometry.Point2D{}, false, nil
	}
	p, err = ParsePoint(con.Principal)
	return p, err == nil, err
}

func (con *DetectConfig) CheckInit() error {
	if _, _, err := con.PrincipalPoint(); err != nil {
		return fmt.Errorf("invalid 'Principal' value %q: %w", con.Principal, err)
	}
	if !con.ValidOutput() {
		return fmt.Errorf(
			"'Output' must be one of [ Text | JSON ], but is %q", con.Output,
		)
	}
	if con.Precision < 0 || con.Precision > 17 {
		return fmt.Errorf(
			"'Precision' must be in range [0, 17], but is %d", con.Precision,
		)
	}
	return nil
}

func (con *SynthConfig) ValidFocal() bool {
	return con.Focal > 0
}
func (con *SynthConfig) ValidSize() bool {
	return con.Width > 0 && con.Height > 0
}
func (con *SynthConfig) ValidSegmentLength() bool {
	return con.SegmentLength > 0
}

// Anchors parses Anchor. ok is false when none are given.
func (con *SynthConfig) Anchors() (anchors [4]geometry.Point2D, ok bool, err error) {
	if len(con.Anchor) == 0 {
		return anchors, false, nil
	}
	if len(con.Anchor) != 4 {
		return anchors, false, fmt.Errorf("need 4 'Anchor' values, got %d", len(con.Anchor))
	}
	for i, s := range con.Anchor {
		if anchors[i], err = ParsePoint(s); err != nil {
			return anchors, false, fmt.Errorf("'Anchor' %d: %w", i, err)
		}
	}
	return anchors, true, nil
}

func (con *SynthConfig) CheckInit() error {
	if !con.ValidFocal() {
		return fmt.Errorf("need to specify a positive 'Focal', got %g", con.Focal)
	} else if !con.ValidSize() {
		return fmt.Errorf(
			"'Width' and 'Height' must be positive, but are %d and %d",
			con.Width, con.Height,
		)
	} else if !con.ValidSegmentLength() {
		return fmt.Errorf(
			"'SegmentLength' must be positive, but is %g", con.SegmentLength,
		)
	}
	_, _, err := con.Anchors()
	return err
}

// ParsePoint parses "x y" or "x,y".
func ParsePoint(s string) (geometry.Point2D, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
	if len(fields) != 2 {
		return geometry.Point2D{}, fmt.Errorf("want two coordinates, got %q", s)
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return geometry.Point2D{}, err
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return geometry.Point2D{}, err
	}
	return geometry.NewPoint2D(x, y), nil
}
