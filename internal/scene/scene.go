// Package scene provides scene file handling: four observed segments, the
// coordinate frame they are written in and the principal point.
package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"vpdetect/pkg/geometry"
)

// CurrentVersion is written by New and accepted by Validate.
const CurrentVersion = 1

// Frame names the coordinate frame of the segments in a scene file.
type Frame string

const (
	// FramePixel is image pixels with the origin at the top-left corner.
	FramePixel Frame = "pixel"
	// FrameCentered is pixels with the origin at the principal point.
	FrameCentered Frame = "centered"
	// FrameNormalized is image-relative coordinates in [0, 1].
	FrameNormalized Frame = "normalized"
)

var (
	ErrSegmentCount       = errors.New("scene needs exactly four segments")
	ErrDegenerateSegment  = errors.New("segment endpoints coincide")
	ErrUnknownFrame       = errors.New("unknown coordinate frame")
	ErrNoPrincipalPoint   = errors.New("no principal point and no image size")
	ErrNoImageSize        = errors.New("normalized frame needs the image size")
	ErrUnsupportedVersion = errors.New("unsupported scene version")
)

// File represents a scene file (.vpscene).
type File struct {
	Version     int       `json:"version"`
	Name        string    `json:"name"`
	Created     time.Time `json:"created"`
	Modified    time.Time `json:"modified"`
	Description string    `json:"description,omitempty"`

	Frame Frame `json:"frame"`

	// Image path (relative to scene file)
	ImagePath   string `json:"image,omitempty"`
	ImageWidth  int    `json:"image_width,omitempty"`
	ImageHeight int    `json:"image_height,omitempty"`

	// Principal point in the scene frame. Unset means the image centre.
	PrincipalPoint *geometry.Point2D `json:"principal_point,omitempty"`

	Segments []geometry.LineSegment `json:"segments"`

	// Known answer, when the scene was generated.
	Truth *Truth `json:"truth,omitempty"`
}

// Truth records the camera a synthetic scene was projected with.
type Truth struct {
	Focal float64                      `json:"focal"`
	VPs   [3]geometry.HomogeneousPoint `json:"vps"`
}

// New creates a new pixel-frame scene for an image of the given size.
func New(name string, width, height int) *File {
	now := time.Now()
	return &File{
		Version:     CurrentVersion,
		Name:        name,
		Created:     now,
		Modified:    now,
		Frame:       FramePixel,
		ImageWidth:  width,
		ImageHeight: height,
	}
}

// Load loads and validates a scene from a file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var s File
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scene %s: %w", path, err)
	}
	if s.Frame == "" {
		s.Frame = FramePixel
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}

	return &s, nil
}

// Save saves the scene to a file.
func (s *File) Save(path string) error {
	s.Modified = time.Now()

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks the version, the frame and the four segments.
func (s *File) Validate() error {
	if s.Version != CurrentVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, s.Version)
	}
	switch s.Frame {
	case FramePixel, FrameCentered, FrameNormalized:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFrame, s.Frame)
	}
	if len(s.Segments) != 4 {
		return fmt.Errorf("%w, got %d", ErrSegmentCount, len(s.Segments))
	}
	for i, seg := range s.Segments {
		if seg.IsDegenerate() || !seg.P0.IsFinite() || !seg.P1.IsFinite() {
			return fmt.Errorf("segment %d: %w", i, ErrDegenerateSegment)
		}
	}
	return nil
}

// ImageSize returns the recorded image size and whether one is set.
func (s *File) ImageSize() (geometry.Size, bool) {
	if s.ImageWidth <= 0 || s.ImageHeight <= 0 {
		return geometry.Size{}, false
	}
	return geometry.NewSize(float64(s.ImageWidth), float64(s.ImageHeight)), true
}

// Working returns the segments and principal point ready for the
// estimators. Pixel scenes are returned as given. Centered scenes already
// have their origin at the principal point. Normalized scenes are scaled to
// pixels and then centered, so the estimators always see pixel units.
func (s *File) Working() ([4]geometry.LineSegment, geometry.Point2D, error) {
	var segments [4]geometry.LineSegment
	if err := s.Validate(); err != nil {
		return segments, geometry.Point2D{}, err
	}
	copy(segments[:], s.Segments)

	switch s.Frame {
	case FrameCentered:
		return segments, geometry.Point2D{}, nil

	case FrameNormalized:
		size, ok := s.ImageSize()
		if !ok {
			return segments, geometry.Point2D{}, ErrNoImageSize
		}
		center := geometry.NewPoint2D(0.5, 0.5)
		if s.PrincipalPoint != nil {
			center = *s.PrincipalPoint
		}
		for i, seg := range segments {
			segments[i] = geometry.LineSegment{
				P0: toCenteredPixels(seg.P0, center, size),
				P1: toCenteredPixels(seg.P1, center, size),
			}
		}
		return segments, geometry.Point2D{}, nil

	default:
		if s.PrincipalPoint != nil {
			return segments, *s.PrincipalPoint, nil
		}
		size, ok := s.ImageSize()
		if !ok {
			return segments, geometry.Point2D{}, ErrNoPrincipalPoint
		}
		return segments, size.Center(), nil
	}
}

func toCenteredPixels(p, center geometry.Point2D, size geometry.Size) geometry.Point2D {
	return geometry.Point2D{X: (p.X - center.X) * size.Width, Y: (p.Y - center.Y) * size.Height}
}

// SetImage sets the image path (relative to the scene file).
func (s *File) SetImage(scenePath, imagePath string) {
	rel, err := filepath.Rel(filepath.Dir(scenePath), imagePath)
	if err != nil {
		s.ImagePath = imagePath
	} else {
		s.ImagePath = rel
	}
	s.Modified = time.Now()
}

// GetImagePath returns the absolute path to the image.
func (s *File) GetImagePath(scenePath string) string {
	if s.ImagePath == "" {
		return ""
	}
	if filepath.IsAbs(s.ImagePath) {
		return s.ImagePath
	}
	return filepath.Join(filepath.Dir(scenePath), s.ImagePath)
}

// ResolveImageSize fills ImageWidth and ImageHeight from the referenced
// image header when the scene does not record them.
func (s *File) ResolveImageSize(scenePath string) error {
	if _, ok := s.ImageSize(); ok || s.ImagePath == "" {
		return nil
	}
	size, err := ProbeImageSize(s.GetImagePath(scenePath))
	if err != nil {
		return err
	}
	s.ImageWidth, s.ImageHeight = int(size.Width), int(size.Height)
	return nil
}
