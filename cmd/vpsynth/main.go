// Command vpsynth writes a synthetic scene: four segments projected from the
// axes of a Manhattan world through a pinhole camera, with the true
// vanishing points and focal length recorded alongside.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	petname "github.com/dustinkirkland/golang-petname"

	"vpdetect/internal/config"
	"vpdetect/internal/scene"
	"vpdetect/internal/synth"
	"vpdetect/internal/version"
	"vpdetect/pkg/geometry"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	configPath := flag.String("config", "", "Configuration file ([Synth] section)")
	focal := flag.Float64("f", 0, "Focal length in pixels (overrides config)")
	yaw := flag.Float64("yaw", 30, "Yaw in degrees")
	pitch := flag.Float64("pitch", 15, "Pitch in degrees")
	roll := flag.Float64("roll", 5, "Roll in degrees")
	size := flag.String("size", "", "Image size as 'width height' (overrides config)")
	split := flag.Bool("split", false, "Emit a 2+1+1 set instead of two pairs")
	name := flag.String("name", "", "Scene name (random when empty)")
	out := flag.String("o", "", "Output scene file (stdout when empty)")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String("vpsynth"))
		return
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.ReadFile(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	con := &cfg.Synth
	if *focal != 0 {
		con.Focal = *focal
	}
	if *size != "" {
		wh, err := config.ParsePoint(*size)
		if err != nil {
			log.Fatalf("Invalid -size: %v", err)
		}
		con.Width, con.Height = int(wh.X), int(wh.Y)
	}
	if err := con.CheckInit(); err != nil {
		log.Fatal(err)
	}

	anchors, ok, err := con.Anchors()
	if err != nil {
		log.Fatal(err)
	}
	if !ok {
		anchors = synth.DefaultAnchors
	}

	if *name == "" {
		petname.NonDeterministicMode()
		*name = petname.Generate(2, "-")
	}

	s, err := build(*name, con, anchors, *yaw, *pitch, *roll, *split)
	if err != nil {
		log.Fatal(err)
	}

	if *out == "" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(s); err != nil {
			log.Fatal(err)
		}
		return
	}
	if err := s.Save(*out); err != nil {
		log.Fatal(err)
	}
	log.Printf("Wrote scene %q to %s (focal %.1f)", s.Name, *out, s.Truth.Focal)
}

func build(name string, con *config.SynthConfig, anchors [4]geometry.Point2D, yaw, pitch, roll float64, split bool) (*scene.File, error) {
	s := scene.New(name, con.Width, con.Height)
	imageSize, _ := s.ImageSize()
	cam, err := synth.NewCamera(con.Focal, imageSize.Center(), radians(yaw), radians(pitch), radians(roll))
	if err != nil {
		return nil, err
	}

	var segments [4]geometry.LineSegment
	if split {
		segments = cam.Split(anchors, con.SegmentLength)
		s.Description = "two segments toward axis 0, one each toward axes 1 and 2"
	} else {
		segments = cam.Pairs(0, 1, anchors, con.SegmentLength)
		s.Description = "two segments each toward axes 0 and 1"
	}
	s.Segments = segments[:]
	s.Truth = &scene.Truth{Focal: cam.Focal, VPs: cam.VanishingPoints()}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("anchor sits on a vanishing point: %w", err)
	}
	return s, nil
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
