// Command vpdetect estimates vanishing points and focal length for every
// grouping of the four segments in a scene file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"vpdetect/internal/config"
	"vpdetect/internal/report"
	"vpdetect/internal/scene"
	"vpdetect/internal/vanishing"
	"vpdetect/internal/version"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	scenePath := flag.String("scene", "", "Scene file (.vpscene JSON or .svg)")
	configPath := flag.String("config", "", "Configuration file ([Detect] section)")
	imagePath := flag.String("image", "", "Image whose centre is the principal point")
	principal := flag.String("principal", "", "Principal point as 'x y', overriding scene and config")
	asJSON := flag.Bool("json", false, "Write records as JSON")
	noColor := flag.Bool("no-color", false, "Disable coloured output")
	showVersion := flag.Bool("version", false, "Print version and exit")
	exampleConfig := flag.Bool("example-config", false, "Print an example configuration file and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String("vpdetect"))
		return
	}
	if *exampleConfig {
		fmt.Println(config.ExampleFile)
		return
	}
	if *scenePath == "" {
		fmt.Println("Usage: vpdetect -scene <file> [-config <file>] [-image <file>] [-principal 'x y'] [-json]")
		os.Exit(1)
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.ReadFile(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	con := &cfg.Detect
	if *imagePath != "" {
		con.Image = *imagePath
	}
	if *principal != "" {
		con.Principal = *principal
	}
	if *asJSON {
		con.Output = "JSON"
	}
	if *noColor {
		con.Color = false
	}
	if err := con.CheckInit(); err != nil {
		log.Fatal(err)
	}

	s, err := loadScene(*scenePath)
	if err != nil {
		log.Fatal(err)
	}
	if err := applyPrincipal(s, *scenePath, con); err != nil {
		log.Fatal(err)
	}

	segments, pp, err := s.Working()
	if err != nil {
		log.Fatalf("Scene %s: %v", *scenePath, err)
	}
	log.Printf("Scene %q: %s frame, principal point (%.2f, %.2f)", s.Name, s.Frame, pp.X, pp.Y)

	estimates := vanishing.EstimateAllCasesFromSegments(segments, pp)
	records := report.Records(estimates, segments, pp)

	if con.JSON() {
		err = report.WriteJSON(os.Stdout, records)
	} else {
		err = report.WriteText(os.Stdout, records, report.TextOptions{
			Precision: con.Precision,
			Color:     con.Color,
		})
		if err == nil && s.Truth != nil {
			printTruth(s.Truth, con.Precision)
		}
	}
	if err != nil {
		log.Fatal(err)
	}
}

func loadScene(path string) (*scene.File, error) {
	if !strings.EqualFold(filepath.Ext(path), ".svg") {
		return scene.Load(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return scene.FromSVG(f, name)
}

// applyPrincipal settles the principal point of a pixel-frame scene. In
// order of preference: Principal from flags or config, the scene's own
// value, the centre of Image, the centre of the scene's image.
func applyPrincipal(s *scene.File, scenePath string, con *config.DetectConfig) error {
	p, ok, err := con.PrincipalPoint()
	if err != nil {
		return err
	}
	if s.Frame != scene.FramePixel {
		if ok || con.ValidImage() {
			log.Printf("Ignoring principal point settings: %s scenes are already centred", s.Frame)
		}
		if s.Frame == scene.FrameNormalized {
			return s.ResolveImageSize(scenePath)
		}
		return nil
	}

	switch {
	case ok:
		s.PrincipalPoint = &p
	case s.PrincipalPoint != nil:
	case con.ValidImage():
		c, err := scene.ProbeImageCenter(con.Image)
		if err != nil {
			return err
		}
		log.Printf("Principal point from %s", con.Image)
		s.PrincipalPoint = &c
	default:
		return s.ResolveImageSize(scenePath)
	}
	return nil
}

func printTruth(t *scene.Truth, prec int) {
	fmt.Printf("\ntruth: focal %.*f", prec, t.Focal)
	for i, vp := range t.VPs {
		p := report.NewPoint(vp)
		switch {
		case p.X != nil:
			fmt.Printf("  vp%d (%.*f, %.*f)", i+1, prec, *p.X, prec, *p.Y)
		case p.Ideal:
			fmt.Printf("  vp%d inf(%.*f, %.*f)", i+1, prec, p.Direction[0], prec, p.Direction[1])
		}
	}
	fmt.Println()
}
