// Package report formats the per-grouping estimates for people and for
// other programs.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/logrusorgru/aurora"

	"vpdetect/internal/vanishing"
	"vpdetect/pkg/geometry"
)

// Point is a vanishing point as written to JSON. Finite points carry X and
// Y, ideal points carry Direction, undefined points carry neither.
type Point struct {
	X         *float64    `json:"x,omitempty"`
	Y         *float64    `json:"y,omitempty"`
	Ideal     bool        `json:"ideal,omitempty"`
	Direction *[2]float64 `json:"direction,omitempty"`
}

// Record is one row of output. Undefined numbers are written as null.
type Record struct {
	Case     int      `json:"case"`
	Grouping string   `json:"grouping"`
	Kind     string   `json:"kind"`
	VPs      [3]Point `json:"vps"`
	Focal    *float64 `json:"focal"`
	Error    *float64 `json:"error"`
	Residual *float64 `json:"orthocenter_residual"`
}

// Records scores every estimate against the segments it came from.
func Records(estimates []vanishing.Estimate, segments [4]geometry.LineSegment, principal geometry.Point2D) []Record {
	records := make([]Record, 0, len(estimates))
	for i, e := range estimates {
		r := Record{
			Case:     i + 1,
			Grouping: e.Grouping.String(),
			Kind:     e.Grouping.Kind.String(),
			Focal:    number(e.Focal),
			Error:    number(vanishing.GroupingError(segments, e)),
			Residual: number(geometry.OrthocenterResidual(e.VPs[0], e.VPs[1], e.VPs[2], principal)),
		}
		for k, vp := range e.VPs {
			r.VPs[k] = NewPoint(vp)
		}
		records = append(records, r)
	}
	return records
}

// NewPoint converts a homogeneous point for output.
func NewPoint(p geometry.HomogeneousPoint) Point {
	if p.IsNaN() {
		return Point{}
	}
	if e, ok := p.Euclidean(); ok {
		return Point{X: number(e.X), Y: number(e.Y)}
	}
	d := geometry.Point2D{X: p.X, Y: p.Y}
	d = d.Scale(1 / d.Norm())
	return Point{Ideal: true, Direction: &[2]float64{d.X, d.Y}}
}

func number(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// WriteJSON writes the records as an indented JSON array.
func WriteJSON(w io.Writer, records []Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

// TextOptions controls WriteText.
type TextOptions struct {
	Precision int
	Color     bool
}

// WriteText writes the records as an aligned table.
func WriteText(w io.Writer, records []Record, opts TextOptions) error {
	au := aurora.NewAurora(opts.Color)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "CASE\tGROUPING\tVP1\tVP2\tVP3\tFOCAL\tERROR\tRESIDUAL")
	for _, r := range records {
		cells := []string{
			fmt.Sprint(r.Case),
			r.Grouping,
		}
		for _, vp := range r.VPs {
			cells = append(cells, formatPoint(au, vp, opts.Precision))
		}
		focal := formatNumber(r.Focal, opts.Precision)
		if r.Focal != nil {
			focal = au.Green(focal).String()
		} else {
			focal = au.Red(focal).String()
		}
		cells = append(cells,
			focal,
			formatNumber(r.Error, opts.Precision),
			formatNumber(r.Residual, opts.Precision),
		)
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

func formatPoint(au aurora.Aurora, p Point, prec int) string {
	switch {
	case p.X != nil && p.Y != nil:
		return fmt.Sprintf("(%.*f, %.*f)", prec, *p.X, prec, *p.Y)
	case p.Ideal:
		return au.Cyan(fmt.Sprintf("inf(%.*f, %.*f)", prec, p.Direction[0], prec, p.Direction[1])).String()
	default:
		return au.Red("undefined").String()
	}
}

func formatNumber(v *float64, prec int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.*f", prec, *v)
}
