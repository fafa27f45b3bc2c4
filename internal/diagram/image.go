package diagram

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"Vodostok/internal/calc/drainage"
	"Vodostok/internal/calc/plan"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var ErrUnsupportedFormat = errors.New("unsupported image format")

var (
	pipeColor  = color.RGBA{R: 14, G: 165, B: 233, A: 255}
	waterColor = color.RGBA{R: 14, G: 165, B: 233, A: 90}
	drainColor = color.RGBA{R: 249, G: 115, B: 22, A: 255}
	guideColor = color.Gray{Y: 128}
)

const (
	width  = 8 * vg.Inch
	height = 4 * vg.Inch
)

// Format normalizes a format name or file extension; empty means png.
func Format(s string) (string, error) {
	s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".")
	switch s {
	case "":
		return "png", nil
	case "png", "svg", "pdf":
		return s, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

func ContentType(format string) string {
	switch format {
	case "svg":
		return "image/svg+xml"
	case "pdf":
		return "application/pdf"
	default:
		return "image/png"
	}
}

// SlopePlot draws the horizontal run as a pipe falling by DropMM over RunLengthM.
func SlopePlot(g drainage.SchemeGeometry) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Drain slope %.1f mm/m", g.SlopeMMPerM)
	p.X.Label.Text = "Run length (m)"
	p.Y.Label.Text = "Elevation (mm)"

	d := float64(g.DiameterMM)
	top := plotter.XYs{{X: 0, Y: 0}, {X: g.RunLengthM, Y: -g.DropMM}}
	bottom := plotter.XYs{{X: 0, Y: -d}, {X: g.RunLengthM, Y: -g.DropMM - d}}

	water, err := plotter.NewPolygon(plotter.XYs{
		{X: 0, Y: -d * 0.3}, {X: g.RunLengthM, Y: -g.DropMM - d*0.3},
		{X: g.RunLengthM, Y: -g.DropMM - d}, {X: 0, Y: -d},
	})
	if err != nil {
		return nil, err
	}
	water.Color = waterColor
	water.LineStyle.Width = 0
	p.Add(water)

	for _, pts := range []plotter.XYs{top, bottom} {
		l, err := plotter.NewLine(pts)
		if err != nil {
			return nil, err
		}
		l.LineStyle.Width = vg.Points(3)
		l.LineStyle.Color = pipeColor
		p.Add(l)
	}

	// horizontal reference from the start of the run
	ref, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: g.RunLengthM, Y: 0}})
	if err != nil {
		return nil, err
	}
	ref.LineStyle.Color = guideColor
	ref.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(ref)

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs: []plotter.XY{
			{X: g.RunLengthM / 2, Y: d * 0.4},
			{X: g.RunLengthM, Y: -g.DropMM / 2},
			{X: 0, Y: -d / 2},
		},
		Labels: []string{
			fmt.Sprintf("L = %g m", g.RunLengthM),
			fmt.Sprintf("h = %.0f mm", g.DropMM),
			fmt.Sprintf("D%d", g.DiameterMM),
		},
	})
	if err != nil {
		return nil, err
	}
	p.Add(labels)

	p.X.Min = 0
	p.X.Max = g.RunLengthM * 1.1
	p.Y.Max = d
	p.Y.Min = -g.DropMM - d*1.5
	return p, nil
}

// PlanPlot draws the house footprint seen from above with the placed drain points.
func PlanPlot(lengthM, widthM float64, points []plan.DrainPoint) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("House plan, %d downpipes", plan.EffectiveCount(points))
	p.X.Label.Text = fmt.Sprintf("Length (m), %g", lengthM)
	p.Y.Label.Text = fmt.Sprintf("Width (m), %g", widthM)

	outline, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: 0}, {X: lengthM, Y: 0}, {X: lengthM, Y: widthM}, {X: 0, Y: widthM}, {X: 0, Y: 0},
	})
	if err != nil {
		return nil, err
	}
	outline.LineStyle.Width = vg.Points(2)
	outline.LineStyle.Color = pipeColor
	p.Add(outline)

	if len(points) > 0 {
		xys := make(plotter.XYs, len(points))
		names := make([]string, len(points))
		for i, pt := range plan.Normalize(points) {
			x, y := plan.ToMeters(pt, lengthM, widthM)
			// plan-view y grows downward from the front edge
			xys[i] = plotter.XY{X: x, Y: widthM - y}
			names[i] = fmt.Sprintf("%d", i+1)
		}

		drains, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, err
		}
		drains.GlyphStyle.Color = drainColor
		drains.GlyphStyle.Radius = vg.Points(6)
		drains.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(drains)

		labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: names})
		if err != nil {
			return nil, err
		}
		p.Add(labels)
	}

	pad := 0.1 * maxf(lengthM, widthM)
	p.X.Min, p.X.Max = -pad, lengthM+pad
	p.Y.Min, p.Y.Max = -pad, widthM+pad
	return p, nil
}

// Write renders p to w in the given format.
func Write(w io.Writer, p *plot.Plot, format string) error {
	format, err := Format(format)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// Export saves p to filename; the extension picks the format, png by default.
func Export(p *plot.Plot, filename string) error {
	format, err := Format(filepath.Ext(filename))
	if err != nil {
		return err
	}
	if filepath.Ext(filename) == "" {
		filename += ".png"
	}

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := Write(f, p, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
