package recovery

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/shaih/go-polyroots/primitives/polynomial"
	"github.com/shaih/go-polyroots/primitives/roots"
)

const plotSamples = 400

// Plot draws the polynomial over the range of the samples and real roots,
// with the samples and the real roots marked, and saves it to path.
// The image format is taken from the extension of path.
func Plot(res *Result, title, path string) error {
	xmin, xmax := plotRange(res)

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "f(x)"
	p.X.Min, p.X.Max = xmin, xmax
	p.Add(plotter.NewGrid())

	fn := plotter.NewFunction(func(x float64) float64 {
		return polynomial.Evaluate(res.Coefficients, x)
	})
	fn.XMin, fn.XMax = xmin, xmax
	fn.Samples = plotSamples
	fn.Color = color.RGBA{B: 200, A: 255}
	p.Add(fn)
	p.Legend.Add(res.Coefficients.String(), fn)

	// Function has no data range, so the y axis follows a sampled curve
	curve := make(plotter.XYs, plotSamples)
	for i := range curve {
		x := xmin + (xmax-xmin)*float64(i)/float64(plotSamples-1)
		curve[i].X, curve[i].Y = x, polynomial.Evaluate(res.Coefficients, x)
	}
	p.Y.Min, p.Y.Max = math.Inf(1), math.Inf(-1)
	for _, pt := range curve {
		p.Y.Min = math.Min(p.Y.Min, pt.Y)
		p.Y.Max = math.Max(p.Y.Max, pt.Y)
	}
	if p.Y.Min == p.Y.Max {
		p.Y.Min, p.Y.Max = p.Y.Min-1, p.Y.Max+1
	}

	pts := make(plotter.XYs, len(res.Samples))
	for i, s := range res.Samples {
		pts[i].X, pts[i].Y = s.X, s.Y
	}
	samples, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("failed to plot samples: %w", err)
	}
	samples.GlyphStyle.Shape = draw.CircleGlyph{}
	samples.GlyphStyle.Color = color.RGBA{G: 150, A: 255}
	p.Add(samples)
	p.Legend.Add("samples", samples)

	if reals := roots.RealValues(res.Roots); len(reals) > 0 {
		rpts := make(plotter.XYs, len(reals))
		for i, x := range reals {
			rpts[i].X = x
		}
		rs, err := plotter.NewScatter(rpts)
		if err != nil {
			return fmt.Errorf("failed to plot roots: %w", err)
		}
		rs.GlyphStyle.Shape = draw.CrossGlyph{}
		rs.GlyphStyle.Color = color.RGBA{R: 200, A: 255}
		rs.GlyphStyle.Radius = vg.Points(4)
		p.Add(rs)
		p.Legend.Add("real roots", rs)
	}

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save plot %s: %w", path, err)
	}
	return nil
}

// plotRange covers every sample and real root with a 10% margin
func plotRange(res *Result) (xmin, xmax float64) {
	xmin, xmax = math.Inf(1), math.Inf(-1)
	for _, s := range res.Samples {
		xmin, xmax = math.Min(xmin, s.X), math.Max(xmax, s.X)
	}
	for _, x := range roots.RealValues(res.Roots) {
		xmin, xmax = math.Min(xmin, x), math.Max(xmax, x)
	}
	if math.IsInf(xmin, 0) {
		return -1, 1
	}
	if xmin == xmax {
		return xmin - 1, xmax + 1
	}
	margin := (xmax - xmin) / 10
	return xmin - margin, xmax + margin
}
