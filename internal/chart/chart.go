// Package chart renders the dataset visualizations as PNG artifacts.
// Histograms and the regression scatter use gonum/plot; the hazard split uses
// go-chart's pie renderer.
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	gochart "github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/orbitwatch/neoscan-cli/internal/stats"
)

// The original chart palette: dark red bars with a gold accent.
var (
	barColor    = color.RGBA{R: 0x99, G: 0x0f, B: 0x02, A: 0xff}
	accentColor = color.RGBA{R: 0xd4, G: 0xa0, B: 0x17, A: 0xff}
	lineColor   = color.RGBA{R: 0xff, A: 0xff}
)

// Options carries the labeling and sizing shared by the gonum/plot renderers.
type Options struct {
	Title  string
	XLabel string
	YLabel string
	// Width and Height in inches; zero values fall back to 6x4.
	Width  float64
	Height float64
}

func (o Options) size() (vg.Length, vg.Length) {
	w, h := o.Width, o.Height
	if w <= 0 {
		w = 6
	}
	if h <= 0 {
		h = 4
	}
	return vg.Length(w) * vg.Inch, vg.Length(h) * vg.Inch
}

// Histogram renders values into bins continuous bins and saves a PNG at path.
func Histogram(values []float64, bins int, opt Options, path string) error {
	if len(values) == 0 {
		return errors.New("histogram: no values")
	}
	if bins <= 0 {
		return fmt.Errorf("histogram: invalid bin count %d", bins)
	}
	p := plot.New()
	p.Title.Text = opt.Title
	p.X.Label.Text = opt.XLabel
	p.Y.Label.Text = opt.YLabel

	h, err := plotter.NewHist(plotter.Values(values), bins)
	if err != nil {
		return fmt.Errorf("histogram: %w", err)
	}
	h.FillColor = barColor
	p.Add(h, plotter.NewGrid())

	w, ht := opt.size()
	if err := p.Save(w, ht, path); err != nil {
		return fmt.Errorf("save histogram: %w", err)
	}
	return nil
}

// Pie renders the hazardous/non-hazardous split as a two-slice pie PNG.
func Pie(hazardous, safe int, title, path string) error {
	total := hazardous + safe
	if total <= 0 {
		return errors.New("pie: no rows to chart")
	}
	pct := func(n int) float64 { return float64(n) * 100 / float64(total) }
	pie := gochart.PieChart{
		Title:  title,
		Width:  512,
		Height: 512,
		Values: []gochart.Value{
			{Value: float64(hazardous), Label: fmt.Sprintf("True %.1f%%", pct(hazardous))},
			{Value: float64(safe), Label: fmt.Sprintf("False %.1f%%", pct(safe))},
		},
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create pie chart: %w", err)
	}
	defer f.Close()
	if err := pie.Render(gochart.PNG, f); err != nil {
		return fmt.Errorf("render pie chart: %w", err)
	}
	return nil
}

// RegressionScatter renders the observations with the fitted line overlaid and
// saves a PNG at path. Callers gate this on the regression's significance.
func RegressionScatter(x, y []float64, fit stats.Result, opt Options, path string) error {
	if len(x) == 0 || len(x) != len(y) {
		return errors.New("scatter: x and y must be non-empty and equal length")
	}
	p := plot.New()
	p.Title.Text = opt.Title
	p.X.Label.Text = opt.XLabel
	p.Y.Label.Text = opt.YLabel

	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("scatter: %w", err)
	}
	s.GlyphStyle.Color = accentColor
	s.GlyphStyle.Radius = vg.Points(2)

	minX, maxX := x[0], x[0]
	for _, v := range x[1:] {
		if v < minX {
			minX = v
		}
		if v > maxX {
			maxX = v
		}
	}
	l, err := plotter.NewLine(plotter.XYs{
		{X: minX, Y: fit.Predict(minX)},
		{X: maxX, Y: fit.Predict(maxX)},
	})
	if err != nil {
		return fmt.Errorf("regression line: %w", err)
	}
	l.LineStyle.Color = lineColor
	l.LineStyle.Width = vg.Points(2)

	p.Add(s, l, plotter.NewGrid())
	p.Legend.Add("Data points", s)
	p.Legend.Add("Regression line", l)

	w, h := opt.size()
	if err := p.Save(w, h, path); err != nil {
		return fmt.Errorf("save scatter: %w", err)
	}
	return nil
}
