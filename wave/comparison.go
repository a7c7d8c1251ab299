// Package wave plots an analytical solution of the wave equation against a
// numerical approximation of it.
package wave

import (
	"image"
	"image/color"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Fixed plot window.
const (
	XMin, XMax = 0, 4
	YMin, YMax = -2.5, 2.5
)

// Figure size and resolution.
const (
	Width  = 8 * vg.Inch
	Height = 5 * vg.Inch
	DPI    = 100
)

var (
	analyticColor = color.RGBA{B: 255, A: 255}
	numericColor  = color.RGBA{R: 255, A: 255}
)

// Comparison is the plot of both wave profiles.
type Comparison struct {
	*plot.Plot
	Grid              *plotter.Grid
	Analytic, Numeric *plotter.Line
}

// NewComparison returns a plot with the analytical samples as a dashed blue
// line and the numerical samples as a solid red line.
func NewComparison(analytic, numeric plotter.XYs) (*Comparison, error) {
	p := plot.New()
	p.Title.Text = "Onda analítica vs numérica"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y(x, t)"
	grid := plotter.NewGrid()
	p.Add(grid)

	la, err := plotter.NewLine(analytic)
	if err != nil {
		return nil, err
	}
	la.Color = analyticColor
	la.Width = vg.Points(2)
	la.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}

	ln, err := plotter.NewLine(numeric)
	if err != nil {
		return nil, err
	}
	ln.Color = numericColor
	ln.Width = vg.Points(2)

	p.Add(la, ln)
	p.Legend.Add("Analítica", la)
	p.Legend.Add("Numérica", ln)
	p.Legend.Top = true

	// Add widens the axes to the data; the window is fixed.
	p.X.Min, p.X.Max = XMin, XMax
	p.Y.Min, p.Y.Max = YMin, YMax
	return &Comparison{Plot: p, Grid: grid, Analytic: la, Numeric: ln}, nil
}

// Image draws the comparison into an image of the figure size.
func (cmp *Comparison) Image() image.Image {
	c := vgimg.NewWith(vgimg.UseWH(Width, Height), vgimg.UseDPI(DPI))
	cmp.Draw(draw.New(c))
	return c.Image()
}

// DataPaths returns the analytical and numerical data files, which live
// one directory above the executable.
func DataPaths(exe string) (analytic, numeric string) {
	dir := filepath.Join(filepath.Dir(exe), "..")
	return filepath.Join(dir, "dataA.dat"), filepath.Join(dir, "dataN.dat")
}
