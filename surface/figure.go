package surface

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Figure is a surface plot with a vertical color bar on its right.
type Figure struct {
	Plot    *plot.Plot
	Surface *Surface
	Bar     *plot.Plot

	// Fraction is the share of the figure width reserved for the bar.
	Fraction float64
	// Shrink scales the bar length relative to the plot's data height.
	Shrink float64
	// Aspect is the ratio of the bar length to its thickness.
	Aspect float64

	Width, Height vg.Length
	DPI           int
}

// NewFigure returns a figure of s with a color bar over the color map
// of s.
func NewFigure(s *Surface) *Figure {
	p := plot.New()
	p.HideAxes()
	p.Add(s)

	bar := plot.New()
	bar.HideX()
	bar.X.Padding = 0
	bar.Y.Padding = 0
	bar.Add(&plotter.ColorBar{ColorMap: s.ColorMap, Vertical: true})

	return &Figure{
		Plot:     p,
		Surface:  s,
		Bar:      bar,
		Fraction: 0.15,
		Shrink:   0.5,
		Aspect:   5,
		Width:    10 * vg.Inch,
		Height:   8 * vg.Inch,
		DPI:      100,
	}
}

// NewLaplaceFigure returns the figure of a Laplace equation solution.
func NewLaplaceFigure(g plotter.GridXYZ) (*Figure, error) {
	cm, err := Viridis()
	if err != nil {
		return nil, err
	}
	s := NewSurface(g, cm)
	s.XLabel = "X"
	s.YLabel = "Y"
	s.ZLabel = "Solución"

	f := NewFigure(s)
	f.Plot.Title.Text = "Solución de la Ecuación de Laplace"
	s.DPI = float64(f.DPI)
	return f, nil
}

// Draw draws the figure to c.
func (f *Figure) Draw(c draw.Canvas) {
	col := (c.Max.X - c.Min.X) * vg.Length(f.Fraction)
	left := draw.Crop(c, 0, -col, 0, 0)
	f.Plot.Draw(left)

	data := f.Plot.DataCanvas(left)
	length := (data.Max.Y - data.Min.Y) * vg.Length(f.Shrink)
	thick := length / vg.Length(f.Aspect)
	mid := data.Center().Y

	rect := draw.Canvas{
		Canvas: c.Canvas,
		Rectangle: vg.Rectangle{
			Min: vg.Point{X: left.Max.X, Y: mid - length/2},
			Max: vg.Point{X: left.Max.X + thick, Y: mid + length/2},
		},
	}
	// Widen the bar canvas by the room its axis takes so the bar itself
	// keeps the requested thickness.
	inner := f.Bar.DataCanvas(rect)
	rect.Max.X += (inner.Min.X - rect.Min.X) + (rect.Max.X - inner.Max.X)
	rect.Min.Y -= inner.Min.Y - rect.Min.Y
	rect.Max.Y += rect.Max.Y - inner.Max.Y
	f.Bar.Draw(rect)
}

// WriteTo writes the figure as a PNG image to w.
func (f *Figure) WriteTo(w io.Writer) (int64, error) {
	c := vgimg.NewWith(vgimg.UseWH(f.Width, f.Height), vgimg.UseDPI(f.DPI))
	f.Draw(draw.New(c))
	return vgimg.PngCanvas{Canvas: c}.WriteTo(w)
}

// SavePNG saves the figure as a PNG image file.
func (f *Figure) SavePNG(path string) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		e := file.Close()
		if err == nil {
			err = e
		}
	}()
	_, err = f.WriteTo(file)
	return err
}

// OutputPath returns the image path for a data file inside dir,
// solucion_<base>.png with base the last element of dataFile.
func OutputPath(dir, dataFile string) string {
	return filepath.Join(dir, fmt.Sprintf("solucion_%s.png", filepath.Base(dataFile)))
}
