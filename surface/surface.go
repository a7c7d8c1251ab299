// Package surface draws a scalar field over a regular mesh as a shaded 3D
// surface with gonum/plot.
//
// The field is projected orthographically onto the plot canvas and each
// mesh cell is painted as one facet, far facets first.
package surface

import (
	"image"
	"image/color"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// zScale is the height of the normalized box relative to its x and y
// extent.
const zScale = 0.75

// margin is the fraction of the projected extent kept free around the box
// for tick and axis labels.
const margin = 0.12

// Surface implements the plot.Plotter interface, drawing a 3D surface of
// the values in a GridXYZ.
type Surface struct {
	GridXYZ plotter.GridXYZ

	// ColorMap colors each facet by the mean height of its corners.
	// Its range is kept equal to Min and Max.
	ColorMap palette.ColorMap

	// Min and Max are the extent of the z axis.
	Min, Max float64

	Projection Projection

	// LineStyle is the style of the facet edges. Edges are not drawn
	// when the width is zero.
	LineStyle draw.LineStyle

	// Antialiased selects vector filling of the facets. When false the
	// facets are rasterized at DPI dots per inch with hard edges.
	Antialiased bool
	DPI         float64

	// XLabel, YLabel and ZLabel name the three axes.
	XLabel, YLabel, ZLabel string

	// AxisStyle is the style of the box edges and tick marks.
	AxisStyle draw.LineStyle

	// LabelStyle and TickStyle are the styles of the axis and tick labels.
	LabelStyle, TickStyle text.Style

	// XYTicker places the ticks on the x and y axes and Ticker those on
	// the z axis.
	XYTicker, Ticker plot.Ticker
}

// NewSurface returns a Surface of g colored by cm. The z range is taken
// from g; a flat field gets a range of one unit around its value. The
// range of cm is set to the z range.
func NewSurface(g plotter.GridXYZ, cm palette.ColorMap) *Surface {
	min, max := gridRange(g)
	if min == max {
		min -= 0.5
		max += 0.5
	}
	cm.SetMin(min)
	cm.SetMax(max)
	return &Surface{
		GridXYZ:    g,
		ColorMap:   cm,
		Min:        min,
		Max:        max,
		Projection: DefaultProjection,
		DPI:        100,
		AxisStyle: draw.LineStyle{
			Color: color.Black,
			Width: vg.Points(0.5),
		},
		LabelStyle: text.Style{
			Color:   color.Black,
			Font:    font.From(plot.DefaultFont, 12),
			XAlign:  draw.XCenter,
			YAlign:  draw.YCenter,
			Handler: plot.DefaultTextHandler,
		},
		TickStyle: text.Style{
			Color:   color.Black,
			Font:    font.From(plot.DefaultFont, 9),
			XAlign:  draw.XCenter,
			YAlign:  draw.YCenter,
			Handler: plot.DefaultTextHandler,
		},
		XYTicker: IntegerTicks{},
		Ticker:   plot.DefaultTicks{},
	}
}

func gridRange(g plotter.GridXYZ) (min, max float64) {
	type minMaxer interface {
		Min() float64
		Max() float64
	}
	if g, ok := g.(minMaxer); ok {
		return g.Min(), g.Max()
	}
	min, max = math.Inf(1), math.Inf(-1)
	c, r := g.Dims()
	for i := 0; i < c; i++ {
		for j := 0; j < r; j++ {
			v := g.Z(i, j)
			min = math.Min(min, v)
			max = math.Max(max, v)
		}
	}
	return min, max
}

// bounds returns the lower and upper corner of the data box.
func (s *Surface) bounds() (lo, hi [3]float64) {
	c, r := s.GridXYZ.Dims()
	lo[0], hi[0] = minmax(s.GridXYZ.X(0), s.GridXYZ.X(c-1))
	lo[1], hi[1] = minmax(s.GridXYZ.Y(0), s.GridXYZ.Y(r-1))
	lo[2], hi[2] = s.Min, s.Max
	return lo, hi
}

func minmax(a, b float64) (float64, float64) {
	if a > b {
		return b, a
	}
	return a, b
}

// project maps a data point to screen coordinates and depth.
func (s *Surface) project(x, y, z float64) (u, v, depth float64) {
	lo, hi := s.bounds()
	nx := (x-lo[0])/(hi[0]-lo[0]) - 0.5
	ny := (y-lo[1])/(hi[1]-lo[1]) - 0.5
	nz := ((z-lo[2])/(hi[2]-lo[2]) - 0.5) * zScale
	return s.Projection.Project(nx, ny, nz)
}

// DataRange returns the screen extent of the projected data box,
// implementing the plot.DataRanger interface.
func (s *Surface) DataRange() (xmin, xmax, ymin, ymax float64) {
	lo, hi := s.bounds()
	var us, vs []float64
	for _, x := range []float64{lo[0], hi[0]} {
		for _, y := range []float64{lo[1], hi[1]} {
			for _, z := range []float64{lo[2], hi[2]} {
				u, v, _ := s.project(x, y, z)
				us = append(us, u)
				vs = append(vs, v)
			}
		}
	}
	xmin, xmax = floats.Min(us), floats.Max(us)
	ymin, ymax = floats.Min(vs), floats.Max(vs)
	dx, dy := (xmax-xmin)*margin, (ymax-ymin)*margin
	return xmin - dx, xmax + dx, ymin - dy, ymax + dy
}

// transform returns the mapping from screen coordinates to the canvas,
// with equal scale on both directions so the box is not distorted.
func (s *Surface) transform(c draw.Canvas) func(u, v float64) vg.Point {
	umin, umax, vmin, vmax := s.DataRange()
	w := float64(c.Max.X - c.Min.X)
	h := float64(c.Max.Y - c.Min.Y)
	scale := math.Min(w/(umax-umin), h/(vmax-vmin))
	center := c.Center()
	um, vm := (umin+umax)/2, (vmin+vmax)/2
	return func(u, v float64) vg.Point {
		return vg.Point{
			X: center.X + vg.Length((u-um)*scale),
			Y: center.Y + vg.Length((v-vm)*scale),
		}
	}
}

type facet struct {
	corners [4][2]float64
	depth   float64
	z       float64
}

// facets returns one facet per mesh cell ordered from far to near.
func (s *Surface) facets() []facet {
	c, r := s.GridXYZ.Dims()
	fs := make([]facet, 0, (c-1)*(r-1))
	for j := 0; j < r-1; j++ {
		for i := 0; i < c-1; i++ {
			var f facet
			cell := [4][2]int{{i, j}, {i + 1, j}, {i + 1, j + 1}, {i, j + 1}}
			for k, idx := range cell {
				z := s.GridXYZ.Z(idx[0], idx[1])
				u, v, d := s.project(s.GridXYZ.X(idx[0]), s.GridXYZ.Y(idx[1]), z)
				f.corners[k] = [2]float64{u, v}
				f.depth += d / 4
				f.z += z / 4
			}
			fs = append(fs, f)
		}
	}
	sort.SliceStable(fs, func(a, b int) bool { return fs[a].depth < fs[b].depth })
	return fs
}

// facetColor returns the fill color of a facet at height z.
func (s *Surface) facetColor(z float64) color.Color {
	z = math.Max(s.ColorMap.Min(), math.Min(s.ColorMap.Max(), z))
	col, err := s.ColorMap.At(z)
	if err != nil {
		panic(err)
	}
	return col
}

// Plot implements the Plot method of the plot.Plotter interface.
func (s *Surface) Plot(c draw.Canvas, plt *plot.Plot) {
	tr := s.transform(c)
	s.drawAxes(c, tr)

	fs := s.facets()
	if s.Antialiased {
		s.plotVectorized(c, tr, fs)
	} else {
		s.plotRasterized(c, tr, fs)
	}
	if s.LineStyle.Width > 0 {
		for _, f := range fs {
			ring := make([]vg.Point, 0, 5)
			for _, p := range f.corners {
				ring = append(ring, tr(p[0], p[1]))
			}
			ring = append(ring, ring[0])
			c.StrokeLines(s.LineStyle, ring)
		}
	}
	s.drawLabels(c, tr)
}

func (s *Surface) plotVectorized(c draw.Canvas, tr func(u, v float64) vg.Point, fs []facet) {
	for _, f := range fs {
		pts := make([]vg.Point, 0, 4)
		for _, p := range f.corners {
			pts = append(pts, tr(p[0], p[1]))
		}
		c.FillPolygon(s.facetColor(f.z), pts)
	}
}

func (s *Surface) plotRasterized(c draw.Canvas, tr func(u, v float64) vg.Point, fs []facet) {
	dpi := s.DPI
	if dpi <= 0 {
		dpi = 100
	}
	w := float64(c.Max.X - c.Min.X)
	h := float64(c.Max.Y - c.Min.Y)
	cols := int(math.Round(w / float64(vg.Inch) * dpi))
	rows := int(math.Round(h / float64(vg.Inch) * dpi))
	if cols <= 0 || rows <= 0 {
		return
	}
	img := image.NewRGBA(image.Rect(0, 0, cols, rows))
	poly := make([][2]float64, 4)
	for _, f := range fs {
		for k, p := range f.corners {
			pt := tr(p[0], p[1])
			poly[k] = [2]float64{
				float64(pt.X-c.Min.X) / w * float64(cols),
				float64(c.Max.Y-pt.Y) / h * float64(rows),
			}
		}
		fillPolygon(img, poly, s.facetColor(f.z))
	}
	c.DrawImage(c.Rectangle, img)
}
