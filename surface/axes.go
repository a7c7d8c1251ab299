package surface

import (
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	tickLength  = vg.Points(4)
	tickOffset  = vg.Points(12)
	labelOffset = vg.Points(32)
)

// axis is an edge of the data box carrying ticks for one coordinate.
type axis struct {
	from, to [3]float64
	dim      int
	label    string
}

// axes returns the x and y axes on the bottom edges nearest the eye and the
// z axis on the leftmost vertical edge.
func (s *Surface) axes() [3]axis {
	lo, hi := s.bounds()
	mid := func(d int) float64 { return (lo[d] + hi[d]) / 2 }
	depth := func(x, y, z float64) float64 {
		_, _, d := s.project(x, y, z)
		return d
	}

	yEdge := lo[1]
	if depth(mid(0), hi[1], lo[2]) > depth(mid(0), lo[1], lo[2]) {
		yEdge = hi[1]
	}
	xEdge := lo[0]
	if depth(hi[0], mid(1), lo[2]) > depth(lo[0], mid(1), lo[2]) {
		xEdge = hi[0]
	}
	zx, zy := lo[0], lo[1]
	umin := math.Inf(1)
	for _, x := range [2]float64{lo[0], hi[0]} {
		for _, y := range [2]float64{lo[1], hi[1]} {
			if u, _, _ := s.project(x, y, lo[2]); u < umin {
				umin, zx, zy = u, x, y
			}
		}
	}

	return [3]axis{
		{from: [3]float64{lo[0], yEdge, lo[2]}, to: [3]float64{hi[0], yEdge, lo[2]}, dim: 0, label: s.XLabel},
		{from: [3]float64{xEdge, lo[1], lo[2]}, to: [3]float64{xEdge, hi[1], lo[2]}, dim: 1, label: s.YLabel},
		{from: [3]float64{zx, zy, lo[2]}, to: [3]float64{zx, zy, hi[2]}, dim: 2, label: s.ZLabel},
	}
}

func (s *Surface) screen(tr func(u, v float64) vg.Point, p [3]float64) vg.Point {
	u, v, _ := s.project(p[0], p[1], p[2])
	return tr(u, v)
}

// outward returns the unit screen direction pointing from the center of
// the box to the middle of a.
func (s *Surface) outward(tr func(u, v float64) vg.Point, a axis) (dx, dy float64) {
	lo, hi := s.bounds()
	var center, middle [3]float64
	for d := range center {
		center[d] = (lo[d] + hi[d]) / 2
		middle[d] = (a.from[d] + a.to[d]) / 2
	}
	c := s.screen(tr, center)
	m := s.screen(tr, middle)
	dx, dy = float64(m.X-c.X), float64(m.Y-c.Y)
	n := math.Hypot(dx, dy)
	if n == 0 {
		return 0, -1
	}
	return dx / n, dy / n
}

func offset(p vg.Point, dx, dy float64, l vg.Length) vg.Point {
	return vg.Point{X: p.X + vg.Length(dx)*l, Y: p.Y + vg.Length(dy)*l}
}

type tick struct {
	at    [3]float64
	label string
}

// ticks returns the positions along a of its labelled ticks.
func (s *Surface) ticks(a axis) []tick {
	var ts []tick
	lo, hi := a.from[a.dim], a.to[a.dim]
	ticker := s.Ticker
	if a.dim < 2 {
		ticker = s.XYTicker
	}
	for _, t := range ticker.Ticks(lo, hi) {
		if t.IsMinor() || t.Value < lo || t.Value > hi {
			continue
		}
		p := a.from
		p[a.dim] = t.Value
		ts = append(ts, tick{at: p, label: t.Label})
	}
	return ts
}

// drawAxes strokes the axis edges and their tick marks.
func (s *Surface) drawAxes(c draw.Canvas, tr func(u, v float64) vg.Point) {
	for _, a := range s.axes() {
		c.StrokeLines(s.AxisStyle, []vg.Point{s.screen(tr, a.from), s.screen(tr, a.to)})
		dx, dy := s.outward(tr, a)
		for _, t := range s.ticks(a) {
			p := s.screen(tr, t.at)
			c.StrokeLines(s.AxisStyle, []vg.Point{p, offset(p, dx, dy, tickLength)})
		}
	}
}

// drawLabels writes the tick labels and the axis names.
func (s *Surface) drawLabels(c draw.Canvas, tr func(u, v float64) vg.Point) {
	for _, a := range s.axes() {
		dx, dy := s.outward(tr, a)
		for _, t := range s.ticks(a) {
			p := s.screen(tr, t.at)
			c.FillText(s.TickStyle, offset(p, dx, dy, tickOffset), t.label)
		}
		if a.label == "" {
			continue
		}
		var middle [3]float64
		for d := range middle {
			middle[d] = (a.from[d] + a.to[d]) / 2
		}
		sty := s.LabelStyle
		if a.dim == 2 {
			sty.Rotation = math.Pi / 2
		}
		c.FillText(sty, offset(s.screen(tr, middle), dx, dy, labelOffset), a.label)
	}
}
