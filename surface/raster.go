package surface

import (
	"image"
	"image/color"
	"math"
	"slices"
)

// fillPolygon paints poly into img with no antialiasing: a pixel is set
// when its center lies inside the polygon under the even-odd rule. Edges
// are half-open so polygons sharing an edge leave no gap between them.
// Points are in pixel coordinates with y growing downward.
func fillPolygon(img *image.RGBA, poly [][2]float64, col color.Color) {
	if len(poly) < 3 {
		return
	}
	rgba := color.RGBAModel.Convert(col).(color.RGBA)
	bounds := img.Bounds()

	ymin, ymax := poly[0][1], poly[0][1]
	for _, p := range poly[1:] {
		ymin = math.Min(ymin, p[1])
		ymax = math.Max(ymax, p[1])
	}
	y0 := max(bounds.Min.Y, int(math.Ceil(ymin-0.5)))
	y1 := min(bounds.Max.Y-1, int(math.Ceil(ymax-0.5))-1)

	xs := make([]float64, 0, len(poly))
	for y := y0; y <= y1; y++ {
		cy := float64(y) + 0.5
		xs = xs[:0]
		for i, a := range poly {
			b := poly[(i+1)%len(poly)]
			if (a[1] <= cy) == (b[1] <= cy) {
				continue
			}
			t := (cy - a[1]) / (b[1] - a[1])
			xs = append(xs, a[0]+t*(b[0]-a[0]))
		}
		slices.Sort(xs)
		for k := 0; k+1 < len(xs); k += 2 {
			x0 := max(bounds.Min.X, int(math.Ceil(xs[k]-0.5)))
			x1 := min(bounds.Max.X-1, int(math.Ceil(xs[k+1]-0.5))-1)
			for x := x0; x <= x1; x++ {
				img.SetRGBA(x, y, rgba)
			}
		}
	}
}
