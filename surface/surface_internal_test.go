package surface

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"berkotech.co/numplot/datafile"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestProjection_Depth(t *testing.T) {
	p := DefaultProjection
	// The eye sits on the +x, -y side of the box.
	_, _, near := p.Project(0.5, -0.5, 0)
	_, _, far := p.Project(-0.5, 0.5, 0)
	require.Greater(t, near, far)

	// Higher points are drawn higher on screen.
	_, lowV, _ := p.Project(0, 0, -0.3)
	_, highV, _ := p.Project(0, 0, 0.3)
	require.Greater(t, highV, lowV)
}

func TestSurface_FacetsEveryCell(t *testing.T) {
	data := mat.NewDense(3, 5, nil)
	for r := 0; r < 3; r++ {
		for c := 0; c < 5; c++ {
			data.Set(r, c, float64(r*c))
		}
	}
	cm, err := Viridis()
	require.NoError(t, err)
	s := NewSurface(datafile.NewGrid(data), cm)

	fs := s.facets()
	require.Len(t, fs, 4*2)
	for i := 1; i < len(fs); i++ {
		require.LessOrEqual(t, fs[i-1].depth, fs[i].depth)
	}
}

func TestSurface_FlatRangeWidened(t *testing.T) {
	data := mat.NewDense(2, 2, []float64{3, 3, 3, 3})
	cm, err := Viridis()
	require.NoError(t, err)
	s := NewSurface(datafile.NewGrid(data), cm)

	require.Equal(t, 2.5, s.Min)
	require.Equal(t, 3.5, s.Max)
	require.Equal(t, 2.5, cm.Min())
	require.Equal(t, 3.5, cm.Max())
	require.NotPanics(t, func() { s.facetColor(3) })
}

func TestFillPolygon_Square(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	fillPolygon(img, [][2]float64{{2, 2}, {6, 2}, {6, 5}, {2, 5}}, color.Black)

	n := 0
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if img.RGBAAt(x, y).A != 0 {
				n++
			}
		}
	}
	require.Equal(t, 4*3, n)
	require.Equal(t, uint8(0xff), img.RGBAAt(2, 2).A)
	require.Equal(t, uint8(0), img.RGBAAt(6, 2).A)
}

func TestFillPolygon_SharedEdgeNoGap(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	red := color.RGBA{R: 0xff, A: 0xff}
	blue := color.RGBA{B: 0xff, A: 0xff}
	// Two triangles splitting a square along its diagonal.
	fillPolygon(img, [][2]float64{{1, 1}, {19, 1}, {19, 19}}, red)
	fillPolygon(img, [][2]float64{{1, 1}, {19, 19}, {1, 19}}, blue)

	for y := 1; y < 19; y++ {
		for x := 1; x < 19; x++ {
			require.NotZero(t, img.RGBAAt(x, y).A, "pixel %d,%d", x, y)
		}
	}
}

func TestFillPolygon_Degenerate(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	fillPolygon(img, [][2]float64{{0, 0}, {3, 3}}, color.Black)
	fillPolygon(img, [][2]float64{{-5, -5}, {-1, -5}, {-1, -1}}, color.Black)
	for _, v := range img.Pix {
		require.Zero(t, v)
	}
}

func TestIntegerTicks(t *testing.T) {
	labels := func(min, max float64) []string {
		var ls []string
		for _, tk := range (IntegerTicks{}).Ticks(min, max) {
			ls = append(ls, tk.Label)
		}
		return ls
	}
	require.Equal(t, []string{"0", "1", "2", "3"}, labels(0, 3))
	require.Equal(t, []string{"0", "5", "10", "15", "20"}, labels(0, 24))
	require.Equal(t, []string{"0", "20", "40", "60", "80"}, labels(0, 99))
	require.Equal(t, []string{"0", "1"}, labels(-0.4, 1))
}

func TestSurface_MeshTickLabels(t *testing.T) {
	data := mat.NewDense(26, 31, nil)
	cm, err := Viridis()
	require.NoError(t, err)
	s := NewSurface(datafile.NewGrid(data), cm)

	axes := s.axes()
	for _, a := range axes[:2] {
		ts := s.ticks(a)
		require.NotEmpty(t, ts)
		for _, tk := range ts {
			require.False(t, strings.Contains(tk.label, "."), "axis %d label %q", a.dim, tk.label)
		}
	}
}
