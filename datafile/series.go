package datafile

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/plot/plotter"
)

// LoadXY reads a two-column file of (x, y) samples.
func LoadXY(path string) (plotter.XYs, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}
	if n := t.cols(); n != 2 {
		return nil, fmt.Errorf("%w: %s has %d", ErrColumns, path, n)
	}
	df, err := t.frame([]string{"x", "y"})
	if err != nil {
		return nil, err
	}
	return SeriesToXYs(df, "x", "y"), nil
}

// SeriesToXYs pairs two float columns of df into plot points.
func SeriesToXYs(df dataframe.DataFrame, xcol, ycol string) plotter.XYs {
	rows, _ := df.Dims()
	xs := df.Col(xcol)
	ys := df.Col(ycol)
	pts := make(plotter.XYs, rows)
	for i := range pts {
		pts[i].X = xs.Elem(i).Float()
		pts[i].Y = ys.Elem(i).Float()
	}
	return pts
}
