package datafile

import (
	"fmt"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot/plotter"
)

// Grid is a scalar field sampled on an implicit integer mesh: line r of the
// file holds the values at y = r and token c of a line the value at x = c.
//
// Grid implements plotter.GridXYZ.
type Grid struct {
	data *mat.Dense
}

var _ plotter.GridXYZ = (*Grid)(nil)

// NewGrid returns a Grid over data, rows indexed by y and columns by x.
// The matrix is used directly, not copied.
func NewGrid(data *mat.Dense) *Grid {
	return &Grid{data: data}
}

// LoadGrid reads a rectangular numeric matrix from path.
func LoadGrid(path string) (*Grid, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}
	ny, nx := len(t.records), t.cols()
	if ny < 2 || nx < 2 {
		return nil, fmt.Errorf("%w: %s is %dx%d", ErrTooSmall, path, ny, nx)
	}
	names := make([]string, nx)
	for i := range names {
		names[i] = "x" + strconv.Itoa(i)
	}
	df, err := t.frame(names)
	if err != nil {
		return nil, err
	}
	return NewGrid(mat.DenseCopyOf(matrix{df})), nil
}

// matrix exposes a data frame of float columns as a mat.Matrix.
type matrix struct {
	dataframe.DataFrame
}

func (m matrix) At(i, j int) float64 {
	return m.Elem(i, j).Float()
}

func (m matrix) T() mat.Matrix {
	return mat.Transpose{Matrix: m}
}

// Dims returns the number of columns (nx) and rows (ny) of the grid.
func (g *Grid) Dims() (c, r int) {
	r, c = g.data.Dims()
	return c, r
}

func (g *Grid) Z(c, r int) float64 { return g.data.At(r, c) }
func (g *Grid) X(c int) float64 { return float64(c) }
func (g *Grid) Y(r int) float64 { return float64(r) }

func (g *Grid) Min() float64 { return mat.Min(g.data) }
func (g *Grid) Max() float64 { return mat.Max(g.data) }

// Mesh returns the coordinate axes of the grid, 0..nx-1 and 0..ny-1.
func (g *Grid) Mesh() (xs, ys []float64) {
	nx, ny := g.Dims()
	xs = make([]float64, nx)
	for i := range xs {
		xs[i] = g.X(i)
	}
	ys = make([]float64, ny)
	for j := range ys {
		ys[j] = g.Y(j)
	}
	return xs, ys
}
