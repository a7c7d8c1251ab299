package datafile_test

import (
	"os"
	"path/filepath"
	"testing"

	"berkotech.co/numplot/datafile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadGrid_Shape(t *testing.T) {
	// 3 lines x 4 columns: ny = 3, nx = 4
	path := writeFile(t, "solucion.dat", "0 1 2 3\n10 11 12 13\n20\t21  22 23\n")

	g, err := datafile.LoadGrid(path)
	require.NoError(t, err)

	nx, ny := g.Dims()
	require.Equal(t, 4, nx)
	require.Equal(t, 3, ny)

	xs, ys := g.Mesh()
	require.Equal(t, []float64{0, 1, 2, 3}, xs)
	require.Equal(t, []float64{0, 1, 2}, ys)

	// Z is addressed (column, row).
	assert.Equal(t, 12.0, g.Z(2, 1))
	assert.Equal(t, 20.0, g.Z(0, 2))
	assert.Equal(t, 0.0, g.Min())
	assert.Equal(t, 23.0, g.Max())
}

func TestLoadGrid_CommentsAndBlankLines(t *testing.T) {
	path := writeFile(t, "c.dat", "# nx=2 ny=2\n\n1.5 -2e-1 # first row\n   \n3 4\n")

	g, err := datafile.LoadGrid(path)
	require.NoError(t, err)
	nx, ny := g.Dims()
	require.Equal(t, 2, nx)
	require.Equal(t, 2, ny)
	assert.Equal(t, -0.2, g.Z(1, 0))
}

func TestLoadGrid_Errors(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    error
	}{
		{"ragged", "1 2 3\n4 5\n", datafile.ErrRagged},
		{"text", "1 2\n3 abc\n", datafile.ErrNotNumeric},
		{"nan", "1 2\nNaN 4\n", datafile.ErrNotNumeric},
		{"inf", "1 2\n3 -Inf\n", datafile.ErrNotNumeric},
		{"overflow", "1 2\n3 1e999\n", datafile.ErrNotNumeric},
		{"plus inf", "Inf 2\n3 4\n", datafile.ErrNotNumeric},
		{"empty", "\n# nothing\n", datafile.ErrEmpty},
		{"single row", "1 2 3\n", datafile.ErrTooSmall},
		{"single column", "1\n2\n3\n", datafile.ErrTooSmall},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := datafile.LoadGrid(writeFile(t, "bad.dat", tc.content))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoadGrid_NotNumericNamesLine(t *testing.T) {
	path := writeFile(t, "bad.dat", "# header\n1 2\n\n3 x4\n")

	_, err := datafile.LoadGrid(path)
	require.ErrorIs(t, err, datafile.ErrNotNumeric)
	require.Contains(t, err.Error(), path+":4:")
	require.Contains(t, err.Error(), `"x4"`)
}

func TestLoadXY_NotNumeric(t *testing.T) {
	_, err := datafile.LoadXY(writeFile(t, "dataA.dat", "0 0\n0.1 -Inf\n"))
	require.ErrorIs(t, err, datafile.ErrNotNumeric)
}

func TestLoadGrid_NotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.dat")
	_, err := datafile.LoadGrid(path)
	require.ErrorIs(t, err, datafile.ErrNotFound)
	require.Contains(t, err.Error(), path)
}

func TestLoadXY(t *testing.T) {
	path := writeFile(t, "dataA.dat", "0\t0\n0.04\t0.25\n0.08\t-0.5\n")

	pts, err := datafile.LoadXY(path)
	require.NoError(t, err)
	require.Len(t, pts, 3)
	assert.Equal(t, 0.04, pts[1].X)
	assert.Equal(t, 0.25, pts[1].Y)
	assert.Equal(t, -0.5, pts[2].Y)
}

func TestLoadXY_Errors(t *testing.T) {
	_, err := datafile.LoadXY(writeFile(t, "three.dat", "1 2 3\n4 5 6\n"))
	require.ErrorIs(t, err, datafile.ErrColumns)

	_, err = datafile.LoadXY(writeFile(t, "one.dat", "1\n2\n"))
	require.ErrorIs(t, err, datafile.ErrColumns)

	_, err = datafile.LoadXY(writeFile(t, "ragged.dat", "1 2\n3\n"))
	require.ErrorIs(t, err, datafile.ErrRagged)

	_, err = datafile.LoadXY(filepath.Join(t.TempDir(), "dataN.dat"))
	require.ErrorIs(t, err, datafile.ErrNotFound)
}
