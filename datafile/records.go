// Package datafile loads the plain-text numeric tables written by the
// Laplace and wave solvers.
//
// A file holds one record per line with whitespace separated numbers and no
// header. Blank lines are skipped and '#' starts a comment that runs to the
// end of the line.
package datafile

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// maxLine bounds the length of a single record; wide grids can exceed the
// scanner default.
const maxLine = 16 << 20

// table holds the non-empty records of a file with the line each came
// from.
type table struct {
	path    string
	records [][]string
	lines   []int
}

func (t *table) cols() int { return len(t.records[0]) }

func readTable(path string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, err
	}
	defer f.Close()

	t := &table{path: path}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		if len(t.records) > 0 && len(fields) != t.cols() {
			return nil, fmt.Errorf("%s:%d: %w: got %d, want %d",
				path, line, ErrRagged, len(fields), t.cols())
		}
		t.records = append(t.records, fields)
		t.lines = append(t.lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(t.records) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmpty, path)
	}
	return t, nil
}

// frame loads the records into a data frame of float columns with the
// given names. gota reads unparsable tokens as NaN, so any NaN or infinite
// cell is reported against its source line.
func (t *table) frame(names []string) (dataframe.DataFrame, error) {
	df := dataframe.LoadRecords(t.records,
		dataframe.HasHeader(false),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.Float),
		dataframe.Names(names...),
	)
	if df.Err != nil {
		return df, fmt.Errorf("%s: %w", t.path, df.Err)
	}
	for j, name := range names {
		for i, v := range df.Col(name).Float() {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return df, fmt.Errorf("%s:%d: %w: %q",
					t.path, t.lines[i], ErrNotNumeric, t.records[i][j])
			}
		}
	}
	return df, nil
}
