package pascal3d

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// LabelColumns is the width of a label row: three biternions for pan, tilt
// and roll.
const LabelColumns = 6

// BiternionColumns is the width of a single angle array.
const BiternionColumns = 2

// labelRows returns the number of rows in m, treating nil and empty matrices
// as zero rows.
func labelRows(m *mat.Dense) int {
	if m == nil || m.IsEmpty() {
		return 0
	}
	r, _ := m.Dims()
	return r
}

// NewLabels builds the N×6 label matrix from the azimuth (pan), elevation
// (tilt) and tilt (roll) biternion arrays, each N×2.
func NewLabels(azimuth, elevation, tilt *mat.Dense) (*mat.Dense, error) {
	n := labelRows(azimuth)
	arrays := []struct {
		name string
		m    *mat.Dense
	}{
		{"azimuth", azimuth},
		{"elevation", elevation},
		{"tilt", tilt},
	}
	for _, a := range arrays {
		name, m := a.name, a.m
		if labelRows(m) != n {
			return nil, fmt.Errorf("%s has %d rows, azimuth has %d: %w", name, labelRows(m), n, ErrShapeMismatch)
		}
		if n == 0 {
			continue
		}
		if _, c := m.Dims(); c != BiternionColumns {
			return nil, fmt.Errorf("%s has %d columns, want %d: %w", name, c, BiternionColumns, ErrShapeMismatch)
		}
	}
	if n == 0 {
		return &mat.Dense{}, nil
	}

	var panTilt, labels mat.Dense
	panTilt.Augment(azimuth, elevation)
	labels.Augment(&panTilt, tilt)
	return &labels, nil
}

// stackLabels concatenates label matrices vertically. Empty parts are skipped.
func stackLabels(parts []*mat.Dense) (*mat.Dense, error) {
	total, cols := 0, 0
	for _, p := range parts {
		r := labelRows(p)
		if r == 0 {
			continue
		}
		_, c := p.Dims()
		if cols != 0 && c != cols {
			return nil, fmt.Errorf("label width %d differs from %d: %w", c, cols, ErrShapeMismatch)
		}
		cols = c
		total += r
	}
	if total == 0 {
		return &mat.Dense{}, nil
	}

	out := mat.NewDense(total, cols, nil)
	row := 0
	for _, p := range parts {
		for i := 0; i < labelRows(p); i++ {
			out.SetRow(row, p.RawRowView(i))
			row++
		}
	}
	return out, nil
}

// takeRows returns a copy of the rows of m at idx, in idx order.
func takeRows(m *mat.Dense, idx []int) *mat.Dense {
	if len(idx) == 0 || labelRows(m) == 0 {
		return &mat.Dense{}
	}
	_, c := m.Dims()
	out := mat.NewDense(len(idx), c, nil)
	for i, j := range idx {
		out.SetRow(i, m.RawRowView(j))
	}
	return out
}
