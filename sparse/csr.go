package sparse

import (
	"fmt"
	"sort"
)

// New returns an empty rows×cols matrix with no stored entries.
// Zero dimensions are valid. Returns ErrBadDimension on negative input.
// Complexity: O(rows).
func New(rows, cols int) (*CSR, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrBadDimension, rows, cols)
	}
	return &CSR{rows: rows, cols: cols, indptr: make([]int, rows+1)}, nil
}

// FromTriplets builds a rows×cols matrix from coordinate triplets
// (rowIdx[k], colIdx[k]) → vals[k]. Entries repeating the same coordinate
// are summed, mirroring coordinate-format assembly; explicit zeros in the
// input (or produced by summing) are kept until Prune.
//
// Returns ErrBadDimension, ErrTripletLength, or ErrIndexOutOfRange.
// The input slices are not mutated. Complexity: O(nnz·log nnz).
func FromTriplets(rows, cols int, rowIdx, colIdx []int, vals []float64) (*CSR, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrBadDimension, rows, cols)
	}
	if len(rowIdx) != len(colIdx) || len(rowIdx) != len(vals) {
		return nil, fmt.Errorf("%w: got %d/%d/%d", ErrTripletLength, len(rowIdx), len(colIdx), len(vals))
	}
	for k := range rowIdx {
		if rowIdx[k] < 0 || rowIdx[k] >= rows || colIdx[k] < 0 || colIdx[k] >= cols {
			return nil, fmt.Errorf("%w: triplet %d at (%d,%d) outside %d×%d",
				ErrIndexOutOfRange, k, rowIdx[k], colIdx[k], rows, cols)
		}
	}

	// Order entries by (row, col) through an index permutation so the
	// caller's slices stay untouched.
	order := make([]int, len(rowIdx))
	for k := range order {
		order[k] = k
	}
	sort.Slice(order, func(a, b int) bool {
		ka, kb := order[a], order[b]
		if rowIdx[ka] != rowIdx[kb] {
			return rowIdx[ka] < rowIdx[kb]
		}
		return colIdx[ka] < colIdx[kb]
	})

	m := &CSR{
		rows:    rows,
		cols:    cols,
		indptr:  make([]int, rows+1),
		indices: make([]int, 0, len(order)),
		data:    make([]float64, 0, len(order)),
	}
	entryRow := make([]int, 0, len(order))
	for _, k := range order {
		i, j := rowIdx[k], colIdx[k]
		if n := len(m.data); n > 0 && entryRow[n-1] == i && m.indices[n-1] == j {
			m.data[n-1] += vals[k] // duplicate coordinate: accumulate
			continue
		}
		entryRow = append(entryRow, i)
		m.indices = append(m.indices, j)
		m.data = append(m.data, vals[k])
	}
	for _, i := range entryRow {
		m.indptr[i+1]++
	}
	for i := 0; i < rows; i++ {
		m.indptr[i+1] += m.indptr[i]
	}
	return m, nil
}

// FromDense builds a matrix from dense rows, storing only nonzero values.
// A nil or empty slice yields a 0×0 matrix. Returns ErrRagged when rows
// have unequal lengths. Complexity: O(rows·cols).
func FromDense(values [][]float64) (*CSR, error) {
	rows := len(values)
	cols := 0
	if rows > 0 {
		cols = len(values[0])
	}
	m := &CSR{rows: rows, cols: cols, indptr: make([]int, rows+1)}
	for i, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrRagged, i, len(row), cols)
		}
		for j, v := range row {
			if v != 0 {
				m.indices = append(m.indices, j)
				m.data = append(m.data, v)
			}
		}
		m.indptr[i+1] = len(m.indices)
	}
	return m, nil
}

// RowVector builds a 1×len(vals) matrix from a dense slice, storing only
// nonzero values. Handy as the right-hand side of ScaleCols-style
// broadcasts. Complexity: O(len(vals)).
func RowVector(vals []float64) *CSR {
	m := &CSR{rows: 1, cols: len(vals), indptr: make([]int, 2)}
	for j, v := range vals {
		if v != 0 {
			m.indices = append(m.indices, j)
			m.data = append(m.data, v)
		}
	}
	m.indptr[1] = len(m.indices)
	return m
}

// At returns the value at (i, j); missing entries read as 0.
// Returns ErrIndexOutOfRange outside the matrix shape.
// Complexity: O(log nnz(row i)).
func (m *CSR) At(i, j int) (float64, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, fmt.Errorf("%w: (%d,%d) outside %d×%d", ErrIndexOutOfRange, i, j, m.rows, m.cols)
	}
	lo, hi := m.indptr[i], m.indptr[i+1]
	p := lo + sort.SearchInts(m.indices[lo:hi], j)
	if p < hi && m.indices[p] == j {
		return m.data[p], nil
	}
	return 0, nil
}

// Clone returns a deep copy sharing no storage with the receiver.
// Complexity: O(rows + nnz).
func (m *CSR) Clone() *CSR {
	out := &CSR{
		rows:    m.rows,
		cols:    m.cols,
		indptr:  make([]int, len(m.indptr)),
		indices: make([]int, len(m.indices)),
		data:    make([]float64, len(m.data)),
	}
	copy(out.indptr, m.indptr)
	copy(out.indices, m.indices)
	copy(out.data, m.data)
	return out
}

// Triplets returns the stored entries as parallel (row, col, value) slices
// in row-major order. The slices are fresh copies. Complexity: O(rows + nnz).
func (m *CSR) Triplets() (rowIdx, colIdx []int, vals []float64) {
	rowIdx = make([]int, 0, len(m.data))
	colIdx = make([]int, len(m.indices))
	vals = make([]float64, len(m.data))
	copy(colIdx, m.indices)
	copy(vals, m.data)
	for i := 0; i < m.rows; i++ {
		for p := m.indptr[i]; p < m.indptr[i+1]; p++ {
			rowIdx = append(rowIdx, i)
		}
	}
	return rowIdx, colIdx, vals
}

// Dense materializes the matrix as dense rows. Intended for small matrices
// and tests. Complexity: O(rows·cols).
func (m *CSR) Dense() [][]float64 {
	out := make([][]float64, m.rows)
	for i := 0; i < m.rows; i++ {
		out[i] = make([]float64, m.cols)
		for p := m.indptr[i]; p < m.indptr[i+1]; p++ {
			out[i][m.indices[p]] = m.data[p]
		}
	}
	return out
}
