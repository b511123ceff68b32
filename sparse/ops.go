package sparse

import (
	"fmt"
	"sort"
)

// MulElem returns the elementwise (Hadamard) product m ⊙ b. Only
// coordinates stored in both operands can be nonzero, so the result
// pattern is the intersection of the operand patterns.
//
// Returns ErrShapeMismatch when shapes differ.
// Complexity: O(nnz(m) + nnz(b)).
func (m *CSR) MulElem(b *CSR) (*CSR, error) {
	if m.rows != b.rows || m.cols != b.cols {
		return nil, fmt.Errorf("%w: %d×%d vs %d×%d", ErrShapeMismatch, m.rows, m.cols, b.rows, b.cols)
	}
	out := &CSR{rows: m.rows, cols: m.cols, indptr: make([]int, m.rows+1)}
	for i := 0; i < m.rows; i++ {
		pa, ea := m.indptr[i], m.indptr[i+1]
		pb, eb := b.indptr[i], b.indptr[i+1]
		for pa < ea && pb < eb {
			switch {
			case m.indices[pa] < b.indices[pb]:
				pa++
			case m.indices[pa] > b.indices[pb]:
				pb++
			default:
				out.indices = append(out.indices, m.indices[pa])
				out.data = append(out.data, m.data[pa]*b.data[pb])
				pa++
				pb++
			}
		}
		out.indptr[i+1] = len(out.indices)
	}
	return out, nil
}

// Sub returns the elementwise difference m − b over the union of both
// patterns. Entries that cancel exactly stay stored as explicit zeros;
// call Prune to drop them.
//
// Returns ErrShapeMismatch when shapes differ.
// Complexity: O(nnz(m) + nnz(b)).
func (m *CSR) Sub(b *CSR) (*CSR, error) {
	if m.rows != b.rows || m.cols != b.cols {
		return nil, fmt.Errorf("%w: %d×%d vs %d×%d", ErrShapeMismatch, m.rows, m.cols, b.rows, b.cols)
	}
	out := &CSR{rows: m.rows, cols: m.cols, indptr: make([]int, m.rows+1)}
	for i := 0; i < m.rows; i++ {
		pa, ea := m.indptr[i], m.indptr[i+1]
		pb, eb := b.indptr[i], b.indptr[i+1]
		for pa < ea || pb < eb {
			switch {
			case pb >= eb || (pa < ea && m.indices[pa] < b.indices[pb]):
				out.indices = append(out.indices, m.indices[pa])
				out.data = append(out.data, m.data[pa])
				pa++
			case pa >= ea || b.indices[pb] < m.indices[pa]:
				out.indices = append(out.indices, b.indices[pb])
				out.data = append(out.data, -b.data[pb])
				pb++
			default:
				out.indices = append(out.indices, m.indices[pa])
				out.data = append(out.data, m.data[pa]-b.data[pb])
				pa++
				pb++
			}
		}
		out.indptr[i+1] = len(out.indices)
	}
	return out, nil
}

// ScaleCols returns a copy of m with every stored entry (i, j) multiplied
// by w[j]. This is the broadcast of a dense row vector across all rows.
// Entries scaled to zero stay stored; call Prune to drop them.
//
// Returns ErrVectorLength when len(w) != Cols().
// Complexity: O(nnz).
func (m *CSR) ScaleCols(w []float64) (*CSR, error) {
	if len(w) != m.cols {
		return nil, fmt.Errorf("%w: got %d, want %d columns", ErrVectorLength, len(w), m.cols)
	}
	out := m.Clone()
	for p, j := range out.indices {
		out.data[p] *= w[j]
	}
	return out, nil
}

// Apply replaces every stored entry v with fn(v), in place. The sparsity
// pattern is unchanged even when fn maps values to zero; note that fn(0)
// is never evaluated for missing entries. Complexity: O(nnz).
func (m *CSR) Apply(fn func(float64) float64) {
	for p := range m.data {
		m.data[p] = fn(m.data[p])
	}
}

// ClipCols limits every stored entry (i, j) to the range [lo, hi[j]], in
// place. When hi[j] < lo the upper bound wins. Missing entries are
// untouched, so a positive lo does not densify the matrix.
//
// Returns ErrVectorLength when len(hi) != Cols().
// Complexity: O(nnz).
func (m *CSR) ClipCols(lo float64, hi []float64) error {
	if len(hi) != m.cols {
		return fmt.Errorf("%w: got %d, want %d columns", ErrVectorLength, len(hi), m.cols)
	}
	for p, j := range m.indices {
		v := m.data[p]
		if v < lo {
			v = lo
		}
		if h := hi[j]; v > h {
			v = h
		}
		m.data[p] = v
	}
	return nil
}

// Prune removes stored entries whose value is exactly zero, in place.
// Complexity: O(rows + nnz).
func (m *CSR) Prune() {
	nz := 0
	for i := 0; i < m.rows; i++ {
		begin, end := m.indptr[i], m.indptr[i+1]
		m.indptr[i] = nz
		for p := begin; p < end; p++ {
			if m.data[p] != 0 {
				m.indices[nz] = m.indices[p]
				m.data[nz] = m.data[p]
				nz++
			}
		}
	}
	m.indptr[m.rows] = nz
	m.indices = m.indices[:nz]
	m.data = m.data[:nz]
}

// RowSums returns the sum of stored entries per row.
// Complexity: O(rows + nnz).
func (m *CSR) RowSums() []float64 {
	sums := make([]float64, m.rows)
	for i := 0; i < m.rows; i++ {
		s := 0.0
		for p := m.indptr[i]; p < m.indptr[i+1]; p++ {
			s += m.data[p]
		}
		sums[i] = s
	}
	return sums
}

// ColSumsWeighted returns, per column j, the sum over rows i of
// w[i]·m[i,j]. With event frequencies as weights this is the expected
// annual impact per column.
//
// Returns ErrVectorLength when len(w) != Rows().
// Complexity: O(rows + nnz).
func (m *CSR) ColSumsWeighted(w []float64) ([]float64, error) {
	if len(w) != m.rows {
		return nil, fmt.Errorf("%w: got %d, want %d rows", ErrVectorLength, len(w), m.rows)
	}
	sums := make([]float64, m.cols)
	for i := 0; i < m.rows; i++ {
		wi := w[i]
		for p := m.indptr[i]; p < m.indptr[i+1]; p++ {
			sums[m.indices[p]] += wi * m.data[p]
		}
	}
	return sums, nil
}

// SelectRows returns a new matrix whose k-th row is row idx[k] of m.
// Indices may repeat and appear in any order.
//
// Returns ErrIndexOutOfRange on invalid indices.
// Complexity: O(len(idx) + nnz of the selected rows).
func (m *CSR) SelectRows(idx []int) (*CSR, error) {
	for k, i := range idx {
		if i < 0 || i >= m.rows {
			return nil, fmt.Errorf("%w: row %d at position %d outside %d", ErrIndexOutOfRange, i, k, m.rows)
		}
	}
	out := &CSR{rows: len(idx), cols: m.cols, indptr: make([]int, len(idx)+1)}
	for k, i := range idx {
		out.indices = append(out.indices, m.indices[m.indptr[i]:m.indptr[i+1]]...)
		out.data = append(out.data, m.data[m.indptr[i]:m.indptr[i+1]]...)
		out.indptr[k+1] = len(out.indices)
	}
	return out, nil
}

// SelectCols returns a new matrix whose k-th column is column idx[k] of m.
// Indices may repeat and appear in any order, so the same source column
// can be gathered into several output columns.
//
// Returns ErrIndexOutOfRange on invalid indices.
// Complexity: O(nnz + nnz_out·log nnz_out) worst case.
func (m *CSR) SelectCols(idx []int) (*CSR, error) {
	for k, j := range idx {
		if j < 0 || j >= m.cols {
			return nil, fmt.Errorf("%w: column %d at position %d outside %d", ErrIndexOutOfRange, j, k, m.cols)
		}
	}
	// Output positions per selected source column.
	pos := make(map[int][]int, len(idx))
	for k, j := range idx {
		pos[j] = append(pos[j], k)
	}
	out := &CSR{rows: m.rows, cols: len(idx), indptr: make([]int, m.rows+1)}
	type entry struct {
		col int
		val float64
	}
	var buf []entry
	for i := 0; i < m.rows; i++ {
		buf = buf[:0]
		for p := m.indptr[i]; p < m.indptr[i+1]; p++ {
			for _, k := range pos[m.indices[p]] {
				buf = append(buf, entry{col: k, val: m.data[p]})
			}
		}
		sort.Slice(buf, func(a, b int) bool { return buf[a].col < buf[b].col })
		for _, e := range buf {
			out.indices = append(out.indices, e.col)
			out.data = append(out.data, e.val)
		}
		out.indptr[i+1] = len(out.indices)
	}
	return out, nil
}

// VStack stacks matrices vertically in argument order. All operands must
// share the same column count.
//
// Returns ErrEmptyStack with no operands, ErrShapeMismatch on column
// disagreement. Complexity: O(total rows + total nnz).
func VStack(mats ...*CSR) (*CSR, error) {
	if len(mats) == 0 {
		return nil, ErrEmptyStack
	}
	cols := mats[0].cols
	rows := 0
	nnz := 0
	for k, m := range mats {
		if m.cols != cols {
			return nil, fmt.Errorf("%w: operand %d has %d columns, want %d", ErrShapeMismatch, k, m.cols, cols)
		}
		rows += m.rows
		nnz += len(m.data)
	}
	out := &CSR{
		rows:    rows,
		cols:    cols,
		indptr:  make([]int, 1, rows+1),
		indices: make([]int, 0, nnz),
		data:    make([]float64, 0, nnz),
	}
	for _, m := range mats {
		base := len(out.data)
		out.indices = append(out.indices, m.indices...)
		out.data = append(out.data, m.data...)
		for i := 1; i <= m.rows; i++ {
			out.indptr = append(out.indptr, base+m.indptr[i])
		}
	}
	return out, nil
}
