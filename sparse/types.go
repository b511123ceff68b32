package sparse

// CSR is a matrix in compressed sparse row form.
//
// Storage invariants:
//
//   - len(indptr) == rows+1, indptr[0] == 0, indptr is non-decreasing.
//   - Row i owns entries indices[indptr[i]:indptr[i+1]] and the aligned
//     slice of data; column indices are strictly increasing within a row.
//   - Stored values may be exact zeros until Prune is called.
//
// The zero value is not usable; build instances through the constructors.
type CSR struct {
	rows, cols int
	indptr     []int     // row start offsets, len rows+1
	indices    []int     // column index per stored entry
	data       []float64 // value per stored entry
}

// Rows returns the number of rows. Complexity: O(1).
func (m *CSR) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *CSR) Cols() int { return m.cols }

// NNZ returns the number of stored entries, counting explicit zeros.
// Complexity: O(1).
func (m *CSR) NNZ() int { return len(m.data) }
