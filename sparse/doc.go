// Package sparse implements compressed sparse row (CSR) matrices for the
// event × exposure impact algebra used across this library.
//
// Hazard footprints are huge and mostly empty: a single event touches a
// handful of the centroids it is defined over. CSR stores only the nonzero
// entries of each row, so elementwise products, row-vector broadcasts and
// frequency-weighted reductions all run in O(nnz) instead of O(rows·cols).
//
// The core type is CSR. Construct it with:
//
//   - New(rows, cols)                — empty matrix of a given shape
//   - FromTriplets(rows, cols, ...)  — coordinate triplets, duplicates summed
//   - FromDense(values)              — dense rows, zeros dropped
//   - RowVector(vals)                — 1×n convenience for broadcasts
//
// Operations split into three groups:
//
//   - Elementwise:  MulElem (intersecting Hadamard product), Sub (union
//     difference), ScaleCols (row-vector broadcast), Apply, ClipCols, Prune.
//   - Reductions:   RowSums, ColSumsWeighted.
//   - Structure:    SelectRows, SelectCols (duplicate-tolerant gather),
//     VStack, Clone, Triplets, Dense.
//
// Unless documented otherwise, operations return fresh matrices and never
// mutate their operands; Apply, ClipCols and Prune work in place. Stored
// entries may be exact zeros (arithmetic can cancel); Prune removes them.
//
// # Errors
//
//	ErrBadDimension    - negative matrix dimension.
//	ErrShapeMismatch   - operand shapes disagree.
//	ErrVectorLength    - vector length does not match the relevant dimension.
//	ErrTripletLength   - triplet slices have unequal lengths.
//	ErrIndexOutOfRange - row or column index outside the matrix shape.
//	ErrRagged          - dense input rows have unequal lengths.
//	ErrEmptyStack      - VStack called with no matrices.
package sparse
