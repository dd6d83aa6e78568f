package linalg

// Reduce performs Gauss-Jordan row reduction (§4.3) on aug, searching for
// pivots only among the first pivotCols logical columns (so callers can
// restrict pivoting to, e.g., just the main matrix's columns while still
// broadcasting every row operation across aug's main and other
// matrices). Columns beyond pivotCols are never chosen as pivots but are
// still updated by every row operation.
//
// Returns a pivot map of length pivotCols: pivot[c] is the row holding
// column c's pivot, or -1 if no nonzero entry was found at or below the
// row cursor (the column is left unreduced and the cursor does not
// advance).
func Reduce(aug *AugmentedMatrix, pivotCols int) []int {
	pivot := make([]int, pivotCols)
	height := aug.Height()
	cursor := 0

	for col := 0; col < pivotCols; col++ {
		pivotRow := -1
		for r := cursor; r < height; r++ {
			if !aug.Get(col, r).IsZero() {
				pivotRow = r
				break
			}
		}
		if pivotRow < 0 {
			pivot[col] = -1
			continue
		}

		if pivotRow != cursor {
			aug.SwapRows(pivotRow, cursor)
		}

		pivotVal := aug.Get(col, cursor)
		inv, err := pivotVal.Inv()
		if err != nil {
			// pivotVal was checked non-zero above; Inv cannot fail.
			panic(err)
		}
		aug.ScaleRow(cursor, inv)

		for r := 0; r < height; r++ {
			if r == cursor {
				continue
			}
			factor := aug.Get(col, r)
			if factor.IsZero() {
				continue
			}
			aug.AddScaledRow(r, cursor, factor.Neg())
		}

		pivot[col] = cursor
		cursor++
	}

	return pivot
}
