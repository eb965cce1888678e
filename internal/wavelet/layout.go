package wavelet

// Subband identifies one rectangular region of a decomposed CoefficientPlane.
type Subband struct {
	// Row0, Col0 is the top-left corner of the subband rectangle.
	Row0, Col0 int
	// Rows, Cols is the subband's extent.
	Rows, Cols int
}

// ScanOrder returns the subband rectangles of a single-channel
// CoefficientPlane of size height x width after an L-level forward 5/3
// decomposition, in the scan order fixed by the format: the LL subband at
// the coarsest level, then for each level from L down to 1 the LH, HL, HH
// detail subbands at that level.
//
// The rectangles follow the same row/column convention as the reference
// decomposition: LH occupies the low-column, high-row quadrant; HL the
// high-column, low-row quadrant; HH the high-row, high-column quadrant.
func ScanOrder(height, width, levels int) []Subband {
	sbs := make([]Subband, 0, 1+3*levels)

	rowsL := height >> levels
	colsL := width >> levels
	sbs = append(sbs, Subband{Row0: 0, Col0: 0, Rows: rowsL, Cols: colsL})

	for lvl := levels; lvl >= 1; lvl-- {
		rows := height >> lvl
		cols := width >> lvl
		sbs = append(sbs,
			Subband{Row0: rows, Col0: 0, Rows: rows, Cols: cols},        // LH
			Subband{Row0: 0, Col0: cols, Rows: rows, Cols: cols},        // HL
			Subband{Row0: rows, Col0: cols, Rows: rows, Cols: cols},     // HH
		)
	}

	return sbs
}
