package parser

// columnSpan returns the number of columns up to and including the
// right-most non-empty cell across rows.
func columnSpan(rows [][]string) int {
	maxCol := -1
	for _, row := range rows {
		for colIdx := len(row) - 1; colIdx > maxCol; colIdx-- {
			if row[colIdx] != "" {
				maxCol = colIdx
				break
			}
		}
	}
	return maxCol + 1
}

// isBlankRow reports whether every cell in row is empty.
func isBlankRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}

// padRow returns row resized to width, filling missing cells with "".
func padRow(row []string, width int) []string {
	out := make([]string, width)
	copy(out, row)
	return out
}
