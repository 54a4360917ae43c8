package aggregate

import (
	"github.com/ukaji3/gstrmerge-go/pkg/gstrmerge/models"
)

// Concat stacks tables vertically. The output columns are the union of the
// input columns in first-seen order; cells of a column a table lacks are nil.
// Rows keep their input order.
func Concat(tables []*models.Table) *models.Table {
	out := &models.Table{}
	pos := make(map[string]int)
	total := 0

	for _, t := range tables {
		for _, c := range t.Columns {
			if _, ok := pos[c]; !ok {
				pos[c] = len(out.Columns)
				out.Columns = append(out.Columns, c)
			}
		}
		total += t.Len()
	}

	out.Rows = make([][]interface{}, 0, total)
	for _, t := range tables {
		for _, row := range t.Rows {
			merged := make([]interface{}, len(out.Columns))
			for i, c := range t.Columns {
				if i < len(row) {
					merged[pos[c]] = row[i]
				}
			}
			out.Rows = append(out.Rows, merged)
		}
	}
	return out
}
