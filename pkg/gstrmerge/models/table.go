package models

import "fmt"

// Table is a rectangular block of values with flat column names.
// A nil value marks an absent cell.
type Table struct {
	// SourceFile is the input file the table was extracted from.
	// Empty for concatenated tables.
	SourceFile string `json:"source_file,omitempty"`
	// SourceSheet is the sheet the table was extracted from.
	// Empty for concatenated tables.
	SourceSheet string `json:"source_sheet,omitempty"`
	// Columns holds the column names in output order.
	Columns []string `json:"columns"`
	// Rows holds the values, one slice per row, aligned with Columns.
	Rows [][]interface{} `json:"rows"`
}

// ColumnIndex returns the position of name in Columns, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// AppendColumn adds a column holding the same value in every row.
// An existing column of the same name is renamed with a ".N" suffix so
// the appended column owns name and no data column is shadowed.
func (t *Table) AppendColumn(name string, value interface{}) {
	if i := t.ColumnIndex(name); i >= 0 {
		t.Columns[i] = t.freeName(name)
	}
	t.Columns = append(t.Columns, name)
	for i := range t.Rows {
		t.Rows[i] = append(t.Rows[i], value)
	}
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// freeName returns the first "name.N" not used by any column.
func (t *Table) freeName(name string) string {
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s.%d", name, n)
		if t.ColumnIndex(candidate) < 0 {
			return candidate
		}
	}
}
