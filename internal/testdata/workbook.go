// Package testdata builds GSTR-2B style workbooks in memory for tests.
package testdata

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Sheet is one sheet of a generated workbook. Rows start at A1.
type Sheet struct {
	Name   string
	Rows   [][]interface{}
	Merges [][2]string
}

// B2BColumns are the flat column names a B2B sheet from DataSheet yields.
var B2BColumns = []string{
	"GSTIN of supplier",
	"Trade/Legal name",
	"Invoice details_Invoice number",
	"Invoice details_Invoice Date",
	"Invoice details_Invoice Value(₹)",
	"Integrated Tax(₹)",
}

// DataSheet returns a sheet laid out like a GSTR-2B data sheet: four title
// rows, a two-row header with a merged "Invoice details" group, then n rows.
// The GSTIN column starts with state, and invoice numbers carry prefix.
func DataSheet(name, state, prefix string, n int) Sheet {
	s := Sheet{
		Name: name,
		Rows: [][]interface{}{
			{"Goods and Services Tax - GSTR-2B"},
			{},
			{"Financial Year", "2024-25"},
			{},
			{"GSTIN of supplier", "Trade/Legal name", "Invoice details", nil, nil, "Integrated Tax(₹)"},
			{nil, nil, "Invoice number", "Invoice Date", "Invoice Value(₹)", nil},
		},
		Merges: [][2]string{{"A5", "A6"}, {"B5", "B6"}, {"C5", "E5"}, {"F5", "F6"}},
	}
	for i := 0; i < n; i++ {
		s.Rows = append(s.Rows, []interface{}{
			fmt.Sprintf("%sAAACN%04dF1Z5", state, i),
			fmt.Sprintf("Supplier %d", i),
			fmt.Sprintf("%s-%03d", prefix, i),
			"01-04-2024",
			1000.5 + float64(i),
			int64(180 + i),
		})
	}
	return s
}

// ReadMe returns a non-data sheet with free text only.
func ReadMe(name string) Sheet {
	return Sheet{
		Name: name,
		Rows: [][]interface{}{
			{"Goods and Services Tax - GSTR-2B"},
			{"This sheet explains the statement."},
		},
	}
}

// Workbook serializes sheets into xlsx bytes.
func Workbook(sheets ...Sheet) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), s.Name); err != nil {
				return nil, err
			}
		} else if _, err := f.NewSheet(s.Name); err != nil {
			return nil, err
		}

		for r, row := range s.Rows {
			if len(row) == 0 {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				return nil, err
			}
			values := row
			if err := f.SetSheetRow(s.Name, cell, &values); err != nil {
				return nil, err
			}
		}
		for _, m := range s.Merges {
			if err := f.MergeCell(s.Name, m[0], m[1]); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
