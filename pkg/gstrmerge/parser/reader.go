// Package parser reads GSTR-2B style workbooks into flat tables.
package parser

import (
	"bytes"
	"fmt"

	"github.com/ukaji3/gstrmerge-go/pkg/gstrmerge/models"
	"github.com/xuri/excelize/v2"
)

// HeaderLayout describes where the table header sits on a sheet.
type HeaderLayout struct {
	// SkipRows is the number of leading rows ignored before the header.
	SkipRows int
	// Levels is the number of header rows combined into one column name.
	Levels int
}

// DefaultHeaderLayout returns the GSTR-2B layout: four title rows
// followed by a two-row composite header.
func DefaultHeaderLayout() HeaderLayout {
	return HeaderLayout{
		SkipRows: 4,
		Levels:   2,
	}
}

// Workbook is an opened input workbook.
type Workbook struct {
	name string
	f    *excelize.File
}

// OpenWorkbook opens an in-memory workbook.
// Any failure is reported as ErrFileOpen.
func OpenWorkbook(in models.InputFile) (*Workbook, error) {
	f, err := excelize.OpenReader(bytes.NewReader(in.Data))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrFileOpen, in.Name, err)
	}
	return &Workbook{name: in.Name, f: f}, nil
}

// Name returns the input file name.
func (w *Workbook) Name() string {
	return w.name
}

// SheetNames returns the sheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	return w.f.GetSheetList()
}

// Close releases the workbook.
func (w *Workbook) Close() error {
	return w.f.Close()
}

// ExtractTable reads one sheet as a table using the given header layout.
// The returned table carries the workbook and sheet names as its source.
// Layout problems are reported as a *SheetError matching ErrSheetRead.
func (w *Workbook) ExtractTable(sheet string, layout HeaderLayout) (*models.Table, error) {
	if layout.SkipRows < 0 || layout.Levels < 1 {
		return nil, newSheetError(w.name, sheet, "invalid header layout %+v", layout)
	}

	formatted, err := w.f.GetRows(sheet)
	if err != nil {
		return nil, wrapSheetError(w.name, sheet, err)
	}
	raw, err := w.f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, wrapSheetError(w.name, sheet, err)
	}

	headerEnd := layout.SkipRows + layout.Levels
	if len(formatted) < headerEnd {
		return nil, newSheetError(w.name, sheet, "need at least %d rows, found %d", headerEnd, len(formatted))
	}

	width := columnSpan(formatted[layout.SkipRows:])
	if width == 0 {
		return nil, newSheetError(w.name, sheet, "header rows %d-%d are empty", layout.SkipRows+1, headerEnd)
	}

	header := make([][]string, layout.Levels)
	for lvl := range header {
		header[lvl] = padRow(formatted[layout.SkipRows+lvl], width)
	}
	if isBlankRow(header[0]) && layout.Levels > 1 {
		return nil, newSheetError(w.name, sheet, "top header row %d is empty", layout.SkipRows+1)
	}
	if err := w.spreadMergedHeader(sheet, header, layout.SkipRows); err != nil {
		return nil, wrapSheetError(w.name, sheet, err)
	}

	table := &models.Table{
		SourceFile:  w.name,
		SourceSheet: sheet,
		Columns:     FlattenHeader(header),
	}

	for rowIdx := headerEnd; rowIdx < len(formatted); rowIdx++ {
		text := padRow(formatted[rowIdx], width)
		if isBlankRow(text) {
			continue
		}
		var rawRow []string
		if rowIdx < len(raw) {
			rawRow = padRow(raw[rowIdx], width)
		} else {
			rawRow = text
		}

		values := make([]interface{}, width)
		for colIdx := range values {
			if text[colIdx] == "" && rawRow[colIdx] == "" {
				continue
			}
			typ, err := w.cellType(sheet, colIdx, rowIdx)
			if err != nil {
				return nil, wrapSheetError(w.name, sheet, err)
			}
			values[colIdx] = cellValue(rawRow[colIdx], text[colIdx], typ)
		}
		table.Rows = append(table.Rows, values)
	}

	return table, nil
}

// cellType looks up the stored type of the cell at zero-based coordinates.
func (w *Workbook) cellType(sheet string, colIdx, rowIdx int) (excelize.CellType, error) {
	cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
	if err != nil {
		return excelize.CellTypeUnset, err
	}
	return w.f.GetCellType(sheet, cell)
}

// spreadMergedHeader copies the label of a horizontally merged header cell
// into every column the merge spans, on the merge's first row only.
// A label merged downwards is left alone so the lower level stays blank.
func (w *Workbook) spreadMergedHeader(sheet string, header [][]string, skipRows int) error {
	merged, err := w.f.GetMergeCells(sheet)
	if err != nil {
		return err
	}

	for _, mc := range merged {
		startCol, startRow, err := excelize.CellNameToCoordinates(mc.GetStartAxis())
		if err != nil {
			return err
		}
		endCol, _, err := excelize.CellNameToCoordinates(mc.GetEndAxis())
		if err != nil {
			return err
		}

		lvl := startRow - 1 - skipRows
		if lvl < 0 || lvl >= len(header) {
			continue
		}
		label := mc.GetCellValue()
		row := header[lvl]
		for col := startCol - 1; col < endCol && col < len(row); col++ {
			if row[col] == "" {
				row[col] = label
			}
		}
	}
	return nil
}
