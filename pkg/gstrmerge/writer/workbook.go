// Package writer serializes merged tables into workbooks and archives.
package writer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/gstrmerge-go/pkg/gstrmerge/aggregate"
	"github.com/ukaji3/gstrmerge-go/pkg/gstrmerge/models"
	"github.com/xuri/excelize/v2"
)

// ErrNoData indicates there is nothing to serialize.
var ErrNoData = errors.New("no data to write")

// maxSheetNameLen is the longest sheet name Excel accepts.
const maxSheetNameLen = 31

// WriteTable serializes one table as a single-sheet workbook.
func WriteTable(t *models.Table, sheetName string) ([]byte, error) {
	if t == nil {
		return nil, ErrNoData
	}
	return WriteSheets([]aggregate.Sheet{{Name: sheetName, Table: t}}, sheetName)
}

// WriteSheets serializes each table as its own sheet of one workbook.
// Sheets without a name are written under defaultName.
func WriteSheets(sheets []aggregate.Sheet, defaultName string) ([]byte, error) {
	if len(sheets) == 0 {
		return nil, ErrNoData
	}

	f := excelize.NewFile()
	defer f.Close()

	first := f.GetSheetName(0)
	used := make(map[string]bool)
	for i, s := range sheets {
		if s.Table == nil {
			return nil, fmt.Errorf("sheet %q: %w", s.Name, ErrNoData)
		}
		name := s.Name
		if name == "" {
			name = defaultName
		}
		name = uniqueSheetName(sanitizeSheetName(name), used)

		if i == 0 {
			if err := f.SetSheetName(first, name); err != nil {
				return nil, fmt.Errorf("rename sheet %q: %w", name, err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("create sheet %q: %w", name, err)
		}
		if err := writeRows(f, name, s.Table); err != nil {
			return nil, fmt.Errorf("write sheet %q: %w", name, err)
		}
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// writeRows streams the header and data rows of t into sheet.
func writeRows(f *excelize.File, sheet string, t *models.Table) error {
	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return err
	}

	header := make([]interface{}, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c
	}
	if err := sw.SetRow("A1", header); err != nil {
		return err
	}

	for i, row := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, row); err != nil {
			return err
		}
	}
	return sw.Flush()
}

// sanitizeSheetName replaces characters Excel rejects and truncates the name.
func sanitizeSheetName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '_'
		}
		return r
	}, strings.TrimSpace(name))
	name = strings.Trim(name, "'")
	if name == "" {
		name = "Sheet"
	}
	if r := []rune(name); len(r) > maxSheetNameLen {
		name = string(r[:maxSheetNameLen])
	}
	return name
}

// uniqueSheetName appends a counter when name (case-insensitively) is taken.
func uniqueSheetName(name string, used map[string]bool) string {
	candidate := name
	for n := 2; used[strings.ToLower(candidate)]; n++ {
		suffix := fmt.Sprintf("_%d", n)
		base := []rune(name)
		if len(base)+len(suffix) > maxSheetNameLen {
			base = base[:maxSheetNameLen-len(suffix)]
		}
		candidate = string(base) + suffix
	}
	used[strings.ToLower(candidate)] = true
	return candidate
}
