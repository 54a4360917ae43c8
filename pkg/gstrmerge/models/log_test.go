package models

import (
	"strings"
	"testing"
)

func TestLogEntryString(t *testing.T) {
	tests := []struct {
		entry    LogEntry
		contains []string
	}{
		{LogEntry{FileName: "a.xlsx", Status: StatusSuccess, Sheets: []string{"B2B", "CDNR"}}, []string{"OK", "a.xlsx", "B2B, CDNR"}},
		{LogEntry{FileName: "b.xlsx", Status: StatusPartialSuccess, Sheets: []string{"B2B"}, Errors: []string{"bad IMPG"}}, []string{"PARTIAL", "bad IMPG"}},
		{LogEntry{FileName: "c.xlsx", Status: StatusSkippedNoData}, []string{"SKIPPED", "no data"}},
		{LogEntry{FileName: "d.xlsx", Status: StatusSkippedBadName}, []string{"SKIPPED", "state code"}},
		{LogEntry{FileName: "e.xlsx", Status: StatusFailed, Errors: []string{"zip: not a valid zip file"}}, []string{"FAILED", "not a valid zip"}},
	}

	for _, tt := range tests {
		line := tt.entry.String()
		for _, want := range tt.contains {
			if !strings.Contains(line, want) {
				t.Errorf("%s line %q does not contain %q", tt.entry.Status, line, want)
			}
		}
	}
}

func TestProcessLog(t *testing.T) {
	log := ProcessLog{
		{FileName: "a.xlsx", Status: StatusSuccess, Sheets: []string{"B2B"}},
		{FileName: "b.xlsx", Status: StatusSuccess, Sheets: []string{"B2B"}},
		{FileName: "c.xlsx", Status: StatusSkippedNoData},
	}

	if n := log.Count(StatusSuccess); n != 2 {
		t.Errorf("Count(success) = %d, expected 2", n)
	}
	if n := log.Count(StatusFailed); n != 0 {
		t.Errorf("Count(failed) = %d, expected 0", n)
	}
	lines := log.Lines()
	if len(lines) != 3 || !strings.HasPrefix(lines[2], "SKIPPED c.xlsx") {
		t.Errorf("Lines() = %q", lines)
	}
}

func TestTableAppendColumn(t *testing.T) {
	table := &Table{Columns: []string{"id"}, Rows: [][]interface{}{{int64(1)}, {int64(2)}}}

	table.AppendColumn("Original_Filename", "a.xlsx")

	if table.ColumnIndex("Original_Filename") != 1 {
		t.Fatalf("Columns = %v", table.Columns)
	}
	for i, row := range table.Rows {
		if len(row) != 2 || row[1] != "a.xlsx" {
			t.Errorf("row %d = %v", i, row)
		}
	}
	if table.ColumnIndex("missing") != -1 {
		t.Error("ColumnIndex of missing column should be -1")
	}
}

func TestTableAppendColumnRenamesClash(t *testing.T) {
	table := &Table{
		Columns: []string{"GSTIN", "Original_Filename", "Original_Filename.1"},
		Rows:    [][]interface{}{{"27X", "upstream.json", "older.json"}},
	}

	table.AppendColumn("Original_Filename", "a.xlsx")

	want := []string{"GSTIN", "Original_Filename.2", "Original_Filename.1", "Original_Filename"}
	if strings.Join(table.Columns, "|") != strings.Join(want, "|") {
		t.Fatalf("Columns = %q, expected %q", table.Columns, want)
	}
	row := table.Rows[0]
	if row[1] != "upstream.json" || row[3] != "a.xlsx" {
		t.Errorf("row = %v", row)
	}
}
