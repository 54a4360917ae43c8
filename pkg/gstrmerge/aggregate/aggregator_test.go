package aggregate

import (
	"testing"

	"github.com/ukaji3/gstrmerge-go/pkg/gstrmerge/models"
)

func table(sheet string, ids ...int64) *models.Table {
	t := &models.Table{SourceSheet: sheet, Columns: []string{"id"}}
	for _, id := range ids {
		t.Rows = append(t.Rows, []interface{}{id})
	}
	return t
}

func TestParseMode(t *testing.T) {
	for _, m := range Modes {
		got, err := ParseMode(string(m))
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %q, %v", m, got, err)
		}
	}
	if _, err := ParseMode("by-state"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestKeyFor(t *testing.T) {
	tests := []struct {
		mode     Mode
		expected string
	}{
		{ModeFlat, "none"},
		{ModeSheet, "B2B"},
		{ModeState, "27"},
		{ModeStateSheet, "27/B2B"},
	}

	for _, tt := range tests {
		if got := tt.mode.KeyFor("27", "B2B").String(); got != tt.expected {
			t.Errorf("%s KeyFor = %q, expected %q", tt.mode, got, tt.expected)
		}
	}
}

func TestAggregatorFlat(t *testing.T) {
	a := New(ModeFlat)
	if !a.Empty() {
		t.Fatal("new aggregator should be empty")
	}
	a.Add(table("B2B", 1, 2), "27")
	a.Add(table("CDNR", 3), "36")

	buckets := a.Buckets()
	if len(buckets) != 1 {
		t.Fatalf("Expected 1 bucket, got %d", len(buckets))
	}
	if buckets[0].Rows() != 3 {
		t.Errorf("Expected 3 rows, got %d", buckets[0].Rows())
	}

	groups := a.Groups()
	if len(groups) != 1 || len(groups[0].Sheets) != 1 {
		t.Fatalf("Expected one group with one sheet, got %+v", groups)
	}
	merged := groups[0].Sheets[0].Table
	for i, want := range []int64{1, 2, 3} {
		if merged.Rows[i][0] != want {
			t.Errorf("row %d = %v, expected %d", i, merged.Rows[i][0], want)
		}
	}
}

func TestAggregatorSheet(t *testing.T) {
	a := New(ModeSheet)
	a.Add(table("B2B", 1), "27")
	a.Add(table("CDNR", 2), "27")
	a.Add(table("B2B", 3), "36")

	groups := a.Groups()
	if len(groups) != 1 {
		t.Fatalf("Expected 1 group, got %d", len(groups))
	}
	sheets := groups[0].Sheets
	if len(sheets) != 2 || sheets[0].Name != "B2B" || sheets[1].Name != "CDNR" {
		t.Fatalf("unexpected sheets %+v", sheets)
	}
	if sheets[0].Table.Len() != 2 {
		t.Errorf("B2B rows = %d, expected 2", sheets[0].Table.Len())
	}
}

func TestAggregatorState(t *testing.T) {
	a := New(ModeState)
	a.Add(table("B2B", 1), "27")
	a.Add(table("CDNR", 2), "27")
	a.Add(table("B2B", 3), "36")

	groups := a.Groups()
	if len(groups) != 2 || groups[0].Name != "27" || groups[1].Name != "36" {
		t.Fatalf("unexpected groups %+v", groups)
	}
	if len(groups[0].Sheets) != 1 || groups[0].Sheets[0].Table.Len() != 2 {
		t.Errorf("state 27 should merge both sheets into one table, got %+v", groups[0].Sheets)
	}
	if groups[0].Sheets[0].Name != "" {
		t.Errorf("state mode sheet name = %q, expected empty", groups[0].Sheets[0].Name)
	}
}

func TestAggregatorStateSheet(t *testing.T) {
	a := New(ModeStateSheet)
	a.Add(table("CDNR", 1), "27")
	a.Add(table("CDNR", 2), "36")
	a.Add(table("B2B", 3), "27")

	groups := a.Groups()
	if len(groups) != 2 {
		t.Fatalf("Expected 2 groups, got %d", len(groups))
	}
	if n := len(groups[0].Sheets); n != 2 {
		t.Errorf("state 27 sheets = %d, expected 2", n)
	}
	if groups[1].Sheets[0].Name != "CDNR" {
		t.Errorf("state 36 sheet = %q, expected CDNR", groups[1].Sheets[0].Name)
	}
}
