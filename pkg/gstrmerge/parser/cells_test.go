package parser

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"hello", "hello"},
		{"", ""},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}

func TestCellValue(t *testing.T) {
	tests := []struct {
		raw       string
		formatted string
		typ       excelize.CellType
		expected  interface{}
	}{
		{"", "", excelize.CellTypeUnset, nil},
		{"100", "100", excelize.CellTypeUnset, int64(100)},
		{"1234.5", "1,234.50", excelize.CellTypeNumber, 1234.5},
		{"45383", "04-01-24", excelize.CellTypeUnset, "04-01-24"},
		{"00123", "00123", excelize.CellTypeSharedString, "00123"},
		{"27AAACN1234F1Z5", "27AAACN1234F1Z5", excelize.CellTypeSharedString, "27AAACN1234F1Z5"},
		{"1", "TRUE", excelize.CellTypeBool, "TRUE"},
	}

	for _, tt := range tests {
		result := cellValue(tt.raw, tt.formatted, tt.typ)
		if result != tt.expected {
			t.Errorf("cellValue(%q, %q) = %v (type: %T), expected %v (type: %T)",
				tt.raw, tt.formatted, result, result, tt.expected, tt.expected)
		}
	}
}
