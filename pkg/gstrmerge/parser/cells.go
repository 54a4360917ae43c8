package parser

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// cellValue converts one cell to the value stored in a table.
// Numeric cells become int64 or float64 unless their display text is
// not a number (dates, percentages), in which case the display text is kept.
// Text cells always stay text so identifiers like "00123" survive.
func cellValue(raw, formatted string, typ excelize.CellType) interface{} {
	if formatted == "" && raw == "" {
		return nil
	}
	if typ != excelize.CellTypeNumber && typ != excelize.CellTypeUnset {
		return formatted
	}
	v := parseValue(raw)
	if _, isText := v.(string); isText {
		return formatted
	}
	if _, isText := parseValue(strings.ReplaceAll(formatted, ",", "")).(string); isText {
		return formatted
	}
	return v
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
