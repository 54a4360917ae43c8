package parser

import (
	"fmt"
	"regexp"
	"strings"
)

// unnamedMarker is present in every placeholder produced for a blank header cell.
const unnamedMarker = "Unnamed"

var (
	// A blank lower level leaves a "_Unnamed: 1_level_1" style suffix.
	unnamedSuffix = regexp.MustCompile(`_Unnamed: \d+_level_\d+`)
	// A blank top level leaves an "Unnamed: 0_level_0_" style prefix.
	unnamedPrefix = regexp.MustCompile(`^Unnamed: \d+_level_\d+_`)
)

// placeholder names a blank header cell at column col and header level level.
func placeholder(col, level int) string {
	return fmt.Sprintf("Unnamed: %d_level_%d", col, level)
}

// FlattenColumn joins the header levels of one column into a single name.
// Blank levels must already be replaced by placeholders.
func FlattenColumn(levels []string) string {
	return CleanColumn(strings.TrimSpace(strings.Join(levels, "_")))
}

// CleanColumn removes placeholder artifacts from a joined column name.
// Names without the placeholder marker pass through unchanged, so
// cleaning is idempotent.
func CleanColumn(name string) string {
	if !strings.Contains(name, unnamedMarker) {
		return name
	}
	name = unnamedSuffix.ReplaceAllString(name, "")
	name = unnamedPrefix.ReplaceAllString(name, "")
	return strings.TrimSpace(name)
}

// FlattenHeader turns header rows (one per level, equal width) into flat
// column names. Blank cells get placeholders before joining, and repeated
// names get a ".N" suffix so every column stays addressable by name.
func FlattenHeader(header [][]string) []string {
	if len(header) == 0 {
		return nil
	}
	width := len(header[0])
	names := make([]string, width)
	seen := make(map[string]int, width)

	for col := 0; col < width; col++ {
		levels := make([]string, len(header))
		for lvl, row := range header {
			label := strings.TrimSpace(row[col])
			if label == "" {
				label = placeholder(col, lvl)
			}
			levels[lvl] = label
		}

		name := FlattenColumn(levels)
		if n, dup := seen[name]; dup {
			seen[name] = n + 1
			name = fmt.Sprintf("%s.%d", name, n+1)
		} else {
			seen[name] = 0
		}
		names[col] = name
	}
	return names
}
