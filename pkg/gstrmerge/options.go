// Package gstrmerge merges GSTR-2B workbook exports into consolidated workbooks.
package gstrmerge

import (
	"log/slog"

	"github.com/ukaji3/gstrmerge-go/pkg/gstrmerge/aggregate"
	"github.com/ukaji3/gstrmerge-go/pkg/gstrmerge/classify"
	"github.com/ukaji3/gstrmerge-go/pkg/gstrmerge/parser"
)

// Mode represents the grouping mode.
type Mode = aggregate.Mode

const (
	// ModeFlat merges every data sheet of every file into one table.
	ModeFlat = aggregate.ModeFlat
	// ModeSheet writes one sheet per sheet name into one workbook.
	ModeSheet = aggregate.ModeSheet
	// ModeState writes one workbook per state code into an archive.
	ModeState = aggregate.ModeState
	// ModeStateSheet writes one workbook per state code, one sheet per sheet name.
	ModeStateSheet = aggregate.ModeStateSheet
)

// MIME types of the produced artifacts.
const (
	MIMEWorkbook = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	MIMEArchive  = "application/zip"
)

// Options configures a merge run.
type Options struct {
	// Mode specifies how tables are grouped.
	Mode Mode
	// Header describes the title rows and composite header of each sheet.
	Header parser.HeaderLayout
	// ExcludedSheets lists non-data sheet names, compared case-insensitively.
	ExcludedSheets []string
	// OnlySheets restricts merging to these sheet names when non-empty.
	OnlySheets []string
	// KeyExtractor derives the state code from a file name.
	// If nil, the "_" delimited two-character rule is used.
	KeyExtractor classify.KeyExtractor
	// FileColumn and SheetColumn name the trace columns appended to each table.
	FileColumn  string
	SheetColumn string
	// TableFilename is the artifact name in flat mode.
	TableFilename string
	// WorkbookFilename is the artifact name in sheet mode.
	WorkbookFilename string
	// ArchiveFilename is the artifact name in state modes.
	ArchiveFilename string
	// EntryPattern is the fmt pattern of archive entry names, given the state code.
	EntryPattern string
	// SheetName is the sheet name used for a single merged table.
	SheetName string
	// Logger receives progress messages. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultOptions returns default merge options.
func DefaultOptions() Options {
	return Options{
		Mode:             ModeFlat,
		Header:           parser.DefaultHeaderLayout(),
		ExcludedSheets:   append([]string(nil), classify.DefaultExcludedSheets...),
		FileColumn:       "Original_Filename",
		SheetColumn:      "Source_Sheet",
		TableFilename:    "merged_b2b_data.xlsx",
		WorkbookFilename: "consolidated_data.xlsx",
		ArchiveFilename:  "Statewise_Consolidated_Data.zip",
		EntryPattern:     "State_%s_Consolidated.xlsx",
		SheetName:        "Merged_B2B_Data",
	}
}

// keyExtractor returns the configured key extractor or the default rule.
func (o Options) keyExtractor() classify.KeyExtractor {
	if o.KeyExtractor != nil {
		return o.KeyExtractor
	}
	return classify.DefaultKeyExtractor()
}

// logger returns the configured logger or the process default.
func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
