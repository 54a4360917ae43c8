package gstrmerge

import (
	"github.com/ukaji3/gstrmerge-go/pkg/gstrmerge/classify"
	"github.com/ukaji3/gstrmerge-go/pkg/gstrmerge/parser"
	"github.com/ukaji3/gstrmerge-go/pkg/gstrmerge/writer"
)

// ErrFileOpen indicates an input workbook could not be opened.
var ErrFileOpen = parser.ErrFileOpen

// ErrSheetRead indicates a sheet does not match the expected header layout.
var ErrSheetRead = parser.ErrSheetRead

// ErrNoKey indicates a file name carries no state code.
var ErrNoKey = classify.ErrNoKey

// ErrNoData indicates no table was merged, so there is nothing to download.
var ErrNoData = writer.ErrNoData

// SheetError represents a failure to extract one sheet of one file.
type SheetError = parser.SheetError
