package parser

import (
	"errors"
	"fmt"
)

// ErrFileOpen indicates the workbook could not be opened at all
// (corrupted, unsupported format or password protected).
var ErrFileOpen = errors.New("cannot open workbook")

// ErrSheetRead indicates a sheet does not have the expected header layout.
var ErrSheetRead = errors.New("unexpected sheet layout")

// SheetError represents a failure to extract one sheet.
type SheetError struct {
	File  string
	Sheet string
	Err   error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("sheet %q in %q: %v", e.Sheet, e.File, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// newSheetError wraps a layout problem so it matches ErrSheetRead.
func newSheetError(file, sheet, format string, args ...interface{}) *SheetError {
	return &SheetError{
		File:  file,
		Sheet: sheet,
		Err:   fmt.Errorf("%w: %s", ErrSheetRead, fmt.Sprintf(format, args...)),
	}
}

// wrapSheetError reports a read failure on a sheet so it matches ErrSheetRead.
func wrapSheetError(file, sheet string, err error) *SheetError {
	return &SheetError{
		File:  file,
		Sheet: sheet,
		Err:   fmt.Errorf("%w: %v", ErrSheetRead, err),
	}
}
