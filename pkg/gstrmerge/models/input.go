// Package models defines data structures for workbook merging.
package models

// InputFile is one uploaded workbook.
type InputFile struct {
	// Name is the uploaded file name (no path).
	Name string `json:"name"`
	// Data is the raw workbook content.
	Data []byte `json:"-"`
}
