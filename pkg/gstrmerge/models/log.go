package models

import (
	"fmt"
	"strings"
)

// Status classifies the outcome of processing one input file.
type Status string

const (
	// StatusSuccess means every included sheet was extracted.
	StatusSuccess Status = "success"
	// StatusPartialSuccess means some sheets were extracted and some failed.
	StatusPartialSuccess Status = "partial"
	// StatusSkippedNoData means the file had no data sheet to merge.
	StatusSkippedNoData Status = "skipped_no_data"
	// StatusSkippedBadName means the file name carries no grouping key.
	StatusSkippedBadName Status = "skipped_bad_name"
	// StatusFailed means the file could not be read at all.
	StatusFailed Status = "failed"
)

// LogEntry records the outcome for one input file.
type LogEntry struct {
	// FileName is the input file name.
	FileName string `json:"file_name"`
	// Status is the outcome classification.
	Status Status `json:"status"`
	// Sheets lists the sheets merged from the file.
	Sheets []string `json:"sheets,omitempty"`
	// Errors lists sheet or file level error text.
	Errors []string `json:"errors,omitempty"`
}

// String renders the entry as one human-readable line.
func (e LogEntry) String() string {
	switch e.Status {
	case StatusSuccess:
		return fmt.Sprintf("OK %s: merged %s", e.FileName, strings.Join(e.Sheets, ", "))
	case StatusPartialSuccess:
		return fmt.Sprintf("PARTIAL %s: merged %s; errors: %s",
			e.FileName, strings.Join(e.Sheets, ", "), strings.Join(e.Errors, "; "))
	case StatusSkippedNoData:
		return fmt.Sprintf("SKIPPED %s: no data sheets found", e.FileName)
	case StatusSkippedBadName:
		return fmt.Sprintf("SKIPPED %s: file name does not carry a state code", e.FileName)
	default:
		return fmt.Sprintf("FAILED %s: %s", e.FileName, strings.Join(e.Errors, "; "))
	}
}

// ProcessLog is the ordered list of per-file outcomes of one run.
type ProcessLog []LogEntry

// Lines renders every entry, one per line.
func (l ProcessLog) Lines() []string {
	lines := make([]string, len(l))
	for i, e := range l {
		lines[i] = e.String()
	}
	return lines
}

// Count returns how many entries carry the given status.
func (l ProcessLog) Count(s Status) int {
	n := 0
	for _, e := range l {
		if e.Status == s {
			n++
		}
	}
	return n
}
