// Package classify decides which sheets are merged and which group a file belongs to.
package classify

import "strings"

// Decision is the outcome of classifying a sheet.
type Decision int

const (
	// Include marks a data sheet to merge.
	Include Decision = iota
	// Exclude marks a readme or summary sheet.
	Exclude
)

func (d Decision) String() string {
	if d == Include {
		return "include"
	}
	return "exclude"
}

// DefaultExcludedSheets lists the non-data sheets of a GSTR-2B export.
var DefaultExcludedSheets = []string{
	"Read me",
	"ITC Available",
	"ITC not available",
	"ITC Reversal",
	"ITC Rejected",
}

// Classifier filters sheet names. Comparison ignores case and
// surrounding whitespace on both sides.
type Classifier struct {
	excluded map[string]struct{}
	only     map[string]struct{}
}

// NewClassifier builds a classifier from an exclusion list and an optional
// allow-list. When only is non-empty, sheets outside it are excluded too.
func NewClassifier(excluded, only []string) *Classifier {
	return &Classifier{
		excluded: nameSet(excluded),
		only:     nameSet(only),
	}
}

// Classify returns Include for data sheets and Exclude otherwise.
func (c *Classifier) Classify(sheet string) Decision {
	key := normalize(sheet)
	if _, ok := c.excluded[key]; ok {
		return Exclude
	}
	if len(c.only) > 0 {
		if _, ok := c.only[key]; !ok {
			return Exclude
		}
	}
	return Include
}

func nameSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[normalize(n)] = struct{}{}
	}
	return set
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
