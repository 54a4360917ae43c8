package aggregate

import (
	"github.com/ukaji3/gstrmerge-go/pkg/gstrmerge/models"
)

// Bucket holds the tables that share a key, in the order they were added.
type Bucket struct {
	Key    Key
	Tables []*models.Table
}

// Rows returns the total number of data rows in the bucket.
func (b *Bucket) Rows() int {
	n := 0
	for _, t := range b.Tables {
		n += t.Len()
	}
	return n
}

// Aggregator collects tables into buckets for one run.
type Aggregator struct {
	mode    Mode
	buckets map[Key]*Bucket
	order   []Key
}

// New creates an empty aggregator for mode.
func New(mode Mode) *Aggregator {
	return &Aggregator{
		mode:    mode,
		buckets: make(map[Key]*Bucket),
	}
}

// Mode returns the grouping mode.
func (a *Aggregator) Mode() Mode {
	return a.mode
}

// Add files a table under the bucket derived from state and the table's
// source sheet. Buckets are created on first use.
func (a *Aggregator) Add(t *models.Table, state string) Key {
	key := a.mode.KeyFor(state, t.SourceSheet)
	b, ok := a.buckets[key]
	if !ok {
		b = &Bucket{Key: key}
		a.buckets[key] = b
		a.order = append(a.order, key)
	}
	b.Tables = append(b.Tables, t)
	return key
}

// Empty reports whether no table has been added.
func (a *Aggregator) Empty() bool {
	return len(a.order) == 0
}

// Buckets returns the buckets in creation order.
func (a *Aggregator) Buckets() []*Bucket {
	out := make([]*Bucket, len(a.order))
	for i, k := range a.order {
		out[i] = a.buckets[k]
	}
	return out
}

// Group is a set of concatenated tables written to one workbook.
// Name is empty for non-state modes.
type Group struct {
	Name   string
	Sheets []Sheet
}

// Sheet is one concatenated table and the sheet name it is written under.
// Name is empty when the writer should pick its default sheet name.
type Sheet struct {
	Name  string
	Table *models.Table
}

// Groups concatenates every bucket and arranges the results by workbook:
// one group per state in state modes, a single group otherwise.
func (a *Aggregator) Groups() []Group {
	var groups []Group
	index := make(map[string]int)

	for _, b := range a.Buckets() {
		gi, ok := index[b.Key.State]
		if !ok {
			gi = len(groups)
			index[b.Key.State] = gi
			groups = append(groups, Group{Name: b.Key.State})
		}
		groups[gi].Sheets = append(groups[gi].Sheets, Sheet{
			Name:  b.Key.Sheet,
			Table: Concat(b.Tables),
		})
	}
	return groups
}
