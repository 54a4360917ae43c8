// Package aggregate buckets extracted tables and concatenates each bucket.
package aggregate

import "fmt"

// Mode selects how tables are grouped.
type Mode string

const (
	// ModeFlat merges everything into one table.
	ModeFlat Mode = "flat"
	// ModeSheet groups by sheet name.
	ModeSheet Mode = "sheet"
	// ModeState groups by the state code taken from the file name.
	ModeState Mode = "state"
	// ModeStateSheet groups by state code, then by sheet name.
	ModeStateSheet Mode = "state-sheet"
)

// Modes lists every supported mode.
var Modes = []Mode{ModeFlat, ModeSheet, ModeState, ModeStateSheet}

// ParseMode converts a mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("invalid mode: %s (must be flat, sheet, state, or state-sheet)", s)
}

// UsesState reports whether the mode needs a key from the file name.
func (m Mode) UsesState() bool {
	return m == ModeState || m == ModeStateSheet
}

// UsesSheet reports whether the mode separates tables by sheet name.
func (m Mode) UsesSheet() bool {
	return m == ModeSheet || m == ModeStateSheet
}

// Key identifies a bucket. Fields not used by a mode are empty.
type Key struct {
	State string
	Sheet string
}

// KeyFor returns the bucket key of a table under mode m.
func (m Mode) KeyFor(state, sheet string) Key {
	var k Key
	if m.UsesState() {
		k.State = state
	}
	if m.UsesSheet() {
		k.Sheet = sheet
	}
	return k
}

func (k Key) String() string {
	switch {
	case k.State == "" && k.Sheet == "":
		return "none"
	case k.State == "":
		return k.Sheet
	case k.Sheet == "":
		return k.State
	default:
		return k.State + "/" + k.Sheet
	}
}
