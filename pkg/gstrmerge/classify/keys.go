package classify

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoKey indicates a file name does not follow the naming convention.
var ErrNoKey = errors.New("file name carries no group key")

// KeyExtractor derives a grouping key from a file name.
type KeyExtractor interface {
	Key(filename string) (string, error)
}

// DelimitedKey takes the first Length characters of the second
// Delimiter-separated segment of a file name, so
// "GSTR2B_36AAACN1234_0122.xlsx" yields "36".
type DelimitedKey struct {
	Delimiter string
	Length    int
}

// DefaultKeyExtractor returns the state code convention: "_" and 2 characters.
func DefaultKeyExtractor() DelimitedKey {
	return DelimitedKey{Delimiter: "_", Length: 2}
}

// Key implements KeyExtractor.
func (k DelimitedKey) Key(filename string) (string, error) {
	if k.Delimiter == "" || k.Length < 1 {
		return "", fmt.Errorf("%w: invalid key rule %+v", ErrNoKey, k)
	}
	parts := strings.Split(filename, k.Delimiter)
	if len(parts) < 2 {
		return "", fmt.Errorf("%w: %q has no %q separator", ErrNoKey, filename, k.Delimiter)
	}
	segment := []rune(parts[1])
	if len(segment) < k.Length {
		return "", fmt.Errorf("%w: segment %q of %q is shorter than %d", ErrNoKey, string(segment), filename, k.Length)
	}
	return string(segment[:k.Length]), nil
}
