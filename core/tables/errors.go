// core/tables/errors.go
package tables

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownCharacter indicates a lookup by letter or by index found no entry.
	ErrUnknownCharacter = errors.New("tables: unknown character")
	// ErrBadLetter indicates a key or reflector value that is not a single letter a-z.
	ErrBadLetter = errors.New("tables: entry is not a single lowercase letter a-z")
	// ErrIndexRange indicates an index outside [0,25].
	ErrIndexRange = errors.New("tables: index out of range [0,25]")
	// ErrNotBijective indicates the substitution map does not cover every
	// letter and every index exactly once.
	ErrNotBijective = errors.New("tables: substitution map is not a bijection")
)

// UnknownCharacterError reports the letter or index that failed to resolve.
// Table names which lookup missed ("substitution", "index" or "reflector").
type UnknownCharacterError struct {
	Table  string
	Letter rune
	Index  int
}

func (e *UnknownCharacterError) Error() string {
	if e.Table == "index" {
		return fmt.Sprintf("tables: no letter for index %d", e.Index)
	}
	return fmt.Sprintf("tables: %q not in %s map", e.Letter, e.Table)
}

func (e *UnknownCharacterError) Is(target error) bool { return target == ErrUnknownCharacter }
