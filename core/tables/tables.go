// core/tables/tables.go
package tables

import (
	"fmt"
)

// Size is the alphabet size: lowercase a-z.
const Size = 26

// Entry is one letter->index pair of the substitution map, in document order.
type Entry struct {
	Letter string
	Index  int
}

// Pair is one letter->letter pair of the reflector map.
type Pair struct {
	From string
	To   string
}

// Option tweaks table construction.
type Option func(*options)

type options struct{ lenient bool }

// Lenient accepts partial or non-unique substitution maps. Index lookups then
// resolve to the first entry (in document order) carrying that index, and
// unresolvable indices surface at encryption time instead of at load time.
func Lenient() Option { return func(o *options) { o.lenient = true } }

// Tables holds the substitution map in both directions plus the reflector.
// All lookups are array reads; a Tables value is immutable and safe for
// concurrent use.
type Tables struct {
	byLetter  [Size]int
	hasLetter [Size]bool
	byIndex   [Size]byte // 0 = absent
	reflector [Size]byte // 0 = absent
	lenient   bool
}

// New builds Tables from the substitution entries and reflector pairs.
//
// In strict mode (the default) the substitution map must be a bijection
// between a-z and 0..25 and every reflector pair must map a letter to a letter.
func New(hash []Entry, reflector []Pair, opts ...Option) (*Tables, error) {
	var o options
	for _, fn := range opts {
		fn(&o)
	}

	t := &Tables{lenient: o.lenient}

	// Keys keep the position of their first occurrence and the value of their
	// last one, as a JSON object decoded into an insertion-ordered map would.
	order := make([]byte, 0, Size)
	for _, e := range hash {
		c, ok := letterByte(e.Letter)
		if !ok {
			return nil, fmt.Errorf("%w: hash_map key %q", ErrBadLetter, e.Letter)
		}
		if !o.lenient && (e.Index < 0 || e.Index >= Size) {
			return nil, fmt.Errorf("%w: hash_map[%q] = %d", ErrIndexRange, e.Letter, e.Index)
		}
		if !t.hasLetter[c-'a'] {
			order = append(order, c)
		}
		t.byLetter[c-'a'] = e.Index
		t.hasLetter[c-'a'] = true
	}

	for _, c := range order {
		idx := t.byLetter[c-'a']
		if idx < 0 || idx >= Size {
			continue
		}
		switch {
		case t.byIndex[idx] == 0:
			t.byIndex[idx] = c
		case !o.lenient:
			return nil, fmt.Errorf("%w: index %d used by %q and %q", ErrNotBijective, idx, t.byIndex[idx], c)
		}
	}

	if !o.lenient {
		for i := 0; i < Size; i++ {
			if !t.hasLetter[i] {
				return nil, fmt.Errorf("%w: letter %q missing", ErrNotBijective, rune('a'+i))
			}
		}
	}

	for _, p := range reflector {
		from, ok := letterByte(p.From)
		if !ok {
			return nil, fmt.Errorf("%w: reflector_map key %q", ErrBadLetter, p.From)
		}
		to, ok := letterByte(p.To)
		if !ok {
			return nil, fmt.Errorf("%w: reflector_map[%q] = %q", ErrBadLetter, p.From, p.To)
		}
		t.reflector[from-'a'] = to
	}
	return t, nil
}

// IndexOf returns the substitution index of letter.
func (t *Tables) IndexOf(letter rune) (int, error) {
	if !isLetter(letter) || !t.hasLetter[letter-'a'] {
		return 0, &UnknownCharacterError{Table: "substitution", Letter: letter}
	}
	return t.byLetter[letter-'a'], nil
}

// LetterOf returns the letter mapped to index. The second result is false
// when no letter carries that index; callers decide how to fail.
func (t *Tables) LetterOf(index int) (rune, bool) {
	if index < 0 || index >= Size || t.byIndex[index] == 0 {
		return 0, false
	}
	return rune(t.byIndex[index]), true
}

// Reflect returns the reflector image of letter.
func (t *Tables) Reflect(letter rune) (rune, error) {
	if !isLetter(letter) || t.reflector[letter-'a'] == 0 {
		return 0, &UnknownCharacterError{Table: "reflector", Letter: letter}
	}
	return rune(t.reflector[letter-'a']), nil
}

// IsInvolution reports whether the reflector is defined for every letter and
// applying it twice returns the original letter.
func (t *Tables) IsInvolution() bool {
	for i, to := range t.reflector {
		if to == 0 || t.reflector[to-'a'] != byte('a'+i) {
			return false
		}
	}
	return true
}

// IsBijective reports whether every letter and every index is mapped exactly once.
// Always true for Tables built in strict mode.
func (t *Tables) IsBijective() bool {
	for i := 0; i < Size; i++ {
		if !t.hasLetter[i] || t.byIndex[i] == 0 || t.byLetter[t.byIndex[i]-'a'] != i {
			return false
		}
	}
	return true
}

// IsLenient reports whether the tables were built with Lenient.
func (t *Tables) IsLenient() bool { return t.lenient }

func letterByte(s string) (byte, bool) {
	if len(s) != 1 || s[0] < 'a' || s[0] > 'z' {
		return 0, false
	}
	return s[0], true
}

func isLetter(r rune) bool { return r >= 'a' && r <= 'z' }
