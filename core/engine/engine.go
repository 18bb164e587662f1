// core/engine/engine.go
package engine

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"enigma/core/tables"
)

// Engine pairs substitution tables with the configured initial wheels.
// It holds no per-call state: every encryption starts from the initial wheels,
// so one Engine may serve concurrent callers.
type Engine struct {
	tab     *tables.Tables
	initial Wheels
}

// New returns an Engine over t starting each encryption at initial.
func New(t *tables.Tables, initial Wheels) *Engine {
	return &Engine{tab: t, initial: initial}
}

// Wheels returns the configured initial wheel state.
func (e *Engine) Wheels() Wheels { return e.initial }

// Tables returns the substitution tables the engine ciphers with.
func (e *Engine) Tables() *tables.Tables { return e.tab }

// Transform ciphers one lowercase letter under wheel state w:
//
//	f    = Factor(w), or 1 when the factor is 0
//	c1   = letterOf((indexOf(ch) + f) mod 26)
//	c2   = reflect(c1)
//	out  = letterOf((indexOf(c2) - f) mod 26)
//
// A missing index->letter resolution is reported as tables.ErrUnknownCharacter.
func (e *Engine) Transform(ch rune, w Wheels) (rune, error) {
	shift := Factor(w)
	if shift == 0 {
		shift = 1
	}

	i, err := e.tab.IndexOf(ch)
	if err != nil {
		return 0, err
	}
	c1, err := e.letterOf(mod(i + shift))
	if err != nil {
		return 0, err
	}
	c2, err := e.tab.Reflect(c1)
	if err != nil {
		return 0, err
	}
	i, err = e.tab.IndexOf(c2)
	if err != nil {
		return 0, err
	}
	return e.letterOf(mod(i - shift))
}

func (e *Engine) letterOf(i int) (rune, error) {
	c, ok := e.tab.LetterOf(i)
	if !ok {
		return 0, &tables.UnknownCharacterError{Table: "index", Index: i}
	}
	return c, nil
}

// Encrypt ciphers text from the initial wheel state. Lowercase letters are
// substituted; every other rune is copied unchanged. The wheels advance once
// per rune either way. The first lookup failure aborts the call.
func (e *Engine) Encrypt(text string) (string, error) {
	return e.NewStream().Encrypt(text)
}

// Decrypt is Encrypt: with an involutive reflector the cipher undoes itself,
// because ciphertext keeps every lowercase letter in place and so replays the
// same wheel sequence.
func (e *Engine) Decrypt(text string) (string, error) {
	return e.Encrypt(text)
}

// Stream continues one encryption across several chunks. Feeding a text to a
// single Stream in pieces yields the same output as one Encrypt call on the
// concatenation. A Stream is not safe for concurrent use.
type Stream struct {
	e     *Engine
	w     Wheels
	count int
	err   error
}

// NewStream starts a stream at the engine's initial wheels.
func (e *Engine) NewStream() *Stream {
	return &Stream{e: e, w: e.initial}
}

// Count returns the number of letters ciphered so far.
func (s *Stream) Count() int { return s.count }

// Encrypt ciphers the next chunk. After a failure the stream stays failed and
// returns the same error.
func (s *Stream) Encrypt(chunk string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	var out strings.Builder
	out.Grow(len(chunk))
	for pos := 0; pos < len(chunk); {
		r, size := utf8.DecodeRuneInString(chunk[pos:])
		if isCipherable(r, size) {
			c, err := s.e.Transform(r, s.w)
			if err != nil {
				s.err = fmt.Errorf("letter %d: %w", s.count+1, err)
				return "", s.err
			}
			out.WriteRune(c)
			s.count++
		} else {
			out.WriteString(chunk[pos : pos+size])
		}
		s.w = Advance(s.w, s.count).reduce()
		pos += size
	}
	return out.String(), nil
}

// isCipherable reports whether r takes the substitution path. Any lowercase
// letter qualifies, including Other_Lowercase letters such as ª and ʰ, so
// lowercase letters outside a-z reach the tables and fail there rather than
// slipping through unciphered.
func isCipherable(r rune, size int) bool {
	if r == utf8.RuneError && size <= 1 {
		return false
	}
	return unicode.IsLetter(r) && (unicode.IsLower(r) || unicode.Is(unicode.Other_Lowercase, r))
}
