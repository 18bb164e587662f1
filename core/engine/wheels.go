// core/engine/wheels.go
package engine

import "enigma/core/tables"

// Wheel one cycles through 1..wheelOneMax, then restarts at 1.
const wheelOneMax = 8

// Values W3 takes after an advance, by encryption count.
const (
	wheelThreeTens   = 10 // count % 10 == 0
	wheelThreeThrees = 5  // count % 3 == 0
)

// Wheels is the rotor state threaded through an encryption.
type Wheels struct {
	W1, W2, W3 int
}

// Factor returns the wheel factor (2*W1 - W2 + W3) reduced with floored
// modulo, so the result is always in [0,25] even for negative sums.
func Factor(w Wheels) int {
	return mod(2*mod(w.W1)-mod(w.W2)+mod(w.W3))
}

// Advance returns the wheel state after one character, given the number of
// letters encrypted so far.
//
// W3 checks divisibility by ten before divisibility by three, so count 0 and
// count 30 both yield 10.
func Advance(w Wheels, count int) Wheels {
	next := Wheels{W1: 1}
	if w.W1 < wheelOneMax {
		next.W1 = w.W1 + 1
	}
	if count%2 == 0 {
		next.W2 = w.W2 * 2
	} else {
		next.W2 = w.W2 - 1
	}
	switch {
	case count%10 == 0:
		next.W3 = wheelThreeTens
	case count%3 == 0:
		next.W3 = wheelThreeThrees
	}
	return next
}

// reduce keeps W2 congruent modulo 26. Doubling and decrementing commute with
// the reduction, so Factor sees the same residue the unbounded value has.
func (w Wheels) reduce() Wheels {
	w.W2 = mod(w.W2)
	return w
}

// mod is floored modulo 26.
func mod(n int) int {
	n %= tables.Size
	if n < 0 {
		n += tables.Size
	}
	return n
}
