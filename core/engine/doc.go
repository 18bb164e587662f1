// Package engine contains the wheel cipher state machine. It depends only on
// core/tables; keep it free of I/O, configuration and CLI concerns.
//
// Per character the engine either substitutes (lowercase letters) or copies
// the rune, then advances the wheels:
//
//	W1 = W1+1, or 1 after 8
//	W2 = W2*2 when the letter count is even, else W2-1
//	W3 = 10 when count%10 == 0, else 5 when count%3 == 0, else 0
//
// The substitution shifts the letter's index by the wheel factor, reflects,
// and shifts back, so with an involutive reflector Encrypt is its own inverse.
// None of this is cryptographically meaningful.
package engine
