package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"enigma/core/tables"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// hashFrom maps the i-th letter of order to index i.
func hashFrom(order string) []tables.Entry {
	out := make([]tables.Entry, 0, len(order))
	for i, c := range order {
		out = append(out, tables.Entry{Letter: string(c), Index: i})
	}
	return out
}

func identityReflector() []tables.Pair {
	out := make([]tables.Pair, 0, len(alphabet))
	for _, c := range alphabet {
		out = append(out, tables.Pair{From: string(c), To: string(c)})
	}
	return out
}

// reverseReflector maps a<->z, b<->y, ...
func reverseReflector() []tables.Pair {
	out := make([]tables.Pair, 0, len(alphabet))
	for i, c := range alphabet {
		out = append(out, tables.Pair{From: string(c), To: string(alphabet[len(alphabet)-1-i])})
	}
	return out
}

// swapReflector maps a<->b, c<->d, ...
func swapReflector() []tables.Pair {
	out := make([]tables.Pair, 0, len(alphabet))
	for i := 0; i < len(alphabet); i += 2 {
		a, b := string(alphabet[i]), string(alphabet[i+1])
		out = append(out, tables.Pair{From: a, To: b}, tables.Pair{From: b, To: a})
	}
	return out
}

func mustTables(t *testing.T, hash []tables.Entry, refl []tables.Pair, opts ...tables.Option) *tables.Tables {
	t.Helper()
	tab, err := tables.New(hash, refl, opts...)
	require.NoError(t, err)
	return tab
}
