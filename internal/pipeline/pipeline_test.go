package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enigma/core/engine"
	"enigma/core/tables"
	"enigma/internal/textio"
)

// Compile-time check: the concrete engine satisfies the minimal contract.
var _ Cipher = (*engine.Engine)(nil)

// upperCipher upper-cases text after a delay that shrinks with line length,
// so later lines tend to finish first. Lines starting with "bad" fail.
type upperCipher struct{}

func (upperCipher) Encrypt(text string) (string, error) {
	if strings.HasPrefix(text, "bad") {
		return "", errors.New("rejected")
	}
	time.Sleep(time.Duration(10-len(text)%10) * 100 * time.Microsecond)
	return strings.ToUpper(text), nil
}

func run(t *testing.T, threads int, in string, c Cipher) ([]textio.Line, error) {
	t.Helper()
	var got []textio.Line
	err := ForEachLine(context.Background(), Config{Threads: threads}, strings.NewReader(in), c,
		func(l textio.Line) error {
			got = append(got, l)
			return nil
		})
	return got, err
}

func TestForEachLine_KeepsInputOrder(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 200; i++ {
		fmt.Fprintf(&b, "line %s %d\n", strings.Repeat("x", i%7), i)
	}
	for _, threads := range []int{0, 1, 4, 16} {
		got, err := run(t, threads, b.String(), upperCipher{})
		require.NoError(t, err)
		require.Len(t, got, 200)

		var joined strings.Builder
		for i, l := range got {
			assert.Equal(t, i+1, l.No)
			joined.WriteString(l.Text)
		}
		assert.Equal(t, strings.ToUpper(b.String()), joined.String(), "threads=%d", threads)
	}
}

func TestForEachLine_EachLineStartsFromInitialWheels(t *testing.T) {
	var hash []tables.Entry
	var refl []tables.Pair
	const alphabet = "abcdefghijklmnopqrstuvwxyz"
	for i, c := range alphabet {
		hash = append(hash, tables.Entry{Letter: string(c), Index: i})
		refl = append(refl, tables.Pair{From: string(c), To: string(alphabet[25-i])})
	}
	tab, err := tables.New(hash, refl)
	require.NoError(t, err)
	eng := engine.New(tab, engine.Wheels{W1: 1, W2: 1, W3: 1})

	got, err := run(t, 3, "hello world\nhello world\nhello world", eng)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "oncmn tfmwo\n", got[0].Text)
	assert.Equal(t, "oncmn tfmwo\n", got[1].Text)
	assert.Equal(t, "oncmn tfmwo", got[2].Text)
}

func TestForEachLine_FirstErrorInLineOrder(t *testing.T) {
	in := "ok\nbad one\nok\nbad two\nok\n"
	for _, threads := range []int{1, 8} {
		got, err := run(t, threads, in, upperCipher{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 2")
		require.Len(t, got, 1)
		assert.Equal(t, "OK\n", got[0].Text)
	}
}

func TestForEachLine_VisitErrorStops(t *testing.T) {
	stop := errors.New("stop")
	n := 0
	err := ForEachLine(context.Background(), Config{Threads: 4}, strings.NewReader("a\nb\nc\nd\n"), upperCipher{},
		func(textio.Line) error {
			n++
			if n == 2 {
				return stop
			}
			return nil
		})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 2, n)
}

func TestForEachLine_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := ForEachLine(ctx, Config{Threads: 2}, strings.NewReader("a\nb\n"), upperCipher{},
		func(textio.Line) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestForEachLine_Empty(t *testing.T) {
	got, err := run(t, 2, "", upperCipher{})
	require.NoError(t, err)
	assert.Empty(t, got)
}
