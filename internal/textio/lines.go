// internal/textio/lines.go
package textio

import (
	"bufio"
	"context"
	"errors"
	"io"
	"syscall"
)

// Line is one input line. Text keeps its trailing newline, if any, so the
// concatenation of all lines reproduces the input byte for byte.
type Line struct {
	No   int // 1-based
	Text string
}

// EachLine reads r line by line and calls emit for each. It is cancelable:
// it returns ctx.Err() promptly once ctx is done. Lines have no length limit.
func EachLine(ctx context.Context, r io.Reader, emit func(Line) error) error {
	br := bufio.NewReaderSize(r, 64*1024)
	for no := 1; ; no++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		text, err := br.ReadString('\n')
		if len(text) > 0 {
			if eerr := emit(Line{No: no, Text: text}); eerr != nil {
				return eerr
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Useful when downstream consumers (like `head`) close early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
