// internal/textio/open.go
package textio

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Stdio is the path that selects standard input or output.
const Stdio = "-"

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// OpenInput opens path for reading; "-" reads stdin. Gzip input is detected
// by magic number (1F 8B) or a .gz suffix and decompressed transparently.
func OpenInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == Stdio {
		return io.NopCloser(stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var sig [2]byte
	n, _ := io.ReadFull(fh, sig[:])
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		_ = fh.Close()
		return nil, err
	}
	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	}
	return fh, nil
}

// outputBufSize is the Output buffer size. Stdout output larger than this is
// streamed before Commit.
const outputBufSize = 64 * 1024

// Output is a buffered destination. File output goes to a temporary file
// next to the target and only replaces it on Commit, so a failed run never
// leaves a partial file behind. Stdout output reaches stdout only as the
// buffer fills or on Commit; Close drops whatever is still buffered.
type Output struct {
	w    *bufio.Writer
	f    *os.File // nil for stdout
	path string
	done bool
}

// CreateOutput opens path for writing with mode 0600. An empty path or "-"
// writes to stdout, which is never closed.
func CreateOutput(path string, stdout io.Writer) (*Output, error) {
	if path == "" || path == Stdio {
		return &Output{w: bufio.NewWriterSize(stdout, outputBufSize)}, nil
	}
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return nil, err
	}
	return &Output{w: bufio.NewWriterSize(f, outputBufSize), f: f, path: path}, nil
}

func (o *Output) Write(p []byte) (int, error) { return o.w.Write(p) }

// WriteString implements io.StringWriter.
func (o *Output) WriteString(s string) (int, error) { return o.w.WriteString(s) }

// Commit flushes buffered data and, for file output, moves the temporary
// file into place.
func (o *Output) Commit() error {
	if o.done {
		return nil
	}
	o.done = true
	err := o.w.Flush()
	if o.f == nil {
		return err
	}
	if cerr := o.f.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(o.f.Name(), o.path)
	}
	if err != nil {
		_ = os.Remove(o.f.Name())
	}
	return err
}

// Close discards uncommitted output: buffered stdout bytes are never written
// and the temporary file is removed. It is a no-op after Commit, so it is
// safe to defer.
func (o *Output) Close() error {
	if o.done {
		return nil
	}
	o.done = true
	if o.f == nil {
		return nil
	}
	_ = o.f.Close()
	return os.Remove(o.f.Name())
}
