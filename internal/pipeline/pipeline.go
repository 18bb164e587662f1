// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"
	"io"
	"sync"

	"enigma/internal/textio"
)

// Config controls the line pipeline.
type Config struct {
	Threads int // number of worker goroutines (>=1)
}

// ForEachLine reads r line by line, encrypts every line with c on
// cfg.Threads workers, and calls visit with the ciphertext in input order.
// Newlines are part of the line and pass through unchanged.
//
// It returns the first error in line order (a cipher failure or a visit
// error), or the context error when ctx is canceled first. No line after a
// failing one is visited.
func ForEachLine(
	parent context.Context,
	cfg Config,
	r io.Reader,
	c Cipher,
	visit func(textio.Line) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	type result struct {
		line textio.Line
		err  error
	}
	jobs := make(chan textio.Line, cfg.Threads*2)
	results := make(chan result, cfg.Threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-jobs:
					if !ok {
						return
					}
					out, err := c.Encrypt(j.Text)
					if err != nil {
						err = fmt.Errorf("line %d: %w", j.No, err)
					}
					select {
					case results <- result{line: textio.Line{No: j.No, Text: out}, err: err}:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector + reorderer
	var (
		cerr error
		cwg  sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		pending := make(map[int]result)
		next := 1
		for res := range results {
			if cerr != nil {
				continue
			}
			pending[res.line.No] = res
			for {
				cur, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++
				err := cur.err
				if err == nil {
					err = visit(cur.line)
				}
				if err != nil {
					cerr = err
					cancel()
					break
				}
			}
		}
	}()

	// Feed work
	ferr := textio.EachLine(ctx, r, func(l textio.Line) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case jobs <- l:
			return nil
		}
	})

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if cerr != nil {
		return cerr
	}
	if parent.Err() != nil {
		return parent.Err()
	}
	return ferr
}
