// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"enigma/core/tables"
	"enigma/internal/cli"
	"enigma/internal/cmdutil"
	"enigma/internal/config"
	"enigma/internal/jsonutil"
	"enigma/internal/pipeline"
	"enigma/internal/textio"
	"enigma/internal/version"
)

// Exit codes.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitInterrupted = 130
)

// GenericFailure is the only failure message users see; the cause is logged
// at debug level.
const GenericFailure = "enigma: the enigma script has encountered an error"

// RunIO parses argv, runs the cipher and returns the process exit code.
func RunIO(parent context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("enigma")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flushCode(outw, stderr, ExitOK)
		}
		_, _ = fmt.Fprintf(stderr, "enigma: %v\n\n", err)
		fs.SetOutput(stderr)
		fs.Usage()
		return ExitFailure
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "enigma version %s\n", version.Version)
		return flushCode(outw, stderr, ExitOK)
	}

	log := cmdutil.NewLogger(stderr, opts.Quiet, opts.Verbose)
	err = execute(parent, opts, stdin, outw, log)
	if err == nil {
		err = outw.Flush()
	}
	switch {
	case err == nil:
		return ExitOK
	case textio.IsBrokenPipe(err):
		return ExitOK
	case parent.Err() != nil && errors.Is(err, parent.Err()):
		outw.Reset(stdout)
		log.Debug("interrupted", "err", err)
		return ExitInterrupted
	default:
		// Drop ciphertext still buffered for stdout.
		outw.Reset(stdout)
		log.Debug("run failed", "err", err)
		_, _ = fmt.Fprintln(stderr, GenericFailure)
		return ExitFailure
	}
}

// RunContext runs with the process stdin.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	return RunIO(parent, argv, os.Stdin, stdout, stderr)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func flushCode(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); textio.IsBrokenPipe(err) {
		return ExitOK
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, GenericFailure)
		return ExitFailure
	}
	return code
}

func execute(ctx context.Context, opts cli.Options, stdin io.Reader, stdout io.Writer, log *slog.Logger) error {
	var topts []tables.Option
	if opts.Lenient {
		topts = append(topts, tables.Lenient())
		log.Warn("lenient tables: partial or non-unique hash_map accepted")
	}
	log.Debug("loading config", "path", opts.ConfigPath, "format", config.FormatFor(opts.ConfigPath))
	cfg, err := config.Load(opts.ConfigPath, topts...)
	if err != nil {
		return err
	}
	for _, w := range cfg.Warnings() {
		log.Warn(w, "config", cfg.Path)
	}
	if opts.Check {
		return jsonutil.EncodePretty(stdout, cfg.Report())
	}

	in, err := textio.OpenInput(opts.InputPath, stdin)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := textio.CreateOutput(opts.OutputPath, stdout)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()

	eng := cfg.Engine()
	if opts.Lines {
		threads := opts.Threads
		if threads == 0 {
			threads = runtime.NumCPU()
		}
		log.Debug("encrypting lines", "input", opts.InputPath, "threads", threads)
		err = pipeline.ForEachLine(ctx, pipeline.Config{Threads: threads}, in, eng,
			func(l textio.Line) error {
				_, err := out.WriteString(l.Text)
				return err
			})
	} else {
		log.Debug("encrypting stream", "input", opts.InputPath)
		st := eng.NewStream()
		err = textio.EachLine(ctx, in, func(l textio.Line) error {
			ct, err := st.Encrypt(l.Text)
			if err != nil {
				return err
			}
			_, err = out.WriteString(ct)
			return err
		})
		if err == nil {
			log.Debug("encrypted", "letters", st.Count())
		}
	}
	if err != nil {
		return err
	}
	return out.Commit()
}
