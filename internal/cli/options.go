// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"enigma/internal/cliutil"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Files
	ConfigPath string
	InputPath  string // "-" = stdin
	OutputPath string // "" or "-" = stdout

	// Processing
	Lines   bool // encrypt every line independently
	Threads int  // workers for Lines; 0 = all CPUs
	Lenient bool // accept partial / non-unique tables
	Check   bool // validate the config and print a report

	// Logging
	Quiet   bool
	Verbose bool

	Version bool
}

// UsageError reports a malformed command line.
type UsageError struct{ Err error }

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

func usagef(format string, a ...any) error {
	return &UsageError{Err: fmt.Errorf(format, a...)}
}

// ParseArgs registers and parses all flags, returns an Options struct.
// It returns flag.ErrHelp for -h and a *UsageError for anything malformed.
// A single positional argument is accepted in place of --input.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.ConfigPath, "config", "", "cipher configuration file (.json, .yaml, .yml) [*]")
	fs.StringVar(&opt.ConfigPath, "c", "", "cipher configuration file (shorthand)")
	fs.StringVar(&opt.InputPath, "input", "", "text to encrypt ('-' = stdin, .gz accepted) [*]")
	fs.StringVar(&opt.InputPath, "i", "", "text to encrypt (shorthand)")
	fs.StringVar(&opt.OutputPath, "output", "", "write ciphertext here instead of stdout (mode 0600)")
	fs.StringVar(&opt.OutputPath, "o", "", "output file (shorthand)")

	fs.BoolVar(&opt.Lines, "lines", false, "encrypt each line independently from the initial wheels [false]")
	fs.IntVar(&opt.Threads, "threads", 0, "worker threads for --lines (0 = all CPUs) [0]")
	fs.IntVar(&opt.Threads, "t", 0, "worker threads (shorthand)")
	fs.BoolVar(&opt.Lenient, "lenient", false, "accept partial or non-unique hash_map entries [false]")
	fs.BoolVar(&opt.Check, "check", false, "validate the configuration, print a JSON report and exit [false]")

	fs.BoolVar(&opt.Quiet, "quiet", false, "log errors only [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "log errors only (shorthand)")
	fs.BoolVar(&opt.Verbose, "verbose", false, "log debug details, including failure causes [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	flagArgs, input, splitErr := cliutil.SplitInput(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return opt, err
		}
		return opt, &UsageError{Err: err}
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	if splitErr != nil {
		return opt, &UsageError{Err: splitErr}
	}

	// Validation
	if opt.ConfigPath == "" {
		return opt, usagef("--config is required")
	}
	if opt.Quiet && opt.Verbose {
		return opt, usagef("--quiet conflicts with --verbose")
	}
	if opt.Threads < 0 {
		return opt, usagef("--threads must be ≥ 0")
	}
	if opt.Check {
		if opt.InputPath != "" || input != "" {
			return opt, usagef("--check takes no input")
		}
		return opt, nil
	}

	switch {
	case input != "" && opt.InputPath != "":
		return opt, usagef("--input conflicts with positional input %q", input)
	case input != "":
		opt.InputPath = input
	case opt.InputPath == "":
		return opt, usagef("--input is required")
	}
	return opt, nil
}
