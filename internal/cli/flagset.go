package cli

import (
	"flag"
	"fmt"

	"enigma/internal/version"
)

// NewFlagSet returns a ContinueOnError FlagSet whose usage prints the
// banner followed by the flag defaults.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: wheel substitution cipher

Version: %s

Usage:
  %s -c CONFIG -i INPUT [-o OUTPUT] [flags]
  %s -c CONFIG [flags] INPUT
  %s -c CONFIG --check

Flags:
`, name, version.Version, name, name, name)
		fs.PrintDefaults()
	}
	return fs
}
