// internal/cliutil/cliutil.go
package cliutil

import (
	"flag"
	"fmt"
	"strings"
)

// takesValue reports whether arg is a registered non-boolean flag written
// without "=", so the next argument is its value. Unknown flags are left for
// fs.Parse to reject.
func takesValue(fs *flag.FlagSet, arg string) bool {
	name := strings.TrimLeft(arg, "-")
	if name == "" || strings.Contains(name, "=") {
		return false
	}
	f := fs.Lookup(name)
	if f == nil {
		return false
	}
	bf, ok := f.Value.(interface{ IsBoolFlag() bool })
	return !ok || !bf.IsBoolFlag()
}

// SplitInput separates flag arguments from the positional input path, so the
// path may appear before, between or after flags. "-" is a positional (stdin)
// and "--" ends flag parsing. At most one positional is allowed; input is ""
// when there is none.
func SplitInput(fs *flag.FlagSet, argv []string) (flagArgs []string, input string, err error) {
	var pos []string
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		switch {
		case arg == "--":
			pos = append(pos, argv[i+1:]...)
			i = len(argv)
		case arg == "-" || !strings.HasPrefix(arg, "-"):
			pos = append(pos, arg)
		default:
			flagArgs = append(flagArgs, arg)
			if takesValue(fs, arg) && i+1 < len(argv) {
				i++
				flagArgs = append(flagArgs, argv[i])
			}
		}
	}
	switch len(pos) {
	case 0:
		return flagArgs, "", nil
	case 1:
		return flagArgs, pos[0], nil
	default:
		return flagArgs, "", fmt.Errorf("expected one input, got %d: %s", len(pos), strings.Join(pos, " "))
	}
}
