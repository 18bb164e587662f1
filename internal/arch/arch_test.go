// internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	cmd.Dir = "../.." // module root
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	// The cipher core stays a library: no CLI, I/O plumbing or config files.
	bans := map[string][]string{
		"enigma/core/": {"enigma/internal/", "enigma/pkg/", "enigma/cmd/"},
		"enigma/pkg/api": {
			"enigma/internal/", "enigma/cmd/",
		},
		"enigma/internal/config": {
			"enigma/internal/app", "enigma/internal/cli", "enigma/internal/pipeline",
			"enigma/internal/textio", "enigma/cmd/",
		},
		"enigma/internal/textio": {
			"enigma/core/", "enigma/internal/app", "enigma/internal/cli",
			"enigma/internal/config", "enigma/internal/pipeline", "enigma/cmd/",
		},
		"enigma/internal/pipeline": {
			"enigma/core/", "enigma/internal/app", "enigma/internal/cli",
			"enigma/internal/config", "enigma/cmd/",
		},
		"enigma/internal/cli": {
			"enigma/core/", "enigma/internal/app", "enigma/internal/config",
			"enigma/internal/pipeline", "enigma/cmd/",
		},
	}

	var violations []string
	seen := 0
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, "enigma/") {
			continue
		}
		seen++
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(imp, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				if !strings.HasPrefix(dep, "enigma/") {
					continue
				}
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if seen == 0 {
		t.Fatal("go list returned no enigma packages")
	}
	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
