// ./internal/arch/arch_test.go
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

const module = "github.com/PyEED/aligner"

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	bans := map[string][]string{
		// core stays domain-only: no presentation, CLI, or process glue.
		module + "/core/": {
			module + "/internal/", module + "/cmd/",
		},
		// pkg/api is a leaf; the wire schema depends on nothing.
		module + "/pkg/api": {
			module + "/core/", module + "/internal/", module + "/cmd/",
		},
		module + "/internal/writers": {
			module + "/internal/app", module + "/internal/appshell",
			module + "/internal/cli", module + "/cmd/",
		},
		module + "/internal/output": {
			module + "/internal/app", module + "/internal/appshell",
			module + "/internal/cli", module + "/internal/writers", module + "/cmd/",
		},
		module + "/internal/progress": {
			module + "/internal/app", module + "/internal/appshell",
			module + "/internal/cli", module + "/internal/writers", module + "/cmd/",
		},
		module + "/internal/metrics": {
			module + "/internal/app", module + "/internal/appshell",
			module + "/internal/cli", module + "/internal/writers", module + "/cmd/",
		},
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, module+"/") {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(imp, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				if !strings.HasPrefix(dep, module+"/") {
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

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
