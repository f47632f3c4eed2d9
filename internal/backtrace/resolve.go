package backtrace

import (
	"fmt"
	"os/exec"
	"strings"
)

// DefaultResolverPath is the external symbolizer spawned per frame when
// external resolution is requested.
const DefaultResolverPath = "addr2line"

// unknownLocation is the resolver's own convention for "no line info".
const unknownLocation = "??:0"

// Location is the outcome of resolving a frame address to a source
// position. Resolved reports whether the external symbolizer produced
// Text; otherwise Text is the "address (module)" fallback.
type Location struct {
	Text     string
	Resolved bool
}

// ResolveLocation resolves a frame's address to display text. With
// useExternal set it spawns the external symbolizer first; any spawn
// failure, empty output or the ??:0 sentinel falls back to the
// "address (module)" form. The subprocess spawn is deliberately optional:
// it costs one process per frame and the report is useful without it.
func ResolveLocation(resolverPath, module, address string, useExternal bool) Location {
	if useExternal {
		if text, ok := runResolver(resolverPath, module, address); ok {
			return Location{Text: text, Resolved: true}
		}
	}
	return Location{Text: fmt.Sprintf("%s (%s)", address, module)}
}

// runResolver spawns the symbolizer with the module path and address and
// reads one trimmed line of its output. The call blocks until the
// subprocess exits; there is no timeout and no retry.
func runResolver(resolverPath, module, address string) (string, bool) {
	if resolverPath == "" {
		resolverPath = DefaultResolverPath
	}

	out, err := exec.Command(resolverPath, "-s", "-e", module, address).Output()
	if err != nil {
		return "", false
	}

	line := string(out)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)

	if line == "" || line == unknownLocation {
		return "", false
	}
	return line, true
}
