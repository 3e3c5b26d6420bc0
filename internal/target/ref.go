// Where: cli/internal/target/ref.go
// What: Target reference parsing.
// Why: Normalize project:target[:configuration] strings before resolution.
package target

import (
	"fmt"
	"strings"
)

// Ref identifies a runnable target inside a workspace.
type Ref struct {
	Project       string
	Target        string
	Configuration string
}

// ParseRef parses a "project:target" or "project:target:configuration" string.
func ParseRef(s string) (Ref, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	switch len(parts) {
	case 2:
		if parts[0] == "" || parts[1] == "" {
			return Ref{}, fmt.Errorf("invalid target reference %q: expected project:target[:configuration]", s)
		}
		return Ref{Project: parts[0], Target: parts[1]}, nil
	case 3:
		if parts[0] == "" || parts[1] == "" || parts[2] == "" {
			return Ref{}, fmt.Errorf("invalid target reference %q: expected project:target[:configuration]", s)
		}
		return Ref{Project: parts[0], Target: parts[1], Configuration: parts[2]}, nil
	default:
		return Ref{}, fmt.Errorf("invalid target reference %q: expected project:target[:configuration]", s)
	}
}

// ParseRefIn parses a reference, allowing a bare "target" form scoped to
// the given project. Colon forms always read as project:target[:configuration].
func ParseRefIn(project, s string) (Ref, error) {
	trimmed := strings.TrimSpace(s)
	if project != "" && trimmed != "" && !strings.Contains(trimmed, ":") {
		return Ref{Project: project, Target: trimmed}, nil
	}
	return ParseRef(trimmed)
}

// String renders the reference back to its canonical form.
func (r Ref) String() string {
	if r.Configuration != "" {
		return r.Project + ":" + r.Target + ":" + r.Configuration
	}
	return r.Project + ":" + r.Target
}
