package overload

import (
	"fmt"
	"strings"
)

// NameResolutionFailure means no overload at all is registered under a
// name (§7 NameResolutionFailure).
type NameResolutionFailure struct {
	Name string
}

func (e *NameResolutionFailure) Error() string {
	return fmt.Sprintf("undefined name %q", e.Name)
}

// OverloadResolutionFailure means overloads exist for the name but none
// accepted the given argument shape (§7 OverloadResolutionFailure). It
// carries the candidate list attempted, per §C.3 of SPEC_FULL.md.
type OverloadResolutionFailure struct {
	Name       string
	ArgTypes   []string
	Candidates []string
}

func (e *OverloadResolutionFailure) Error() string {
	msg := fmt.Sprintf("no overload of %q matches argument types (%s)", e.Name, strings.Join(e.ArgTypes, ", "))
	if len(e.Candidates) > 0 {
		msg += fmt.Sprintf("; candidates are: %s", strings.Join(e.Candidates, ", "))
	}
	return msg
}
