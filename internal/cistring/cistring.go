// Package cistring folds names the way cQASM's grammar requires: instruction,
// function, error-model, and mapping-alias names are all matched
// case-insensitively (§4.4, §"Mapping table").
package cistring

import "strings"

// Fold returns the canonical lookup key for a name.
func Fold(name string) string {
	return strings.ToLower(name)
}
