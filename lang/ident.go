package lang

import (
	"regexp"
	"strings"
)

// RefMarker prefixes a string value that refers to a top-level constant.
const RefMarker = "@"

// identPattern matches a valid identifier: one or more uppercase ASCII
// letters, nothing else.
var identPattern = regexp.MustCompile(`\A[A-Z]+\z`)

// IsIdentifier reports whether name is a valid identifier.
func IsIdentifier(name string) bool {
	return identPattern.MatchString(name)
}

// ValidateName returns an [ErrInvalidName] naming name if it is not a valid
// identifier.
func ValidateName(name string) error {
	if !IsIdentifier(name) {
		return invalidName(name)
	}

	return nil
}

// refName returns the identifier named by a constant reference "@NAME".
func refName(ref string) (string, bool) {
	return strings.CutPrefix(ref, RefMarker)
}
