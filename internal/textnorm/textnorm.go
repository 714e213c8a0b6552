// Package textnorm folds text for search matching: lower-case, canonical
// decomposition, combining marks stripped.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize case-folds s and strips diacritical marks so that "Café" and
// "cafe" compare equal. It is idempotent and never fails: if the transform
// chain errors the lower-cased input is returned as-is.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	lowered := strings.ToLower(s)
	// Transformers carry state across calls, so build the chain per call
	// rather than sharing one between goroutines.
	strip := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(strip, lowered)
	if err != nil {
		return lowered
	}
	return out
}

// Contains reports whether the normalized haystack contains the normalized
// needle. An empty needle matches everything.
func Contains(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(Normalize(haystack), Normalize(needle))
}
