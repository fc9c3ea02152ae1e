// Package splitlast splits a string by a pattern and returns the last segment.
//
// There are a lot of situations where you want to split a string with a
// delimiter but only need the last element, e.g. the basename of a path.
// A trailing delimiter would make that last element empty, so Last discounts
// one trailing occurrence before splitting:
//
//	splitlast.Last("/some/long//test/", pattern.Rune('/')) // "test"
package splitlast

import (
	"github.com/berquerant/splitlast/pkg/pattern"
)

// Last splits s by pat and returns the final segment.
//
// If s ends with an occurrence of pat, exactly one such occurrence is
// removed first; "a//" keeps its first trailing slash and yields "".
// The result is always a subslice of s; no copy is made and s is never
// mutated. Empty s yields "".
//
// The only failure is a degenerate pattern that matches zero bytes
// (such as an empty Literal), reported as *SplitError.
func Last(s string, pat pattern.Pattern) (string, error) {
	if stripped, ok := pat.StripSuffix(s); ok {
		s = stripped
	}
	for {
		i, size := pat.Find(s)
		if i < 0 {
			return s, nil
		}
		if size == 0 {
			return "", newSplitError("Failed to split")
		}
		s = s[i+size:]
	}
}
