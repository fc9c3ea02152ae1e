package pattern

import (
	"strings"
	"unicode/utf8"
)

// Pattern locates delimiter occurrences within a string.
// Implementations are small value types; copying a Pattern is cheap and
// a single value may be reused for any number of searches.
type Pattern interface {
	// Find returns the byte index and byte length of the first match in s,
	// or (-1, 0) if there is none.
	Find(s string) (idx, size int)
	// StripSuffix removes one trailing match from s,
	// reporting whether anything was removed.
	StripSuffix(s string) (string, bool)
}

// Rune matches a single rune.
type Rune rune

func (r Rune) Find(s string) (int, int) {
	i := strings.IndexRune(s, rune(r))
	if i < 0 {
		return -1, 0
	}
	// IndexRune(s, utf8.RuneError) also reports invalid byte sequences,
	// which can be narrower than the rune's encoding;
	// take the matched width from the string itself.
	_, size := utf8.DecodeRuneInString(s[i:])
	return i, size
}

func (r Rune) StripSuffix(s string) (string, bool) {
	last, size := utf8.DecodeLastRuneInString(s)
	if size == 0 || last != rune(r) {
		return s, false
	}
	return s[:len(s)-size], true
}

// Literal matches an exact substring.
// The empty Literal matches everywhere with size zero; splitting rejects
// such degenerate matches.
type Literal string

func (l Literal) Find(s string) (int, int) {
	i := strings.Index(s, string(l))
	if i < 0 {
		return -1, 0
	}
	return i, len(l)
}

func (l Literal) StripSuffix(s string) (string, bool) {
	if l == "" {
		return s, false
	}
	return strings.CutSuffix(s, string(l))
}

// Func matches any single rune accepted by the predicate.
type Func func(rune) bool

func (f Func) Find(s string) (int, int) {
	i := strings.IndexFunc(s, f)
	if i < 0 {
		return -1, 0
	}
	_, size := utf8.DecodeRuneInString(s[i:])
	return i, size
}

func (f Func) StripSuffix(s string) (string, bool) {
	last, size := utf8.DecodeLastRuneInString(s)
	if size == 0 || !f(last) {
		return s, false
	}
	return s[:len(s)-size], true
}
