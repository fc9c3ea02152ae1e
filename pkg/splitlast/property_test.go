package splitlast_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/berquerant/splitlast/pkg/pattern"
	"github.com/berquerant/splitlast/pkg/splitlast"
	"pgregory.net/rapid"
)

// Property: text without the delimiter comes back unchanged,
// arbitrary bytes included
func TestLastNoMatchIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := string(rapid.SliceOf(rapid.Byte()).Draw(t, "raw"))
		if strings.ContainsRune(s, '/') {
			t.Skip("contains the delimiter")
		}

		got, err := splitlast.Last(s, pattern.Rune('/'))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != s {
			t.Fatalf("text without delimiter should be unchanged: %q != %q", got, s)
		}
	})
}

// Property: never panics and the result is always a substring of the input,
// for arbitrary bytes (valid UTF-8 or not) and any delimiter rune
func TestLastReturnsSubstring(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := string(rapid.SliceOf(rapid.Byte()).Draw(t, "raw"))
		delim := rapid.SampledFrom([]rune{'/', '⊗', utf8.RuneError}).Draw(t, "delim")

		got, err := splitlast.Last(s, pattern.Rune(delim))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(s, got) {
			t.Fatalf("result %q should be a substring of %q", got, s)
		}
		if strings.IndexRune(got, delim) >= 0 {
			t.Fatalf("result %q should not contain the delimiter %q", got, delim)
		}
	})
}

// Property: applying Last to its own output is a no-op
func TestLastIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		numSegments := rapid.IntRange(1, 5).Draw(t, "numSegments")
		segments := make([]string, numSegments)
		for i := range numSegments {
			segments[i] = rapid.StringMatching(`[a-z]*`).Draw(t, "segment")
		}
		s := strings.Join(segments, "/")
		if rapid.Bool().Draw(t, "trailing") {
			s += "/"
		}

		first, err := splitlast.Last(s, pattern.Rune('/'))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := splitlast.Last(first, pattern.Rune('/'))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first != second {
			t.Fatalf("Last should be idempotent: %q != %q", first, second)
		}
	})
}

// Property: Rune and the equivalent single-rune Literal agree
func TestRuneLiteralAgreement(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.StringMatching(`[a-z/]*`).Draw(t, "s")

		byRune, err := splitlast.Last(s, pattern.Rune('/'))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		byLiteral, err := splitlast.Last(s, pattern.Literal("/"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if byRune != byLiteral {
			t.Fatalf("Rune and Literal should agree on %q: %q != %q", s, byRune, byLiteral)
		}
	})
}
