package match

import (
	"regexp"
	"strings"
	"unicode"
)

// nonWord matches every rune that is neither an ASCII word character nor
// whitespace. Whitespace here is the wider set a browser uses: \s plus
// vertical tab, the byte order mark, and every Unicode separator (\p{Z}).
var nonWord = regexp.MustCompile(`[^\w\s\x0B\x{FEFF}\p{Z}]`)

// Func is the signature shared by matchers, so callers can inject an
// alternative judge without depending on this package's implementation.
type Func func(guess, answer string) bool

// Normalize lowercases s, removes every character that is not a word
// character or whitespace, and trims surrounding whitespace.
//
// Lowercasing happens first, so letters outside ASCII that lowercase into
// non-word runes are stripped as well.
func Normalize(s string) string {
	return strings.TrimFunc(nonWord.ReplaceAllString(strings.ToLower(s), ""), isSpace)
}

// isSpace is unicode.IsSpace extended with the byte order mark.
func isSpace(r rune) bool {
	return r == '\uFEFF' || unicode.IsSpace(r)
}

// Matches reports whether guess is accepted for answer.
//
// Algorithm behavior:
//   - Both inputs are normalized with Normalize
//   - Equal normalized strings match
//   - A normalized guess contained in the normalized answer matches
//   - A normalized answer contained in the normalized guess matches
//
// An empty normalized guess is a substring of every answer and therefore
// always matches. Callers must reject blank guesses before calling.
func Matches(guess, answer string) bool {
	g := Normalize(guess)
	a := Normalize(answer)
	return g == a || strings.Contains(a, g) || strings.Contains(g, a)
}

var _ Func = Matches
