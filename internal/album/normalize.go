package album

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize returns the comparison form of a deck name: stripped of
// diacritics, transliterated to ASCII and case-folded.
// "Été", "ETE" and "ete" all normalize to "ete"; "Москва" to "moskva".
func Normalize(name string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, name)
	if err != nil {
		// Only reachable on invalid UTF-8; skip the mark stripping.
		stripped = name
	}

	return cases.Fold().String(transliterate(stripped))
}

// transliterate spells every non-ASCII rune in ASCII. Runes with no
// transliteration, such as emoji, are kept so they still tell names apart.
func transliterate(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < utf8.RuneSelf {
			b.WriteRune(r)
			continue
		}
		if ascii := unidecode.Unidecode(string(r)); ascii != "" {
			b.WriteString(ascii)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NamesMatch reports whether two deck names are equal after normalization.
func NamesMatch(a, b string) bool {
	return Normalize(a) == Normalize(b)
}
