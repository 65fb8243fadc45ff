package report

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FoldASCII strips diacritics, e.g. "Pärnu haigla" becomes "Parnu haigla".
// Characters without an ASCII base letter are kept as they are.
func FoldASCII(s string) string {
	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
	)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}

	return folded
}
