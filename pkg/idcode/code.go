package idcode

import (
	"idcode/pkg/serrors"
	"regexp"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Length is the number of characters in a personal code.
const Length = 11

// Character offsets of the fields inside a code.
const (
	centuryPos      = 0
	yearPos         = 1
	monthPos        = 3
	dayPos          = 5
	registrationPos = 7
	checksumPos     = 10
)

var digitsOnly = regexp.MustCompile(`^[0-9]+$`)

// ValidateStructure checks that code is exactly 11 ASCII digits. The returned
// error is of kind serrors.ErrStructural.
func ValidateStructure(code string) error {
	err := validation.Validate(code,
		validation.Required.Error("code is empty"),
		validation.Length(Length, Length).Error("length must be exactly 11"),
		validation.Match(digitsOnly).Error("must contain only digits 0-9"),
	)
	if err != nil {
		return serrors.Wrap(serrors.ErrStructural, err, "invalid ID code %q", code)
	}

	return nil
}

// runeAt returns the character starting at byte offset pos, so messages quote
// what the user typed rather than a lone byte of a multi-byte character.
func runeAt(code string, pos int) rune {
	r, _ := utf8.DecodeRuneInString(code[pos:])

	return r
}

// number parses the n characters at offset pos as a non-negative decimal
// number. ok is false when the code is too short or a character is not an
// ASCII digit.
func number(code string, pos, n int) (value int, ok bool) {
	if pos < 0 || pos+n > len(code) {
		return 0, false
	}
	for i := pos; i < pos+n; i++ {
		c := code[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		value = value*10 + int(c-'0')
	}

	return value, true
}
