package idcode

import "idcode/pkg/serrors"

// Gender is the gender encoded by the parity of the first digit.
type Gender string

const (
	// GenderFemale is encoded by an even first digit.
	GenderFemale Gender = "female"
	// GenderMale is encoded by an odd first digit.
	GenderMale Gender = "male"
)

// DecodeGender reads the gender from the parity of the first digit. It does
// not require the digit to be a valid century digit, so 0 decodes as female
// and 9 as male.
func DecodeGender(code string) (Gender, error) {
	if len(code) <= centuryPos {
		return "", serrors.With(serrors.ErrStructural, "code is empty")
	}

	d, ok := number(code, centuryPos, 1)
	if !ok {
		return "", serrors.With(serrors.ErrGender, "the first character of ID code must be a digit, got %q", runeAt(code, centuryPos))
	}
	if d%2 == 0 {
		return GenderFemale, nil
	}

	return GenderMale, nil
}
