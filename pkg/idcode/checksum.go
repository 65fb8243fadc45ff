package idcode

import "idcode/pkg/serrors"

var (
	firstPassWeights  = [10]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 1} //nolint: gochecknoglobals
	secondPassWeights = [10]int{3, 4, 5, 6, 7, 8, 9, 1, 2, 3} //nolint: gochecknoglobals
)

// Checksum computes the check digit for the first 10 digits of a code. The
// first pass uses weights 1..9,1; when it yields 10 a second pass with weights
// 3..9,1,2,3 is used, and a second 10 becomes 0.
func Checksum(prefix string) (int, error) {
	var digits [10]int
	if len(prefix) != len(digits) {
		return 0, serrors.With(serrors.ErrStructural, "checksum prefix %q must be exactly 10 digits", prefix)
	}
	for i := range digits {
		d, ok := number(prefix, i, 1)
		if !ok {
			return 0, serrors.With(serrors.ErrStructural, "checksum prefix %q must contain only digits 0-9", prefix)
		}
		digits[i] = d
	}

	if c := weightedMod11(digits, firstPassWeights); c < 10 {
		return c, nil
	}
	if c := weightedMod11(digits, secondPassWeights); c < 10 {
		return c, nil
	}

	return 0, nil
}

func weightedMod11(digits, weights [10]int) int {
	sum := 0
	for i, d := range digits {
		sum += d * weights[i]
	}

	return sum % 11
}

// ComputedChecksum computes the check digit of a structurally valid code.
func ComputedChecksum(code string) (int, error) {
	if err := ValidateStructure(code); err != nil {
		return 0, err
	}

	return Checksum(code[:checksumPos])
}

// EncodedChecksum reads the check digit stored as the 11th character.
func EncodedChecksum(code string) (int, error) {
	if len(code) != Length {
		return 0, serrors.With(serrors.ErrStructural,
			"code %q has %d characters, the checksum digit needs exactly %d", code, len(code), Length)
	}

	d, ok := number(code, checksumPos, 1)
	if !ok {
		return 0, serrors.With(serrors.ErrChecksumDigit, "encoded checksum %q is not a digit", runeAt(code, checksumPos))
	}

	return d, nil
}
