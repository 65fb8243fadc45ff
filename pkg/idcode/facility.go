package idcode

import (
	"fmt"
	"idcode/pkg/serrors"
	"slices"
)

// FacilityRange assigns an inclusive block of registration numbers to one
// birthplace facility. Immutable value object.
type FacilityRange struct {
	name string
	min  int
	max  int
}

// Name returns the facility name.
func (r FacilityRange) Name() string { return r.name }

// Min returns the first registration number of the block.
func (r FacilityRange) Min() int { return r.min }

// Max returns the last registration number of the block.
func (r FacilityRange) Max() int { return r.max }

// Contains reports whether n falls inside the block.
func (r FacilityRange) Contains(n int) bool { return n >= r.min && n <= r.max }

// facilityRanges is ordered by ascending registration number. 0, 20 and
// everything above 700 are unassigned.
var facilityRanges = mustFacilityRanges([]FacilityRange{ //nolint: gochecknoglobals
	{name: "Kuressaare haigla", min: 1, max: 10},
	{name: "Tartu Ülikooli Naistekliinik", min: 11, max: 19},
	{name: "Ida-Tallinna keskhaigla, Pelgulinna sünnitusmaja (Tallinn)", min: 21, max: 150},
	{name: "Keila haigla", min: 151, max: 160},
	{name: "Rapla haigla, Loksa haigla, Hiiumaa haigla (Kärdla)", min: 161, max: 220},
	{name: "Ida-Viru keskhaigla (Kohtla-Järve, endine Jõhvi)", min: 221, max: 270},
	{name: "Maarjamõisa kliinikum (Tartu), Jõgeva haigla", min: 271, max: 370},
	{name: "Narva haigla", min: 371, max: 420},
	{name: "Pärnu haigla", min: 421, max: 470},
	{name: "Haapsalu haigla", min: 471, max: 490},
	{name: "Järvamaa haigla (Paide)", min: 491, max: 520},
	{name: "Rakvere haigla, Tapa haigla", min: 521, max: 570},
	{name: "Valga haigla", min: 571, max: 600},
	{name: "Viljandi haigla", min: 601, max: 650},
	{name: "Lõuna-Eesti haigla (Võru), Põlva haigla", min: 651, max: 700},
})

// checkFacilityRanges verifies that every block is well formed, fits in three
// digits and starts after the previous one ends, so the first match of a
// linear scan is also the only match.
func checkFacilityRanges(ranges []FacilityRange) error {
	for i, r := range ranges {
		if r.name == "" {
			return fmt.Errorf("facility range %d has no name", i)
		}
		if r.min < 0 || r.max > 999 || r.min > r.max {
			return fmt.Errorf("facility range %q has invalid bounds [%d, %d]", r.name, r.min, r.max)
		}
		if i > 0 && r.min <= ranges[i-1].max {
			return fmt.Errorf("facility range %q overlaps or precedes %q", r.name, ranges[i-1].name)
		}
	}

	return nil
}

func mustFacilityRanges(ranges []FacilityRange) []FacilityRange {
	if err := checkFacilityRanges(ranges); err != nil {
		panic(err)
	}

	return ranges
}

// FacilityRanges returns a copy of the facility table in ascending order.
func FacilityRanges() []FacilityRange {
	return slices.Clone(facilityRanges)
}

// Birthplace is the facility a registration number belongs to and the birth
// order within that facility's block.
type Birthplace struct {
	Facility     string
	Registration int
	// Ordinal is 1 for the first registration number of the block.
	Ordinal int
}

// String renders the birthplace as "<facility>, birth number <ordinal>".
func (b Birthplace) String() string {
	return fmt.Sprintf("%s, birth number %d", b.Facility, b.Ordinal)
}

// ResolveRegistration finds the facility block containing the registration
// number n.
func ResolveRegistration(n int) (Birthplace, error) {
	for _, r := range facilityRanges {
		if r.Contains(n) {
			return Birthplace{Facility: r.name, Registration: n, Ordinal: n - r.min + 1}, nil
		}
	}

	return Birthplace{}, serrors.With(serrors.ErrUnknownFacility, "unknown registration code %03d", n)
}

// DecodeBirthplace resolves the registration number of a structurally valid
// code to its facility.
func DecodeBirthplace(code string) (Birthplace, error) {
	if err := ValidateStructure(code); err != nil {
		return Birthplace{}, err
	}

	n, ok := number(code, registrationPos, 3)
	if !ok {
		return Birthplace{}, serrors.With(serrors.ErrRegistrationFormat,
			"invalid registration number %q", code[registrationPos:registrationPos+3])
	}

	return ResolveRegistration(n)
}
