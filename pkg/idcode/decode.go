package idcode

import (
	"errors"
	"idcode/pkg/serrors"

	"github.com/hashicorp/go-multierror"
)

// Record is the decoded form of one code. Every field is decoded
// independently, so a failure in one field never hides the others.
type Record struct {
	// Code is the input exactly as received.
	Code string
	// Structure is nil when Code is exactly 11 ASCII digits.
	Structure error

	BirthDate        Result[Date]
	Gender           Result[Gender]
	Birthplace       Result[Birthplace]
	ComputedChecksum Result[int]
	EncodedChecksum  Result[int]

	// ChecksumsMatch is true only when both checksums are present and equal.
	ChecksumsMatch bool
}

// Decode runs every field decoder on code. It never panics and always returns
// a fully populated Record.
func Decode(code string) Record {
	rec := Record{
		Code:      code,
		Structure: ValidateStructure(code),
	}
	rec.BirthDate = shareStructural(resultOf(BirthDate(code)), rec.Structure)
	rec.Gender = shareStructural(resultOf(DecodeGender(code)), rec.Structure)

	if rec.Structure != nil {
		rec.Birthplace = Result[Birthplace]{Err: rec.Structure}
		rec.ComputedChecksum = Result[int]{Err: rec.Structure}
	} else {
		rec.Birthplace = resultOf(DecodeBirthplace(code))
		rec.ComputedChecksum = resultOf(ComputedChecksum(code))
	}

	if rec.Structure != nil && len(code) != Length {
		rec.EncodedChecksum = Result[int]{Err: rec.Structure}
	} else {
		rec.EncodedChecksum = resultOf(EncodedChecksum(code))
	}

	rec.ChecksumsMatch = rec.ComputedChecksum.OK() && rec.EncodedChecksum.OK() &&
		rec.ComputedChecksum.Value == rec.EncodedChecksum.Value

	return rec
}

// shareStructural replaces a structural field error with the record's own
// structural error, so a code that is too short reports one cause once.
func shareStructural[T any](r Result[T], structure error) Result[T] {
	if structure != nil && r.Err != nil && errors.Is(r.Err, serrors.ErrStructural) {
		r.Err = structure
	}

	return r
}

// Errors returns the distinct field errors of the record in field order.
func (r Record) Errors() []error {
	var errs []error
	add := func(err error) {
		if err == nil {
			return
		}
		for _, seen := range errs {
			if seen == err {
				return
			}
		}
		errs = append(errs, err)
	}

	add(r.Structure)
	add(r.BirthDate.Err)
	add(r.Gender.Err)
	add(r.Birthplace.Err)
	add(r.ComputedChecksum.Err)
	add(r.EncodedChecksum.Err)

	return errs
}

// Err combines every field error into one error, or returns nil when all
// fields were decoded.
func (r Record) Err() error {
	var result *multierror.Error
	for _, err := range r.Errors() {
		result = multierror.Append(result, err)
	}

	return result.ErrorOrNil()
}

// Valid reports whether every field was decoded and the checksums match.
func (r Record) Valid() bool {
	return r.Err() == nil && r.ChecksumsMatch
}
