package idcode_test

import (
	"idcode/pkg/idcode"
	"idcode/pkg/serrors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDecode_ValidCode(t *testing.T) {
	rec := idcode.Decode("34501234215")

	require.NoError(t, rec.Structure)
	require.NoError(t, rec.Err())
	require.True(t, rec.Valid())

	require.Equal(t, idcode.Date{Year: 1945, Month: time.January, Day: 23}, rec.BirthDate.Value)
	require.Equal(t, "23.01.1945", rec.BirthDate.Value.String())
	require.Equal(t, idcode.GenderMale, rec.Gender.Value)
	require.Equal(t, idcode.Birthplace{Facility: "Pärnu haigla", Registration: 421, Ordinal: 1}, rec.Birthplace.Value)
	require.Equal(t, "Pärnu haigla, birth number 1", rec.Birthplace.Value.String())
	require.Equal(t, 5, rec.ComputedChecksum.Value)
	require.Equal(t, 5, rec.EncodedChecksum.Value)
	require.True(t, rec.ChecksumsMatch)
}

func TestDecode_ChecksumMismatch(t *testing.T) {
	rec := idcode.Decode("34501234216")

	require.NoError(t, rec.Err())
	require.Equal(t, 5, rec.ComputedChecksum.Value)
	require.Equal(t, 6, rec.EncodedChecksum.Value)
	require.False(t, rec.ChecksumsMatch)
	require.False(t, rec.Valid())
}

func TestDecode_StructuralErrors(t *testing.T) {
	tests := []struct {
		name string
		code string
		// fields that must still decode despite the structural failure
		wantDate   bool
		wantGender bool
	}{
		{name: "too short", code: "3450123421", wantDate: true, wantGender: true},
		{name: "too long", code: "345012342150", wantDate: true, wantGender: true},
		{name: "letter in registration", code: "34501234A15", wantDate: true, wantGender: true},
		{name: "letter in month", code: "345A1234215", wantDate: false, wantGender: true},
		{name: "leading letter", code: "A4501234215", wantDate: false, wantGender: false},
		{name: "empty", code: "", wantDate: false, wantGender: false},
		{name: "three characters", code: "345", wantDate: false, wantGender: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := idcode.Decode(tt.code)

			require.ErrorIs(t, rec.Structure, serrors.ErrStructural)
			require.ErrorIs(t, rec.Birthplace.Err, serrors.ErrStructural)
			require.ErrorIs(t, rec.ComputedChecksum.Err, serrors.ErrStructural)
			require.False(t, rec.ChecksumsMatch)
			require.False(t, rec.Valid())
			require.Error(t, rec.Err())

			require.Equal(t, tt.wantDate, rec.BirthDate.OK(), "birth date: %v", rec.BirthDate.Err)
			require.Equal(t, tt.wantGender, rec.Gender.OK(), "gender: %v", rec.Gender.Err)
		})
	}
}

func TestDecode_NonDigitChecksum(t *testing.T) {
	rec := idcode.Decode("3450123421X")

	require.ErrorIs(t, rec.Structure, serrors.ErrStructural)
	require.ErrorIs(t, rec.EncodedChecksum.Err, serrors.ErrChecksumDigit)
	require.False(t, rec.ChecksumsMatch)
	require.True(t, rec.BirthDate.OK())
	require.True(t, rec.Gender.OK())
}

func TestDecode_WrongLengthChecksumIsStructural(t *testing.T) {
	rec := idcode.Decode("345012342155")

	require.ErrorIs(t, rec.EncodedChecksum.Err, serrors.ErrStructural)
	require.NotErrorIs(t, rec.EncodedChecksum.Err, serrors.ErrChecksumDigit)
}

func TestDecode_InvalidCenturyKeepsGender(t *testing.T) {
	rec := idcode.Decode("00010101234")

	require.NoError(t, rec.Structure)
	require.ErrorIs(t, rec.BirthDate.Err, serrors.ErrCentury)
	require.True(t, rec.Gender.OK())
	require.Equal(t, idcode.GenderFemale, rec.Gender.Value)

	// registration 123 and checksum still decode
	require.Equal(t, "Ida-Tallinna keskhaigla, Pelgulinna sünnitusmaja (Tallinn)", rec.Birthplace.Value.Facility)
	require.Equal(t, 103, rec.Birthplace.Value.Ordinal)
	require.True(t, rec.ComputedChecksum.OK())

	rec = idcode.Decode("90010101234")
	require.ErrorIs(t, rec.BirthDate.Err, serrors.ErrCentury)
	require.Equal(t, idcode.GenderMale, rec.Gender.Value)
}

func TestDecode_CalendarErrorDoesNotStopOtherFields(t *testing.T) {
	rec := idcode.Decode("39902304215")

	require.ErrorIs(t, rec.BirthDate.Err, serrors.ErrCalendar)
	require.Contains(t, rec.BirthDate.Err.Error(), "30.02.1999")
	require.True(t, rec.Gender.OK())
	require.True(t, rec.Birthplace.OK())
	require.True(t, rec.ComputedChecksum.OK())
	require.True(t, rec.EncodedChecksum.OK())
}

func TestDecode_UnknownFacility(t *testing.T) {
	rec := idcode.Decode("34501237018")

	require.ErrorIs(t, rec.Birthplace.Err, serrors.ErrUnknownFacility)
	require.True(t, rec.BirthDate.OK())
	require.True(t, rec.ComputedChecksum.OK())
}

func TestDecode_ErrAggregatesDistinctFieldErrors(t *testing.T) {
	rec := idcode.Decode("0999")

	errs := rec.Errors()
	// structure, birth date (century); the structural error shared by
	// birthplace and both checksums is reported once
	require.Len(t, errs, 2)
	require.ErrorIs(t, errs[0], serrors.ErrStructural)
	require.ErrorIs(t, errs[1], serrors.ErrCentury)

	err := rec.Err()
	require.ErrorIs(t, err, serrors.ErrStructural)
	require.ErrorIs(t, err, serrors.ErrCentury)
}

func TestDecode_ShortCodeReportsOneStructuralError(t *testing.T) {
	for _, code := range []string{"", "3", "34"} {
		rec := idcode.Decode(code)

		errs := rec.Errors()
		require.Len(t, errs, 1, "code %q: %v", code, errs)
		require.Same(t, rec.Structure, errs[0])
		require.ErrorIs(t, rec.BirthDate.Err, serrors.ErrStructural)
	}
}

func TestDecode_Idempotent(t *testing.T) {
	for _, code := range []string{"34501234215", "00010101234", "3450123421X", "", "39902304215"} {
		require.Equal(t, idcode.Decode(code), idcode.Decode(code), "code %q", code)
	}
}

func TestDecode_CenturyBands(t *testing.T) {
	bands := map[byte][2]int{
		'1': {1800, 1899}, '2': {1800, 1899},
		'3': {1900, 1999}, '4': {1900, 1999},
		'5': {2000, 2099}, '6': {2000, 2099},
		'7': {2100, 2199}, '8': {2100, 2199},
	}

	for first, band := range bands {
		for _, yy := range []string{"00", "45", "99"} {
			code := string(first) + yy + "0101" + "4215"
			rec := idcode.Decode(code)
			require.True(t, rec.BirthDate.OK(), "code %s: %v", code, rec.BirthDate.Err)
			require.GreaterOrEqual(t, rec.BirthDate.Value.Year, band[0], "code %s", code)
			require.LessOrEqual(t, rec.BirthDate.Value.Year, band[1], "code %s", code)
		}
	}
}

func TestDecode_ChecksumRoundTrip(t *testing.T) {
	prefixes := []string{
		"3450123421", // first pass
		"3450123001", // second pass
		"3450123098", // second pass yields 10, checksum 0
		"5040229421",
		"0000000000",
		"9999999999",
	}
	for _, prefix := range prefixes {
		c, err := idcode.Checksum(prefix)
		require.NoError(t, err)

		rec := idcode.Decode(prefix + string(rune('0'+c)))
		require.True(t, rec.ChecksumsMatch, "prefix %s checksum %d", prefix, c)
	}
}

func FuzzDecode(f *testing.F) {
	f.Add("34501234215")
	f.Add("")
	f.Add("00010101234")
	f.Add("3450123421X")
	f.Add("39902304215")
	f.Add("ÄÄÄÄÄÄÄÄÄÄÄ")
	f.Add(string([]byte{0xff, 0x00, '3'}))

	f.Fuzz(func(t *testing.T, code string) {
		rec := idcode.Decode(code)

		// every field holds either a value or a reason
		if rec.Code != code {
			t.Fatalf("record code %q does not match input %q", rec.Code, code)
		}
		if rec.ChecksumsMatch && (!rec.ComputedChecksum.OK() || !rec.EncodedChecksum.OK()) {
			t.Fatal("checksums match without both checksums")
		}
		if rec.Structure == nil {
			if !rec.Birthplace.OK() && serrors.KindOf(rec.Birthplace.Err) != serrors.ErrUnknownFacility {
				t.Fatalf("unexpected birthplace error for valid structure: %v", rec.Birthplace.Err)
			}
			if !rec.ComputedChecksum.OK() || !rec.EncodedChecksum.OK() {
				t.Fatalf("checksums must decode for valid structure: %v", rec.Err())
			}
		}
		if rec.Valid() != (rec.Err() == nil && rec.ChecksumsMatch) {
			t.Fatal("Valid disagrees with Err and ChecksumsMatch")
		}
	})
}
