package idcode

import (
	"fmt"
	"idcode/pkg/serrors"
	"time"
)

// Date is a calendar date decoded from a code. It carries no time of day and
// no location.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// String renders the date as DD.MM.YYYY.
func (d Date) String() string {
	return fmt.Sprintf("%02d.%02d.%04d", d.Day, int(d.Month), d.Year)
}

// Time returns the date as midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// IsLeapYear applies the Gregorian rule: divisible by 4 and either not
// divisible by 100 or divisible by 400.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysIn returns the number of days of month in year.
func DaysIn(month time.Month, year int) int {
	switch month {
	case time.February:
		if IsLeapYear(year) {
			return 29
		}

		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// CenturyBase maps the first digit of code to the first year of its century:
// 1-2 to 1800, 3-4 to 1900, 5-6 to 2000 and 7-8 to 2100.
func CenturyBase(code string) (int, error) {
	if len(code) <= centuryPos {
		return 0, serrors.With(serrors.ErrStructural, "code is empty")
	}

	switch code[centuryPos] {
	case '1', '2':
		return 1800, nil
	case '3', '4':
		return 1900, nil
	case '5', '6':
		return 2000, nil
	case '7', '8':
		return 2100, nil
	default:
		return 0, serrors.With(serrors.ErrCentury,
			"invalid century digit %q: first digit must be between 1 and 8", runeAt(code, centuryPos))
	}
}

// BirthYear combines the century digit with the two-digit year of code.
func BirthYear(code string) (int, error) {
	base, err := CenturyBase(code)
	if err != nil {
		return 0, err
	}

	if len(code) < yearPos+2 {
		return 0, serrors.With(serrors.ErrStructural, "code %q is too short to hold a birth year", code)
	}
	yy, ok := number(code, yearPos, 2)
	if !ok {
		return 0, serrors.With(serrors.ErrDateField, "invalid birth year %q", code[yearPos:yearPos+2])
	}

	return base + yy, nil
}

// BirthDate decodes the birth date of code. Month and day are range checked
// first, then the triple must form a real Gregorian date.
func BirthDate(code string) (Date, error) {
	year, err := BirthYear(code)
	if err != nil {
		return Date{}, err
	}

	if len(code) < dayPos+2 {
		return Date{}, serrors.With(serrors.ErrStructural, "code %q is too short to hold a birth date", code)
	}
	monthText, dayText := code[monthPos:monthPos+2], code[dayPos:dayPos+2]

	month, ok := number(code, monthPos, 2)
	if !ok || month < 1 || month > 12 {
		return Date{}, serrors.With(serrors.ErrDateField, "invalid month %q", monthText)
	}

	day, ok := number(code, dayPos, 2)
	if !ok || day < 1 || day > 31 {
		return Date{}, serrors.With(serrors.ErrDateField, "invalid day %q", dayText)
	}

	if day > DaysIn(time.Month(month), year) {
		return Date{}, serrors.With(serrors.ErrCalendar,
			"%s.%s.%04d is an invalid date value", dayText, monthText, year)
	}

	return Date{Year: year, Month: time.Month(month), Day: day}, nil
}
