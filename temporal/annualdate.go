package temporal

import "fmt"

// AnnualDate is a month and day without a year, such as a birthday or
// holiday. February 29 is allowed; validation uses a leap year.
type AnnualDate struct {
	month int
	day   int
}

// NewAnnualDate returns the annual date with the given month and day.
func NewAnnualDate(month, day int) (AnnualDate, error) {
	// Year 2000 is a leap year, so 02-29 validates.
	if err := CalendarISO.validate(2000, month, day); err != nil {
		return AnnualDate{}, err
	}
	return AnnualDate{month: month, day: day}, nil
}

// MustAnnualDate is NewAnnualDate for values known to be valid; it panics on
// invalid input.
func MustAnnualDate(month, day int) AnnualDate {
	ad, err := NewAnnualDate(month, day)
	if err != nil {
		panic(err)
	}
	return ad
}

func (ad AnnualDate) Month() int { return ad.month }
func (ad AnnualDate) Day() int   { return ad.day }

// InYear returns the annual date in the given ISO year, truncating
// February 29 to February 28 in non-leap years.
func (ad AnnualDate) InYear(year int) (LocalDate, error) {
	day := ad.day
	if ad.month == 2 && day == 29 && !CalendarISO.IsLeapYear(year) {
		day = 28
	}
	return NewLocalDate(year, ad.month, day)
}

func (ad AnnualDate) String() string {
	return fmt.Sprintf("%02d-%02d", ad.month, ad.day)
}
