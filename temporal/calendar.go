package temporal

import "fmt"

// Era is a calendar era. Both supported calendar systems use the common
// era / before-common-era pair.
type Era int

const (
	EraCommon Era = iota
	EraBeforeCommon
)

func (e Era) String() string {
	switch e {
	case EraCommon:
		return "CE"
	case EraBeforeCommon:
		return "BCE"
	default:
		return "Unknown"
	}
}

// Calendar is a calendar system. Two systems are built in: the proleptic
// Gregorian calendar ("ISO") and the proleptic Julian calendar ("Julian").
// Years run from -9999 to 9999 in both; year 0 exists and precedes year 1.
type Calendar struct {
	id        string
	gregorian bool
}

var (
	CalendarISO    = &Calendar{id: "ISO", gregorian: true}
	CalendarJulian = &Calendar{id: "Julian", gregorian: false}
)

var calendars = []*Calendar{CalendarISO, CalendarJulian}

// CalendarByID looks up a calendar system by its identifier.
func CalendarByID(id string) (*Calendar, bool) {
	for _, c := range calendars {
		if c.id == id {
			return c, true
		}
	}
	return nil, false
}

// CalendarIDs lists the identifiers of all calendar systems, ISO first.
func CalendarIDs() []string {
	ids := make([]string, len(calendars))
	for i, c := range calendars {
		ids[i] = c.id
	}
	return ids
}

func (c *Calendar) ID() string { return c.id }

func (c *Calendar) String() string { return c.id }

func (c *Calendar) MinYear() int { return -9999 }

func (c *Calendar) MaxYear() int { return 9999 }

func (c *Calendar) MonthsInYear(year int) int { return 12 }

func (c *Calendar) IsLeapYear(year int) bool {
	if year%4 != 0 {
		return false
	}
	if !c.gregorian {
		return true
	}
	return year%100 != 0 || year%400 == 0
}

var daysPerMonth = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func (c *Calendar) DaysInMonth(year, month int) int {
	if month == 2 && c.IsLeapYear(year) {
		return 29
	}
	return daysPerMonth[month]
}

// Eras lists the eras of the calendar, most recent first.
func (c *Calendar) Eras() []Era {
	return []Era{EraCommon, EraBeforeCommon}
}

// EraOf returns the era containing the given absolute year.
func (c *Calendar) EraOf(year int) Era {
	if year >= 1 {
		return EraCommon
	}
	return EraBeforeCommon
}

// YearOfEra converts an absolute year to a year within its era. Year 1 is
// 1 CE; year 0 is 1 BCE.
func (c *Calendar) YearOfEra(year int) int {
	if year >= 1 {
		return year
	}
	return 1 - year
}

// AbsoluteYear converts a year-of-era back to an absolute year.
func (c *Calendar) AbsoluteYear(yearOfEra int, era Era) (int, error) {
	min, max := c.MinYearOfEra(era), c.MaxYearOfEra(era)
	if yearOfEra < min || yearOfEra > max {
		return 0, fmt.Errorf("year %d outside range [%d, %d] for era %s in calendar %s", yearOfEra, min, max, era, c.id)
	}
	if era == EraCommon {
		return yearOfEra, nil
	}
	return 1 - yearOfEra, nil
}

func (c *Calendar) MinYearOfEra(era Era) int { return 1 }

func (c *Calendar) MaxYearOfEra(era Era) int {
	if era == EraCommon {
		return c.MaxYear()
	}
	return 1 - c.MinYear()
}

// daysSinceEpoch converts a calendar date to days since 1970-01-01 (ISO).
// Both conversions go through the Julian day number; the trusted inputs are
// a valid month and day for the year.
func (c *Calendar) daysSinceEpoch(year, month, day int) int {
	a := floorDiv(14-month, 12)
	y := year + 4800 - a
	m := month + 12*a - 3
	jdn := day + floorDiv(153*m+2, 5) + 365*y + floorDiv(y, 4) - 32083
	if c.gregorian {
		jdn += -floorDiv(y, 100) + floorDiv(y, 400) + 38
	}
	return jdn - unixEpochJDN
}

const unixEpochJDN = 2440588

// fromDaysSinceEpoch converts days since 1970-01-01 (ISO) back to a date in
// this calendar.
func (c *Calendar) fromDaysSinceEpoch(days int) (year, month, day int) {
	jdn := days + unixEpochJDN
	var b, cc int
	if c.gregorian {
		a := jdn + 32044
		b = floorDiv(4*a+3, 146097)
		cc = a - floorDiv(146097*b, 4)
	} else {
		b = 0
		cc = jdn + 32082
	}
	d := floorDiv(4*cc+3, 1461)
	e := cc - floorDiv(1461*d, 4)
	m := floorDiv(5*e+2, 153)
	day = e - floorDiv(153*m+2, 5) + 1
	month = m + 3 - 12*floorDiv(m, 10)
	year = 100*b + d - 4800 + floorDiv(m, 10)
	return year, month, day
}

func (c *Calendar) validate(year, month, day int) error {
	if year < c.MinYear() || year > c.MaxYear() {
		return fmt.Errorf("year %d outside range [%d, %d] in calendar %s", year, c.MinYear(), c.MaxYear(), c.id)
	}
	if month < 1 || month > c.MonthsInYear(year) {
		return fmt.Errorf("month %d outside range [1, %d] in calendar %s", month, c.MonthsInYear(year), c.id)
	}
	if day < 1 || day > c.DaysInMonth(year, month) {
		return fmt.Errorf("day %d outside range [1, %d] for %04d-%02d in calendar %s", day, c.DaysInMonth(year, month), year, month, c.id)
	}
	return nil
}
