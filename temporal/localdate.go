package temporal

import "fmt"

// LocalDate is a date in a particular calendar system, with no time of day
// and no time zone.
type LocalDate struct {
	year     int
	month    int
	day      int
	calendar *Calendar
}

// NewLocalDate returns a date in the ISO calendar.
func NewLocalDate(year, month, day int) (LocalDate, error) {
	return NewLocalDateIn(CalendarISO, year, month, day)
}

// NewLocalDateIn returns a date in the given calendar system.
func NewLocalDateIn(calendar *Calendar, year, month, day int) (LocalDate, error) {
	if calendar == nil {
		calendar = CalendarISO
	}
	if err := calendar.validate(year, month, day); err != nil {
		return LocalDate{}, err
	}
	return LocalDate{year: year, month: month, day: day, calendar: calendar}, nil
}

// MustLocalDate is NewLocalDate for values known to be valid; it panics on
// invalid input.
func MustLocalDate(year, month, day int) LocalDate {
	d, err := NewLocalDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

func (d LocalDate) cal() *Calendar {
	if d.calendar == nil {
		return CalendarISO
	}
	return d.calendar
}

func (d LocalDate) Year() int           { return d.year }
func (d LocalDate) Month() int          { return d.month }
func (d LocalDate) Day() int            { return d.day }
func (d LocalDate) Calendar() *Calendar { return d.cal() }
func (d LocalDate) Era() Era            { return d.cal().EraOf(d.year) }
func (d LocalDate) YearOfEra() int      { return d.cal().YearOfEra(d.year) }

// DaysSinceEpoch returns the number of days between this date and the ISO
// date 1970-01-01; dates before the epoch are negative.
func (d LocalDate) DaysSinceEpoch() int {
	return d.cal().daysSinceEpoch(d.year, d.month, d.day)
}

func (d LocalDate) DayOfWeek() DayOfWeek {
	// 1970-01-01 was a Thursday.
	return DayOfWeek(floorMod(d.DaysSinceEpoch()+3, 7) + 1)
}

func (d LocalDate) DayOfYear() int {
	doy := d.day
	for m := 1; m < d.month; m++ {
		doy += d.cal().DaysInMonth(d.year, m)
	}
	return doy
}

// PlusDays returns the date the given number of days later, staying in the
// same calendar system.
func (d LocalDate) PlusDays(days int) LocalDate {
	c := d.cal()
	y, m, dd := c.fromDaysSinceEpoch(d.DaysSinceEpoch() + days)
	return LocalDate{year: y, month: m, day: dd, calendar: c}
}

// WithCalendar converts the date to the same day in another calendar system.
func (d LocalDate) WithCalendar(calendar *Calendar) (LocalDate, error) {
	if calendar == nil {
		calendar = CalendarISO
	}
	y, m, dd := calendar.fromDaysSinceEpoch(d.DaysSinceEpoch())
	if y < calendar.MinYear() || y > calendar.MaxYear() {
		return LocalDate{}, fmt.Errorf("date %s outside range of calendar %s", d, calendar.ID())
	}
	return LocalDate{year: y, month: m, day: dd, calendar: calendar}, nil
}

// At combines the date with a time of day.
func (d LocalDate) At(t LocalTime) LocalDateTime {
	return LocalDateTime{date: d, time: t}
}

func (d LocalDate) Equal(other LocalDate) bool {
	return d.year == other.year && d.month == other.month && d.day == other.day && d.cal() == other.cal()
}

func (d LocalDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}
