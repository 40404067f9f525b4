package temporal

// LocalDateTime is a date and time of day in a particular calendar system,
// with no time zone.
type LocalDateTime struct {
	date LocalDate
	time LocalTime
}

// NewLocalDateTime returns the given date-time in the ISO calendar.
func NewLocalDateTime(year, month, day, hour, minute, second int) (LocalDateTime, error) {
	d, err := NewLocalDate(year, month, day)
	if err != nil {
		return LocalDateTime{}, err
	}
	t, err := NewLocalTime(hour, minute, second)
	if err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{date: d, time: t}, nil
}

// MustLocalDateTime is NewLocalDateTime for values known to be valid; it
// panics on invalid input.
func MustLocalDateTime(year, month, day, hour, minute, second int) LocalDateTime {
	dt, err := NewLocalDateTime(year, month, day, hour, minute, second)
	if err != nil {
		panic(err)
	}
	return dt
}

func (dt LocalDateTime) Date() LocalDate      { return dt.date }
func (dt LocalDateTime) TimeOfDay() LocalTime { return dt.time }

func (dt LocalDateTime) Year() int               { return dt.date.Year() }
func (dt LocalDateTime) Month() int              { return dt.date.Month() }
func (dt LocalDateTime) Day() int                { return dt.date.Day() }
func (dt LocalDateTime) Calendar() *Calendar     { return dt.date.Calendar() }
func (dt LocalDateTime) Era() Era                { return dt.date.Era() }
func (dt LocalDateTime) YearOfEra() int          { return dt.date.YearOfEra() }
func (dt LocalDateTime) DayOfWeek() DayOfWeek    { return dt.date.DayOfWeek() }
func (dt LocalDateTime) Hour() int               { return dt.time.Hour() }
func (dt LocalDateTime) Minute() int             { return dt.time.Minute() }
func (dt LocalDateTime) Second() int             { return dt.time.Second() }
func (dt LocalDateTime) NanosecondOfSecond() int { return dt.time.NanosecondOfSecond() }
func (dt LocalDateTime) ClockHourOfHalfDay() int { return dt.time.ClockHourOfHalfDay() }

// PlusDays returns the date-time the given number of days later, at the same
// time of day.
func (dt LocalDateTime) PlusDays(days int) LocalDateTime {
	return LocalDateTime{date: dt.date.PlusDays(days), time: dt.time}
}

func (dt LocalDateTime) Equal(other LocalDateTime) bool {
	return dt.date.Equal(other.date) && dt.time == other.time
}

func (dt LocalDateTime) String() string {
	return dt.date.String() + "T" + dt.time.String()
}
