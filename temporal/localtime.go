package temporal

import "fmt"

// LocalTime is a time of day with nanosecond precision, with no date and no
// time zone. The zero value is midnight.
type LocalTime struct {
	nanoOfDay int64
}

// Midnight is the start of the day, 00:00:00.
var Midnight = LocalTime{}

// NewLocalTime returns the time of day with the given hour, minute and
// second.
func NewLocalTime(hour, minute, second int) (LocalTime, error) {
	return NewLocalTimeWithNanoseconds(hour, minute, second, 0)
}

// NewLocalTimeWithNanoseconds returns the time of day with the given hour,
// minute, second and nanosecond-of-second.
func NewLocalTimeWithNanoseconds(hour, minute, second, nanosecond int) (LocalTime, error) {
	if hour < 0 || hour > 23 {
		return LocalTime{}, fmt.Errorf("hour %d outside range [0, 23]", hour)
	}
	if minute < 0 || minute > 59 {
		return LocalTime{}, fmt.Errorf("minute %d outside range [0, 59]", minute)
	}
	if second < 0 || second > 59 {
		return LocalTime{}, fmt.Errorf("second %d outside range [0, 59]", second)
	}
	if nanosecond < 0 || int64(nanosecond) >= NanosecondsPerSecond {
		return LocalTime{}, fmt.Errorf("nanosecond %d outside range [0, %d]", nanosecond, NanosecondsPerSecond-1)
	}
	nod := int64(hour)*NanosecondsPerHour +
		int64(minute)*NanosecondsPerMinute +
		int64(second)*NanosecondsPerSecond +
		int64(nanosecond)
	return LocalTime{nanoOfDay: nod}, nil
}

// MustLocalTime is NewLocalTime for values known to be valid; it panics on
// invalid input.
func MustLocalTime(hour, minute, second int) LocalTime {
	t, err := NewLocalTime(hour, minute, second)
	if err != nil {
		panic(err)
	}
	return t
}

// LocalTimeFromNanosecondOfDay returns the time of day the given number of
// nanoseconds after midnight.
func LocalTimeFromNanosecondOfDay(nanoOfDay int64) (LocalTime, error) {
	if nanoOfDay < 0 || nanoOfDay >= NanosecondsPerDay {
		return LocalTime{}, fmt.Errorf("nanosecond of day %d outside range [0, %d]", nanoOfDay, NanosecondsPerDay-1)
	}
	return LocalTime{nanoOfDay: nanoOfDay}, nil
}

func (t LocalTime) Hour() int   { return int(t.nanoOfDay / NanosecondsPerHour) }
func (t LocalTime) Minute() int { return int(t.nanoOfDay / NanosecondsPerMinute % 60) }
func (t LocalTime) Second() int { return int(t.nanoOfDay / NanosecondsPerSecond % 60) }

func (t LocalTime) NanosecondOfSecond() int { return int(t.nanoOfDay % NanosecondsPerSecond) }
func (t LocalTime) NanosecondOfDay() int64  { return t.nanoOfDay }

// ClockHourOfHalfDay is the hour as shown on a 12-hour clock: 12, 1..11.
func (t LocalTime) ClockHourOfHalfDay() int {
	h := t.Hour() % 12
	if h == 0 {
		return 12
	}
	return h
}

// On combines the time with a date.
func (t LocalTime) On(d LocalDate) LocalDateTime {
	return LocalDateTime{date: d, time: t}
}

func (t LocalTime) String() string {
	if ns := t.NanosecondOfSecond(); ns != 0 {
		return fmt.Sprintf("%02d:%02d:%02d.%09d", t.Hour(), t.Minute(), t.Second(), ns)
	}
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}
