package temporal

import "fmt"

// Instant is a point on the global time line with nanosecond resolution,
// stored as days since the Unix epoch plus a nanosecond within the day.
// The representable range covers the ISO years -9999 to 9999, with two
// sentinel values just outside it for the start and end of time.
type Instant struct {
	days      int
	nanoOfDay int64
}

var (
	minInstantDays = CalendarISO.daysSinceEpoch(-9999, 1, 1)
	maxInstantDays = CalendarISO.daysSinceEpoch(9999, 12, 31)

	// MinInstant and MaxInstant bound the representable range.
	MinInstant = Instant{days: minInstantDays}
	MaxInstant = Instant{days: maxInstantDays, nanoOfDay: NanosecondsPerDay - 1}
)

// BeforeMinInstant is the sentinel for the start of time; it is not a valid
// instant.
func BeforeMinInstant() Instant {
	return Instant{days: minInstantDays - 1}
}

// AfterMaxInstant is the sentinel for the end of time; it is not a valid
// instant.
func AfterMaxInstant() Instant {
	return Instant{days: maxInstantDays + 1, nanoOfDay: NanosecondsPerDay - 1}
}

// UnixEpoch is the instant 1970-01-01T00:00:00Z.
var UnixEpoch = Instant{}

// InstantFromUnixSeconds returns the instant the given number of seconds
// after the Unix epoch.
func InstantFromUnixSeconds(seconds int64) (Instant, error) {
	days := floorDiv64(seconds, int64(SecondsPerDay))
	nod := floorMod64(seconds, int64(SecondsPerDay)) * NanosecondsPerSecond
	i := Instant{days: int(days), nanoOfDay: nod}
	if !i.IsValid() {
		return Instant{}, fmt.Errorf("unix seconds %d outside the representable instant range", seconds)
	}
	return i, nil
}

// InstantFromUTC returns the instant at the given UTC date-time. The date is
// converted through its own calendar, so Julian-calendar date-times work.
func InstantFromUTC(dt LocalDateTime) (Instant, error) {
	days := dt.Date().DaysSinceEpoch()
	if days < minInstantDays || days > maxInstantDays {
		return Instant{}, fmt.Errorf("date-time %s outside the representable instant range", dt)
	}
	return Instant{days: days, nanoOfDay: dt.TimeOfDay().NanosecondOfDay()}, nil
}

// IsValid reports whether the instant is inside the representable range, as
// opposed to one of the start/end-of-time sentinels.
func (i Instant) IsValid() bool {
	return i.days >= minInstantDays && i.days <= maxInstantDays
}

func (i Instant) DaysSinceEpoch() int    { return i.days }
func (i Instant) NanosecondOfDay() int64 { return i.nanoOfDay }

// InUTC converts the instant to an ISO-calendar UTC date-time. The instant
// must be valid.
func (i Instant) InUTC() LocalDateTime {
	y, m, d := CalendarISO.fromDaysSinceEpoch(i.days)
	return LocalDateTime{
		date: LocalDate{year: y, month: m, day: d, calendar: CalendarISO},
		time: LocalTime{nanoOfDay: i.nanoOfDay},
	}
}

func (i Instant) Equal(other Instant) bool {
	return i.days == other.days && i.nanoOfDay == other.nanoOfDay
}

func (i Instant) String() string {
	if i.days < minInstantDays {
		return "StartOfTime"
	}
	if i.days > maxInstantDays {
		return "EndOfTime"
	}
	return i.InUTC().String() + "Z"
}
