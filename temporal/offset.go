package temporal

import "fmt"

// MaxOffsetSeconds is the magnitude of the largest supported UTC offset,
// eighteen hours either side of UTC.
const MaxOffsetSeconds = 18 * SecondsPerHour

// Offset is an offset from UTC in seconds, in the range ±18 hours. The zero
// value is UTC itself.
type Offset struct {
	seconds int
}

var ZeroOffset = Offset{}

// OffsetFromSeconds returns the offset with the given number of seconds east
// of UTC (negative for west).
func OffsetFromSeconds(seconds int) (Offset, error) {
	if seconds < -MaxOffsetSeconds || seconds > MaxOffsetSeconds {
		return Offset{}, fmt.Errorf("offset %d seconds outside range [%+d, %+d]", seconds, -MaxOffsetSeconds, MaxOffsetSeconds)
	}
	return Offset{seconds: seconds}, nil
}

// OffsetFromHoursMinutes returns the offset for the given number of hours
// and minutes; both must carry the same sign.
func OffsetFromHoursMinutes(hours, minutes int) (Offset, error) {
	return OffsetFromSeconds(hours*SecondsPerHour + minutes*SecondsPerMinute)
}

// MustOffset is OffsetFromHoursMinutes for values known to be valid; it
// panics on invalid input.
func MustOffset(hours, minutes int) Offset {
	o, err := OffsetFromHoursMinutes(hours, minutes)
	if err != nil {
		panic(err)
	}
	return o
}

func (o Offset) Seconds() int      { return o.seconds }
func (o Offset) Milliseconds() int { return o.seconds * 1000 }

func (o Offset) String() string {
	if o.seconds == 0 {
		return "Z"
	}
	s := o.seconds
	sign := "+"
	if s < 0 {
		sign = "-"
		s = -s
	}
	if s%SecondsPerHour == 0 {
		return fmt.Sprintf("%s%02d", sign, s/SecondsPerHour)
	}
	if s%SecondsPerMinute == 0 {
		return fmt.Sprintf("%s%02d:%02d", sign, s/SecondsPerHour, s/SecondsPerMinute%60)
	}
	return fmt.Sprintf("%s%02d:%02d:%02d", sign, s/SecondsPerHour, s/SecondsPerMinute%60, s%60)
}
