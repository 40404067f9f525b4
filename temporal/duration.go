package temporal

import (
	"fmt"
	"math"
)

// Duration is a fixed length of time with nanosecond resolution, covering
// the full signed 64-bit nanosecond range (a little over ±106751 days).
type Duration struct {
	nanos int64
}

var (
	MinDuration = Duration{nanos: math.MinInt64}
	MaxDuration = Duration{nanos: math.MaxInt64}
)

func DurationFromNanoseconds(nanos int64) Duration {
	return Duration{nanos: nanos}
}

func DurationFromSeconds(seconds int64) (Duration, error) {
	return durationFromUnits(seconds, NanosecondsPerSecond, "seconds")
}

func DurationFromMinutes(minutes int64) (Duration, error) {
	return durationFromUnits(minutes, NanosecondsPerMinute, "minutes")
}

func DurationFromHours(hours int64) (Duration, error) {
	return durationFromUnits(hours, NanosecondsPerHour, "hours")
}

func DurationFromDays(days int64) (Duration, error) {
	return durationFromUnits(days, NanosecondsPerDay, "days")
}

func durationFromUnits(units, nanosPerUnit int64, name string) (Duration, error) {
	if units > math.MaxInt64/nanosPerUnit || units < math.MinInt64/nanosPerUnit {
		return Duration{}, fmt.Errorf("%d %s overflows the representable duration range", units, name)
	}
	return Duration{nanos: units * nanosPerUnit}, nil
}

func (d Duration) Nanoseconds() int64 { return d.nanos }

// FloorDays is the whole number of days, rounding towards negative infinity.
func (d Duration) FloorDays() int {
	return int(floorDiv64(d.nanos, NanosecondsPerDay))
}

// NanosecondOfFloorDay is the non-negative nanosecond within the floor day.
func (d Duration) NanosecondOfFloorDay() int64 {
	return floorMod64(d.nanos, NanosecondsPerDay)
}

// Plus returns the sum of two durations, reporting overflow.
func (d Duration) Plus(other Duration) (Duration, error) {
	sum := d.nanos + other.nanos
	if (other.nanos > 0 && sum < d.nanos) || (other.nanos < 0 && sum > d.nanos) {
		return Duration{}, fmt.Errorf("duration sum overflows the representable range")
	}
	return Duration{nanos: sum}, nil
}

func (d Duration) String() string {
	sign := ""
	n := d.nanos
	u := uint64(n)
	if n < 0 {
		sign = "-"
		u = -uint64(n)
	}
	perDay := uint64(NanosecondsPerDay)
	days := u / perDay
	rem := u % perDay
	return fmt.Sprintf("%s%d:%02d:%02d:%02d.%09d", sign,
		days,
		rem/uint64(NanosecondsPerHour),
		rem/uint64(NanosecondsPerMinute)%60,
		rem/uint64(NanosecondsPerSecond)%60,
		rem%uint64(NanosecondsPerSecond))
}
