// Package temporal provides the calendar and clock value types used by the
// pattern engine: Duration, Offset, Instant, LocalDate, LocalTime,
// LocalDateTime and AnnualDate. The types are small immutable values with
// validating constructors; arithmetic is limited to what formatting and
// parsing need.
package temporal

const (
	NanosecondsPerSecond int64 = 1_000_000_000
	NanosecondsPerMinute int64 = 60 * NanosecondsPerSecond
	NanosecondsPerHour   int64 = 60 * NanosecondsPerMinute
	NanosecondsPerDay    int64 = 24 * NanosecondsPerHour

	SecondsPerMinute = 60
	SecondsPerHour   = 60 * SecondsPerMinute
	SecondsPerDay    = 24 * SecondsPerHour

	MinutesPerHour = 60
	HoursPerDay    = 24
)

// floorDiv divides rounding towards negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// floorMod returns a non-negative remainder for positive b.
func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}

func floorDiv64(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod64(a, b int64) int64 {
	return a - floorDiv64(a, b)*b
}
