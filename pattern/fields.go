package pattern

// patternField is a bitset of the value fields a pattern uses, tracked
// during compilation to reject duplicates and validate combinations, and
// consulted by the buckets when combining parsed values.
type patternField uint32

const (
	fieldSign patternField = 1 << iota
	fieldHours12
	fieldHours24
	fieldMinutes
	fieldSeconds
	fieldFractionalSeconds
	fieldAmPm
	fieldYear
	fieldYearTwoDigits
	fieldYearOfEra
	fieldMonthOfYearNumeric
	fieldMonthOfYearText
	fieldDayOfMonth
	fieldDayOfWeek
	fieldEra
	fieldCalendar
	fieldTotalDuration
	fieldEmbeddedDate
	fieldEmbeddedTime

	fieldNone patternField = 0

	allTimeFields = fieldHours12 | fieldHours24 | fieldMinutes | fieldSeconds |
		fieldFractionalSeconds | fieldAmPm | fieldEmbeddedTime
	allDateFields = fieldYear | fieldYearTwoDigits | fieldYearOfEra |
		fieldMonthOfYearNumeric | fieldMonthOfYearText | fieldDayOfMonth |
		fieldDayOfWeek | fieldEra | fieldCalendar | fieldEmbeddedDate
)

// anyOf reports whether any of the given fields is set.
func (f patternField) anyOf(other patternField) bool { return f&other != 0 }

// allOf reports whether all of the given fields are set.
func (f patternField) allOf(other patternField) bool { return f&other == other }
