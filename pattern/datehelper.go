package pattern

import (
	"bytes"

	"github.com/dhamidi/chrono/culture"
	"github.com/dhamidi/chrono/temporal"
)

// createYearOfEraHandler compiles 'y': two digits parse 0-99 and format
// modulo 100, four digits parse the full year of era. Other counts are
// invalid.
func createYearOfEraHandler[T any](getter func(T) int64, setter func(parseBucket[T], int64)) characterHandler[T] {
	return func(pc *patternCursor, b *steppedPatternBuilder[T]) error {
		count, err := pc.getRepeatCount(4)
		if err != nil {
			return err
		}
		if err := b.addField(fieldYearOfEra, pc.current); err != nil {
			return err
		}
		switch count {
		case 2:
			b.addParseValueAction(2, 2, 'y', 0, 99, setter)
			// Remember that this was a two-digit year; the bucket expands it
			// against the template century.
			if err := b.addField(fieldYearTwoDigits, pc.current); err != nil {
				return err
			}
			b.addFormatLeftPad(2, func(v T) int64 {
				return ((getter(v) % 100) + 100) % 100
			}, true, true)
		case 4:
			b.addParseValueAction(4, 4, 'y', 1, 9999, setter)
			b.addFormatLeftPad(4, getter, false, true)
		default:
			return patternError(PatternErrorInvalidRepeatCount, msgInvalidRepeatCount, string(pc.current), count)
		}
		return nil
	}
}

// createMonthOfYearHandler compiles 'M': one or two digits for the numeric
// month, three or four repetitions for the short or long month name. Name
// parsing accepts genitive and standalone forms; name formatting picks the
// genitive form only when the finished pattern also contains a day of the
// month, which is why it is a deferred format action.
func createMonthOfYearHandler[T any](numberGetter func(T) int64, textGetter func(T) int,
	numberSetter func(parseBucket[T], int64), textSetter func(parseBucket[T], int)) characterHandler[T] {
	return func(pc *patternCursor, b *steppedPatternBuilder[T]) error {
		count, err := pc.getRepeatCount(4)
		if err != nil {
			return err
		}
		var field patternField
		switch count {
		case 1, 2:
			field = fieldMonthOfYearNumeric
			b.addParseValueAction(count, 2, pc.current, 1, 99, numberSetter)
			b.addFormatLeftPad(count, numberGetter, true, count == 2)
		case 3, 4:
			field = fieldMonthOfYearText
			c := b.culture
			genitive, standalone := c.ShortMonthGenitiveNames, c.ShortMonthNames
			if count == 4 {
				genitive, standalone = c.MonthGenitiveNames, c.MonthNames
			}
			// Genitive first: on a length tie the genitive form wins.
			b.addParseLongestTextAction(pc.current, textSetter, genitive, standalone)
			b.addDeferredFormatAction(func(finalFields patternField) formatStep[T] {
				names := standalone
				if finalFields.anyOf(fieldDayOfMonth) {
					names = genitive
				}
				return func(v T, buf *bytes.Buffer) { buf.WriteString(names[textGetter(v)]) }
			})
		default:
			return patternError(PatternErrorInvalidRepeatCount, msgInvalidRepeatCount, string(pc.current), count)
		}
		return b.addField(field, pc.current)
	}
}

// createDayHandler compiles 'd': one or two digits for the day of the
// month, three or four repetitions for the short or long day-of-week name.
func createDayHandler[T any](dayOfMonthGetter func(T) int64, dayOfWeekGetter func(T) int,
	dayOfMonthSetter func(parseBucket[T], int64), dayOfWeekSetter func(parseBucket[T], int)) characterHandler[T] {
	return func(pc *patternCursor, b *steppedPatternBuilder[T]) error {
		count, err := pc.getRepeatCount(4)
		if err != nil {
			return err
		}
		var field patternField
		switch count {
		case 1, 2:
			field = fieldDayOfMonth
			b.addParseValueAction(count, 2, pc.current, 1, 99, dayOfMonthSetter)
			b.addFormatLeftPad(count, dayOfMonthGetter, true, count == 2)
		case 3, 4:
			field = fieldDayOfWeek
			names := b.culture.ShortDayNames
			if count == 4 {
				names = b.culture.DayNames
			}
			b.addParseLongestTextAction(pc.current, dayOfWeekSetter, names)
			b.addFormatAction(func(v T, buf *bytes.Buffer) { buf.WriteString(names[dayOfWeekGetter(v)]) })
		default:
			return patternError(PatternErrorInvalidRepeatCount, msgInvalidRepeatCount, string(pc.current), count)
		}
		return b.addField(field, pc.current)
	}
}

// createEraHandler compiles 'g': parsing matches any era name of the
// bucket's calendar, formatting writes the era's primary name.
func createEraHandler[T any](eraGetter func(T) temporal.Era,
	dateBucketOf func(parseBucket[T]) *localDateParseBucket) characterHandler[T] {
	return func(pc *patternCursor, b *steppedPatternBuilder[T]) error {
		if _, err := pc.getRepeatCount(2); err != nil {
			return err
		}
		if err := b.addField(fieldEra, pc.current); err != nil {
			return err
		}
		c := b.culture
		b.addParseAction(func(cursor *valueCursor, bucket parseBucket[T]) *ParseResult[T] {
			return parseEra[T](c, cursor, dateBucketOf(bucket))
		})
		b.addFormatAction(func(v T, buf *bytes.Buffer) {
			buf.WriteString(c.EraPrimaryName(eraGetter(v)))
		})
		return nil
	}
}

func parseEra[T any](c *culture.Culture, cursor *valueCursor, dateBucket *localDateParseBucket) *ParseResult[T] {
	for _, era := range dateBucket.calendar.Eras() {
		for _, eraName := range c.EraNames(era) {
			if cursor.matchCaseInsensitive(eraName, true) {
				dateBucket.era = era
				dateBucket.eraSet = true
				return nil
			}
		}
	}
	r := parseFailure[T](ParseErrorMismatchedText, cursor, msgMismatchedText, 'g')
	return &r
}

// createCalendarHandler compiles 'c': parsing matches a calendar system id
// exactly, formatting writes the value's calendar id.
func createCalendarHandler[T any](getter func(T) *temporal.Calendar,
	setter func(parseBucket[T], *temporal.Calendar)) characterHandler[T] {
	return func(pc *patternCursor, b *steppedPatternBuilder[T]) error {
		if err := b.addField(fieldCalendar, pc.current); err != nil {
			return err
		}
		b.addParseAction(func(cursor *valueCursor, bucket parseBucket[T]) *ParseResult[T] {
			for _, id := range temporal.CalendarIDs() {
				if cursor.match(id) {
					calendar, _ := temporal.CalendarByID(id)
					setter(bucket, calendar)
					return nil
				}
			}
			r := parseFailure[T](ParseErrorNoMatchingCalendarSystem, cursor, msgNoMatchingCalendar)
			return &r
		})
		b.addFormatAction(func(v T, buf *bytes.Buffer) { buf.WriteString(getter(v).ID()) })
		return nil
	}
}
