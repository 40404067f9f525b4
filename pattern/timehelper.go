package pattern

import (
	"bytes"
	"strings"
)

// createPeriodHandler compiles '.' as a decimal separator. Followed by 'F'
// it becomes optional together with the fraction: parsing succeeds with no
// fraction at all, but a lone separator with no digits is an error, and
// formatting drops the separator again when the fraction is zero. Without a
// following 'F' it is a plain literal.
func createPeriodHandler[T any](maxCount int, getter func(T) int64, setter func(parseBucket[T], int64)) characterHandler[T] {
	return func(pc *patternCursor, b *steppedPatternBuilder[T]) error {
		if pc.peekNext() != 'F' {
			b.addLiteralChar('.', mismatchedCharacter[T]('.'))
			return nil
		}
		pc.moveNext()
		count, err := pc.getRepeatCount(maxCount)
		if err != nil {
			return err
		}
		if err := b.addField(fieldFractionalSeconds, pc.current); err != nil {
			return err
		}
		b.addParseAction(func(cursor *valueCursor, bucket parseBucket[T]) *ParseResult[T] {
			// No separator at all is fine, the fraction is just absent.
			if !cursor.matchByte('.') {
				return nil
			}
			// A separator with no digit after it is not.
			fraction, ok := cursor.parseFraction(count, maxCount, 1)
			if !ok {
				r := parseFailure[T](ParseErrorMismatchedNumber, cursor, msgMismatchedNumber, strings.Repeat("F", count))
				return &r
			}
			setter(bucket, fraction)
			return nil
		})
		b.addFormatAction(func(_ T, buf *bytes.Buffer) { buf.WriteByte('.') })
		b.addFormatFractionTruncate(count, maxCount, getter)
		return nil
	}
}

// createCommaDotHandler compiles ';' as an ISO-friendly decimal separator:
// parsing accepts either '.' or ',', formatting always writes '.'.
func createCommaDotHandler[T any](maxCount int, getter func(T) int64, setter func(parseBucket[T], int64)) characterHandler[T] {
	return func(pc *patternCursor, b *steppedPatternBuilder[T]) error {
		if pc.peekNext() != 'F' {
			b.addParseAction(func(cursor *valueCursor, _ parseBucket[T]) *ParseResult[T] {
				if cursor.matchByte('.') || cursor.matchByte(',') {
					return nil
				}
				r := parseFailure[T](ParseErrorMismatchedCharacter, cursor, msgMismatchedCharacter, ";")
				return &r
			})
			b.addFormatAction(func(_ T, buf *bytes.Buffer) { buf.WriteByte('.') })
			return nil
		}
		pc.moveNext()
		count, err := pc.getRepeatCount(maxCount)
		if err != nil {
			return err
		}
		if err := b.addField(fieldFractionalSeconds, pc.current); err != nil {
			return err
		}
		b.addParseAction(func(cursor *valueCursor, bucket parseBucket[T]) *ParseResult[T] {
			if !cursor.matchByte('.') && !cursor.matchByte(',') {
				return nil
			}
			fraction, ok := cursor.parseFraction(count, maxCount, 1)
			if !ok {
				r := parseFailure[T](ParseErrorMismatchedNumber, cursor, msgMismatchedNumber, strings.Repeat("F", count))
				return &r
			}
			setter(bucket, fraction)
			return nil
		})
		b.addFormatAction(func(_ T, buf *bytes.Buffer) { buf.WriteByte('.') })
		b.addFormatFractionTruncate(count, maxCount, getter)
		return nil
	}
}

// createFractionHandler compiles 'f' (exactly count digits) and 'F' (up to
// count digits, trailing zeros trimmed when formatting).
func createFractionHandler[T any](maxCount int, getter func(T) int64, setter func(parseBucket[T], int64)) characterHandler[T] {
	return func(pc *patternCursor, b *steppedPatternBuilder[T]) error {
		patternCharacter := pc.current
		count, err := pc.getRepeatCount(maxCount)
		if err != nil {
			return err
		}
		if err := b.addField(fieldFractionalSeconds, pc.current); err != nil {
			return err
		}
		minimumDigits := 0
		if patternCharacter == 'f' {
			minimumDigits = count
		}
		b.addParseAction(func(cursor *valueCursor, bucket parseBucket[T]) *ParseResult[T] {
			fraction, ok := cursor.parseFraction(count, maxCount, minimumDigits)
			if !ok {
				if patternCharacter == 'f' {
					r := parseFailure[T](ParseErrorMismatchedNumber, cursor, msgMismatchedNumber, strings.Repeat(string(patternCharacter), count))
					return &r
				}
				return nil
			}
			setter(bucket, fraction)
			return nil
		})
		if patternCharacter == 'f' {
			b.addFormatFraction(count, maxCount, getter)
		} else {
			b.addFormatFractionTruncate(count, maxCount, getter)
		}
		return nil
	}
}

// createAmPmHandler compiles 't' (single character designator) and 'tt'
// (full designator). Cultures may leave one or both designators empty; with
// both empty the half-day is taken from the template value, recorded as the
// out-of-band value 2.
func createAmPmHandler[T any](hourOfDayGetter func(T) int64, amPmSetter func(parseBucket[T], int)) characterHandler[T] {
	return func(pc *patternCursor, b *steppedPatternBuilder[T]) error {
		count, err := pc.getRepeatCount(2)
		if err != nil {
			return err
		}
		if err := b.addField(fieldAmPm, pc.current); err != nil {
			return err
		}
		am := b.culture.AMDesignator
		pm := b.culture.PMDesignator

		if am == "" && pm == "" {
			b.addParseAction(func(_ *valueCursor, bucket parseBucket[T]) *ParseResult[T] {
				amPmSetter(bucket, 2)
				return nil
			})
			return nil
		}
		if am == "" || pm == "" {
			// Only one designator exists; its absence means the other half
			// of the day.
			nonEmpty, nonEmptyValue := pm, 1
			if pm == "" {
				nonEmpty, nonEmptyValue = am, 0
			}
			b.addParseAction(func(cursor *valueCursor, bucket parseBucket[T]) *ParseResult[T] {
				if cursor.matchCaseInsensitive(nonEmpty, true) {
					amPmSetter(bucket, nonEmptyValue)
				} else {
					amPmSetter(bucket, 1-nonEmptyValue)
				}
				return nil
			})
			b.addFormatAction(func(v T, buf *bytes.Buffer) {
				if hourOfDayGetter(v) > 11 {
					buf.WriteString(pm)
				} else {
					buf.WriteString(am)
				}
			})
			return nil
		}

		if count == 1 {
			amFirst, pmFirst := am[:1], pm[:1]
			b.addParseAction(func(cursor *valueCursor, bucket parseBucket[T]) *ParseResult[T] {
				if cursor.matchCaseInsensitive(amFirst, true) {
					amPmSetter(bucket, 0)
					return nil
				}
				if cursor.matchCaseInsensitive(pmFirst, true) {
					amPmSetter(bucket, 1)
					return nil
				}
				r := parseFailure[T](ParseErrorMissingAmPmDesignator, cursor, msgMissingAmPmDesignator)
				return &r
			})
			b.addFormatAction(func(v T, buf *bytes.Buffer) {
				if hourOfDayGetter(v) > 11 {
					buf.WriteString(pmFirst)
				} else {
					buf.WriteString(amFirst)
				}
			})
			return nil
		}

		// Match the longer designator first, in case one is a prefix of the
		// other.
		longer, shorter, longerValue := am, pm, 0
		if len(pm) > len(am) {
			longer, shorter, longerValue = pm, am, 1
		}
		b.addParseAction(func(cursor *valueCursor, bucket parseBucket[T]) *ParseResult[T] {
			if cursor.matchCaseInsensitive(longer, true) {
				amPmSetter(bucket, longerValue)
				return nil
			}
			if cursor.matchCaseInsensitive(shorter, true) {
				amPmSetter(bucket, 1-longerValue)
				return nil
			}
			r := parseFailure[T](ParseErrorMissingAmPmDesignator, cursor, msgMissingAmPmDesignator)
			return &r
		})
		b.addFormatAction(func(v T, buf *bytes.Buffer) {
			if hourOfDayGetter(v) > 11 {
				buf.WriteString(pm)
			} else {
				buf.WriteString(am)
			}
		})
		return nil
	}
}
