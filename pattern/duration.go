package pattern

import (
	"math"
	"strings"
	"sync"

	"github.com/dhamidi/chrono/culture"
	"github.com/dhamidi/chrono/temporal"
)

// durationParseBucket accumulates a running nanosecond total; every parsed
// field just adds its contribution, and the sign is applied at the end.
type durationParseBucket struct {
	currentNanos int64
	negative     bool
	overflowed   bool
}

func (b *durationParseBucket) addNanoseconds(nanos int64) {
	sum := b.currentNanos + nanos
	if nanos > 0 && sum < b.currentNanos {
		b.overflowed = true
	}
	b.currentNanos = sum
}

func (b *durationParseBucket) addUnits(units, nanosPerUnit int64) {
	if units != 0 && units > math.MaxInt64/nanosPerUnit {
		b.overflowed = true
		return
	}
	b.addNanoseconds(units * nanosPerUnit)
}

func (b *durationParseBucket) calculateValue(usedFields patternField, text string) ParseResult[temporal.Duration] {
	if b.overflowed {
		return postParseFailure[temporal.Duration](ParseErrorOverallValueOutOfRange, text, msgOverallValueOutOfRange, "Duration")
	}
	nanos := b.currentNanos
	if b.negative {
		nanos = -nanos
	}
	return successResult(temporal.DurationFromNanoseconds(nanos))
}

func newDurationBucket() parseBucket[temporal.Duration] { return &durationParseBucket{} }

func durationBucket(b parseBucket[temporal.Duration]) *durationParseBucket {
	return b.(*durationParseBucket)
}

// positiveNanosecondUnits is the magnitude of the duration in the given
// unit, truncated towards zero.
func positiveNanosecondUnits(d temporal.Duration, nanosPerUnit int64) int64 {
	n := d.Nanoseconds()
	if n >= 0 {
		return n / nanosPerUnit
	}
	// Negate through uint64 so the minimum value survives.
	return int64(-uint64(n) / uint64(nanosPerUnit))
}

func positiveDurationNanosecondOfSecond(d temporal.Duration) int64 {
	n := d.Nanoseconds()
	if n >= 0 {
		return n % temporal.NanosecondsPerSecond
	}
	return int64(-uint64(n) % uint64(temporal.NanosecondsPerSecond))
}

func durationNonNegative(d temporal.Duration) bool { return d.Nanoseconds() >= 0 }

// createTotalDurationHandler compiles one of the capital specifiers that
// express the whole duration in a single unit; only one may appear per
// pattern.
func createTotalDurationHandler(field patternField, nanosPerUnit int64, maxValue int64) characterHandler[temporal.Duration] {
	return func(pc *patternCursor, b *steppedPatternBuilder[temporal.Duration]) error {
		count, err := pc.getRepeatCount(13)
		if err != nil {
			return err
		}
		// addField would report a misleading duplicate-field error here.
		if b.usedFields.anyOf(fieldTotalDuration) {
			return patternError(PatternErrorMultipleCapitalDurationFields, msgMultipleCapitalDuration)
		}
		if err := b.addField(field, pc.current); err != nil {
			return err
		}
		if err := b.addField(fieldTotalDuration, pc.current); err != nil {
			return err
		}
		b.addParseValueAction(count, 13, pc.current, 0, maxValue,
			func(bucket parseBucket[temporal.Duration], v int64) { durationBucket(bucket).addUnits(v, nanosPerUnit) })
		b.addFormatLeftPad(count, func(d temporal.Duration) int64 { return positiveNanosecondUnits(d, nanosPerUnit) },
			true, false)
		return nil
	}
}

// createTotalDaysHandler compiles 'D', the day count of the duration.
func createTotalDaysHandler() characterHandler[temporal.Duration] {
	return func(pc *patternCursor, b *steppedPatternBuilder[temporal.Duration]) error {
		count, err := pc.getRepeatCount(10)
		if err != nil {
			return err
		}
		if b.usedFields.anyOf(fieldTotalDuration) {
			return patternError(PatternErrorMultipleCapitalDurationFields, msgMultipleCapitalDuration)
		}
		if err := b.addField(fieldDayOfMonth, pc.current); err != nil {
			return err
		}
		if err := b.addField(fieldTotalDuration, pc.current); err != nil {
			return err
		}
		b.addParseValueAction(count, 10, pc.current, 0, maxDurationDays,
			func(bucket parseBucket[temporal.Duration], v int64) {
				durationBucket(bucket).addUnits(v, temporal.NanosecondsPerDay)
			})
		b.addFormatLeftPad(count, func(d temporal.Duration) int64 {
			return positiveNanosecondUnits(d, temporal.NanosecondsPerDay)
		}, true, false)
		return nil
	}
}

// createPartialDurationHandler compiles a lowercase unit-within-container
// specifier such as hh or mm.
func createPartialDurationHandler(field patternField, nanosPerUnit int64, unitsPerContainer int64) characterHandler[temporal.Duration] {
	return func(pc *patternCursor, b *steppedPatternBuilder[temporal.Duration]) error {
		count, err := pc.getRepeatCount(2)
		if err != nil {
			return err
		}
		if err := b.addField(field, pc.current); err != nil {
			return err
		}
		b.addParseValueAction(count, 2, pc.current, 0, unitsPerContainer-1,
			func(bucket parseBucket[temporal.Duration], v int64) { durationBucket(bucket).addUnits(v, nanosPerUnit) })
		b.addFormatLeftPad(count, func(d temporal.Duration) int64 {
			return positiveNanosecondUnits(d, nanosPerUnit) % unitsPerContainer
		}, true, count == 2)
		return nil
	}
}

// Field maxima for the total specifiers, set by the int64 nanosecond range.
const (
	maxDurationDays    = 106751
	maxDurationHours   = 2562047
	maxDurationMinutes = 153722867
	maxDurationSeconds = 9223372036
)

func durationSignSetter(bucket parseBucket[temporal.Duration], positive bool) {
	durationBucket(bucket).negative = !positive
}

var durationHandlers = map[byte]characterHandler[temporal.Duration]{
	'%':  handlePercent[temporal.Duration],
	'\'': handleQuote[temporal.Duration],
	'"':  handleQuote[temporal.Duration],
	'\\': handleBackslash[temporal.Duration],
	'.': createPeriodHandler(9, positiveDurationNanosecondOfSecond,
		func(b parseBucket[temporal.Duration], v int64) { durationBucket(b).addNanoseconds(v) }),
	':': func(pc *patternCursor, b *steppedPatternBuilder[temporal.Duration]) error {
		b.addLiteralText(b.culture.TimeSeparator, timeSeparatorMismatch[temporal.Duration])
		return nil
	},
	'D': createTotalDaysHandler(),
	'H': createTotalDurationHandler(fieldHours24, temporal.NanosecondsPerHour, maxDurationHours),
	'h': createPartialDurationHandler(fieldHours24, temporal.NanosecondsPerHour, temporal.HoursPerDay),
	'M': createTotalDurationHandler(fieldMinutes, temporal.NanosecondsPerMinute, maxDurationMinutes),
	'm': createPartialDurationHandler(fieldMinutes, temporal.NanosecondsPerMinute, temporal.MinutesPerHour),
	'S': createTotalDurationHandler(fieldSeconds, temporal.NanosecondsPerSecond, maxDurationSeconds),
	's': createPartialDurationHandler(fieldSeconds, temporal.NanosecondsPerSecond, temporal.SecondsPerMinute),
	'f': createFractionHandler(9, positiveDurationNanosecondOfSecond,
		func(b parseBucket[temporal.Duration], v int64) { durationBucket(b).addNanoseconds(v) }),
	'F': createFractionHandler(9, positiveDurationNanosecondOfSecond,
		func(b parseBucket[temporal.Duration], v int64) { durationBucket(b).addNanoseconds(v) }),
	'+': func(pc *patternCursor, b *steppedPatternBuilder[temporal.Duration]) error {
		if err := b.addField(fieldSign, pc.current); err != nil {
			return err
		}
		b.addRequiredSign(durationSignSetter, durationNonNegative)
		return nil
	},
	'-': func(pc *patternCursor, b *steppedPatternBuilder[temporal.Duration]) error {
		if err := b.addField(fieldSign, pc.current); err != nil {
			return err
		}
		b.addNegativeOnlySign(durationSignSetter, durationNonNegative)
		return nil
	},
}

func parseDurationPattern(patternText string, c *culture.Culture) (partialPattern[temporal.Duration], error) {
	if len(patternText) == 0 {
		return nil, patternError(PatternErrorFormatStringEmpty, msgFormatStringEmpty)
	}
	if len(patternText) == 1 {
		switch patternText[0] {
		case 'o':
			patternText = "-D:hh:mm:ss.FFFFFFFFF"
		case 'j':
			patternText = "-H:mm:ss.FFFFFFFFF"
		default:
			return nil, patternError(PatternErrorUnknownStandardFormat, msgUnknownStandardFormat, patternText, "Duration", patternText)
		}
	}
	builder := newBuilder(c, "Duration", newDurationBucket)
	if err := builder.parseCustomPattern(patternText, durationHandlers); err != nil {
		return nil, err
	}
	sample := temporal.DurationFromNanoseconds(
		temporal.NanosecondsPerHour + 30*temporal.NanosecondsPerMinute + 5*temporal.NanosecondsPerSecond + 500_000_000)
	return builder.build(sample), nil
}

// DurationPattern formats and parses temporal.Duration values.
type DurationPattern struct {
	patternText string
	culture     *culture.Culture
	underlying  partialPattern[temporal.Duration]
}

// NewDurationPattern compiles a duration pattern for the given culture; a
// nil culture means the invariant culture.
func NewDurationPattern(patternText string, c *culture.Culture) (*DurationPattern, error) {
	if c == nil {
		c = culture.Invariant
	}
	underlying, err := parseDurationPattern(patternText, c)
	if err != nil {
		return nil, err
	}
	return &DurationPattern{patternText: patternText, culture: c, underlying: underlying}, nil
}

func NewDurationPatternInvariant(patternText string) (*DurationPattern, error) {
	return NewDurationPattern(patternText, culture.Invariant)
}

func NewDurationPatternCurrentCulture(patternText string) (*DurationPattern, error) {
	return NewDurationPattern(patternText, culture.Current())
}

func (p *DurationPattern) PatternText() string       { return p.patternText }
func (p *DurationPattern) Culture() *culture.Culture { return p.culture }

func (p *DurationPattern) Parse(text string) ParseResult[temporal.Duration] {
	return p.underlying.Parse(text)
}

func (p *DurationPattern) Format(value temporal.Duration) string {
	return p.underlying.Format(value)
}

func (p *DurationPattern) AppendFormat(value temporal.Duration, sb *strings.Builder) *strings.Builder {
	return p.underlying.AppendFormat(value, sb)
}

func (p *DurationPattern) WithCulture(c *culture.Culture) (*DurationPattern, error) {
	return NewDurationPattern(p.patternText, c)
}

// DurationRoundtrip is the invariant round-trip pattern
// "-D:hh:mm:ss.FFFFFFFFF".
var DurationRoundtrip = sync.OnceValue(func() *DurationPattern {
	return mustDurationPattern("o")
})

// DurationJSONRoundtrip is the invariant JSON round-trip pattern
// "-H:mm:ss.FFFFFFFFF".
var DurationJSONRoundtrip = sync.OnceValue(func() *DurationPattern {
	return mustDurationPattern("j")
})

func mustDurationPattern(text string) *DurationPattern {
	p, err := NewDurationPatternInvariant(text)
	if err != nil {
		panic(err)
	}
	return p
}
