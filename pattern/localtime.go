package pattern

import (
	"strings"
	"sync"

	"github.com/dhamidi/chrono/culture"
	"github.com/dhamidi/chrono/temporal"
)

// amPmFromTemplate marks a half-day taken from the template value rather
// than parsed from the text; cultures with no designators at all use it.
const amPmFromTemplate = 2

// localTimeParseBucket collects time-of-day fields. Fields absent from the
// pattern fall back to the template value.
type localTimeParseBucket struct {
	template temporal.LocalTime
	typeName string

	hours24  int64
	hours12  int64
	minutes  int64
	seconds  int64
	fraction int64
	amPm     int
}

func newLocalTimeBucketProvider(template temporal.LocalTime, typeName string) func() parseBucket[temporal.LocalTime] {
	return func() parseBucket[temporal.LocalTime] {
		return &localTimeParseBucket{template: template, typeName: typeName}
	}
}

func localTimeBucket(b parseBucket[temporal.LocalTime]) *localTimeParseBucket {
	return b.(*localTimeParseBucket)
}

func (b *localTimeParseBucket) calculateValue(usedFields patternField, text string) ParseResult[temporal.LocalTime] {
	hour, failure := b.determineHour(usedFields, text)
	if failure != nil {
		return *failure
	}
	minutes := b.minutes
	if !usedFields.anyOf(fieldMinutes) {
		minutes = int64(b.template.Minute())
	}
	seconds := b.seconds
	if !usedFields.anyOf(fieldSeconds) {
		seconds = int64(b.template.Second())
	}
	fraction := b.fraction
	if !usedFields.anyOf(fieldFractionalSeconds) {
		fraction = int64(b.template.NanosecondOfSecond())
	}
	value, err := temporal.LocalTimeFromNanosecondOfDay(
		hour*temporal.NanosecondsPerHour +
			minutes*temporal.NanosecondsPerMinute +
			seconds*temporal.NanosecondsPerSecond +
			fraction)
	if err != nil {
		return postParseFailure[temporal.LocalTime](ParseErrorOverallValueOutOfRange, text, msgOverallValueOutOfRange, b.typeName)
	}
	return successResult(value)
}

// determineHour reconciles the 24-hour, 12-hour and half-day fields; each
// combination of present fields has its own rule, with the template filling
// the gaps.
func (b *localTimeParseBucket) determineHour(usedFields patternField, text string) (int64, *ParseResult[temporal.LocalTime]) {
	amPm := b.amPm
	if amPm == amPmFromTemplate {
		amPm = b.template.Hour() / 12
	}
	if usedFields.anyOf(fieldHours24) {
		if usedFields.allOf(fieldHours12|fieldHours24) && b.hours12%12 != b.hours24%12 {
			r := postParseFailure[temporal.LocalTime](ParseErrorInconsistentValues, text, msgInconsistentValues, 'h', 'H', b.typeName)
			return 0, &r
		}
		if usedFields.anyOf(fieldAmPm) && b.hours24/12 != int64(amPm) {
			r := postParseFailure[temporal.LocalTime](ParseErrorInconsistentValues, text, msgInconsistentValues, 't', 'H', b.typeName)
			return 0, &r
		}
		return b.hours24, nil
	}
	switch {
	case usedFields.allOf(fieldHours12 | fieldAmPm):
		return b.hours12%12 + int64(amPm)*12, nil
	case usedFields.anyOf(fieldHours12):
		return b.hours12%12 + int64(b.template.Hour()/12)*12, nil
	case usedFields.anyOf(fieldAmPm):
		return int64(b.template.Hour()%12) + int64(amPm)*12, nil
	default:
		return int64(b.template.Hour()), nil
	}
}

func localTimeNanosecondOfSecond(t temporal.LocalTime) int64 {
	return int64(t.NanosecondOfSecond())
}

var localTimeHandlers = map[byte]characterHandler[temporal.LocalTime]{
	'%':  handlePercent[temporal.LocalTime],
	'\'': handleQuote[temporal.LocalTime],
	'"':  handleQuote[temporal.LocalTime],
	'\\': handleBackslash[temporal.LocalTime],
	'.': createPeriodHandler(9, localTimeNanosecondOfSecond,
		func(b parseBucket[temporal.LocalTime], v int64) { localTimeBucket(b).fraction = v }),
	';': createCommaDotHandler(9, localTimeNanosecondOfSecond,
		func(b parseBucket[temporal.LocalTime], v int64) { localTimeBucket(b).fraction = v }),
	':': func(pc *patternCursor, b *steppedPatternBuilder[temporal.LocalTime]) error {
		b.addLiteralText(b.culture.TimeSeparator, timeSeparatorMismatch[temporal.LocalTime])
		return nil
	},
	'H': handlePaddedField(2, fieldHours24, 0, 23,
		func(t temporal.LocalTime) int64 { return int64(t.Hour()) },
		func(b parseBucket[temporal.LocalTime], v int64) { localTimeBucket(b).hours24 = v }),
	'h': handlePaddedField(2, fieldHours12, 1, 12,
		func(t temporal.LocalTime) int64 { return int64(t.ClockHourOfHalfDay()) },
		func(b parseBucket[temporal.LocalTime], v int64) { localTimeBucket(b).hours12 = v }),
	'm': handlePaddedField(2, fieldMinutes, 0, 59,
		func(t temporal.LocalTime) int64 { return int64(t.Minute()) },
		func(b parseBucket[temporal.LocalTime], v int64) { localTimeBucket(b).minutes = v }),
	's': handlePaddedField(2, fieldSeconds, 0, 59,
		func(t temporal.LocalTime) int64 { return int64(t.Second()) },
		func(b parseBucket[temporal.LocalTime], v int64) { localTimeBucket(b).seconds = v }),
	'f': createFractionHandler(9, localTimeNanosecondOfSecond,
		func(b parseBucket[temporal.LocalTime], v int64) { localTimeBucket(b).fraction = v }),
	'F': createFractionHandler(9, localTimeNanosecondOfSecond,
		func(b parseBucket[temporal.LocalTime], v int64) { localTimeBucket(b).fraction = v }),
	't': createAmPmHandler(
		func(t temporal.LocalTime) int64 { return int64(t.Hour()) },
		func(b parseBucket[temporal.LocalTime], v int) { localTimeBucket(b).amPm = v }),
}

const (
	localTimeExtendedIsoText     = "HH':'mm':'ss;FFFFFFFFF"
	localTimeLongExtendedIsoText = "HH':'mm':'ss;fffffffff"
)

func expandLocalTimeStandard(patternText string, c *culture.Culture) (string, error) {
	switch patternText[0] {
	case 'o', 'O':
		return localTimeExtendedIsoText, nil
	case 'r':
		return localTimeLongExtendedIsoText, nil
	case 't':
		return c.ShortTimePattern, nil
	case 'T':
		return c.LongTimePattern, nil
	default:
		return "", patternError(PatternErrorUnknownStandardFormat, msgUnknownStandardFormat, patternText, "LocalTime", patternText)
	}
}

func parseLocalTimePattern(patternText string, c *culture.Culture, template temporal.LocalTime) (partialPattern[temporal.LocalTime], error) {
	if len(patternText) == 0 {
		return nil, patternError(PatternErrorFormatStringEmpty, msgFormatStringEmpty)
	}
	if len(patternText) == 1 {
		expanded, err := expandLocalTimeStandard(patternText, c)
		if err != nil {
			return nil, err
		}
		patternText = expanded
	}
	builder := newBuilder(c, "LocalTime", newLocalTimeBucketProvider(template, "LocalTime"))
	if err := builder.parseCustomPattern(patternText, localTimeHandlers); err != nil {
		return nil, err
	}
	return builder.build(template), nil
}

// LocalTimePattern formats and parses temporal.LocalTime values.
type LocalTimePattern struct {
	patternText string
	culture     *culture.Culture
	template    temporal.LocalTime
	underlying  partialPattern[temporal.LocalTime]
}

// NewLocalTimePattern compiles a time pattern for the given culture; a nil
// culture means the invariant culture. The template value, midnight unless
// changed with WithTemplateValue, supplies any fields the pattern omits.
func NewLocalTimePattern(patternText string, c *culture.Culture) (*LocalTimePattern, error) {
	return newLocalTimePattern(patternText, c, temporal.Midnight)
}

func newLocalTimePattern(patternText string, c *culture.Culture, template temporal.LocalTime) (*LocalTimePattern, error) {
	if c == nil {
		c = culture.Invariant
	}
	underlying, err := parseLocalTimePattern(patternText, c, template)
	if err != nil {
		return nil, err
	}
	return &LocalTimePattern{patternText: patternText, culture: c, template: template, underlying: underlying}, nil
}

func NewLocalTimePatternInvariant(patternText string) (*LocalTimePattern, error) {
	return NewLocalTimePattern(patternText, culture.Invariant)
}

func NewLocalTimePatternCurrentCulture(patternText string) (*LocalTimePattern, error) {
	return NewLocalTimePattern(patternText, culture.Current())
}

func (p *LocalTimePattern) PatternText() string               { return p.patternText }
func (p *LocalTimePattern) Culture() *culture.Culture         { return p.culture }
func (p *LocalTimePattern) TemplateValue() temporal.LocalTime { return p.template }

func (p *LocalTimePattern) Parse(text string) ParseResult[temporal.LocalTime] {
	return p.underlying.Parse(text)
}

func (p *LocalTimePattern) Format(value temporal.LocalTime) string {
	return p.underlying.Format(value)
}

func (p *LocalTimePattern) AppendFormat(value temporal.LocalTime, sb *strings.Builder) *strings.Builder {
	return p.underlying.AppendFormat(value, sb)
}

// WithCulture recompiles the same pattern text for another culture.
func (p *LocalTimePattern) WithCulture(c *culture.Culture) (*LocalTimePattern, error) {
	return newLocalTimePattern(p.patternText, c, p.template)
}

// WithTemplateValue recompiles the pattern with another template value.
func (p *LocalTimePattern) WithTemplateValue(template temporal.LocalTime) (*LocalTimePattern, error) {
	return newLocalTimePattern(p.patternText, p.culture, template)
}

// LocalTimeExtendedIso is the invariant pattern "HH':'mm':'ss;FFFFFFFFF".
var LocalTimeExtendedIso = sync.OnceValue(func() *LocalTimePattern {
	return mustLocalTimePattern("o")
})

// LocalTimeLongExtendedIso is the invariant pattern
// "HH':'mm':'ss;fffffffff", formatting all nine fractional digits.
var LocalTimeLongExtendedIso = sync.OnceValue(func() *LocalTimePattern {
	return mustLocalTimePattern("r")
})

func mustLocalTimePattern(text string) *LocalTimePattern {
	p, err := NewLocalTimePatternInvariant(text)
	if err != nil {
		panic(err)
	}
	return p
}
