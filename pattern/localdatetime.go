package pattern

import (
	"fmt"
	"strings"
	"sync"

	"github.com/dhamidi/chrono/culture"
	"github.com/dhamidi/chrono/temporal"
)

// localDateTimeParseBucket pairs a date bucket with a time bucket. Embedded
// patterns ("ld<...>", "lt<...>", "l<...>") parse to complete values that
// bypass the field buckets.
type localDateTimeParseBucket struct {
	date *localDateParseBucket
	time *localTimeParseBucket

	embeddedDate     temporal.LocalDate
	embeddedTime     temporal.LocalTime
	embeddedDateTime temporal.LocalDateTime
	embeddedFull     bool
}

func newLocalDateTimeBucketProvider(dateTemplate temporal.LocalDate, timeTemplate temporal.LocalTime, twoDigitYearMax int) func() parseBucket[temporal.LocalDateTime] {
	return func() parseBucket[temporal.LocalDateTime] {
		return &localDateTimeParseBucket{
			date: newLocalDateParseBucket(dateTemplate, twoDigitYearMax, "LocalDateTime"),
			time: &localTimeParseBucket{template: timeTemplate, typeName: "LocalDateTime"},
		}
	}
}

func localDateTimeBucket(b parseBucket[temporal.LocalDateTime]) *localDateTimeParseBucket {
	return b.(*localDateTimeParseBucket)
}

func (b *localDateTimeParseBucket) calculateValue(usedFields patternField, text string) ParseResult[temporal.LocalDateTime] {
	if b.embeddedFull {
		return successResult(b.embeddedDateTime)
	}

	// Hour 24 is legal only as midnight at the end of the day; it parses as
	// midnight of the following day.
	hour24 := false
	if b.time.hours24 == 24 {
		b.time.hours24 = 0
		hour24 = true
	}

	var date temporal.LocalDate
	if usedFields.anyOf(fieldEmbeddedDate) {
		date = b.embeddedDate
	} else {
		dateResult := b.date.calculateValue(usedFields&allDateFields, text)
		value, ok := dateResult.TryValue(temporal.LocalDate{})
		if !ok {
			return convertError[temporal.LocalDate, temporal.LocalDateTime](dateResult)
		}
		date = value
	}

	var timeOfDay temporal.LocalTime
	if usedFields.anyOf(fieldEmbeddedTime) {
		timeOfDay = b.embeddedTime
	} else {
		timeResult := b.time.calculateValue(usedFields&allTimeFields, text)
		value, ok := timeResult.TryValue(temporal.LocalTime{})
		if !ok {
			return convertError[temporal.LocalTime, temporal.LocalDateTime](timeResult)
		}
		timeOfDay = value
	}

	if hour24 {
		if timeOfDay != temporal.Midnight {
			return postParseFailure[temporal.LocalDateTime](ParseErrorInvalidHour24, text, msgInvalidHour24)
		}
		date = date.PlusDays(1)
	}
	return successResult(date.At(timeOfDay))
}

func localDateTimeNanosecondOfSecond(dt temporal.LocalDateTime) int64 {
	return int64(dt.NanosecondOfSecond())
}

func setDateTimeFraction(b parseBucket[temporal.LocalDateTime], v int64) {
	localDateTimeBucket(b).time.fraction = v
}

// localDateTimeHandlers builds the handler table for one compilation; the
// embedded-pattern handler needs the template values to compile its inner
// pattern with.
func localDateTimeHandlers(dateTemplate temporal.LocalDate, timeTemplate temporal.LocalTime, twoDigitYearMax int) map[byte]characterHandler[temporal.LocalDateTime] {
	return map[byte]characterHandler[temporal.LocalDateTime]{
		'%':  handlePercent[temporal.LocalDateTime],
		'\'': handleQuote[temporal.LocalDateTime],
		'"':  handleQuote[temporal.LocalDateTime],
		'\\': handleBackslash[temporal.LocalDateTime],
		'/': func(pc *patternCursor, b *steppedPatternBuilder[temporal.LocalDateTime]) error {
			b.addLiteralText(b.culture.DateSeparator, dateSeparatorMismatch[temporal.LocalDateTime])
			return nil
		},
		':': func(pc *patternCursor, b *steppedPatternBuilder[temporal.LocalDateTime]) error {
			b.addLiteralText(b.culture.TimeSeparator, timeSeparatorMismatch[temporal.LocalDateTime])
			return nil
		},
		'T': func(pc *patternCursor, b *steppedPatternBuilder[temporal.LocalDateTime]) error {
			b.addLiteralChar('T', mismatchedCharacter[temporal.LocalDateTime]('T'))
			return nil
		},
		'u': createAbsoluteYearHandler(
			func(dt temporal.LocalDateTime) int64 { return int64(dt.Year()) },
			func(b parseBucket[temporal.LocalDateTime], v int64) { localDateTimeBucket(b).date.year = v }),
		'y': createYearOfEraHandler(
			func(dt temporal.LocalDateTime) int64 { return int64(dt.YearOfEra()) },
			func(b parseBucket[temporal.LocalDateTime], v int64) { localDateTimeBucket(b).date.yearOfEra = v }),
		'M': createMonthOfYearHandler(
			func(dt temporal.LocalDateTime) int64 { return int64(dt.Month()) },
			func(dt temporal.LocalDateTime) int { return dt.Month() },
			func(b parseBucket[temporal.LocalDateTime], v int64) {
				localDateTimeBucket(b).date.monthOfYearNum = v
			},
			func(b parseBucket[temporal.LocalDateTime], v int) {
				localDateTimeBucket(b).date.monthOfYearText = v
			}),
		'd': createDayHandler(
			func(dt temporal.LocalDateTime) int64 { return int64(dt.Day()) },
			func(dt temporal.LocalDateTime) int { return int(dt.DayOfWeek()) },
			func(b parseBucket[temporal.LocalDateTime], v int64) { localDateTimeBucket(b).date.dayOfMonth = v },
			func(b parseBucket[temporal.LocalDateTime], v int) { localDateTimeBucket(b).date.dayOfWeek = v }),
		'g': createEraHandler(
			temporal.LocalDateTime.Era,
			func(b parseBucket[temporal.LocalDateTime]) *localDateParseBucket {
				return localDateTimeBucket(b).date
			}),
		'c': createCalendarHandler(
			temporal.LocalDateTime.Calendar,
			func(b parseBucket[temporal.LocalDateTime], c *temporal.Calendar) {
				localDateTimeBucket(b).date.calendar = c
			}),
		'H': handlePaddedField(2, fieldHours24, 0, 24,
			func(dt temporal.LocalDateTime) int64 { return int64(dt.Hour()) },
			func(b parseBucket[temporal.LocalDateTime], v int64) { localDateTimeBucket(b).time.hours24 = v }),
		'h': handlePaddedField(2, fieldHours12, 1, 12,
			func(dt temporal.LocalDateTime) int64 { return int64(dt.ClockHourOfHalfDay()) },
			func(b parseBucket[temporal.LocalDateTime], v int64) { localDateTimeBucket(b).time.hours12 = v }),
		'm': handlePaddedField(2, fieldMinutes, 0, 59,
			func(dt temporal.LocalDateTime) int64 { return int64(dt.Minute()) },
			func(b parseBucket[temporal.LocalDateTime], v int64) { localDateTimeBucket(b).time.minutes = v }),
		's': handlePaddedField(2, fieldSeconds, 0, 59,
			func(dt temporal.LocalDateTime) int64 { return int64(dt.Second()) },
			func(b parseBucket[temporal.LocalDateTime], v int64) { localDateTimeBucket(b).time.seconds = v }),
		'.': createPeriodHandler(9, localDateTimeNanosecondOfSecond, setDateTimeFraction),
		';': createCommaDotHandler(9, localDateTimeNanosecondOfSecond, setDateTimeFraction),
		'f': createFractionHandler(9, localDateTimeNanosecondOfSecond, setDateTimeFraction),
		'F': createFractionHandler(9, localDateTimeNanosecondOfSecond, setDateTimeFraction),
		't': createAmPmHandler(
			func(dt temporal.LocalDateTime) int64 { return int64(dt.Hour()) },
			func(b parseBucket[temporal.LocalDateTime], v int) { localDateTimeBucket(b).time.amPm = v }),
		'l': createEmbeddedHandler(dateTemplate, timeTemplate, twoDigitYearMax),
	}
}

// createEmbeddedHandler compiles 'l': "ld<...>" embeds a date pattern,
// "lt<...>" a time pattern, and "l<...>" a complete date-time pattern.
func createEmbeddedHandler(dateTemplate temporal.LocalDate, timeTemplate temporal.LocalTime, twoDigitYearMax int) characterHandler[temporal.LocalDateTime] {
	return func(pc *patternCursor, b *steppedPatternBuilder[temporal.LocalDateTime]) error {
		switch pc.peekNext() {
		case 'd':
			pc.moveNext()
			text, err := pc.getEmbeddedPattern()
			if err != nil {
				return err
			}
			embedded, err := parseLocalDatePattern(text, b.culture, dateTemplate, twoDigitYearMax)
			if err != nil {
				return err
			}
			if err := b.addField(fieldEmbeddedDate, pc.current); err != nil {
				return err
			}
			addEmbeddedPattern(b, embedded,
				func(bucket parseBucket[temporal.LocalDateTime], d temporal.LocalDate) {
					localDateTimeBucket(bucket).embeddedDate = d
				},
				temporal.LocalDateTime.Date)
			return nil
		case 't':
			pc.moveNext()
			text, err := pc.getEmbeddedPattern()
			if err != nil {
				return err
			}
			embedded, err := parseLocalTimePattern(text, b.culture, timeTemplate)
			if err != nil {
				return err
			}
			if err := b.addField(fieldEmbeddedTime, pc.current); err != nil {
				return err
			}
			addEmbeddedPattern(b, embedded,
				func(bucket parseBucket[temporal.LocalDateTime], t temporal.LocalTime) {
					localDateTimeBucket(bucket).embeddedTime = t
				},
				temporal.LocalDateTime.TimeOfDay)
			return nil
		case embeddedPatternStart:
			text, err := pc.getEmbeddedPattern()
			if err != nil {
				return err
			}
			embedded, err := parseLocalDateTimeNoStandard(text, b.culture, dateTemplate, timeTemplate, twoDigitYearMax)
			if err != nil {
				return err
			}
			if err := b.addField(fieldEmbeddedDate|fieldEmbeddedTime, pc.current); err != nil {
				return err
			}
			addEmbeddedPattern(b, embedded,
				func(bucket parseBucket[temporal.LocalDateTime], dt temporal.LocalDateTime) {
					dtb := localDateTimeBucket(bucket)
					dtb.embeddedDateTime = dt
					dtb.embeddedFull = true
				},
				func(dt temporal.LocalDateTime) temporal.LocalDateTime { return dt })
			return nil
		default:
			return patternError(PatternErrorInvalidEmbeddedPatternType, msgInvalidEmbeddedType)
		}
	}
}

// validateDateTimeFields rejects mixing an embedded date or time pattern
// with individual fields of the same kind, in either order.
func validateDateTimeFields(usedFields patternField) error {
	if usedFields.anyOf(fieldEmbeddedDate) && usedFields.anyOf(allDateFields&^fieldEmbeddedDate) {
		return patternError(PatternErrorDateFieldAndEmbeddedDate, msgDateFieldAndEmbeddedDate)
	}
	if usedFields.anyOf(fieldEmbeddedTime) && usedFields.anyOf(allTimeFields&^fieldEmbeddedTime) {
		return patternError(PatternErrorTimeFieldAndEmbeddedTime, msgTimeFieldAndEmbeddedTime)
	}
	return nil
}

const (
	localDateTimeGeneralIsoText     = "uuuu'-'MM'-'dd'T'HH':'mm':'ss"
	localDateTimeExtendedIsoText    = "uuuu'-'MM'-'dd'T'HH':'mm':'ss;FFFFFFFFF"
	localDateTimeBclRoundtripText   = "uuuu'-'MM'-'dd'T'HH':'mm':'ss'.'fffffff"
	localDateTimeFullRoundtripText  = "uuuu'-'MM'-'dd'T'HH':'mm':'ss'.'fffffffff '('c')'"
	localDateTimeFullNoCalendarText = "uuuu'-'MM'-'dd'T'HH':'mm':'ss'.'fffffffff"
)

func expandLocalDateTimeStandard(patternText string, c *culture.Culture) (string, error) {
	switch patternText[0] {
	case 'o', 'O':
		return localDateTimeBclRoundtripText, nil
	case 'r':
		return localDateTimeFullRoundtripText, nil
	case 'R':
		return localDateTimeFullNoCalendarText, nil
	case 's':
		return localDateTimeGeneralIsoText, nil
	case 'S':
		return localDateTimeExtendedIsoText, nil
	case 'f':
		return c.LongDatePattern + " " + c.ShortTimePattern, nil
	case 'F':
		return c.FullDateTimePattern, nil
	case 'g':
		return c.ShortDatePattern + " " + c.ShortTimePattern, nil
	case 'G':
		return c.ShortDatePattern + " " + c.LongTimePattern, nil
	default:
		return "", patternError(PatternErrorUnknownStandardFormat, msgUnknownStandardFormat, patternText, "LocalDateTime", patternText)
	}
}

func parseLocalDateTimePattern(patternText string, c *culture.Culture, dateTemplate temporal.LocalDate, timeTemplate temporal.LocalTime, twoDigitYearMax int) (partialPattern[temporal.LocalDateTime], error) {
	if len(patternText) == 0 {
		return nil, patternError(PatternErrorFormatStringEmpty, msgFormatStringEmpty)
	}
	if len(patternText) == 1 {
		expanded, err := expandLocalDateTimeStandard(patternText, c)
		if err != nil {
			return nil, err
		}
		patternText = expanded
	}
	return parseLocalDateTimeNoStandard(patternText, c, dateTemplate, timeTemplate, twoDigitYearMax)
}

func parseLocalDateTimeNoStandard(patternText string, c *culture.Culture, dateTemplate temporal.LocalDate, timeTemplate temporal.LocalTime, twoDigitYearMax int) (partialPattern[temporal.LocalDateTime], error) {
	builder := newBuilder(c, "LocalDateTime", newLocalDateTimeBucketProvider(dateTemplate, timeTemplate, twoDigitYearMax))
	if err := builder.parseCustomPattern(patternText, localDateTimeHandlers(dateTemplate, timeTemplate, twoDigitYearMax)); err != nil {
		return nil, err
	}
	if err := builder.validateUsedFields(); err != nil {
		return nil, err
	}
	if err := validateDateTimeFields(builder.usedFields); err != nil {
		return nil, err
	}
	return builder.build(dateTemplate.At(timeTemplate)), nil
}

// LocalDateTimePattern formats and parses temporal.LocalDateTime values.
type LocalDateTimePattern struct {
	patternText     string
	culture         *culture.Culture
	template        temporal.LocalDateTime
	twoDigitYearMax int
	underlying      partialPattern[temporal.LocalDateTime]
}

// NewLocalDateTimePattern compiles a date-time pattern for the given
// culture; a nil culture means the invariant culture. The template value,
// midnight on 2000-01-01 unless changed with WithTemplateValue, supplies
// any fields the pattern omits.
func NewLocalDateTimePattern(patternText string, c *culture.Culture) (*LocalDateTimePattern, error) {
	if c == nil {
		c = culture.Invariant
	}
	return newLocalDateTimePattern(patternText, c, defaultLocalDateTemplate().At(temporal.Midnight), c.TwoDigitYearMax)
}

func newLocalDateTimePattern(patternText string, c *culture.Culture, template temporal.LocalDateTime, twoDigitYearMax int) (*LocalDateTimePattern, error) {
	if c == nil {
		c = culture.Invariant
	}
	if twoDigitYearMax < 0 || twoDigitYearMax > 99 {
		return nil, fmt.Errorf("two-digit-year max %d is outside the range [0, 99]", twoDigitYearMax)
	}
	underlying, err := parseLocalDateTimePattern(patternText, c, template.Date(), template.TimeOfDay(), twoDigitYearMax)
	if err != nil {
		return nil, err
	}
	return &LocalDateTimePattern{
		patternText:     patternText,
		culture:         c,
		template:        template,
		twoDigitYearMax: twoDigitYearMax,
		underlying:      underlying,
	}, nil
}

func NewLocalDateTimePatternInvariant(patternText string) (*LocalDateTimePattern, error) {
	return NewLocalDateTimePattern(patternText, culture.Invariant)
}

func NewLocalDateTimePatternCurrentCulture(patternText string) (*LocalDateTimePattern, error) {
	return NewLocalDateTimePattern(patternText, culture.Current())
}

func (p *LocalDateTimePattern) PatternText() string                   { return p.patternText }
func (p *LocalDateTimePattern) Culture() *culture.Culture             { return p.culture }
func (p *LocalDateTimePattern) TemplateValue() temporal.LocalDateTime { return p.template }
func (p *LocalDateTimePattern) TwoDigitYearMax() int                  { return p.twoDigitYearMax }

func (p *LocalDateTimePattern) Parse(text string) ParseResult[temporal.LocalDateTime] {
	return p.underlying.Parse(text)
}

func (p *LocalDateTimePattern) Format(value temporal.LocalDateTime) string {
	return p.underlying.Format(value)
}

func (p *LocalDateTimePattern) AppendFormat(value temporal.LocalDateTime, sb *strings.Builder) *strings.Builder {
	return p.underlying.AppendFormat(value, sb)
}

// WithCulture recompiles the same pattern text for another culture.
func (p *LocalDateTimePattern) WithCulture(c *culture.Culture) (*LocalDateTimePattern, error) {
	return newLocalDateTimePattern(p.patternText, c, p.template, p.twoDigitYearMax)
}

// WithTemplateValue recompiles the pattern with another template value.
func (p *LocalDateTimePattern) WithTemplateValue(template temporal.LocalDateTime) (*LocalDateTimePattern, error) {
	return newLocalDateTimePattern(p.patternText, p.culture, template, p.twoDigitYearMax)
}

// WithTwoDigitYearMax recompiles the pattern with another cutoff for
// expanding two-digit years; the cutoff must be in the range [0, 99].
func (p *LocalDateTimePattern) WithTwoDigitYearMax(max int) (*LocalDateTimePattern, error) {
	return newLocalDateTimePattern(p.patternText, p.culture, p.template, max)
}

// LocalDateTimeGeneralIso is the invariant pattern
// "uuuu'-'MM'-'dd'T'HH':'mm':'ss".
var LocalDateTimeGeneralIso = sync.OnceValue(func() *LocalDateTimePattern {
	return mustLocalDateTimePattern("s")
})

// LocalDateTimeExtendedIso is the invariant pattern
// "uuuu'-'MM'-'dd'T'HH':'mm':'ss;FFFFFFFFF".
var LocalDateTimeExtendedIso = sync.OnceValue(func() *LocalDateTimePattern {
	return mustLocalDateTimePattern("S")
})

// LocalDateTimeFullRoundtrip is the invariant pattern
// "uuuu'-'MM'-'dd'T'HH':'mm':'ss'.'fffffffff '('c')'", carrying the
// calendar system id.
var LocalDateTimeFullRoundtrip = sync.OnceValue(func() *LocalDateTimePattern {
	return mustLocalDateTimePattern("r")
})

func mustLocalDateTimePattern(text string) *LocalDateTimePattern {
	p, err := NewLocalDateTimePatternInvariant(text)
	if err != nil {
		panic(err)
	}
	return p
}
