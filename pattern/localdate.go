package pattern

import (
	"fmt"
	"strings"
	"sync"

	"github.com/dhamidi/chrono/culture"
	"github.com/dhamidi/chrono/temporal"
)

// localDateParseBucket collects calendar date fields. Fields absent from
// the pattern fall back to the template value. The same bucket backs the
// date half of date-time parsing.
type localDateParseBucket struct {
	template        temporal.LocalDate
	twoDigitYearMax int
	typeName        string

	calendar        *temporal.Calendar
	year            int64
	era             temporal.Era
	eraSet          bool
	yearOfEra       int64
	monthOfYearNum  int64
	monthOfYearText int
	dayOfMonth      int64
	dayOfWeek       int
}

func newLocalDateBucketProvider(template temporal.LocalDate, twoDigitYearMax int, typeName string) func() parseBucket[temporal.LocalDate] {
	return func() parseBucket[temporal.LocalDate] {
		return newLocalDateParseBucket(template, twoDigitYearMax, typeName)
	}
}

func newLocalDateParseBucket(template temporal.LocalDate, twoDigitYearMax int, typeName string) *localDateParseBucket {
	return &localDateParseBucket{
		template:        template,
		twoDigitYearMax: twoDigitYearMax,
		typeName:        typeName,
		calendar:        template.Calendar(),
	}
}

func localDateBucket(b parseBucket[temporal.LocalDate]) *localDateParseBucket {
	return b.(*localDateParseBucket)
}

func (b *localDateParseBucket) calculateValue(usedFields patternField, text string) ParseResult[temporal.LocalDate] {
	// The overwhelmingly common case: uuuu, MM and dd with the ISO
	// calendar.
	if usedFields == fieldYear|fieldMonthOfYearNumeric|fieldDayOfMonth && b.calendar == temporal.CalendarISO {
		return b.calculateSimpleISOValue(text)
	}

	if failure := b.determineYear(usedFields, text); failure != nil {
		return *failure
	}
	if failure := b.determineMonth(usedFields, text); failure != nil {
		return *failure
	}

	day := b.dayOfMonth
	if !usedFields.anyOf(fieldDayOfMonth) {
		day = int64(b.template.Day())
	}
	if day > int64(b.calendar.DaysInMonth(int(b.year), int(b.monthOfYearNum))) {
		return postParseFailure[temporal.LocalDate](ParseErrorDayOfMonthOutOfRange, text, msgDayOfMonthOutOfRange, day, b.monthOfYearNum, b.year)
	}

	value, err := temporal.NewLocalDateIn(b.calendar, int(b.year), int(b.monthOfYearNum), int(day))
	if err != nil {
		return postParseFailure[temporal.LocalDate](ParseErrorOverallValueOutOfRange, text, msgOverallValueOutOfRange, b.typeName)
	}
	if usedFields.anyOf(fieldDayOfWeek) && b.dayOfWeek != int(value.DayOfWeek()) {
		return postParseFailure[temporal.LocalDate](ParseErrorInconsistentDayOfWeekTextValue, text, msgInconsistentDayOfWeek)
	}
	return successResult(value)
}

func (b *localDateParseBucket) calculateSimpleISOValue(text string) ParseResult[temporal.LocalDate] {
	month, day := b.monthOfYearNum, b.dayOfMonth
	if month > 12 {
		return postParseFailure[temporal.LocalDate](ParseErrorIsoMonthOutOfRange, text, msgIsoMonthOutOfRange, month)
	}
	// Days 1-28 are fine in any month; 29-31 need the real month length.
	if day > 31 || (day > 28 && day > int64(temporal.CalendarISO.DaysInMonth(int(b.year), int(month)))) {
		return postParseFailure[temporal.LocalDate](ParseErrorDayOfMonthOutOfRange, text, msgDayOfMonthOutOfRange, day, month, b.year)
	}
	value, err := temporal.NewLocalDateIn(temporal.CalendarISO, int(b.year), int(month), int(day))
	if err != nil {
		return postParseFailure[temporal.LocalDate](ParseErrorOverallValueOutOfRange, text, msgOverallValueOutOfRange, b.typeName)
	}
	return successResult(value)
}

// determineYear works out the absolute year from whichever of the year,
// year-of-era, two-digit-year and era fields are present. An absolute year
// trumps everything else; the other fields then only cross-check it. With
// no year fields at all the template year is used.
func (b *localDateParseBucket) determineYear(usedFields patternField, text string) *ParseResult[temporal.LocalDate] {
	if usedFields.anyOf(fieldYear) {
		if b.year > int64(b.calendar.MaxYear()) || b.year < int64(b.calendar.MinYear()) {
			r := postParseFailure[temporal.LocalDate](ParseErrorFieldValueOutOfRange, text, msgFieldValueOutOfRange, b.year, 'u', b.typeName)
			return &r
		}
		if usedFields.anyOf(fieldEra) && b.era != b.calendar.EraOf(int(b.year)) {
			r := postParseFailure[temporal.LocalDate](ParseErrorInconsistentValues, text, msgInconsistentValues, 'g', 'u', b.typeName)
			return &r
		}
		if usedFields.anyOf(fieldYearOfEra) {
			yearOfEraFromYear := int64(b.calendar.YearOfEra(int(b.year)))
			if usedFields.anyOf(fieldYearTwoDigits) {
				yearOfEraFromYear %= 100
			}
			if yearOfEraFromYear != b.yearOfEra {
				r := postParseFailure[temporal.LocalDate](ParseErrorInconsistentValues, text, msgInconsistentValues, 'y', 'u', b.typeName)
				return &r
			}
		}
		return nil
	}

	if !usedFields.anyOf(fieldYearOfEra) {
		b.year = int64(b.template.Year())
		if usedFields.anyOf(fieldEra) && b.era != b.calendar.EraOf(int(b.year)) {
			r := postParseFailure[temporal.LocalDate](ParseErrorInconsistentValues, text, msgInconsistentValues, 'g', 'u', b.typeName)
			return &r
		}
		return nil
	}

	if !usedFields.anyOf(fieldEra) {
		b.era = b.template.Era()
	}

	if usedFields.anyOf(fieldYearTwoDigits) {
		century := int64(b.template.YearOfEra() / 100)
		if b.yearOfEra > int64(b.twoDigitYearMax) && century > 1 {
			century--
		}
		b.yearOfEra += century * 100
	}

	if b.yearOfEra < int64(b.calendar.MinYearOfEra(b.era)) || b.yearOfEra > int64(b.calendar.MaxYearOfEra(b.era)) {
		r := postParseFailure[temporal.LocalDate](ParseErrorYearOfEraOutOfRange, text, msgYearOfEraOutOfRange, b.yearOfEra, b.era, b.calendar.ID())
		return &r
	}
	year, err := b.calendar.AbsoluteYear(int(b.yearOfEra), b.era)
	if err != nil {
		r := postParseFailure[temporal.LocalDate](ParseErrorYearOfEraOutOfRange, text, msgYearOfEraOutOfRange, b.yearOfEra, b.era, b.calendar.ID())
		return &r
	}
	b.year = int64(year)
	return nil
}

func (b *localDateParseBucket) determineMonth(usedFields patternField, text string) *ParseResult[temporal.LocalDate] {
	switch usedFields & (fieldMonthOfYearNumeric | fieldMonthOfYearText) {
	case fieldMonthOfYearNumeric:
		// Already in place.
	case fieldMonthOfYearText:
		b.monthOfYearNum = int64(b.monthOfYearText)
	case fieldMonthOfYearNumeric | fieldMonthOfYearText:
		if b.monthOfYearNum != int64(b.monthOfYearText) {
			r := postParseFailure[temporal.LocalDate](ParseErrorInconsistentMonthTextValue, text, msgInconsistentMonth)
			return &r
		}
	case fieldNone:
		b.monthOfYearNum = int64(b.template.Month())
	}
	if b.monthOfYearNum > int64(b.calendar.MonthsInYear(int(b.year))) {
		r := postParseFailure[temporal.LocalDate](ParseErrorMonthOutOfRange, text, msgMonthOutOfRange, b.monthOfYearNum, b.year)
		return &r
	}
	return nil
}

// createAbsoluteYearHandler compiles 'u', the signed absolute year.
func createAbsoluteYearHandler[T any](getter func(T) int64, setter func(parseBucket[T], int64)) characterHandler[T] {
	return func(pc *patternCursor, b *steppedPatternBuilder[T]) error {
		count, err := pc.getRepeatCount(4)
		if err != nil {
			return err
		}
		if err := b.addField(fieldYear, pc.current); err != nil {
			return err
		}
		b.addParseValueAction(count, 4, pc.current, -9999, 9999, setter)
		b.addFormatLeftPad(count, getter, false, count == 4)
		return nil
	}
}

var localDateHandlers = map[byte]characterHandler[temporal.LocalDate]{
	'%':  handlePercent[temporal.LocalDate],
	'\'': handleQuote[temporal.LocalDate],
	'"':  handleQuote[temporal.LocalDate],
	'\\': handleBackslash[temporal.LocalDate],
	'/': func(pc *patternCursor, b *steppedPatternBuilder[temporal.LocalDate]) error {
		b.addLiteralText(b.culture.DateSeparator, dateSeparatorMismatch[temporal.LocalDate])
		return nil
	},
	'u': createAbsoluteYearHandler(
		func(d temporal.LocalDate) int64 { return int64(d.Year()) },
		func(b parseBucket[temporal.LocalDate], v int64) { localDateBucket(b).year = v }),
	'y': createYearOfEraHandler(
		func(d temporal.LocalDate) int64 { return int64(d.YearOfEra()) },
		func(b parseBucket[temporal.LocalDate], v int64) { localDateBucket(b).yearOfEra = v }),
	'M': createMonthOfYearHandler(
		func(d temporal.LocalDate) int64 { return int64(d.Month()) },
		func(d temporal.LocalDate) int { return d.Month() },
		func(b parseBucket[temporal.LocalDate], v int64) { localDateBucket(b).monthOfYearNum = v },
		func(b parseBucket[temporal.LocalDate], v int) { localDateBucket(b).monthOfYearText = v }),
	'd': createDayHandler(
		func(d temporal.LocalDate) int64 { return int64(d.Day()) },
		func(d temporal.LocalDate) int { return int(d.DayOfWeek()) },
		func(b parseBucket[temporal.LocalDate], v int64) { localDateBucket(b).dayOfMonth = v },
		func(b parseBucket[temporal.LocalDate], v int) { localDateBucket(b).dayOfWeek = v }),
	'g': createEraHandler(
		temporal.LocalDate.Era,
		func(b parseBucket[temporal.LocalDate]) *localDateParseBucket { return localDateBucket(b) }),
	'c': createCalendarHandler(
		temporal.LocalDate.Calendar,
		func(b parseBucket[temporal.LocalDate], c *temporal.Calendar) { localDateBucket(b).calendar = c }),
}

const (
	localDateIsoText           = "uuuu'-'MM'-'dd"
	localDateFullRoundtripText = "uuuu'-'MM'-'dd '('c')'"
)

func expandLocalDateStandard(patternText string, c *culture.Culture) (string, error) {
	switch patternText[0] {
	case 'd':
		return c.ShortDatePattern, nil
	case 'D':
		return c.LongDatePattern, nil
	case 'R':
		return localDateIsoText, nil
	case 'r':
		return localDateFullRoundtripText, nil
	default:
		return "", patternError(PatternErrorUnknownStandardFormat, msgUnknownStandardFormat, patternText, "LocalDate", patternText)
	}
}

func parseLocalDatePattern(patternText string, c *culture.Culture, template temporal.LocalDate, twoDigitYearMax int) (partialPattern[temporal.LocalDate], error) {
	if len(patternText) == 0 {
		return nil, patternError(PatternErrorFormatStringEmpty, msgFormatStringEmpty)
	}
	if len(patternText) == 1 {
		expanded, err := expandLocalDateStandard(patternText, c)
		if err != nil {
			return nil, err
		}
		patternText = expanded
	}
	builder := newBuilder(c, "LocalDate", newLocalDateBucketProvider(template, twoDigitYearMax, "LocalDate"))
	if err := builder.parseCustomPattern(patternText, localDateHandlers); err != nil {
		return nil, err
	}
	if err := builder.validateUsedFields(); err != nil {
		return nil, err
	}
	return builder.build(template), nil
}

// defaultLocalDateTemplate is the template value used when none is given:
// the first day of 2000 in the ISO calendar.
func defaultLocalDateTemplate() temporal.LocalDate {
	return temporal.MustLocalDate(2000, 1, 1)
}

// LocalDatePattern formats and parses temporal.LocalDate values.
type LocalDatePattern struct {
	patternText     string
	culture         *culture.Culture
	template        temporal.LocalDate
	twoDigitYearMax int
	underlying      partialPattern[temporal.LocalDate]
}

// NewLocalDatePattern compiles a date pattern for the given culture; a nil
// culture means the invariant culture. The template value, 2000-01-01
// unless changed with WithTemplateValue, supplies any fields the pattern
// omits and its calendar system is the calendar parsed values use.
func NewLocalDatePattern(patternText string, c *culture.Culture) (*LocalDatePattern, error) {
	if c == nil {
		c = culture.Invariant
	}
	return newLocalDatePattern(patternText, c, defaultLocalDateTemplate(), c.TwoDigitYearMax)
}

func newLocalDatePattern(patternText string, c *culture.Culture, template temporal.LocalDate, twoDigitYearMax int) (*LocalDatePattern, error) {
	if c == nil {
		c = culture.Invariant
	}
	if twoDigitYearMax < 0 || twoDigitYearMax > 99 {
		return nil, fmt.Errorf("two-digit-year max %d is outside the range [0, 99]", twoDigitYearMax)
	}
	underlying, err := parseLocalDatePattern(patternText, c, template, twoDigitYearMax)
	if err != nil {
		return nil, err
	}
	return &LocalDatePattern{
		patternText:     patternText,
		culture:         c,
		template:        template,
		twoDigitYearMax: twoDigitYearMax,
		underlying:      underlying,
	}, nil
}

func NewLocalDatePatternInvariant(patternText string) (*LocalDatePattern, error) {
	return NewLocalDatePattern(patternText, culture.Invariant)
}

func NewLocalDatePatternCurrentCulture(patternText string) (*LocalDatePattern, error) {
	return NewLocalDatePattern(patternText, culture.Current())
}

func (p *LocalDatePattern) PatternText() string               { return p.patternText }
func (p *LocalDatePattern) Culture() *culture.Culture         { return p.culture }
func (p *LocalDatePattern) TemplateValue() temporal.LocalDate { return p.template }
func (p *LocalDatePattern) TwoDigitYearMax() int              { return p.twoDigitYearMax }

func (p *LocalDatePattern) Parse(text string) ParseResult[temporal.LocalDate] {
	return p.underlying.Parse(text)
}

func (p *LocalDatePattern) Format(value temporal.LocalDate) string {
	return p.underlying.Format(value)
}

func (p *LocalDatePattern) AppendFormat(value temporal.LocalDate, sb *strings.Builder) *strings.Builder {
	return p.underlying.AppendFormat(value, sb)
}

// WithCulture recompiles the same pattern text for another culture.
func (p *LocalDatePattern) WithCulture(c *culture.Culture) (*LocalDatePattern, error) {
	return newLocalDatePattern(p.patternText, c, p.template, p.twoDigitYearMax)
}

// WithTemplateValue recompiles the pattern with another template value.
func (p *LocalDatePattern) WithTemplateValue(template temporal.LocalDate) (*LocalDatePattern, error) {
	return newLocalDatePattern(p.patternText, p.culture, template, p.twoDigitYearMax)
}

// WithTwoDigitYearMax recompiles the pattern with another cutoff for
// expanding two-digit years; the cutoff must be in the range [0, 99].
func (p *LocalDatePattern) WithTwoDigitYearMax(max int) (*LocalDatePattern, error) {
	return newLocalDatePattern(p.patternText, p.culture, p.template, max)
}

// LocalDateIso is the invariant pattern "uuuu'-'MM'-'dd".
var LocalDateIso = sync.OnceValue(func() *LocalDatePattern {
	return mustLocalDatePattern("R")
})

// LocalDateFullRoundtrip is the invariant pattern
// "uuuu'-'MM'-'dd '('c')'", carrying the calendar system id.
var LocalDateFullRoundtrip = sync.OnceValue(func() *LocalDatePattern {
	return mustLocalDatePattern("r")
})

func mustLocalDatePattern(text string) *LocalDatePattern {
	p, err := NewLocalDatePatternInvariant(text)
	if err != nil {
		panic(err)
	}
	return p
}
