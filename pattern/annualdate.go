package pattern

import (
	"strings"
	"sync"

	"github.com/dhamidi/chrono/culture"
	"github.com/dhamidi/chrono/temporal"
)

// annualDateParseBucket collects the month and day of a yearless date.
// Validation uses a leap year, matching the AnnualDate constructor, so
// February 29th is accepted.
type annualDateParseBucket struct {
	template        temporal.AnnualDate
	monthOfYearNum  int64
	monthOfYearText int
	dayOfMonth      int64
}

func newAnnualDateBucketProvider(template temporal.AnnualDate) func() parseBucket[temporal.AnnualDate] {
	return func() parseBucket[temporal.AnnualDate] {
		return &annualDateParseBucket{template: template}
	}
}

func annualDateBucket(b parseBucket[temporal.AnnualDate]) *annualDateParseBucket {
	return b.(*annualDateParseBucket)
}

func (b *annualDateParseBucket) calculateValue(usedFields patternField, text string) ParseResult[temporal.AnnualDate] {
	if failure := b.determineMonth(usedFields, text); failure != nil {
		return *failure
	}
	day := b.dayOfMonth
	if !usedFields.anyOf(fieldDayOfMonth) {
		day = int64(b.template.Day())
	}
	if day > int64(temporal.CalendarISO.DaysInMonth(2000, int(b.monthOfYearNum))) {
		return postParseFailure[temporal.AnnualDate](ParseErrorDayOfMonthOutOfRangeNoYear, text, msgDayOfMonthNoYear, day, b.monthOfYearNum)
	}
	value, err := temporal.NewAnnualDate(int(b.monthOfYearNum), int(day))
	if err != nil {
		return postParseFailure[temporal.AnnualDate](ParseErrorOverallValueOutOfRange, text, msgOverallValueOutOfRange, "AnnualDate")
	}
	return successResult(value)
}

func (b *annualDateParseBucket) determineMonth(usedFields patternField, text string) *ParseResult[temporal.AnnualDate] {
	switch usedFields & (fieldMonthOfYearNumeric | fieldMonthOfYearText) {
	case fieldMonthOfYearNumeric:
		// Already in place.
	case fieldMonthOfYearText:
		b.monthOfYearNum = int64(b.monthOfYearText)
	case fieldMonthOfYearNumeric | fieldMonthOfYearText:
		if b.monthOfYearNum != int64(b.monthOfYearText) {
			r := postParseFailure[temporal.AnnualDate](ParseErrorInconsistentMonthTextValue, text, msgInconsistentMonth)
			return &r
		}
	case fieldNone:
		b.monthOfYearNum = int64(b.template.Month())
	}
	if b.monthOfYearNum > 12 {
		r := postParseFailure[temporal.AnnualDate](ParseErrorIsoMonthOutOfRange, text, msgIsoMonthOutOfRange, b.monthOfYearNum)
		return &r
	}
	return nil
}

var annualDateHandlers = map[byte]characterHandler[temporal.AnnualDate]{
	'%':  handlePercent[temporal.AnnualDate],
	'\'': handleQuote[temporal.AnnualDate],
	'"':  handleQuote[temporal.AnnualDate],
	'\\': handleBackslash[temporal.AnnualDate],
	'/': func(pc *patternCursor, b *steppedPatternBuilder[temporal.AnnualDate]) error {
		b.addLiteralText(b.culture.DateSeparator, dateSeparatorMismatch[temporal.AnnualDate])
		return nil
	},
	'M': createMonthOfYearHandler(
		func(d temporal.AnnualDate) int64 { return int64(d.Month()) },
		func(d temporal.AnnualDate) int { return d.Month() },
		func(b parseBucket[temporal.AnnualDate], v int64) { annualDateBucket(b).monthOfYearNum = v },
		func(b parseBucket[temporal.AnnualDate], v int) { annualDateBucket(b).monthOfYearText = v }),
	'd': func(pc *patternCursor, b *steppedPatternBuilder[temporal.AnnualDate]) error {
		count, err := pc.getRepeatCount(2)
		if err != nil {
			return err
		}
		if err := b.addField(fieldDayOfMonth, pc.current); err != nil {
			return err
		}
		// The real maximum depends on the month; the bucket checks it.
		b.addParseValueAction(count, 2, pc.current, 1, 99,
			func(bucket parseBucket[temporal.AnnualDate], v int64) { annualDateBucket(bucket).dayOfMonth = v })
		b.addFormatLeftPad(count, func(d temporal.AnnualDate) int64 { return int64(d.Day()) }, true, count == 2)
		return nil
	},
}

const annualDateIsoText = "MM'-'dd"

func parseAnnualDatePattern(patternText string, c *culture.Culture, template temporal.AnnualDate) (partialPattern[temporal.AnnualDate], error) {
	if len(patternText) == 0 {
		return nil, patternError(PatternErrorFormatStringEmpty, msgFormatStringEmpty)
	}
	if len(patternText) == 1 {
		switch patternText[0] {
		case 'G':
			patternText = annualDateIsoText
		default:
			return nil, patternError(PatternErrorUnknownStandardFormat, msgUnknownStandardFormat, patternText, "AnnualDate", patternText)
		}
	}
	builder := newBuilder(c, "AnnualDate", newAnnualDateBucketProvider(template))
	if err := builder.parseCustomPattern(patternText, annualDateHandlers); err != nil {
		return nil, err
	}
	if err := builder.validateUsedFields(); err != nil {
		return nil, err
	}
	return builder.build(template), nil
}

// AnnualDatePattern formats and parses temporal.AnnualDate values.
type AnnualDatePattern struct {
	patternText string
	culture     *culture.Culture
	template    temporal.AnnualDate
	underlying  partialPattern[temporal.AnnualDate]
}

// NewAnnualDatePattern compiles an annual-date pattern for the given
// culture; a nil culture means the invariant culture. The template value,
// January 1st unless changed with WithTemplateValue, supplies any fields
// the pattern omits.
func NewAnnualDatePattern(patternText string, c *culture.Culture) (*AnnualDatePattern, error) {
	return newAnnualDatePattern(patternText, c, temporal.MustAnnualDate(1, 1))
}

func newAnnualDatePattern(patternText string, c *culture.Culture, template temporal.AnnualDate) (*AnnualDatePattern, error) {
	if c == nil {
		c = culture.Invariant
	}
	underlying, err := parseAnnualDatePattern(patternText, c, template)
	if err != nil {
		return nil, err
	}
	return &AnnualDatePattern{patternText: patternText, culture: c, template: template, underlying: underlying}, nil
}

func NewAnnualDatePatternInvariant(patternText string) (*AnnualDatePattern, error) {
	return NewAnnualDatePattern(patternText, culture.Invariant)
}

func NewAnnualDatePatternCurrentCulture(patternText string) (*AnnualDatePattern, error) {
	return NewAnnualDatePattern(patternText, culture.Current())
}

func (p *AnnualDatePattern) PatternText() string                { return p.patternText }
func (p *AnnualDatePattern) Culture() *culture.Culture          { return p.culture }
func (p *AnnualDatePattern) TemplateValue() temporal.AnnualDate { return p.template }

func (p *AnnualDatePattern) Parse(text string) ParseResult[temporal.AnnualDate] {
	return p.underlying.Parse(text)
}

func (p *AnnualDatePattern) Format(value temporal.AnnualDate) string {
	return p.underlying.Format(value)
}

func (p *AnnualDatePattern) AppendFormat(value temporal.AnnualDate, sb *strings.Builder) *strings.Builder {
	return p.underlying.AppendFormat(value, sb)
}

// WithCulture recompiles the same pattern text for another culture.
func (p *AnnualDatePattern) WithCulture(c *culture.Culture) (*AnnualDatePattern, error) {
	return newAnnualDatePattern(p.patternText, c, p.template)
}

// WithTemplateValue recompiles the pattern with another template value.
func (p *AnnualDatePattern) WithTemplateValue(template temporal.AnnualDate) (*AnnualDatePattern, error) {
	return newAnnualDatePattern(p.patternText, p.culture, template)
}

// AnnualDateIso is the invariant pattern "MM'-'dd".
var AnnualDateIso = sync.OnceValue(func() *AnnualDatePattern {
	return mustAnnualDatePattern("G")
})

func mustAnnualDatePattern(text string) *AnnualDatePattern {
	p, err := NewAnnualDatePatternInvariant(text)
	if err != nil {
		panic(err)
	}
	return p
}
