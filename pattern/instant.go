package pattern

import (
	"strings"
	"sync"

	"github.com/dhamidi/chrono/culture"
	"github.com/dhamidi/chrono/temporal"
)

const (
	instantGeneralText = "uuuu'-'MM'-'dd'T'HH':'mm':'ss'Z'"
	beforeMinValueText = "StartOfTime"
	afterMaxValueText  = "EndOfTime"
)

// instantAdapter parses and formats instants through a date-time pattern
// interpreted in UTC. The start/end-of-time sentinels format to fixed
// labels; they never parse.
type instantAdapter struct {
	local partialPattern[temporal.LocalDateTime]
}

func (a *instantAdapter) Parse(text string) ParseResult[temporal.Instant] {
	result := a.local.Parse(text)
	dt, ok := result.TryValue(temporal.LocalDateTime{})
	if !ok {
		return convertError[temporal.LocalDateTime, temporal.Instant](result)
	}
	instant, err := temporal.InstantFromUTC(dt)
	if err != nil {
		return postParseFailure[temporal.Instant](ParseErrorOverallValueOutOfRange, text, msgOverallValueOutOfRange, "Instant")
	}
	return successResult(instant)
}

func (a *instantAdapter) Format(value temporal.Instant) string {
	if !value.IsValid() {
		if value.DaysSinceEpoch() < temporal.MinInstant.DaysSinceEpoch() {
			return beforeMinValueText
		}
		return afterMaxValueText
	}
	return a.local.Format(value.InUTC())
}

func (a *instantAdapter) AppendFormat(value temporal.Instant, sb *strings.Builder) *strings.Builder {
	sb.WriteString(a.Format(value))
	return sb
}

// InstantPattern formats and parses temporal.Instant values as their UTC
// ISO-calendar date-time.
type InstantPattern struct {
	patternText string
	culture     *culture.Culture
	underlying  *instantAdapter
}

// NewInstantPattern compiles an instant pattern for the given culture; a
// nil culture means the invariant culture. The pattern text uses the
// date-time specifiers; the single character "g" is the general pattern
// "uuuu'-'MM'-'dd'T'HH':'mm':'ss'Z'".
func NewInstantPattern(patternText string, c *culture.Culture) (*InstantPattern, error) {
	if c == nil {
		c = culture.Invariant
	}
	text := patternText
	if len(text) == 0 {
		return nil, patternError(PatternErrorFormatStringEmpty, msgFormatStringEmpty)
	}
	if len(text) == 1 {
		switch text[0] {
		case 'g':
			text = instantGeneralText
		default:
			return nil, patternError(PatternErrorUnknownStandardFormat, msgUnknownStandardFormat, text, "Instant", text)
		}
	}
	template := temporal.UnixEpoch.InUTC()
	local, err := parseLocalDateTimePattern(text, c, template.Date(), template.TimeOfDay(), c.TwoDigitYearMax)
	if err != nil {
		return nil, err
	}
	return &InstantPattern{patternText: patternText, culture: c, underlying: &instantAdapter{local: local}}, nil
}

func NewInstantPatternInvariant(patternText string) (*InstantPattern, error) {
	return NewInstantPattern(patternText, culture.Invariant)
}

func NewInstantPatternCurrentCulture(patternText string) (*InstantPattern, error) {
	return NewInstantPattern(patternText, culture.Current())
}

func (p *InstantPattern) PatternText() string       { return p.patternText }
func (p *InstantPattern) Culture() *culture.Culture { return p.culture }

func (p *InstantPattern) Parse(text string) ParseResult[temporal.Instant] {
	return p.underlying.Parse(text)
}

func (p *InstantPattern) Format(value temporal.Instant) string {
	return p.underlying.Format(value)
}

func (p *InstantPattern) AppendFormat(value temporal.Instant, sb *strings.Builder) *strings.Builder {
	return p.underlying.AppendFormat(value, sb)
}

// WithCulture recompiles the same pattern text for another culture.
func (p *InstantPattern) WithCulture(c *culture.Culture) (*InstantPattern, error) {
	return NewInstantPattern(p.patternText, c)
}

// InstantGeneral is the invariant pattern
// "uuuu'-'MM'-'dd'T'HH':'mm':'ss'Z'".
var InstantGeneral = sync.OnceValue(func() *InstantPattern {
	p, err := NewInstantPatternInvariant("g")
	if err != nil {
		panic(err)
	}
	return p
})
