package pattern

import (
	"bytes"
	"strings"
	"sync"

	"github.com/dhamidi/chrono/culture"
	"github.com/dhamidi/chrono/temporal"
)

// offsetParseBucket collects the pieces of a UTC offset: unsigned hour,
// minute and second fields plus one overall sign.
type offsetParseBucket struct {
	hours    int64
	minutes  int64
	seconds  int64
	negative bool
}

func (b *offsetParseBucket) calculateValue(usedFields patternField, text string) ParseResult[temporal.Offset] {
	seconds := int(b.hours)*temporal.SecondsPerHour + int(b.minutes)*temporal.SecondsPerMinute + int(b.seconds)
	if b.negative {
		seconds = -seconds
	}
	offset, err := temporal.OffsetFromSeconds(seconds)
	if err != nil {
		return postParseFailure[temporal.Offset](ParseErrorOverallValueOutOfRange, text, msgOverallValueOutOfRange, "Offset")
	}
	return successResult(offset)
}

func newOffsetBucket() parseBucket[temporal.Offset] { return &offsetParseBucket{} }

// Absolute field getters: the sign is formatted separately.

func positiveOffsetHours(o temporal.Offset) int64 {
	return int64(absInt(o.Seconds()) / temporal.SecondsPerHour)
}

func positiveOffsetMinutes(o temporal.Offset) int64 {
	return int64(absInt(o.Seconds()) / temporal.SecondsPerMinute % 60)
}

func positiveOffsetSeconds(o temporal.Offset) int64 {
	return int64(absInt(o.Seconds()) % 60)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func offsetBucket(b parseBucket[temporal.Offset]) *offsetParseBucket {
	return b.(*offsetParseBucket)
}

var offsetHandlers = map[byte]characterHandler[temporal.Offset]{
	'%':  handlePercent[temporal.Offset],
	'\'': handleQuote[temporal.Offset],
	'"':  handleQuote[temporal.Offset],
	'\\': handleBackslash[temporal.Offset],
	':': func(pc *patternCursor, b *steppedPatternBuilder[temporal.Offset]) error {
		b.addLiteralText(b.culture.TimeSeparator, timeSeparatorMismatch[temporal.Offset])
		return nil
	},
	'h': func(pc *patternCursor, b *steppedPatternBuilder[temporal.Offset]) error {
		return patternError(PatternErrorHour12NotSupported, msgHour12NotSupported, "Offset")
	},
	'H': handlePaddedField(2, fieldHours24, 0, 23, positiveOffsetHours,
		func(b parseBucket[temporal.Offset], v int64) { offsetBucket(b).hours = v }),
	'm': handlePaddedField(2, fieldMinutes, 0, 59, positiveOffsetMinutes,
		func(b parseBucket[temporal.Offset], v int64) { offsetBucket(b).minutes = v }),
	's': handlePaddedField(2, fieldSeconds, 0, 59, positiveOffsetSeconds,
		func(b parseBucket[temporal.Offset], v int64) { offsetBucket(b).seconds = v }),
	'+': func(pc *patternCursor, b *steppedPatternBuilder[temporal.Offset]) error {
		if err := b.addField(fieldSign, pc.current); err != nil {
			return err
		}
		b.addRequiredSign(
			func(bucket parseBucket[temporal.Offset], positive bool) { offsetBucket(bucket).negative = !positive },
			func(o temporal.Offset) bool { return o.Seconds() >= 0 })
		return nil
	},
	'-': func(pc *patternCursor, b *steppedPatternBuilder[temporal.Offset]) error {
		if err := b.addField(fieldSign, pc.current); err != nil {
			return err
		}
		b.addNegativeOnlySign(
			func(bucket parseBucket[temporal.Offset], positive bool) { offsetBucket(bucket).negative = !positive },
			func(o temporal.Offset) bool { return o.Seconds() >= 0 })
		return nil
	},
	'Z': func(pc *patternCursor, b *steppedPatternBuilder[temporal.Offset]) error {
		return patternError(PatternErrorZPrefixNotAtStart, msgZPrefixNotAtStart)
	},
}

func hasZeroSeconds(o temporal.Offset) bool {
	return o.Seconds()%temporal.SecondsPerMinute == 0
}

func hasZeroSecondsAndMinutes(o temporal.Offset) bool {
	return o.Seconds()%temporal.SecondsPerHour == 0
}

// parseOffsetPattern compiles offset pattern text, expanding the standard
// single-character patterns from the culture.
func parseOffsetPattern(patternText string, c *culture.Culture) (partialPattern[temporal.Offset], error) {
	if len(patternText) == 0 {
		return nil, patternError(PatternErrorFormatStringEmpty, msgFormatStringEmpty)
	}

	if len(patternText) == 1 {
		switch patternText[0] {
		case 'g':
			return buildOffsetComposite(c, c.OffsetPatternLong, c.OffsetPatternMedium, c.OffsetPatternShort)
		case 'G':
			full, err := parseOffsetPattern("g", c)
			if err != nil {
				return nil, err
			}
			return &zPrefixPattern{full: full}, nil
		case 'i':
			return buildOffsetComposite(c, c.OffsetPatternLongNoPunct, c.OffsetPatternMediumNoPunct, c.OffsetPatternShortNoPunct)
		case 'I':
			full, err := parseOffsetPattern("i", c)
			if err != nil {
				return nil, err
			}
			return &zPrefixPattern{full: full}, nil
		case 'l':
			patternText = c.OffsetPatternLong
		case 'm':
			patternText = c.OffsetPatternMedium
		case 's':
			patternText = c.OffsetPatternShort
		case 'L':
			patternText = c.OffsetPatternLongNoPunct
		case 'M':
			patternText = c.OffsetPatternMediumNoPunct
		case 'S':
			patternText = c.OffsetPatternShortNoPunct
		default:
			return nil, patternError(PatternErrorUnknownStandardFormat, msgUnknownStandardFormat, patternText, "Offset", patternText)
		}
	}

	// A custom pattern of just the Z prefix has nothing to delegate to.
	if patternText == "%Z" {
		return nil, patternError(PatternErrorEmptyZPrefixedPattern, msgEmptyZPrefixedPattern)
	}

	zPrefix := patternText[0] == 'Z'
	custom := patternText
	if zPrefix {
		custom = patternText[1:]
	}

	builder := newBuilder(c, "Offset", newOffsetBucket)
	if err := builder.parseCustomPattern(custom, offsetHandlers); err != nil {
		return nil, err
	}
	pattern := builder.build(temporal.MustOffset(5, 30))
	if zPrefix {
		return &zPrefixPattern{full: pattern}, nil
	}
	return pattern, nil
}

func buildOffsetComposite(c *culture.Culture, long, medium, short string) (partialPattern[temporal.Offset], error) {
	var composite CompositePatternBuilder[temporal.Offset]
	for _, part := range []struct {
		text      string
		canFormat func(temporal.Offset) bool
	}{
		{long, func(temporal.Offset) bool { return true }},
		{medium, hasZeroSeconds},
		{short, hasZeroSecondsAndMinutes},
	} {
		p, err := parseOffsetPattern(part.text, c)
		if err != nil {
			return nil, err
		}
		composite.Add(p, part.canFormat)
	}
	return composite.buildPartial(), nil
}

// zPrefixPattern delegates to a full pattern, except that the zero offset
// parses from and formats to the single letter "Z".
type zPrefixPattern struct {
	full partialPattern[temporal.Offset]
}

func (p *zPrefixPattern) Parse(text string) ParseResult[temporal.Offset] {
	if text == "Z" {
		return successResult(temporal.ZeroOffset)
	}
	return p.full.Parse(text)
}

func (p *zPrefixPattern) parsePartial(cursor *valueCursor) ParseResult[temporal.Offset] {
	if cursor.current == 'Z' {
		cursor.moveNext()
		return successResult(temporal.ZeroOffset)
	}
	return p.full.parsePartial(cursor)
}

func (p *zPrefixPattern) Format(value temporal.Offset) string {
	if value == temporal.ZeroOffset {
		return "Z"
	}
	return p.full.Format(value)
}

func (p *zPrefixPattern) AppendFormat(value temporal.Offset, sb *strings.Builder) *strings.Builder {
	if value == temporal.ZeroOffset {
		sb.WriteByte('Z')
		return sb
	}
	return p.full.AppendFormat(value, sb)
}

func (p *zPrefixPattern) appendFormatBuf(value temporal.Offset, buf *bytes.Buffer) {
	if value == temporal.ZeroOffset {
		buf.WriteByte('Z')
		return
	}
	p.full.appendFormatBuf(value, buf)
}

// OffsetPattern formats and parses temporal.Offset values.
type OffsetPattern struct {
	patternText string
	culture     *culture.Culture
	underlying  partialPattern[temporal.Offset]
}

// NewOffsetPattern compiles an offset pattern for the given culture; a nil
// culture means the invariant culture.
func NewOffsetPattern(patternText string, c *culture.Culture) (*OffsetPattern, error) {
	if c == nil {
		c = culture.Invariant
	}
	underlying, err := parseOffsetPattern(patternText, c)
	if err != nil {
		return nil, err
	}
	return &OffsetPattern{patternText: patternText, culture: c, underlying: underlying}, nil
}

// NewOffsetPatternInvariant compiles an offset pattern for the invariant
// culture.
func NewOffsetPatternInvariant(patternText string) (*OffsetPattern, error) {
	return NewOffsetPattern(patternText, culture.Invariant)
}

// NewOffsetPatternCurrentCulture compiles an offset pattern for the current
// process-wide culture at the time of the call.
func NewOffsetPatternCurrentCulture(patternText string) (*OffsetPattern, error) {
	return NewOffsetPattern(patternText, culture.Current())
}

func (p *OffsetPattern) PatternText() string       { return p.patternText }
func (p *OffsetPattern) Culture() *culture.Culture { return p.culture }

func (p *OffsetPattern) Parse(text string) ParseResult[temporal.Offset] {
	return p.underlying.Parse(text)
}

func (p *OffsetPattern) Format(value temporal.Offset) string {
	return p.underlying.Format(value)
}

func (p *OffsetPattern) AppendFormat(value temporal.Offset, sb *strings.Builder) *strings.Builder {
	return p.underlying.AppendFormat(value, sb)
}

// WithCulture recompiles the same pattern text for another culture.
func (p *OffsetPattern) WithCulture(c *culture.Culture) (*OffsetPattern, error) {
	return NewOffsetPattern(p.patternText, c)
}

// OffsetGeneralInvariant is the invariant general pattern ("g"): full
// precision, but no more fields than the value needs.
var OffsetGeneralInvariant = sync.OnceValue(func() *OffsetPattern {
	return mustOffsetPattern("g")
})

// OffsetGeneralInvariantWithZ is "G": like the general pattern, with the
// zero offset written as "Z".
var OffsetGeneralInvariantWithZ = sync.OnceValue(func() *OffsetPattern {
	return mustOffsetPattern("G")
})

func mustOffsetPattern(text string) *OffsetPattern {
	p, err := NewOffsetPatternInvariant(text)
	if err != nil {
		panic(err)
	}
	return p
}
