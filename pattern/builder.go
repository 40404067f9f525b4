package pattern

import (
	"bytes"
	"strings"

	"github.com/dhamidi/chrono/culture"
)

// parseBucket accumulates field values during a parse and combines them
// into a final value once the whole text has matched. Each parse operation
// gets a fresh bucket, so compiled patterns stay safe for concurrent use.
type parseBucket[T any] interface {
	calculateValue(usedFields patternField, text string) ParseResult[T]
}

// parseStep consumes part of the value text, recording what it finds in the
// bucket. A nil return means success; a failed step returns the failure and
// parsing stops.
type parseStep[T any] func(*valueCursor, parseBucket[T]) *ParseResult[T]

// formatStep appends one field or literal of the formatted value.
type formatStep[T any] func(T, *bytes.Buffer)

// characterHandler compiles one pattern character (plus any repeats or
// arguments it consumes from the cursor) into parse and format steps.
type characterHandler[T any] func(*patternCursor, *steppedPatternBuilder[T]) error

// formatAction is a format step that may need the final field set before it
// can be built; deferred actions pick name lists (genitive or standalone
// month forms) depending on which other fields the pattern ended up using.
type formatAction[T any] struct {
	direct   formatStep[T]
	deferred func(finalFields patternField) formatStep[T]
}

// steppedPatternBuilder compiles pattern text into a steppedPattern. One
// builder compiles one pattern and is then discarded.
type steppedPatternBuilder[T any] struct {
	culture        *culture.Culture
	typeName       string
	bucketProvider func() parseBucket[T]
	usedFields     patternField
	parseActions   []parseStep[T]
	formatActions  []formatAction[T]
	formatOnly     bool
}

func newBuilder[T any](c *culture.Culture, typeName string, bucketProvider func() parseBucket[T]) *steppedPatternBuilder[T] {
	return &steppedPatternBuilder[T]{culture: c, typeName: typeName, bucketProvider: bucketProvider}
}

// setFormatOnly marks the pattern as unable to parse; Parse will fail with
// a FormatOnlyPattern error.
func (b *steppedPatternBuilder[T]) setFormatOnly() { b.formatOnly = true }

func (b *steppedPatternBuilder[T]) addParseAction(step parseStep[T]) {
	b.parseActions = append(b.parseActions, step)
}

func (b *steppedPatternBuilder[T]) addFormatAction(step formatStep[T]) {
	b.formatActions = append(b.formatActions, formatAction[T]{direct: step})
}

func (b *steppedPatternBuilder[T]) addDeferredFormatAction(build func(finalFields patternField) formatStep[T]) {
	b.formatActions = append(b.formatActions, formatAction[T]{deferred: build})
}

// addField records that the pattern uses the given field, rejecting
// duplicates.
func (b *steppedPatternBuilder[T]) addField(field patternField, characterInPattern byte) error {
	newUsed := b.usedFields | field
	if newUsed == b.usedFields {
		return patternError(PatternErrorRepeatedField, msgRepeatedField, string(characterInPattern))
	}
	b.usedFields = newUsed
	return nil
}

// validateUsedFields rejects field combinations that cannot produce a
// value: a calendar override together with an era, and an era without a
// year-of-era to apply it to.
func (b *steppedPatternBuilder[T]) validateUsedFields() error {
	calendarAndEra := fieldEra | fieldCalendar
	if b.usedFields&calendarAndEra == calendarAndEra {
		return patternError(PatternErrorCalendarAndEra, msgCalendarAndEra)
	}
	if b.usedFields&(fieldEra|fieldYearOfEra) == fieldEra {
		return patternError(PatternErrorEraWithoutYearOfEra, msgEraWithoutYearOfEra)
	}
	return nil
}

// addLiteralText adds a fixed text that must appear verbatim in the value.
func (b *steppedPatternBuilder[T]) addLiteralText(expected string, failure func(*valueCursor) ParseResult[T]) {
	switch len(expected) {
	case 0:
		return
	case 1:
		b.addLiteralChar(expected[0], failure)
	default:
		b.addParseAction(func(cursor *valueCursor, _ parseBucket[T]) *ParseResult[T] {
			if cursor.match(expected) {
				return nil
			}
			r := failure(cursor)
			return &r
		})
		b.addFormatAction(func(_ T, buf *bytes.Buffer) { buf.WriteString(expected) })
	}
}

func (b *steppedPatternBuilder[T]) addLiteralChar(expected byte, failure func(*valueCursor) ParseResult[T]) {
	b.addParseAction(func(cursor *valueCursor, _ parseBucket[T]) *ParseResult[T] {
		if cursor.matchByte(expected) {
			return nil
		}
		r := failure(cursor)
		return &r
	})
	b.addFormatAction(func(_ T, buf *bytes.Buffer) { buf.WriteByte(expected) })
}

// Failure selectors for literal steps.

func quotedStringMismatch[T any](c *valueCursor) ParseResult[T] {
	return parseFailure[T](ParseErrorQuotedStringMismatch, c, msgQuotedStringMismatch)
}

func escapedCharacterMismatch[T any](ch byte) func(*valueCursor) ParseResult[T] {
	return func(c *valueCursor) ParseResult[T] {
		return parseFailure[T](ParseErrorEscapedCharacterMismatch, c, msgEscapedCharMismatch, string(ch))
	}
}

func mismatchedCharacter[T any](ch byte) func(*valueCursor) ParseResult[T] {
	return func(c *valueCursor) ParseResult[T] {
		return parseFailure[T](ParseErrorMismatchedCharacter, c, msgMismatchedCharacter, string(ch))
	}
}

func dateSeparatorMismatch[T any](c *valueCursor) ParseResult[T] {
	return parseFailure[T](ParseErrorDateSeparatorMismatch, c, msgDateSeparatorMismatch)
}

func timeSeparatorMismatch[T any](c *valueCursor) ParseResult[T] {
	return parseFailure[T](ParseErrorTimeSeparatorMismatch, c, msgTimeSeparatorMismatch)
}

// addParseValueAction parses a numeric field: an optional sign where the
// range allows one, between minimumDigits and maximumDigits digits, and a
// range check. The cursor is restored on any failure so composite patterns
// can retry.
func (b *steppedPatternBuilder[T]) addParseValueAction(minimumDigits, maximumDigits int, patternChar byte,
	minimumValue, maximumValue int64, setter func(parseBucket[T], int64)) {
	typeName := b.typeName
	b.addParseAction(func(cursor *valueCursor, bucket parseBucket[T]) *ParseResult[T] {
		startingIndex := cursor.index
		negative := cursor.matchByte('-')
		if negative && minimumValue >= 0 {
			cursor.move(startingIndex)
			r := parseFailure[T](ParseErrorUnexpectedNegative, cursor, msgUnexpectedNegative)
			return &r
		}
		digits, ok := cursor.parseDigits(minimumDigits, maximumDigits)
		if !ok {
			cursor.move(startingIndex)
			r := parseFailure[T](ParseErrorMismatchedNumber, cursor, msgMismatchedNumber, strings.Repeat(string(patternChar), minimumDigits))
			return &r
		}
		value := int64(digits)
		if negative {
			value = -value
		}
		if value < minimumValue || value > maximumValue {
			cursor.move(startingIndex)
			r := parseFailure[T](ParseErrorFieldValueOutOfRange, cursor, msgFieldValueOutOfRange, value, patternChar, typeName)
			return &r
		}
		setter(bucket, value)
		return nil
	})
}

// addFormatLeftPad adds a zero-padded numeric format step, with fast paths
// for the two most common shapes.
func (b *steppedPatternBuilder[T]) addFormatLeftPad(count int, selector func(T) int64, assumeNonNegative, assumeFitsInCount bool) {
	switch {
	case count == 2 && assumeNonNegative && assumeFitsInCount:
		b.addFormatAction(func(v T, buf *bytes.Buffer) { appendTwoDigits(selector(v), buf) })
	case count == 4 && assumeFitsInCount:
		b.addFormatAction(func(v T, buf *bytes.Buffer) { appendFourDigits(selector(v), buf) })
	case assumeNonNegative:
		b.addFormatAction(func(v T, buf *bytes.Buffer) { leftPadNonNegative(selector(v), count, buf) })
	default:
		b.addFormatAction(func(v T, buf *bytes.Buffer) { leftPad(selector(v), count, buf) })
	}
}

// addRequiredSign adds a mandatory leading sign: parsing requires '+' or
// '-', formatting always writes one.
func (b *steppedPatternBuilder[T]) addRequiredSign(setter func(parseBucket[T], bool), nonNegative func(T) bool) {
	b.addParseAction(func(cursor *valueCursor, bucket parseBucket[T]) *ParseResult[T] {
		if cursor.matchByte('-') {
			setter(bucket, false)
			return nil
		}
		if cursor.matchByte('+') {
			setter(bucket, true)
			return nil
		}
		r := parseFailure[T](ParseErrorMissingSign, cursor, msgMissingSign)
		return &r
	})
	b.addFormatAction(func(v T, buf *bytes.Buffer) {
		if nonNegative(v) {
			buf.WriteByte('+')
		} else {
			buf.WriteByte('-')
		}
	})
}

// addNegativeOnlySign adds a sign only present for negative values; an
// explicit '+' is rejected.
func (b *steppedPatternBuilder[T]) addNegativeOnlySign(setter func(parseBucket[T], bool), nonNegative func(T) bool) {
	b.addParseAction(func(cursor *valueCursor, bucket parseBucket[T]) *ParseResult[T] {
		if cursor.matchByte('-') {
			setter(bucket, false)
			return nil
		}
		if cursor.matchByte('+') {
			r := parseFailure[T](ParseErrorPositiveSignInvalid, cursor, msgPositiveSignInvalid)
			return &r
		}
		setter(bucket, true)
		return nil
	})
	b.addFormatAction(func(v T, buf *bytes.Buffer) {
		if !nonNegative(v) {
			buf.WriteByte('-')
		}
	})
}

// addParseLongestTextAction matches the longest candidate from the given
// name lists, case-insensitively, and records the winning index. Lists are
// indexed the way the culture name lists are: entry 0 is empty and never
// matches.
func (b *steppedPatternBuilder[T]) addParseLongestTextAction(field byte, setter func(parseBucket[T], int), textLists ...[]string) {
	b.addParseAction(func(cursor *valueCursor, bucket parseBucket[T]) *ParseResult[T] {
		bestIndex, longestMatch := -1, 0
		for _, list := range textLists {
			for i, candidate := range list {
				if len(candidate) <= longestMatch {
					continue
				}
				if cursor.matchCaseInsensitive(candidate, false) {
					bestIndex, longestMatch = i, len(candidate)
				}
			}
		}
		if bestIndex != -1 {
			setter(bucket, bestIndex)
			cursor.move(cursor.index + longestMatch)
			return nil
		}
		r := parseFailure[T](ParseErrorMismatchedText, cursor, msgMismatchedText, field)
		return &r
	})
}

// addFormatFraction adds a fixed-width fractional-second format step.
func (b *steppedPatternBuilder[T]) addFormatFraction(count, scale int, selector func(T) int64) {
	b.addFormatAction(func(v T, buf *bytes.Buffer) { appendFraction(count, scale, selector(v), buf) })
}

// addFormatFractionTruncate adds a fractional-second format step that drops
// trailing zeros, and the decimal separator too when nothing remains.
func (b *steppedPatternBuilder[T]) addFormatFractionTruncate(count, scale int, selector func(T) int64) {
	b.addFormatAction(func(v T, buf *bytes.Buffer) { appendFractionTruncate(count, scale, selector(v), buf) })
}

// addEmbeddedPattern splices a compiled pattern for another type into this
// one: parsing runs the embedded pattern mid-text and hands its value to
// parseAction; formatting extracts the embedded value and appends its
// formatted form.
func addEmbeddedPattern[T, E any](b *steppedPatternBuilder[T], embedded partialPattern[E],
	parseAction func(parseBucket[T], E), valueExtractor func(T) E) {
	b.addParseAction(func(cursor *valueCursor, bucket parseBucket[T]) *ParseResult[T] {
		result := embedded.parsePartial(cursor)
		value, ok := result.TryValue(*new(E))
		if !ok {
			r := convertError[E, T](result)
			return &r
		}
		parseAction(bucket, value)
		return nil
	})
	b.addFormatAction(func(v T, buf *bytes.Buffer) {
		embedded.appendFormatBuf(valueExtractor(v), buf)
	})
}

// Shared character handlers.

// handleQuote compiles a quoted literal.
func handleQuote[T any](pc *patternCursor, b *steppedPatternBuilder[T]) error {
	quoted, err := pc.getQuotedString(pc.current)
	if err != nil {
		return err
	}
	b.addLiteralText(quoted, quotedStringMismatch[T])
	return nil
}

// handleBackslash compiles an escaped literal character.
func handleBackslash[T any](pc *patternCursor, b *steppedPatternBuilder[T]) error {
	if !pc.moveNext() {
		return patternError(PatternErrorEscapeAtEndOfString, msgEscapeAtEndOfString)
	}
	b.addLiteralChar(pc.current, escapedCharacterMismatch[T](pc.current))
	return nil
}

// handlePercent handles the no-op prefix that turns a single-character
// custom pattern into something distinguishable from a standard pattern.
func handlePercent[T any](pc *patternCursor, b *steppedPatternBuilder[T]) error {
	if pc.hasMoreCharacters() {
		if pc.peekNext() != '%' {
			return nil
		}
		return patternError(PatternErrorPercentDoubled, msgPercentDoubled)
	}
	return patternError(PatternErrorPercentAtEndOfString, msgPercentAtEndOfString)
}

// handlePaddedField builds the standard handler for a zero-paddable numeric
// field such as HH or mm.
func handlePaddedField[T any](maxCount int, field patternField, minValue, maxValue int64,
	getter func(T) int64, setter func(parseBucket[T], int64)) characterHandler[T] {
	return func(pc *patternCursor, b *steppedPatternBuilder[T]) error {
		count, err := pc.getRepeatCount(maxCount)
		if err != nil {
			return err
		}
		if err := b.addField(field, pc.current); err != nil {
			return err
		}
		b.addParseValueAction(count, maxCount, pc.current, minValue, maxValue, setter)
		b.addFormatLeftPad(count, getter, minValue >= 0, count == maxCount)
		return nil
	}
}

// parseCustomPattern drives compilation: each pattern character dispatches
// to its handler; unregistered letters must be quoted, anything else is a
// literal.
func (b *steppedPatternBuilder[T]) parseCustomPattern(patternText string, handlers map[byte]characterHandler[T]) error {
	pc := newPatternCursor(patternText)
	for pc.moveNext() {
		if handler, ok := handlers[pc.current]; ok {
			if err := handler(pc, b); err != nil {
				return err
			}
			continue
		}
		current := pc.current
		if (current >= 'A' && current <= 'Z') || (current >= 'a' && current <= 'z') ||
			current == embeddedPatternStart || current == embeddedPatternEnd {
			return patternError(PatternErrorUnquotedLiteral, msgUnquotedLiteral, string(current))
		}
		b.addLiteralChar(current, mismatchedCharacter[T](current))
	}
	return nil
}

// build finalizes the compiled pattern. Deferred format actions are
// resolved against the complete field set, and the sample value is
// formatted once to size the buffers Format allocates.
func (b *steppedPatternBuilder[T]) build(sample T) partialPattern[T] {
	formatSteps := make([]formatStep[T], 0, len(b.formatActions))
	for _, fa := range b.formatActions {
		if fa.deferred != nil {
			formatSteps = append(formatSteps, fa.deferred(b.usedFields))
		} else {
			formatSteps = append(formatSteps, fa.direct)
		}
	}
	var parseSteps []parseStep[T]
	if !b.formatOnly {
		parseSteps = b.parseActions
		if parseSteps == nil {
			parseSteps = []parseStep[T]{}
		}
	}
	p := &steppedPattern[T]{
		parseSteps:     parseSteps,
		formatSteps:    formatSteps,
		bucketProvider: b.bucketProvider,
		usedFields:     b.usedFields,
	}
	p.expectedLength = len(p.Format(sample))
	return p
}

// steppedPattern executes the compiled step lists.
type steppedPattern[T any] struct {
	parseSteps     []parseStep[T] // nil for format-only patterns
	formatSteps    []formatStep[T]
	bucketProvider func() parseBucket[T]
	usedFields     patternField
	expectedLength int
}

func (p *steppedPattern[T]) Parse(text string) ParseResult[T] {
	if p.parseSteps == nil {
		return postParseFailure[T](ParseErrorFormatOnlyPattern, text, msgFormatOnlyPattern)
	}
	if len(text) == 0 {
		// Not continuable: an empty value can never match a later component
		// of a composite pattern either, so the failure surfaces as-is.
		return ParseResult[T]{
			errProvider: func() error {
				return &UnparsableValueError{Kind: ParseErrorValueStringEmpty, Message: msgValueStringEmpty}
			},
		}
	}
	cursor := newValueCursor(text)
	cursor.moveNext()
	bucket := p.bucketProvider()
	for _, step := range p.parseSteps {
		if failure := step(cursor, bucket); failure != nil {
			return *failure
		}
	}
	if cursor.current != nul {
		return parseFailure[T](ParseErrorExtraValueCharacters, cursor, msgExtraValueCharacters, cursor.remainder())
	}
	return bucket.calculateValue(p.usedFields, text)
}

// parsePartial parses from the cursor's current position, leaving the
// cursor after the consumed text; used for embedded patterns.
func (p *steppedPattern[T]) parsePartial(cursor *valueCursor) ParseResult[T] {
	if p.parseSteps == nil {
		return postParseFailure[T](ParseErrorFormatOnlyPattern, cursor.source, msgFormatOnlyPattern)
	}
	bucket := p.bucketProvider()
	for _, step := range p.parseSteps {
		if failure := step(cursor, bucket); failure != nil {
			return *failure
		}
	}
	return bucket.calculateValue(p.usedFields, cursor.source)
}

func (p *steppedPattern[T]) Format(value T) string {
	var buf bytes.Buffer
	buf.Grow(p.expectedLength)
	p.appendFormatBuf(value, &buf)
	return buf.String()
}

func (p *steppedPattern[T]) AppendFormat(value T, sb *strings.Builder) *strings.Builder {
	var buf bytes.Buffer
	buf.Grow(p.expectedLength)
	p.appendFormatBuf(value, &buf)
	sb.Write(buf.Bytes())
	return sb
}

func (p *steppedPattern[T]) appendFormatBuf(value T, buf *bytes.Buffer) {
	for _, step := range p.formatSteps {
		step(value, buf)
	}
}
