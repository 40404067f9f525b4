package pattern

import (
	"bytes"
	"fmt"
	"strings"
)

// CompositePatternBuilder combines several patterns for the same type into
// one. Parsing tries each component in the order added; formatting walks
// the components in reverse order and uses the first whose predicate
// accepts the value, so components should be added from most precise to
// least precise.
type CompositePatternBuilder[T any] struct {
	patterns        []Pattern[T]
	formatPredicate []func(T) bool
}

// Add appends a component pattern and the predicate deciding whether it can
// format a given value.
func (b *CompositePatternBuilder[T]) Add(p Pattern[T], canFormat func(T) bool) {
	b.patterns = append(b.patterns, p)
	b.formatPredicate = append(b.formatPredicate, canFormat)
}

// Build returns the composite pattern; at least one component is required.
func (b *CompositePatternBuilder[T]) Build() (Pattern[T], error) {
	if len(b.patterns) == 0 {
		return nil, fmt.Errorf("composite pattern has no component patterns")
	}
	return b.buildPartial(), nil
}

func (b *CompositePatternBuilder[T]) buildPartial() partialPattern[T] {
	return &compositePattern[T]{
		patterns:        append([]Pattern[T](nil), b.patterns...),
		formatPredicate: append([]func(T) bool(nil), b.formatPredicate...),
	}
}

type compositePattern[T any] struct {
	patterns        []Pattern[T]
	formatPredicate []func(T) bool
}

func (p *compositePattern[T]) Parse(text string) ParseResult[T] {
	for _, component := range p.patterns {
		result := component.Parse(text)
		if result.Success() || !result.continueAfterError() {
			return result
		}
	}
	return postParseFailure[T](ParseErrorNoMatchingFormat, text, msgNoMatchingFormat)
}

func (p *compositePattern[T]) parsePartial(cursor *valueCursor) ParseResult[T] {
	index := cursor.index
	for _, component := range p.patterns {
		cursor.move(index)
		result := component.(partialPattern[T]).parsePartial(cursor)
		if result.Success() || !result.continueAfterError() {
			return result
		}
	}
	cursor.move(index)
	return postParseFailure[T](ParseErrorNoMatchingFormat, cursor.source, msgNoMatchingFormat)
}

func (p *compositePattern[T]) Format(value T) string {
	return p.findFormatPattern(value).Format(value)
}

func (p *compositePattern[T]) AppendFormat(value T, sb *strings.Builder) *strings.Builder {
	return p.findFormatPattern(value).AppendFormat(value, sb)
}

func (p *compositePattern[T]) appendFormatBuf(value T, buf *bytes.Buffer) {
	p.findFormatPattern(value).(partialPattern[T]).appendFormatBuf(value, buf)
}

// findFormatPattern scans in reverse so the least precise component wins
// when several could format the value.
func (p *compositePattern[T]) findFormatPattern(value T) Pattern[T] {
	for i := len(p.patterns) - 1; i >= 0; i-- {
		if p.formatPredicate[i](value) {
			return p.patterns[i]
		}
	}
	panic(fmt.Sprintf("composite pattern: no component pattern can format value %v", value))
}
