package pattern

import (
	"bytes"
	"strings"
)

// Pattern is the surface shared by every compiled pattern: parse text into
// a value, or format a value as text. Compiled patterns are immutable and
// safe for concurrent use.
type Pattern[T any] interface {
	Parse(text string) ParseResult[T]
	Format(value T) string
	AppendFormat(value T, sb *strings.Builder) *strings.Builder
}

// partialPattern is a Pattern that can also parse from the middle of a
// larger text, which is what embedding one pattern inside another needs.
type partialPattern[T any] interface {
	Pattern[T]
	parsePartial(cursor *valueCursor) ParseResult[T]
	appendFormatBuf(value T, buf *bytes.Buffer)
}
