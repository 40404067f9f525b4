package pattern

import "fmt"

// ParseResult is the outcome of a parse operation: either a value or a
// deferred error, never both. Failed results build their error on demand,
// so probing many candidate formats does not pay for the failures.
type ParseResult[T any] struct {
	value       T
	errProvider func() error
	continuable bool
}

// Success reports whether the parse produced a value.
func (r ParseResult[T]) Success() bool { return r.errProvider == nil }

// Value returns the parsed value, or the parse error.
func (r ParseResult[T]) Value() (T, error) {
	if r.errProvider != nil {
		var zero T
		return zero, r.errProvider()
	}
	return r.value, nil
}

// MustValue returns the parsed value and panics on a failed result.
func (r ParseResult[T]) MustValue() T {
	if r.errProvider != nil {
		panic(r.errProvider())
	}
	return r.value
}

// Err returns the parse error, or nil for a successful result.
func (r ParseResult[T]) Err() error {
	if r.errProvider == nil {
		return nil
	}
	return r.errProvider()
}

// TryValue returns the parsed value, or the fallback for a failed result.
func (r ParseResult[T]) TryValue(fallback T) (T, bool) {
	if r.errProvider != nil {
		return fallback, false
	}
	return r.value, true
}

// continueAfterError reports whether a composite pattern should try its
// remaining formats after this failure.
func (r ParseResult[T]) continueAfterError() bool { return r.continuable }

func successResult[T any](value T) ParseResult[T] {
	return ParseResult[T]{value: value}
}

// unparsable builds the error for a mid-parse failure, rendering the cursor
// with a caret at the failure position.
func unparsable(kind ParseErrorKind, cursorText string, format string, args ...any) *UnparsableValueError {
	detail := format
	if len(args) > 0 {
		detail = fmt.Sprintf(format, args...)
	}
	return &UnparsableValueError{
		Kind:    kind,
		Message: fmt.Sprintf("%s Value being parsed: '%s'. (^ indicates error position.)", detail, cursorText),
	}
}

// unparsablePostParse builds the error for a failure found after the text
// itself matched, when field values are combined; there is no single
// failure position to point at.
func unparsablePostParse(kind ParseErrorKind, value string, format string, args ...any) *UnparsableValueError {
	detail := format
	if len(args) > 0 {
		detail = fmt.Sprintf(format, args...)
	}
	return &UnparsableValueError{
		Kind:    kind,
		Message: fmt.Sprintf("%s Value being parsed: '%s'.", detail, value),
	}
}

// parseFailure is a failed result pointing at the current cursor position.
func parseFailure[T any](kind ParseErrorKind, c *valueCursor, format string, args ...any) ParseResult[T] {
	cursorText := c.String()
	return ParseResult[T]{
		errProvider: func() error { return unparsable(kind, cursorText, format, args...) },
		continuable: true,
	}
}

// postParseFailure is a failed result for errors detected when combining
// parsed fields into a value.
func postParseFailure[T any](kind ParseErrorKind, value string, format string, args ...any) ParseResult[T] {
	return ParseResult[T]{
		errProvider: func() error { return unparsablePostParse(kind, value, format, args...) },
		continuable: true,
	}
}

// errorFailure wraps an already-built error.
func errorFailure[T any](err error) ParseResult[T] {
	return ParseResult[T]{errProvider: func() error { return err }, continuable: true}
}

// convertResult maps a successful result through fn, passing failures along.
func convertResult[T, U any](r ParseResult[T], fn func(T) U) ParseResult[U] {
	if r.errProvider != nil {
		return ParseResult[U]{errProvider: r.errProvider, continuable: r.continuable}
	}
	return successResult(fn(r.value))
}

// convertError re-types a failed result.
func convertError[T, U any](r ParseResult[T]) ParseResult[U] {
	return ParseResult[U]{errProvider: r.errProvider, continuable: r.continuable}
}
