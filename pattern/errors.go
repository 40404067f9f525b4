// Package pattern compiles text patterns such as
// "uuuu-MM-dd'T'HH:mm:ss.FFFFFFFFF" into immutable objects that format and
// parse the temporal value types. Compilation errors are *PatternError
// values; parse failures are reported through ParseResult and carry a
// *UnparsableValueError.
package pattern

import "fmt"

// PatternErrorKind identifies why a pattern failed to compile.
type PatternErrorKind int

const (
	PatternErrorFormatStringEmpty PatternErrorKind = iota
	PatternErrorUnknownStandardFormat
	PatternErrorEscapeAtEndOfString
	PatternErrorMissingEndQuote
	PatternErrorRepeatCountExceeded
	PatternErrorInvalidRepeatCount
	PatternErrorMissingEmbeddedPatternStart
	PatternErrorMissingEmbeddedPatternEnd
	PatternErrorInvalidEmbeddedPatternType
	PatternErrorUnquotedLiteral
	PatternErrorRepeatedField
	PatternErrorPercentDoubled
	PatternErrorPercentAtEndOfString
	PatternErrorHour12NotSupported
	PatternErrorEraWithoutYearOfEra
	PatternErrorCalendarAndEra
	PatternErrorDateFieldAndEmbeddedDate
	PatternErrorTimeFieldAndEmbeddedTime
	PatternErrorMultipleCapitalDurationFields
	PatternErrorEmptyZPrefixedPattern
	PatternErrorZPrefixNotAtStart
)

// PatternError reports an invalid pattern string at compile time.
type PatternError struct {
	Kind    PatternErrorKind
	Message string
}

func (e *PatternError) Error() string { return e.Message }

// patternError builds a compile error. The format string is always run
// through Sprintf, so message templates escape literal percent signs.
func patternError(kind PatternErrorKind, format string, args ...any) *PatternError {
	return &PatternError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// ParseErrorKind identifies why a value string failed to parse.
type ParseErrorKind int

const (
	ParseErrorValueStringEmpty ParseErrorKind = iota
	ParseErrorExtraValueCharacters
	ParseErrorExpectedEndOfString
	ParseErrorEndOfString
	ParseErrorQuotedStringMismatch
	ParseErrorEscapedCharacterMismatch
	ParseErrorTimeSeparatorMismatch
	ParseErrorDateSeparatorMismatch
	ParseErrorMismatchedNumber
	ParseErrorMismatchedCharacter
	ParseErrorMismatchedText
	ParseErrorMissingNumber
	ParseErrorMissingSign
	ParseErrorMissingAmPmDesignator
	ParseErrorUnexpectedNegative
	ParseErrorPositiveSignInvalid
	ParseErrorValueOutOfRange
	ParseErrorFieldValueOutOfRange
	ParseErrorOverallValueOutOfRange
	ParseErrorInconsistentValues
	ParseErrorInconsistentMonthTextValue
	ParseErrorInconsistentDayOfWeekTextValue
	ParseErrorMonthOutOfRange
	ParseErrorIsoMonthOutOfRange
	ParseErrorDayOfMonthOutOfRange
	ParseErrorDayOfMonthOutOfRangeNoYear
	ParseErrorYearOfEraOutOfRange
	ParseErrorInvalidHour24
	ParseErrorNoMatchingFormat
	ParseErrorNoMatchingCalendarSystem
	ParseErrorFormatOnlyPattern
)

// UnparsableValueError is the error carried by a failed ParseResult. The
// message pinpoints the failing position in the value string where one is
// known.
type UnparsableValueError struct {
	Kind    ParseErrorKind
	Message string
}

func (e *UnparsableValueError) Error() string { return e.Message }

// Message templates, shared between the parsers so every failure of a given
// kind reads the same.
const (
	msgValueStringEmpty       = "The value string is empty."
	msgExtraValueCharacters   = "The format matches a prefix of the value string but not the entire string. Part not matching: %q."
	msgExpectedEndOfString    = "Expected end of input, but more data remains."
	msgEndOfString            = "Input string ended unexpectedly early."
	msgQuotedStringMismatch   = "The value string does not match a quoted string in the pattern."
	msgEscapedCharMismatch    = "The value string does not match an escaped character in the format string: %q"
	msgTimeSeparatorMismatch  = "The value string does not match a time separator in the format string."
	msgDateSeparatorMismatch  = "The value string does not match a date separator in the format string."
	msgMismatchedNumber       = "The value string does not match the required number from the format string %q."
	msgMismatchedCharacter    = "The value string does not match a simple character in the format string %q."
	msgMismatchedText         = "The value string does not match the text-based field '%c'."
	msgMissingNumber          = "The value string does not include a number in the expected position."
	msgMissingSign            = "The required value sign is missing."
	msgMissingAmPmDesignator  = "The value string does not match the AM or PM designator for the culture at the required place."
	msgUnexpectedNegative     = "The value string includes a negative value where only a non-negative one is allowed."
	msgPositiveSignInvalid    = "A positive value sign is not valid at this point."
	msgValueOutOfRange        = "The value %s is out of the legal range for the %s type."
	msgFieldValueOutOfRange   = "The value %d is out of range for the field '%c' in the %s type."
	msgOverallValueOutOfRange = "Value is out of the legal range for the %s type."
	msgInconsistentValues     = "The individual values for the fields '%c' and '%c' created an inconsistency in the %s type."
	msgInconsistentMonth      = "The month values specified as text and numbers are inconsistent."
	msgInconsistentDayOfWeek  = "The specified day of the week does not match the computed value."
	msgMonthOutOfRange        = "The month %d is out of range in year %d."
	msgIsoMonthOutOfRange     = "The month %d is out of range in the ISO calendar."
	msgDayOfMonthOutOfRange   = "The day %d is out of range in month %d of year %d."
	msgDayOfMonthNoYear       = "The day %d is out of range in month %d."
	msgYearOfEraOutOfRange    = "The year %d is out of range for the %s era in the %s calendar."
	msgInvalidHour24          = "24 is only valid as an hour number when the units smaller than hours are all 0."
	msgNoMatchingFormat       = "None of the specified formats matches the given value string."
	msgNoMatchingCalendar     = "The specified calendar id is not recognized."
	msgFormatOnlyPattern      = "This pattern is only capable of formatting, not parsing."
)

// Pattern compile message templates.
const (
	msgFormatStringEmpty        = "The format string is empty."
	msgUnknownStandardFormat    = "The standard format %q is not valid for the %s type. If the pattern was intended to be a custom format, escape it with a percent sign: \"%%%s\"."
	msgEscapeAtEndOfString      = "The format string has an escape character (backslash '\\') at the end of the string."
	msgMissingEndQuote          = "The format string is missing the end quote character %q."
	msgRepeatCountExceeded      = "There were more consecutive copies of the pattern character %q than the maximum allowed (%d) in the format string."
	msgInvalidRepeatCount       = "The number of consecutive copies of the pattern character %q in the format string (%d) is invalid."
	msgMissingEmbeddedStart     = "The pattern has an embedded pattern which is missing its opening character ('%c')."
	msgMissingEmbeddedEnd       = "The pattern has an embedded pattern which is missing its closing character ('%c')."
	msgInvalidEmbeddedType      = "The type of embedded pattern is not supported for this type."
	msgUnquotedLiteral          = "The character %q is not a format specifier for this pattern type, and should be quoted to act as a literal. Note that each type of pattern has its own set of valid format specifiers."
	msgRepeatedField            = "The field %q is specified multiple times in the pattern."
	msgPercentDoubled           = "A percent sign (%%) is followed by another percent sign in the format string."
	msgPercentAtEndOfString     = "A percent sign (%%) appears at the end of the format string."
	msgHour12NotSupported       = "The 'h' pattern flag (12 hour format) is not supported by the %s type."
	msgEraWithoutYearOfEra      = "The era specifier cannot be used without the \"year of era\" specifier."
	msgCalendarAndEra           = "The era specifier cannot be specified in the same pattern as the calendar specifier."
	msgDateFieldAndEmbeddedDate = "Custom date specifiers cannot be specified in the same pattern as an embedded date specifier"
	msgTimeFieldAndEmbeddedTime = "Custom time specifiers cannot be specified in the same pattern as an embedded time specifier"
	msgMultipleCapitalDuration  = "Only one of \"D\", \"H\", \"M\" or \"S\" can occur in a duration format string."
	msgEmptyZPrefixedPattern    = "The Z prefix for an Offset pattern must be followed by a custom pattern."
	msgZPrefixNotAtStart        = "The Z prefix for an Offset pattern must occur at the beginning of the pattern."
)
