package pattern

import (
	"math"
	"strings"
)

// valueCursor walks value text during parsing.
type valueCursor struct {
	cursor
}

func newValueCursor(value string) *valueCursor {
	return &valueCursor{cursor: makeCursor(value)}
}

// match consumes the given text if it appears at the current position.
func (vc *valueCursor) match(match string) bool {
	targetIndex := vc.index + len(match)
	if vc.index >= 0 && targetIndex <= len(vc.source) && vc.source[vc.index:targetIndex] == match {
		vc.move(targetIndex)
		return true
	}
	return false
}

// matchByte consumes a single expected character.
func (vc *valueCursor) matchByte(expected byte) bool {
	if vc.current == expected {
		vc.moveNext()
		return true
	}
	return false
}

// matchCaseInsensitive matches the given text at the current position under
// simple case folding, optionally consuming it.
func (vc *valueCursor) matchCaseInsensitive(match string, moveOnSuccess bool) bool {
	if vc.index < 0 || len(match) > len(vc.source)-vc.index {
		return false
	}
	candidate := vc.source[vc.index : vc.index+len(match)]
	if strings.EqualFold(candidate, match) {
		if moveOnSuccess {
			vc.move(vc.index + len(match))
		}
		return true
	}
	return false
}

// compareOrdinal compares the remaining text with the given string, only as
// far as the shorter of the two. When the remainder is a proper prefix of
// the match the result is negative, never zero. It is the case-sensitive
// counterpart of matchCaseInsensitive, for callers that need an ordering
// over a sorted name table rather than a yes/no match.
func (vc *valueCursor) compareOrdinal(match string) int {
	remaining := vc.remainder()
	if len(match) > len(remaining) {
		result := strings.Compare(remaining, match[:len(remaining)])
		if result == 0 {
			return -1
		}
		return result
	}
	return strings.Compare(remaining[:len(match)], match)
}

// parseInt64 parses an optionally-signed sequence of ASCII digits as a
// signed 64-bit value, detecting overflow exactly at the type boundary. On
// failure the cursor is restored and a non-nil error is returned. It covers
// single-number totals too large for the int-sized parseDigits, such as a
// duration expressed as one count of nanoseconds.
func (vc *valueCursor) parseInt64() (int64, *UnparsableValueError) {
	var result int64
	startIndex := vc.index
	negative := vc.current == '-'
	if negative {
		if !vc.moveNext() {
			vc.move(startIndex)
			return 0, unparsable(ParseErrorEndOfString, vc.String(), msgEndOfString)
		}
	}
	count := 0
	var digit int
	for result < 922337203685477580 {
		if digit = vc.currentDigit(); digit == -1 {
			break
		}
		result = result*10 + int64(digit)
		count++
		if !vc.moveNext() {
			break
		}
	}

	if count == 0 {
		vc.move(startIndex)
		return 0, unparsable(ParseErrorMissingNumber, vc.String(), msgMissingNumber)
	}

	if result >= 922337203685477580 {
		if digit = vc.currentDigit(); digit != -1 {
			if result > 922337203685477580 {
				return 0, vc.numberOutOfRange(startIndex)
			}
			if negative && digit == 8 {
				vc.moveNext()
				return math.MinInt64, nil
			}
			if digit > 7 {
				return 0, vc.numberOutOfRange(startIndex)
			}
			// This last digit still fits.
			result = result*10 + int64(digit)
			vc.moveNext()
			if vc.currentDigit() != -1 {
				return 0, vc.numberOutOfRange(startIndex)
			}
		}
	}

	if negative {
		result = -result
	}
	return result, nil
}

func (vc *valueCursor) numberOutOfRange(startIndex int) *UnparsableValueError {
	vc.move(startIndex)
	if vc.current == '-' {
		vc.moveNext()
	}
	// The end of the string works like a non-digit here.
	for vc.currentDigit() != -1 {
		vc.moveNext()
	}
	badValue := vc.source[startIndex:vc.index]
	vc.move(startIndex)
	return unparsable(ParseErrorValueOutOfRange, vc.String(), msgValueOutOfRange, badValue, "int64")
}

// parseDigits parses between minimumDigits and maximumDigits ASCII digits.
// If fewer than minimumDigits are present the cursor is left unmoved and ok
// is false; digits beyond maximumDigits are left unconsumed.
func (vc *valueCursor) parseDigits(minimumDigits, maximumDigits int) (int, bool) {
	result := 0
	localIndex := vc.index
	maxIndex := localIndex + maximumDigits
	if maxIndex >= len(vc.source) {
		maxIndex = len(vc.source)
	}
	for localIndex < maxIndex {
		digit := vc.source[localIndex]
		if digit < '0' || digit > '9' {
			break
		}
		result = result*10 + int(digit-'0')
		localIndex++
	}
	if localIndex-vc.index < minimumDigits {
		return 0, false
	}
	vc.move(localIndex)
	return result, true
}

// parseFraction parses up to maximumDigits digits as a fraction, scaling
// the result as if exactly scale digits had been given: "7" with scale 9
// yields 700 million. maximumDigits is trusted to be at most scale.
func (vc *valueCursor) parseFraction(maximumDigits, scale, minimumDigits int) (int64, bool) {
	var result int64
	localIndex := vc.index
	if localIndex+minimumDigits > len(vc.source) {
		// Not enough characters left for the minimum digits.
		return 0, false
	}
	maxIndex := localIndex + maximumDigits
	if maxIndex > len(vc.source) {
		maxIndex = len(vc.source)
	}
	for localIndex < maxIndex {
		digit := vc.source[localIndex]
		if digit < '0' || digit > '9' {
			break
		}
		result = result*10 + int64(digit-'0')
		localIndex++
	}
	count := localIndex - vc.index
	if count < minimumDigits {
		return 0, false
	}
	result *= pow10[scale-count]
	vc.move(localIndex)
	return result, true
}

// currentDigit returns the value of the current ASCII digit, or -1.
func (vc *valueCursor) currentDigit() int {
	if vc.current >= '0' && vc.current <= '9' {
		return int(vc.current - '0')
	}
	return -1
}

var pow10 = [...]int64{1, 10, 100, 1_000, 10_000, 100_000, 1_000_000,
	10_000_000, 100_000_000, 1_000_000_000, 10_000_000_000, 100_000_000_000,
	1_000_000_000_000, 10_000_000_000_000}
