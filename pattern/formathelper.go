package pattern

import "bytes"

// appendTwoDigits writes a value in [0, 100) as exactly two digits.
func appendTwoDigits(value int64, buf *bytes.Buffer) {
	buf.WriteByte(byte('0' + value/10))
	buf.WriteByte(byte('0' + value%10))
}

// appendFourDigits writes a value in (-10000, 10000) as exactly four
// digits, with a leading sign when negative.
func appendFourDigits(value int64, buf *bytes.Buffer) {
	if value < 0 {
		buf.WriteByte('-')
		value = -value
	}
	buf.WriteByte(byte('0' + value/1000))
	buf.WriteByte(byte('0' + value/100%10))
	buf.WriteByte(byte('0' + value/10%10))
	buf.WriteByte(byte('0' + value%10))
}

// leftPadNonNegative writes a non-negative value, left-padded with zeros to
// at least length digits.
func leftPadNonNegative(value int64, length int, buf *bytes.Buffer) {
	digits := 1
	for scratch := value; scratch >= 10; scratch /= 10 {
		digits++
	}
	for i := digits; i < length; i++ {
		buf.WriteByte('0')
	}
	var scratch [20]byte
	i := len(scratch)
	for {
		i--
		scratch[i] = byte('0' + value%10)
		value /= 10
		if value == 0 {
			break
		}
	}
	buf.Write(scratch[i:])
}

// leftPad writes a value of either sign, padding the digits (not the sign)
// to at least length.
func leftPad(value int64, length int, buf *bytes.Buffer) {
	if value >= 0 {
		leftPadNonNegative(value, length, buf)
		return
	}
	buf.WriteByte('-')
	// Negate via uint64 so the minimum value survives.
	magnitude := -uint64(value)
	digits := 1
	for scratch := magnitude; scratch >= 10; scratch /= 10 {
		digits++
	}
	for i := digits; i < length; i++ {
		buf.WriteByte('0')
	}
	var scratch [20]byte
	i := len(scratch)
	for {
		i--
		scratch[i] = byte('0' + magnitude%10)
		magnitude /= 10
		if magnitude == 0 {
			break
		}
	}
	buf.Write(scratch[i:])
}

// appendFraction writes a fractional value to exactly length digits,
// truncating from scale digits of precision: length 3 of 123456789
// nanoseconds (scale 9) writes "123".
func appendFraction(length, scale int, value int64, buf *bytes.Buffer) {
	relevant := value
	for scale > length {
		relevant /= 10
		scale--
	}
	out := make([]byte, length)
	for i := range out {
		out[i] = '0'
	}
	for i := length - 1; relevant > 0 && i >= 0; i-- {
		out[i] = byte('0' + relevant%10)
		relevant /= 10
	}
	buf.Write(out)
}

// appendFractionTruncate is appendFraction with trailing zeros removed; if
// nothing remains and the previous character is the decimal separator, that
// separator is removed as well.
func appendFractionTruncate(length, scale int, value int64, buf *bytes.Buffer) {
	relevant := value
	for scale > length {
		relevant /= 10
		scale--
	}
	relevantLength := length
	for relevantLength > 0 && relevant%10 == 0 {
		relevant /= 10
		relevantLength--
	}
	if relevantLength > 0 {
		out := make([]byte, relevantLength)
		for i := relevantLength - 1; i >= 0; i-- {
			out[i] = byte('0' + relevant%10)
			relevant /= 10
		}
		buf.Write(out)
		return
	}
	if b := buf.Bytes(); len(b) > 0 && b[len(b)-1] == '.' {
		buf.Truncate(len(b) - 1)
	}
}
