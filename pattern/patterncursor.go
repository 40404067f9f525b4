package pattern

import "strings"

const (
	embeddedPatternStart = byte('<')
	embeddedPatternEnd   = byte('>')
)

// patternCursor walks pattern text during compilation.
type patternCursor struct {
	cursor
}

func newPatternCursor(pattern string) *patternCursor {
	return &patternCursor{cursor: makeCursor(pattern)}
}

// getQuotedString consumes a quoted literal, the cursor sitting on the open
// quote on entry and on the close quote on exit. Backslash escapes are
// honoured inside the quotes.
func (pc *patternCursor) getQuotedString(closeQuote byte) (string, error) {
	var sb strings.Builder
	endQuoteFound := false
	for pc.moveNext() {
		if pc.current == closeQuote {
			pc.moveNext()
			endQuoteFound = true
			break
		}
		if pc.current == '\\' {
			if !pc.moveNext() {
				return "", patternError(PatternErrorEscapeAtEndOfString, msgEscapeAtEndOfString)
			}
		}
		sb.WriteByte(pc.current)
	}
	if !endQuoteFound {
		return "", patternError(PatternErrorMissingEndQuote, msgMissingEndQuote, string(closeQuote))
	}
	pc.movePrevious()
	return sb.String(), nil
}

// getRepeatCount counts how many times the current character repeats,
// leaving the cursor on the last repetition.
func (pc *patternCursor) getRepeatCount(maximumCount int) (int, error) {
	patternCharacter := pc.current
	startPos := pc.index
	for pc.moveNext() && pc.current == patternCharacter {
	}
	repeatLength := pc.index - startPos
	pc.movePrevious()
	if repeatLength > maximumCount {
		return 0, patternError(PatternErrorRepeatCountExceeded, msgRepeatCountExceeded, string(patternCharacter), maximumCount)
	}
	return repeatLength, nil
}

// getEmbeddedPattern returns the text of an embedded pattern: the cursor
// sits on the character before the opening '<' on entry and on the closing
// '>' on exit. Quoting and nesting inside the embedded pattern are skipped
// over, so '<' and '>' can appear quoted within it.
func (pc *patternCursor) getEmbeddedPattern() (string, error) {
	if !pc.moveNext() || pc.current != embeddedPatternStart {
		return "", patternError(PatternErrorMissingEmbeddedPatternStart, msgMissingEmbeddedStart, embeddedPatternStart)
	}
	startPos := pc.index + 1
	depth := 1
	for pc.moveNext() {
		switch pc.current {
		case embeddedPatternEnd:
			depth--
			if depth == 0 {
				return pc.source[startPos:pc.index], nil
			}
		case embeddedPatternStart:
			depth++
		case '\\':
			if !pc.moveNext() {
				return "", patternError(PatternErrorEscapeAtEndOfString, msgEscapeAtEndOfString)
			}
		case '\'', '"':
			if _, err := pc.getQuotedString(pc.current); err != nil {
				return "", err
			}
		}
	}
	return "", patternError(PatternErrorMissingEmbeddedPatternEnd, msgMissingEmbeddedEnd, embeddedPatternEnd)
}
