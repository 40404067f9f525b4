package pattern

// nul is the out-of-range sentinel for cursor positions before the first or
// after the last character.
const nul = byte(0)

// cursor walks a string one byte at a time. The index starts at -1, before
// the first character; moving past either end parks the cursor there with
// current set to nul. Pattern text and the machine-readable parts of value
// text are ASCII, so byte-wise stepping is enough; multi-byte text such as
// month names is matched by substring, never byte by byte.
type cursor struct {
	source  string
	index   int
	current byte
}

func makeCursor(source string) cursor {
	return cursor{source: source, index: -1, current: nul}
}

func (c *cursor) length() int { return len(c.source) }

// move positions the cursor at the given index, returning false if the
// index is outside the string.
func (c *cursor) move(targetIndex int) bool {
	if targetIndex >= 0 && targetIndex < len(c.source) {
		c.index = targetIndex
		c.current = c.source[targetIndex]
		return true
	}
	if targetIndex < 0 {
		c.index = -1
	} else {
		c.index = len(c.source)
	}
	c.current = nul
	return false
}

func (c *cursor) moveNext() bool     { return c.move(c.index + 1) }
func (c *cursor) movePrevious() bool { return c.move(c.index - 1) }

func (c *cursor) hasMoreCharacters() bool {
	return c.index+1 < len(c.source)
}

// peekNext returns the next character without moving, or nul at the end.
func (c *cursor) peekNext() byte {
	if c.hasMoreCharacters() {
		return c.source[c.index+1]
	}
	return nul
}

// remainder returns the text from the current position to the end.
func (c *cursor) remainder() string {
	switch {
	case c.index < 0:
		return c.source
	case c.index >= len(c.source):
		return ""
	default:
		return c.source[c.index:]
	}
}

// String renders the source with a caret marking the current position, for
// error messages.
func (c *cursor) String() string {
	switch {
	case c.index < 0:
		return "^" + c.source
	case c.index >= len(c.source):
		return c.source + "^"
	default:
		return c.source[:c.index] + "^" + c.source[c.index:]
	}
}
