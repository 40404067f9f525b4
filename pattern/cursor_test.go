package pattern

import (
	"errors"
	"testing"
)

func TestValueCursorParseInt64(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
		rest    string
	}{
		{"simple", "12x", 12, false, "x"},
		{"negative", "-12x", -12, false, "x"},
		{"zero", "0", 0, false, ""},
		{"max", "9223372036854775807", 9223372036854775807, false, ""},
		{"min", "-9223372036854775808", -9223372036854775808, false, ""},
		{"overflow", "9223372036854775808", 0, true, ""},
		{"no digits", "x", 0, true, ""},
		{"bare sign", "-", 0, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newValueCursor(tt.input)
			c.moveNext()
			got, err := c.parseInt64()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseInt64(%q) = %d, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseInt64(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("parseInt64(%q) = %d, want %d", tt.input, got, tt.want)
			}
			if rest := c.remainder(); rest != tt.rest {
				t.Errorf("remainder after parse = %q, want %q", rest, tt.rest)
			}
		})
	}
}

func TestValueCursorParseDigits(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		min, max int
		want     int
		ok       bool
	}{
		{"exact", "1234", 4, 4, 1234, true},
		{"fewer than max", "12x", 1, 4, 12, true},
		{"stops at max", "12345", 2, 4, 1234, true},
		{"too few", "1x", 2, 2, 0, false},
		{"no digits", "x", 1, 2, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newValueCursor(tt.input)
			c.moveNext()
			got, ok := c.parseDigits(tt.min, tt.max)
			if ok != tt.ok {
				t.Fatalf("parseDigits(%q, %d, %d) ok = %v, want %v", tt.input, tt.min, tt.max, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("parseDigits(%q, %d, %d) = %d, want %d", tt.input, tt.min, tt.max, got, tt.want)
			}
		})
	}
}

func TestValueCursorParseFraction(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		maxDigits int
		scale     int
		minDigits int
		want      int64
		ok        bool
	}{
		{"full precision", "123456789", 9, 9, 1, 123456789, true},
		{"scaled up", "5", 9, 9, 1, 500000000, true},
		{"three of nine", "123", 9, 9, 1, 123000000, true},
		{"seven digit scale", "1", 7, 9, 1, 100000000, true},
		{"too few", "", 9, 9, 1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newValueCursor(tt.input)
			c.moveNext()
			got, ok := c.parseFraction(tt.maxDigits, tt.scale, tt.minDigits)
			if ok != tt.ok {
				t.Fatalf("parseFraction(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("parseFraction(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestValueCursorMatchCaseInsensitive(t *testing.T) {
	c := newValueCursor("aBcDef")
	c.moveNext()
	if !c.matchCaseInsensitive("AbC", true) {
		t.Fatal("matchCaseInsensitive(AbC) = false, want true")
	}
	if got := c.remainder(); got != "Def" {
		t.Errorf("remainder = %q, want %q", got, "Def")
	}
}

func TestPatternCursorGetQuotedString(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    string
		wantErr bool
	}{
		{"simple", "'abc'", "abc", false},
		{"empty", "''", "", false},
		{"escaped quote", `'a\'b'`, "a'b", false},
		{"missing end quote", "'abc", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pc := newPatternCursor(tt.pattern)
			pc.moveNext()
			got, err := pc.getQuotedString(pc.current)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("getQuotedString(%q) = %q, want error", tt.pattern, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("getQuotedString(%q) error: %v", tt.pattern, err)
			}
			if got != tt.want {
				t.Errorf("getQuotedString(%q) = %q, want %q", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestPatternCursorGetRepeatCount(t *testing.T) {
	pc := newPatternCursor("HHH:mm")
	pc.moveNext()
	count, err := pc.getRepeatCount(4)
	if err != nil {
		t.Fatalf("getRepeatCount error: %v", err)
	}
	if count != 3 {
		t.Errorf("getRepeatCount = %d, want 3", count)
	}
	// The cursor stays on the last repetition.
	if pc.current != 'H' {
		t.Errorf("current after count = %q, want 'H'", pc.current)
	}
	pc.moveNext()
	if pc.current != ':' {
		t.Errorf("next after count = %q, want ':'", pc.current)
	}
}

func TestPatternCursorGetRepeatCountExceeded(t *testing.T) {
	pc := newPatternCursor("HHH")
	pc.moveNext()
	_, err := pc.getRepeatCount(2)
	var perr *PatternError
	if !errors.As(err, &perr) || perr.Kind != PatternErrorRepeatCountExceeded {
		t.Fatalf("getRepeatCount error = %v, want RepeatCountExceeded", err)
	}
}

func TestPatternCursorGetEmbeddedPattern(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    string
		wantErr bool
	}{
		{"simple", "l<uuuu-MM-dd>", "uuuu-MM-dd", false},
		{"nested", "l<a<b>c>", "a<b>c", false},
		{"quoted close", "l<a'>'b>", "a'>'b", false},
		{"missing start", "luuuu", "", true},
		{"missing end", "l<uuuu", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pc := newPatternCursor(tt.pattern)
			pc.moveNext() // on 'l'
			got, err := pc.getEmbeddedPattern()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("getEmbeddedPattern(%q) = %q, want error", tt.pattern, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("getEmbeddedPattern(%q) error: %v", tt.pattern, err)
			}
			if got != tt.want {
				t.Errorf("getEmbeddedPattern(%q) = %q, want %q", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestValueCursorString(t *testing.T) {
	c := newValueCursor("abc")
	c.moveNext()
	c.moveNext()
	if got := c.String(); got != "a^bc" {
		t.Errorf("String() = %q, want %q", got, "a^bc")
	}
}
