package pattern

import (
	"testing"

	"github.com/dhamidi/chrono/temporal"
)

func offsetOf(t *testing.T, hours, minutes, seconds int) temporal.Offset {
	t.Helper()
	sign := 1
	if hours < 0 || minutes < 0 || seconds < 0 {
		sign = -1
		hours, minutes, seconds = absInt(hours), absInt(minutes), absInt(seconds)
	}
	o, err := temporal.OffsetFromSeconds(sign * (hours*3600 + minutes*60 + seconds))
	if err != nil {
		t.Fatalf("offset %d:%d:%d: %v", hours, minutes, seconds, err)
	}
	return o
}

func TestOffsetPatternRoundtrip(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		text    string
		value   temporal.Offset
	}{
		{"hours and minutes", "HH:mm", "17:30", temporal.MustOffset(17, 30)},
		{"signed positive", "+HH:mm", "+05:30", temporal.MustOffset(5, 30)},
		{"signed negative", "+HH:mm", "-05:30", temporal.MustOffset(-5, -30)},
		{"negative only sign", "-HH:mm", "08:00", temporal.MustOffset(8, 0)},
		{"full precision", "+HH:mm:ss", "+01:02:03", offsetOf(t, 1, 2, 3)},
		{"no punctuation", "+HHmm", "+0930", temporal.MustOffset(9, 30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewOffsetPatternInvariant(tt.pattern)
			if err != nil {
				t.Fatalf("compile %q: %v", tt.pattern, err)
			}
			if got := p.Format(tt.value); got != tt.text {
				t.Errorf("Format = %q, want %q", got, tt.text)
			}
			if got := wantValue(t, p.Parse(tt.text)); got != tt.value {
				t.Errorf("Parse(%q) = %v, want %v", tt.text, got, tt.value)
			}
		})
	}
}

func TestOffsetGeneralPatternFormatsLeastPreciseMatch(t *testing.T) {
	p := OffsetGeneralInvariant()
	tests := []struct {
		name  string
		value temporal.Offset
		want  string
	}{
		{"whole hours", temporal.MustOffset(5, 0), "+05"},
		{"whole minutes", temporal.MustOffset(5, 30), "+05:30"},
		{"with seconds", offsetOf(t, 5, 30, 15), "+05:30:15"},
		{"negative", temporal.MustOffset(-8, 0), "-08"},
		{"zero", temporal.ZeroOffset, "+00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Format(tt.value); got != tt.want {
				t.Errorf("Format(%v) = %q, want %q", tt.value, got, tt.want)
			}
			if got := wantValue(t, p.Parse(tt.want)); got != tt.value {
				t.Errorf("Parse(%q) = %v, want %v", tt.want, got, tt.value)
			}
		})
	}
}

func TestOffsetZPrefixedPattern(t *testing.T) {
	p := OffsetGeneralInvariantWithZ()
	if got := p.Format(temporal.ZeroOffset); got != "Z" {
		t.Errorf("Format(zero) = %q, want %q", got, "Z")
	}
	if got := wantValue(t, p.Parse("Z")); got != temporal.ZeroOffset {
		t.Errorf("Parse(Z) = %v, want zero offset", got)
	}
	if got := p.Format(temporal.MustOffset(2, 0)); got != "+02" {
		t.Errorf("Format(+02:00) = %q, want %q", got, "+02")
	}
	if got := wantValue(t, p.Parse("-11:30")); got != temporal.MustOffset(-11, -30) {
		t.Errorf("Parse(-11:30) = %v, want -11:30", got)
	}
}

func TestOffsetCustomZPattern(t *testing.T) {
	p, err := NewOffsetPatternInvariant("Z+HH:mm")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if got := p.Format(temporal.ZeroOffset); got != "Z" {
		t.Errorf("Format(zero) = %q, want %q", got, "Z")
	}
	if got := p.Format(temporal.MustOffset(1, 0)); got != "+01:00" {
		t.Errorf("Format(+01:00) = %q, want %q", got, "+01:00")
	}
}

func TestOffsetPatternCompileErrors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		kind    PatternErrorKind
	}{
		{"empty", "", PatternErrorFormatStringEmpty},
		{"unknown standard", "x", PatternErrorUnknownStandardFormat},
		{"bare Z prefix", "%Z", PatternErrorEmptyZPrefixedPattern},
		{"Z in the middle", "HH:mm Z", PatternErrorZPrefixNotAtStart},
		{"twelve hour clock", "%h", PatternErrorHour12NotSupported},
		{"repeated field", "HH:HH", PatternErrorRepeatedField},
		{"too many repeats", "HHH", PatternErrorRepeatCountExceeded},
		{"minutes repeated too often", "mmm", PatternErrorRepeatCountExceeded},
		{"unquoted literal", "HH:mm x", PatternErrorUnquotedLiteral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewOffsetPatternInvariant(tt.pattern)
			wantPatternError(t, err, tt.kind)
		})
	}
}

func TestOffsetPatternParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		text    string
		kind    ParseErrorKind
	}{
		{"empty value", "HH:mm", "", ParseErrorValueStringEmpty},
		{"empty value general", "g", "", ParseErrorValueStringEmpty},
		{"empty value Z prefixed", "G", "", ParseErrorValueStringEmpty},
		{"trailing text", "HH:mm", "17:30x", ParseErrorExtraValueCharacters},
		{"hours out of range", "HH:mm", "25:00", ParseErrorFieldValueOutOfRange},
		{"missing sign", "+HH:mm", "05:30", ParseErrorMissingSign},
		{"separator mismatch", "HH:mm", "17.30", ParseErrorTimeSeparatorMismatch},
		{"truncated", "HH:mm", "17:", ParseErrorMismatchedNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewOffsetPatternInvariant(tt.pattern)
			if err != nil {
				t.Fatalf("compile %q: %v", tt.pattern, err)
			}
			wantParseError(t, p.Parse(tt.text), tt.kind)
		})
	}
}
