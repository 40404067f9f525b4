package pattern

import (
	"testing"

	"github.com/dhamidi/chrono/temporal"
)

func durationOf(days, hours, minutes, seconds, nanos int64) temporal.Duration {
	return temporal.DurationFromNanoseconds(
		days*temporal.NanosecondsPerDay +
			hours*temporal.NanosecondsPerHour +
			minutes*temporal.NanosecondsPerMinute +
			seconds*temporal.NanosecondsPerSecond +
			nanos)
}

func TestDurationPatternRoundtrip(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		text    string
		value   temporal.Duration
	}{
		{"days and time", "D:hh:mm:ss.FFFFFFFFF", "1:02:03:04.123456789", durationOf(1, 2, 3, 4, 123456789)},
		{"total hours", "H:mm:ss", "26:03:04", durationOf(1, 2, 3, 4, 0)},
		{"total minutes", "M:ss", "90:00", durationOf(0, 1, 30, 0, 0)},
		{"total seconds", "S", "5430", durationOf(0, 1, 30, 30, 0)},
		{"exact fraction", "S.fff", "1.500", durationOf(0, 0, 0, 1, 500000000)},
		{"padded days", "DDD:hh", "007:12", durationOf(7, 12, 0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewDurationPatternInvariant(tt.pattern)
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

func TestDurationRoundtripPattern(t *testing.T) {
	p := DurationRoundtrip()
	tests := []struct {
		name  string
		value temporal.Duration
		text  string
	}{
		{"positive", durationOf(1, 2, 3, 4, 123456789), "1:02:03:04.123456789"},
		{"negative", durationOf(0, 0, 0, -30, 0), "-0:00:00:30"},
		{"zero", temporal.DurationFromNanoseconds(0), "0:00:00:00"},
		{"trailing zeros trimmed", durationOf(0, 0, 0, 1, 400000000), "0:00:00:01.4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Format(tt.value); got != tt.text {
				t.Errorf("Format = %q, want %q", got, tt.text)
			}
			if got := wantValue(t, p.Parse(tt.text)); got != tt.value {
				t.Errorf("Parse(%q) = %v, want %v", tt.text, got, tt.value)
			}
		})
	}
}

func TestDurationJSONRoundtripPattern(t *testing.T) {
	p := DurationJSONRoundtrip()
	if got := p.Format(durationOf(1, 2, 30, 0, 0)); got != "26:30:00" {
		t.Errorf("Format = %q, want %q", got, "26:30:00")
	}
	if got := wantValue(t, p.Parse("-1:30:00.5")); got != durationOf(0, -1, -30, 0, -500000000) {
		t.Errorf("Parse = %v, want -1:30:00.5", got)
	}
}

func TestDurationPatternExtremes(t *testing.T) {
	p := DurationRoundtrip()
	if got := p.Format(temporal.MaxDuration); got != "106751:23:47:16.854775807" {
		t.Errorf("Format(max) = %q", got)
	}
	if got := wantValue(t, p.Parse("106751:23:47:16.854775807")); got != temporal.MaxDuration {
		t.Errorf("Parse(max) = %v", got)
	}
	if got := p.Format(temporal.MinDuration); got != "-106751:23:47:16.854775808" {
		t.Errorf("Format(min) = %q", got)
	}
}

func TestDurationPatternCompileErrors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		kind    PatternErrorKind
	}{
		{"two capital fields", "D H", PatternErrorMultipleCapitalDurationFields},
		{"days twice", "D D", PatternErrorMultipleCapitalDurationFields},
		{"repeated partial", "hh:hh", PatternErrorRepeatedField},
		{"unknown standard", "x", PatternErrorUnknownStandardFormat},
		{"unquoted literal", "D days", PatternErrorUnquotedLiteral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDurationPatternInvariant(tt.pattern)
			wantPatternError(t, err, tt.kind)
		})
	}
}

func TestDurationPatternParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		text    string
		kind    ParseErrorKind
	}{
		{"days too large", "D:hh", "106752:00", ParseErrorFieldValueOutOfRange},
		{"minutes too large", "H:mm", "1:60", ParseErrorFieldValueOutOfRange},
		{"accumulated overflow", "D:hh:mm:ss", "106751:23:59:59", ParseErrorOverallValueOutOfRange},
		{"unexpected negative", "D:hh", "-1:00", ParseErrorUnexpectedNegative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewDurationPatternInvariant(tt.pattern)
			if err != nil {
				t.Fatalf("compile %q: %v", tt.pattern, err)
			}
			wantParseError(t, p.Parse(tt.text), tt.kind)
		})
	}
}
