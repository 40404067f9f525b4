package pattern

import (
	"testing"

	"github.com/dhamidi/chrono/temporal"
)

func TestLocalDateTimePatternRoundtrip(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		text    string
		value   temporal.LocalDateTime
	}{
		{"general iso", "uuuu'-'MM'-'dd'T'HH':'mm':'ss", "2015-10-24T11:55:30", temporal.MustLocalDateTime(2015, 10, 24, 11, 55, 30)},
		{"unquoted T", "uuuu-MM-ddTHH:mm:ss", "2015-10-24T11:55:30", temporal.MustLocalDateTime(2015, 10, 24, 11, 55, 30)},
		{"twelve hour", "MM/dd/uuuu h:mm tt", "10/24/2015 2:30 PM", temporal.MustLocalDateTime(2015, 10, 24, 14, 30, 0)},
		{"day name", "dddd, d MMMM uuuu HH:mm", "Saturday, 24 October 2015 11:55", temporal.MustLocalDateTime(2015, 10, 24, 11, 55, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewLocalDateTimePatternInvariant(tt.pattern)
			if err != nil {
				t.Fatalf("compile %q: %v", tt.pattern, err)
			}
			if got := p.Format(tt.value); got != tt.text {
				t.Errorf("Format = %q, want %q", got, tt.text)
			}
			if got := wantValue(t, p.Parse(tt.text)); !got.Equal(tt.value) {
				t.Errorf("Parse(%q) = %v, want %v", tt.text, got, tt.value)
			}
		})
	}
}

func TestLocalDateTimeStandardPatterns(t *testing.T) {
	value := temporal.MustLocalDateTime(2015, 10, 24, 11, 55, 30)
	if got := LocalDateTimeGeneralIso().Format(value); got != "2015-10-24T11:55:30" {
		t.Errorf("general ISO Format = %q", got)
	}
	if got := LocalDateTimeExtendedIso().Format(value); got != "2015-10-24T11:55:30" {
		t.Errorf("extended ISO Format without fraction = %q", got)
	}
	if got := LocalDateTimeFullRoundtrip().Format(value); got != "2015-10-24T11:55:30.000000000 (ISO)" {
		t.Errorf("full roundtrip Format = %q", got)
	}
	if got := wantValue(t, LocalDateTimeFullRoundtrip().Parse("2015-10-24T11:55:30.000000000 (ISO)")); !got.Equal(value) {
		t.Errorf("full roundtrip Parse = %v, want %v", got, value)
	}
}

func TestLocalDateTimeEmbeddedPatterns(t *testing.T) {
	value := temporal.MustLocalDateTime(2023, 7, 14, 9, 30, 15)
	tests := []struct {
		name    string
		pattern string
		text    string
	}{
		{"date and time", "ld<uuuu'*'MM'*'dd>'X'lt<HH'_'mm'_'ss>", "2023*07*14X09_30_15"},
		{"full date-time", "l<uuuu-MM-ddTHH:mm:ss>", "2023-07-14T09:30:15"},
		{"embedded date with fields", "ld<uuuu-MM-dd> HH:mm:ss", "2023-07-14 09:30:15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewLocalDateTimePatternInvariant(tt.pattern)
			if err != nil {
				t.Fatalf("compile %q: %v", tt.pattern, err)
			}
			if got := p.Format(value); got != tt.text {
				t.Errorf("Format = %q, want %q", got, tt.text)
			}
			if got := wantValue(t, p.Parse(tt.text)); !got.Equal(value) {
				t.Errorf("Parse(%q) = %v, want %v", tt.text, got, value)
			}
		})
	}
}

func TestLocalDateTimeHour24(t *testing.T) {
	p, err := NewLocalDateTimePatternInvariant("uuuu-MM-ddTHH:mm:ss")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	// 24:00:00 is midnight at the end of the day.
	got := wantValue(t, p.Parse("2011-10-19T24:00:00"))
	if want := temporal.MustLocalDateTime(2011, 10, 20, 0, 0, 0); !got.Equal(want) {
		t.Errorf("Parse(24:00:00) = %v, want %v", got, want)
	}
	wantParseError(t, p.Parse("2011-10-19T24:00:01"), ParseErrorInvalidHour24)
	wantParseError(t, p.Parse("2011-10-19T24:30:00"), ParseErrorInvalidHour24)
	wantParseError(t, p.Parse("2011-10-19T25:00:00"), ParseErrorFieldValueOutOfRange)
}

func TestLocalDateTimePatternCompileErrors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		kind    PatternErrorKind
	}{
		{"date field and embedded date", "uuuu ld<MM-dd>", PatternErrorDateFieldAndEmbeddedDate},
		{"embedded date then date field", "ld<MM-dd> uuuu", PatternErrorDateFieldAndEmbeddedDate},
		{"time field and embedded time", "HH lt<mm:ss>", PatternErrorTimeFieldAndEmbeddedTime},
		{"bad embedded type", "lx<HH>", PatternErrorInvalidEmbeddedPatternType},
		{"missing embedded start", "ld uuuu", PatternErrorMissingEmbeddedPatternStart},
		{"missing embedded end", "ld<uuuu-MM-dd", PatternErrorMissingEmbeddedPatternEnd},
		{"unknown standard", "x", PatternErrorUnknownStandardFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLocalDateTimePatternInvariant(tt.pattern)
			wantPatternError(t, err, tt.kind)
		})
	}
}

func TestLocalDateTimeTemplateValue(t *testing.T) {
	p, err := NewLocalDateTimePatternInvariant("HH:mm")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	p, err = p.WithTemplateValue(temporal.MustLocalDateTime(2015, 10, 24, 0, 0, 45))
	if err != nil {
		t.Fatalf("WithTemplateValue: %v", err)
	}
	got := wantValue(t, p.Parse("11:55"))
	if want := temporal.MustLocalDateTime(2015, 10, 24, 11, 55, 45); !got.Equal(want) {
		t.Errorf("Parse(11:55) = %v, want %v", got, want)
	}
}
