package pattern

import (
	"testing"

	"github.com/dhamidi/chrono/temporal"
)

func TestAnnualDatePatternRoundtrip(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		text    string
		value   temporal.AnnualDate
	}{
		{"iso", "MM'-'dd", "10-24", temporal.MustAnnualDate(10, 24)},
		{"leap day", "MM'-'dd", "02-29", temporal.MustAnnualDate(2, 29)},
		{"unpadded", "M/d", "2/5", temporal.MustAnnualDate(2, 5)},
		{"long month name", "d MMMM", "24 October", temporal.MustAnnualDate(10, 24)},
		{"short month name", "MMM d", "Oct 24", temporal.MustAnnualDate(10, 24)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewAnnualDatePatternInvariant(tt.pattern)
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

func TestAnnualDateIsoPattern(t *testing.T) {
	p := AnnualDateIso()
	if got := p.Format(temporal.MustAnnualDate(2, 29)); got != "02-29" {
		t.Errorf("Format = %q, want %q", got, "02-29")
	}
	if got := wantValue(t, p.Parse("02-29")); got != temporal.MustAnnualDate(2, 29) {
		t.Errorf("Parse = %v, want 02-29", got)
	}
}

func TestAnnualDateTemplateValue(t *testing.T) {
	p, err := NewAnnualDatePatternInvariant("MM")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	p, err = p.WithTemplateValue(temporal.MustAnnualDate(1, 15))
	if err != nil {
		t.Fatalf("WithTemplateValue: %v", err)
	}
	if got := wantValue(t, p.Parse("06")); got != temporal.MustAnnualDate(6, 15) {
		t.Errorf("Parse(06) = %v, want 06-15", got)
	}
}

func TestAnnualDatePatternParseErrors(t *testing.T) {
	p := AnnualDateIso()
	tests := []struct {
		name string
		text string
		kind ParseErrorKind
	}{
		{"day past leap month", "02-30", ParseErrorDayOfMonthOutOfRangeNoYear},
		{"day past short month", "04-31", ParseErrorDayOfMonthOutOfRangeNoYear},
		{"month out of range", "13-01", ParseErrorIsoMonthOutOfRange},
		{"day zero", "02-00", ParseErrorFieldValueOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wantParseError(t, p.Parse(tt.text), tt.kind)
		})
	}
}
