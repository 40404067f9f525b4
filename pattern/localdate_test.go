package pattern

import (
	"testing"

	"github.com/dhamidi/chrono/culture"
	"github.com/dhamidi/chrono/temporal"
)

func TestLocalDatePatternRoundtrip(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		text    string
		value   temporal.LocalDate
	}{
		{"iso", "uuuu-MM-dd", "2015-10-24", temporal.MustLocalDate(2015, 10, 24)},
		{"leap day", "uuuu-MM-dd", "2012-02-29", temporal.MustLocalDate(2012, 2, 29)},
		{"culture separator", "uuuu/MM/dd", "2015/10/24", temporal.MustLocalDate(2015, 10, 24)},
		{"negative year", "uuuu-MM-dd", "-0043-03-15", temporal.MustLocalDate(-43, 3, 15)},
		{"unpadded", "u-M-d", "987-6-5", temporal.MustLocalDate(987, 6, 5)},
		{"long month name", "d MMMM uuuu", "24 October 2015", temporal.MustLocalDate(2015, 10, 24)},
		{"short month name", "d MMM uuuu", "24 Oct 2015", temporal.MustLocalDate(2015, 10, 24)},
		{"day of week name", "dddd, uuuu-MM-dd", "Saturday, 2015-10-24", temporal.MustLocalDate(2015, 10, 24)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewLocalDatePatternInvariant(tt.pattern)
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

func TestLocalDateStandardPatterns(t *testing.T) {
	value := temporal.MustLocalDate(2015, 10, 24)
	tests := []struct {
		name    string
		pattern string
		want    string
	}{
		{"short date", "d", "10/24/2015"},
		{"long date", "D", "Saturday, 24 October 2015"},
		{"iso", "R", "2015-10-24"},
		{"full roundtrip", "r", "2015-10-24 (ISO)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewLocalDatePatternInvariant(tt.pattern)
			if err != nil {
				t.Fatalf("compile %q: %v", tt.pattern, err)
			}
			if got := p.Format(value); got != tt.want {
				t.Errorf("Format = %q, want %q", got, tt.want)
			}
			if got := wantValue(t, p.Parse(tt.want)); !got.Equal(value) {
				t.Errorf("Parse(%q) = %v, want %v", tt.want, got, value)
			}
		})
	}
}

func TestLocalDateTwoDigitYear(t *testing.T) {
	p, err := NewLocalDatePatternInvariant("yy MM dd")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	// The invariant cutoff is 30: values up to it land in the template's
	// century, later ones in the century before.
	if got := wantValue(t, p.Parse("30 01 01")); !got.Equal(temporal.MustLocalDate(2030, 1, 1)) {
		t.Errorf("Parse(30) = %v, want 2030-01-01", got)
	}
	if got := wantValue(t, p.Parse("31 01 01")); !got.Equal(temporal.MustLocalDate(1931, 1, 1)) {
		t.Errorf("Parse(31) = %v, want 1931-01-01", got)
	}
	if got := p.Format(temporal.MustLocalDate(2030, 1, 1)); got != "30 01 01" {
		t.Errorf("Format(2030-01-01) = %q, want %q", got, "30 01 01")
	}

	p, err = p.WithTwoDigitYearMax(50)
	if err != nil {
		t.Fatalf("WithTwoDigitYearMax: %v", err)
	}
	if got := wantValue(t, p.Parse("31 01 01")); !got.Equal(temporal.MustLocalDate(2031, 1, 1)) {
		t.Errorf("Parse(31) with cutoff 50 = %v, want 2031-01-01", got)
	}
	if _, err := p.WithTwoDigitYearMax(100); err == nil {
		t.Error("WithTwoDigitYearMax(100) succeeded, want error")
	}
}

func TestLocalDateGenitiveMonthNames(t *testing.T) {
	ru, err := culture.Lookup("ru-RU")
	if err != nil {
		t.Fatalf("Lookup(ru-RU): %v", err)
	}
	value := temporal.MustLocalDate(2024, 5, 10)

	// With a day of the month in the pattern the genitive form is used.
	withDay, err := NewLocalDatePattern("d MMMM uuuu", ru)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if got := withDay.Format(value); got != "10 мая 2024" {
		t.Errorf("Format with day = %q, want %q", got, "10 мая 2024")
	}
	if got := wantValue(t, withDay.Parse("10 мая 2024")); !got.Equal(value) {
		t.Errorf("Parse = %v, want %v", got, value)
	}

	monthOnly, err := NewLocalDatePattern("MMMM uuuu", ru)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if got := monthOnly.Format(value); got != "май 2024" {
		t.Errorf("Format without day = %q, want %q", got, "май 2024")
	}
}

func TestLocalDateDayOfWeekCrossCheck(t *testing.T) {
	p, err := NewLocalDatePatternInvariant("dddd, uuuu-MM-dd")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	// 2015-10-24 was a Saturday.
	wantParseError(t, p.Parse("Friday, 2015-10-24"), ParseErrorInconsistentDayOfWeekTextValue)
}

func TestLocalDateEra(t *testing.T) {
	p, err := NewLocalDatePatternInvariant("yyyy g")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	bce := temporal.MustLocalDate(-43, 1, 1)
	if got := p.Format(bce); got != "0044 BCE" {
		t.Errorf("Format(-43) = %q, want %q", got, "0044 BCE")
	}
	if got := wantValue(t, p.Parse("0044 BC")); !got.Equal(bce) {
		t.Errorf("Parse(0044 BC) = %v, want %v", got, bce)
	}
	if got := wantValue(t, p.Parse("2015 AD")); !got.Equal(temporal.MustLocalDate(2015, 1, 1)) {
		t.Errorf("Parse(2015 AD) = %v, want 2015-01-01", got)
	}

	// An absolute year cross-checks a parsed era.
	absolute, err := NewLocalDatePatternInvariant("uuuu yyyy g")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	wantParseError(t, absolute.Parse("2015 2015 BCE"), ParseErrorInconsistentValues)
}

func TestLocalDateCalendarSystem(t *testing.T) {
	p, err := NewLocalDatePatternInvariant("uuuu-MM-dd c")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	julian, err := temporal.NewLocalDateIn(temporal.CalendarJulian, 1582, 10, 5)
	if err != nil {
		t.Fatalf("julian date: %v", err)
	}
	if got := p.Format(julian); got != "1582-10-05 Julian" {
		t.Errorf("Format = %q, want %q", got, "1582-10-05 Julian")
	}
	got := wantValue(t, p.Parse("1582-10-05 Julian"))
	if !got.Equal(julian) {
		t.Errorf("Parse = %v in %s, want %v", got, got.Calendar(), julian)
	}
	wantParseError(t, p.Parse("1582-10-05 Coptic"), ParseErrorNoMatchingCalendarSystem)
}

func TestLocalDatePatternCompileErrors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		kind    PatternErrorKind
	}{
		{"era without year of era", "uuuu-MM-dd g", PatternErrorEraWithoutYearOfEra},
		{"calendar and era", "yyyy g c", PatternErrorCalendarAndEra},
		{"three digit year of era", "yyy-MM-dd", PatternErrorInvalidRepeatCount},
		{"unquoted literal", "uuuu-MM-ddX", PatternErrorUnquotedLiteral},
		{"unknown standard", "x", PatternErrorUnknownStandardFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLocalDatePatternInvariant(tt.pattern)
			wantPatternError(t, err, tt.kind)
		})
	}
}

func TestLocalDatePatternParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		text    string
		kind    ParseErrorKind
	}{
		{"day out of range", "uuuu-MM-dd", "2011-02-29", ParseErrorDayOfMonthOutOfRange},
		{"month out of range", "uuuu-MM-dd", "2011-13-01", ParseErrorIsoMonthOutOfRange},
		{"inconsistent month text", "MM dd MMMM", "10 24 December", ParseErrorInconsistentMonthTextValue},
		{"month name mismatch", "d MMMM uuuu", "24 Vendémiaire 2015", ParseErrorMismatchedText},
		{"date separator mismatch", "uuuu/MM/dd", "2015.10.24", ParseErrorDateSeparatorMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewLocalDatePatternInvariant(tt.pattern)
			if err != nil {
				t.Fatalf("compile %q: %v", tt.pattern, err)
			}
			wantParseError(t, p.Parse(tt.text), tt.kind)
		})
	}
}
