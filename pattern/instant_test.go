package pattern

import (
	"testing"

	"github.com/dhamidi/chrono/temporal"
)

func TestInstantGeneralPattern(t *testing.T) {
	p := InstantGeneral()
	tests := []struct {
		name    string
		text    string
		seconds int64
	}{
		{"epoch", "1970-01-01T00:00:00Z", 0},
		{"recent", "2015-10-24T11:55:30Z", 1445687730},
		{"before epoch", "1969-12-31T23:59:59Z", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := temporal.InstantFromUnixSeconds(tt.seconds)
			if err != nil {
				t.Fatalf("instant from %d: %v", tt.seconds, err)
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

func TestInstantSentinelFormatting(t *testing.T) {
	p := InstantGeneral()
	if got := p.Format(temporal.BeforeMinInstant()); got != "StartOfTime" {
		t.Errorf("Format(start of time) = %q", got)
	}
	if got := p.Format(temporal.AfterMaxInstant()); got != "EndOfTime" {
		t.Errorf("Format(end of time) = %q", got)
	}
	// The sentinels format but never parse.
	if r := p.Parse("StartOfTime"); r.Success() {
		t.Error("Parse(StartOfTime) succeeded, want error")
	}
}

func TestInstantCustomPattern(t *testing.T) {
	p, err := NewInstantPatternInvariant("uuuu-MM-dd HH:mm")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	value, err := temporal.InstantFromUnixSeconds(1445687700)
	if err != nil {
		t.Fatalf("instant: %v", err)
	}
	if got := p.Format(value); got != "2015-10-24 11:55" {
		t.Errorf("Format = %q, want %q", got, "2015-10-24 11:55")
	}
	if got := wantValue(t, p.Parse("2015-10-24 11:55")); !got.Equal(value) {
		t.Errorf("Parse = %v, want %v", got, value)
	}
}

func TestInstantPatternErrors(t *testing.T) {
	if _, err := NewInstantPatternInvariant("x"); err == nil {
		t.Error("compile of unknown standard pattern succeeded, want error")
	}
	p := InstantGeneral()
	wantParseError(t, p.Parse("2015-13-24T11:55:30Z"), ParseErrorIsoMonthOutOfRange)
}
