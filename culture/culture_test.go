package culture

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dhamidi/chrono/temporal"
)

func TestInvariantShape(t *testing.T) {
	for _, names := range [][]string{
		Invariant.MonthNames, Invariant.ShortMonthNames,
		Invariant.MonthGenitiveNames, Invariant.ShortMonthGenitiveNames,
	} {
		if len(names) != 13 || names[0] != "" {
			t.Fatalf("month name list has %d entries, want 13 with empty index 0", len(names))
		}
	}
	if len(Invariant.DayNames) != 8 || len(Invariant.ShortDayNames) != 8 {
		t.Fatal("day name lists must have 8 entries with empty index 0")
	}
	if Invariant.EraPrimaryName(temporal.EraCommon) != "CE" {
		t.Errorf("invariant CE primary name = %q", Invariant.EraPrimaryName(temporal.EraCommon))
	}
}

func TestBuiltinsShape(t *testing.T) {
	for _, name := range Names() {
		c, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", name, err)
		}
		if c.Name != name {
			t.Errorf("Lookup(%q).Name = %q", name, c.Name)
		}
		if len(c.MonthNames) != 13 || len(c.MonthGenitiveNames) != 13 {
			t.Errorf("%s: month name lists malformed", name)
		}
		if len(c.EraNames(temporal.EraCommon)) == 0 || len(c.EraNames(temporal.EraBeforeCommon)) == 0 {
			t.Errorf("%s: missing era names", name)
		}
	}
}

func TestLookupMatching(t *testing.T) {
	tests := []struct {
		tag  string
		want string
	}{
		{"en", "en-US"},
		{"en-US", "en-US"},
		{"en-GB", "en-GB"},
		{"de", "de-DE"},
		{"ru", "ru-RU"},
		{"fr-CA", "fr-FR"},
		{"", "invariant"},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			c, err := Lookup(tt.tag)
			if err != nil {
				t.Fatalf("Lookup(%q): %v", tt.tag, err)
			}
			if c.Name != tt.want {
				t.Errorf("Lookup(%q) = %s, want %s", tt.tag, c.Name, tt.want)
			}
		})
	}

	if _, err := Lookup("no such tag!"); err == nil {
		t.Error("expected error for malformed tag")
	}
}

func TestRussianGenitiveMonths(t *testing.T) {
	ru, err := Lookup("ru-RU")
	if err != nil {
		t.Fatal(err)
	}
	if ru.MonthNames[5] != "май" || ru.MonthGenitiveNames[5] != "мая" {
		t.Errorf("ru-RU May forms = %q / %q", ru.MonthNames[5], ru.MonthGenitiveNames[5])
	}
}

func TestLoadFileTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "klingon.toml")
	content := `
name = "tlh"
date_separator = "."
am_designator = ""
pm_designator = "qaStaHvIS"
two_digit_year_max = 50
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Name != "tlh" || c.DateSeparator != "." || c.TwoDigitYearMax != 50 {
		t.Errorf("loaded culture = %+v", c)
	}
	if c.AMDesignator != "" || c.PMDesignator != "qaStaHvIS" {
		t.Errorf("designators = %q / %q", c.AMDesignator, c.PMDesignator)
	}
	// Untouched fields inherit from the invariant culture.
	if c.MonthNames[1] != "January" {
		t.Errorf("MonthNames[1] = %q", c.MonthNames[1])
	}
}

func TestLoadFileYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := `
month_names: [M1, M2, M3, M4, M5, M6, M7, M8, M9, M10, M11, M12]
time_separator: "h"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Name != "custom" {
		t.Errorf("default name = %q, want file stem", c.Name)
	}
	if c.MonthNames[1] != "M1" || c.MonthNames[12] != "M12" {
		t.Errorf("month names = %v", c.MonthNames)
	}
	if c.MonthGenitiveNames[1] != "M1" {
		t.Errorf("genitive names should default to standalone, got %v", c.MonthGenitiveNames)
	}
	if c.TimeSeparator != "h" {
		t.Errorf("time separator = %q", c.TimeSeparator)
	}
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	short := filepath.Join(dir, "short.yaml")
	os.WriteFile(short, []byte("month_names: [only, two]\n"), 0o644)
	if _, err := LoadFile(short); err == nil {
		t.Error("expected error for short month list")
	}

	bad := filepath.Join(dir, "culture.json")
	os.WriteFile(bad, []byte("{}"), 0o644)
	if _, err := LoadFile(bad); err == nil {
		t.Error("expected error for unsupported extension")
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestCurrentCulture(t *testing.T) {
	defer SetCurrent(nil)

	if Current() != Invariant {
		t.Fatal("default current culture should be invariant")
	}
	de, err := Lookup("de-DE")
	if err != nil {
		t.Fatal(err)
	}
	SetCurrent(de)
	if Current() != de {
		t.Error("SetCurrent did not take effect")
	}
	SetCurrent(nil)
	if Current() != Invariant {
		t.Error("SetCurrent(nil) should reset to invariant")
	}
}
