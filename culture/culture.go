// Package culture provides the locale data the pattern engine draws on:
// month, day and era names, date/time separators, AM/PM designators and the
// per-locale text of standard patterns. Cultures are plain data; custom ones
// can be built in code or loaded from TOML/YAML files.
package culture

import "github.com/dhamidi/chrono/temporal"

// Culture holds the formatting information for one locale. Name slices are
// indexed by month number (1-12) or ISO day-of-week number (1-7); index 0 is
// unused. Genitive month names are used when a pattern formats the month
// next to a day of the month; locales without a separate genitive form
// repeat the standalone names.
type Culture struct {
	Name string

	DateSeparator string
	TimeSeparator string

	AMDesignator string
	PMDesignator string

	MonthNames              []string
	ShortMonthNames         []string
	MonthGenitiveNames      []string
	ShortMonthGenitiveNames []string

	DayNames      []string
	ShortDayNames []string

	// Era names, primary form first; parsing accepts any listed form.
	CommonEraNames       []string
	BeforeCommonEraNames []string

	// Standard offset pattern text: full precision, to the minute, hours
	// only, each with and without punctuation.
	OffsetPatternLong          string
	OffsetPatternMedium        string
	OffsetPatternShort         string
	OffsetPatternLongNoPunct   string
	OffsetPatternMediumNoPunct string
	OffsetPatternShortNoPunct  string

	ShortDatePattern    string
	LongDatePattern     string
	ShortTimePattern    string
	LongTimePattern     string
	FullDateTimePattern string

	// TwoDigitYearMax is the largest two-digit year parsed into the current
	// century; greater values land one century earlier.
	TwoDigitYearMax int
}

// EraNames returns all accepted names for an era, primary form first.
func (c *Culture) EraNames(era temporal.Era) []string {
	if era == temporal.EraCommon {
		return c.CommonEraNames
	}
	return c.BeforeCommonEraNames
}

// EraPrimaryName returns the name used when formatting an era.
func (c *Culture) EraPrimaryName(era temporal.Era) string {
	names := c.EraNames(era)
	if len(names) == 0 {
		return ""
	}
	return names[0]
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

// Clone returns a deep copy, so callers can adjust a built-in culture
// without mutating shared data.
func (c *Culture) Clone() *Culture {
	out := *c
	out.MonthNames = cloneStrings(c.MonthNames)
	out.ShortMonthNames = cloneStrings(c.ShortMonthNames)
	out.MonthGenitiveNames = cloneStrings(c.MonthGenitiveNames)
	out.ShortMonthGenitiveNames = cloneStrings(c.ShortMonthGenitiveNames)
	out.DayNames = cloneStrings(c.DayNames)
	out.ShortDayNames = cloneStrings(c.ShortDayNames)
	out.CommonEraNames = cloneStrings(c.CommonEraNames)
	out.BeforeCommonEraNames = cloneStrings(c.BeforeCommonEraNames)
	return &out
}
