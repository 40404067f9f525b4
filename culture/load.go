package culture

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// fileCulture is the on-disk shape of a culture definition. All fields are
// optional; missing ones inherit from the invariant culture. Name lists are
// written in natural order (January first, Monday first).
type fileCulture struct {
	Name string `toml:"name" yaml:"name"`

	DateSeparator *string `toml:"date_separator" yaml:"date_separator"`
	TimeSeparator *string `toml:"time_separator" yaml:"time_separator"`

	AMDesignator *string `toml:"am_designator" yaml:"am_designator"`
	PMDesignator *string `toml:"pm_designator" yaml:"pm_designator"`

	MonthNames              []string `toml:"month_names" yaml:"month_names"`
	ShortMonthNames         []string `toml:"short_month_names" yaml:"short_month_names"`
	MonthGenitiveNames      []string `toml:"month_genitive_names" yaml:"month_genitive_names"`
	ShortMonthGenitiveNames []string `toml:"short_month_genitive_names" yaml:"short_month_genitive_names"`

	DayNames      []string `toml:"day_names" yaml:"day_names"`
	ShortDayNames []string `toml:"short_day_names" yaml:"short_day_names"`

	CommonEraNames       []string `toml:"common_era_names" yaml:"common_era_names"`
	BeforeCommonEraNames []string `toml:"before_common_era_names" yaml:"before_common_era_names"`

	OffsetPatternLong          *string `toml:"offset_pattern_long" yaml:"offset_pattern_long"`
	OffsetPatternMedium        *string `toml:"offset_pattern_medium" yaml:"offset_pattern_medium"`
	OffsetPatternShort         *string `toml:"offset_pattern_short" yaml:"offset_pattern_short"`
	OffsetPatternLongNoPunct   *string `toml:"offset_pattern_long_no_punct" yaml:"offset_pattern_long_no_punct"`
	OffsetPatternMediumNoPunct *string `toml:"offset_pattern_medium_no_punct" yaml:"offset_pattern_medium_no_punct"`
	OffsetPatternShortNoPunct  *string `toml:"offset_pattern_short_no_punct" yaml:"offset_pattern_short_no_punct"`

	ShortDatePattern    *string `toml:"short_date_pattern" yaml:"short_date_pattern"`
	LongDatePattern     *string `toml:"long_date_pattern" yaml:"long_date_pattern"`
	ShortTimePattern    *string `toml:"short_time_pattern" yaml:"short_time_pattern"`
	LongTimePattern     *string `toml:"long_time_pattern" yaml:"long_time_pattern"`
	FullDateTimePattern *string `toml:"full_date_time_pattern" yaml:"full_date_time_pattern"`

	TwoDigitYearMax *int `toml:"two_digit_year_max" yaml:"two_digit_year_max"`
}

// LoadFile reads a culture definition from a TOML or YAML file, chosen by
// file extension. Fields not present in the file keep their invariant
// defaults; genitive month names default to the standalone names.
func LoadFile(path string) (*Culture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load culture: %w", err)
	}

	var fc fileCulture
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("load culture %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("load culture %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("load culture %s: unsupported extension %q (want .toml, .yaml or .yml)", path, ext)
	}

	return fc.toCulture(path)
}

func (fc *fileCulture) toCulture(path string) (*Culture, error) {
	c := Invariant.Clone()
	if fc.Name != "" {
		c.Name = fc.Name
	} else {
		c.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setString(&c.DateSeparator, fc.DateSeparator)
	setString(&c.TimeSeparator, fc.TimeSeparator)
	setString(&c.AMDesignator, fc.AMDesignator)
	setString(&c.PMDesignator, fc.PMDesignator)
	setString(&c.OffsetPatternLong, fc.OffsetPatternLong)
	setString(&c.OffsetPatternMedium, fc.OffsetPatternMedium)
	setString(&c.OffsetPatternShort, fc.OffsetPatternShort)
	setString(&c.OffsetPatternLongNoPunct, fc.OffsetPatternLongNoPunct)
	setString(&c.OffsetPatternMediumNoPunct, fc.OffsetPatternMediumNoPunct)
	setString(&c.OffsetPatternShortNoPunct, fc.OffsetPatternShortNoPunct)
	setString(&c.ShortDatePattern, fc.ShortDatePattern)
	setString(&c.LongDatePattern, fc.LongDatePattern)
	setString(&c.ShortTimePattern, fc.ShortTimePattern)
	setString(&c.LongTimePattern, fc.LongTimePattern)
	setString(&c.FullDateTimePattern, fc.FullDateTimePattern)

	setNames := func(dst *[]string, src []string, want int, what string) error {
		if src == nil {
			return nil
		}
		if len(src) != want {
			return fmt.Errorf("load culture %s: %s has %d entries, want %d", path, what, len(src), want)
		}
		*dst = append([]string{""}, src...)
		return nil
	}
	if err := setNames(&c.MonthNames, fc.MonthNames, 12, "month_names"); err != nil {
		return nil, err
	}
	if err := setNames(&c.ShortMonthNames, fc.ShortMonthNames, 12, "short_month_names"); err != nil {
		return nil, err
	}
	// Genitive forms default to whatever the standalone forms ended up as.
	if fc.MonthGenitiveNames == nil {
		c.MonthGenitiveNames = cloneStrings(c.MonthNames)
	} else if err := setNames(&c.MonthGenitiveNames, fc.MonthGenitiveNames, 12, "month_genitive_names"); err != nil {
		return nil, err
	}
	if fc.ShortMonthGenitiveNames == nil {
		c.ShortMonthGenitiveNames = cloneStrings(c.ShortMonthNames)
	} else if err := setNames(&c.ShortMonthGenitiveNames, fc.ShortMonthGenitiveNames, 12, "short_month_genitive_names"); err != nil {
		return nil, err
	}
	if err := setNames(&c.DayNames, fc.DayNames, 7, "day_names"); err != nil {
		return nil, err
	}
	if err := setNames(&c.ShortDayNames, fc.ShortDayNames, 7, "short_day_names"); err != nil {
		return nil, err
	}

	if fc.CommonEraNames != nil {
		if len(fc.CommonEraNames) == 0 {
			return nil, fmt.Errorf("load culture %s: common_era_names is empty", path)
		}
		c.CommonEraNames = cloneStrings(fc.CommonEraNames)
	}
	if fc.BeforeCommonEraNames != nil {
		if len(fc.BeforeCommonEraNames) == 0 {
			return nil, fmt.Errorf("load culture %s: before_common_era_names is empty", path)
		}
		c.BeforeCommonEraNames = cloneStrings(fc.BeforeCommonEraNames)
	}

	if fc.TwoDigitYearMax != nil {
		if *fc.TwoDigitYearMax < 0 || *fc.TwoDigitYearMax > 99 {
			return nil, fmt.Errorf("load culture %s: two_digit_year_max %d outside range [0, 99]", path, *fc.TwoDigitYearMax)
		}
		c.TwoDigitYearMax = *fc.TwoDigitYearMax
	}

	return c, nil
}
