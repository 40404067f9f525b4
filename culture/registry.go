package culture

import (
	"fmt"
	"sort"
	"sync"

	"golang.org/x/text/language"
)

// Invariant is the culture-neutral locale: English names, ISO separators,
// CE/BCE eras. It is the default for all pattern constructors that do not
// take an explicit culture.
var Invariant = &Culture{
	Name:          "invariant",
	DateSeparator: "/",
	TimeSeparator: ":",
	AMDesignator:  "AM",
	PMDesignator:  "PM",
	MonthNames: []string{"",
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"},
	ShortMonthNames: []string{"",
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	MonthGenitiveNames: []string{"",
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"},
	ShortMonthGenitiveNames: []string{"",
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	DayNames: []string{"",
		"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"},
	ShortDayNames: []string{"",
		"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
	CommonEraNames:       []string{"CE", "AD", "A.D."},
	BeforeCommonEraNames: []string{"BCE", "BC", "B.C."},

	OffsetPatternLong:          "+HH:mm:ss",
	OffsetPatternMedium:        "+HH:mm",
	OffsetPatternShort:         "+HH",
	OffsetPatternLongNoPunct:   "+HHmmss",
	OffsetPatternMediumNoPunct: "+HHmm",
	OffsetPatternShortNoPunct:  "+HH",

	ShortDatePattern:    "MM/dd/uuuu",
	LongDatePattern:     "dddd, dd MMMM uuuu",
	ShortTimePattern:    "HH:mm",
	LongTimePattern:     "HH:mm:ss",
	FullDateTimePattern: "dddd, dd MMMM uuuu HH:mm:ss",

	TwoDigitYearMax: 30,
}

// variant builds a built-in culture by overriding the invariant data.
func variant(name string, adjust func(*Culture)) *Culture {
	c := Invariant.Clone()
	c.Name = name
	adjust(c)
	return c
}

var builtin = map[string]*Culture{
	"en-US": variant("en-US", func(c *Culture) {}),
	"en-GB": variant("en-GB", func(c *Culture) {
		c.ShortDatePattern = "dd/MM/uuuu"
	}),
	"de-DE": variant("de-DE", func(c *Culture) {
		c.DateSeparator = "."
		c.MonthNames = []string{"",
			"Januar", "Februar", "März", "April", "Mai", "Juni",
			"Juli", "August", "September", "Oktober", "November", "Dezember"}
		c.MonthGenitiveNames = cloneStrings(c.MonthNames)
		c.ShortMonthNames = []string{"",
			"Jan", "Feb", "Mär", "Apr", "Mai", "Jun",
			"Jul", "Aug", "Sep", "Okt", "Nov", "Dez"}
		c.ShortMonthGenitiveNames = cloneStrings(c.ShortMonthNames)
		c.DayNames = []string{"",
			"Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag", "Sonntag"}
		c.ShortDayNames = []string{"", "Mo", "Di", "Mi", "Do", "Fr", "Sa", "So"}
		c.CommonEraNames = []string{"n. Chr."}
		c.BeforeCommonEraNames = []string{"v. Chr."}
		c.ShortDatePattern = "dd.MM.uuuu"
		c.LongDatePattern = "dddd, dd. MMMM uuuu"
		c.FullDateTimePattern = "dddd, dd. MMMM uuuu HH:mm:ss"
	}),
	"fr-FR": variant("fr-FR", func(c *Culture) {
		c.MonthNames = []string{"",
			"janvier", "février", "mars", "avril", "mai", "juin",
			"juillet", "août", "septembre", "octobre", "novembre", "décembre"}
		c.MonthGenitiveNames = cloneStrings(c.MonthNames)
		c.ShortMonthNames = []string{"",
			"janv.", "févr.", "mars", "avr.", "mai", "juin",
			"juil.", "août", "sept.", "oct.", "nov.", "déc."}
		c.ShortMonthGenitiveNames = cloneStrings(c.ShortMonthNames)
		c.DayNames = []string{"",
			"lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi", "dimanche"}
		c.ShortDayNames = []string{"", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam.", "dim."}
		c.CommonEraNames = []string{"ap. J.-C."}
		c.BeforeCommonEraNames = []string{"av. J.-C."}
		c.ShortDatePattern = "dd/MM/uuuu"
		c.LongDatePattern = "dddd dd MMMM uuuu"
		c.FullDateTimePattern = "dddd dd MMMM uuuu HH:mm:ss"
	}),
	// Russian has distinct genitive month forms, which exercises the
	// longest-match text parsing.
	"ru-RU": variant("ru-RU", func(c *Culture) {
		c.DateSeparator = "."
		c.MonthNames = []string{"",
			"январь", "февраль", "март", "апрель", "май", "июнь",
			"июль", "август", "сентябрь", "октябрь", "ноябрь", "декабрь"}
		c.MonthGenitiveNames = []string{"",
			"января", "февраля", "марта", "апреля", "мая", "июня",
			"июля", "августа", "сентября", "октября", "ноября", "декабря"}
		c.ShortMonthNames = []string{"",
			"янв", "фев", "мар", "апр", "май", "июн",
			"июл", "авг", "сен", "окт", "ноя", "дек"}
		c.ShortMonthGenitiveNames = []string{"",
			"янв", "фев", "мар", "апр", "мая", "июн",
			"июл", "авг", "сен", "окт", "ноя", "дек"}
		c.DayNames = []string{"",
			"понедельник", "вторник", "среда", "четверг", "пятница", "суббота", "воскресенье"}
		c.ShortDayNames = []string{"", "Пн", "Вт", "Ср", "Чт", "Пт", "Сб", "Вс"}
		c.CommonEraNames = []string{"н. э."}
		c.BeforeCommonEraNames = []string{"до н. э."}
		c.ShortDatePattern = "dd.MM.uuuu"
		c.LongDatePattern = "d MMMM uuuu"
		c.FullDateTimePattern = "d MMMM uuuu HH:mm:ss"
	}),
}

var matcherOnce = sync.OnceValue(func() language.Matcher {
	tags := make([]language.Tag, 0, len(builtin)+1)
	tags = append(tags, language.Und)
	for _, name := range Names() {
		tags = append(tags, language.MustParse(name))
	}
	return language.NewMatcher(tags)
})

// Names lists the built-in culture names in sorted order, not including the
// invariant culture.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup matches a BCP-47 tag against the built-in cultures, so "en" and
// "en-US-posix" both find en-US. The empty tag and unmatchable tags resolve
// to the invariant culture; a malformed tag is an error.
func Lookup(tag string) (*Culture, error) {
	if tag == "" || tag == "invariant" {
		return Invariant, nil
	}
	parsed, err := language.Parse(tag)
	if err != nil {
		return nil, fmt.Errorf("parse culture tag %q: %w", tag, err)
	}
	matcher := matcherOnce()
	_, index, _ := matcher.Match(parsed)
	if index == 0 {
		return Invariant, nil
	}
	return builtin[Names()[index-1]], nil
}
