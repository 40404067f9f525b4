package temporal

import "testing"

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		calendar *Calendar
		year     int
		want     bool
	}{
		{CalendarISO, 2000, true},
		{CalendarISO, 1900, false},
		{CalendarISO, 2011, false},
		{CalendarISO, 2012, true},
		{CalendarISO, 0, true},
		{CalendarISO, -100, false},
		{CalendarJulian, 1900, true},
		{CalendarJulian, 2011, false},
		{CalendarJulian, 2012, true},
	}

	for _, tt := range tests {
		if got := tt.calendar.IsLeapYear(tt.year); got != tt.want {
			t.Errorf("%s.IsLeapYear(%d) = %v, want %v", tt.calendar, tt.year, got, tt.want)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		calendar    *Calendar
		year, month int
		want        int
	}{
		{CalendarISO, 2011, 2, 28},
		{CalendarISO, 2012, 2, 29},
		{CalendarISO, 2012, 4, 30},
		{CalendarISO, 2012, 12, 31},
		{CalendarJulian, 1900, 2, 29},
	}

	for _, tt := range tests {
		if got := tt.calendar.DaysInMonth(tt.year, tt.month); got != tt.want {
			t.Errorf("%s.DaysInMonth(%d, %d) = %d, want %d", tt.calendar, tt.year, tt.month, got, tt.want)
		}
	}
}

func TestDaysSinceEpochRoundTrip(t *testing.T) {
	dates := []struct {
		calendar         *Calendar
		year, month, day int
		days             int
	}{
		{CalendarISO, 1970, 1, 1, 0},
		{CalendarISO, 1969, 12, 31, -1},
		{CalendarISO, 2000, 1, 1, 10957},
		{CalendarISO, 2015, 10, 24, 16732},
		{CalendarISO, -9999, 1, 1, -4371587},
		{CalendarJulian, 1970, 1, 1, 13},
	}

	for _, tt := range dates {
		got := tt.calendar.daysSinceEpoch(tt.year, tt.month, tt.day)
		if got != tt.days {
			t.Errorf("%s.daysSinceEpoch(%d, %d, %d) = %d, want %d",
				tt.calendar, tt.year, tt.month, tt.day, got, tt.days)
		}
		y, m, d := tt.calendar.fromDaysSinceEpoch(tt.days)
		if y != tt.year || m != tt.month || d != tt.day {
			t.Errorf("%s.fromDaysSinceEpoch(%d) = %d-%d-%d, want %d-%d-%d",
				tt.calendar, tt.days, y, m, d, tt.year, tt.month, tt.day)
		}
	}
}

func TestEraConversions(t *testing.T) {
	tests := []struct {
		year      int
		era       Era
		yearOfEra int
	}{
		{2011, EraCommon, 2011},
		{1, EraCommon, 1},
		{0, EraBeforeCommon, 1},
		{-1, EraBeforeCommon, 2},
		{-9999, EraBeforeCommon, 10000},
	}

	for _, tt := range tests {
		if got := CalendarISO.EraOf(tt.year); got != tt.era {
			t.Errorf("EraOf(%d) = %v, want %v", tt.year, got, tt.era)
		}
		if got := CalendarISO.YearOfEra(tt.year); got != tt.yearOfEra {
			t.Errorf("YearOfEra(%d) = %d, want %d", tt.year, got, tt.yearOfEra)
		}
		abs, err := CalendarISO.AbsoluteYear(tt.yearOfEra, tt.era)
		if err != nil {
			t.Errorf("AbsoluteYear(%d, %v): %v", tt.yearOfEra, tt.era, err)
		} else if abs != tt.year {
			t.Errorf("AbsoluteYear(%d, %v) = %d, want %d", tt.yearOfEra, tt.era, abs, tt.year)
		}
	}

	if _, err := CalendarISO.AbsoluteYear(10000, EraCommon); err == nil {
		t.Error("AbsoluteYear(10000, CE): expected error, got none")
	}
}

func TestCalendarByID(t *testing.T) {
	for _, id := range CalendarIDs() {
		c, ok := CalendarByID(id)
		if !ok || c.ID() != id {
			t.Errorf("CalendarByID(%q) = %v, %v", id, c, ok)
		}
	}
	if _, ok := CalendarByID("Coptic"); ok {
		t.Error("CalendarByID(Coptic): expected miss")
	}
}
