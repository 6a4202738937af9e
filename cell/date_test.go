package cell

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		schooljaar string
		want       string
		wantOK     bool
	}{
		{"autumn uses first year", "28-10", "2025/2026", "2025-10-28", true},
		{"spring uses second year", "3 feb", "2025/2026", "2026-02-03", true},
		{"explicit year", "28/10/2025", "", "2025-10-28", true},
		{"two digit year", "ma 3-11-25", "", "2025-11-03", true},
		{"month name with year", "1 januari 2026", "", "2026-01-01", true},
		{"dotted", "12.05", "2024/2025", "2025-05-12", true},
		{"august boundary", "31-08", "2025/2026", "2025-08-31", true},
		{"july is second year", "1-7", "2025/2026", "2026-07-01", true},
		{"invalid day", "31-02", "2025/2026", "", false},
		{"no date", "geen les", "2025/2026", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.text, tt.schooljaar)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseDate(%q, %q) = %q, %v, want %q, %v", tt.text, tt.schooljaar, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestParseDateWithoutSchoolYear(t *testing.T) {
	got, ok := ParseDate("15-03", "")
	if !ok {
		t.Fatal("ParseDate() failed")
	}
	want := time.Date(time.Now().Year(), time.March, 15, 0, 0, 0, 0, time.UTC).Format(DateLayout)
	if got != want {
		t.Errorf("ParseDate() = %q, want %q", got, want)
	}
}

func TestParseDateRange(t *testing.T) {
	tests := []struct {
		text      string
		sj        string
		wantStart string
		wantEnd   string
	}{
		{"10-11-2025 t/m 14-11-2025", "", "2025-11-10", "2025-11-14"},
		{"25 t/m 29 november", "2025/2026", "2025-11-25", "2025-11-29"},
		{"28-10", "2025/2026", "2025-10-28", ""},
		{"28-10 en 28-10", "2025/2026", "2025-10-28", ""},
		{"", "", "", ""},
	}
	for _, tt := range tests {
		start, end := ParseDateRange(tt.text, tt.sj)
		if start != tt.wantStart || end != tt.wantEnd {
			t.Errorf("ParseDateRange(%q) = %q, %q, want %q, %q", tt.text, start, end, tt.wantStart, tt.wantEnd)
		}
	}
}

func TestParseExplicitDates(t *testing.T) {
	if s, e := ParseExplicitDates("Week 3/4", "2025/2026"); s != "" || e != "" {
		t.Errorf("ParseExplicitDates(Week 3/4) = %q, %q, want empty", s, e)
	}
	s, e := ParseExplicitDates("Week 46 (10-11 t/m 14-11)", "2025/2026")
	if s != "2025-11-10" || e != "2025-11-14" {
		t.Errorf("ParseExplicitDates() = %q, %q, want 2025-11-10, 2025-11-14", s, e)
	}
}

func TestParseSchoolYear(t *testing.T) {
	tests := []struct {
		text   string
		want   string
		wantOK bool
	}{
		{"Studiewijzer 2025/2026", "2025/2026", true},
		{"schooljaar 2025-26", "2025/2026", true},
		{"Schooljaar 24/25", "2024/2025", true},
		{"2025/2027", "", false},
		{"Week 3/4", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseSchoolYear(tt.text)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseSchoolYear(%q) = %q, %v, want %q, %v", tt.text, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestParseSchoolYearToken(t *testing.T) {
	if got, ok := ParseSchoolYearToken("24-25"); !ok || got != "2024/2025" {
		t.Errorf("ParseSchoolYearToken(24-25) = %q, %v", got, ok)
	}
	if _, ok := ParseSchoolYearToken("10-11"); ok {
		t.Error("ParseSchoolYearToken(10-11) should not be a school year")
	}
	if _, ok := ParseSchoolYearToken("24-26"); ok {
		t.Error("ParseSchoolYearToken(24-26) should not be a school year")
	}
}

func TestSchoolYearOf(t *testing.T) {
	if got := SchoolYearOf(time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)); got != "2025/2026" {
		t.Errorf("SchoolYearOf(sep 2025) = %q", got)
	}
	if got := SchoolYearOf(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)); got != "2025/2026" {
		t.Errorf("SchoolYearOf(mar 2026) = %q", got)
	}
}

func TestISOWeekHelpers(t *testing.T) {
	if w, ok := ISOWeek("2025-10-28"); !ok || w != 44 {
		t.Errorf("ISOWeek(2025-10-28) = %d, %v, want 44", w, ok)
	}
	if _, ok := ISOWeek("28-10-2025"); ok {
		t.Error("ISOWeek() accepted a non-ISO date")
	}
	if got := MondayOfWeek(2025, 44).Format(DateLayout); got != "2025-10-27" {
		t.Errorf("MondayOfWeek(2025, 44) = %q, want 2025-10-27", got)
	}
	if got := WeekStart(2, "2025/2026"); got != "2026-01-05" {
		t.Errorf("WeekStart(2) = %q, want 2026-01-05", got)
	}
	if got := WeekStart(36, "2025/2026"); got != "2025-09-01" {
		t.Errorf("WeekStart(36) = %q, want 2025-09-01", got)
	}
	if got := ShiftDate("2025-12-30", 3); got != "2026-01-02" {
		t.Errorf("ShiftDate() = %q", got)
	}
	if d, ok := DaysBetween("2025-10-28", "2025-11-04"); !ok || d != 7 {
		t.Errorf("DaysBetween() = %d, %v, want 7", d, ok)
	}
}
