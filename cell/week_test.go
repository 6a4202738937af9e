package cell

import (
	"reflect"
	"testing"
)

func TestParseWeeks(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []int
	}{
		{"single number", "5", []int{5}},
		{"week prefix", "Week 12", []int{12}},
		{"wk chain", "wk 52-1-2", []int{52, 1, 2}},
		{"en dash chain", "52–1–2–3–4", []int{52, 1, 2, 3, 4}},
		{"date range in parens", "Week 46 (25-11 t/m 29-11)", []int{46}},
		{"slash pair", "Week 3/4", []int{3, 4}},
		{"connector en", "46 en 47", []int{46, 47}},
		{"connector ampersand", "12 & 13", []int{12, 13}},
		{"connector plus", "wk 1 + 2", []int{1, 2}},
		{"through", "week 3 t/m week 5", []int{3, 5}},
		{"duplicates removed", "45/45", []int{45}},
		{"glued prefix", "wk52", []int{52}},
		{"out of range dropped", "Week 60", nil},
		{"full date stripped", "Week 44 28-10-2025", []int{44}},
		{"named month stripped", "41 (6 okt)", []int{41}},
		{"date range only", "10-11-2025 t/m 14-11-2025", nil},
		{"holiday text", "Kerstvakantie", nil},
		{"empty", "", nil},
		{"paragraph digits ignored", "H3 en H4", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseWeeks(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseWeeks(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseWeeksRangeAndOrder(t *testing.T) {
	inputs := []string{"wk 52-1-2", "52–1–2–3–4", "Week 46 (25-11 t/m 29-11)", "1-2-3", "45 - 46"}
	for _, in := range inputs {
		got := ParseWeeks(in)
		seen := map[int]bool{}
		for _, w := range got {
			if w < MinWeek || w > MaxWeek {
				t.Errorf("ParseWeeks(%q) returned out of range week %d", in, w)
			}
			if seen[w] {
				t.Errorf("ParseWeeks(%q) returned duplicate week %d", in, w)
			}
			seen[w] = true
		}
	}
}

func TestParseWeekDetails(t *testing.T) {
	d := ParseWeekDetails("Week 3/4")
	if !reflect.DeepEqual(d.Weeks, []int{3, 4}) {
		t.Errorf("Weeks = %v, want [3 4]", d.Weeks)
	}
	if d.SpanStart != 3 || d.SpanEnd != 4 {
		t.Errorf("span = %d..%d, want 3..4", d.SpanStart, d.SpanEnd)
	}
	if d.Label != "Week 3/4" {
		t.Errorf("Label = %q, want %q", d.Label, "Week 3/4")
	}

	single := ParseWeekDetails("  wk  7 ")
	if single.SpanStart != 7 || single.SpanEnd != 7 || single.Label != "wk 7" {
		t.Errorf("ParseWeekDetails(wk 7) = %+v", single)
	}

	none := ParseWeekDetails("Kerstvakantie")
	if len(none.Weeks) != 0 || none.SpanStart != 0 || none.Label != "Kerstvakantie" {
		t.Errorf("ParseWeekDetails(Kerstvakantie) = %+v", none)
	}
}

func TestStripDateRanges(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Maak opdracht 10-11-2025 t/m 14-11-2025", "Maak opdracht"},
		{"10-11-2025 t/m 14-11-2025", ""},
		{"Maak 4.1 (10-11-2025 t/m 14-11-2025)", "Maak 4.1"},
		{"Project 10 t/m 14 november", "Project"},
		{"Lees H3 (deadline 3 nov)", "Lees H3 (deadline 3 nov)"},
		{"Maak 2.3 (inleveren 12-9)", "Maak 2.3 (inleveren 12-9)"},
		{"Inleveren uiterlijk 14-11-2025", "Inleveren uiterlijk 14-11-2025"},
		{"Geen datum", "Geen datum"},
	}
	for _, tt := range tests {
		if got := StripDateRanges(tt.text); got != tt.want {
			t.Errorf("StripDateRanges(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestIsOnlyDates(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"10-11-2025 t/m 14-11-2025", true},
		{"28-10", true},
		{"3 november", true},
		{"Maak opdracht 2 voor 3 nov", false},
		{"", false},
		{"Hoofdstuk 4", false},
	}
	for _, tt := range tests {
		if got := IsOnlyDates(tt.text); got != tt.want {
			t.Errorf("IsOnlyDates(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("52–1—2−3"); got != "52-1-2-3" {
		t.Errorf("Normalize() = %q, want 52-1-2-3", got)
	}
	if got := Normalize("  a  b \n  c  "); got != "a b\nc" {
		t.Errorf("Normalize() = %q, want %q", got, "a b\nc")
	}
	if got := Clean("a\n b"); got != "a b" {
		t.Errorf("Clean() = %q, want %q", got, "a b")
	}
}
