package pdf

import (
	"reflect"
	"testing"
)

// frag builds a fragment with a 0.5 em per character width at size 10.
func frag(x, y float64, text string) Fragment {
	return Fragment{Text: text, X: x, Y: y, Width: float64(len([]rune(text))) * 5, Size: 10}
}

func TestGroupLines(t *testing.T) {
	lines := GroupLines([]Fragment{
		frag(200, 699, "rechts"),
		frag(50, 650, "onder"),
		frag(50, 700, "links"),
		frag(120, 701, "   "),
	})

	if len(lines) != 2 {
		t.Fatalf("GroupLines() = %d lines, want 2", len(lines))
	}
	if got := lines[0].Text(); got != "links rechts" {
		t.Errorf("line 0 = %q, want %q", got, "links rechts")
	}
	if got := lines[1].Text(); got != "onder" {
		t.Errorf("line 1 = %q, want %q", got, "onder")
	}
}

func TestLineSpans(t *testing.T) {
	l := Line{Fragments: []Fragment{
		frag(50, 700, "Week"),    // 50-70
		frag(72, 700, "36"),      // word gap 2
		frag(150, 700, "Cellen"), // column gap
		frag(180, 700, "en"),     // touching
		frag(193, 700, "weefsels"),
	}}

	want := []string{"Week 36", "Cellenen weefsels"}
	if got := l.SpanTexts(); !reflect.DeepEqual(got, want) {
		t.Errorf("SpanTexts() = %q, want %q", got, want)
	}
	spans := l.Spans()
	if spans[1].X != 150 || spans[1].Right != 233 {
		t.Errorf("span bounds = %v-%v, want 150-233", spans[1].X, spans[1].Right)
	}
}

func TestGridColumns(t *testing.T) {
	header := Line{Fragments: []Fragment{
		frag(50, 700, "Week"),       // 50-70
		frag(100, 700, "Onderwerp"), // 100-145
		frag(300, 700, "Huiswerk"),  // 300-340
	}}
	g := GridFromLine(header)

	if g.Columns() != 3 {
		t.Fatalf("Columns() = %d, want 3", g.Columns())
	}
	tests := []struct {
		x    float64
		want int
	}{
		{40, 0},
		{84, 0},
		{86, 1},
		{200, 1},
		{230, 2},
		{500, 2},
	}
	for _, tt := range tests {
		if got := g.Column(tt.x); got != tt.want {
			t.Errorf("Column(%v) = %d, want %d", tt.x, got, tt.want)
		}
	}
}

func TestGridTable(t *testing.T) {
	xs := []float64{50, 100, 300}
	row := func(y float64, cells ...string) Line {
		var fs []Fragment
		for i, c := range cells {
			if c != "" {
				fs = append(fs, frag(xs[i], y, c))
			}
		}
		return Line{Y: y, Fragments: fs}
	}

	lines := []Line{
		row(700, "Week", "Onderwerp", "Huiswerk"),
		row(685, "36", "Cellen", "Lees 1.1"),
		row(673, "", "Weefsels", "Maak 1-5"),
		row(658, "37", "Organen", ""),
		row(600, "", "Herfstvakantie", ""),
	}

	tbl := GridFromLine(lines[0]).Table(lines, 0, 4)
	want := [][]string{
		{"Week", "Onderwerp", "Huiswerk"},
		{"36", "Cellen\nWeefsels", "Lees 1.1\nMaak 1-5"},
		{"37", "Organen", ""},
		{"", "Herfstvakantie", ""},
	}
	if got := tbl.TextGrid(); !reflect.DeepEqual(got, want) {
		t.Errorf("TextGrid() = %q, want %q", got, want)
	}
	if tbl.Index != 4 {
		t.Errorf("Index = %d, want 4", tbl.Index)
	}
}
