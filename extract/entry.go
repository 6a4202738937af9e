package extract

import (
	"regexp"
	"strings"

	"github.com/tsawler/vlier/cell"
	"github.com/tsawler/vlier/header"
	"github.com/tsawler/vlier/keywords"
	"github.com/tsawler/vlier/model"
)

// maxNeighbors is how far to the right an empty PDF cell looks for its
// text.
const maxNeighbors = 3

var weekOnlyRe = regexp.MustCompile(`(?i)^(?:(?:week|wk)\.?\s*)?\d{1,2}(?:\s*(?:[-/&+,]|en|t/m)\s*\d{1,2})*$`)

// rowBuilder turns the cells of one table row into an entry.
type rowBuilder struct {
	kw         *keywords.Config
	cols       header.Columns
	schooljaar string

	// neighbors enables the lookahead into blank-headed columns.
	neighbors bool

	// extra lists, per field column, the columns covered by the same
	// merged header cell.
	extra map[int][]int
}

// cellReader reads the field cells of a single row.
type cellReader struct {
	b     *rowBuilder
	cells []string
	used  map[int]bool
}

func (r *cellReader) text(f header.Field) string {
	i, ok := r.b.cols.Index(f)
	if !ok || i >= len(r.cells) {
		return ""
	}
	r.used[i] = true

	parts := []string{cell.Normalize(r.cells[i])}
	for _, j := range r.b.extra[i] {
		if j < len(r.cells) && !r.used[j] {
			r.used[j] = true
			parts = append(parts, cell.Normalize(r.cells[j]))
		}
	}
	if t := joinLines(parts); t != "" {
		return t
	}
	if !r.b.neighbors {
		return ""
	}

	for j := i + 1; j < len(r.cells) && j <= i+maxNeighbors; j++ {
		if !r.b.mayBorrow(j, f) {
			break
		}
		if r.used[j] {
			continue
		}
		if t := cell.Normalize(r.cells[j]); t != "" {
			r.used[j] = true
			return t
		}
	}
	return ""
}

// mayBorrow reports whether column j may lend its text to field f: its
// header is blank or names the same field.
func (b *rowBuilder) mayBorrow(j int, f header.Field) bool {
	owner := b.cols.FieldAt(j)
	if owner != header.FieldNone {
		return owner == f
	}
	if j >= len(b.cols.Headers) {
		return true
	}
	h := strings.TrimSpace(b.cols.Headers[j])
	if h == "" {
		return true
	}
	_, ok := keywords.ContainsAny(h, header.Keywords(b.kw, f))
	return ok
}

func joinLines(parts []string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n")
}

// entry builds the entry of one row. It reports false for rows that hold
// no schedule data, such as blank rows or a repeated header.
func (b *rowBuilder) entry(cells []string, links []model.Link) (model.RawEntry, bool) {
	r := &cellReader{b: b, cells: cells, used: make(map[int]bool)}

	weekText := r.text(header.FieldWeek)
	details := cell.ParseWeekDetails(weekText)

	var datum, eind string
	wi, hasWeek := b.cols.Index(header.FieldWeek)
	di, hasDate := b.cols.Index(header.FieldDate)
	if hasDate && (!hasWeek || di != wi) {
		datum, eind = cell.ParseDateRange(r.text(header.FieldDate), b.schooljaar)
	}
	if datum == "" {
		datum, eind = cell.ParseExplicitDates(weekText, b.schooljaar)
	}

	inlever, _ := cell.ParseDate(r.text(header.FieldHandin), b.schooljaar)
	examText := r.text(header.FieldExam)
	rawHomework := r.text(header.FieldHomework)
	rawAssignment := r.text(header.FieldAssignment)
	subject := r.text(header.FieldSubject)
	lesson := r.text(header.FieldLesson)
	objectives := r.text(header.FieldObjective)
	resource := r.text(header.FieldResource)
	notes := r.text(header.FieldNote)
	class := r.text(header.FieldClass)
	location := r.text(header.FieldLocation)

	if inlever == "" {
		inlever = findDeadline(b.kw, b.schooljaar, rawAssignment, rawHomework, notes)
	}

	row := model.DocRow{
		Datum:        datum,
		DatumEind:    eind,
		Les:          cell.Clean(lesson),
		Onderwerp:    subject,
		Leerdoelen:   listLines(objectives),
		Huiswerk:     captured(rawHomework, subject),
		Opdracht:     captured(rawAssignment, subject),
		Inleverdatum: inlever,
		Bronnen:      collectResources(resource, cells, links),
		Notities:     notes,
		KlasOfGroep:  cell.Clean(class),
		Locatie:      cell.Clean(location),
	}
	if b.cols.Has(header.FieldExam) {
		row.Toets = parseToets(examText)
	} else {
		row.Toets = examFromText(b.kw, subject, notes)
	}

	e := model.RawEntry{DocRow: row}
	if label, ok := holidayLabel(b.kw, cells); ok && row.Huiswerk == "" && row.Opdracht == "" {
		e.IsHoliday = true
		e.HolidayLabel = label
		if len(details.Weeks) == 0 {
			details = neighborWeeks(cells, wi, hasWeek)
		}
	}

	if len(details.Weeks) == 0 && row.Datum != "" {
		if w, ok := cell.ISOWeek(row.Datum); ok {
			details = cell.WeekDetails{Weeks: []int{w}, SpanStart: w, SpanEnd: w, Label: details.Label}
		}
	}
	setWeeks(&e.DocRow, details)

	if len(details.Weeks) == 0 && e.Datum == "" {
		if !e.IsHoliday && !e.HasContent() {
			return e, false
		}
		if header.MapColumns(cells, b.kw).IsSchedule() {
			return e, false
		}
	}
	return e, true
}

func setWeeks(row *model.DocRow, d cell.WeekDetails) {
	row.WeekLabel = d.Label
	if len(d.Weeks) == 0 {
		return
	}
	row.Week = d.Weeks[0]
	row.Weeks = append([]int(nil), d.Weeks...)
	row.WeekSpanStart = d.SpanStart
	row.WeekSpanEnd = d.SpanEnd
}

// captured cleans homework or assignment text: date-only text is dropped,
// date ranges are stripped and text repeating the topic is discarded.
func captured(text, subject string) string {
	if text == "" || cell.IsOnlyDates(text) {
		return ""
	}
	t := cell.StripDateRanges(text)
	if t == "" {
		return ""
	}
	if s := cell.Clean(subject); s != "" && keywords.Fold(cell.Clean(t)) == keywords.Fold(s) {
		return ""
	}
	return t
}

func listLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(line, "-•*·▪ "))
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// holidayLabel returns the cell line naming a holiday.
func holidayLabel(kw *keywords.Config, cells []string) (string, bool) {
	for _, c := range cells {
		for _, line := range strings.Split(cell.Normalize(c), "\n") {
			if _, ok := keywords.ContainsWord(line, kw.HolidayTerms); ok {
				return cell.Clean(line), true
			}
		}
	}
	return "", false
}

// neighborWeeks reads the weeks of a holiday row from the nearest cell that
// holds nothing but week numbers, such as "52/1".
func neighborWeeks(cells []string, from int, ok bool) cell.WeekDetails {
	if !ok {
		from = 0
	}
	for dist := 0; dist < len(cells); dist++ {
		cands := []int{from + dist}
		if dist > 0 {
			cands = append(cands, from-dist)
		}
		for _, j := range cands {
			if j < 0 || j >= len(cells) {
				continue
			}
			t := cell.Clean(cells[j])
			if !weekOnlyRe.MatchString(t) {
				continue
			}
			if d := cell.ParseWeekDetails(t); len(d.Weeks) > 0 {
				return d
			}
		}
	}
	return cell.WeekDetails{}
}
