package postprocess

import (
	"regexp"
	"strings"

	"github.com/tsawler/vlier/cell"
	"github.com/tsawler/vlier/keywords"
	"github.com/tsawler/vlier/model"
)

// Rule is a row transformation for subjects starting with Prefix. Fn reports
// whether it changed the row.
type Rule struct {
	Prefix string
	Fn     func(row *model.DocRow) bool
}

var rules = []Rule{
	{Prefix: "aardrijkskunde", Fn: NotesAsExam},
	{Prefix: "lichamelijke opvoeding", Fn: SplitDayEvents},
}

// Rules returns the rule table.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Lookup returns the rule for vak.
func Lookup(vak string) (Rule, bool) {
	v := keywords.Fold(cell.Clean(vak))
	if v == "" {
		return Rule{}, false
	}
	for _, r := range rules {
		if strings.HasPrefix(v, r.Prefix) {
			return r, true
		}
	}
	return Rule{}, false
}

// Apply runs the rule for vak on row and reports whether the row changed.
func Apply(vak string, row *model.DocRow) bool {
	if row == nil {
		return false
	}
	r, ok := Lookup(vak)
	if !ok {
		return false
	}
	return r.Fn(row)
}

var (
	examLabelRe = regexp.MustCompile(`(?i)^(?:so|pw|po|se|toets|proefwerk|schriftelijke overhoring|praktische opdracht)\b`)
	weekdayRe   = regexp.MustCompile(`(?i)^(?:maandag|dinsdag|woensdag|donderdag|vrijdag|zaterdag|zondag|ma|di|wo|do|vr|za|zo)\b\.?`)
	dayMonthRe  = regexp.MustCompile(`^\d{1,2}[-/]\d{1,2}\b`)
)

// NotesAsExam moves a single-line note that names an assessment into the
// toets type and clears the note.
func NotesAsExam(row *model.DocRow) bool {
	note := cell.Normalize(row.Notities)
	if note == "" || strings.Contains(note, "\n") || !examLabelRe.MatchString(note) {
		return false
	}
	if row.Toets == nil {
		row.Toets = &model.Toets{}
	}
	switch {
	case row.Toets.Type == "":
		row.Toets.Type = note
	case !strings.EqualFold(row.Toets.Type, note):
		row.Toets.Type += "; " + note
	}
	row.Notities = ""
	return true
}

// SplitDayEvents moves note lines that describe a dated event (starting with
// a weekday or a day-month date) into the topic. Other lines stay notes.
func SplitDayEvents(row *model.DocRow) bool {
	note := cell.Normalize(row.Notities)
	if note == "" {
		return false
	}

	var events, rest []string
	for _, line := range strings.Split(note, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(line, "-•*· "))
		if line == "" {
			continue
		}
		if weekdayRe.MatchString(line) || dayMonthRe.MatchString(line) {
			events = append(events, line)
		} else {
			rest = append(rest, line)
		}
	}
	if len(events) == 0 {
		return false
	}

	topic := strings.TrimSpace(row.Onderwerp)
	for _, e := range events {
		if topic != "" {
			topic += "\n"
		}
		topic += e
	}
	row.Onderwerp = topic
	row.Notities = strings.Join(rest, "\n")
	return true
}
