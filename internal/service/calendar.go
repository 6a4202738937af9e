package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/tsawler/vlier/cell"
	"github.com/tsawler/vlier/model"
)

// Calendar renders the enabled rows of a stored version as an iCalendar
// file: one all-day event per row and one per hand-in date. Rows without a
// week or date are left out.
func (s *Service) Calendar(ctx context.Context, guideID string, versionID int) ([]byte, string, error) {
	v, err := s.Version(ctx, guideID, versionID)
	if err != nil {
		return nil, "", err
	}
	meta := v.Meta.Data()
	stamp := v.CreatedAt
	if stamp.IsZero() {
		stamp = s.opts.Now()
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//vlier//studiewijzer//NL")
	cal.SetXWRCalName(title(meta))

	for i, r := range v.Rows {
		if !r.IsEnabled() {
			continue
		}
		uid := fmt.Sprintf("%s-v%d-r%d@vlier", guideID, versionID, i)

		if start, end, ok := rowSpan(r, meta.Schooljaar); ok && r.HasContent() {
			e := cal.AddEvent(uid)
			e.SetDtStampTime(stamp)
			e.SetAllDayStartAt(start)
			e.SetAllDayEndAt(end)
			e.SetSummary(rowSummary(r))
			if d := rowDescription(r); d != "" {
				e.SetDescription(d)
			}
			if !r.Toets.IsZero() {
				e.AddProperty(ics.ComponentPropertyCategories, "TOETS")
			}
		}

		if due, err := time.Parse(cell.DateLayout, r.Inleverdatum); err == nil {
			e := cal.AddEvent(strings.Replace(uid, "@", "-inleveren@", 1))
			e.SetDtStampTime(stamp)
			e.SetAllDayStartAt(due)
			e.SetAllDayEndAt(due.AddDate(0, 0, 1))
			e.SetSummary("Inleveren: " + firstNonEmpty(r.Opdracht, r.Onderwerp, r.Huiswerk))
			e.AddProperty(ics.ComponentPropertyCategories, "DEADLINE")
		}
	}

	name := strings.TrimSuffix(exportName(meta, versionID), ".xlsx") + ".ics"
	return []byte(cal.Serialize()), name, nil
}

// rowSpan returns the all-day range of a row, end exclusive. A row without
// a date covers Monday to Friday of its week.
func rowSpan(r model.DocRow, schooljaar string) (start, end time.Time, ok bool) {
	if d, err := time.Parse(cell.DateLayout, r.Datum); err == nil {
		end = d.AddDate(0, 0, 1)
		if e, err := time.Parse(cell.DateLayout, r.DatumEind); err == nil && !e.Before(d) {
			end = e.AddDate(0, 0, 1)
		}
		return d, end, true
	}
	if r.Week > 0 {
		d, err := time.Parse(cell.DateLayout, cell.WeekStart(r.Week, schooljaar))
		if err != nil {
			return start, end, false
		}
		return d, d.AddDate(0, 0, 5), true
	}
	return start, end, false
}

func rowSummary(r model.DocRow) string {
	topic := firstLine(firstNonEmpty(r.Onderwerp, r.Les, r.Huiswerk, r.Opdracht))
	if !r.Toets.IsZero() {
		return "Toets: " + firstNonEmpty(r.Toets.Type, topic)
	}
	if r.Week > 0 {
		return fmt.Sprintf("Week %d: %s", r.Week, topic)
	}
	return topic
}

func rowDescription(r model.DocRow) string {
	var b strings.Builder
	add := func(label, value string) {
		if value == "" {
			return
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(label + ": " + value)
	}
	add("Onderwerp", r.Onderwerp)
	add("Leerdoelen", strings.Join(r.Leerdoelen, "; "))
	add("Huiswerk", r.Huiswerk)
	add("Opdracht", r.Opdracht)
	add("Toets", toetsLabel(r.Toets))
	add("Bronnen", bronnenLabel(r.Bronnen))
	add("Notities", r.Notities)
	return b.String()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
