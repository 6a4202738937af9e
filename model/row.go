package model

// Toets describes an assessment attached to a row.
type Toets struct {
	Type       string `json:"type,omitempty"`
	Weging     string `json:"weging,omitempty"`
	Herkansing string `json:"herkansing,omitempty"`
}

// IsZero reports whether no assessment field is set.
func (t *Toets) IsZero() bool {
	return t == nil || (t.Type == "" && t.Weging == "" && t.Herkansing == "")
}

// Resource types.
const (
	BronVideo     = "video"
	BronDocument  = "document"
	BronLink      = "link"
	BronMateriaal = "materiaal"
)

// Bron is a resource referenced by a row.
type Bron struct {
	Type  string `json:"type"`
	Title string `json:"title,omitempty"`
	URL   string `json:"url,omitempty"`
}

// DocRow is one schedule entry. Zero values mean "absent": week numbers are
// always in 1..53 and dates are ISO strings.
type DocRow struct {
	Week          int      `json:"week,omitempty"`
	Weeks         []int    `json:"weeks,omitempty"`
	WeekSpanStart int      `json:"week_span_start,omitempty"`
	WeekSpanEnd   int      `json:"week_span_end,omitempty"`
	WeekLabel     string   `json:"week_label,omitempty"`
	Datum         string   `json:"datum,omitempty"`
	DatumEind     string   `json:"datum_eind,omitempty"`
	Les           string   `json:"les,omitempty"`
	Onderwerp     string   `json:"onderwerp,omitempty"`
	Leerdoelen    []string `json:"leerdoelen,omitempty"`
	Huiswerk      string   `json:"huiswerk,omitempty"`
	Opdracht      string   `json:"opdracht,omitempty"`
	Inleverdatum  string   `json:"inleverdatum,omitempty"`
	Toets         *Toets   `json:"toets,omitempty"`
	Bronnen       []Bron   `json:"bronnen,omitempty"`
	Notities      string   `json:"notities,omitempty"`
	KlasOfGroep   string   `json:"klas_of_groep,omitempty"`
	Locatie       string   `json:"locatie,omitempty"`
	SourceRowID   string   `json:"source_row_id,omitempty"`
	Enabled       *bool    `json:"enabled"`
}

// IsEnabled reports whether the row is enabled. Rows without an explicit
// flag are enabled.
func (r DocRow) IsEnabled() bool {
	return r.Enabled == nil || *r.Enabled
}

// SetEnabled sets the enabled flag.
func (r *DocRow) SetEnabled(v bool) {
	r.Enabled = &v
}

// AllWeeks returns every week the row covers.
func (r DocRow) AllWeeks() []int {
	if len(r.Weeks) > 0 {
		return r.Weeks
	}
	if r.Week > 0 {
		return []int{r.Week}
	}
	return nil
}

// HasContent reports whether the row carries anything besides its week and
// date columns.
func (r DocRow) HasContent() bool {
	return r.Les != "" || r.Onderwerp != "" || len(r.Leerdoelen) > 0 ||
		r.Huiswerk != "" || r.Opdracht != "" || r.Inleverdatum != "" ||
		!r.Toets.IsZero() || len(r.Bronnen) > 0 || r.Notities != "" ||
		r.KlasOfGroep != "" || r.Locatie != ""
}

// RawEntry is the extractor-side form of a row.
type RawEntry struct {
	DocRow

	// IsHoliday is set when the row text names a holiday and the row has
	// no real homework or assignment content.
	IsHoliday bool

	// HolidayLabel is the text that triggered IsHoliday.
	HolidayLabel string
}

// Row converts the entry to an enabled DocRow. Holiday rows without a topic
// use the holiday label as topic.
func (e RawEntry) Row() DocRow {
	row := e.DocRow
	if e.IsHoliday && row.Onderwerp == "" {
		row.Onderwerp = e.HolidayLabel
	}
	if row.Enabled == nil {
		row.SetEnabled(true)
	}
	return row
}
