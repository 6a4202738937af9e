package header

import "github.com/tsawler/vlier/keywords"

// Field is a semantic schedule column.
type Field int

// Schedule fields.
const (
	FieldNone Field = iota
	FieldWeek
	FieldDate
	FieldLesson
	FieldSubject
	FieldObjective
	FieldHomework
	FieldAssignment
	FieldHandin
	FieldExam
	FieldResource
	FieldNote
	FieldClass
	FieldLocation
)

var fieldNames = map[Field]string{
	FieldNone:       "none",
	FieldWeek:       "week",
	FieldDate:       "date",
	FieldLesson:     "lesson",
	FieldSubject:    "subject",
	FieldObjective:  "objective",
	FieldHomework:   "homework",
	FieldAssignment: "assignment",
	FieldHandin:     "handin",
	FieldExam:       "exam",
	FieldResource:   "resource",
	FieldNote:       "note",
	FieldClass:      "class",
	FieldLocation:   "location",
}

// String returns the field name.
func (f Field) String() string {
	if s, ok := fieldNames[f]; ok {
		return s
	}
	return "unknown"
}

// priority is the order in which fields claim columns. Specific headers
// ("Inleverdatum") must be claimed before generic ones ("datum").
var priority = []Field{
	FieldWeek, FieldHandin, FieldDate, FieldExam, FieldHomework, FieldAssignment,
	FieldSubject, FieldLesson, FieldObjective, FieldResource, FieldNote, FieldClass, FieldLocation,
}

// Keywords returns the header keywords for f.
func Keywords(kw *keywords.Config, f Field) []string {
	switch f {
	case FieldWeek:
		return kw.Week
	case FieldDate:
		return kw.Date
	case FieldLesson:
		return kw.Lesson
	case FieldSubject:
		return kw.Subject
	case FieldObjective:
		return kw.Objective
	case FieldHomework:
		return kw.Homework
	case FieldAssignment:
		return kw.Assignment
	case FieldHandin:
		return kw.Handin
	case FieldExam:
		return kw.Exam
	case FieldResource:
		return kw.Resource
	case FieldNote:
		return kw.Note
	case FieldClass:
		return kw.Class
	case FieldLocation:
		return kw.Location
	}
	return nil
}

// Columns maps table columns to fields.
type Columns struct {
	Headers []string
	index   map[Field]int
	fields  []Field
}

// MapColumns assigns each field to the first unclaimed header matching its
// keywords. A combined week/date header may serve both fields.
func MapColumns(headers []string, kw *keywords.Config) Columns {
	if kw == nil {
		kw = keywords.Default()
	}
	c := Columns{
		Headers: headers,
		index:   make(map[Field]int),
		fields:  make([]Field, len(headers)),
	}

	for _, f := range priority {
		kws := Keywords(kw, f)
		for i, h := range headers {
			owner := c.fields[i]
			if owner != FieldNone && !(f == FieldDate && owner == FieldWeek) {
				continue
			}
			if _, ok := keywords.ContainsAny(h, kws); !ok {
				continue
			}
			c.index[f] = i
			if owner == FieldNone {
				c.fields[i] = f
			}
			break
		}
	}
	return c
}

// Index returns the column of f.
func (c Columns) Index(f Field) (int, bool) {
	i, ok := c.index[f]
	return i, ok
}

// FieldAt returns the field owning column i. A column shared by week and
// date reports FieldWeek.
func (c Columns) FieldAt(i int) Field {
	if i < 0 || i >= len(c.fields) {
		return FieldNone
	}
	return c.fields[i]
}

// Has reports whether f is mapped.
func (c Columns) Has(f Field) bool {
	_, ok := c.index[f]
	return ok
}

// Count returns the number of mapped fields.
func (c Columns) Count() int {
	return len(c.index)
}

// IsSchedule reports whether the columns describe a schedule table: a week
// or date column plus at least one other field.
func (c Columns) IsSchedule() bool {
	if !c.Has(FieldWeek) && !c.Has(FieldDate) {
		return false
	}
	other := 0
	for f := range c.index {
		if f != FieldWeek && f != FieldDate {
			other++
		}
	}
	return other > 0
}
