package cell

import "time"

// ISOWeek returns the ISO week of an ISO date string.
func ISOWeek(date string) (int, bool) {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return 0, false
	}
	_, w := d.ISOWeek()
	return w, true
}

// MondayOfWeek returns the Monday of ISO week `week` of `year`.
func MondayOfWeek(year, week int) time.Time {
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	offset := int(jan4.Weekday()+6) % 7
	monday := jan4.AddDate(0, 0, -offset)
	return monday.AddDate(0, 0, (week-1)*7)
}

// WeekYear returns the calendar year a school-year week falls in: weeks from
// 30 onward belong to the first year, earlier weeks to the second.
func WeekYear(week int, schooljaar string) int {
	if first, second, ok := SchoolYearBounds(schooljaar); ok {
		if week >= 30 {
			return first
		}
		return second
	}
	return time.Now().Year()
}

// WeekStart returns the Monday of a school-year week as an ISO date.
func WeekStart(week int, schooljaar string) string {
	return MondayOfWeek(WeekYear(week, schooljaar), week).Format(DateLayout)
}

// ShiftDate moves an ISO date by days. Invalid input is returned unchanged.
func ShiftDate(date string, days int) string {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return d.AddDate(0, 0, days).Format(DateLayout)
}

// DaysBetween returns b - a in days.
func DaysBetween(a, b string) (int, bool) {
	da, err1 := time.Parse(DateLayout, a)
	db, err2 := time.Parse(DateLayout, b)
	if err1 != nil || err2 != nil {
		return 0, false
	}
	return int(db.Sub(da).Hours() / 24), true
}
