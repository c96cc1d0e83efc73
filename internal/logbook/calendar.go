package logbook

import (
	"time"
)

// DateLayout is the DD-MM-YYYY form used by date headers.
const DateLayout = "02-01-2006"

// Label formats the column heading for a date, e.g. "Mon 01-01-2024".
func Label(date time.Time) string {
	return date.Format("Mon " + DateLayout)
}

// ParseDate converts a date header into a calendar date at UTC midnight.
func ParseDate(token string) (time.Time, error) {
	date, err := time.Parse(DateLayout, token)
	if err != nil {
		return time.Time{}, &MalformedDateError{Token: token, Err: err}
	}
	return date, nil
}

// Normalize expands the log into every calendar day between its earliest and
// latest dates, inclusive and ascending. Days absent from the log get no intervals.
// Any header that is not a real date fails the whole run.
func Normalize(log *DayLog) (Calendar, error) {
	if log.Len() == 0 {
		return Calendar{}, nil
	}

	var first, last time.Time
	for i, rec := range log.records {
		date, err := ParseDate(rec.Date)
		if err != nil {
			return nil, err
		}
		if i == 0 || date.Before(first) {
			first = date
		}
		if i == 0 || date.After(last) {
			last = date
		}
	}

	cal := make(Calendar, 0, daysBetween(first, last)+1)
	for date := first; !date.After(last); date = date.AddDate(0, 0, 1) {
		intervals, ok := log.Intervals(date.Format(DateLayout))
		if !ok {
			intervals = []Interval{}
		}
		cal = append(cal, Day{
			Date:      date,
			Label:     Label(date),
			Intervals: intervals,
		})
	}
	return cal, nil
}

func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

// Span returns the first and last dates covered. Both are zero for an empty calendar.
func (c Calendar) Span() (time.Time, time.Time) {
	if len(c) == 0 {
		return time.Time{}, time.Time{}
	}
	return c[0].Date, c[len(c)-1].Date
}

// TotalMinutes sums logged minutes across every day.
func (c Calendar) TotalMinutes() int {
	total := 0
	for _, day := range c {
		total += day.Minutes()
	}
	return total
}

// Between keeps the days within [from, to]. A zero bound is open.
func (c Calendar) Between(from, to time.Time) Calendar {
	out := Calendar{}
	for _, day := range c {
		if !from.IsZero() && day.Date.Before(from) {
			continue
		}
		if !to.IsZero() && day.Date.After(to) {
			continue
		}
		out = append(out, day)
	}
	return out
}

// WeekSummary aggregates the days of one ISO week.
type WeekSummary struct {
	Year    int   `json:"year"`
	Week    int   `json:"week"`
	Days    []Day `json:"days"`
	Minutes int   `json:"minutes"`
}

// Weeks groups consecutive days by ISO week. The first and last weeks may be partial.
func (c Calendar) Weeks() []WeekSummary {
	var weeks []WeekSummary
	for _, day := range c {
		year, week := day.Date.ISOWeek()
		if n := len(weeks); n == 0 || weeks[n-1].Year != year || weeks[n-1].Week != week {
			weeks = append(weeks, WeekSummary{Year: year, Week: week})
		}
		w := &weeks[len(weeks)-1]
		w.Days = append(w.Days, day)
		w.Minutes += day.Minutes()
	}
	return weeks
}
