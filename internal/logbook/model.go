package logbook

import (
	"encoding/json"
	"fmt"
	"time"
)

// MinutesPerDay bounds an Interval's minute offsets.
const MinutesPerDay = 24 * 60

// Interval is a span of minutes since midnight.
type Interval struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Minutes returns the interval length. Lenient parsing can yield negative values.
func (iv Interval) Minutes() int {
	return iv.End - iv.Start
}

// String renders the interval as HH:MM-HH:MM.
func (iv Interval) String() string {
	return fmt.Sprintf("%s-%s", clock(iv.Start), clock(iv.End))
}

func clock(minute int) string {
	if minute < 0 {
		return "-" + clock(-minute)
	}
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}

// DayRecord holds the intervals logged beneath one date header, in appearance order.
type DayRecord struct {
	Date      string
	Intervals []Interval
}

// DayLog is the parser output: date buckets in first-seen order.
type DayLog struct {
	records []DayRecord
	index   map[string]int
}

// NewDayLog returns an empty log.
func NewDayLog() *DayLog {
	return &DayLog{index: make(map[string]int)}
}

// open returns the bucket for date, creating it at the end when first seen.
func (l *DayLog) open(date string) *DayRecord {
	if i, ok := l.index[date]; ok {
		return &l.records[i]
	}
	l.index[date] = len(l.records)
	l.records = append(l.records, DayRecord{Date: date, Intervals: []Interval{}})
	return &l.records[len(l.records)-1]
}

// Add appends intervals to the bucket for date.
func (l *DayLog) Add(date string, intervals ...Interval) {
	rec := l.open(date)
	rec.Intervals = append(rec.Intervals, intervals...)
}

// Len reports the number of distinct date buckets.
func (l *DayLog) Len() int {
	if l == nil {
		return 0
	}
	return len(l.records)
}

// Dates lists date tokens in first-seen order.
func (l *DayLog) Dates() []string {
	if l == nil {
		return nil
	}
	dates := make([]string, 0, len(l.records))
	for _, rec := range l.records {
		dates = append(dates, rec.Date)
	}
	return dates
}

// Intervals returns the intervals logged for date.
func (l *DayLog) Intervals(date string) ([]Interval, bool) {
	if l == nil {
		return nil, false
	}
	i, ok := l.index[date]
	if !ok {
		return nil, false
	}
	return l.records[i].Intervals, true
}

// Day is one column of the normalized calendar.
type Day struct {
	Date      time.Time
	Label     string
	Intervals []Interval
}

// MarshalJSON encodes the date in DD-MM-YYYY form alongside the label.
func (d Day) MarshalJSON() ([]byte, error) {
	intervals := d.Intervals
	if intervals == nil {
		intervals = []Interval{}
	}
	return json.Marshal(struct {
		Date      string     `json:"date"`
		Label     string     `json:"label"`
		Minutes   int        `json:"minutes"`
		Intervals []Interval `json:"intervals"`
	}{
		Date:      d.Date.Format(DateLayout),
		Label:     d.Label,
		Minutes:   d.Minutes(),
		Intervals: intervals,
	})
}

// Minutes totals the logged minutes for the day.
func (d Day) Minutes() int {
	total := 0
	for _, iv := range d.Intervals {
		total += iv.Minutes()
	}
	return total
}

// Empty reports whether nothing was logged on the day.
func (d Day) Empty() bool {
	return len(d.Intervals) == 0
}

// Calendar is an ascending, gap-free sequence of days.
type Calendar []Day
