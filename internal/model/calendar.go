package model

import (
	"sort"
	"time"
)

// Calendar answers work-day questions for the schedule: which weekdays are
// worked, and which specific dates are exceptions (holidays, shutdowns) that
// are never worked regardless of weekday.
type Calendar struct {
	workingDays map[time.Weekday]bool
	exceptions  map[string]string // ISO date -> reason
}

// NewCalendar builds a calendar from a working-weekday list and an exception
// map. An empty weekday list falls back to Monday through Friday so that
// work-day arithmetic can never loop forever.
func NewCalendar(days []time.Weekday, exceptions map[string]string) *Calendar {
	c := &Calendar{
		workingDays: make(map[time.Weekday]bool, len(days)),
		exceptions:  make(map[string]string, len(exceptions)),
	}
	for _, d := range days {
		c.workingDays[d] = true
	}
	if len(c.workingDays) == 0 {
		for d := time.Monday; d <= time.Friday; d++ {
			c.workingDays[d] = true
		}
	}
	for k, v := range exceptions {
		c.exceptions[k] = v
	}
	return c
}

// DefaultCalendar returns a Monday-Friday calendar with no exceptions.
func DefaultCalendar() *Calendar {
	return NewCalendar(nil, nil)
}

// IsWorkDay reports whether date is a working day: its weekday is worked and
// the date is not an exception.
func (c *Calendar) IsWorkDay(date time.Time) bool {
	if !c.workingDays[date.Weekday()] {
		return false
	}
	_, holiday := c.exceptions[date.Format(ISODate)]
	return !holiday
}

// AddWorkDays steps n work days from date, skipping non-work days. The sign
// of n sets the direction; n == 0 returns date unchanged. The given date
// itself is not counted.
func (c *Calendar) AddWorkDays(date time.Time, n int) time.Time {
	if n == 0 {
		return date
	}
	step := 1
	if n < 0 {
		step = -1
		n = -n
	}
	d := date
	for n > 0 {
		d = d.AddDate(0, 0, step)
		if c.IsWorkDay(d) {
			n--
		}
	}
	return d
}

// CalcWorkDays returns the signed work-day offset from a to b, defined so
// that AddWorkDays(a, CalcWorkDays(a, b)) == b whenever b is a work day.
// A later b is positive, an earlier b negative, and CalcWorkDays(a, a) == 0.
func (c *Calendar) CalcWorkDays(a, b time.Time) int {
	if a.Equal(b) {
		return 0
	}
	sign := 1
	lo, hi := a, b
	if b.Before(a) {
		sign = -1
		lo, hi = b, a
	}
	n := 0
	for d := lo.AddDate(0, 0, 1); !d.After(hi); d = d.AddDate(0, 0, 1) {
		if c.IsWorkDay(d) {
			n++
		}
	}
	if sign < 0 {
		// Counting backwards lands on lo, so count lo instead of hi.
		if c.IsWorkDay(hi) {
			n--
		}
		if c.IsWorkDay(lo) {
			n++
		}
	}
	return sign * n
}

// NextWorkDay returns date if it is a work day, otherwise the next one.
func (c *Calendar) NextWorkDay(date time.Time) time.Time {
	d := date
	for !c.IsWorkDay(d) {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// WorkingDays returns the worked weekdays in ascending order.
func (c *Calendar) WorkingDays() []time.Weekday {
	days := make([]time.Weekday, 0, len(c.workingDays))
	for d := range c.workingDays {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
	return days
}

// Exceptions returns a copy of the exception map.
func (c *Calendar) Exceptions() map[string]string {
	out := make(map[string]string, len(c.exceptions))
	for k, v := range c.exceptions {
		out[k] = v
	}
	return out
}
