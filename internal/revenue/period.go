// upkraft-crm/internal/revenue/period.go
package revenue

import (
	"fmt"
	"time"
)

// Selector names a reporting period on the revenue dashboard.
type Selector string

const (
	SelectorToday   Selector = "Today"
	SelectorWeek    Selector = "This Week"
	SelectorMonth   Selector = "This Month"
	SelectorQuarter Selector = "This Quarter"
	SelectorYear    Selector = "This Year"
	SelectorCustom  Selector = "Custom"
)

// CustomRange is an explicit calendar date range, both ends inclusive.
type CustomRange struct {
	StartDate time.Time
	EndDate   time.Time
}

// Valid reports whether the range can be used as a custom period.
func (r *CustomRange) Valid() bool {
	if r == nil || r.StartDate.IsZero() || r.EndDate.IsZero() {
		return false
	}
	return !dayStart(r.EndDate).Before(dayStart(r.StartDate))
}

// Interval is a time window. Named periods are half-open [Start, End);
// custom periods keep the end instant (23:59:59.999) inside the window.
type Interval struct {
	Start     time.Time
	End       time.Time
	ClosedEnd bool
}

// Contains reports whether t falls inside the interval.
func (iv Interval) Contains(t time.Time) bool {
	if t.Before(iv.Start) {
		return false
	}
	if iv.ClosedEnd {
		return !t.After(iv.End)
	}
	return t.Before(iv.End)
}

// Duration returns the window length.
func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// Resolve maps a period selector to the current interval and the immediately
// preceding comparison interval. Named selectors use calendar-aligned previous
// periods (previous day, Sunday-based previous week, previous month/quarter/year);
// a custom range compares against the equal-length block ending the day before
// its start. Unknown selectors and unusable custom ranges degrade to This Month.
func Resolve(sel Selector, custom *CustomRange, now time.Time) (current, previous Interval) {
	switch sel {
	case SelectorToday:
		start := dayStart(now)
		current = Interval{Start: start, End: start.AddDate(0, 0, 1)}
		previous = Interval{Start: start.AddDate(0, 0, -1), End: start}

	case SelectorWeek:
		// The dashboard week starts on Sunday.
		start := dayStart(now).AddDate(0, 0, -int(now.Weekday()))
		current = Interval{Start: start, End: start.AddDate(0, 0, 7)}
		previous = Interval{Start: start.AddDate(0, 0, -7), End: start}

	case SelectorQuarter:
		q := (int(now.Month()) - 1) / 3
		start := time.Date(now.Year(), time.Month(q*3+1), 1, 0, 0, 0, 0, now.Location())
		current = Interval{Start: start, End: start.AddDate(0, 3, 0)}
		previous = Interval{Start: start.AddDate(0, -3, 0), End: start}

	case SelectorYear:
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		current = Interval{Start: start, End: start.AddDate(1, 0, 0)}
		previous = Interval{Start: start.AddDate(-1, 0, 0), End: start}

	case SelectorCustom:
		if !custom.Valid() {
			return monthIntervals(now)
		}
		start := dayStart(custom.StartDate)
		endDay := dayStart(custom.EndDate)
		end := endDay.AddDate(0, 0, 1).Add(-time.Millisecond)
		current = Interval{Start: start, End: end, ClosedEnd: true}

		days := daysBetween(start, endDay) + 1
		previous = Interval{
			Start:     start.AddDate(0, 0, -days),
			End:       start.Add(-time.Millisecond),
			ClosedEnd: true,
		}

	case SelectorMonth:
		return monthIntervals(now)

	default:
		return monthIntervals(now)
	}
	return current, previous
}

// Label renders a human-readable name for the resolved period. Display only.
func Label(sel Selector, current Interval) string {
	switch sel {
	case SelectorToday:
		return current.Start.Format("2 Jan 2006")
	case SelectorWeek:
		return fmt.Sprintf("Week of %s", current.Start.Format("2 Jan 2006"))
	case SelectorQuarter:
		q := (int(current.Start.Month())-1)/3 + 1
		return fmt.Sprintf("Q%d %d", q, current.Start.Year())
	case SelectorYear:
		return current.Start.Format("2006")
	case SelectorCustom:
		return fmt.Sprintf("%s – %s",
			current.Start.Format("2 Jan 2006"), current.End.Format("2 Jan 2006"))
	default:
		return current.Start.Format("January 2006")
	}
}

func monthIntervals(now time.Time) (current, previous Interval) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	current = Interval{Start: start, End: start.AddDate(0, 1, 0)}
	previous = Interval{Start: start.AddDate(0, -1, 0), End: start}
	return current, previous
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysBetween counts calendar days from a to b, both at midnight. The count
// uses the date components only, so a DST transition inside the range does not
// shorten it.
func daysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au) / (24 * time.Hour))
}
