// upkraft-crm/internal/revenue/report.go
package revenue

import "time"

// Report is everything the revenue dashboard renders for one period selection.
type Report struct {
	Period        Selector       `json:"period"`
	Label         string         `json:"label"`
	Current       Summary        `json:"current"`
	Previous      Summary        `json:"previous"`
	RevenueChange *float64       `json:"revenueChange"`
	PendingChange *float64       `json:"pendingChange"`
	TopTutors     []TutorRevenue `json:"topTutors"`
	TopCourses    []CourseRevenue `json:"topCourses"`
}

// Normalize maps unknown selectors and custom selections without a usable
// range to This Month, the dashboard's default view.
func Normalize(sel Selector, custom *CustomRange) Selector {
	switch sel {
	case SelectorToday, SelectorWeek, SelectorMonth, SelectorQuarter, SelectorYear:
		return sel
	case SelectorCustom:
		if custom.Valid() {
			return SelectorCustom
		}
		return SelectorMonth
	default:
		return SelectorMonth
	}
}

// BuildReport is the engine's single entry point: a pure function of the
// snapshot, the period selection and the reference clock. The roster lookup is
// only consulted for the top-tutor rows and may be nil.
func BuildReport(txns []Transaction, sel Selector, custom *CustomRange, now time.Time, roster RosterLookup) Report {
	sel = Normalize(sel, custom)
	current, previous := Resolve(sel, custom, now)

	cur := Summarize(txns, current)
	prev := Summarize(txns, previous)

	return Report{
		Period:        sel,
		Label:         Label(sel, current),
		Current:       cur,
		Previous:      prev,
		RevenueChange: RevenueChange(cur.TotalRevenue, prev.TotalRevenue),
		PendingChange: PendingChange(cur.PendingRevenue, prev.PendingRevenue),
		TopTutors:     TopTutors(txns, current, roster),
		TopCourses:    TopCourses(txns, current),
	}
}
