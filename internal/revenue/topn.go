// upkraft-crm/internal/revenue/topn.go
package revenue

import "sort"

// TopLimit is how many rows the dashboard leaderboards show.
const TopLimit = 3

// TutorRevenue is one leaderboard row for the "top tutors" card.
type TutorRevenue struct {
	TutorID      string  `json:"tutorId"`
	TutorName    string  `json:"tutorName"`
	Revenue      float64 `json:"revenue"`
	StudentCount int     `json:"studentCount"`
}

// CourseRevenue is one leaderboard row for the "top courses" card.
// EnrollmentCount counts paid transactions, not distinct students: a student
// who pays twice for the same course within the period counts twice.
type CourseRevenue struct {
	CourseID        string  `json:"courseId"`
	CourseTitle     string  `json:"courseTitle"`
	Revenue         float64 `json:"revenue"`
	EnrollmentCount int     `json:"enrollmentCount"`
}

// RosterLookup resolves a tutor's current student count. Failures degrade to 0
// for the affected row; they never abort the leaderboard.
type RosterLookup func(tutorID string) (int, error)

// TopTutors ranks tutors by paid revenue inside the interval. Ties keep the
// order tutors first appear in the snapshot (stable sort).
func TopTutors(txns []Transaction, iv Interval, roster RosterLookup) []TutorRevenue {
	var order []string
	sums := make(map[string]*TutorRevenue)

	for _, tx := range txns {
		if tx.Status != StatusPaid || tx.TutorID == "" {
			continue
		}
		paidAt, ok := parsePaymentDate(tx.PaymentDate)
		if !ok || !iv.Contains(paidAt) {
			continue
		}

		row, seen := sums[tx.TutorID]
		if !seen {
			row = &TutorRevenue{TutorID: tx.TutorID, TutorName: tx.TutorName}
			sums[tx.TutorID] = row
			order = append(order, tx.TutorID)
		}
		row.Revenue += toNumber(tx.Amount)
	}

	rows := make([]TutorRevenue, 0, len(order))
	for _, id := range order {
		rows = append(rows, *sums[id])
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Revenue > rows[j].Revenue })
	if len(rows) > TopLimit {
		rows = rows[:TopLimit]
	}

	if roster != nil {
		for i := range rows {
			count, err := roster(rows[i].TutorID)
			if err != nil {
				count = 0
			}
			rows[i].StudentCount = count
		}
	}
	return rows
}

// TopCourses ranks courses by paid revenue inside the interval, with the same
// stable ordering and truncation as TopTutors.
func TopCourses(txns []Transaction, iv Interval) []CourseRevenue {
	var order []string
	sums := make(map[string]*CourseRevenue)

	for _, tx := range txns {
		if tx.Status != StatusPaid || tx.CourseID == "" {
			continue
		}
		paidAt, ok := parsePaymentDate(tx.PaymentDate)
		if !ok || !iv.Contains(paidAt) {
			continue
		}

		row, seen := sums[tx.CourseID]
		if !seen {
			row = &CourseRevenue{CourseID: tx.CourseID, CourseTitle: tx.CourseTitle}
			sums[tx.CourseID] = row
			order = append(order, tx.CourseID)
		}
		row.Revenue += toNumber(tx.Amount)
		row.EnrollmentCount++
	}

	rows := make([]CourseRevenue, 0, len(order))
	for _, id := range order {
		rows = append(rows, *sums[id])
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Revenue > rows[j].Revenue })
	if len(rows) > TopLimit {
		rows = rows[:TopLimit]
	}
	return rows
}
