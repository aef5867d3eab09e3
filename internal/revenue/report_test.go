package revenue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mirrors the dashboard's standard scenario: one paid and one pending payment
// for the same course inside the current month.
func TestBuildReportThisMonth(t *testing.T) {
	now := time.Date(2025, 6, 18, 12, 0, 0, 0, time.UTC)
	txns := []Transaction{
		{
			TransactionID: "tx-1", TutorID: "T1", TutorName: "Asha Verma",
			CourseID: "C1", CourseTitle: "Algebra Basics",
			Amount: 1000.0, Commission: 150.0, Status: StatusPaid,
			PaymentDate: "2025-06-05T09:00:00Z",
		},
		{
			TransactionID: "tx-2", TutorID: "T2", TutorName: "Rahul Nair",
			CourseID: "C1", CourseTitle: "Algebra Basics",
			Amount: 500.0, Commission: 75.0, Status: StatusPending,
			PaymentDate: "2025-06-10T09:00:00Z",
		},
	}

	roster := func(tutorID string) (int, error) { return 8, nil }
	report := BuildReport(txns, SelectorMonth, nil, now, roster)

	assert.Equal(t, SelectorMonth, report.Period)
	assert.Equal(t, "June 2025", report.Label)

	assert.Equal(t, 1500.0, report.Current.TotalRevenue)
	assert.Equal(t, 1000.0, report.Current.CollectedRevenue)
	assert.Equal(t, 500.0, report.Current.PendingRevenue)
	assert.Equal(t, 150.0, report.Current.Commission)
	assert.InDelta(t, 66.67, report.Current.CollectionRate, 0.01)

	// May is empty, so both changes read as fresh growth.
	require.NotNil(t, report.RevenueChange)
	assert.Equal(t, 100.0, *report.RevenueChange)
	require.NotNil(t, report.PendingChange)
	assert.Equal(t, 100.0, *report.PendingChange)

	// Only the paid transaction feeds the leaderboards.
	require.Len(t, report.TopCourses, 1)
	assert.Equal(t, "C1", report.TopCourses[0].CourseID)
	assert.Equal(t, 1000.0, report.TopCourses[0].Revenue)
	assert.Equal(t, 1, report.TopCourses[0].EnrollmentCount)

	require.Len(t, report.TopTutors, 1)
	assert.Equal(t, "T1", report.TopTutors[0].TutorID)
	assert.Equal(t, 8, report.TopTutors[0].StudentCount)
}

func TestBuildReportIsPure(t *testing.T) {
	now := time.Date(2025, 6, 18, 12, 0, 0, 0, time.UTC)
	txns := []Transaction{
		{TutorID: "T1", CourseID: "C1", Amount: 1000.0, Status: StatusPaid, PaymentDate: "2025-06-05"},
	}

	first := BuildReport(txns, SelectorMonth, nil, now, nil)
	second := BuildReport(txns, SelectorMonth, nil, now, nil)

	assert.Equal(t, first, second, "same inputs must always produce the same report")
}

func TestBuildReportComparesAgainstPreviousPeriod(t *testing.T) {
	now := time.Date(2025, 6, 18, 12, 0, 0, 0, time.UTC)
	txns := []Transaction{
		{CourseID: "C1", Amount: 1500.0, Status: StatusPaid, PaymentDate: "2025-06-05"},
		{CourseID: "C1", Amount: 1000.0, Status: StatusPaid, PaymentDate: "2025-05-20"},
		{CourseID: "C1", Amount: 200.0, Status: StatusPending, PaymentDate: "2025-05-21"},
	}

	report := BuildReport(txns, SelectorMonth, nil, now, nil)

	assert.Equal(t, 1200.0, report.Previous.TotalRevenue)
	require.NotNil(t, report.RevenueChange)
	assert.InDelta(t, 25.0, *report.RevenueChange, 1e-9)

	require.NotNil(t, report.PendingChange)
	assert.Equal(t, -100.0, *report.PendingChange, "pending cleared since last month")
}

func TestBuildReportNormalizesSelector(t *testing.T) {
	now := time.Date(2025, 6, 18, 12, 0, 0, 0, time.UTC)

	report := BuildReport(nil, Selector("Fortnight"), nil, now, nil)
	assert.Equal(t, SelectorMonth, report.Period)

	report = BuildReport(nil, SelectorCustom, &CustomRange{}, now, nil)
	assert.Equal(t, SelectorMonth, report.Period)
}

func TestBuildReportEmptySnapshot(t *testing.T) {
	report := BuildReport(nil, SelectorMonth, nil, time.Now(), nil)

	assert.Zero(t, report.Current.TotalRevenue)
	assert.Nil(t, report.RevenueChange)
	assert.Nil(t, report.PendingChange)
	assert.Empty(t, report.TopTutors)
	assert.Empty(t, report.TopCourses)
}
