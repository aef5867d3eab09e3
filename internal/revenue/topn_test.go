package revenue

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paidTx(tutorID, courseID string, amount float64, day string) Transaction {
	return Transaction{
		TutorID:     tutorID,
		TutorName:   "Tutor " + tutorID,
		CourseID:    courseID,
		CourseTitle: "Course " + courseID,
		Amount:      amount,
		Status:      StatusPaid,
		PaymentDate: day,
	}
}

func TestTopTutorsTruncationAndTies(t *testing.T) {
	iv := juneInterval()
	txns := []Transaction{
		paidTx("T1", "C1", 500, "2025-06-01"),
		paidTx("T2", "C1", 900, "2025-06-02"),
		paidTx("T3", "C1", 100, "2025-06-03"),
		paidTx("T4", "C1", 900, "2025-06-04"),
		paidTx("T5", "C1", 300, "2025-06-05"),
	}

	rows := TopTutors(txns, iv, nil)

	require.Len(t, rows, 3)
	// Ties at 900 keep snapshot order (T2 before T4), both ahead of the 500.
	assert.Equal(t, "T2", rows[0].TutorID)
	assert.Equal(t, "T4", rows[1].TutorID)
	assert.Equal(t, "T1", rows[2].TutorID)
}

func TestTopTutorsNeverExceedsLimit(t *testing.T) {
	var txns []Transaction
	for _, id := range []string{"A", "B", "C", "D", "E", "F", "G", "H"} {
		txns = append(txns, paidTx(id, "C1", 100, "2025-06-10"))
	}

	rows := TopTutors(txns, juneInterval(), nil)

	assert.LessOrEqual(t, len(rows), TopLimit)
}

func TestTopTutorsIgnoresUnpaidAndOutOfPeriod(t *testing.T) {
	txns := []Transaction{
		paidTx("T1", "C1", 500, "2025-06-01"),
		{TutorID: "T2", CourseID: "C1", Amount: 900.0, Status: StatusPending, PaymentDate: "2025-06-02"},
		paidTx("T3", "C1", 900, "2025-07-01"), // next period
	}

	rows := TopTutors(txns, juneInterval(), nil)

	require.Len(t, rows, 1)
	assert.Equal(t, "T1", rows[0].TutorID)
}

func TestTopTutorsGroupsAcrossTransactions(t *testing.T) {
	txns := []Transaction{
		paidTx("T1", "C1", 400, "2025-06-01"),
		paidTx("T1", "C2", 350, "2025-06-15"),
	}

	rows := TopTutors(txns, juneInterval(), nil)

	require.Len(t, rows, 1)
	assert.Equal(t, 750.0, rows[0].Revenue)
}

func TestTopTutorsRosterEnrichment(t *testing.T) {
	txns := []Transaction{paidTx("T1", "C1", 500, "2025-06-01")}

	roster := func(tutorID string) (int, error) {
		assert.Equal(t, "T1", tutorID)
		return 12, nil
	}
	rows := TopTutors(txns, juneInterval(), roster)
	require.Len(t, rows, 1)
	assert.Equal(t, 12, rows[0].StudentCount)
}

func TestTopTutorsRosterFailureDegradesToZero(t *testing.T) {
	txns := []Transaction{paidTx("T1", "C1", 500, "2025-06-01")}

	roster := func(string) (int, error) { return 0, errors.New("roster unavailable") }
	rows := TopTutors(txns, juneInterval(), roster)

	require.Len(t, rows, 1)
	assert.Zero(t, rows[0].StudentCount)
}

func TestTopCoursesEnrollmentCountsPaidTransactions(t *testing.T) {
	txns := []Transaction{
		paidTx("T1", "C1", 400, "2025-06-01"),
		paidTx("T2", "C1", 400, "2025-06-02"),
		// Same student paying twice in the period counts as two enrollments.
		paidTx("T1", "C2", 900, "2025-06-03"),
		{CourseID: "C2", Amount: 100.0, Status: StatusPending, PaymentDate: "2025-06-04"},
	}

	rows := TopCourses(txns, juneInterval())

	require.Len(t, rows, 2)
	assert.Equal(t, "C2", rows[0].CourseID)
	assert.Equal(t, 900.0, rows[0].Revenue)
	assert.Equal(t, 1, rows[0].EnrollmentCount)
	assert.Equal(t, "C1", rows[1].CourseID)
	assert.Equal(t, 800.0, rows[1].Revenue)
	assert.Equal(t, 2, rows[1].EnrollmentCount)
}

func TestTopAggregatorsEmptyInput(t *testing.T) {
	assert.Empty(t, TopTutors(nil, juneInterval(), nil))
	assert.Empty(t, TopCourses(nil, juneInterval()))
}
