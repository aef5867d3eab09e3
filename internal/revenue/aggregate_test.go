package revenue

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func juneInterval() Interval {
	return Interval{Start: date(2025, 6, 1), End: date(2025, 7, 1)}
}

func TestSummarizeCollectionRate(t *testing.T) {
	txns := []Transaction{
		{Amount: 700.0, Status: StatusPaid, Commission: 105.0, PaymentDate: "2025-06-05T10:00:00Z"},
		{Amount: 300.0, Status: StatusPending, PaymentDate: "2025-06-10T10:00:00Z"},
	}

	s := Summarize(txns, juneInterval())

	assert.Equal(t, 1000.0, s.TotalRevenue)
	assert.Equal(t, 700.0, s.CollectedRevenue)
	assert.Equal(t, 300.0, s.PendingRevenue)
	assert.Equal(t, 70.0, s.CollectionRate)
	assert.Equal(t, 2, s.TransactionCount)
}

func TestSummarizeUnrecognizedStatus(t *testing.T) {
	txns := []Transaction{
		{Amount: 400.0, Status: "Refunded", PaymentDate: "2025-06-05"},
	}

	s := Summarize(txns, juneInterval())

	// Counts toward the total but toward neither bucket.
	assert.Equal(t, 400.0, s.TotalRevenue)
	assert.Zero(t, s.CollectedRevenue)
	assert.Zero(t, s.PendingRevenue)
}

func TestSummarizeFailedCountsAsPending(t *testing.T) {
	txns := []Transaction{
		{Amount: 250.0, Status: StatusFailed, PaymentDate: "2025-06-05"},
	}

	s := Summarize(txns, juneInterval())

	assert.Equal(t, 250.0, s.PendingRevenue)
}

func TestSummarizeSkipsUnparseableDates(t *testing.T) {
	txns := []Transaction{
		{Amount: 100.0, Status: StatusPaid, PaymentDate: ""},
		{Amount: 100.0, Status: StatusPaid, PaymentDate: "not-a-date"},
		{Amount: 100.0, Status: StatusPaid, PaymentDate: "2025-06-05"},
	}

	s := Summarize(txns, juneInterval())

	assert.Equal(t, 100.0, s.TotalRevenue)
	assert.Equal(t, 1, s.TransactionCount)
}

func TestSummarizeCoercesGarbageAmounts(t *testing.T) {
	txns := []Transaction{
		{Amount: "abc", Commission: "xyz", Status: StatusPaid, PaymentDate: "2025-06-05"},
		{Amount: nil, Status: StatusPending, PaymentDate: "2025-06-06"},
		{Amount: "500", Commission: "75", Status: StatusPaid, PaymentDate: "2025-06-07"},
	}

	s := Summarize(txns, juneInterval())

	assert.Equal(t, 500.0, s.TotalRevenue)
	assert.Equal(t, 500.0, s.CollectedRevenue)
	assert.Equal(t, 75.0, s.Commission)
	assert.False(t, math.IsNaN(s.TotalRevenue))
	assert.False(t, math.IsNaN(s.CollectionRate))
}

func TestSummarizeCommissionPaidOnly(t *testing.T) {
	txns := []Transaction{
		{Amount: 1000.0, Commission: 150.0, Status: StatusPaid, PaymentDate: "2025-06-05"},
		{Amount: 500.0, Commission: 75.0, Status: StatusPending, PaymentDate: "2025-06-10"},
	}

	s := Summarize(txns, juneInterval())

	assert.Equal(t, 150.0, s.Commission)
}

func TestSummarizeEmptyInput(t *testing.T) {
	s := Summarize(nil, juneInterval())

	assert.Zero(t, s.TotalRevenue)
	assert.Zero(t, s.CollectionRate)
	assert.Zero(t, s.TransactionCount)
}

func TestToNumber(t *testing.T) {
	cases := []struct {
		in   any
		want float64
	}{
		{750.5, 750.5},
		{"750.5", 750.5},
		{" 42 ", 42},
		{"abc", 0},
		{nil, 0},
		{true, 0},
		{math.NaN(), 0},
		{math.Inf(1), 0},
		{int64(12), 12},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, toNumber(tc.in))
	}
}

func TestParsePaymentDateLayouts(t *testing.T) {
	for _, in := range []string{
		"2025-06-05T10:00:00Z",
		"2025-06-05T10:00:00.000Z",
		"2025-06-05T10:00:00+05:30",
		"2025-06-05 10:00:00",
		"2025-06-05",
	} {
		parsed, ok := parsePaymentDate(in)
		assert.True(t, ok, in)
		assert.Equal(t, time.June, parsed.Month(), in)
	}

	for _, in := range []string{"", "   ", "05/06/2025", "garbage"} {
		_, ok := parsePaymentDate(in)
		assert.False(t, ok, in)
	}
}
