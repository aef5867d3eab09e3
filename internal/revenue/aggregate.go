// upkraft-crm/internal/revenue/aggregate.go
package revenue

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// Payment statuses recognized by the reducer. The status column is an open
// string enum: anything else still counts toward total revenue but lands in
// neither the collected nor the pending bucket.
const (
	StatusPaid    = "Paid"
	StatusPending = "Pending"
	StatusFailed  = "Failed"
)

// Transaction is one row of the snapshot the engine aggregates over. Amount and
// Commission are deliberately loose-typed: snapshots arrive as JSON from the
// transaction source and occasionally carry garbage, which must coerce to zero
// instead of failing the whole report. An unparseable PaymentDate drops the row
// from every time-bucketed aggregate.
type Transaction struct {
	TransactionID string `json:"transactionId"`
	StudentID     string `json:"studentId"`
	TutorID       string `json:"tutorId,omitempty"`
	CourseID      string `json:"courseId"`
	StudentName   string `json:"studentName"`
	TutorName     string `json:"tutorName"`
	CourseTitle   string `json:"courseTitle"`
	Amount        any    `json:"amount"`
	Commission    any    `json:"commission"`
	Status        string `json:"status"`
	PaymentMethod string `json:"paymentMethod"`
	PaymentDate   string `json:"paymentDate"`
	ValidUpto     string `json:"validUpto,omitempty"`
	IsManualEntry bool   `json:"isManualEntry"`
}

// Summary holds the reduced figures for one interval.
type Summary struct {
	TotalRevenue     float64 `json:"totalRevenue"`
	CollectedRevenue float64 `json:"collectedRevenue"`
	PendingRevenue   float64 `json:"pendingRevenue"`
	Commission       float64 `json:"commission"`
	CollectionRate   float64 `json:"collectionRate"`
	TransactionCount int     `json:"transactionCount"`
}

// Summarize reduces the snapshot over one interval. Pure: same inputs, same
// output, no accumulation between calls.
func Summarize(txns []Transaction, iv Interval) Summary {
	var s Summary
	for _, tx := range txns {
		paidAt, ok := parsePaymentDate(tx.PaymentDate)
		if !ok || !iv.Contains(paidAt) {
			continue
		}

		amount := toNumber(tx.Amount)
		s.TotalRevenue += amount
		s.TransactionCount++

		switch tx.Status {
		case StatusPaid:
			s.CollectedRevenue += amount
			s.Commission += toNumber(tx.Commission)
		case StatusPending, StatusFailed:
			s.PendingRevenue += amount
		}
	}

	if s.TotalRevenue > 0 {
		s.CollectionRate = s.CollectedRevenue / s.TotalRevenue * 100
	}
	return s
}

// ParsePaymentDate exposes the lenient timestamp parsing the reducers use, for
// consumers that need to re-filter a snapshot (report export, receipts).
func ParsePaymentDate(s string) (time.Time, bool) {
	return parsePaymentDate(s)
}

// Amount returns the transaction amount coerced to a number.
func Amount(tx Transaction) float64 {
	return toNumber(tx.Amount)
}

// CommissionAmount returns the transaction commission coerced to a number.
func CommissionAmount(tx Transaction) float64 {
	return toNumber(tx.Commission)
}

var paymentDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parsePaymentDate parses the loosely formatted timestamps the transaction
// source emits. Layouts without an offset are read as UTC.
func parsePaymentDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range paymentDateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// toNumber coerces a loose JSON value to a finite float64, defaulting to 0.
func toNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		return finite(n)
	case float32:
		return finite(float64(n))
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return finite(f)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return finite(f)
	default:
		return 0
	}
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
