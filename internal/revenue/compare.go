// upkraft-crm/internal/revenue/compare.go
package revenue

// RevenueChange computes the percentage change of revenue against the
// previous period. A zero previous with positive current reads as +100; with
// both periods at zero there is no comparison and the result is nil.
func RevenueChange(current, previous float64) *float64 {
	switch {
	case previous > 0:
		return ptr((current - previous) / previous * 100)
	case current > 0:
		return ptr(100)
	default:
		return nil
	}
}

// PendingChange computes the percentage change of pending collections. Unlike
// RevenueChange it also maps "previous pending cleared to zero" to -100; the
// two metrics intentionally disagree here to match the dashboard's historical
// behavior (see DESIGN.md).
func PendingChange(current, previous float64) *float64 {
	switch {
	case previous > 0 && current == 0:
		return ptr(-100)
	case previous > 0:
		return ptr((current - previous) / previous * 100)
	case current > 0:
		return ptr(100)
	default:
		return nil
	}
}

func ptr(f float64) *float64 { return &f }
