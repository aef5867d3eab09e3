// upkraft-crm/internal/revenue/format.go
package revenue

import (
	"fmt"
	"math"
	"strings"
)

// FormatINR renders an amount with en-IN digit grouping: the last three digits
// form one group, every group above that has two (12,34,567).
func FormatINR(v float64) string {
	neg := v < 0
	whole := int64(math.Round(math.Abs(v)))

	digits := fmt.Sprintf("%d", whole)
	grouped := groupIndian(digits)
	if neg {
		return "-₹" + grouped
	}
	return "₹" + grouped
}

// CompactINR compacts an amount the way the dashboard cards do: lakhs from
// 1,00,000 up and thousands from 1,000 up, one decimal place, trailing ".0"
// dropped.
func CompactINR(v float64) string {
	abs := math.Abs(v)
	sign := ""
	if v < 0 {
		sign = "-"
	}

	switch {
	case abs >= 100000:
		return sign + "₹" + trimZero(fmt.Sprintf("%.1f", abs/100000)) + "L"
	case abs >= 1000:
		return sign + "₹" + trimZero(fmt.Sprintf("%.1f", abs/1000)) + "K"
	default:
		return sign + "₹" + trimZero(fmt.Sprintf("%.1f", abs))
	}
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(groups, ",") + "," + tail
}

func trimZero(s string) string {
	return strings.TrimSuffix(s, ".0")
}
