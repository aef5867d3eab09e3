package revenue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatINR(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "₹0"},
		{999, "₹999"},
		{1000, "₹1,000"},
		{123456, "₹1,23,456"},
		{1234567, "₹12,34,567"},
		{12345678, "₹1,23,45,678"},
		{-45000, "-₹45,000"},
		{1500.4, "₹1,500"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatINR(tc.in))
	}
}

func TestCompactINR(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "₹0"},
		{999, "₹999"},
		{1000, "₹1K"},
		{2500, "₹2.5K"},
		{99999, "₹100K"},
		{100000, "₹1L"},
		{150000, "₹1.5L"},
		{1250000, "₹12.5L"},
		{-2500, "-₹2.5K"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CompactINR(tc.in))
	}
}
