package revenue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveToday(t *testing.T) {
	now := time.Date(2025, 6, 18, 15, 30, 0, 0, time.UTC) // a Wednesday

	current, previous := Resolve(SelectorToday, nil, now)

	assert.Equal(t, date(2025, 6, 18), current.Start)
	assert.Equal(t, date(2025, 6, 19), current.End)
	assert.Equal(t, date(2025, 6, 17), previous.Start)
	assert.Equal(t, date(2025, 6, 18), previous.End)
}

func TestResolveWeekStartsSunday(t *testing.T) {
	now := time.Date(2025, 6, 18, 15, 30, 0, 0, time.UTC) // Wednesday

	current, previous := Resolve(SelectorWeek, nil, now)

	assert.Equal(t, date(2025, 6, 15), current.Start, "week must start on Sunday")
	assert.Equal(t, date(2025, 6, 22), current.End)
	assert.Equal(t, date(2025, 6, 8), previous.Start)
	assert.Equal(t, date(2025, 6, 15), previous.End)
}

func TestResolveWeekOnSunday(t *testing.T) {
	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC) // Sunday itself

	current, _ := Resolve(SelectorWeek, nil, now)

	assert.Equal(t, date(2025, 6, 15), current.Start)
}

func TestResolveMonthAndYearRollover(t *testing.T) {
	current, previous := Resolve(SelectorMonth, nil, time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC))

	assert.Equal(t, date(2025, 1, 1), current.Start)
	assert.Equal(t, date(2025, 2, 1), current.End)
	assert.Equal(t, date(2024, 12, 1), previous.Start, "previous month must roll into the prior year")
	assert.Equal(t, date(2025, 1, 1), previous.End)
}

func TestResolveQuarter(t *testing.T) {
	current, previous := Resolve(SelectorQuarter, nil, time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, date(2025, 4, 1), current.Start)
	assert.Equal(t, date(2025, 7, 1), current.End)
	assert.Equal(t, date(2025, 1, 1), previous.Start)

	// First quarter compares against Q4 of the previous year.
	current, previous = Resolve(SelectorQuarter, nil, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, date(2025, 1, 1), current.Start)
	assert.Equal(t, date(2024, 10, 1), previous.Start)
	assert.Equal(t, date(2025, 1, 1), previous.End)
}

func TestResolveYear(t *testing.T) {
	current, previous := Resolve(SelectorYear, nil, time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, date(2025, 1, 1), current.Start)
	assert.Equal(t, date(2026, 1, 1), current.End)
	assert.Equal(t, date(2024, 1, 1), previous.Start)
	assert.Equal(t, date(2025, 1, 1), previous.End)
}

func TestResolveCustomInclusiveEnd(t *testing.T) {
	custom := &CustomRange{StartDate: date(2025, 3, 10), EndDate: date(2025, 3, 12)}

	current, previous := Resolve(SelectorCustom, custom, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))

	require.True(t, current.ClosedEnd)
	assert.Equal(t, date(2025, 3, 10), current.Start)
	assert.Equal(t, date(2025, 3, 13).Add(-time.Millisecond), current.End)

	// The previous block has the same three-day length and ends the day
	// before the custom start, at 23:59:59.999.
	require.True(t, previous.ClosedEnd)
	assert.Equal(t, date(2025, 3, 7), previous.Start)
	assert.Equal(t, date(2025, 3, 10).Add(-time.Millisecond), previous.End)
}

func TestResolveCustomSingleDay(t *testing.T) {
	custom := &CustomRange{StartDate: date(2025, 3, 10), EndDate: date(2025, 3, 10)}

	current, previous := Resolve(SelectorCustom, custom, time.Now())

	assert.Equal(t, date(2025, 3, 10), current.Start)
	assert.Equal(t, date(2025, 3, 9), previous.Start)
}

func TestResolveCustomPreviousSpansDSTTransition(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// March 2025 loses an hour of wall-clock time (spring forward on 9 March);
	// the previous block must still go back a full 31 calendar days.
	custom := &CustomRange{
		StartDate: time.Date(2025, 3, 1, 0, 0, 0, 0, loc),
		EndDate:   time.Date(2025, 3, 31, 0, 0, 0, 0, loc),
	}
	_, previous := Resolve(SelectorCustom, custom, time.Date(2025, 4, 2, 0, 0, 0, 0, loc))

	assert.Equal(t, time.Date(2025, 1, 29, 0, 0, 0, 0, loc), previous.Start)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, loc).Add(-time.Millisecond), previous.End)
}

func TestResolveFallbacks(t *testing.T) {
	now := time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC)
	wantCurrent, wantPrevious := Resolve(SelectorMonth, nil, now)

	// Unknown selector.
	current, previous := Resolve(Selector("Fortnight"), nil, now)
	assert.Equal(t, wantCurrent, current)
	assert.Equal(t, wantPrevious, previous)

	// Custom without a usable range.
	current, previous = Resolve(SelectorCustom, nil, now)
	assert.Equal(t, wantCurrent, current)
	assert.Equal(t, wantPrevious, previous)

	inverted := &CustomRange{StartDate: date(2025, 3, 12), EndDate: date(2025, 3, 10)}
	current, _ = Resolve(SelectorCustom, inverted, now)
	assert.Equal(t, wantCurrent, current)
}

func TestIntervalHalfOpenAtMonthBoundary(t *testing.T) {
	current, _ := Resolve(SelectorMonth, nil, time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC))

	assert.True(t, current.Contains(date(2025, 6, 30)))
	assert.False(t, current.Contains(date(2025, 7, 1)), "first instant of next month is outside the month")
}

func TestCustomIntervalBoundaryInstants(t *testing.T) {
	custom := &CustomRange{StartDate: date(2025, 3, 10), EndDate: date(2025, 3, 12)}
	current, _ := Resolve(SelectorCustom, custom, time.Now())

	assert.True(t, current.Contains(time.Date(2025, 3, 12, 23, 59, 58, 0, time.UTC)))
	assert.False(t, current.Contains(date(2025, 3, 13)))
}

func TestLabels(t *testing.T) {
	now := time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		sel  Selector
		want string
	}{
		{SelectorToday, "18 Jun 2025"},
		{SelectorWeek, "Week of 15 Jun 2025"},
		{SelectorMonth, "June 2025"},
		{SelectorQuarter, "Q2 2025"},
		{SelectorYear, "2025"},
	}
	for _, tc := range cases {
		current, _ := Resolve(tc.sel, nil, now)
		assert.Equal(t, tc.want, Label(tc.sel, current), string(tc.sel))
	}
}
