package kinetics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleDatesWeeklyOverFourWeeks(t *testing.T) {
	start := day(0)
	dates, truncated := ScheduleDates(start, 7, day(0), day(28))

	require.False(t, truncated)
	require.Len(t, dates, 5)
	for i, want := range []float64{0, 7, 14, 21, 28} {
		assert.Equal(t, day(want), dates[i])
	}
}

func TestScheduleDatesStrictlyIncreasingAndBounded(t *testing.T) {
	start := day(0)
	from, to := day(10), day(40)
	dates, truncated := ScheduleDates(start, 3.5, from, to)

	require.False(t, truncated)
	require.NotEmpty(t, dates)
	for i, d := range dates {
		assert.False(t, d.Before(from), "date %d before window start", i)
		assert.False(t, d.After(to), "date %d after window end", i)
		if i > 0 {
			assert.True(t, dates[i-1].Before(d), "dates not strictly increasing at %d", i)
		}
	}
}

func TestScheduleDatesNothingBeforeRegimenStart(t *testing.T) {
	start := day(10)
	dates, _ := ScheduleDates(start, 7, day(0), day(30))

	require.NotEmpty(t, dates)
	assert.Equal(t, start, dates[0])
	for _, d := range dates {
		assert.False(t, d.Before(start))
	}
}

func TestScheduleDatesSingleAdministration(t *testing.T) {
	start := day(5)

	dates, truncated := ScheduleDates(start, 0, day(0), day(30))
	require.False(t, truncated)
	require.Len(t, dates, 1)
	assert.Equal(t, start, dates[0])

	// Outside the window the single administration vanishes.
	dates, _ = ScheduleDates(start, 0, day(10), day(30))
	assert.Empty(t, dates)
}

func TestScheduleDatesInvertedWindow(t *testing.T) {
	dates, truncated := ScheduleDates(day(0), 7, day(20), day(10))
	assert.Empty(t, dates)
	assert.False(t, truncated)
}

func TestScheduleDatesTruncatesAtCap(t *testing.T) {
	// Dose every ~9 seconds over a year blows past the step cap.
	dates, truncated := ScheduleDates(day(0), 0.0001, day(0), day(365))
	assert.True(t, truncated)
	assert.Len(t, dates, maxScheduleSteps)
}

func TestScheduleDatesJumpsToWindow(t *testing.T) {
	// A regimen running for decades must still enumerate a recent window
	// without burning the step budget.
	start := day(0)
	from := start.AddDate(30, 0, 0)
	to := from.AddDate(0, 0, 28)

	dates, truncated := ScheduleDates(start, 7, from, to)
	require.False(t, truncated)
	assert.NotEmpty(t, dates)
	for i, d := range dates {
		assert.False(t, d.Before(from))
		assert.False(t, d.After(to))
		if i > 0 {
			// Float day arithmetic over decades loses sub-microsecond
			// precision, so compare with a tolerance.
			assert.InDelta(t, float64(7*24*time.Hour), float64(d.Sub(dates[i-1])), float64(time.Millisecond))
		}
	}
}
