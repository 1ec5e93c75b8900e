package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAddDays(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, base.Add(36*time.Hour), AddDays(base, 1.5))
	assert.Equal(t, base.Add(-24*time.Hour), AddDays(base, -1))
}

func TestDaysBetween(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.InDelta(t, 3.5, DaysBetween(base, base.Add(84*time.Hour)), 1e-12)
	assert.InDelta(t, -2.0, DaysBetween(base, base.Add(-48*time.Hour)), 1e-12)
}

func TestFormatDay(t *testing.T) {
	assert.Equal(t, "Wed, 01 Jan 2025", FormatDay(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)))
}
