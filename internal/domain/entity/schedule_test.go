package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombineDateTime(t *testing.T) {
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	combined, err := CombineDateTime(date, "09:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC), combined)
}

func TestCombineDateTimeZeroesSeconds(t *testing.T) {
	// The date side may carry a time component; only Y-M-D survives.
	date := time.Date(2026, 3, 14, 23, 59, 58, 123, time.UTC)

	combined, err := CombineDateTime(date, "14:00")
	require.NoError(t, err)
	assert.Equal(t, 0, combined.Second())
	assert.Equal(t, 0, combined.Nanosecond())
	assert.Equal(t, 14, combined.Hour())
	assert.Equal(t, 0, combined.Minute())
}

func TestCombineDateTimeSameSlotCollides(t *testing.T) {
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	a, err := CombineDateTime(date, "10:00")
	require.NoError(t, err)
	b, err := CombineDateTime(date, "10:00")
	require.NoError(t, err)
	assert.True(t, a.Equal(b))

	c, err := CombineDateTime(date, "10:01")
	require.NoError(t, err)
	assert.False(t, a.Equal(c))
}

func TestCombineDateTimeInvalid(t *testing.T) {
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	for _, bad := range []string{"", "25:00", "10:61", "10h30", "10:30:00"} {
		_, err := CombineDateTime(date, bad)
		assert.ErrorIs(t, err, ErrInvalidTimeOfDay, "input %q", bad)
	}
}
