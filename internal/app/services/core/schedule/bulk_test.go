package schedule

import (
	"agenda-service/internal/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleDayOn(t *testing.T) {
	t.Run("Seeds Default Window", func(t *testing.T) {
		var c Collection
		c = ToggleDayOn(c, 1, nil)

		require.Len(t, c, 1)
		entry, _ := c.EntryFor(1)
		assert.Equal(t, DefaultStartTime, entry.StartTime)
		assert.Equal(t, DefaultEndTime, entry.EndTime)
		assert.Nil(t, CheckForSave(c, nil))
	})

	t.Run("Seeds From Parent Window", func(t *testing.T) {
		parent := ReplaceAll([]models.DailyWorkingHour{
			{DayOfWeek: 1, StartTime: "07:30", EndTime: "15:30"},
		})

		var c Collection
		c = ToggleDayOn(c, 1, parent)

		entry, _ := c.EntryFor(1)
		assert.Equal(t, "07:30", entry.StartTime)
		assert.Equal(t, "15:30", entry.EndTime)
	})

	t.Run("Existing Entry Untouched", func(t *testing.T) {
		var c Collection
		c = c.Upsert(1, EntryPatch{StartTime: strPtr("06:00"), EndTime: strPtr("12:00")})
		c = ToggleDayOn(c, 1, nil)

		entry, _ := c.EntryFor(1)
		assert.Equal(t, "06:00", entry.StartTime)
	})
}

func TestToggleDayOff(t *testing.T) {
	var c Collection
	c = ToggleDayOn(c, 4, nil)
	c = ToggleDayOn(c, 5, nil)
	require.Len(t, c, 2)

	c = ToggleDayOff(c, 4)

	_, found := c.EntryFor(4)
	assert.False(t, found, "toggled-off day keeps no record")
	assert.Len(t, c, 1)
}

func TestCopyToAllDays(t *testing.T) {
	t.Run("Copies Source Window Everywhere", func(t *testing.T) {
		var c Collection
		c = c.Upsert(1, EntryPatch{StartTime: strPtr("08:00"), EndTime: strPtr("17:00")})

		out, outcome, err := CopyToAllDays(c, 1, nil)

		require.NoError(t, err)
		assert.Len(t, out, 7)
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, outcome.AppliedDays)
		assert.Empty(t, outcome.Skipped)
		for _, entry := range out {
			assert.Equal(t, "08:00", entry.StartTime)
			assert.Equal(t, "17:00", entry.EndTime)
		}
		assert.Nil(t, CheckForSave(out, nil))
	})

	t.Run("Missing Source", func(t *testing.T) {
		var c Collection
		_, _, err := CopyToAllDays(c, 1, nil)
		assert.ErrorIs(t, err, ErrSourceDayMissing)
	})

	t.Run("Incomplete Source", func(t *testing.T) {
		var c Collection
		c = c.Upsert(1, EntryPatch{StartTime: strPtr("08:00")})
		_, _, err := CopyToAllDays(c, 1, nil)
		assert.ErrorIs(t, err, ErrSourceDayIncomplete)
	})

	t.Run("Invalid Source", func(t *testing.T) {
		var c Collection
		c = c.Upsert(1, EntryPatch{StartTime: strPtr("17:00"), EndTime: strPtr("08:00")})
		_, _, err := CopyToAllDays(c, 1, nil)
		assert.ErrorIs(t, err, ErrSourceDayInvalid)
	})

	t.Run("Skips Days The Parent Forbids", func(t *testing.T) {
		parent := ReplaceAll([]models.DailyWorkingHour{
			{DayOfWeek: 1, StartTime: "08:00", EndTime: "18:00"},
			{DayOfWeek: 2, StartTime: "08:00", EndTime: "18:00"},
			{DayOfWeek: 3, StartTime: "10:00", EndTime: "12:00"},
		})

		var c Collection
		c = c.Upsert(1, EntryPatch{StartTime: strPtr("09:00"), EndTime: strPtr("17:00")})

		out, outcome, err := CopyToAllDays(c, 1, parent)

		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, outcome.AppliedDays)
		assert.Len(t, outcome.Skipped, 5, "days outside the parent's week are refused")
		assert.Equal(t, []int{1, 2}, configuredWeekdays(out))
	})
}
