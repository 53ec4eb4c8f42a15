package schedule

import (
	"agenda-service/internal/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestCollectionUpsert(t *testing.T) {
	t.Run("Creates Entry On First Write", func(t *testing.T) {
		var c Collection
		c = c.Upsert(1, EntryPatch{StartTime: strPtr("09:00")})

		entry, found := c.EntryFor(1)
		assert.True(t, found)
		assert.Equal(t, "09:00", entry.StartTime)
		assert.Equal(t, "", entry.EndTime)
	})

	t.Run("Nil Fields Leave Current Values", func(t *testing.T) {
		var c Collection
		c = c.Upsert(1, EntryPatch{StartTime: strPtr("09:00"), EndTime: strPtr("18:00")})
		c = c.Upsert(1, EntryPatch{EndTime: strPtr("17:00")})

		entry, _ := c.EntryFor(1)
		assert.Equal(t, "09:00", entry.StartTime)
		assert.Equal(t, "17:00", entry.EndTime)
		assert.Len(t, c, 1, "upsert must never duplicate a weekday")
	})

	t.Run("Empty String Clears A Field", func(t *testing.T) {
		var c Collection
		c = c.Upsert(2, EntryPatch{StartTime: strPtr("10:00"), EndTime: strPtr("16:00")})
		c = c.Upsert(2, EntryPatch{EndTime: strPtr("")})

		entry, _ := c.EntryFor(2)
		assert.Equal(t, "10:00", entry.StartTime)
		assert.Equal(t, "", entry.EndTime)
	})

	t.Run("Keeps Weekday Order", func(t *testing.T) {
		var c Collection
		c = c.Upsert(5, EntryPatch{StartTime: strPtr("09:00"), EndTime: strPtr("18:00")})
		c = c.Upsert(1, EntryPatch{StartTime: strPtr("09:00"), EndTime: strPtr("18:00")})
		c = c.Upsert(3, EntryPatch{StartTime: strPtr("09:00"), EndTime: strPtr("18:00")})

		assert.Equal(t, []int{1, 3, 5}, configuredWeekdays(c))
	})

	t.Run("Does Not Mutate Receiver", func(t *testing.T) {
		var c Collection
		c = c.Upsert(1, EntryPatch{StartTime: strPtr("09:00"), EndTime: strPtr("18:00")})
		before := c.Entries()

		c.Upsert(1, EntryPatch{StartTime: strPtr("07:00")})

		assert.Equal(t, before, c.Entries())
	})
}

func TestCollectionRemove(t *testing.T) {
	var c Collection
	c = c.Upsert(1, EntryPatch{StartTime: strPtr("09:00"), EndTime: strPtr("18:00")})
	c = c.Upsert(4, EntryPatch{StartTime: strPtr("09:00"), EndTime: strPtr("18:00")})

	c = c.Remove(1)

	_, found := c.EntryFor(1)
	assert.False(t, found, "removed day must have no record at all")
	assert.Len(t, c, 1)

	// removing an absent day is a no-op
	c = c.Remove(0)
	assert.Len(t, c, 1)
}

func TestReplaceAll(t *testing.T) {
	t.Run("Drops Out Of Range Weekdays", func(t *testing.T) {
		c := ReplaceAll([]models.DailyWorkingHour{
			{DayOfWeek: -1, StartTime: "09:00", EndTime: "18:00"},
			{DayOfWeek: 3, StartTime: "09:00", EndTime: "18:00"},
			{DayOfWeek: 7, StartTime: "09:00", EndTime: "18:00"},
		})
		assert.Equal(t, []int{3}, configuredWeekdays(c))
	})

	t.Run("Duplicates Collapse Last Write Wins", func(t *testing.T) {
		c := ReplaceAll([]models.DailyWorkingHour{
			{DayOfWeek: 2, StartTime: "08:00", EndTime: "12:00"},
			{DayOfWeek: 2, StartTime: "13:00", EndTime: "17:00"},
		})
		entry, _ := c.EntryFor(2)
		assert.Equal(t, "13:00", entry.StartTime)
		assert.Len(t, c, 1)
	})

	t.Run("Result Is Sorted", func(t *testing.T) {
		c := ReplaceAll([]models.DailyWorkingHour{
			{DayOfWeek: 6, StartTime: "09:00", EndTime: "18:00"},
			{DayOfWeek: 0, StartTime: "09:00", EndTime: "18:00"},
			{DayOfWeek: 2, StartTime: "09:00", EndTime: "18:00"},
		})
		assert.Equal(t, []int{0, 2, 6}, configuredWeekdays(c))
	})

	t.Run("Entries Round Trip", func(t *testing.T) {
		var c Collection
		c = c.Upsert(1, EntryPatch{StartTime: strPtr("09:00"), EndTime: strPtr("18:00")})
		c = c.Upsert(3, EntryPatch{StartTime: strPtr("10:00")})
		c = c.Upsert(5, EntryPatch{EndTime: strPtr("17:00")})

		assert.Equal(t, c, ReplaceAll(c.Entries()), "rebuilding from Entries must reproduce the collection")
	})
}

func configuredWeekdays(c Collection) []int {
	days := make([]int, 0, len(c))
	for _, entry := range c {
		days = append(days, entry.DayOfWeek)
	}
	return days
}
