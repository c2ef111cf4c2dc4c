package core

import (
	"testing"
	"time"

	"github.com/platefit/platefit/schema"
	"github.com/stretchr/testify/assert"
)

// TestMealSlotForHour tests the hour-to-meal mapping, including the
// overnight dinner wrap.
func TestMealSlotForHour(t *testing.T) {
	tests := []struct {
		hour int
		want schema.MealSlot
	}{
		{0, schema.Dinner},
		{2, schema.Dinner},
		{3, schema.Breakfast},
		{10, schema.Breakfast},
		{11, schema.Lunch},
		{15, schema.Lunch},
		{16, schema.Snacks},
		{17, schema.Dinner},
		{23, schema.Dinner},
	}

	for _, tc := range tests {
		t.Run(string(tc.want), func(t *testing.T) {
			assert.Equal(t, tc.want, MealSlotForHour(tc.hour))
		})
	}
}

// TestLoadLocation tests timezone resolution fallbacks.
func TestLoadLocation(t *testing.T) {
	t.Run("empty falls back to default", func(t *testing.T) {
		assert.Equal(t, "Asia/Kolkata", LoadLocation("").String())
	})

	t.Run("bogus falls back to default", func(t *testing.T) {
		assert.Equal(t, "Asia/Kolkata", LoadLocation("Mars/Olympus").String())
	})

	t.Run("valid zone resolves", func(t *testing.T) {
		assert.Equal(t, "UTC", LoadLocation("UTC").String())
	})
}

// TestResolveMealSlot tests that resolution honors the timezone.
func TestResolveMealSlot(t *testing.T) {
	// 07:30 UTC is 13:00 in Kolkata (+05:30).
	now := time.Date(2026, 8, 28, 7, 30, 0, 0, time.UTC)
	assert.Equal(t, schema.Breakfast, ResolveMealSlot(now, "UTC"))
	assert.Equal(t, schema.Lunch, ResolveMealSlot(now, "Asia/Kolkata"))
}

// TestMealWindowBounds tests window bounds around midnight.
func TestMealWindowBounds(t *testing.T) {
	t.Run("daytime window", func(t *testing.T) {
		now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
		start, end := MealWindowBounds(now, schema.Lunch)
		assert.Equal(t, time.Date(2026, 8, 28, 11, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2026, 8, 28, 16, 0, 0, 0, time.UTC), end)
	})

	t.Run("overnight dinner same evening", func(t *testing.T) {
		now := time.Date(2026, 8, 28, 20, 0, 0, 0, time.UTC)
		start, end := MealWindowBounds(now, schema.Dinner)
		assert.Equal(t, time.Date(2026, 8, 28, 17, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2026, 8, 29, 3, 0, 0, 0, time.UTC), end)
	})

	t.Run("overnight dinner pre-dawn tail", func(t *testing.T) {
		// 01:00 still belongs to the window that opened yesterday.
		now := time.Date(2026, 8, 28, 1, 0, 0, 0, time.UTC)
		start, end := MealWindowBounds(now, schema.Dinner)
		assert.Equal(t, time.Date(2026, 8, 27, 17, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2026, 8, 28, 3, 0, 0, 0, time.UTC), end)
	})

	t.Run("before window opens rolls back a day", func(t *testing.T) {
		now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
		start, end := MealWindowBounds(now, schema.Lunch)
		assert.Equal(t, time.Date(2026, 8, 27, 11, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2026, 8, 27, 16, 0, 0, 0, time.UTC), end)
	})

	t.Run("unknown slot is degenerate", func(t *testing.T) {
		now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
		start, end := MealWindowBounds(now, schema.NoMeal)
		assert.Equal(t, now, start)
		assert.Equal(t, now, end)
	})
}
