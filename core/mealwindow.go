package core

import (
	"time"

	"github.com/platefit/platefit/internal/contract"
	"github.com/platefit/platefit/schema"
)

// mealWindow is one named meal window. End < Start marks an overnight
// window that wraps past midnight.
type mealWindow struct {
	Slot  schema.MealSlot
	Start int // inclusive hour
	End   int // exclusive hour
}

// mealWindows are the fixed meal windows of the day, checked in order.
var mealWindows = []mealWindow{
	{schema.Breakfast, 3, 11}, // 03:00-10:59
	{schema.Lunch, 11, 16},    // 11:00-15:59
	{schema.Snacks, 16, 17},   // 16:00-16:59
	{schema.Dinner, 17, 3},    // 17:00-02:59 (overnight)
}

// LoadLocation resolves an IANA timezone name, falling back to the default
// zone when the name is empty or unresolvable. Meal resolution should never
// fail a request over a bad timezone string.
func LoadLocation(tzName string) *time.Location {
	if tzName == "" {
		tzName = contract.DefaultTimezone
	}
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		loc, err = time.LoadLocation(contract.DefaultTimezone)
		if err != nil {
			return time.UTC
		}
	}
	return loc
}

// MealSlotForHour maps an hour of day onto its meal slot, handling the
// overnight dinner wrap. Hours outside every window return the sentinel.
func MealSlotForHour(hour int) schema.MealSlot {
	for _, w := range mealWindows {
		if w.Start < w.End {
			if hour >= w.Start && hour < w.End {
				return w.Slot
			}
		} else if hour >= w.Start || hour < w.End {
			return w.Slot
		}
	}
	return schema.NoMeal
}

// ResolveMealSlot returns the active meal slot for a timestamp in the given
// timezone.
func ResolveMealSlot(now time.Time, tzName string) schema.MealSlot {
	return MealSlotForHour(now.In(LoadLocation(tzName)).Hour())
}

// MealWindowBounds returns the start and end timestamps of the current
// occurrence of a meal window relative to now. For overnight windows the
// pre-dawn tail still belongs to the window that started the previous
// evening, so both bounds roll back a day. Unknown slots return a
// degenerate window covering just now.
func MealWindowBounds(now time.Time, slot schema.MealSlot) (time.Time, time.Time) {
	var win *mealWindow
	for i := range mealWindows {
		if mealWindows[i].Slot == slot {
			win = &mealWindows[i]
			break
		}
	}
	if win == nil {
		return now, now
	}

	base := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if win.Start < win.End {
		start := base.Add(time.Duration(win.Start) * time.Hour)
		end := base.Add(time.Duration(win.End) * time.Hour)
		// Early morning before the window opens means we are still in
		// yesterday's occurrence.
		if now.Before(start) {
			start = start.AddDate(0, 0, -1)
			end = end.AddDate(0, 0, -1)
		}
		return start, end
	}

	// Overnight window: today at Start until tomorrow at End.
	start := base.Add(time.Duration(win.Start) * time.Hour)
	end := base.AddDate(0, 0, 1).Add(time.Duration(win.End) * time.Hour)
	if now.Hour() < win.End {
		start = start.AddDate(0, 0, -1)
		end = end.AddDate(0, 0, -1)
	}
	return start, end
}
