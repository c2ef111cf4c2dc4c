package schema

// MacroRangeGrams is a low/high gram range for one macro.
type MacroRangeGrams struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// RatioMacros is the ratio-table breakdown of one meal's calories: gram
// ranges per macro plus the per-meal fiber band.
type RatioMacros struct {
	Carbs   MacroRangeGrams `json:"carbs_g"`
	Protein MacroRangeGrams `json:"proteins_g"`
	Fats    MacroRangeGrams `json:"fats_g"`
	Fiber   MacroRangeGrams `json:"fiber_g"`
}

// TargetReport is the full output of one target calculation: the
// intermediate energy chain for inspection plus the final goal pair.
type TargetReport struct {
	Age          int                  `json:"age"`
	BMR          float64              `json:"bmr"`
	TDEEActivity float64              `json:"tdee_activity"`
	TDEEExercise float64              `json:"tdee_exercise"`
	TDEEGoal     float64              `json:"tdee_goal"`
	MealSlot     MealSlot             `json:"meal_slot"`
	MealCalories map[MealSlot]float64 `json:"meal_calories"`
	RatioMacros  RatioMacros          `json:"ratio_macros"`
	Target       NutritionTarget      `json:"target"`
}

// MenuSummary is the render model of the menu projections: counts plus
// the per-category dish lists.
type MenuSummary struct {
	RestaurantID   string              `json:"restaurant_id"`
	RestaurantName string              `json:"restaurant_name,omitempty"`
	DishCount      int                 `json:"dish_count"`
	VegCount       int                 `json:"veg_count"`
	NonVegCount    int                 `json:"non_veg_count"`
	Categories     map[string][]string `json:"categories"`
}
