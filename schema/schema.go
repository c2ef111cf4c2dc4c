// Package schema has configs, models and shared constants for all parts of platefit.
package schema

// UserProfile holds the biometric and lifestyle inputs for a single target
// calculation. It is immutable input owned by the caller; the core never
// mutates it.
type UserProfile struct {
	Gender       Gender        `json:"gender"`       // Male, Female or Other
	WeightKg     float64       `json:"weight_kg"`    // Body weight in kilograms
	HeightCm     float64       `json:"height_cm"`    // Height in centimeters
	DateOfBirth  string        `json:"dob"`          // Birth date, several formats accepted (see ParseBirthDate)
	Timezone     string        `json:"tz_name"`      // IANA timezone name, may be empty
	DailyRoutine ActivityClass `json:"life_routine"` // Daily-routine activity class
	Exercise     ExerciseType  `json:"gym_or_yoga"`  // Gym, Yoga or None
	Intensity    Intensity     `json:"intensity"`    // Exercise intensity, ignored when Exercise is None
	Goal         DietGoal      `json:"goal"`         // Dietary goal
	GoalVariant  string        `json:"goal_variant"` // Optional sub-category for Muscle Gain / Weight Loss
	HungerLevel  HungerLevel   `json:"hunger_level"` // Low, Normal or High
}

// NutrientAmount is one macro target expressed both in grams and as a
// percentage of the goal's energy.
type NutrientAmount struct {
	Grams   float64 `json:"grams"`
	Percent float64 `json:"percent"`
}

// GoalNutrients is one nutrition goal: energy plus per-macro targets.
// Invariant: Grams x kcal-per-gram stays consistent with Percent x Kcal
// within rounding.
type GoalNutrients struct {
	Kcal    float64        `json:"kcal"`
	Protein NutrientAmount `json:"protein"`
	Carbs   NutrientAmount `json:"carbs"`
	Fats    NutrientAmount `json:"fats"`
	Fiber   NutrientAmount `json:"fiber"`
}

// NutritionTarget pairs the user's baseline goal with the currently adjusted
// one. The scoring engine only reads the live goal; the default goal is kept
// for drift telemetry.
type NutritionTarget struct {
	DefaultGoal GoalNutrients `json:"default_goal"`
	LiveGoal    GoalNutrients `json:"live_goal"`
}

// UserRecord is a stored user document: profile fields plus the precomputed
// nutrition target, keyed by user identifier.
type UserRecord struct {
	ID string `json:"_id"`
	UserProfile
	Goals *NutritionTarget `json:"goals,omitempty"`
}

// DishNutrients is the per-serving nutrient vector of a dish.
// Energy is kcal; sodium, cholesterol and the fat fractions are milligrams;
// everything else is grams.
type DishNutrients struct {
	Energy             float64 `json:"energy"`
	Protein            float64 `json:"protein"`
	Carbs              float64 `json:"carbs"`
	Fats               float64 `json:"fats"`
	Fiber              float64 `json:"fiber"`
	SaturatedFat       float64 `json:"saturated_fat"`
	PolyunsaturatedFat float64 `json:"polyunsaturated_fat"`
	MonounsaturatedFat float64 `json:"monounsaturated_fat"`
	Cholesterol        float64 `json:"cholesterol"`
	Sodium             float64 `json:"sodium"`
	Sugar              float64 `json:"sugar"`
}

// MacroPercent is a dish's macro distribution as percentages of its energy.
// Values tolerate the "22%" string form used by upstream menu feeds.
type MacroPercent struct {
	Protein Percent `json:"proteins"`
	Carbs   Percent `json:"carbs"`
	Fats    Percent `json:"fats"`
	Fiber   Percent `json:"fibers"`
}

// Dish is an immutable menu catalog entry. The canonical record is never
// mutated during scoring; transient score data lives on ScoredDish instead.
type Dish struct {
	ID               string            `json:"_id"`
	Name             string            `json:"dish_name"`
	ServingSizeGrams float64           `json:"serving_size"`
	Nutrients        DishNutrients     `json:"nutrients"`
	MacroPercent     MacroPercent      `json:"distributed_percentage"`
	TimingCategories []string          `json:"timing_category"`
	CourseTypes      []string          `json:"dish_type"`
	MealCategories   []string          `json:"meal_category"`
	FoodCategory     string            `json:"food_category"`
	Cuisine          string            `json:"cuisine,omitempty"`
	Ingredients      map[string]string `json:"ingredients,omitempty"`
}

// MenuRecord is a stored restaurant menu document keyed by restaurant
// identifier.
type MenuRecord struct {
	ID             string `json:"_id"`
	RestaurantName string `json:"restaurant_name,omitempty"`
	Menu           []Dish `json:"menu"`
}

// ScoringContext captures the situational inputs of one recommendation
// request. It is computed once per request and never persisted.
type ScoringContext struct {
	Hour          int           // Local hour of day [0,23]
	Weekday       int           // ISO-style weekday, Monday=0 .. Sunday=6
	IsGroup       bool          // Group dining vs solo
	Cuisine       string        // Optional cuisine tag, empty means no cuisine layer
	Birthday      bool          // True when today matches the user's birth month/day
	ActivityLevel ActivityLevel // Normalized activity level
}

// MacroSnapshot is the per-dish macro view attached to a scored dish.
type MacroSnapshot struct {
	Energy  float64 `json:"energy"`
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fats    float64 `json:"fats"`
	Fiber   float64 `json:"fiber"`
}

// ScoreBreakdown holds the sub-scores behind a dish's final score for
// debugging, explain output and parquet export.
type ScoreBreakdown struct {
	Density   float64 `json:"density"`
	Euclidean float64 `json:"euclidean"`
	Satiety   float64 `json:"satiety"`
	Rules     float64 `json:"rules"`
	Timing    float64 `json:"timing"`
	Outliers  int     `json:"outliers"`   // Macros outside the guardrail tolerance
	GuardMult float64 `json:"guard_mult"` // 1.0, 0.85 or 0.70
}

// ScoredDish is a transient pairing of a dish with its score for one
// recommendation run. It references the canonical dish read-only.
type ScoredDish struct {
	Dish      *Dish
	Score     float64
	Snapshot  MacroSnapshot
	Breakdown ScoreBreakdown
}

// RecommendationBucket is one labeled tier of the final recommendation.
type RecommendationBucket struct {
	Category string   `json:"category"`
	Dishes   []string `json:"dishes"`
}

// RecommendationResult is the ordered bucket list handed back to the caller,
// always [Best Match, Good Match].
type RecommendationResult []RecommendationBucket

// GoalDrift reports the percent difference of the live goal against the
// default goal per macro and energy. Telemetry only; it does not feed the
// score.
type GoalDrift struct {
	Protein float64 `json:"proteins"`
	Carbs   float64 `json:"carbs"`
	Fats    float64 `json:"fats"`
	Fiber   float64 `json:"fibers"`
	Energy  float64 `json:"energy"`
}
