package schema

// Custom string types for type safety.
type (
	// Gender is the user's reported gender.
	Gender string

	// DietGoal is the user's dietary goal.
	DietGoal string

	// ActivityClass is the daily-routine activity classification.
	ActivityClass string

	// ExerciseType is the user's exercise modality.
	ExerciseType string

	// Intensity is the exercise or yoga intensity.
	Intensity string

	// HungerLevel is the user's reported hunger.
	HungerLevel string

	// MealSlot is a named meal window of the day.
	MealSlot string

	// ActivityLevel is the normalized activity vocabulary used by the
	// contextual factor adjuster.
	ActivityLevel string

	// ProfileType selects the macro-ratio matrix family.
	ProfileType string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for the record store.
	DatabaseBackend string
)

// All genders supported.
const (
	Male   Gender = "Male"
	Female Gender = "Female"
	Other  Gender = "Other"
)

// All dietary goals supported.
const (
	MuscleGain    DietGoal = "Muscle Gain"
	WeightLoss    DietGoal = "Weight Loss"
	HealthyEating DietGoal = "Healthy Eating"
)

// All daily-routine activity classes supported.
const (
	Sedentary     ActivityClass = "Sedentary"
	LightlyActive ActivityClass = "Lightly active"
	ModerateClass ActivityClass = "Moderate"
	VeryActive    ActivityClass = "Very active"
	SuperActive   ActivityClass = "Super active"
)

// All exercise modalities supported.
const (
	GymExercise  ExerciseType = "Gym"
	YogaExercise ExerciseType = "Yoga"
	NoExercise   ExerciseType = "None"
)

// All exercise intensities supported.
const (
	LightIntensity     Intensity = "Light"
	ModerateIntensity  Intensity = "Moderate"
	HeavyIntensity     Intensity = "Heavy"
	VeryHeavyIntensity Intensity = "Very heavy"
)

// All hunger levels supported.
const (
	HungerLow    HungerLevel = "Low"
	HungerNormal HungerLevel = "Normal"
	HungerHigh   HungerLevel = "High"
)

// All meal slots, plus the sentinel for hours outside every window.
const (
	Breakfast MealSlot = "Breakfast"
	Lunch     MealSlot = "Lunch"
	Snacks    MealSlot = "Snacks"
	Dinner    MealSlot = "Dinner"
	NoMeal    MealSlot = "N/A"
)

// All normalized activity levels.
const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityHeavy     ActivityLevel = "heavy"
	ActivityVeryHeavy ActivityLevel = "very_heavy"
)

// All profile types for the macro-ratio matrix.
const (
	StandardProfile ProfileType = "Standard"
	DiabeticProfile ProfileType = "Diabetic"
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	CSVOut  OutputMode = "csv"
	JSONOut OutputMode = "json"
)

// All store backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
)

// Energy conversion constants shared by the target calculator and the
// scoring engine. Fiber follows the original 2 kcal/g convention.
const (
	KcalPerGramProtein = 4.0
	KcalPerGramCarbs   = 4.0
	KcalPerGramFat     = 9.0
	KcalPerGramFiber   = 2.0
)

// Bucket labels of the final recommendation, in output order.
const (
	BestMatchLabel = "Best Match"
	GoodMatchLabel = "Good Match"
)

// BucketFraction is the percentile band size of each recommendation bucket.
const BucketFraction = 0.05

// CourseSequence is the fixed tie-break order of course types; dishes with
// no recognized course tag rank after all of these.
var CourseSequence = []string{
	"Main Course", "Side Dish", "Salad", "Soup", "Starter", "Snack", "Drink", "Dessert",
}

// CourseRank maps a course type to its index in CourseSequence.
var CourseRank = func() map[string]int {
	m := make(map[string]int, len(CourseSequence))
	for i, c := range CourseSequence {
		m[c] = i
	}
	return m
}()

// Timing category names used on dish tags. Tags are matched lowercased.
const (
	TimingBreakfast     = "breakfast"
	TimingLunch         = "lunch"
	TimingDinner        = "dinner"
	TimingBrunch        = "brunch"
	TimingSnack         = "snack"
	TimingMidnightSnack = "midnight snack"
)

// TimingWeights holds the overlap weight of each timing category.
var TimingWeights = map[string]float64{
	TimingBreakfast:     1.0,
	TimingLunch:         1.0,
	TimingDinner:        1.0,
	TimingBrunch:        0.8,
	TimingSnack:         0.6,
	TimingMidnightSnack: 0.7,
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	CSVOut:  {},
	JSONOut: {},
}

// ValidStoreBackends lists all valid store backends.
var ValidStoreBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
}

// ValidHungerLevels lists all valid hunger levels.
var ValidHungerLevels = map[HungerLevel]struct{}{
	HungerLow:    {},
	HungerNormal: {},
	HungerHigh:   {},
}
