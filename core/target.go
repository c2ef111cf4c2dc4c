package core

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/platefit/platefit/schema"
)

// ErrTableMiss marks a profile combination absent from a fixed lookup
// table. It is a configuration defect, not a user error, so callers fail
// loudly instead of guessing a target.
var ErrTableMiss = errors.New("profile combination not covered by lookup table")

// CalculateAge returns whole years from a birth date to now, one less when
// the birthday has not yet occurred this year.
func CalculateAge(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}

// CalculateBMR is the Mifflin-St Jeor basal metabolic rate. Gender Other
// takes the mean of the male and female formulas.
func CalculateBMR(weightKg, heightCm float64, age int, gender schema.Gender) float64 {
	male := 10*weightKg + 6.25*heightCm - 5*float64(age) + 5
	female := 10*weightKg + 6.25*heightCm - 5*float64(age) - 161
	switch gender {
	case schema.Male:
		return male
	case schema.Female:
		return female
	default:
		return (male + female) / 2
	}
}

// exerciseFactor resolves the additive TDEE fraction for the profile's
// exercise modality and intensity. No exercise contributes 0.
func exerciseFactor(exercise schema.ExerciseType, intensity schema.Intensity) (float64, error) {
	switch exercise {
	case schema.GymExercise:
		f, ok := gymFactors[intensity]
		if !ok {
			return 0, fmt.Errorf("gym intensity %q: %w", intensity, ErrTableMiss)
		}
		return f, nil
	case schema.YogaExercise:
		f, ok := yogaFactors[intensity]
		if !ok {
			return 0, fmt.Errorf("yoga intensity %q: %w", intensity, ErrTableMiss)
		}
		return f, nil
	default:
		return 0, nil
	}
}

// goalFactor resolves the TDEE multiplier for the profile's goal and
// variant. Goals without sub-categories use 1.0; muscle gain and weight
// loss default to their balanced variant.
func goalFactor(goal schema.DietGoal, variant string) (float64, error) {
	switch goal {
	case schema.MuscleGain:
		if variant == "" {
			variant = DefaultMuscleGainVariant
		}
		f, ok := muscleGainFactors[variant]
		if !ok {
			return 0, fmt.Errorf("muscle gain variant %q: %w", variant, ErrTableMiss)
		}
		return f, nil
	case schema.WeightLoss:
		if variant == "" {
			variant = DefaultWeightLossVariant
		}
		f, ok := weightLossFactors[variant]
		if !ok {
			return 0, fmt.Errorf("weight loss variant %q: %w", variant, ErrTableMiss)
		}
		return f, nil
	default:
		return 1.0, nil
	}
}

// CalculateTDEE runs the three-step energy chain: BMR adjusted for ambient
// temperature and daily routine, then the exercise fraction, then the goal
// multiplier.
func CalculateTDEE(bmr, tempFactor, activityFactor, exerciseFactor, goalFactor float64) (tdee1, tdee2, tdee3 float64) {
	tdee1 = bmr * tempFactor * activityFactor
	tdee2 = tdee1 + exerciseFactor*tdee1
	tdee3 = tdee2 * goalFactor
	return tdee1, tdee2, tdee3
}

// MealDistribution splits daily calories into per-meal calorie bands using
// the fixed meal share fractions.
func MealDistribution(tdee3 float64) map[schema.MealSlot]calorieBand {
	out := make(map[schema.MealSlot]calorieBand, len(mealShares))
	for slot, share := range mealShares {
		out[slot] = calorieBand{Low: tdee3 * share.Low, High: tdee3 * share.High}
	}
	return out
}

// FixedCalories collapses each meal's calorie band to one value using the
// hunger level: Low takes the band floor, High the ceiling, anything else
// the midpoint.
func FixedCalories(distribution map[schema.MealSlot]calorieBand, hunger schema.HungerLevel) map[schema.MealSlot]float64 {
	out := make(map[schema.MealSlot]float64, len(distribution))
	for slot, band := range distribution {
		out[slot] = hungerPick(band, hunger)
	}
	return out
}

// hungerPick selects one value from a band by hunger level.
func hungerPick(band calorieBand, hunger schema.HungerLevel) float64 {
	switch hunger {
	case schema.HungerLow:
		return band.Low
	case schema.HungerHigh:
		return band.High
	default:
		return (band.Low + band.High) / 2
	}
}

// MacroRatioTargets converts one meal's calories into gram ranges per
// macro using the ratio matrix. The diabetic profile uses its flat row for
// every goal, gender and age.
func MacroRatioTargets(calories float64, profile schema.ProfileType, gender schema.Gender, goal schema.DietGoal, age int) (schema.RatioMacros, error) {
	var row macroRatioRow
	if profile == schema.DiabeticProfile {
		row = diabeticRatios
	} else {
		byGender, ok := standardRatios[goal]
		if !ok {
			return schema.RatioMacros{}, fmt.Errorf("goal %q: %w", goal, ErrTableMiss)
		}
		byBracket, ok := byGender[gender]
		if !ok {
			return schema.RatioMacros{}, fmt.Errorf("gender %q for goal %q: %w", gender, goal, ErrTableMiss)
		}
		row, ok = byBracket[bracketForAge(age)]
		if !ok {
			return schema.RatioMacros{}, fmt.Errorf("age bracket %q: %w", bracketForAge(age), ErrTableMiss)
		}
	}

	fiber, ok := fiberPerMeal[gender]
	if !ok {
		return schema.RatioMacros{}, fmt.Errorf("gender %q in fiber table: %w", gender, ErrTableMiss)
	}

	return schema.RatioMacros{
		Carbs: schema.MacroRangeGrams{
			Low:  calories * row.Carbs.Low / schema.KcalPerGramCarbs,
			High: calories * row.Carbs.High / schema.KcalPerGramCarbs,
		},
		Protein: schema.MacroRangeGrams{
			Low:  calories * row.Protein.Low / schema.KcalPerGramProtein,
			High: calories * row.Protein.High / schema.KcalPerGramProtein,
		},
		Fats: schema.MacroRangeGrams{
			Low:  calories * row.Fats.Low / schema.KcalPerGramFat,
			High: calories * row.Fats.High / schema.KcalPerGramFat,
		},
		Fiber: schema.MacroRangeGrams{Low: fiber.Low, High: fiber.High},
	}, nil
}

// round2 rounds to two decimal places, the precision of stored goals.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// interpolate returns the value at age between the bracket anchors.
func interpolate(age int, bracket ageBracket, lo, hi float64) float64 {
	var span, start float64
	if bracket == olderBracket {
		span, start = 20, 40
	} else {
		span, start = 22, 18
	}
	return lo + (float64(age)-start)*(hi-lo)/span
}

// NutrientBreakdown is the age-interpolated calculation path. It derives
// the live (per-meal) goal from the meal's fixed calories and the default
// (daily) goal from the goal-adjusted TDEE, reconciling the percentage
// protein value against a grams-per-kg bodyweight floor.
func NutrientBreakdown(profile *schema.UserProfile, age int, mealCalories, dailyTDEE float64, slot schema.MealSlot) (schema.NutritionTarget, error) {
	// Clamp age to the supported range before any table math.
	if age < 18 {
		age = 18
	} else if age > 60 {
		age = 60
	}

	byGender, ok := interpolationMatrix[profile.Goal]
	if !ok {
		return schema.NutritionTarget{}, fmt.Errorf("goal %q: %w", profile.Goal, ErrTableMiss)
	}
	byBracket, ok := byGender[profile.Gender]
	if !ok {
		return schema.NutritionTarget{}, fmt.Errorf("gender %q for goal %q: %w", profile.Gender, profile.Goal, ErrTableMiss)
	}
	bracket := bracketForAge(age)
	anchors, ok := byBracket[bracket]
	if !ok {
		return schema.NutritionTarget{}, fmt.Errorf("age bracket %q: %w", bracket, ErrTableMiss)
	}

	proteinPct := interpolate(age, bracket, anchors.ProteinMin, anchors.ProteinMax)
	// Carbs share shrinks with age inside a bracket.
	carbsPct := anchors.CarbsMax - (interpolate(age, bracket, anchors.CarbsMin, anchors.CarbsMax) - anchors.CarbsMin)
	fatsPct := interpolate(age, bracket, anchors.FatsMin, anchors.FatsMax)
	proteinPerKg := interpolate(age, bracket, anchors.ProteinPerKgLow, anchors.ProteinPerKgHigh)
	fiberGrams := math.Max(anchors.FiberMin, math.Min(anchors.FiberMax,
		interpolate(age, bracket, anchors.FiberMin, anchors.FiberMax)))

	// Live goal: fiber calories come off the top before the percentage
	// split.
	fiberKcal := fiberGrams * schema.KcalPerGramFiber
	mealBudget := mealCalories - fiberKcal

	proteinKcal := proteinPct * mealBudget / 100

	// Bodyweight floor: grams-per-kg daily protein, scaled to this meal's
	// share of the day.
	share, ok := mealShares[slot]
	if !ok {
		return schema.NutritionTarget{}, fmt.Errorf("meal slot %q: %w", slot, ErrTableMiss)
	}
	mealFraction := hungerPick(share, profile.HungerLevel)
	floorKcal := profile.WeightKg * proteinPerKg * schema.KcalPerGramProtein * mealFraction

	protein := math.Max(proteinKcal, floorKcal)
	fats := mealBudget * fatsPct / 100
	carbs := mealBudget - fats - protein

	live := schema.GoalNutrients{
		Kcal: round2(mealCalories),
		Protein: schema.NutrientAmount{
			Grams:   round2(protein / schema.KcalPerGramProtein),
			Percent: round2(protein * 100 / mealCalories),
		},
		Carbs: schema.NutrientAmount{
			Grams:   round2(carbs / schema.KcalPerGramCarbs),
			Percent: round2(carbs * 100 / mealCalories),
		},
		Fats: schema.NutrientAmount{
			Grams:   round2(fats / schema.KcalPerGramFat),
			Percent: round2(fats * 100 / mealCalories),
		},
		Fiber: schema.NutrientAmount{
			Grams:   round2(fiberGrams),
			Percent: round2(fiberKcal * 100 / mealCalories),
		},
	}

	// Default goal: the same percentage split over the full day.
	dailyFiberKcal := anchors.DailyFiber * schema.KcalPerGramFiber
	dailyBudget := dailyTDEE - dailyFiberKcal

	dailyProtein := proteinPct * dailyBudget / 100
	dailyCarbs := carbsPct * dailyBudget / 100
	dailyFats := fatsPct * dailyBudget / 100

	dflt := schema.GoalNutrients{
		Kcal: round2(dailyTDEE),
		Protein: schema.NutrientAmount{
			Grams:   round2(dailyProtein / schema.KcalPerGramProtein),
			Percent: round2(dailyProtein * 100 / dailyTDEE),
		},
		Carbs: schema.NutrientAmount{
			Grams:   round2(dailyCarbs / schema.KcalPerGramCarbs),
			Percent: round2(dailyCarbs * 100 / dailyTDEE),
		},
		Fats: schema.NutrientAmount{
			Grams:   round2(dailyFats / schema.KcalPerGramFat),
			Percent: round2(dailyFats * 100 / dailyTDEE),
		},
		Fiber: schema.NutrientAmount{
			Grams:   round2(anchors.DailyFiber),
			Percent: round2(dailyFiberKcal * 100 / dailyTDEE),
		},
	}

	return schema.NutritionTarget{DefaultGoal: dflt, LiveGoal: live}, nil
}

// ComputeTargetReport runs the full target calculation for a profile at a
// reference time: the energy chain, the per-meal calorie split, the
// ratio-table gram ranges for the active meal and the interpolated goal
// pair.
func ComputeTargetReport(profile *schema.UserProfile, now time.Time) (*schema.TargetReport, error) {
	birth, ok := schema.ParseBirthDate(profile.DateOfBirth)
	if !ok {
		return nil, fmt.Errorf("unparseable birth date %q", profile.DateOfBirth)
	}

	loc := LoadLocation(profile.Timezone)
	local := now.In(loc)
	age := CalculateAge(birth, local)

	bmr := CalculateBMR(profile.WeightKg, profile.HeightCm, age, profile.Gender)

	actFactor, ok := activityFactors[profile.DailyRoutine]
	if !ok {
		return nil, fmt.Errorf("daily routine %q: %w", profile.DailyRoutine, ErrTableMiss)
	}
	exFactor, err := exerciseFactor(profile.Exercise, profile.Intensity)
	if err != nil {
		return nil, err
	}
	gFactor, err := goalFactor(profile.Goal, profile.GoalVariant)
	if err != nil {
		return nil, err
	}

	tdee1, tdee2, tdee3 := CalculateTDEE(bmr, temperatureFactors[NeutralTemperature], actFactor, exFactor, gFactor)

	distribution := MealDistribution(tdee3)
	fixed := FixedCalories(distribution, profile.HungerLevel)

	slot := MealSlotForHour(local.Hour())
	if slot == schema.NoMeal {
		slot = schema.Dinner
	}
	mealCalories := fixed[slot]

	ratio, err := MacroRatioTargets(mealCalories, schema.StandardProfile, profile.Gender, profile.Goal, age)
	if err != nil {
		return nil, err
	}

	target, err := NutrientBreakdown(profile, age, mealCalories, tdee3, slot)
	if err != nil {
		return nil, err
	}

	return &schema.TargetReport{
		Age:          age,
		BMR:          bmr,
		TDEEActivity: tdee1,
		TDEEExercise: tdee2,
		TDEEGoal:     tdee3,
		MealSlot:     slot,
		MealCalories: fixed,
		RatioMacros:  ratio,
		Target:       target,
	}, nil
}

// ComputeTarget is the goal-pair shortcut over ComputeTargetReport.
func ComputeTarget(profile *schema.UserProfile, now time.Time) (*schema.NutritionTarget, error) {
	report, err := ComputeTargetReport(profile, now)
	if err != nil {
		return nil, err
	}
	target := report.Target
	return &target, nil
}
