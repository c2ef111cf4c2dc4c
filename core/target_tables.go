package core

import "github.com/platefit/platefit/schema"

// Lookup tables of the nutrition target calculator. All of them are fixed
// configuration built once at init and never mutated; a combination absent
// from its table is a configuration defect surfaced as ErrTableMiss.

// NeutralTemperature is the ambient temperature band assumed when no live
// weather signal is available.
const NeutralTemperature = "Neutral (18°C to 25°C)"

// temperatureFactors adjust BMR for ambient temperature bands.
var temperatureFactors = map[string]float64{
	"Cold (Below 10°C)":             1.2,
	"Moderately Cold (10°C to 18°C)": 1.07,
	NeutralTemperature:              1.0,
	"Warm (25°C to 30°C)":           1.03,
	"Hot (Above 30°C)":              1.07,
	"Extremely Hot (Above 35°C)":    1.15,
}

// activityFactors scale BMR by daily-routine activity class.
var activityFactors = map[schema.ActivityClass]float64{
	schema.Sedentary:     1.2,
	schema.LightlyActive: 1.375,
	schema.ModerateClass: 1.55,
	schema.VeryActive:    1.725,
	schema.SuperActive:   1.9,
}

// gymFactors and yogaFactors are additive TDEE fractions keyed by exercise
// intensity. Yoga tops out one band below gym.
var (
	gymFactors = map[schema.Intensity]float64{
		schema.LightIntensity:     0.175,
		schema.ModerateIntensity:  0.35,
		schema.HeavyIntensity:     0.525,
		schema.VeryHeavyIntensity: 0.7,
	}
	yogaFactors = map[schema.Intensity]float64{
		schema.LightIntensity:    0.175,
		schema.ModerateIntensity: 0.35,
		schema.HeavyIntensity:    0.525,
	}
)

// Goal sub-category multipliers. The balanced variant is the default when a
// profile carries no explicit sub-category.
const (
	DefaultMuscleGainVariant = "Moderate Muscle Gain (Balanced Approach)"
	DefaultWeightLossVariant = "Moderate Weight Loss (Balanced Approach)"
)

var (
	muscleGainFactors = map[string]float64{
		"Lean Muscle Gain (Slow and Controlled)":   1.075,
		DefaultMuscleGainVariant:                   1.175,
		"Aggressive Muscle Gain (Rapid Bulking)":   1.275,
	}
	weightLossFactors = map[string]float64{
		"Mild Weight Loss (Slow and Sustainable)":  0.925,
		DefaultWeightLossVariant:                   0.825,
		"Aggressive Weight Loss (Rapid Results)":   0.725,
	}
)

// calorieBand is a low/high range of calories or fractions.
type calorieBand struct {
	Low  float64
	High float64
}

// mealShares is the fixed fraction band of daily calories per meal slot.
var mealShares = map[schema.MealSlot]calorieBand{
	schema.Breakfast: {0.20, 0.25},
	schema.Lunch:     {0.30, 0.35},
	schema.Snacks:    {0.10, 0.15},
	schema.Dinner:    {0.30, 0.35},
}

// ratioBand is a low/high macro share of total calories.
type ratioBand struct {
	Low  float64
	High float64
}

// macroRatioRow is one (goal, gender, age-bracket) cell of the standard
// macro-ratio matrix: percentage-of-kcal bands plus the daily fiber grams.
type macroRatioRow struct {
	Carbs      ratioBand
	Protein    ratioBand
	Fats       ratioBand
	DailyFiber float64
}

// ageBracket partitions adults at 40 for the ratio matrix.
type ageBracket string

const (
	youngBracket ageBracket = "18-40"
	olderBracket ageBracket = "40+"
)

// bracketForAge maps an age onto its ratio-matrix bracket. Ages below 18
// use the young bracket, matching the calculator's age clamp.
func bracketForAge(age int) ageBracket {
	if age > 40 {
		return olderBracket
	}
	return youngBracket
}

// standardRatios is the standard-profile macro-ratio matrix.
var standardRatios = map[schema.DietGoal]map[schema.Gender]map[ageBracket]macroRatioRow{
	schema.MuscleGain: {
		schema.Male: {
			youngBracket: {Carbs: ratioBand{0.50, 0.55}, Protein: ratioBand{0.20, 0.25}, Fats: ratioBand{0.20, 0.25}, DailyFiber: 38},
			olderBracket: {Carbs: ratioBand{0.50, 0.55}, Protein: ratioBand{0.15, 0.20}, Fats: ratioBand{0.25, 0.30}, DailyFiber: 38},
		},
		schema.Female: {
			youngBracket: {Carbs: ratioBand{0.50, 0.55}, Protein: ratioBand{0.20, 0.22}, Fats: ratioBand{0.20, 0.25}, DailyFiber: 25},
			olderBracket: {Carbs: ratioBand{0.50, 0.55}, Protein: ratioBand{0.15, 0.20}, Fats: ratioBand{0.25, 0.30}, DailyFiber: 25},
		},
	},
	schema.WeightLoss: {
		schema.Male: {
			youngBracket: {Carbs: ratioBand{0.40, 0.45}, Protein: ratioBand{0.20, 0.25}, Fats: ratioBand{0.30, 0.35}, DailyFiber: 38},
			olderBracket: {Carbs: ratioBand{0.45, 0.50}, Protein: ratioBand{0.15, 0.20}, Fats: ratioBand{0.30, 0.35}, DailyFiber: 38},
		},
		schema.Female: {
			youngBracket: {Carbs: ratioBand{0.40, 0.45}, Protein: ratioBand{0.20, 0.22}, Fats: ratioBand{0.30, 0.35}, DailyFiber: 25},
			olderBracket: {Carbs: ratioBand{0.45, 0.50}, Protein: ratioBand{0.15, 0.20}, Fats: ratioBand{0.30, 0.35}, DailyFiber: 25},
		},
	},
	schema.HealthyEating: {
		schema.Male: {
			youngBracket: {Carbs: ratioBand{0.55, 0.60}, Protein: ratioBand{0.10, 0.15}, Fats: ratioBand{0.20, 0.25}, DailyFiber: 38},
			olderBracket: {Carbs: ratioBand{0.50, 0.55}, Protein: ratioBand{0.10, 0.12}, Fats: ratioBand{0.25, 0.30}, DailyFiber: 38},
		},
		schema.Female: {
			youngBracket: {Carbs: ratioBand{0.55, 0.60}, Protein: ratioBand{0.10, 0.15}, Fats: ratioBand{0.20, 0.25}, DailyFiber: 25},
			olderBracket: {Carbs: ratioBand{0.50, 0.55}, Protein: ratioBand{0.10, 0.12}, Fats: ratioBand{0.25, 0.30}, DailyFiber: 25},
		},
	},
}

// diabeticRatios is the flat diabetic-profile ratio row: fixed shares with
// no goal, gender or age branching.
var diabeticRatios = macroRatioRow{
	Carbs:   ratioBand{0.45, 0.45},
	Protein: ratioBand{0.20, 0.20},
	Fats:    ratioBand{0.35, 0.35},
}

// fiberPerMeal is the per-meal fiber gram band by gender.
var fiberPerMeal = map[schema.Gender]ratioBand{
	schema.Female: {6, 9},
	schema.Male:   {10, 13},
	schema.Other:  {6, 13},
}

// interpolationAnchors is one (goal, gender, age-bracket) cell of the
// age-interpolated percentage matrix: percentage anchors, per-meal fiber
// gram anchors, the grams-per-kg protein floor anchors and the daily fiber
// gram target. Values interpolate linearly across the bracket.
type interpolationAnchors struct {
	ProteinMin, ProteinMax float64 // percent of kcal
	CarbsMin, CarbsMax     float64 // percent of kcal
	FatsMin, FatsMax       float64 // percent of kcal
	FiberMin, FiberMax     float64 // grams per meal
	ProteinPerKgLow        float64 // grams per kg bodyweight
	ProteinPerKgHigh       float64
	DailyFiber             float64 // grams per day
}

// interpolationMatrix is the age-interpolated percentage matrix of the
// second calculation path.
var interpolationMatrix = map[schema.DietGoal]map[schema.Gender]map[ageBracket]interpolationAnchors{
	schema.MuscleGain: {
		schema.Male: {
			youngBracket: {ProteinMin: 20, ProteinMax: 25, CarbsMin: 50, CarbsMax: 55, FatsMin: 20, FatsMax: 25, FiberMin: 10, FiberMax: 13, ProteinPerKgLow: 1.6, ProteinPerKgHigh: 2.2, DailyFiber: 38},
			olderBracket: {ProteinMin: 15, ProteinMax: 20, CarbsMin: 50, CarbsMax: 55, FatsMin: 25, FatsMax: 30, FiberMin: 6, FiberMax: 9, ProteinPerKgLow: 1.2, ProteinPerKgHigh: 1.5, DailyFiber: 25},
		},
		schema.Female: {
			youngBracket: {ProteinMin: 20, ProteinMax: 22, CarbsMin: 50, CarbsMax: 55, FatsMin: 20, FatsMax: 25, FiberMin: 6, FiberMax: 9, ProteinPerKgLow: 1.4, ProteinPerKgHigh: 1.8, DailyFiber: 25},
			olderBracket: {ProteinMin: 15, ProteinMax: 20, CarbsMin: 50, CarbsMax: 55, FatsMin: 25, FatsMax: 30, FiberMin: 6, FiberMax: 9, ProteinPerKgLow: 1.2, ProteinPerKgHigh: 1.5, DailyFiber: 25},
		},
	},
	schema.WeightLoss: {
		schema.Male: {
			youngBracket: {ProteinMin: 20, ProteinMax: 25, CarbsMin: 40, CarbsMax: 45, FatsMin: 30, FatsMax: 35, FiberMin: 10, FiberMax: 13, ProteinPerKgLow: 1.8, ProteinPerKgHigh: 2.2, DailyFiber: 38},
			olderBracket: {ProteinMin: 18, ProteinMax: 20, CarbsMin: 45, CarbsMax: 50, FatsMin: 30, FatsMax: 35, FiberMin: 6, FiberMax: 9, ProteinPerKgLow: 1.4, ProteinPerKgHigh: 1.8, DailyFiber: 25},
		},
		schema.Female: {
			youngBracket: {ProteinMin: 18, ProteinMax: 22, CarbsMin: 40, CarbsMax: 45, FatsMin: 30, FatsMax: 35, FiberMin: 6, FiberMax: 9, ProteinPerKgLow: 1.6, ProteinPerKgHigh: 2.0, DailyFiber: 25},
			olderBracket: {ProteinMin: 18, ProteinMax: 20, CarbsMin: 45, CarbsMax: 50, FatsMin: 30, FatsMax: 35, FiberMin: 6, FiberMax: 9, ProteinPerKgLow: 1.4, ProteinPerKgHigh: 1.8, DailyFiber: 25},
		},
	},
	schema.HealthyEating: {
		schema.Male: {
			youngBracket: {ProteinMin: 10, ProteinMax: 15, CarbsMin: 55, CarbsMax: 60, FatsMin: 20, FatsMax: 25, FiberMin: 10, FiberMax: 13, ProteinPerKgLow: 0.8, ProteinPerKgHigh: 1.2, DailyFiber: 38},
			olderBracket: {ProteinMin: 10, ProteinMax: 12, CarbsMin: 50, CarbsMax: 55, FatsMin: 25, FatsMax: 30, FiberMin: 6, FiberMax: 9, ProteinPerKgLow: 0.8, ProteinPerKgHigh: 1.0, DailyFiber: 25},
		},
		schema.Female: {
			youngBracket: {ProteinMin: 10, ProteinMax: 12, CarbsMin: 55, CarbsMax: 60, FatsMin: 20, FatsMax: 25, FiberMin: 6, FiberMax: 9, ProteinPerKgLow: 0.8, ProteinPerKgHigh: 1.0, DailyFiber: 25},
			olderBracket: {ProteinMin: 10, ProteinMax: 12, CarbsMin: 50, CarbsMax: 55, FatsMin: 25, FatsMax: 30, FiberMin: 6, FiberMax: 9, ProteinPerKgLow: 0.8, ProteinPerKgHigh: 1.0, DailyFiber: 25},
		},
	},
}
