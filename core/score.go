package core

import (
	"math"

	"github.com/platefit/platefit/schema"
)

const epsilon = 1e-6

// Guardrail tolerances: the allowed fractional deviation of each macro from
// the live goal before it counts as an outlier.
const (
	energyTolerance  = 0.18
	proteinTolerance = 0.22
	carbsTolerance   = 0.22
	fatsTolerance    = 0.25
)

// Guardrail dampers by outlier count.
const (
	guardTwoPlus = 0.70
	guardOne     = 0.85
)

// GoalPercents is the live goal expressed as percent-of-energy per macro,
// derived once per request and shared across every dish.
type GoalPercents struct {
	Protein float64
	Carbs   float64
	Fats    float64
	Fiber   float64
}

// GoalPercentsOf converts a goal's gram targets into percent-of-energy
// using the kcal-per-gram constants. A non-positive energy yields zeros.
func GoalPercentsOf(goal schema.GoalNutrients) GoalPercents {
	if goal.Kcal <= 0 {
		return GoalPercents{}
	}
	return GoalPercents{
		Protein: goal.Protein.Grams * schema.KcalPerGramProtein / goal.Kcal * 100,
		Carbs:   goal.Carbs.Grams * schema.KcalPerGramCarbs / goal.Kcal * 100,
		Fats:    goal.Fats.Grams * schema.KcalPerGramFat / goal.Kcal * 100,
		Fiber:   goal.Fiber.Grams * schema.KcalPerGramFiber / goal.Kcal * 100,
	}
}

// cappedRatio is the density building block: actual over target, capped to
// [0,1]. Non-positive targets contribute nothing.
func cappedRatio(actual, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return math.Min(1, math.Max(0, actual/target))
}

// withinPct reports whether actual lies within the fractional tolerance of
// target. Non-positive targets always pass.
func withinPct(actual, target, tolerance float64) bool {
	if target <= 0 {
		return true
	}
	return actual >= target*(1-tolerance) && actual <= target*(1+tolerance)
}

// densityScore is the weighted average of per-macro capped goal ratios,
// weighted by the effective macro weights.
func densityScore(dish *schema.Dish, goal schema.GoalNutrients, goalPct GoalPercents, weights schema.FactorWeights) float64 {
	num := weights.Protein*cappedRatio(float64(dish.MacroPercent.Protein), goalPct.Protein) +
		weights.Carbs*cappedRatio(float64(dish.MacroPercent.Carbs), goalPct.Carbs) +
		weights.Fats*cappedRatio(float64(dish.MacroPercent.Fats), goalPct.Fats) +
		weights.Fiber*cappedRatio(float64(dish.MacroPercent.Fiber), goalPct.Fiber) +
		weights.Energy*cappedRatio(dish.Nutrients.Energy, goal.Kcal)
	den := weights.MacroSum()
	if den == 0 {
		den = 1
	}
	return num / den * 100
}

// euclideanScore compares each macro's absolute amount against the live
// goal. Any single component further than 30 units from its goal flags the
// outlier penalty applied after averaging.
func euclideanScore(dish *schema.Dish, goal schema.GoalNutrients, weights schema.FactorWeights) float64 {
	components := []struct {
		actual, target, weight float64
	}{
		{dish.Nutrients.Protein, goal.Protein.Grams, weights.Protein},
		{dish.Nutrients.Carbs, goal.Carbs.Grams, weights.Carbs},
		{dish.Nutrients.Fats, goal.Fats.Grams, weights.Fats},
		{dish.Nutrients.Fiber, goal.Fiber.Grams, weights.Fiber},
		{dish.Nutrients.Energy, goal.Kcal, weights.Energy},
	}

	var sum float64
	penalty := false
	for _, c := range components {
		dist := math.Abs(c.actual - c.target)
		if dist > 30 {
			penalty = true
		}
		score := math.Max(0, math.Min(100, (1-dist/(c.target+epsilon))*100))
		sum += score * c.weight
	}

	score := sum / (weights.MacroSum() + epsilon)
	if penalty {
		score *= 0.8
	}
	return score
}

// satietyScore estimates how filling a dish is per calorie, nudged by the
// user's hunger level.
func satietyScore(dish *schema.Dish, hunger schema.HungerLevel) float64 {
	energy := dish.Nutrients.Energy
	if energy == 0 {
		energy = 1
	}
	raw := (dish.Nutrients.Protein + dish.Nutrients.Fiber) / energy

	mult := 1.0
	switch hunger {
	case schema.HungerHigh:
		mult = 1.10
	case schema.HungerLow:
		mult = 0.95
	}
	return math.Min(1, raw*3) * mult * 100
}

// rulesScore is the weighted average of the nine rule function outputs.
func rulesScore(dish *schema.Dish, rules schema.RuleWeights) float64 {
	sugarPct := 0.0
	if dish.ServingSizeGrams > 0 {
		sugarPct = dish.Nutrients.Sugar * 100 / dish.ServingSizeGrams
	}

	sum := float64(proteinOverrule(dish.MacroPercent))*rules.ProteinOverrule +
		float64(lowCarbsOverrule(dish.MacroPercent))*rules.LowCarbsOverrule +
		float64(lowFatOverrule(dish.MacroPercent))*rules.LowFatOverrule +
		float64(sugarContentRule(sugarPct))*rules.SugarContent +
		float64(sodiumContentRule(dish.Nutrients.Sodium, dish.ServingSizeGrams))*rules.SodiumContent +
		float64(saturatedFatRule(dish.Nutrients.SaturatedFat, dish.ServingSizeGrams))*rules.SaturatedFat +
		float64(cholesterolRule(dish.Nutrients.Cholesterol, dish.ServingSizeGrams))*rules.Cholesterol +
		float64(caloricDensityRule(dish.Nutrients.Energy, dish.ServingSizeGrams))*rules.CaloricDensity +
		float64(goodFatsRule(dish.Nutrients.PolyunsaturatedFat, dish.Nutrients.MonounsaturatedFat, dish.ServingSizeGrams))*rules.GoodFats

	den := rules.Sum()
	if den == 0 {
		den = 1
	}
	return sum / den
}

// timingCategoriesForHour is the set of timing categories considered valid
// at a given hour.
func timingCategoriesForHour(hour int) map[string]struct{} {
	switch {
	case hour >= 5 && hour <= 10:
		return setOf(schema.TimingBreakfast, schema.TimingBrunch, schema.TimingSnack)
	case (hour >= 11 && hour <= 15) || (hour >= 19 && hour <= 22):
		return setOf(schema.TimingLunch, schema.TimingBrunch, schema.TimingSnack, schema.TimingDinner)
	case hour >= 16 && hour <= 18:
		return setOf(schema.TimingSnack)
	default:
		return setOf(schema.TimingMidnightSnack, schema.TimingSnack)
	}
}

func setOf(vals ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(vals))
	for _, v := range vals {
		out[v] = struct{}{}
	}
	return out
}

// timingScore is the weighted overlap of a dish's timing tags with the
// categories valid right now. Untagged dishes fall back to neutral scores:
// 60 when snacking is valid, 50 otherwise; tags with no recognized
// category score 50; recognized tags with no overlap score 35.
func timingScore(tags []string, hour int) float64 {
	allowed := timingCategoriesForHour(hour)
	cats := schema.NormalizeTagSet(tags)
	if len(cats) == 0 {
		if _, ok := allowed[schema.TimingSnack]; ok {
			return 60
		}
		return 50
	}

	var num, den float64
	overlap := false
	for c := range cats {
		w, known := schema.TimingWeights[c]
		if !known {
			continue
		}
		den += w
		if _, ok := allowed[c]; ok {
			num += w
			overlap = true
		}
	}
	if den == 0 {
		return 50
	}
	if !overlap {
		return 35
	}
	return 100 * num / den
}

// ScoreDish computes one dish's final score and breakdown against the live
// goal using the effective weight vectors. The dish itself is read-only;
// all transient output lives on the returned ScoredDish.
func ScoreDish(dish *schema.Dish, goal schema.GoalNutrients, goalPct GoalPercents, hunger schema.HungerLevel, hour int, weights schema.FactorWeights, rules schema.RuleWeights) schema.ScoredDish {
	breakdown := schema.ScoreBreakdown{
		Density:   densityScore(dish, goal, goalPct, weights),
		Euclidean: euclideanScore(dish, goal, weights),
		Satiety:   satietyScore(dish, hunger),
		Rules:     rulesScore(dish, rules),
		Timing:    timingScore(dish.TimingCategories, hour),
	}

	raw := weights.Density*breakdown.Density +
		weights.Euclidean*breakdown.Euclidean +
		weights.Satiety*breakdown.Satiety +
		weights.Rules*breakdown.Rules +
		weights.Timing*breakdown.Timing

	// Guardrail: count macros outside tolerance of the live goal, damp
	// before normalizing.
	outsides := 0
	if !withinPct(dish.Nutrients.Energy, goal.Kcal, energyTolerance) {
		outsides++
	}
	if !withinPct(dish.Nutrients.Protein, goal.Protein.Grams, proteinTolerance) {
		outsides++
	}
	if !withinPct(dish.Nutrients.Carbs, goal.Carbs.Grams, carbsTolerance) {
		outsides++
	}
	if !withinPct(dish.Nutrients.Fats, goal.Fats.Grams, fatsTolerance) {
		outsides++
	}

	guard := 1.0
	switch {
	case outsides >= 2:
		guard = guardTwoPlus
	case outsides == 1:
		guard = guardOne
	}
	breakdown.Outliers = outsides
	breakdown.GuardMult = guard

	raw *= guard

	totalWeight := weights.BlendSum()
	if totalWeight == 0 {
		totalWeight = 1
	}
	score := math.Max(0, math.Min(100, raw/totalWeight))

	return schema.ScoredDish{
		Dish:  dish,
		Score: score,
		Snapshot: schema.MacroSnapshot{
			Energy:  dish.Nutrients.Energy,
			Protein: dish.Nutrients.Protein,
			Carbs:   dish.Nutrients.Carbs,
			Fats:    dish.Nutrients.Fats,
			Fiber:   dish.Nutrients.Fiber,
		},
		Breakdown: breakdown,
	}
}
