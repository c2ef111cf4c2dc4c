package core

import (
	"testing"

	"github.com/platefit/platefit/schema"
	"github.com/stretchr/testify/assert"
)

// testGoal is a 600 kcal meal goal with a consistent macro split.
func testGoal() schema.GoalNutrients {
	return schema.GoalNutrients{
		Kcal:    600,
		Protein: schema.NutrientAmount{Grams: 40},
		Carbs:   schema.NutrientAmount{Grams: 60},
		Fats:    schema.NutrientAmount{Grams: 20},
		Fiber:   schema.NutrientAmount{Grams: 8},
	}
}

// alignedDish matches testGoal exactly in both absolute amounts and macro
// distribution.
func alignedDish() *schema.Dish {
	pct := GoalPercentsOf(testGoal())
	return &schema.Dish{
		ID:               "d1",
		Name:             "Aligned Bowl",
		ServingSizeGrams: 350,
		Nutrients: schema.DishNutrients{
			Energy:  600,
			Protein: 40,
			Carbs:   60,
			Fats:    20,
			Fiber:   8,
		},
		MacroPercent: schema.MacroPercent{
			Protein: schema.Percent(pct.Protein),
			Carbs:   schema.Percent(pct.Carbs),
			Fats:    schema.Percent(pct.Fats),
			Fiber:   schema.Percent(pct.Fiber),
		},
	}
}

// TestGoalPercentsOf tests the grams-to-percent conversion.
func TestGoalPercentsOf(t *testing.T) {
	pct := GoalPercentsOf(testGoal())
	assert.InDelta(t, 26.6667, pct.Protein, 1e-3)
	assert.InDelta(t, 40.0, pct.Carbs, 1e-9)
	assert.InDelta(t, 30.0, pct.Fats, 1e-9)
	assert.InDelta(t, 2.6667, pct.Fiber, 1e-3)

	assert.Equal(t, GoalPercents{}, GoalPercentsOf(schema.GoalNutrients{}))
}

// TestCappedRatio tests the density building block.
func TestCappedRatio(t *testing.T) {
	assert.InDelta(t, 0.5, cappedRatio(50, 100), 1e-9)
	assert.InDelta(t, 1.0, cappedRatio(150, 100), 1e-9)
	assert.InDelta(t, 0.0, cappedRatio(-5, 100), 1e-9)
	assert.InDelta(t, 0.0, cappedRatio(50, 0), 1e-9)
}

// TestWithinPct tests the guardrail tolerance check.
func TestWithinPct(t *testing.T) {
	assert.True(t, withinPct(110, 100, 0.18))
	assert.True(t, withinPct(82, 100, 0.18))
	assert.False(t, withinPct(79, 100, 0.18))
	assert.False(t, withinPct(119, 100, 0.18))
	assert.True(t, withinPct(9999, 0, 0.18)) // non-positive target passes
}

// TestDensityScore tests the capped-ratio density sub-score.
func TestDensityScore(t *testing.T) {
	goal := testGoal()
	pct := GoalPercentsOf(goal)
	weights := schema.DefaultFactorWeights()

	t.Run("aligned dish is full marks", func(t *testing.T) {
		assert.InDelta(t, 100.0, densityScore(alignedDish(), goal, pct, weights), 1e-6)
	})

	t.Run("overshoot is capped not rewarded", func(t *testing.T) {
		dish := alignedDish()
		dish.Nutrients.Energy = 1200
		dish.MacroPercent.Protein *= 2
		assert.LessOrEqual(t, densityScore(dish, goal, pct, weights), 100.0)
	})

	t.Run("empty dish scores zero", func(t *testing.T) {
		assert.InDelta(t, 0.0, densityScore(&schema.Dish{}, goal, pct, weights), 1e-9)
	})
}

// TestEuclideanScore tests the distance sub-score and its outlier penalty.
func TestEuclideanScore(t *testing.T) {
	goal := testGoal()
	weights := schema.DefaultFactorWeights()

	t.Run("aligned dish is full marks", func(t *testing.T) {
		assert.InDelta(t, 100.0, euclideanScore(alignedDish(), goal, weights), 1e-3)
	})

	t.Run("far component triggers penalty", func(t *testing.T) {
		near := alignedDish()
		near.Nutrients.Energy = 620 // dist 20, no penalty
		far := alignedDish()
		far.Nutrients.Energy = 640 // dist 40, x0.8

		nearScore := euclideanScore(near, goal, weights)
		farScore := euclideanScore(far, goal, weights)
		assert.Greater(t, nearScore, farScore)
		// The penalized score sits well below the proportional drop alone.
		assert.Less(t, farScore, nearScore*0.85)
	})
}

// TestSatietyScore tests the fullness estimate and hunger nudges.
func TestSatietyScore(t *testing.T) {
	dish := &schema.Dish{Nutrients: schema.DishNutrients{Energy: 100, Protein: 10, Fiber: 5}}

	assert.InDelta(t, 45.0, satietyScore(dish, schema.HungerNormal), 1e-9)
	assert.InDelta(t, 49.5, satietyScore(dish, schema.HungerHigh), 1e-9)
	assert.InDelta(t, 42.75, satietyScore(dish, schema.HungerLow), 1e-9)

	t.Run("ratio capped at one", func(t *testing.T) {
		dense := &schema.Dish{Nutrients: schema.DishNutrients{Energy: 10, Protein: 30, Fiber: 10}}
		assert.InDelta(t, 100.0, satietyScore(dense, schema.HungerNormal), 1e-9)
	})

	t.Run("zero energy does not divide by zero", func(t *testing.T) {
		odd := &schema.Dish{Nutrients: schema.DishNutrients{Energy: 0, Protein: 0.2, Fiber: 0.2}}
		assert.InDelta(t, 100.0, satietyScore(odd, schema.HungerNormal), 1e-9)
	})
}

// TestTimingScore tests the timing overlap score and its neutral
// fallbacks.
func TestTimingScore(t *testing.T) {
	tests := []struct {
		name string
		tags []string
		hour int
		want float64
	}{
		{"untagged at lunch", nil, 12, 60},
		{"breakfast tag in the morning", []string{"Breakfast"}, 8, 100},
		{"breakfast tag at lunch", []string{"breakfast"}, 12, 35},
		{"unrecognized tag", []string{"unicorn"}, 12, 50},
		{"half overlap", []string{"breakfast", "lunch"}, 12, 50},
		{"full overlap", []string{"lunch", "snack"}, 12, 100},
		{"midnight snack late", []string{"midnight snack"}, 23, 100},
		{"snack only window", []string{"snack"}, 17, 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, timingScore(tc.tags, tc.hour), 1e-9)
		})
	}
}

// TestRulesScore tests that the rule blend lands between the extremes of
// its inputs.
func TestRulesScore(t *testing.T) {
	dish := alignedDish()
	score := rulesScore(dish, schema.DefaultRuleWeights())
	assert.Greater(t, score, 0.0)
	assert.LessOrEqual(t, score, 100.0)

	t.Run("zero weights fall back safely", func(t *testing.T) {
		assert.InDelta(t, 0.0, rulesScore(dish, schema.RuleWeights{}), 1e-9)
	})
}

// TestScoreDish tests the final blend, clamping and guardrail damping.
func TestScoreDish(t *testing.T) {
	goal := testGoal()
	pct := GoalPercentsOf(goal)
	weights := schema.DefaultFactorWeights()
	rules := schema.DefaultRuleWeights()

	t.Run("aligned dish clean guardrail", func(t *testing.T) {
		scored := ScoreDish(alignedDish(), goal, pct, schema.HungerNormal, 12, weights, rules)
		assert.Equal(t, 0, scored.Breakdown.Outliers)
		assert.InDelta(t, 1.0, scored.Breakdown.GuardMult, 1e-9)
		assert.GreaterOrEqual(t, scored.Score, 0.0)
		assert.LessOrEqual(t, scored.Score, 100.0)
		assert.InDelta(t, 600.0, scored.Snapshot.Energy, 1e-9)
	})

	t.Run("one macro out damps by 0.85", func(t *testing.T) {
		dish := alignedDish()
		dish.Nutrients.Protein = 60 // goal 40, tolerance 22%
		scored := ScoreDish(dish, goal, pct, schema.HungerNormal, 12, weights, rules)
		assert.Equal(t, 1, scored.Breakdown.Outliers)
		assert.InDelta(t, 0.85, scored.Breakdown.GuardMult, 1e-9)
	})

	t.Run("two macros out damp by 0.70", func(t *testing.T) {
		dish := alignedDish()
		dish.Nutrients.Protein = 60
		dish.Nutrients.Energy = 400 // goal 600, tolerance 18%
		scored := ScoreDish(dish, goal, pct, schema.HungerNormal, 12, weights, rules)
		assert.Equal(t, 2, scored.Breakdown.Outliers)
		assert.InDelta(t, 0.70, scored.Breakdown.GuardMult, 1e-9)
	})

	t.Run("guardrail lowers the final score", func(t *testing.T) {
		clean := ScoreDish(alignedDish(), goal, pct, schema.HungerNormal, 12, weights, rules)
		dish := alignedDish()
		dish.Nutrients.Protein = 60
		dish.Nutrients.Energy = 400
		damped := ScoreDish(dish, goal, pct, schema.HungerNormal, 12, weights, rules)
		assert.Greater(t, clean.Score, damped.Score)
	})
}
