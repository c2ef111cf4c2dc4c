package core

import (
	"testing"

	"github.com/platefit/platefit/schema"
	"github.com/stretchr/testify/assert"
)

// neutralCtx is a weekday midday solo context with no special layers, so
// only the solo and activity overlays apply.
func neutralCtx() schema.ScoringContext {
	return schema.ScoringContext{Hour: 12, Weekday: 2, ActivityLevel: schema.ActivityModerate}
}

// TestAdjustFactorsSoloBaseline tests the minimal layering: solo dining
// plus moderate activity over an otherwise quiet context.
func TestAdjustFactorsSoloBaseline(t *testing.T) {
	weights, rules := AdjustFactors(schema.DefaultFactorWeights(), schema.DefaultRuleWeights(), neutralCtx())

	assert.InDelta(t, 5.25, weights.Protein, 1e-9)
	assert.InDelta(t, 2.85, weights.Carbs, 1e-9)
	assert.InDelta(t, 7.6, weights.Energy, 1e-9)
	assert.InDelta(t, 12.0, weights.Timing, 1e-9)

	// Solo scales the five penalty rules up.
	assert.InDelta(t, 1.05, rules.SugarContent, 1e-9)
	assert.InDelta(t, 1.05, rules.CaloricDensity, 1e-9)
	assert.InDelta(t, 1.0, rules.ProteinOverrule, 1e-9)
}

// TestAdjustFactorsGroup tests the group overlay against solo.
func TestAdjustFactorsGroup(t *testing.T) {
	ctx := neutralCtx()
	ctx.IsGroup = true
	weights, rules := AdjustFactors(schema.DefaultFactorWeights(), schema.DefaultRuleWeights(), ctx)

	assert.InDelta(t, 4.75, weights.Protein, 1e-9)
	assert.InDelta(t, 12.0, weights.Timing, 1e-9)
	assert.InDelta(t, 0.90, rules.SodiumContent, 1e-9)
}

// TestAdjustFactorsMorning tests the meal-time layer compounding with
// solo.
func TestAdjustFactorsMorning(t *testing.T) {
	ctx := neutralCtx()
	ctx.Hour = 8
	weights, rules := AdjustFactors(schema.DefaultFactorWeights(), schema.DefaultRuleWeights(), ctx)

	assert.InDelta(t, 3*1.15*0.95, weights.Carbs, 1e-9)
	assert.InDelta(t, 24.0, weights.Timing, 1e-9) // morning x2, solo x2
	assert.InDelta(t, 1.10*1.05, rules.SugarContent, 1e-9)
}

// TestAdjustFactorsWeekend tests the weekend layer.
func TestAdjustFactorsWeekend(t *testing.T) {
	ctx := neutralCtx()
	ctx.Weekday = 6
	weights, rules := AdjustFactors(schema.DefaultFactorWeights(), schema.DefaultRuleWeights(), ctx)

	assert.InDelta(t, 5*0.95*1.05, weights.Protein, 1e-9)
	assert.InDelta(t, 24.0, weights.Timing, 1e-9)
	assert.InDelta(t, 0.90*1.05, rules.SugarContent, 1e-9)
}

// TestAdjustFactorsBirthday tests the special-occasion layer: timing
// dominates and penalties relax.
func TestAdjustFactorsBirthday(t *testing.T) {
	ctx := neutralCtx()
	ctx.Birthday = true
	weights, rules := AdjustFactors(schema.DefaultFactorWeights(), schema.DefaultRuleWeights(), ctx)

	assert.InDelta(t, 120.0, weights.Timing, 1e-9) // birthday x10, solo x2
	assert.InDelta(t, 0.85*1.05, rules.SugarContent, 1e-9)
}

// TestAdjustFactorsCuisine tests the cuisine branch pair.
func TestAdjustFactorsCuisine(t *testing.T) {
	t.Run("indian watches sugar", func(t *testing.T) {
		ctx := neutralCtx()
		ctx.Cuisine = "Indian"
		weights, rules := AdjustFactors(schema.DefaultFactorWeights(), schema.DefaultRuleWeights(), ctx)
		assert.InDelta(t, 1.10*1.05, rules.SugarContent, 1e-9)
		assert.InDelta(t, 24.0, weights.Timing, 1e-9)
	})

	t.Run("other watches sodium", func(t *testing.T) {
		ctx := neutralCtx()
		ctx.Cuisine = "Italian"
		_, rules := AdjustFactors(schema.DefaultFactorWeights(), schema.DefaultRuleWeights(), ctx)
		assert.InDelta(t, 1.05*1.05, rules.SodiumContent, 1e-9)
	})
}

// TestAdjustFactorsActivity tests the activity overlay and its fallback.
func TestAdjustFactorsActivity(t *testing.T) {
	t.Run("heavy boosts protein", func(t *testing.T) {
		ctx := neutralCtx()
		ctx.ActivityLevel = schema.ActivityHeavy
		weights, rules := AdjustFactors(schema.DefaultFactorWeights(), schema.DefaultRuleWeights(), ctx)
		assert.InDelta(t, 5*1.05*1.15, weights.Protein, 1e-9)
		assert.InDelta(t, 1.05*0.95, rules.SaturatedFat, 1e-9)
	})

	t.Run("unknown level falls back to moderate", func(t *testing.T) {
		ctx := neutralCtx()
		ctx.ActivityLevel = schema.ActivityLevel("interpretive dance")
		wUnknown, rUnknown := AdjustFactors(schema.DefaultFactorWeights(), schema.DefaultRuleWeights(), ctx)
		wModerate, rModerate := AdjustFactors(schema.DefaultFactorWeights(), schema.DefaultRuleWeights(), neutralCtx())
		assert.Equal(t, wModerate, wUnknown)
		assert.Equal(t, rModerate, rUnknown)
	})
}

// TestAdjustFactorsInputsUntouched tests that the base vectors are never
// mutated.
func TestAdjustFactorsInputsUntouched(t *testing.T) {
	base := schema.DefaultFactorWeights()
	baseRules := schema.DefaultRuleWeights()
	ctx := neutralCtx()
	ctx.Birthday = true
	ctx.IsGroup = true

	_, _ = AdjustFactors(base, baseRules, ctx)

	assert.Equal(t, schema.DefaultFactorWeights(), base)
	assert.Equal(t, schema.DefaultRuleWeights(), baseRules)
}
