package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDefaultWeightSums tests the normalization denominators of the
// default weight vectors.
func TestDefaultWeightSums(t *testing.T) {
	w := DefaultFactorWeights()
	assert.InDelta(t, 19.0, w.MacroSum(), 1e-9)
	assert.InDelta(t, 14.0, w.BlendSum(), 1e-9)

	r := DefaultRuleWeights()
	assert.InDelta(t, 9.0, r.Sum(), 1e-9)
}

// TestFactorWeightsScale tests field-by-field scaling.
func TestFactorWeightsScale(t *testing.T) {
	base := DefaultFactorWeights()

	t.Run("identity changes nothing", func(t *testing.T) {
		assert.Equal(t, base, base.Scale(IdentityFactorMultipliers()))
	})

	t.Run("selective multiplier", func(t *testing.T) {
		m := IdentityFactorMultipliers()
		m.Timing = 2
		m.Protein = 0.5
		scaled := base.Scale(m)
		assert.InDelta(t, 12.0, scaled.Timing, 1e-9)
		assert.InDelta(t, 2.5, scaled.Protein, 1e-9)
		assert.InDelta(t, base.Carbs, scaled.Carbs, 1e-9)
	})

	t.Run("input unchanged", func(t *testing.T) {
		m := IdentityFactorMultipliers()
		m.Energy = 3
		_ = base.Scale(m)
		assert.InDelta(t, 8.0, base.Energy, 1e-9)
	})
}

// TestRuleWeightsScalePenalties tests that only the five penalty rules
// move.
func TestRuleWeightsScalePenalties(t *testing.T) {
	scaled := DefaultRuleWeights().ScalePenalties(0.9)

	assert.InDelta(t, 0.9, scaled.SugarContent, 1e-9)
	assert.InDelta(t, 0.9, scaled.SodiumContent, 1e-9)
	assert.InDelta(t, 0.9, scaled.SaturatedFat, 1e-9)
	assert.InDelta(t, 0.9, scaled.Cholesterol, 1e-9)
	assert.InDelta(t, 0.9, scaled.CaloricDensity, 1e-9)

	// Balance rules stay put.
	assert.InDelta(t, 1.0, scaled.ProteinOverrule, 1e-9)
	assert.InDelta(t, 1.0, scaled.LowCarbsOverrule, 1e-9)
	assert.InDelta(t, 1.0, scaled.LowFatOverrule, 1e-9)
	assert.InDelta(t, 1.0, scaled.GoodFats, 1e-9)
}

// TestRuleWeightsScale tests field-by-field rule scaling.
func TestRuleWeightsScale(t *testing.T) {
	m := IdentityRuleMultipliers()
	m.SugarContent = 1.1
	scaled := DefaultRuleWeights().Scale(m)
	assert.InDelta(t, 1.1, scaled.SugarContent, 1e-9)
	assert.InDelta(t, 1.0, scaled.Cholesterol, 1e-9)
}
