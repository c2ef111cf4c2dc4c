package core

import (
	"strings"

	"github.com/platefit/platefit/schema"
)

// Contextual adjustment layers. Every layer is a multiplicative overlay on
// the weight vectors; layers compound in the fixed order meal-time, day,
// special occasion, cuisine, group/solo, activity level. A field set to
// 1.00 in a layer leaves that weight untouched.

// Birthday multipliers.
var (
	birthdayFactorMultipliers = schema.FactorWeights{
		Protein: 0.90, Carbs: 1.10, Fats: 1.10, Fiber: 0.90, Energy: 1.10,
		Density: 1.05, Satiety: 0.90, Euclidean: 0.90, Timing: 10.00, Rules: 0.90,
	}
	birthdayPenaltyScale = 0.85
)

// Morning and evening meal-time multipliers. Midday and late-night hours
// apply no meal-time adjustment.
var (
	morningFactorMultipliers = schema.FactorWeights{
		Protein: 1.00, Carbs: 1.15, Fats: 0.90, Fiber: 1.05, Energy: 1.05,
		Density: 0.95, Satiety: 0.95, Euclidean: 1.00, Timing: 2.00, Rules: 1.00,
	}
	morningRuleMultipliers = func() schema.RuleWeights {
		m := schema.IdentityRuleMultipliers()
		m.SugarContent = 1.10
		return m
	}()

	eveningFactorMultipliers = schema.FactorWeights{
		Protein: 1.05, Carbs: 0.85, Fats: 1.10, Fiber: 1.00, Energy: 0.90,
		Density: 1.05, Satiety: 1.10, Euclidean: 1.00, Timing: 2.00, Rules: 1.00,
	}
	eveningRuleMultipliers = func() schema.RuleWeights {
		m := schema.IdentityRuleMultipliers()
		m.SugarContent = 0.90
		return m
	}()
)

// Weekend multipliers. Weekdays apply no day adjustment.
var (
	weekendFactorMultipliers = schema.FactorWeights{
		Protein: 0.95, Carbs: 1.05, Fats: 1.05, Fiber: 0.95, Energy: 1.05,
		Density: 1.05, Satiety: 0.95, Euclidean: 1.00, Timing: 2.00, Rules: 1.00,
	}
	weekendRuleMultipliers = func() schema.RuleWeights {
		m := schema.IdentityRuleMultipliers()
		m.SugarContent = 0.90
		return m
	}()
)

// Cuisine multipliers: Indian menus shift toward richer dishes and watch
// sugar; every other cuisine leans on protein and watches sodium.
var (
	indianCuisineMultipliers = schema.FactorWeights{
		Protein: 1.05, Carbs: 0.95, Fats: 1.05, Fiber: 1.05, Energy: 1.00,
		Density: 1.05, Satiety: 1.05, Euclidean: 1.00, Timing: 2.00, Rules: 1.00,
	}
	otherCuisineMultipliers = schema.FactorWeights{
		Protein: 1.10, Carbs: 0.95, Fats: 1.00, Fiber: 1.05, Energy: 0.95,
		Density: 1.00, Satiety: 1.00, Euclidean: 1.00, Timing: 2.00, Rules: 1.00,
	}
)

// Group and solo dining multipliers with their penalty-rule scales.
var (
	groupFactorMultipliers = schema.FactorWeights{
		Protein: 0.95, Carbs: 1.05, Fats: 1.05, Fiber: 0.95, Energy: 1.05,
		Density: 1.05, Satiety: 0.95, Euclidean: 0.95, Timing: 2.00, Rules: 1.00,
	}
	groupPenaltyScale = 0.90

	soloFactorMultipliers = schema.FactorWeights{
		Protein: 1.05, Carbs: 0.95, Fats: 0.95, Fiber: 1.05, Energy: 0.95,
		Density: 0.95, Satiety: 1.05, Euclidean: 1.05, Timing: 2.00, Rules: 1.00,
	}
	soloPenaltyScale = 1.05
)

// activityAdjustment is one activity level's overlay: a factor multiplier
// vector plus selective rule overrides.
type activityAdjustment struct {
	Factors schema.FactorWeights
	Rules   schema.RuleWeights
}

// activityAdjustments keys each normalized activity level to its overlay.
var activityAdjustments = map[schema.ActivityLevel]activityAdjustment{
	schema.ActivitySedentary: {
		Factors: schema.FactorWeights{
			Protein: 1.00, Carbs: 0.85, Fats: 1.05, Fiber: 1.05, Energy: 0.90,
			Density: 1.05, Satiety: 1.00, Euclidean: 1.00, Timing: 1.00, Rules: 1.00,
		},
		Rules: func() schema.RuleWeights {
			m := schema.IdentityRuleMultipliers()
			m.SugarContent = 1.10
			return m
		}(),
	},
	schema.ActivityLight: {
		Factors: schema.FactorWeights{
			Protein: 1.05, Carbs: 0.95, Fats: 1.00, Fiber: 1.05, Energy: 0.95,
			Density: 1.00, Satiety: 1.05, Euclidean: 1.00, Timing: 1.00, Rules: 1.00,
		},
		Rules: func() schema.RuleWeights {
			m := schema.IdentityRuleMultipliers()
			m.SugarContent = 1.05
			return m
		}(),
	},
	schema.ActivityModerate: {
		Factors: schema.IdentityFactorMultipliers(),
		Rules:   schema.IdentityRuleMultipliers(),
	},
	schema.ActivityHeavy: {
		Factors: schema.FactorWeights{
			Protein: 1.15, Carbs: 1.05, Fats: 0.95, Fiber: 1.00, Energy: 1.05,
			Density: 1.00, Satiety: 1.10, Euclidean: 1.00, Timing: 1.00, Rules: 1.00,
		},
		Rules: func() schema.RuleWeights {
			m := schema.IdentityRuleMultipliers()
			m.SaturatedFat = 0.95
			return m
		}(),
	},
	schema.ActivityVeryHeavy: {
		Factors: schema.FactorWeights{
			Protein: 1.25, Carbs: 1.15, Fats: 0.90, Fiber: 1.00, Energy: 1.10,
			Density: 0.95, Satiety: 1.15, Euclidean: 1.00, Timing: 1.00, Rules: 1.00,
		},
		Rules: func() schema.RuleWeights {
			m := schema.IdentityRuleMultipliers()
			m.SaturatedFat = 0.90
			m.SugarContent = 0.95
			m.CaloricDensity = 0.95
			return m
		}(),
	},
}

// AdjustFactors layers the contextual adjustments over the base weight
// vectors and returns the effective copies for one request. The inputs are
// never modified.
func AdjustFactors(base schema.FactorWeights, baseRules schema.RuleWeights, ctx schema.ScoringContext) (schema.FactorWeights, schema.RuleWeights) {
	weights := base
	rules := baseRules

	// 1. Meal-time layer.
	switch {
	case ctx.Hour >= 5 && ctx.Hour <= 10:
		weights = weights.Scale(morningFactorMultipliers)
		rules = rules.Scale(morningRuleMultipliers)
	case ctx.Hour >= 18 && ctx.Hour <= 22:
		weights = weights.Scale(eveningFactorMultipliers)
		rules = rules.Scale(eveningRuleMultipliers)
	}

	// 2. Weekday/weekend layer. Weekday is ISO-style, Monday=0.
	if ctx.Weekday >= 5 {
		weights = weights.Scale(weekendFactorMultipliers)
		rules = rules.Scale(weekendRuleMultipliers)
	}

	// 3. Special-occasion layer.
	if ctx.Birthday {
		weights = weights.Scale(birthdayFactorMultipliers)
		rules = rules.ScalePenalties(birthdayPenaltyScale)
	}

	// 4. Cuisine layer.
	if cuisine := strings.TrimSpace(ctx.Cuisine); cuisine != "" {
		if strings.EqualFold(cuisine, "indian") {
			weights = weights.Scale(indianCuisineMultipliers)
			rules.SugarContent *= 1.10
		} else {
			weights = weights.Scale(otherCuisineMultipliers)
			rules.SodiumContent *= 1.05
		}
	}

	// 5. Group-vs-solo layer.
	if ctx.IsGroup {
		weights = weights.Scale(groupFactorMultipliers)
		rules = rules.ScalePenalties(groupPenaltyScale)
	} else {
		weights = weights.Scale(soloFactorMultipliers)
		rules = rules.ScalePenalties(soloPenaltyScale)
	}

	// 6. Activity-level layer.
	level := ctx.ActivityLevel
	adj, ok := activityAdjustments[level]
	if !ok {
		adj = activityAdjustments[schema.ActivityModerate]
	}
	weights = weights.Scale(adj.Factors)
	rules = rules.Scale(adj.Rules)

	return weights, rules
}
