package schema

// FactorWeights is the scoring engine's weight vector: five macro weights
// used inside the density and distance sub-scores, and five sub-score
// weights used in the final blend. Fixed fields instead of a string-keyed
// map so that every adjustment layer is checked at compile time.
type FactorWeights struct {
	Protein   float64 `json:"protein"`
	Carbs     float64 `json:"carbs"`
	Fats      float64 `json:"fats"`
	Fiber     float64 `json:"fibers"`
	Energy    float64 `json:"energy"`
	Density   float64 `json:"density_factor"`
	Satiety   float64 `json:"satiety_factor"`
	Euclidean float64 `json:"euclidean_factor"`
	Timing    float64 `json:"timing_factor"`
	Rules     float64 `json:"rules_factor"`
}

// RuleWeights weighs the nine rule functions inside the rules sub-score.
type RuleWeights struct {
	ProteinOverrule  float64 `json:"protein_overrule_factor"`
	LowCarbsOverrule float64 `json:"low_carbs_overrule_factor"`
	LowFatOverrule   float64 `json:"low_fat_overrule_factor"`
	SugarContent     float64 `json:"sugar_content_factor"`
	SodiumContent    float64 `json:"sodium_content_factor"`
	SaturatedFat     float64 `json:"saturated_fat_factor"`
	Cholesterol      float64 `json:"cholesterol_factor"`
	CaloricDensity   float64 `json:"caloric_density_factor"`
	GoodFats         float64 `json:"good_fats_factor"`
}

// DefaultFactorWeights returns the base weight vector that every
// recommendation request starts from.
func DefaultFactorWeights() FactorWeights {
	return FactorWeights{
		Protein:   5,
		Carbs:     3,
		Fats:      2,
		Fiber:     1,
		Energy:    8,
		Density:   2,
		Satiety:   1,
		Euclidean: 4,
		Timing:    6,
		Rules:     1,
	}
}

// DefaultRuleWeights returns the base rule weight vector.
func DefaultRuleWeights() RuleWeights {
	return RuleWeights{
		ProteinOverrule:  1,
		LowCarbsOverrule: 1,
		LowFatOverrule:   1,
		SugarContent:     1,
		SodiumContent:    1,
		SaturatedFat:     1,
		Cholesterol:      1,
		CaloricDensity:   1,
		GoodFats:         1,
	}
}

// Scale multiplies the vector field-by-field with a multiplier vector.
// A layer that leaves a weight alone uses multiplier 1.0 for that field,
// which preserves the "only listed weights change" semantics.
func (w FactorWeights) Scale(m FactorWeights) FactorWeights {
	return FactorWeights{
		Protein:   w.Protein * m.Protein,
		Carbs:     w.Carbs * m.Carbs,
		Fats:      w.Fats * m.Fats,
		Fiber:     w.Fiber * m.Fiber,
		Energy:    w.Energy * m.Energy,
		Density:   w.Density * m.Density,
		Satiety:   w.Satiety * m.Satiety,
		Euclidean: w.Euclidean * m.Euclidean,
		Timing:    w.Timing * m.Timing,
		Rules:     w.Rules * m.Rules,
	}
}

// MacroSum is the normalization denominator of the density and distance
// sub-scores.
func (w FactorWeights) MacroSum() float64 {
	return w.Protein + w.Carbs + w.Fats + w.Fiber + w.Energy
}

// BlendSum is the normalization denominator of the final score blend.
func (w FactorWeights) BlendSum() float64 {
	return w.Density + w.Euclidean + w.Satiety + w.Rules + w.Timing
}

// Scale multiplies the rule vector field-by-field with a multiplier vector.
func (r RuleWeights) Scale(m RuleWeights) RuleWeights {
	return RuleWeights{
		ProteinOverrule:  r.ProteinOverrule * m.ProteinOverrule,
		LowCarbsOverrule: r.LowCarbsOverrule * m.LowCarbsOverrule,
		LowFatOverrule:   r.LowFatOverrule * m.LowFatOverrule,
		SugarContent:     r.SugarContent * m.SugarContent,
		SodiumContent:    r.SodiumContent * m.SodiumContent,
		SaturatedFat:     r.SaturatedFat * m.SaturatedFat,
		Cholesterol:      r.Cholesterol * m.Cholesterol,
		CaloricDensity:   r.CaloricDensity * m.CaloricDensity,
		GoodFats:         r.GoodFats * m.GoodFats,
	}
}

// ScalePenalties scales the five penalty rules (sugar, sodium, saturated
// fat, cholesterol, caloric density) by a single factor and leaves the
// balance rules untouched.
func (r RuleWeights) ScalePenalties(factor float64) RuleWeights {
	out := r
	out.SugarContent *= factor
	out.SodiumContent *= factor
	out.SaturatedFat *= factor
	out.Cholesterol *= factor
	out.CaloricDensity *= factor
	return out
}

// Sum is the normalization denominator of the rules sub-score. Plain
// addition keeps the result independent of any iteration order.
func (r RuleWeights) Sum() float64 {
	return r.ProteinOverrule + r.LowCarbsOverrule + r.LowFatOverrule +
		r.SugarContent + r.SodiumContent + r.SaturatedFat +
		r.Cholesterol + r.CaloricDensity + r.GoodFats
}

// IdentityFactorMultipliers returns a multiplier vector that changes nothing.
func IdentityFactorMultipliers() FactorWeights {
	return FactorWeights{
		Protein: 1, Carbs: 1, Fats: 1, Fiber: 1, Energy: 1,
		Density: 1, Satiety: 1, Euclidean: 1, Timing: 1, Rules: 1,
	}
}

// IdentityRuleMultipliers returns a rule multiplier vector that changes nothing.
func IdentityRuleMultipliers() RuleWeights {
	return RuleWeights{
		ProteinOverrule: 1, LowCarbsOverrule: 1, LowFatOverrule: 1,
		SugarContent: 1, SodiumContent: 1, SaturatedFat: 1,
		Cholesterol: 1, CaloricDensity: 1, GoodFats: 1,
	}
}
