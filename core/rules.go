package core

import (
	"math"

	"github.com/platefit/platefit/schema"
)

// The nine rule functions below are pure 0-100 scorers over a dish's raw
// nutrient data. Each one is defensive: bad denominators substitute 0
// instead of failing, and every result is clamped before rounding, so no
// single dish can abort a scoring batch.

// clampRule clamps a raw rule value to [0,100] and rounds to an int score.
func clampRule(score float64) int {
	return int(math.Round(math.Min(100, math.Max(0, score))))
}

// per100g normalizes a per-serving nutrient quantity to 100 g of serving.
// A missing or non-positive serving size yields 0.
func per100g(quantity, servingSize float64) float64 {
	if servingSize <= 0 {
		return 0
	}
	return quantity * 100 / servingSize
}

// proteinOverrule scores the macro distribution for adequate protein,
// penalizing carb and fat excess.
func proteinOverrule(dist schema.MacroPercent) int {
	protein := float64(dist.Protein)
	carbs := float64(dist.Carbs)
	fats := float64(dist.Fats)

	var proteinScore float64
	if protein >= 8 && protein <= 43 {
		proteinScore = 100
	} else {
		distance := math.Min(math.Abs(protein-8), math.Abs(protein-43))
		proteinScore = math.Max(0, 100-distance*2)
	}

	carbsPenalty := math.Max(0, carbs-65) * 1.5
	fatsPenalty := math.Max(0, fats-30) * 1.5

	return clampRule(proteinScore*0.5 - carbsPenalty*0.25 - fatsPenalty*0.25)
}

// bandedProteinScore is the shared protein sub-score of the low-carb and
// low-fat rules: full credit inside [8,43], partial credit in the adjacent
// bands, distance-penalized outside.
func bandedProteinScore(protein float64) float64 {
	switch {
	case protein >= 8 && protein <= 43:
		return 100
	case (protein >= 3 && protein <= 8) || (protein >= 44 && protein <= 58):
		return 80
	default:
		var distance float64
		switch {
		case protein < 3:
			distance = math.Abs(protein - 3)
		case protein > 8 && protein < 44:
			distance = math.Min(math.Abs(protein-8), math.Abs(protein-44))
		default:
			distance = math.Abs(protein - 58)
		}
		return math.Max(0, 80-distance*2)
	}
}

// lowCarbsOverrule scores the macro distribution for a sane carb share,
// with protein-band-dependent fat penalties.
func lowCarbsOverrule(dist schema.MacroPercent) int {
	protein := float64(dist.Protein)
	carbs := float64(dist.Carbs)
	fats := float64(dist.Fats)

	var carbsScore float64
	if carbs >= 45 && carbs <= 60 {
		carbsScore = 100
	} else {
		distance := math.Min(math.Abs(carbs-45), math.Abs(carbs-60))
		carbsScore = math.Max(0, 100-distance*2)
	}

	proteinScore := bandedProteinScore(protein)

	var fatsPenalty float64
	switch {
	case protein >= 8 && protein <= 43 && fats > 35:
		fatsPenalty = (fats - 35) * 1.5
	case ((protein >= 3 && protein <= 8) || (protein >= 44 && protein <= 58)) && fats > 10:
		fatsPenalty = (fats - 10) * 2
	case (protein < 3 || protein > 58) && fats > 35:
		fatsPenalty = (fats - 35) * 1.5
	}

	return clampRule(carbsScore*0.4 + proteinScore*0.4 - fatsPenalty*0.2)
}

// lowFatOverrule scores the macro distribution for a sane fat share, with
// protein-band-dependent carb penalties.
func lowFatOverrule(dist schema.MacroPercent) int {
	protein := float64(dist.Protein)
	carbs := float64(dist.Carbs)
	fats := float64(dist.Fats)

	var fatsScore float64
	if fats >= 15 && fats <= 30 {
		fatsScore = 100
	} else {
		distance := math.Min(math.Abs(fats-15), math.Abs(fats-30))
		fatsScore = math.Max(0, 100-distance*2)
	}

	proteinScore := bandedProteinScore(protein)

	var carbsPenalty float64
	switch {
	case protein >= 8 && protein <= 43:
		if carbs > 65 {
			carbsPenalty = (carbs - 65) * 1.5
		}
	case (protein >= 3 && protein <= 8) || (protein >= 44 && protein <= 58):
		if carbs > 60 {
			carbsPenalty = (carbs - 60) * 2
		}
	default:
		if carbs > 65 {
			carbsPenalty = (carbs - 65) * 1.5
		}
	}

	return clampRule(fatsScore*0.4 + proteinScore*0.4 - carbsPenalty*0.2)
}

// sugarContentRule scores the share of serving weight that is sugar, with
// steeper penalty slopes in each higher band.
func sugarContentRule(sugarPct float64) int {
	var score float64
	switch {
	case sugarPct <= 10:
		score = 100
	case sugarPct <= 20:
		score = math.Max(0, 100-(sugarPct-10)*2)
	case sugarPct <= 30:
		score = math.Max(0, 80-(sugarPct-20)*3)
	default:
		score = math.Max(0, 50-(sugarPct-30)*4)
	}
	return clampRule(score)
}

// sodiumContentRule scores sodium per 100 g of serving.
func sodiumContentRule(sodium, servingSize float64) int {
	s := per100g(sodium, servingSize)
	var score float64
	switch {
	case s <= 400:
		score = 100
	case s <= 800:
		score = math.Max(0, 100-(s-400)*0.05)
	case s <= 1200:
		score = math.Max(0, 80-(s-800)*0.075)
	default:
		score = math.Max(0, 50-(s-1200)*0.1)
	}
	return clampRule(score)
}

// saturatedFatRule scores saturated fat per 100 g of serving.
func saturatedFatRule(saturatedFat, servingSize float64) int {
	s := per100g(saturatedFat, servingSize)
	var score float64
	switch {
	case s <= 2000:
		score = 100
	case s <= 5000:
		score = math.Max(0, 100-(s-2000)*0.033)
	case s <= 7000:
		score = math.Max(0, 80-(s-5000)*0.05)
	default:
		score = math.Max(0, 50-(s-7000)*0.067)
	}
	return clampRule(score)
}

// cholesterolRule scores cholesterol per 100 g of serving.
func cholesterolRule(cholesterol, servingSize float64) int {
	c := per100g(cholesterol, servingSize)
	var score float64
	switch {
	case c <= 75:
		score = 100
	case c <= 150:
		score = math.Max(0, 100-(c-75)*0.266)
	case c <= 200:
		score = math.Max(0, 80-(c-150)*0.4)
	default:
		score = math.Max(0, 60-(c-200)*0.5)
	}
	return clampRule(score)
}

// caloricDensityRule scores energy per 100 g of serving.
func caloricDensityRule(energy, servingSize float64) int {
	cd := per100g(energy, servingSize)
	var score float64
	switch {
	case cd <= 200:
		score = 100
	case cd <= 300:
		score = math.Max(0, 100-(cd-200)*0.2)
	case cd <= 400:
		score = math.Max(0, 80-(cd-300)*0.3)
	default:
		score = math.Max(0, 50-(cd-400)*0.4)
	}
	return clampRule(score)
}

// goodFatsRule rewards poly- plus mono-unsaturated fat per 100 g of
// serving with increasing score bands up to 100.
func goodFatsRule(poly, mono, servingSize float64) int {
	good := per100g(poly+mono, servingSize)
	var score float64
	switch {
	case good <= 500:
		score = math.Max(0, 50+(good/500)*30)
	case good <= 2000:
		score = math.Max(80, 80+((good-500)/1500)*10)
	default:
		score = math.Min(100, 90+((good-2000)/1000)*5)
	}
	return clampRule(score)
}
