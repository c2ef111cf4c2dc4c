package core

import (
	"testing"

	"github.com/platefit/platefit/schema"
	"github.com/stretchr/testify/assert"
)

// TestPer100g tests serving-size normalization.
func TestPer100g(t *testing.T) {
	assert.InDelta(t, 25.0, per100g(50, 200), 1e-9)
	assert.InDelta(t, 0.0, per100g(50, 0), 1e-9)
	assert.InDelta(t, 0.0, per100g(50, -10), 1e-9)
}

// TestProteinOverrule tests the protein adequacy rule.
func TestProteinOverrule(t *testing.T) {
	tests := []struct {
		name string
		dist schema.MacroPercent
		want int
	}{
		{"protein in band", schema.MacroPercent{Protein: 20, Carbs: 50, Fats: 20}, 50},
		{"protein above band", schema.MacroPercent{Protein: 50, Carbs: 50, Fats: 20}, 43},
		{"protein below band", schema.MacroPercent{Protein: 2, Carbs: 50, Fats: 20}, 44},
		{"carb excess penalized", schema.MacroPercent{Protein: 20, Carbs: 81, Fats: 20}, 44},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, proteinOverrule(tc.dist))
		})
	}
}

// TestLowCarbsOverrule tests the carb share rule with its protein-band
// dependent fat penalties.
func TestLowCarbsOverrule(t *testing.T) {
	tests := []struct {
		name string
		dist schema.MacroPercent
		want int
	}{
		{"balanced", schema.MacroPercent{Protein: 20, Carbs: 50, Fats: 20}, 80},
		{"fat excess in main band", schema.MacroPercent{Protein: 20, Carbs: 50, Fats: 45}, 77},
		{"low protein band tightens fat", schema.MacroPercent{Protein: 5, Carbs: 50, Fats: 20}, 68},
		{"carbs below band", schema.MacroPercent{Protein: 20, Carbs: 30, Fats: 20}, 68},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, lowCarbsOverrule(tc.dist))
		})
	}
}

// TestLowFatOverrule tests the fat share rule with its protein-band
// dependent carb penalties.
func TestLowFatOverrule(t *testing.T) {
	tests := []struct {
		name string
		dist schema.MacroPercent
		want int
	}{
		{"balanced", schema.MacroPercent{Protein: 20, Carbs: 50, Fats: 20}, 80},
		{"carb excess in main band", schema.MacroPercent{Protein: 20, Carbs: 73, Fats: 20}, 78},
		{"fats below band", schema.MacroPercent{Protein: 20, Carbs: 50, Fats: 5}, 72},
		{"high protein band", schema.MacroPercent{Protein: 50, Carbs: 50, Fats: 20}, 72},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, lowFatOverrule(tc.dist))
		})
	}
}

// TestSugarContentRule tests the banded sugar penalty slopes.
func TestSugarContentRule(t *testing.T) {
	tests := []struct {
		sugarPct float64
		want     int
	}{
		{5, 100},
		{15, 90},
		{25, 65},
		{35, 30},
		{45, 0},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, sugarContentRule(tc.sugarPct), "sugarPct=%v", tc.sugarPct)
	}
}

// TestSodiumContentRule tests sodium per 100 g scoring.
func TestSodiumContentRule(t *testing.T) {
	tests := []struct {
		sodium float64
		want   int
	}{
		{300, 100},
		{600, 90},
		{1000, 65},
		{1400, 30},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, sodiumContentRule(tc.sodium, 100), "sodium=%v", tc.sodium)
	}

	// Unknown serving size is treated as zero content.
	assert.Equal(t, 100, sodiumContentRule(1400, 0))
}

// TestSaturatedFatRule tests saturated fat per 100 g scoring.
func TestSaturatedFatRule(t *testing.T) {
	tests := []struct {
		satFat float64
		want   int
	}{
		{1500, 100},
		{3000, 67},
		{6000, 30},
		{9000, 0},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, saturatedFatRule(tc.satFat, 100), "satFat=%v", tc.satFat)
	}
}

// TestCholesterolRule tests cholesterol per 100 g scoring.
func TestCholesterolRule(t *testing.T) {
	tests := []struct {
		cholesterol float64
		want        int
	}{
		{50, 100},
		{100, 93},
		{175, 70},
		{250, 35},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, cholesterolRule(tc.cholesterol, 100), "cholesterol=%v", tc.cholesterol)
	}
}

// TestCaloricDensityRule tests energy per 100 g scoring.
func TestCaloricDensityRule(t *testing.T) {
	tests := []struct {
		energy float64
		want   int
	}{
		{150, 100},
		{250, 90},
		{350, 65},
		{500, 10},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, caloricDensityRule(tc.energy, 100), "energy=%v", tc.energy)
	}
}

// TestGoodFatsRule tests the unsaturated fat reward bands.
func TestGoodFatsRule(t *testing.T) {
	tests := []struct {
		name       string
		poly, mono float64
		want       int
	}{
		{"none", 0, 0, 50},
		{"low band", 100, 150, 65},
		{"band edge", 250, 250, 80},
		{"mid band", 600, 650, 85},
		{"upper band", 1500, 1900, 97},
		{"capped", 3000, 2000, 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, goodFatsRule(tc.poly, tc.mono, 100))
		})
	}
}
