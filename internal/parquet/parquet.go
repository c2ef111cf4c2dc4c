// Package parquet exports scored dish sheets to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/platefit/platefit/internal/contract"
	"github.com/platefit/platefit/schema"
)

// DishScoreRow is one scored dish flattened for columnar export. One row
// per dish per scoring run.
type DishScoreRow struct {
	// RestaurantID identifies the menu the dish came from
	RestaurantID string `parquet:"restaurant_id,snappy"`

	// UserID identifies whose goal the dish was scored against
	UserID string `parquet:"user_id,snappy"`

	// ScoredAt is the reference time of the scoring run
	ScoredAt time.Time `parquet:"scored_at,snappy"`

	// DishID and DishName identify the dish
	DishID   string `parquet:"dish_id,snappy"`
	DishName string `parquet:"dish_name,snappy"`

	// Rank is the dish's 1-based position in the run's score order
	Rank int32 `parquet:"rank,snappy"`

	// Score is the final guardrail-dampened score in [0,100]
	Score float64 `parquet:"score,snappy"`

	// Label is the match tier derived from the score
	Label string `parquet:"label,snappy"`

	// Sub-scores behind the final blend
	ScoreDensity   float64 `parquet:"score_density,snappy"`
	ScoreEuclidean float64 `parquet:"score_euclidean,snappy"`
	ScoreSatiety   float64 `parquet:"score_satiety,snappy"`
	ScoreRules     float64 `parquet:"score_rules,snappy"`
	ScoreTiming    float64 `parquet:"score_timing,snappy"`

	// Guardrail telemetry
	Outliers  int32   `parquet:"outliers,snappy"`
	GuardMult float64 `parquet:"guard_mult,snappy"`

	// Macro snapshot at scoring time
	EnergyKcal float64 `parquet:"energy_kcal,snappy"`
	ProteinG   float64 `parquet:"protein_g,snappy"`
	CarbsG     float64 `parquet:"carbs_g,snappy"`
	FatsG      float64 `parquet:"fats_g,snappy"`
	FiberG     float64 `parquet:"fiber_g,snappy"`
}

// ConvertScoredDishes flattens a score-ordered dish list into export rows.
func ConvertScoredDishes(dishes []schema.ScoredDish, restaurantID, userID string, scoredAt time.Time) []DishScoreRow {
	rows := make([]DishScoreRow, len(dishes))
	for i, d := range dishes {
		rows[i] = DishScoreRow{
			RestaurantID:   restaurantID,
			UserID:         userID,
			ScoredAt:       scoredAt,
			DishID:         d.Dish.ID,
			DishName:       d.Dish.Name,
			Rank:           int32(i + 1),
			Score:          d.Score,
			Label:          contract.GetPlainLabel(d.Score),
			ScoreDensity:   d.Breakdown.Density,
			ScoreEuclidean: d.Breakdown.Euclidean,
			ScoreSatiety:   d.Breakdown.Satiety,
			ScoreRules:     d.Breakdown.Rules,
			ScoreTiming:    d.Breakdown.Timing,
			Outliers:       int32(d.Breakdown.Outliers),
			GuardMult:      d.Breakdown.GuardMult,
			EnergyKcal:     d.Snapshot.Energy,
			ProteinG:       d.Snapshot.Protein,
			CarbsG:         d.Snapshot.Carbs,
			FatsG:          d.Snapshot.Fats,
			FiberG:         d.Snapshot.Fiber,
		}
	}
	return rows
}

// WriteDishScoresParquet writes the score rows to a Parquet file. The
// schema is derived from the DishScoreRow struct tags.
func WriteDishScoresParquet(rows []DishScoreRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[DishScoreRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}
