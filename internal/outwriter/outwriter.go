// Package outwriter has output and writer logic.
package outwriter

import (
	"github.com/platefit/platefit/internal/contract"
	"github.com/platefit/platefit/internal/store"
	"github.com/platefit/platefit/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for
// the command layer.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteRecommendation prints the bucketed recommendation using the
// configured output format.
func (ow *OutWriter) WriteRecommendation(result schema.RecommendationResult, cfg *contract.Config) error {
	return writeRecommendationResult(result, cfg)
}

// WriteScoredDishes prints the full ranked dish list using the configured
// output format.
func (ow *OutWriter) WriteScoredDishes(dishes []schema.ScoredDish, cfg *contract.Config) error {
	return writeScoredDishResults(dishes, cfg)
}

// WriteTarget prints a nutrition target report using the configured output
// format.
func (ow *OutWriter) WriteTarget(report *schema.TargetReport, drift schema.GoalDrift, cfg *contract.Config) error {
	return writeTargetReport(report, drift, cfg)
}

// WriteMenuSummary prints the menu projection summary using the configured
// output format.
func (ow *OutWriter) WriteMenuSummary(summary *schema.MenuSummary, cfg *contract.Config) error {
	return writeMenuSummary(summary, cfg)
}

// WriteDish prints a single dish's detail using the configured output
// format.
func (ow *OutWriter) WriteDish(dish *schema.Dish, cfg *contract.Config) error {
	return writeDishDetail(dish, cfg)
}

// WriteStatus prints the record store summary using the configured output
// format.
func (ow *OutWriter) WriteStatus(status store.Status, cfg *contract.Config) error {
	return writeStoreStatus(status, cfg)
}
