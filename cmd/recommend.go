package cmd

import (
	"github.com/platefit/platefit/core"
	"github.com/platefit/platefit/internal/contract"
	"github.com/spf13/cobra"
)

// recommendCmd runs the full recommendation pipeline.
var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend dishes from a menu that fit the user's goals.",
	Long: `Score every dish on a restaurant menu against the user's nutrition
target and print the best and good matches.

The pipeline resolves the user's active meal window, computes their
per-meal nutrition target, adjusts the scoring weights for context
(time of day, weekend, birthday, cuisine, group dining, activity) and
blends five sub-scores per dish before bucketizing the ranking.

Examples:
  # Recommend for a user at a restaurant
  platefit recommend -r restro42 -u user7

  # Group dinner with a cuisine hint
  platefit recommend -r restro42 -u user7 --group true --cuisine indian

  # Show the full ranked score sheet with sub-scores
  platefit recommend -r restro42 -u user7 --detail

  # Export the ranking to CSV
  platefit recommend -r restro42 -u user7 --detail --output csv --output-file ranked.csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteRecommend(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run recommendation", err)
		}
	},
}
