package cmd

import (
	"github.com/platefit/platefit/core"
	"github.com/platefit/platefit/internal/contract"
	"github.com/spf13/cobra"
)

// targetCmd computes the nutrition target report for a user.
var targetCmd = &cobra.Command{
	Use:   "target",
	Short: "Show the nutrition target for the user's active meal.",
	Long: `Compute the user's nutrition target report: basal metabolic rate,
the three-step daily energy chain, the per-meal calorie split and the
live/default goal pair for the meal window active at the reference time.

Examples:
  # Target for the current meal window
  platefit target -u user7

  # Target at a fixed reference time
  platefit target -u user7 --now 2026-08-28T13:00:00+05:30

  # Include the ratio-table gram bands
  platefit target -u user7 --detail`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTarget(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot compute target", err)
		}
	},
}
