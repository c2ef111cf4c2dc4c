package cmd

import (
	"github.com/platefit/platefit/core"
	"github.com/platefit/platefit/internal/contract"
	"github.com/spf13/cobra"
)

// menuCmd summarizes a restaurant menu.
var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Summarize a restaurant menu.",
	Long: `Show a restaurant menu's projections: dish count, vegetarian and
non-vegetarian tallies and the dishes under each meal category.

Examples:
  # Summarize a menu
  platefit menu -r restro42

  # Category list as JSON
  platefit menu -r restro42 --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteMenu(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot summarize menu", err)
		}
	},
}

// dishCmd shows one dish's nutrient detail.
var dishCmd = &cobra.Command{
	Use:   "dish <dish-name>",
	Short: "Show one dish's nutrient detail.",
	Long: `Look a dish up by name on the restaurant menu and print its serving
size, nutrients, tags and ingredients. The lookup is case-insensitive.

Examples:
  platefit menu dish "Paneer Tikka" -r restro42`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		if err := core.ExecuteDish(rootCtx, cfg, args[0]); err != nil {
			contract.LogFatal("Cannot show dish", err)
		}
	},
}
