package cmd

import (
	"github.com/platefit/platefit/core"
	"github.com/platefit/platefit/internal/contract"
	"github.com/spf13/cobra"
)

// statusCmd summarizes the record store.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show record store status.",
	Long: `Show the record store backend, the number of stored user and menu
documents and the time of the most recent write.

Examples:
  platefit status
  platefit status --store-backend mysql --store-connect "user:pass@tcp(db:3306)/platefit"`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteStatus(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot read store status", err)
		}
	},
}
