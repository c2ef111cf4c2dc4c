package cmd

import (
	"github.com/platefit/platefit/core"
	"github.com/platefit/platefit/internal/contract"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// exportCmd writes the ranked score sheet to a Parquet file.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the ranked dish scores to a Parquet file.",
	Long: `Score the configured menu against the user's goals and write every
scored dish as one Parquet row, including sub-scores, guardrail
telemetry and the macro snapshot. Useful for offline analysis of
scoring behavior across menus and users.

Examples:
  platefit export -r restro42 -u user7 --parquet-file scores.parquet`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteExport(rootCtx, cfg, viper.GetString("parquet-file")); err != nil {
			contract.LogFatal("Cannot export scores", err)
		}
	},
}
