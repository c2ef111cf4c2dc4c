package cmd

import (
	"github.com/platefit/platefit/core"
	"github.com/platefit/platefit/internal/contract"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// loadCmd seeds the record store from JSON document files.
var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load user and menu documents into the record store.",
	Long: `Read user and menu records from JSON files and upsert them into the
record store. Each file holds one document keyed by its _id field.

Examples:
  # Seed one user and one menu
  platefit load --user-file user7.json --menu-file restro42.json

  # Seed several menus into a shared PostgreSQL store
  platefit load --menu-file a.json --menu-file b.json \
    --store-backend postgresql --store-connect "host=db dbname=platefit"`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		userFiles := viper.GetStringSlice("user-file")
		menuFiles := viper.GetStringSlice("menu-file")
		if err := core.ExecuteLoad(rootCtx, cfg, userFiles, menuFiles); err != nil {
			contract.LogFatal("Cannot load documents", err)
		}
	},
}
