// Package cmd defines the command-line interface for platefit.
package cmd

import (
	"github.com/platefit/platefit/internal/contract"
	"github.com/platefit/platefit/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(targetCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the dish subcommand to the parent menu command
	menuCmd.AddCommand(dishCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("restaurant-id", "r", "", "Restaurant identifier whose menu to use")
	rootCmd.PersistentFlags().StringP("user-id", "u", "", "User identifier whose profile to use")
	rootCmd.PersistentFlags().String("group", "false", "Whether the user is dining in a group (true/false)")
	rootCmd.PersistentFlags().String("cuisine", "", "Cuisine tag for context adjustment (e.g. indian)")
	rootCmd.PersistentFlags().String("timezone", contract.DefaultTimezone, "IANA timezone for meal-window resolution")
	rootCmd.PersistentFlags().String("now", "", "Reference time in RFC3339 (defaults to wall clock)")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Bool("detail", false, "Print per-dish sub-score columns")
	rootCmd.PersistentFlags().Bool("explain", false, "Print per-dish guardrail breakdown")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("store-backend", string(schema.SQLiteBackend), "Record store backend: sqlite or mysql or postgresql")
	rootCmd.PersistentFlags().String("store-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of loadCmd to Viper
	loadCmd.Flags().StringSlice("user-file", nil, "JSON file holding one user record (repeatable)")
	loadCmd.Flags().StringSlice("menu-file", nil, "JSON file holding one menu record (repeatable)")
	if err := viper.BindPFlags(loadCmd.Flags()); err != nil {
		contract.LogFatal("Error binding load flags", err)
	}

	// Bind all flags of exportCmd to Viper
	exportCmd.Flags().String("parquet-file", "dish_scores.parquet", "Path of the Parquet file to write")
	if err := viper.BindPFlags(exportCmd.Flags()); err != nil {
		contract.LogFatal("Error binding export flags", err)
	}
}
