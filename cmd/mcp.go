package cmd

import (
	"github.com/platefit/platefit/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Platefit MCP server",
	Long:  `Launch an MCP server that allows AI agents to recommend dishes and query menus via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Validate config up front; stdio is reserved for the protocol
		// once the server starts.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
