package cmd

import (
	"github.com/auditlens/auditlens/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the AuditLens MCP server",
	Long:  `Launch an MCP server that allows AI agents to run program analysis via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// The setup runs before serving so tool calls inherit a validated
		// base config; stdio stays reserved for the protocol afterwards.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
