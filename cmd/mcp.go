package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mcpserver "github.com/prodash/prodash/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server (stdio, or HTTP with --http)",
	RunE:  runMCP,
}

func init() {
	mcpCmd.Flags().Bool("http", false, "Serve MCP over HTTP instead of stdio")
	mcpCmd.Flags().Int("port", 0, "HTTP port (overrides config)")
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	if err := requireUpstream(); err != nil {
		return err
	}

	svc := newService()

	overHTTP, _ := cmd.Flags().GetBool("http")
	if !overHTTP {
		return mcpserver.Serve(svc)
	}

	port := cfg.Server.Port
	if p, _ := cmd.Flags().GetInt("port"); p > 0 {
		port = p
	}
	return mcpserver.ServeHTTP(fmt.Sprintf(":%d", port), cfg.MCP.APIKey, svc)
}
