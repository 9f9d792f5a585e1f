package cli

import (
	mcpadapter "github.com/integradaneuropsicologia/ETDAH-II/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the ETDAH-II MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the ETDAH-II MCP server (stdio)",
		Long:  "Start the ETDAH-II MCP server using stdio transport. This lets assistants score answer sets, classify area scores and read the instrument.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.ServeStdio(mcpadapter.NewETDAHMCPServer())
		},
	}
}
