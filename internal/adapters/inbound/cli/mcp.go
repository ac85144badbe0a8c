package cli

import (
	"path/filepath"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/IanSimon23/doccheck/internal/adapters/inbound/mcp"
)

func newMCPCmd() *cobra.Command {
	var projectPath string

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start the doccheck MCP server (stdio)",
		Long:  "Start the doccheck MCP server using stdio transport, exposing scan, validate and generate as tools for AI coding assistants.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if projectPath == "" {
				projectPath = "."
			}
			absPath, err := filepath.Abs(projectPath)
			if err != nil {
				return err
			}
			s := mcpadapter.NewDoccheckMCPServer(absPath)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&projectPath, "path", "", "Project path (defaults to current working directory)")

	return cmd
}
