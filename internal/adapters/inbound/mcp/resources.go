package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// registerResources registers all doccheck MCP resources on the given server.
func registerResources(s *server.MCPServer, projectPath string) {
	// 1. doccheck://project - scanned project state
	s.AddResource(
		mcplib.NewResource(
			"doccheck://project",
			"Project State",
			mcplib.WithResourceDescription("Detected package manager, structure, tests and CI for the project"),
			mcplib.WithMIMEType("application/json"),
		),
		handleProjectResource(projectPath),
	)

	// 2. doccheck://findings - current drift findings
	s.AddResource(
		mcplib.NewResource(
			"doccheck://findings",
			"Drift Findings",
			mcplib.WithResourceDescription("Findings from validating the configured docs file against the project"),
			mcplib.WithMIMEType("application/json"),
		),
		handleFindingsResource(projectPath),
	)
}

func handleProjectResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		scanSvc, _, _ := newServices()
		info, err := scanSvc.Scan(projectPath)
		if err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}

		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling project state: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "doccheck://project",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleFindingsResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		_, valSvc, _ := newServices()
		report, err := valSvc.Validate(projectPath)
		if err != nil {
			return nil, fmt.Errorf("validate failed: %w", err)
		}

		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling report: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "doccheck://findings",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
