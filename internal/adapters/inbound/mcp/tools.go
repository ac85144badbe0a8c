package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/IanSimon23/doccheck/internal/adapters/outbound/config"
	"github.com/IanSimon23/doccheck/internal/adapters/outbound/gitinfo"
	"github.com/IanSimon23/doccheck/internal/adapters/outbound/profilestore"
	"github.com/IanSimon23/doccheck/internal/adapters/outbound/scanner"
	"github.com/IanSimon23/doccheck/internal/application"
)

// registerTools registers all doccheck MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	// 1. doccheck_scan
	s.AddTool(
		mcplib.NewTool("doccheck_scan",
			mcplib.WithDescription("Scans the project and returns the detected package manager, directory structure, tests and CI setup as JSON"),
		),
		handleScan(projectPath),
	)

	// 2. doccheck_validate
	s.AddTool(
		mcplib.NewTool("doccheck_validate",
			mcplib.WithDescription("Checks documentation against the actual project state and returns drift findings"),
			mcplib.WithString("documentation",
				mcplib.Description("Documentation text to validate; when omitted the configured docs file is read from disk"),
			),
		),
		handleValidate(projectPath),
	)

	// 3. doccheck_generate
	s.AddTool(
		mcplib.NewTool("doccheck_generate",
			mcplib.WithDescription("Generates a documentation skeleton from the scanned project state"),
			mcplib.WithString("profile",
				mcplib.Description("Profile whose saved defaults pre-fill the skeleton sections"),
			),
		),
		handleGenerate(projectPath),
	)
}

// newServices creates the standard set of outbound adapters and services.
func newServices() (*application.ScanService, *application.ValidateService, *application.GenerateService) {
	cfgLoader := config.New()
	scanSvc := application.NewScanService(scanner.New(), gitinfo.New())
	return scanSvc,
		application.NewValidateService(scanSvc, cfgLoader),
		application.NewGenerateService(scanSvc, profilestore.New(), cfgLoader)
}

func handleScan(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		scanSvc, _, _ := newServices()
		info, err := scanSvc.Scan(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("scan failed: %v", err)), nil
		}
		return jsonResult(info)
	}
}

func handleValidate(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		scanSvc, valSvc, _ := newServices()

		doc, _ := request.GetArguments()["documentation"].(string)
		if doc == "" {
			report, err := valSvc.Validate(projectPath)
			if err != nil {
				return errorResult(fmt.Sprintf("validate failed: %v", err)), nil
			}
			return jsonResult(report)
		}

		info, err := scanSvc.Scan(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("scan failed: %v", err)), nil
		}
		findings := valSvc.ValidateText(doc, info)
		return jsonResult(map[string]any{"findings": findings})
	}
}

func handleGenerate(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		_, _, genSvc := newServices()

		profile, _ := request.GetArguments()["profile"].(string)
		doc, err := genSvc.Generate(projectPath, profile)
		if err != nil {
			return errorResult(fmt.Sprintf("generate failed: %v", err)), nil
		}
		return textResult(doc), nil
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
