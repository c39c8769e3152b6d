package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/fieldline/scoutbook/config"
	"github.com/fieldline/scoutbook/export"
	"github.com/fieldline/scoutbook/extract"
	"github.com/fieldline/scoutbook/gamebook"
)

// MCP server identity constants.
const (
	mcpServerName = "scoutbook"
)

// MCP tool parameter key constants — shared between schema definitions and
// argument extraction so a typo in one place is caught by the other.
const (
	argPath = "path"
)

// ServeMCP runs the extraction engine as an MCP server on stdio until the
// client disconnects.
func ServeMCP(cfg *config.Config, version string) error {
	s := server.NewMCPServer(mcpServerName, version)
	registerMCPTools(s, cfg)
	return server.ServeStdio(s)
}

func registerMCPTools(s *server.MCPServer, cfg *config.Config) {
	// extract_gamebook — parse a gamebook PDF into the structured document
	s.AddTool(
		mcp.NewTool("extract_gamebook",
			mcp.WithDescription("Extract a fixed-layout gamebook PDF into a structured JSON document: "+
				"header metadata, quarter scoreboard, scoring plays, team and player statistics, "+
				"drive summaries and the play-by-play log."),
			mcp.WithString(argPath,
				mcp.Required(),
				mcp.Description("Absolute file path of the gamebook PDF"),
			),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			path, ok := req.Params.Arguments[argPath].(string)
			if !ok || path == "" {
				return mcp.NewToolResultError(argPath + " is required"), nil
			}

			pages, err := extract.PagesFromFile(path)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			doc, err := gamebook.Assemble(pages, gamebook.Options{
				SkipMalformed: cfg.SkipMalformedPlays,
			})
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			var sb strings.Builder
			if err := export.WriteJSON(&sb, doc); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return mcp.NewToolResultText(sb.String()), nil
		},
	)

	// get_extractor_info — describe the expected input and configuration
	s.AddTool(
		mcp.NewTool("get_extractor_info",
			mcp.WithDescription("Return the expected gamebook layout and active configuration."),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText(extractorInfo(cfg)), nil
		},
	)
}

func extractorInfo(cfg *config.Config) string {
	return fmt.Sprintf(`# Scoutbook Extractor Info

## Expected Input
A fixed-layout gamebook PDF with a text layer:
- page 1: header, quarter scoreboard, scoring plays, field goals, officials, weather
- page 2: team totals
- page 3: individual offense (passing, rushing, receiving)
- page 4: defense
- page 5: drive summaries
- pages 6+: play-by-play log and participation report

## Configuration
- Max file size: %d MB
- Skip malformed plays: %t`,
		cfg.MaxUploadMB(),
		cfg.SkipMalformedPlays,
	)
}
