// Package mcptool exposes the cube game solver as Model Context Protocol tools.
package mcptool

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/aoc/cubes"
)

// Server holds the MCP server and the rule used when a call does not
// override it.
type Server struct {
	rule      cubes.Rule
	log       commonlog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates an MCP server with all tools registered.
func NewServer(version string, rule cubes.Rule) *Server {
	s := &Server{
		rule: rule,
		log:  commonlog.GetLogger("aoc.mcp"),
	}

	s.mcpServer = server.NewMCPServer(
		"aoc-cubes",
		version,
		server.WithToolCapabilities(true),
		server.WithInstructions(`Cube game solver

Game records look like "Game 1: 3 blue, 4 red; 1 red, 2 green". Each record
lists the handfuls of red, green and blue cubes revealed from a bag.

AVAILABLE TOOLS:
- solve_cubes: sum of IDs of games possible under a bag limit, and sum of powers of minimum bags
- normalize_games: rewrite game records in canonical form (red, green, blue order)`),
	)

	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	limit := func(color string, def uint32) map[string]interface{} {
		return map[string]interface{}{
			"type":        "integer",
			"minimum":     0,
			"description": fmt.Sprintf("Number of %s cubes in the bag (default %d)", color, def),
		}
	}

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "solve_cubes",
		Description: "Analyze game records: which games fit the bag, each game's minimum bag and its power, and both sums",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"input": map[string]interface{}{
					"type":        "string",
					"description": "Game records, one per line",
				},
				"max_red":   limit("red", s.rule.MaxRed),
				"max_green": limit("green", s.rule.MaxGreen),
				"max_blue":  limit("blue", s.rule.MaxBlue),
			},
			Required: []string{"input"},
		},
	}, s.handleSolve)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "normalize_games",
		Description: "Parse game records and print them back in canonical form",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"input": map[string]interface{}{
					"type":        "string",
					"description": "Game records, one per line",
				},
			},
			Required: []string{"input"},
		},
	}, s.handleNormalize)
}

// MCPServer returns the underlying server for serving.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio serves the tools over standard input and output until the
// client disconnects.
func (s *Server) ServeStdio() error {
	s.log.Infof("serving MCP over stdio with %s", s.rule)
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) handleSolve(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	input, ok := args["input"].(string)
	if !ok {
		return mcp.NewToolResultError("input is required"), nil
	}

	rule := s.rule
	for name, field := range map[string]*uint32{
		"max_red":   &rule.MaxRed,
		"max_green": &rule.MaxGreen,
		"max_blue":  &rule.MaxBlue,
	} {
		raw, present := args[name]
		if !present {
			continue
		}
		n, err := toUint32(raw)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("%s: %v", name, err)), nil
		}
		*field = n
	}

	report, err := cubes.Solve(input, rule)
	if err != nil {
		s.log.Debugf("solve_cubes: %v", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleNormalize(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	input, ok := args["input"].(string)
	if !ok {
		return mcp.NewToolResultError("input is required"), nil
	}

	games, err := cubes.ParseGames([]byte(input), "")
	if err != nil {
		s.log.Debugf("normalize_games: %v", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	lines := make([]string, len(games))
	for i, g := range games {
		lines[i] = g.String()
	}
	return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
}

// toUint32 accepts the numeric forms a JSON decoder produces.
func toUint32(v interface{}) (uint32, error) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case int:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, err
		}
		f = parsed
	default:
		return 0, fmt.Errorf("expected a number, got %T", v)
	}
	if f < 0 || f > math.MaxUint32 || f != math.Trunc(f) {
		return 0, fmt.Errorf("%v is not a cube count", f)
	}
	return uint32(f), nil
}
