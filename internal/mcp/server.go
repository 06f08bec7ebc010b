package mcp

import (
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	serverName    = "fitlog"
	serverVersion = "1.0.0"
)

// NewServer builds the MCP server with the read-only fitlog tools.
func NewServer(ledger workoutsLedger, profiles profileSource) *server.MCPServer {
	h := NewHandler(ledger, profiles)
	s := server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(false),
		server.WithInstructions("fitlog: in-memory workout ledger with per-category totals and body metrics."),
		server.WithRecovery(),
	)

	s.AddTool(
		mcp.NewTool("get_workouts",
			mcp.WithDescription("Returns all logged workout entries grouped by category (Warm-up, Workout, Cool-down)."),
		),
		h.GetWorkoutsTool(),
	)

	s.AddTool(
		mcp.NewTool("get_workout_stats",
			mcp.WithDescription("Returns total minutes, entries and calories overall and per category, plus the motivation level."),
		),
		h.GetWorkoutStatsTool(),
	)

	s.AddTool(
		mcp.NewTool("get_daily_workouts",
			mcp.WithDescription("Returns the entries and totals logged on a single day."),
			mcp.WithString("date", mcp.Description("Day to query (YYYY-MM-DD), defaults to today")),
		),
		h.GetDailyWorkoutsTool(),
	)

	s.AddTool(
		mcp.NewTool("get_body_metrics",
			mcp.WithDescription("Returns the saved user profile with BMI and BMR."),
		),
		h.GetBodyMetricsTool(),
	)

	return s
}

// NewHTTPHandler exposes the MCP server over the streamable HTTP transport.
func NewHTTPHandler(s *server.MCPServer) http.Handler {
	return server.NewStreamableHTTPServer(s, server.WithStateLess(true))
}
