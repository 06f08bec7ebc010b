package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/2beens/fitlog/internal/profile"
	"github.com/2beens/fitlog/internal/workouts"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type workoutsLedger interface {
	Entries(ctx context.Context) map[workouts.Category][]workouts.Entry
	Totals(ctx context.Context) workouts.Totals
	Day(ctx context.Context, day time.Time) map[workouts.Category][]workouts.Entry
	DayTotals(ctx context.Context, day time.Time) workouts.Totals
	Now() time.Time
}

type profileSource interface {
	Get() (profile.UserProfile, bool)
}

// Handler turns MCP tool calls into read-only ledger and profile queries.
type Handler struct {
	ledger   workoutsLedger
	profiles profileSource
}

func NewHandler(ledger workoutsLedger, profiles profileSource) *Handler {
	return &Handler{
		ledger:   ledger,
		profiles: profiles,
	}
}

type statsResult struct {
	Totals     workouts.Totals `json:"totals"`
	Motivation string          `json:"motivation"`
	Message    string          `json:"message"`
}

type dailyResult struct {
	Date    string                                 `json:"date"`
	Entries map[workouts.Category][]workouts.Entry `json:"entries"`
	Totals  workouts.Totals                        `json:"totals"`
}

// GetWorkoutsTool returns the handler for get_workouts.
func (h *Handler) GetWorkoutsTool() server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(h.ledger.Entries(ctx)), nil
	}
}

// GetWorkoutStatsTool returns the handler for get_workout_stats.
func (h *Handler) GetWorkoutStatsTool() server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		totals := h.ledger.Totals(ctx)
		motivation := workouts.ClassifyMotivation(totals.TotalMinutes)
		return jsonResult(statsResult{
			Totals:     totals,
			Motivation: string(motivation),
			Message:    motivation.Message(),
		}), nil
	}
}

// GetDailyWorkoutsTool returns the handler for get_daily_workouts.
// Without a date argument the current day of the ledger clock is used.
func (h *Handler) GetDailyWorkoutsTool() server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		day := h.ledger.Now()
		if raw := req.GetString("date", ""); raw != "" {
			parsed, err := time.ParseInLocation(workouts.DateLayout, raw, day.Location())
			if err != nil {
				return errorResult("Invalid date: use YYYY-MM-DD"), nil
			}
			day = parsed
		}

		return jsonResult(dailyResult{
			Date:    day.Format(workouts.DateLayout),
			Entries: h.ledger.Day(ctx, day),
			Totals:  h.ledger.DayTotals(ctx, day),
		}), nil
	}
}

// GetBodyMetricsTool returns the handler for get_body_metrics.
func (h *Handler) GetBodyMetricsTool() server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		p, ok := h.profiles.Get()
		if !ok {
			return errorResult("No user profile saved yet"), nil
		}
		return jsonResult(p), nil
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return textResult(string(raw))
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
	}
}

func errorResult(msg string) *mcp.CallToolResult {
	res := textResult(msg)
	res.IsError = true
	return res
}
