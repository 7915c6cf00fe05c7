package mcp

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/meltforce/liftlog/internal/app"
)

// --- Tool definitions ---

var toolListTemplates = mcp.NewTool("list_templates",
	mcp.WithDescription("List workout templates, newest first. Each template has a name and an ordered list of exercises with target sets, reps, weight, and rest time."),
)

var toolGetHistory = mcp.NewTool("get_history",
	mcp.WithDescription("Finished workout sessions, newest first, with duration, completed volume (reps x weight over completed sets), completed-set count, and per-exercise summaries."),
	mcp.WithNumber("limit", mcp.Description("Maximum number of sessions to return. Defaults to all.")),
)

var toolGetTrainingStats = mcp.NewTool("get_training_stats",
	mcp.WithDescription("Dashboard statistics: sessions this calendar month, total and average completed volume, trailing-7-day session count and Monday-first weekday activity, and the suggested template to resume."),
)

var toolGetSession = mcp.NewTool("get_session",
	mcp.WithDescription("The workout session currently in progress, with elapsed time, completion percentage, and rest-timer state."),
)

// --- Tool handlers ---

func (h *handlers) listTemplates(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	templates, err := h.ds.Templates(ctx)
	if err != nil {
		h.log.Error("mcp list_templates", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(templates)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	summaries, err := h.ds.HistorySummaries(ctx)
	if err != nil {
		h.log.Error("mcp get_history", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	if limit := req.GetInt("limit", 0); limit > 0 && limit < len(summaries) {
		summaries = summaries[:limit]
	}

	result, err := mcp.NewToolResultJSON(summaries)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getSession(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	status, err := h.ds.Status(ctx)
	if errors.Is(err, app.ErrNoActiveSession) {
		return mcp.NewToolResultText("No workout session is in progress."), nil
	}
	if err != nil {
		h.log.Error("mcp get_session", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(status)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getTrainingStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	summary, err := h.ds.Dashboard(ctx)
	if err != nil {
		h.log.Error("mcp get_training_stats", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(summary)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

// --- Resource definitions ---

var resRecentSessions = mcp.NewResource(
	"liftlog://recent_sessions",
	"Recent Sessions",
	mcp.WithResourceDescription("The ten most recent finished workout sessions with their statistics"),
	mcp.WithMIMEType("application/json"),
)

const recentSessionLimit = 10

func (h *handlers) recentSessions(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	summaries, err := h.ds.HistorySummaries(ctx)
	if err != nil {
		return nil, err
	}
	if len(summaries) > recentSessionLimit {
		summaries = summaries[:recentSessionLimit]
	}

	data, err := json.Marshal(summaries)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
