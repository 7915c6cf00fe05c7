package mcp

import (
	"context"

	"github.com/meltforce/liftlog/internal/app"
	"github.com/meltforce/liftlog/internal/models"
)

// DataSource abstracts the data layer for MCP tools. LocalSource (in
// process) and HTTPClient (remote via REST API) both satisfy it.
type DataSource interface {
	Templates(ctx context.Context) ([]models.WorkoutTemplate, error)
	HistorySummaries(ctx context.Context) ([]app.SessionSummary, error)
	Dashboard(ctx context.Context) (app.DashboardSummary, error)
	// Status returns app.ErrNoActiveSession when no session is live.
	Status(ctx context.Context) (app.SessionStatus, error)
}

// LocalSource serves MCP tools straight from the in-process application.
type LocalSource struct {
	App *app.App
}

// Compile-time check: LocalSource satisfies DataSource.
var _ DataSource = LocalSource{}

func (l LocalSource) Templates(context.Context) ([]models.WorkoutTemplate, error) {
	return l.App.Templates(), nil
}

func (l LocalSource) HistorySummaries(context.Context) ([]app.SessionSummary, error) {
	return l.App.HistorySummaries(), nil
}

func (l LocalSource) Dashboard(context.Context) (app.DashboardSummary, error) {
	return l.App.Dashboard(), nil
}

func (l LocalSource) Status(context.Context) (app.SessionStatus, error) {
	return l.App.Status()
}
