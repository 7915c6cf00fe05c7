package mcp

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/meltforce/liftlog/internal/app"
	"github.com/meltforce/liftlog/internal/models"
	"github.com/meltforce/liftlog/internal/storage"
)

// memKV is an in-memory KV backing the stores under test.
type memKV struct {
	data map[string][]byte
}

func (m *memKV) Load(_ context.Context, key string) ([]byte, error) {
	return m.data[key], nil
}

func (m *memKV) Save(_ context.Context, key string, value []byte) error {
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *memKV) Close() error { return nil }

// newLocalSource builds a LocalSource over an App with one template and one
// finished session.
func newLocalSource(t *testing.T) LocalSource {
	t.Helper()
	ctx := context.Background()
	kv := &memKV{data: make(map[string][]byte)}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	a := app.New(storage.NewTemplateStore(ctx, kv, log), storage.NewHistoryStore(ctx, kv, log), nil, log)

	tpl, err := a.CreateTemplate(ctx, "Push", []models.TemplateExercise{
		{ExerciseID: "1", Sets: 2, Reps: 10, Weight: 50, RestTime: 90},
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := a.StartWorkout(ctx, tpl.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := a.ToggleSet(0, 0); err != nil {
		t.Fatal(err)
	}
	if _, err := a.FinishWorkout(ctx); err != nil {
		t.Fatal(err)
	}
	return LocalSource{App: a}
}

// TestLocalSource verifies the in-process DataSource reflects app state.
func TestLocalSource(t *testing.T) {
	ds := newLocalSource(t)
	ctx := context.Background()

	templates, err := ds.Templates(ctx)
	if err != nil || len(templates) != 1 || templates[0].Name != "Push" {
		t.Errorf("Templates = %+v, %v, want one Push template", templates, err)
	}

	summaries, err := ds.HistorySummaries(ctx)
	if err != nil || len(summaries) != 1 || summaries[0].TotalVolume != 500 {
		t.Errorf("HistorySummaries = %+v, %v, want one session at volume 500", summaries, err)
	}

	d, err := ds.Dashboard(ctx)
	if err != nil || d.WeekSessionCount != 1 {
		t.Errorf("Dashboard = %+v, %v, want one session this week", d, err)
	}
}

// TestToolHandlers drives the tool handlers through the local source.
func TestToolHandlers(t *testing.T) {
	h := &handlers{
		ds:  newLocalSource(t),
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	ctx := context.Background()

	res, err := h.listTemplates(ctx, mcp.CallToolRequest{})
	if err != nil || res.IsError {
		t.Fatalf("list_templates = %+v, %v", res, err)
	}

	res, err = h.getTrainingStats(ctx, mcp.CallToolRequest{})
	if err != nil || res.IsError {
		t.Fatalf("get_training_stats = %+v, %v", res, err)
	}

	res, err = h.getHistory(ctx, mcp.CallToolRequest{})
	if err != nil || res.IsError {
		t.Fatalf("get_history = %+v, %v", res, err)
	}

	// The session was finished, so get_session reports none in progress.
	res, err = h.getSession(ctx, mcp.CallToolRequest{})
	if err != nil || res.IsError {
		t.Fatalf("get_session = %+v, %v", res, err)
	}
}

// TestRecentSessionsResource verifies the resource returns JSON content.
func TestRecentSessionsResource(t *testing.T) {
	h := &handlers{
		ds:  newLocalSource(t),
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	req := mcp.ReadResourceRequest{}
	req.Params.URI = "liftlog://recent_sessions"
	contents, err := h.recentSessions(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if len(contents) != 1 {
		t.Fatalf("contents = %d, want 1", len(contents))
	}
	text, ok := contents[0].(mcp.TextResourceContents)
	if !ok {
		t.Fatalf("contents[0] has type %T, want TextResourceContents", contents[0])
	}
	if !strings.Contains(text.Text, `"totalVolume"`) {
		t.Errorf("resource text missing stats: %s", text.Text)
	}
}
