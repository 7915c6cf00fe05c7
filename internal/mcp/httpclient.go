package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/meltforce/liftlog/internal/app"
	"github.com/meltforce/liftlog/internal/models"
)

var errNotFound = errors.New("httpclient: not found")

// HTTPClient implements DataSource by calling the LiftLog REST API. Used
// for remote MCP mode where the binary runs locally (stdio) but the data
// lives on the server.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies DataSource.
var _ DataSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("httpclient: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, errNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, body)
	}

	return body, nil
}

func (c *HTTPClient) Templates(ctx context.Context) ([]models.WorkoutTemplate, error) {
	body, err := c.get(ctx, "/api/v1/templates")
	if err != nil {
		return nil, err
	}
	var templates []models.WorkoutTemplate
	if err := json.Unmarshal(body, &templates); err != nil {
		return nil, fmt.Errorf("httpclient: decode templates: %w", err)
	}
	return templates, nil
}

func (c *HTTPClient) HistorySummaries(ctx context.Context) ([]app.SessionSummary, error) {
	body, err := c.get(ctx, "/api/v1/history")
	if err != nil {
		return nil, err
	}
	var summaries []app.SessionSummary
	if err := json.Unmarshal(body, &summaries); err != nil {
		return nil, fmt.Errorf("httpclient: decode history: %w", err)
	}
	return summaries, nil
}

func (c *HTTPClient) Status(ctx context.Context) (app.SessionStatus, error) {
	body, err := c.get(ctx, "/api/v1/session/")
	if errors.Is(err, errNotFound) {
		return app.SessionStatus{}, app.ErrNoActiveSession
	}
	if err != nil {
		return app.SessionStatus{}, err
	}
	var status app.SessionStatus
	if err := json.Unmarshal(body, &status); err != nil {
		return app.SessionStatus{}, fmt.Errorf("httpclient: decode session status: %w", err)
	}
	return status, nil
}

func (c *HTTPClient) Dashboard(ctx context.Context) (app.DashboardSummary, error) {
	body, err := c.get(ctx, "/api/v1/dashboard")
	if err != nil {
		return app.DashboardSummary{}, err
	}
	var summary app.DashboardSummary
	if err := json.Unmarshal(body, &summary); err != nil {
		return app.DashboardSummary{}, fmt.Errorf("httpclient: decode dashboard: %w", err)
	}
	return summary, nil
}
