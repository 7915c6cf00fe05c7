// Package advice fetches optional coaching text from an external service.
// The fetch is best-effort: any failure yields a fixed fallback string and
// never affects session state.
package advice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Fallback is shown whenever the advisory service is unreachable, slow, or
// returns garbage.
const Fallback = "Consistency is the key. Aim for 3 sessions this week!"

// Provider supplies advisory text for a workout context.
type Provider interface {
	Advise(ctx context.Context, workoutContext string) string
}

// Client calls an external advisory endpoint over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Compile-time check: *Client satisfies Provider.
var _ Provider = (*Client)(nil)

// NewClient creates a Client targeting the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type adviceRequest struct {
	Context string `json:"context"`
}

type adviceResponse struct {
	Text string `json:"text"`
}

// Advise requests coaching text for the given workout context. On any
// failure it returns Fallback; it never returns an error.
func (c *Client) Advise(ctx context.Context, workoutContext string) string {
	body, err := json.Marshal(adviceRequest{Context: workoutContext})
	if err != nil {
		return Fallback
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/advice", bytes.NewReader(body))
	if err != nil {
		return Fallback
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Fallback
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return Fallback
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Fallback
	}

	var parsed adviceResponse
	if err := json.Unmarshal(data, &parsed); err != nil || parsed.Text == "" {
		return Fallback
	}
	return parsed.Text
}

// Static always returns the same text. Used when no advisory service is
// configured.
type Static string

// Advise implements Provider.
func (s Static) Advise(context.Context, string) string {
	return string(s)
}

// ContextFor builds the advisory request context for a session.
func ContextFor(templateName string, exerciseCount int) string {
	return fmt.Sprintf("workout %q with %d exercises", templateName, exerciseCount)
}
