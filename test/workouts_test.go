//go:build integration

package test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/2beens/fitlog/internal/middleware"
	"github.com/2beens/fitlog/internal/workouts"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) doRequest(ctx context.Context, method, path, body string, header map[string]string) (*http.Response, []byte) {
	t := s.T()

	var bodyReader io.Reader
	if body != "" {
		bodyReader = strings.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, bodyReader)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, respBytes
}

func (s *IntegrationTestSuite) TestAddListDelete() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()
	header := map[string]string{"X-Forwarded-For": "10.0.0.1"}

	resp, body := s.doRequest(ctx, "POST", "/workouts", `{"category":"Cool-down","exercise":"Stretching","duration":"8"}`, header)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	assert.NotEmpty(t, resp.Header.Get("X-RateLimit-Remaining"))

	var added workouts.AddWorkoutResponse
	require.NoError(t, json.Unmarshal(body, &added))
	assert.Equal(t, "Added Stretching (8 min) to Cool-down!", added.Message)

	resp, body = s.doRequest(ctx, "GET", "/api/workouts", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var ledger map[workouts.Category][]workouts.Entry
	require.NoError(t, json.Unmarshal(body, &ledger))
	require.NotEmpty(t, ledger[workouts.CategoryCoolDown])

	path := fmt.Sprintf("/workouts/Cool-down/%d", added.Entry.ID)
	resp, body = s.doRequest(ctx, "DELETE", path, "", header)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"deleted":true}`, string(body))

	resp, body = s.doRequest(ctx, "DELETE", path, "", header)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"deleted":false}`, string(body))
}

func (s *IntegrationTestSuite) TestIdempotencyKey() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	header := map[string]string{
		"X-Forwarded-For":               "10.0.0.2",
		middleware.IdempotencyKeyHeader: uuid.NewString(),
	}
	payload := `{"category":"Warm-up","exercise":"Jumping jacks","duration":"5"}`

	resp, body := s.doRequest(ctx, "POST", "/workouts", payload, header)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	resp, _ = s.doRequest(ctx, "POST", "/workouts", payload, header)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func (s *IntegrationTestSuite) TestRateLimit() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()
	header := map[string]string{"X-Forwarded-For": "10.0.0.3"}

	limited := 0
	for i := 0; i < rateLimitPerMin+5; i++ {
		resp, _ := s.doRequest(ctx, "DELETE", "/workouts/Workout/999999", "", header)
		if resp.StatusCode == http.StatusTooManyRequests {
			limited++
			assert.NotEmpty(t, resp.Header.Get("Retry-After"))
		}
	}
	assert.Equal(t, 5, limited)

	// reads are never limited
	resp, _ := s.doRequest(ctx, "GET", "/api/stats", "", header)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func (s *IntegrationTestSuite) TestMCPInitialize() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	initReq := `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{` +
		`"protocolVersion":"2025-03-26","capabilities":{},"clientInfo":{"name":"suite","version":"1.0.0"}}}`
	resp, body := s.doRequest(ctx, "POST", "/mcp", initReq, map[string]string{
		"Accept": "application/json, text/event-stream",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Contains(t, string(body), `"fitlog"`)
}

func (s *IntegrationTestSuite) TestMetricsEndpoint() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	req, err := http.NewRequestWithContext(ctx, "GET", "http://127.0.0.1:9001/metrics", nil)
	require.NoError(t, err)
	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "fitlog_main_life_signal 1")
}
