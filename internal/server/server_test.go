package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leoxiewl/want-to-be/internal/dataset"
	"github.com/leoxiewl/want-to-be/internal/engine"
	"github.com/leoxiewl/want-to-be/internal/metrics"
)

func testOptions() Options {
	return Options{Year: engine.FixedYear(2024)}
}

func connect(t *testing.T, srv *mcp.Server) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()
	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	_, err := srv.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client"}, nil)
	cs, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cs.Close() })
	return cs
}

func textOf(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected TextContent, got %T", res.Content[0])
	return tc.Text
}

func TestOptions_WithDefaults(t *testing.T) {
	o := Options{}.withDefaults()
	assert.NotNil(t, o.Year)
	assert.NotNil(t, o.Logger)
	assert.Equal(t, engine.DefaultRecommendLimit, o.RecommendLimit)

	o = Options{RecommendLimit: 5, Year: engine.FixedYear(2000)}.withDefaults()
	assert.Equal(t, 5, o.RecommendLimit)
	assert.Equal(t, 2000, o.Year())
}

func TestNew_RecordsToolMetrics(t *testing.T) {
	cs := connect(t, New(dataset.Seed(), testOptions()))
	ctx := context.Background()

	okBefore := testutil.ToFloat64(metrics.ToolCallsTotal.WithLabelValues("get_person", metrics.OutcomeOK))
	errBefore := testutil.ToFloat64(metrics.ToolCallsTotal.WithLabelValues("get_person", metrics.OutcomeError))

	res, err := cs.CallTool(ctx, &mcp.CallToolParams{Name: "get_person", Arguments: map[string]any{"id": "steve-jobs"}})
	require.NoError(t, err)
	assert.False(t, res.IsError)

	res, err = cs.CallTool(ctx, &mcp.CallToolParams{Name: "get_person", Arguments: map[string]any{"id": "nobody"}})
	require.NoError(t, err)
	assert.True(t, res.IsError)

	assert.Equal(t, okBefore+1, testutil.ToFloat64(metrics.ToolCallsTotal.WithLabelValues("get_person", metrics.OutcomeOK)))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(metrics.ToolCallsTotal.WithLabelValues("get_person", metrics.OutcomeError)))
}

func TestNew_SessionsAreIndependent(t *testing.T) {
	people := dataset.Seed()
	a := connect(t, New(people, testOptions()))
	b := connect(t, New(people, testOptions()))
	ctx := context.Background()

	res, err := a.CallTool(ctx, &mcp.CallToolParams{Name: "select_person", Arguments: map[string]any{"id": "elon-musk"}})
	require.NoError(t, err)
	require.False(t, res.IsError, textOf(t, res))

	res, err = b.CallTool(ctx, &mcp.CallToolParams{Name: "current_person"})
	require.NoError(t, err)
	assert.Contains(t, textOf(t, res), "No person is currently selected")
}

func TestRouter_Healthz(t *testing.T) {
	ts := httptest.NewServer(NewRouter(dataset.Seed(), testOptions()))
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var body healthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, healthResponse{Status: "ok", People: 2}, body)
}

func TestRouter_Metrics(t *testing.T) {
	metrics.RecordToolCall("list_people", false, 0)

	ts := httptest.NewServer(NewRouter(dataset.Seed(), testOptions()))
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "wanttobe_tool_calls_total")
}

func TestRouter_UnknownPath(t *testing.T) {
	ts := httptest.NewServer(NewRouter(dataset.Seed(), testOptions()))
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/nope")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_MCPOverHTTP(t *testing.T) {
	ts := httptest.NewServer(NewRouter(dataset.Seed(), testOptions()))
	defer ts.Close()

	ctx := context.Background()
	client := mcp.NewClient(&mcp.Implementation{Name: "http-client"}, nil)
	cs, err := client.Connect(ctx, &mcp.StreamableClientTransport{Endpoint: ts.URL + "/mcp"}, nil)
	require.NoError(t, err)
	defer cs.Close()

	res, err := cs.CallTool(ctx, &mcp.CallToolParams{Name: "list_tags"})
	require.NoError(t, err)
	require.False(t, res.IsError)

	var tags []string
	require.NoError(t, json.Unmarshal([]byte(textOf(t, res)), &tags))
	assert.Contains(t, tags, "innovation")
	assert.Contains(t, tags, "space")
}
