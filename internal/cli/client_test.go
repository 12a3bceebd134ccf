package cli

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spool-dev/spool/internal/api"
	"github.com/spool-dev/spool/internal/composer"
	"github.com/spool-dev/spool/internal/config"
)

// ===== Test Helpers =====

// startRouterServer starts an httptest server backed by the real router.
func startRouterServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := config.Default()
	comp := composer.New(composer.Limits{
		HardLimit:  cfg.Platform.HardLimit,
		OptimalMin: cfg.Platform.OptimalMin,
		OptimalMax: cfg.Platform.OptimalMax,
	})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ts := httptest.NewServer(api.NewRouter(comp, cfg, logger))
	t.Cleanup(ts.Close)
	return ts
}

// newTestServer returns a client pointed at a router-backed test server.
func newTestServer(t *testing.T) *Client {
	t.Helper()

	ts := startRouterServer(t)
	return &Client{baseURL: ts.URL, httpClient: ts.Client()}
}

// ===== Client Tests =====

// TestNewClient verifies the client is built from the configuration
func TestNewClient(t *testing.T) {
	cfg := config.Default()
	client := NewClient(cfg)

	assert.Equal(t, "http://127.0.0.1:7180", client.baseURL)
	assert.Equal(t, cfg.Server.RequestTimeout(), client.httpClient.Timeout)
}

// TestClient_Health verifies the health round trip
func TestClient_Health(t *testing.T) {
	client := newTestServer(t)

	health, err := client.Health()
	require.NoError(t, err)

	assert.Equal(t, "healthy", health.Status)
	assert.False(t, health.Timestamp.IsZero())
}

// TestClient_Limits verifies the limits round trip
func TestClient_Limits(t *testing.T) {
	client := newTestServer(t)

	limits, err := client.Limits()
	require.NoError(t, err)

	assert.Equal(t, 500, limits.HardLimit)
	assert.Equal(t, 200, limits.OptimalMin)
	assert.Equal(t, 300, limits.OptimalMax)
	assert.Equal(t, "professional", limits.DefaultTone)
}

// TestClient_Format verifies a composition round trip
func TestClient_Format(t *testing.T) {
	client := newTestServer(t)

	resp, err := client.Format(api.FormatRequest{
		Content:          "Hello world",
		IncludeNumbering: true,
	})
	require.NoError(t, err)

	require.Len(t, resp.Posts, 1)
	assert.Equal(t, "1/1 Hello world", resp.Posts[0].Content)
	assert.Equal(t, 15, resp.Posts[0].CharacterCount)
	assert.Equal(t, "1/1 Hello world", resp.RenderedOutput)
}

// TestClient_Format_EmptyRejected verifies the structured error comes back
func TestClient_Format_EmptyRejected(t *testing.T) {
	client := newTestServer(t)

	_, err := client.Format(api.FormatRequest{})
	require.Error(t, err)

	var apiErr *api.APIError
	require.True(t, errors.As(err, &apiErr), "expected an APIError, got %T: %v", err, err)
	assert.Equal(t, "EMPTY_REQUEST", apiErr.Code)
	assert.NotEmpty(t, apiErr.Suggestion)
}

// TestClient_ConnectionRefused verifies the connection failure error
func TestClient_ConnectionRefused(t *testing.T) {
	client := &Client{
		baseURL:    "http://127.0.0.1:1",
		httpClient: &http.Client{},
	}

	_, err := client.Health()
	require.Error(t, err)

	var cliErr *CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Contains(t, cliErr.Message, "Cannot connect")
}

// TestDecodeError_PlainBody verifies the fallback for non-JSON error bodies
func TestDecodeError_PlainBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal failure", http.StatusInternalServerError)
	}))
	defer ts.Close()

	client := &Client{baseURL: ts.URL, httpClient: ts.Client()}

	_, err := client.Limits()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
	assert.Contains(t, err.Error(), "internal failure")
}

// TestNewClientFromFlags_AddrFlag verifies the --addr flag takes precedence
func TestNewClientFromFlags_AddrFlag(t *testing.T) {
	origAddr := serverAddr
	defer func() { serverAddr = origAddr }()

	serverAddr = "example.com:9000"
	client, err := NewClientFromFlags()
	require.NoError(t, err)

	assert.Equal(t, "http://example.com:9000", client.baseURL)
}

// TestNewClientFromFlags_ConfigFallback verifies config is used without --addr
func TestNewClientFromFlags_ConfigFallback(t *testing.T) {
	origAddr := serverAddr
	origConfig := configPath
	defer func() {
		serverAddr = origAddr
		configPath = origConfig
	}()

	serverAddr = ""
	configPath = t.TempDir() + "/spool.yaml"

	client, err := NewClientFromFlags()
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:7180", client.baseURL)
}
