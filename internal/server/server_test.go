package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spool-dev/spool/internal/config"
)

// testLogger creates a silent logger for testing
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// startTestServer binds a random port and runs the server until the test ends
func startTestServer(t *testing.T) (*Server, string) {
	t.Helper()

	cfg := config.Default()
	cfg.Server.Port = 0

	srv, err := New(cfg, testLogger())
	require.NoError(t, err)
	require.NoError(t, srv.Listen())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run(ctx)
	}()

	t.Cleanup(func() {
		cancel()
		select {
		case err := <-errCh:
			assert.NoError(t, err, "server should shut down cleanly")
		case <-time.After(5 * time.Second):
			t.Error("server did not shut down in time")
		}
	})

	return srv, "http://" + srv.Addr()
}

// =============================================================================
// Construction
// =============================================================================

func TestNew_NilConfig(t *testing.T) {
	_, err := New(nil, testLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config cannot be nil")
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Platform.HardLimit = 0

	_, err := New(cfg, testLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "platform.hard_limit")
}

func TestServer_AddrBeforeListen(t *testing.T) {
	srv, err := New(config.Default(), testLogger())
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:7180", srv.Addr())
}

// =============================================================================
// Lifecycle
// =============================================================================

func TestServer_ServesHealthOverHTTP(t *testing.T) {
	_, baseURL := startTestServer(t)

	client := &http.Client{Timeout: 3 * time.Second}
	resp, err := client.Get(baseURL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "healthy")
}

func TestServer_ServesFormatOverHTTP(t *testing.T) {
	_, baseURL := startTestServer(t)

	client := &http.Client{Timeout: 3 * time.Second}
	resp, err := client.Post(baseURL+"/format", "application/json",
		strings.NewReader(`{"content": "Hello world", "include_numbering": true}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var decoded struct {
		Posts []struct {
			Content string `json:"content"`
		} `json:"posts"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	require.Len(t, decoded.Posts, 1)
	assert.Equal(t, "1/1 Hello world", decoded.Posts[0].Content)
}

func TestServer_PortZeroPicksEphemeralPort(t *testing.T) {
	srv, _ := startTestServer(t)

	assert.NotEqual(t, "127.0.0.1:0", srv.Addr(), "a concrete port should be bound")
}
