package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/spool-dev/spool/internal/api"
	"github.com/spool-dev/spool/internal/config"
)

// Client provides methods to communicate with the spoold server
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the server described by cfg
func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL: cfg.Server.BaseURL(),
		httpClient: &http.Client{
			Timeout: cfg.Server.RequestTimeout(),
		},
	}
}

// NewClientFromFlags creates a client from the global --addr flag, falling
// back to the configuration file when the flag is unset.
func NewClientFromFlags() (*Client, error) {
	if addr := ServerAddr(); addr != "" {
		return &Client{
			baseURL: fmt.Sprintf("http://%s", addr),
			httpClient: &http.Client{
				Timeout: config.Default().Server.RequestTimeout(),
			},
		}, nil
	}

	loader := config.NewLoader(GetConfigPath())
	cfg, err := loader.LoadOrDefault()
	if err != nil {
		return nil, ErrConfigInvalid(err)
	}
	return NewClient(cfg), nil
}

// Health checks if the server is healthy
func (c *Client) Health() (*api.HealthResponse, error) {
	var health api.HealthResponse
	if err := c.get("/health", &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// Limits retrieves the platform constraints the server composes against
func (c *Client) Limits() (*api.LimitsResponse, error) {
	var limits api.LimitsResponse
	if err := c.get("/limits", &limits); err != nil {
		return nil, err
	}
	return &limits, nil
}

// Format submits content and images for composition into a thread
func (c *Client) Format(req api.FormatRequest) (*api.FormatResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := c.httpClient.Post(c.baseURL+"/format", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, ErrServerConnectionFailed(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}

	var formatResp api.FormatResponse
	if err := json.NewDecoder(resp.Body).Decode(&formatResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &formatResp, nil
}

// get performs a GET request and decodes the JSON response
func (c *Client) get(path string, result interface{}) error {
	resp, err := c.httpClient.Get(c.baseURL + path)
	if err != nil {
		return ErrServerConnectionFailed(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// decodeError turns a non-200 response into the structured error the server
// emitted, falling back to the raw body when it is not one.
func decodeError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var apiErr api.APIError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Code != "" {
		return &apiErr
	}
	return fmt.Errorf("request failed: status %d: %s", resp.StatusCode, string(body))
}
