package mirror

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/hashicorp/go-hclog"
)

// DefaultMirrorPath is requested when GetMirror is called with an empty path.
const DefaultMirrorPath = "."

// Client talks to the Axis context mirror API.
//
// Every call is a single request with no retries. The client holds no
// mutable state after construction.
type Client struct {
	config Config
	client HTTPDoer
	logger hclog.Logger
}

// NewClient creates a mirror client. A nil cfg uses DefaultConfig.
//
// A missing API key is not an error: a warning is logged and requests are
// sent with an empty Bearer token.
func NewClient(cfg *Config) (*Client, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	resolved := cfg.withDefaults()

	if err := resolved.Validate(); err != nil {
		return nil, fmt.Errorf("invalid mirror client config: %w", err)
	}

	c := &Client{
		config: resolved,
		client: resolved.HTTPClient,
		logger: resolved.Logger,
	}
	if c.client == nil {
		c.client = resolved.NewHTTPClient()
	}

	if resolved.APIKey == "" {
		c.logger.Warn(APIKeyEnv + " is not set")
	}

	return c, nil
}

// BaseURL returns the base URL requests are sent to.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// HasAPIKey reports whether an API key was resolved at construction.
func (c *Client) HasAPIKey() bool {
	return c.config.APIKey != ""
}

// GetMirror retrieves the context mirror for path.
//
// Failures are logged and returned in the result instead of as an error;
// check Ok before using Mirror.
func (c *Client) GetMirror(ctx context.Context, path string) MirrorResult {
	if path == "" {
		path = DefaultMirrorPath
	}

	mirror, err := c.getMirror(ctx, path)
	if err != nil {
		c.logger.Error("error fetching mirror", "path", path, "error", err)
		return MirrorResult{Err: err}
	}

	return MirrorResult{Mirror: mirror}
}

func (c *Client) getMirror(ctx context.Context, path string) (*MirrorResponse, error) {
	endpoint, err := c.buildURL("/context/mirror", map[string]string{"path": path})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return decodeResponse(body)
}

// buildURL constructs a URL with query parameters
func (c *Client) buildURL(path string, params map[string]string) (string, error) {
	u, err := url.Parse(c.config.BaseURL + path)
	if err != nil {
		return "", fmt.Errorf("invalid request URL: %w", err)
	}

	if len(params) > 0 {
		q := u.Query()
		for k, v := range params {
			q.Set(k, v)
		}
		u.RawQuery = q.Encode()
	}

	return u.String(), nil
}
