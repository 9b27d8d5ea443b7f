package mirror

import (
	"crypto/tls"
	"net/http"
	"os"
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-hclog"
)

const (
	// DefaultBaseURL is the Axis API used when no base URL is configured.
	DefaultBaseURL = "https://api.axis.sh/v1"

	// APIKeyEnv is consulted when no API key is passed explicitly.
	APIKeyEnv = "AXIS_API_KEY"
)

var schemeRE = regexp.MustCompile(`^https?://`)

// HTTPDoer is the subset of *http.Client used by the client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config contains configuration for the mirror client.
//
// Example configuration (HCL):
//
//	axis {
//	  base_url   = "https://api.axis.sh/v1"
//	  tls_verify = true
//	  timeout    = "30s"
//	}
type Config struct {
	// BaseURL of the Axis API.
	// Default: https://api.axis.sh/v1
	BaseURL string `json:"baseUrl"`

	// APIKey is sent as a Bearer token. Falls back to AXIS_API_KEY.
	APIKey string `json:"-"` // Don't marshal the key to JSON

	// TLSVerify controls TLS certificate verification
	// Set to false only for development/testing with self-signed certs
	TLSVerify *bool `json:"tlsVerify,omitempty"`

	// Timeout for API requests. Zero leaves the transport default in place.
	Timeout time.Duration `json:"timeout,omitempty"`

	// Logger receives warnings and request failures.
	// Default: an hclog logger writing to standard output.
	Logger hclog.Logger `json:"-"`

	// HTTPClient overrides the HTTP client built from this config.
	HTTPClient HTTPDoer `json:"-"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	tlsVerify := true
	return &Config{
		BaseURL:   DefaultBaseURL,
		TLSVerify: &tlsVerify,
	}
}

// Validate checks if the configuration is valid. A missing API key is not
// a configuration error.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.BaseURL,
			validation.Required,
			is.URL,
			validation.Match(schemeRE).Error("must use http or https scheme"),
		),
		validation.Field(&c.Timeout, validation.Min(time.Duration(0))),
	)
}

// NewHTTPClient creates a configured HTTP client for this config
func (c *Config) NewHTTPClient() *http.Client {
	transport := cleanhttp.DefaultPooledTransport()

	// Configure TLS verification
	if c.TLSVerify != nil && !*c.TLSVerify {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	return &http.Client{
		Timeout:   c.Timeout,
		Transport: transport,
	}
}

// withDefaults returns a copy of c with unset fields filled in and the API
// key resolved: explicit value, then AXIS_API_KEY, then empty.
func (c Config) withDefaults() Config {
	defaults := DefaultConfig()
	if c.BaseURL == "" {
		c.BaseURL = defaults.BaseURL
	}
	if c.TLSVerify == nil {
		c.TLSVerify = defaults.TLSVerify
	}
	if c.Logger == nil {
		c.Logger = hclog.New(&hclog.LoggerOptions{
			Name:   "axis",
			Output: os.Stdout,
		})
	}
	if c.APIKey == "" {
		c.APIKey = os.Getenv(APIKeyEnv)
	}
	return c
}
