package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/spf13/afero"
	"github.com/xhit/go-str2duration/v2"

	"github.com/axis-sh/axis-go/pkg/mirror"
)

// BaseURLEnv overrides the configured base URL when set.
const BaseURLEnv = "AXIS_BASE_URL"

// Config is the CLI configuration file.
type Config struct {
	// Axis configures the mirror API client.
	Axis *Axis `hcl:"axis,block"`

	// LogLevel is one of trace, debug, info, warn, error, off.
	LogLevel string `hcl:"log_level,optional"`
}

// Axis is the HCL block for the mirror API client.
type Axis struct {
	BaseURL string `hcl:"base_url,optional"`

	// APIKey is better kept in the AXIS_API_KEY environment variable.
	APIKey string `hcl:"api_key,optional"`

	TLSVerify *bool `hcl:"tls_verify,optional"`

	// Timeout accepts Go durations plus day and week units, e.g. "1d2h".
	Timeout string `hcl:"timeout,optional"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Axis: &Axis{
			BaseURL: mirror.DefaultBaseURL,
		},
		LogLevel: "info",
	}
}

// Load reads an HCL configuration file from fs. An empty path returns the
// defaults.
func Load(fs afero.Fs, path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	src, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("configuration file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read configuration file: %w", err)
	}

	var cfg Config
	if err := hclsimple.Decode(path, src, nil, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	defaults := Default()
	if c.Axis == nil {
		c.Axis = defaults.Axis
	}
	if c.Axis.BaseURL == "" {
		c.Axis.BaseURL = defaults.Axis.BaseURL
	}
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
}

// ApplyEnv overrides the base URL from AXIS_BASE_URL. The API key
// environment fallback is handled by the mirror client itself.
func (c *Config) ApplyEnv() {
	if val, ok := os.LookupEnv(BaseURLEnv); ok && val != "" {
		c.Axis.BaseURL = val
	}
}

// Validate returns every problem found in the configuration.
func (c *Config) Validate() error {
	var result *multierror.Error

	if c.Axis == nil {
		result = multierror.Append(result, fmt.Errorf("axis block is required"))
	} else if c.Axis.Timeout != "" {
		if _, err := c.timeout(); err != nil {
			result = multierror.Append(result, err)
		}
	}

	if c.LogLevel != "" && hclog.LevelFromString(c.LogLevel) == hclog.NoLevel {
		result = multierror.Append(result,
			fmt.Errorf("invalid log_level %q", c.LogLevel))
	}

	return result.ErrorOrNil()
}

// Level returns the configured log level, defaulting to info.
func (c *Config) Level() hclog.Level {
	if lvl := hclog.LevelFromString(c.LogLevel); lvl != hclog.NoLevel {
		return lvl
	}
	return hclog.Info
}

// ClientConfig converts the configuration for mirror.NewClient.
func (c *Config) ClientConfig(logger hclog.Logger) (*mirror.Config, error) {
	timeout, err := c.timeout()
	if err != nil {
		return nil, err
	}

	return &mirror.Config{
		BaseURL:   c.Axis.BaseURL,
		APIKey:    c.Axis.APIKey,
		TLSVerify: c.Axis.TLSVerify,
		Timeout:   timeout,
		Logger:    logger,
	}, nil
}

func (c *Config) timeout() (time.Duration, error) {
	if c.Axis == nil || c.Axis.Timeout == "" {
		return 0, nil
	}
	d, err := str2duration.ParseDuration(c.Axis.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", c.Axis.Timeout, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("timeout must be non-negative, got: %v", d)
	}
	return d, nil
}
