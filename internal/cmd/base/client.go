package base

import (
	"fmt"

	"github.com/axis-sh/axis-go/internal/config"
	"github.com/axis-sh/axis-go/pkg/mirror"
)

// NewMirrorClient loads configuration and builds a mirror client. Flag
// values override the config file and environment when non-empty.
func (c *Command) NewMirrorClient(configPath, baseURL string) (*mirror.Client, error) {
	cfg, err := config.Load(c.Fs, configPath)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	cfg.ApplyEnv()
	if baseURL != "" {
		cfg.Axis.BaseURL = baseURL
	}

	c.Log.SetLevel(cfg.Level())

	clientCfg, err := cfg.ClientConfig(c.Log.Named("mirror"))
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	client, err := mirror.NewClient(clientCfg)
	if err != nil {
		return nil, fmt.Errorf("error creating mirror client: %w", err)
	}
	return client, nil
}
