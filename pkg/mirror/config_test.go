package mirror

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	require.NotNil(t, cfg.TLSVerify)
	assert.True(t, *cfg.TLSVerify)
	assert.Zero(t, cfg.Timeout)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "http", cfg: Config{BaseURL: "http://localhost:8080/v1"}},
		{name: "https", cfg: Config{BaseURL: "https://api.axis.sh/v1"}},
		{name: "no key is fine", cfg: Config{BaseURL: "https://api.axis.sh/v1", APIKey: ""}},
		{name: "empty base url", cfg: Config{}, wantErr: true},
		{name: "bad scheme", cfg: Config{BaseURL: "ftp://api.axis.sh"}, wantErr: true},
		{name: "negative timeout", cfg: Config{BaseURL: "https://api.axis.sh", Timeout: -time.Second}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_NewHTTPClient(t *testing.T) {
	insecure := false
	cfg := &Config{TLSVerify: &insecure, Timeout: 5 * time.Second}

	client := cfg.NewHTTPClient()

	assert.Equal(t, 5*time.Second, client.Timeout)
	transport, ok := client.Transport.(*http.Transport)
	require.True(t, ok)
	require.NotNil(t, transport.TLSClientConfig)
	assert.True(t, transport.TLSClientConfig.InsecureSkipVerify)
}

func TestConfig_NewHTTPClient_VerifiesTLSByDefault(t *testing.T) {
	client := DefaultConfig().NewHTTPClient()

	transport, ok := client.Transport.(*http.Transport)
	require.True(t, ok)
	if transport.TLSClientConfig != nil {
		assert.Equal(t, false, transport.TLSClientConfig.InsecureSkipVerify)
	}
	assert.Zero(t, client.Timeout)
}
