package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/status-im/crypto-insight/interfaces"
)

func TestDefaultCacheConfig_PassThrough(t *testing.T) {
	cfg := DefaultCacheConfig()
	assert.False(t, cfg.GoCache.Enabled)
	assert.Equal(t, 30*time.Second, cfg.PriceTTL())
	require.NoError(t, cfg.Validate())

	service := NewService(cfg)
	assert.False(t, service.Enabled())

	calls := 0
	loader := func() ([]byte, error) {
		calls++
		return []byte(`{"usdPrice":7.25}`), nil
	}
	for i := 0; i < 2; i++ {
		_, status, err := service.GetOrLoad("price:eth:0xabc", loader, cfg.PriceTTL())
		require.NoError(t, err)
		assert.Equal(t, interfaces.CacheStatusMiss, status)
	}
	assert.Equal(t, 2, calls)
}

func TestConfig_YAML(t *testing.T) {
	yamlData := `
go_cache:
  enabled: true
  default_expiration: 15s
  cleanup_interval: 45s
`

	var cfg Config
	require.NoError(t, yaml.Unmarshal([]byte(yamlData), &cfg))

	assert.True(t, cfg.GoCache.Enabled)
	assert.Equal(t, 15*time.Second, cfg.PriceTTL())
	assert.Equal(t, 45*time.Second, cfg.GoCache.CleanupInterval)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{
			name:   "disabled ignores durations",
			modify: func(c *Config) { c.GoCache.DefaultExpiration = 0 },
		},
		{
			name: "enabled without ttl",
			modify: func(c *Config) {
				c.GoCache.Enabled = true
				c.GoCache.DefaultExpiration = 0
			},
			wantErr: "default_expiration",
		},
		{
			name: "enabled without cleanup",
			modify: func(c *Config) {
				c.GoCache.Enabled = true
				c.GoCache.CleanupInterval = -time.Second
			},
			wantErr: "cleanup_interval",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultCacheConfig()
			tt.modify(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_PriceTTLExpiresEntries(t *testing.T) {
	cfg := DefaultCacheConfig()
	cfg.GoCache.Enabled = true
	cfg.GoCache.DefaultExpiration = 50 * time.Millisecond
	service := NewService(cfg)

	service.Set("price:eth:0xabc", []byte(`{}`), cfg.PriceTTL())
	_, ok := service.Get("price:eth:0xabc")
	assert.True(t, ok)

	time.Sleep(80 * time.Millisecond)
	_, ok = service.Get("price:eth:0xabc")
	assert.False(t, ok)
}
