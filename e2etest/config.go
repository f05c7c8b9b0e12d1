package e2etest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/status-im/crypto-insight/config"
)

// createTestConfig writes a configuration pointing every provider at mockURL
// and returns the path to the file
func createTestConfig(mockURL string) (string, error) {
	tempDir, err := os.MkdirTemp("", "crypto-insight-test")
	if err != nil {
		return "", err
	}

	configContent := fmt.Sprintf(`
api_version: "e2e"
environment: "test"

log:
  level: "warn"

providers:
  override_coingecko_url: "%[1]s"
  override_moralis_url: "%[1]s"
  override_ethplorer_url: "%[1]s"
  connection_timeout: 1s
  request_timeout: 2s
  coingecko_rate_limits:
    nokey:
      rate_limit_per_minute: 6000   # no throttling in tests
      burst: 100

resolver:
  max_attempts: 3
  retry_delay: 10ms                 # short delay for tests

openai:
  base_url: "%[1]s/v1"
  model: "gpt-4-1106-preview"

price_cache:
  go_cache:
    enabled: true
    default_expiration: 1m
    cleanup_interval: 5m
`, mockURL)

	configPath := filepath.Join(tempDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		os.RemoveAll(tempDir)
		return "", err
	}
	return configPath, nil
}

// loadTestConfig creates and loads a test configuration with the secrets the
// mock server expects
func loadTestConfig(mockURL string) (*config.Config, string, error) {
	configPath, err := createTestConfig(mockURL)
	if err != nil {
		return nil, "", err
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		cleanupTestConfig(configPath)
		return nil, "", err
	}

	cfg.OpenAI.APIKey = "sk-e2e"
	cfg.Providers.MoralisAPIKey = mockMoralisKey
	cfg.Database.URL = "postgres://e2e"
	cfg.Providers.CoingeckoAPIKey = ""
	cfg.RateLimit.RedisAddr = ""
	return cfg, configPath, nil
}

// cleanupTestConfig removes the temporary configuration directory
func cleanupTestConfig(configPath string) {
	if configPath != "" {
		os.RemoveAll(filepath.Dir(configPath))
	}
}
