package config

// Environment variables that override file configuration
const (
	EnvOpenAIKey        = "OPENAI_API_KEY"
	EnvMoralisKey       = "MORALIS_API_KEY"
	EnvDatabaseURL      = "DATABASE_URL"
	EnvAPIVersion       = "API_VERSION"
	EnvEnvironment      = "ENVIRONMENT"
	EnvPort             = "PORT"
	EnvRedisAddr        = "REDIS_ADDR"
	EnvCoingeckoKey     = "COINGECKO_API_KEY"
	EnvCoingeckoKeyType = "COINGECKO_API_KEY_TYPE"
	EnvLogLevel         = "LOG_LEVEL"
)

func (c *Config) applyEnv(getenv func(string) string) {
	override := func(target *string, name string) {
		if v := getenv(name); v != "" {
			*target = v
		}
	}

	override(&c.OpenAI.APIKey, EnvOpenAIKey)
	override(&c.Providers.MoralisAPIKey, EnvMoralisKey)
	override(&c.Database.URL, EnvDatabaseURL)
	override(&c.APIVersion, EnvAPIVersion)
	override(&c.Environment, EnvEnvironment)
	override(&c.Server.Port, EnvPort)
	override(&c.RateLimit.RedisAddr, EnvRedisAddr)
	override(&c.Providers.CoingeckoAPIKey, EnvCoingeckoKey)
	override(&c.Providers.CoingeckoKeyType, EnvCoingeckoKeyType)
	override(&c.Log.Level, EnvLogLevel)
}
