package config

import "time"

// ServerConfig holds the development backend's settings.
type ServerConfig struct {
	Env        string        // APP_ENV (dev/test)
	Port       string        // APP_PORT: HTTP port to listen on
	JWTSecret  string        // JWT_SECRET: HS256 signing secret
	AccessTTL  time.Duration // ACCESS_TOKEN_TTL_MIN: token lifetime in minutes
	BcryptCost int           // BCRYPT_COST: bcrypt cost factor
	SeedTopics bool          // SEED_TOPICS: create the default topics at startup
	RateLimit  RateLimitConfig
	Redis      RedisConfig // used by the rate limiter only
}

// LoadServer reads ServerConfig from the environment. Every value has a
// default that is fine for a laptop; none of them are fit for production,
// which is why this backend is only for development and tests.
func LoadServer() ServerConfig {
	return ServerConfig{
		Env:        envStr("APP_ENV", "dev"),
		Port:       envStr("APP_PORT", "8080"),
		JWTSecret:  envStr("JWT_SECRET", "gossip-dev-secret"),
		AccessTTL:  time.Duration(envInt("ACCESS_TOKEN_TTL_MIN", 60*24)) * time.Minute,
		BcryptCost: envInt("BCRYPT_COST", 10),
		SeedTopics: envBool("SEED_TOPICS", true),
		RateLimit:  LoadRateLimitConfig(),
		Redis:      LoadRedisConfig(),
	}
}
