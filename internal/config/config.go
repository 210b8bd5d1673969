// Package config loads client and development-backend settings from the
// environment. A .env file in the working directory is read first when
// present; real environment variables always win over it.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Token store backends accepted in GOSSIP_TOKEN_STORE.
const (
	StoreFile   = "file"
	StoreRedis  = "redis"
	StoreMemory = "memory"
)

// Config holds the client's runtime settings. Each field corresponds to an
// environment variable; cmd/gossip flags may override them afterwards.
type Config struct {
	APIURL      string        // GOSSIP_API_URL: base URL of the board backend
	TokenStore  string        // GOSSIP_TOKEN_STORE: file | redis | memory
	TokenFile   string        // GOSSIP_TOKEN_FILE: path of the file-backed store
	HTTPTimeout time.Duration // GOSSIP_HTTP_TIMEOUT: per-request timeout
	LogLevel    slog.Level    // GOSSIP_LOG_LEVEL: debug | info | warn | error
	Redis       RedisConfig   // REDIS_* plus GOSSIP_REDIS_PREFIX
}

// LoadDotEnv reads the given .env files (default ".env") into the process
// environment without overriding variables that are already set. Missing
// files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// Load builds a Config from the environment, applying defaults for anything
// unset.
func Load() Config {
	return Config{
		APIURL:      strings.TrimRight(envStr("GOSSIP_API_URL", "http://localhost:8080"), "/"),
		TokenStore:  strings.ToLower(envStr("GOSSIP_TOKEN_STORE", StoreFile)),
		TokenFile:   envStr("GOSSIP_TOKEN_FILE", defaultTokenFile()),
		HTTPTimeout: envDur("GOSSIP_HTTP_TIMEOUT", 15*time.Second),
		LogLevel:    parseLevel(envStr("GOSSIP_LOG_LEVEL", "warn")),
		Redis:       LoadRedisConfig(),
	}
}

// Validate reports settings that cannot work together.
func (c Config) Validate() error {
	switch c.TokenStore {
	case StoreFile:
		if c.TokenFile == "" {
			return errors.New("GOSSIP_TOKEN_FILE is empty and no user config dir is available")
		}
	case StoreRedis, StoreMemory:
	default:
		return fmt.Errorf("unknown token store %q (want file, redis or memory)", c.TokenStore)
	}
	if c.APIURL == "" {
		return errors.New("GOSSIP_API_URL is empty")
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("GOSSIP_HTTP_TIMEOUT must be positive, got %s", c.HTTPTimeout)
	}
	return nil
}

func defaultTokenFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "gossip", "session.json")
}

func parseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelWarn
	}
	return lvl
}
