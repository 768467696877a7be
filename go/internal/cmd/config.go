package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mcdev12/footballdb/go/internal/changefeed"
	"github.com/mcdev12/footballdb/go/internal/match"
)

// Config is the server configuration. Values come from an optional YAML file
// and are overridden by environment variables.
type Config struct {
	Server struct {
		Port            string        `yaml:"port"`
		AllowedOrigins  []string      `yaml:"allowed_origins"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
		RateLimit       struct {
			Enabled  bool          `yaml:"enabled"`
			Requests int           `yaml:"requests"`
			Window   time.Duration `yaml:"window"`
		} `yaml:"rate_limit"`
	} `yaml:"server"`

	Match struct {
		ConflictWindow time.Duration `yaml:"conflict_window"`
	} `yaml:"match"`

	ChangeFeed struct {
		NATSURL       string `yaml:"nats_url"`
		SubjectPrefix string `yaml:"subject_prefix"`
		Stream        bool   `yaml:"stream"` // websocket stream at /changes
	} `yaml:"change_feed"`

	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"` // console or json
	} `yaml:"log"`
}

func defaultConfig() *Config {
	cfg := &Config{}
	cfg.Server.Port = "8080"
	cfg.Server.AllowedOrigins = []string{"*"}
	cfg.Server.ShutdownTimeout = 10 * time.Second
	cfg.Server.RateLimit.Requests = 120
	cfg.Server.RateLimit.Window = time.Minute
	cfg.Match.ConflictWindow = match.DefaultConflictWindow
	cfg.ChangeFeed.SubjectPrefix = changefeed.DefaultNATSConfig().SubjectPrefix
	cfg.ChangeFeed.Stream = true
	cfg.Log.Level = "info"
	cfg.Log.Format = "console"
	return cfg
}

// loadConfig reads path when it exists, then applies environment overrides
func loadConfig(path string) (*Config, error) {
	config := defaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	config.Server.Port = getEnv("PORT", config.Server.Port)
	config.Server.AllowedOrigins = getEnvAsList("CORS_ALLOWED_ORIGINS", config.Server.AllowedOrigins)
	config.Server.RateLimit.Enabled = getEnvAsBool("RATE_LIMIT_ENABLED", config.Server.RateLimit.Enabled)
	config.Server.RateLimit.Requests = getEnvAsInt("RATE_LIMIT_REQUESTS", config.Server.RateLimit.Requests)
	config.Server.RateLimit.Window = getEnvAsDuration("RATE_LIMIT_WINDOW", config.Server.RateLimit.Window)
	config.Match.ConflictWindow = getEnvAsDuration("MATCH_CONFLICT_WINDOW", config.Match.ConflictWindow)
	config.ChangeFeed.NATSURL = getEnv("NATS_URL", config.ChangeFeed.NATSURL)
	config.ChangeFeed.Stream = getEnvAsBool("CHANGE_STREAM_ENABLED", config.ChangeFeed.Stream)
	config.Log.Level = getEnv("LOG_LEVEL", config.Log.Level)
	config.Log.Format = getEnv("LOG_FORMAT", config.Log.Format)

	if config.Server.RateLimit.Enabled && (config.Server.RateLimit.Requests < 1 || config.Server.RateLimit.Window <= 0) {
		return nil, fmt.Errorf("rate limit needs positive requests and window, got %d per %s",
			config.Server.RateLimit.Requests, config.Server.RateLimit.Window)
	}
	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
