// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App     AppConfig             `mapstructure:"app"`
	Server  ServerConfig          `mapstructure:"server"`
	Cache   CacheConfig           `mapstructure:"cache"`
	Tools   map[string]ToolConfig `mapstructure:"tools"`
	Logging LoggingConfig         `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// ServerConfig holds settings for the dispatch loop and the health endpoint.
type ServerConfig struct {
	HealthAddress  string `mapstructure:"health_address"`
	RequestTimeout int    `mapstructure:"request_timeout"` // milliseconds
}

// CacheConfig holds settings for the optional response cache.
type CacheConfig struct {
	Enabled bool        `mapstructure:"enabled"`
	TTL     int         `mapstructure:"ttl"` // seconds
	Redis   RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// ToolConfig holds the core settings applicable to every tool.
type ToolConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Timeout int  `mapstructure:"timeout"` // milliseconds
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

func (c *Config) validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app.name must not be empty")
	}
	if c.Server.HealthAddress == "" {
		return fmt.Errorf("server.health_address must not be empty")
	}
	if c.Cache.Enabled && c.Cache.Redis.Address == "" {
		return fmt.Errorf("cache.redis.address required when cache is enabled")
	}
	return nil
}
