package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the full server configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Game    GameConfig    `mapstructure:"game"`
	Session SessionConfig `mapstructure:"session"`
	CORS    CORSConfig    `mapstructure:"cors"`
}

// ServerConfig holds HTTP listener settings
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// StorageConfig selects the session store backend
type StorageConfig struct {
	// Type is "memory" or "redis"
	Type     string `mapstructure:"type"`
	RedisURL string `mapstructure:"redis_url"`
}

// CatalogConfig locates the player stats database
type CatalogConfig struct {
	DBPath string `mapstructure:"db_path"`
}

// GameConfig holds gameplay settings
type GameConfig struct {
	MaxGuesses int    `mapstructure:"max_guesses"`
	DailySalt  string `mapstructure:"daily_salt"`
}

// SessionConfig holds session expiry settings
type SessionConfig struct {
	TTL           time.Duration `mapstructure:"ttl"`
	MinAge        time.Duration `mapstructure:"min_age"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
}

// CORSConfig lists the origins the browser front-end may call from
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from an optional YAML file and the environment.
// Environment variables use the STATDLE_ prefix with underscores for
// nesting (e.g. STATDLE_STORAGE_TYPE, STATDLE_CATALOG_DB_PATH).
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 8000)
	v.SetDefault("storage.type", "memory")
	v.SetDefault("storage.redis_url", "redis://localhost:6379")
	v.SetDefault("catalog.db_path", "football_wordle.db")
	v.SetDefault("game.max_guesses", 8)
	v.SetDefault("game.daily_salt", "")
	v.SetDefault("session.ttl", 72*time.Hour)
	v.SetDefault("session.min_age", 2*time.Hour)
	v.SetDefault("session.sweep_interval", 5*time.Minute)
	v.SetDefault("cors.allowed_origins", []string{"http://localhost:3000", "http://127.0.0.1:3000"})

	v.SetEnvPrefix("statdle")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// Addr returns the listen address
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
