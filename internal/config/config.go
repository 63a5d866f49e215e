// Package config loads settings for the serve command from a config
// file and TNG_* environment variables using Viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the serving-layer settings. Flags override file values;
// file values override defaults.
type Config struct {
	// Listen is the HTTP listen address, e.g. ":8080".
	Listen string `mapstructure:"listen"`

	// Programs is the directory served as the program source.
	Programs string `mapstructure:"programs"`

	// Budget is the default step budget applied to API runs.
	Budget uint64 `mapstructure:"budget"`

	// Store selects the run store backend: "memory" or "redis".
	Store string `mapstructure:"store"`

	Redis RedisConfig `mapstructure:"redis"`
}

// RedisConfig configures the redis run store.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Load reads configuration from path (optional; defaults to ./tng.yaml
// when present) with TNG_* environment variables taking precedence over
// file values. A missing default config file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("listen", ":8080")
	v.SetDefault("programs", "examples")
	v.SetDefault("budget", uint64(1_000_000))
	v.SetDefault("store", "memory")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)

	v.SetEnvPrefix("TNG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("tng")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if cfg.Store != "memory" && cfg.Store != "redis" {
		return nil, fmt.Errorf("unknown store backend %q (want memory or redis)", cfg.Store)
	}
	if cfg.Budget == 0 {
		return nil, fmt.Errorf("budget must be positive")
	}
	return &cfg, nil
}
