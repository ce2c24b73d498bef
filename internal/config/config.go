// Package config loads server configuration from the environment.
package config

import (
	"fmt"

	env "github.com/caarlos0/env/v11"
)

type Config struct {
	Port      int    `env:"PORT" envDefault:"8080"`
	DBPath    string `env:"DB_PATH" envDefault:"./data/splittab.db"`
	JWTSecret string `env:"JWT_SECRET,required"`

	// TokenExpiryHours is how long issued session tokens stay valid.
	TokenExpiryHours int `env:"TOKEN_EXPIRY_H" envDefault:"168"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	AppEnv   string `env:"APP_ENV" envDefault:"production"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return &cfg, nil
}
