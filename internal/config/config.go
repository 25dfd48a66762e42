package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Addr        string `env:"SHOP_ADDR" envDefault:":8080"`
	DatabaseDSN string `env:"SHOP_DATABASE_DSN" envDefault:"file:shop.db"`
	LogLevel    string `env:"SHOP_LOG_LEVEL" envDefault:"info"`
	Seed        bool   `env:"SHOP_SEED" envDefault:"false"`
}

// Load reads configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
