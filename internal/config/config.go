package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Server     Server
	Postgres   Postgres
	Redis      Redis
	Bot        Bot
	Calculator Calculator
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	return config, nil
}

// HistoryEnabled — персистентность истории требует обоих внешних адресов.
// Без любого из них хранилище выключено, калькулятор работает локально.
func (c Config) HistoryEnabled() bool {
	return c.Postgres.DSN != "" && c.Redis.Address != ""
}
