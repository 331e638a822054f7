package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the server settings, populated from the environment.
type Config struct {
	Addr         string        `env:"ADDR" envDefault:":8080"`
	PaymentDelay time.Duration `env:"PAYMENT_DELAY" envDefault:"1500ms"`
	QRBaseURL    string        `env:"QR_BASE_URL" envDefault:"http://localhost:8080"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
