package config

import (
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

type Environment string

const (
	EnvLocal      Environment = "local"
	EnvDev        Environment = "dev"
	EnvStage      Environment = "stage"
	EnvProduction Environment = "production"
)

type Config struct {
	App struct {
		Version  string      `env:"APP_VERSION" envDefault:"local"`
		Env      Environment `env:"APP_ENV" envDefault:"local"`
		Timezone string      `env:"APP_TIMEZONE" envDefault:"America/Sao_Paulo"`
	}

	HTTP struct {
		Port string `env:"HTTP_SERVER_PORT" envDefault:"3000"`
		Host string `env:"HTTP_SERVER_HOST" envDefault:"localhost"`
	}

	Backend struct {
		URL     string        `env:"BACKEND_URL" envDefault:"http://localhost:8000"`
		Timeout time.Duration `env:"BACKEND_TIMEOUT" envDefault:"10s"`
	}

	Session struct {
		FilePath string `env:"SESSION_FILE" envDefault:".clinic-session.json"`
	}

	RabbitMQ struct {
		Enabled bool   `env:"RABBITMQ_ENABLED"`
		URL     string `env:"RABBITMQ_URL"`
		Queue   string `env:"RABBITMQ_QUEUE" envDefault:"clinic.booking-gateway.appointments"`
	}

	Cache struct {
		Enabled   bool `env:"CACHE_ENABLED"`
		SlotsSize int  `env:"CACHE_SLOTS_SIZE" envDefault:"1000"`
	}
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.App.Env = Environment(strings.ToLower(string(cfg.App.Env)))

	// Strip a trailing slash so path joins stay predictable.
	cfg.Backend.URL = strings.TrimRight(cfg.Backend.URL, "/")

	// Without the broker nothing invalidates cached slots, and serving
	// them would mean stale availability after every booking.
	if !cfg.RabbitMQ.Enabled {
		cfg.Cache.Enabled = false
	}

	return cfg, nil
}

func (c *Config) IsLocal() bool {
	return c.App.Env == EnvLocal
}

func (c *Config) IsNotLocal() bool {
	return c.App.Env == EnvDev || c.App.Env == EnvStage || c.App.Env == EnvProduction
}
