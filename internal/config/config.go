package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

func (e Environment) IsProduction() bool { return e == Production }

type Config struct {
	Addr            string        `envconfig:"ADDR" default:":8080"`
	UpstreamBaseURL string        `envconfig:"UPSTREAM_BASE_URL" default:"https://dummyjson.com/products/"`
	UpstreamTimeout time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"5s"`
	Environment     Environment   `envconfig:"ENVIRONMENT" default:"development"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	CORSOrigin      string        `envconfig:"CORS_ORIGIN" default:"*"`
}

const prefix = "CATALOG"

// Load reads .env when present, then CATALOG_* variables over the defaults.
func Load() (Config, error) {
	_ = godotenv.Load() // load .env if it exists
	var cfg Config
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
