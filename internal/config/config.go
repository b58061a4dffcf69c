package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	AppEnv        string        `envconfig:"APP_ENV" default:"development"`
	DataDir       string        `envconfig:"GOFOOD_DATA_DIR" default:".gofood"`
	SessionSecret string        `envconfig:"SESSION_SECRET" default:"gofood-dev-secret"`
	CheckoutDelay time.Duration `envconfig:"CHECKOUT_DELAY" default:"2s"`
	AuthDelay     time.Duration `envconfig:"AUTH_DELAY" default:"1500ms"`
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("Environment variables not loaded properly: %v", err)
	}

	return &cfg
}
