// Package config loads process configuration from the environment and an
// optional .env file.
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Server configures the waitlist HTTP service.
type Server struct {
	Port          int           `env:"PORT" envDefault:"3000"`
	APIKey        string        `env:"API_KEY"`
	DatabaseURL   string        `env:"DATABASE_URL"`
	StaleAfter    time.Duration `env:"SESSION_STALE_AFTER" envDefault:"10m"`
	SweepSchedule string        `env:"SESSION_SWEEP_SCHEDULE" envDefault:"@every 5m"`
	CORSOrigins   []string      `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`
}

// Bot configures the chat-command frontend.
type Bot struct {
	Token          string        `env:"DISCORD_BOT_TOKEN"`
	WaitlistURL    string        `env:"WAITLIST_URL" envDefault:"http://localhost:3000"`
	APIKey         string        `env:"API_KEY"`
	OwnerRoleID    string        `env:"OWNER_ROLE_ID"`
	OwnerIDs       []string      `env:"OWNER_IDS" envSeparator:","`
	BuyerRoleID    string        `env:"BUYER_ROLE_ID"`
	PlaceID        int64         `env:"PLACE_ID" envDefault:"109983668079237"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
}

// LoadDotEnv reads .env unless ENV_CHEK is set (deployments that inject env
// directly). A missing file is not an error.
func LoadDotEnv(paths ...string) {
	if os.Getenv("ENV_CHEK") != "" {
		return
	}
	if err := godotenv.Load(paths...); err != nil {
		log.Println(".env not loaded:", err)
	}
}

// Parse fills target from environment variables.
func Parse(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadServer loads the server configuration.
func LoadServer() (Server, error) {
	var cfg Server
	if err := Parse(&cfg); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

// LoadBot loads the bot configuration. The token is required.
func LoadBot() (Bot, error) {
	var cfg Bot
	if err := Parse(&cfg); err != nil {
		return Bot{}, err
	}
	if cfg.Token == "" {
		return Bot{}, fmt.Errorf("DISCORD_BOT_TOKEN is not set")
	}
	return cfg, nil
}
