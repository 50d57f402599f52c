package config

import (
	"os"
	"time"
)

// Config carries every knob the gateway reads from the environment. Values
// come from the process env; cmd/web loads a .env file first via godotenv.
type Config struct {
	BackendURL    string
	HTTPPort      string
	DatabaseURL   string
	SessionSecret string
	SessionTTL    time.Duration
	SpoolDir      string
}

func Load() Config {
	c := Config{
		BackendURL:    os.Getenv("BACKEND_URL"),
		HTTPPort:      os.Getenv("HTTP_PORT"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		SessionTTL:    24 * time.Hour,
		SpoolDir:      os.Getenv("SPOOL_DIR"),
	}
	if c.HTTPPort == "" {
		c.HTTPPort = "8080"
	}
	if c.SpoolDir == "" {
		c.SpoolDir = os.TempDir()
	}
	if s := os.Getenv("SESSION_TTL"); s != "" {
		if d, err := time.ParseDuration(s); err == nil {
			c.SessionTTL = d
		}
	}
	return c
}
