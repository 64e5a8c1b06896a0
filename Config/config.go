package Config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Settings holds the process-wide configuration. It is loaded once at
// startup and never mutated afterwards.
type Settings struct {
	SecretKey                string
	Algorithm                string
	DatabaseURL              string
	AccessTokenExpireMinutes int
	ListenPort               string
}

var supportedAlgorithms = map[string]bool{
	"HS256": true,
	"HS384": true,
	"HS512": true,
}

// Load reads settings from the environment, optionally seeded from a .env
// file. SECRET_KEY and DATABASE_URL are required.
func Load() (*Settings, error) {
	// .env is optional, real deployments set the environment directly
	_ = godotenv.Load(".env")

	settings := &Settings{
		SecretKey:                os.Getenv("SECRET_KEY"),
		Algorithm:                os.Getenv("ALGORITHM"),
		DatabaseURL:              os.Getenv("DATABASE_URL"),
		AccessTokenExpireMinutes: 30,
		ListenPort:               os.Getenv("LISTEN_PORT"),
	}

	if settings.SecretKey == "" {
		return nil, errors.New("SECRET_KEY is not set")
	}
	if settings.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}
	if settings.Algorithm == "" {
		settings.Algorithm = "HS256"
	}
	if !supportedAlgorithms[settings.Algorithm] {
		return nil, fmt.Errorf("unsupported signing algorithm %q", settings.Algorithm)
	}
	if raw := os.Getenv("ACCESS_TOKEN_EXPIRE_MINUTES"); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil || minutes <= 0 {
			return nil, fmt.Errorf("invalid ACCESS_TOKEN_EXPIRE_MINUTES %q", raw)
		}
		settings.AccessTokenExpireMinutes = minutes
	}
	if settings.ListenPort == "" {
		settings.ListenPort = "8000"
	}

	return settings, nil
}
