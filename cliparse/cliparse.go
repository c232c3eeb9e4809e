package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port          int
	DatabaseDSN   string
	RedisAddr     string
	SessionSecret string
	PublicDir     string
}

// ParseFlags validates flags and falls back to environment variables
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("rapid-tally", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseDSN, "d", "", "MySQL DSN")
	fs.StringVar(&cfg.RedisAddr, "r", "", "Redis address (host:port)")

	fs.StringVar(&cfg.SessionSecret, "session-secret", "", "Session cookie secret (prefer env)")
	fs.StringVar(&cfg.PublicDir, "public", "", "Static asset directory")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8080 // default
		}
	}

	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = os.Getenv("DATABASE_DSN")
	}
	if cfg.DatabaseDSN == "" {
		return Config{}, errors.New("MySQL DSN required (use -d or DATABASE_DSN env)")
	}

	if cfg.RedisAddr == "" {
		cfg.RedisAddr = os.Getenv("REDIS_ADDR")
		if cfg.RedisAddr == "" {
			cfg.RedisAddr = "localhost:6379"
		}
	}

	if cfg.SessionSecret == "" {
		cfg.SessionSecret = os.Getenv("SESSION_SECRET")
		if cfg.SessionSecret == "" {
			cfg.SessionSecret = "rapid_tally_dev_secret"
		}
	}

	if cfg.PublicDir == "" {
		cfg.PublicDir = os.Getenv("PUBLIC_DIR")
		if cfg.PublicDir == "" {
			cfg.PublicDir = "./public"
		}
	}

	return cfg, nil
}
