package config

import (
	"os"
	"time"

	"github.com/dmitrijs2005/artspace/internal/flagx"
	"github.com/joho/godotenv"
)

const (
	EnvServerURL      = "ARTSPACE_SERVER_URL"
	EnvRequestTimeout = "ARTSPACE_REQUEST_TIMEOUT"
	EnvSessionDB      = "ARTSPACE_SESSION_DB"
	EnvLogLevel       = "ARTSPACE_LOG_LEVEL"
	EnvLogFormat      = "ARTSPACE_LOG_FORMAT"
)

// parseEnv overlays cfg with ARTSPACE_* variables. A dotenv file named by
// -e/-env is loaded first and must exist; otherwise ./.env is loaded if
// present. Variables already set in the process environment win over the
// file, as godotenv.Load never overrides.
func parseEnv(cfg *Config, args []string) {
	if envFile := flagx.EnvFile(args); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			panic(err)
		}
	} else {
		_ = godotenv.Load()
	}

	if v := os.Getenv(EnvServerURL); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv(EnvRequestTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
	if v := os.Getenv(EnvSessionDB); v != "" {
		cfg.SessionDBPath = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = v
	}
}
