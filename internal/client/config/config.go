package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the ArtSpace CLI.
//
// Fields:
//   - ServerURL: base URL of the marketplace HTTP API.
//   - RequestTimeout: per-request timeout of the API client.
//   - SessionDBPath: sqlite file holding the current session.
//   - LogLevel / LogFormat: see logging.New.
type Config struct {
	ServerURL      string
	RequestTimeout time.Duration
	SessionDBPath  string
	LogLevel       string
	LogFormat      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:5000"
	c.RequestTimeout = 30 * time.Second
	c.SessionDBPath = "artspace_session.db"
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, a JSON file (if given) and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	args := os.Args[1:]
	parseEnv(cfg, args)
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
