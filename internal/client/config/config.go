package config

import (
	"os"
	"time"

	"github.com/dmitrijs2005/sentimeter/internal/client/client"
	"github.com/dmitrijs2005/sentimeter/internal/client/credentials"
)

// Config holds runtime settings for the sentimeter CLI.
//
// Fields:
//   - Endpoint: URL of the sentiment-classification model.
//   - CredentialPath: file the validated credential is saved to.
//   - RequestTimeout: upper bound for one classification round trip.
//   - HistoryPath: SQLite file for analysis history; empty disables it.
//   - HistoryLimit: analyses kept in the history (0 keeps everything).
//   - LogLevel: debug, info, warn or error.
//   - Recent: when > 0, print that many past analyses and exit.
type Config struct {
	Endpoint       string
	CredentialPath string
	RequestTimeout time.Duration
	HistoryPath    string
	HistoryLimit   int
	LogLevel       string
	Recent         int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Endpoint = client.DefaultEndpoint
	c.CredentialPath = credentials.DefaultPath
	c.RequestTimeout = 30 * time.Second
	c.HistoryPath = ""
	c.HistoryLimit = 1000
	c.LogLevel = "info"
	c.Recent = 0
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment (including an optional .env file) and
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	args := os.Args[1:]
	parseJson(cfg, args)
	parseEnv(cfg)
	parseFlags(cfg, args)
	return cfg
}
