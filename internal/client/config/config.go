package config

import "time"

// Config holds runtime settings for the bankterm client.
//
// Fields:
//   - APIBaseURL: root of the banking REST API, including the /api prefix.
//   - RequestTimeout: per-request HTTP timeout; zero keeps the transport default.
//   - DatabasePath: sqlite file holding the persisted session.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	DatabasePath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080/api"
	c.RequestTimeout = 15 * time.Second
	c.DatabasePath = "bankterm.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including an optional .env file), a JSON file
// (if -c/-config is given), and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
