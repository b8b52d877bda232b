package config

// DefaultBaseURL is the hard-coded local-development backend address, used
// when neither the environment nor a config file provides one.
const DefaultBaseURL = "http://localhost:8000/api"

// Config holds runtime settings for the portale client.
//
// Fields:
//   - BaseURL: root of the backend HTTP API; paths are appended verbatim.
//   - DatabasePath: sqlite DSN for the local session store.
type Config struct {
	BaseURL      string
	DatabasePath string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = DefaultBaseURL
	c.DatabasePath = "portale.db"
}

// LoadConfig constructs a Config by applying defaults, then overlaying values
// from JSON (if a config file was given), the environment, and command-line
// flags. Later sources take precedence; exactly one value wins per field.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
