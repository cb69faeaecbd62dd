package config

import "time"

// Config holds runtime settings for the carpool CLI.
type Config struct {
	APIBaseURL     string        `env:"API_BASE_URL"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	StoragePath    string        `env:"STORAGE_PATH"`
	LogLevel       string        `env:"LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:3000"
	c.RequestTimeout = 10 * time.Second
	c.StoragePath = "carpoolea.db"
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config from defaults, then overlays the JSON file,
// the environment and the command-line flags found in args (without the
// program name). Later sources take precedence.
func LoadConfig(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseEnv(cfg)
	parseFlags(cfg, args)
	return cfg
}
