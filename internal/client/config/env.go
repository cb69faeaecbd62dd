package config

import "github.com/caarlos0/env/v11"

const envPrefix = "CARPOOL_"

// parseEnv overlays cfg with CARPOOL_* variables. Unset variables leave the
// current value alone.
func parseEnv(cfg *Config) {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix}); err != nil {
		panic(err)
	}
}
