package config

import "github.com/caarlos0/env/v11"

// parseEnv overlays Config with values from HC_* environment variables.
// Panics on malformed values (caller should fix the environment).
func parseEnv(cfg *Config) {
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}
}
